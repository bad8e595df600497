package plan

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/breedplan/pokemon"
)

// ErrInvalidRequest indicates a request that cannot be planned.
var ErrInvalidRequest = errors.New("plan: invalid request")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Request describes the creature to breed.
type Request struct {
	// Species is a catalog name or national number.
	Species string `yaml:"species" validate:"required"`
	// IVs lists the perfect IVs wanted, by name or alias ("atk", "spe").
	// Their order fixes the roles: the first IV is role A.
	IVs []string `yaml:"ivs" validate:"min=2,max=5,dive,required"`
	// Nature is optional; empty or "none" means no nature.
	Nature string `yaml:"nature"`
}

// LoadRequest reads a YAML request file and validates it.
func LoadRequest(path string) (Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("request load failed (%s): %w", path, err)
	}
	var req Request
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&req); err != nil {
		return Request{}, fmt.Errorf("%w: %s: %v", ErrInvalidRequest, path, err)
	}
	if err = req.Validate(); err != nil {
		return Request{}, fmt.Errorf("%s: %w", path, err)
	}

	return req, nil
}

// Validate checks the request shape and parses its IVs and nature.
func (r Request) Validate() error {
	_, _, err := r.parse()
	return err
}

// parse returns the requested IVs in request order and the nature.
func (r Request) parse() ([]pokemon.IV, pokemon.Nature, error) {
	if err := validate.Struct(r); err != nil {
		return nil, pokemon.NoNature, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	ivs := make([]pokemon.IV, 0, len(r.IVs))
	seen := make(map[pokemon.IV]bool, len(r.IVs))
	for _, s := range r.IVs {
		iv, err := pokemon.ParseIV(s)
		if err != nil {
			return nil, pokemon.NoNature, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
		}
		if seen[iv] {
			return nil, pokemon.NoNature, fmt.Errorf("%w: %s requested twice", ErrInvalidRequest, iv)
		}
		seen[iv] = true
		ivs = append(ivs, iv)
	}
	nature, err := pokemon.ParseNature(r.Nature)
	if err != nil {
		return nil, pokemon.NoNature, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	return ivs, nature, nil
}
