// Package catalog is the species database consulted by the breedplan CLI:
// a read-only set of pokemon.Species loaded from YAML and indexed by number
// and by name.
//
// File format (one list entry per species):
//
//	species.yaml:
//	- number: 6
//	  name: Charizard
//	  types: [Fire, Flying]
//	  egg_groups: [Monster, Dragon]
//	  percentage_male: "87.5"
//
// Entries are validated on load; the male percentage is kept as text and only
// parsed when asked for (pokemon.Species.MaleRatio).
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/breedplan/pokemon"
)

// Sentinel errors.
var (
	// ErrSpeciesNotFound indicates no species matches the query.
	ErrSpeciesNotFound = errors.New("catalog: species not found")
	// ErrDuplicateSpecies indicates two entries share a number or a name.
	ErrDuplicateSpecies = errors.New("catalog: duplicate species")
	// ErrInvalidEntry indicates an entry failed validation.
	ErrInvalidEntry = errors.New("catalog: invalid entry")
)

//go:embed species.yaml
var builtinYAML []byte

// entry is the YAML shape of one species.
type entry struct {
	Number         uint16             `yaml:"number" validate:"required"`
	Name           string             `yaml:"name" validate:"required"`
	Types          []pokemon.Type     `yaml:"types" validate:"min=1,max=2"`
	EggGroups      []pokemon.EggGroup `yaml:"egg_groups" validate:"min=1,max=2"`
	PercentageMale string             `yaml:"percentage_male"`
}

func (e entry) species() pokemon.Species {
	s := pokemon.Species{
		Number:         e.Number,
		Name:           e.Name,
		PercentageMale: e.PercentageMale,
	}
	s.Types[0] = e.Types[0]
	if len(e.Types) == 2 {
		s.Types[1], s.HasSecondType = e.Types[1], true
	}
	s.EggGroups[0] = e.EggGroups[0]
	if len(e.EggGroups) == 2 {
		s.EggGroups[1], s.HasSecondEggGroup = e.EggGroups[1], true
	}

	return s
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog is an immutable, indexed set of species. Safe for concurrent reads.
type Catalog struct {
	species  []pokemon.Species
	byNumber map[uint16]int
	byName   map[string]int
}

// New indexes species. Returns ErrDuplicateSpecies when two share a number or
// a (case-insensitive) name.
func New(species ...pokemon.Species) (*Catalog, error) {
	sorted := slices.Clone(species)
	slices.SortStableFunc(sorted, func(a, b pokemon.Species) int { return int(a.Number) - int(b.Number) })

	c := &Catalog{
		species:  sorted,
		byNumber: make(map[uint16]int, len(sorted)),
		byName:   make(map[string]int, len(sorted)),
	}
	for i, s := range sorted {
		if _, dup := c.byNumber[s.Number]; dup {
			return nil, fmt.Errorf("%w: number %d", ErrDuplicateSpecies, s.Number)
		}
		key := nameKey(s.Name)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("%w: name %q", ErrDuplicateSpecies, s.Name)
		}
		c.byNumber[s.Number] = i
		c.byName[key] = i
	}

	return c, nil
}

// Parse decodes and validates a YAML species list.
func Parse(data []byte) (*Catalog, error) {
	var entries []entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog parse failed: %w", err)
	}
	species := make([]pokemon.Species, 0, len(entries))
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q): %v", ErrInvalidEntry, i, e.Name, err)
		}
		species = append(species, e.species())
	}

	return New(species...)
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog load failed (%s): %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Builtin returns the small catalog shipped with the module.
func Builtin() (*Catalog, error) {
	return Parse(builtinYAML)
}

// Len returns the number of species.
func (c *Catalog) Len() int { return len(c.species) }

// All returns every species ordered by number.
func (c *Catalog) All() []pokemon.Species { return slices.Clone(c.species) }

// ByNumber returns the species with the given national number.
func (c *Catalog) ByNumber(n uint16) (pokemon.Species, error) {
	if i, ok := c.byNumber[n]; ok {
		return c.species[i], nil
	}
	return pokemon.Species{}, fmt.Errorf("%w: #%d", ErrSpeciesNotFound, n)
}

// ByName returns the species with the given name, ignoring case and spaces.
func (c *Catalog) ByName(name string) (pokemon.Species, error) {
	if i, ok := c.byName[nameKey(name)]; ok {
		return c.species[i], nil
	}
	return pokemon.Species{}, fmt.Errorf("%w: %q", ErrSpeciesNotFound, name)
}

// Lookup resolves query as a number when it parses as one, else as a name.
func (c *Catalog) Lookup(query string) (pokemon.Species, error) {
	query = strings.TrimPrefix(strings.TrimSpace(query), "#")
	if n, err := strconv.ParseUint(query, 10, 16); err == nil {
		return c.ByNumber(uint16(n))
	}
	return c.ByName(query)
}

// ByEggGroup returns the species in egg group g, ordered by number.
func (c *Catalog) ByEggGroup(g pokemon.EggGroup) []pokemon.Species {
	return c.filter(func(s pokemon.Species) bool { return s.EggGroupsInclude(g) })
}

// ByType returns the species having elemental type t, ordered by number.
func (c *Catalog) ByType(t pokemon.Type) []pokemon.Species {
	return c.filter(func(s pokemon.Species) bool { return slices.Contains(s.TypeList(), t) })
}

func (c *Catalog) filter(keep func(pokemon.Species) bool) []pokemon.Species {
	var out []pokemon.Species
	for _, s := range c.species {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

func nameKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), ""))
}
