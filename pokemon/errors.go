package pokemon

import "errors"

// Sentinel errors for descriptor parsing.
var (
	// ErrMalformedPercentage indicates the male percentage text does not parse
	// as a number in [0,100].
	ErrMalformedPercentage = errors.New("pokemon: malformed male percentage")
	// ErrUnknownIV indicates an unrecognised stat name.
	ErrUnknownIV = errors.New("pokemon: unknown iv")
	// ErrUnknownNature indicates an unrecognised nature name.
	ErrUnknownNature = errors.New("pokemon: unknown nature")
	// ErrUnknownType indicates an unrecognised elemental type name.
	ErrUnknownType = errors.New("pokemon: unknown type")
	// ErrUnknownEggGroup indicates an unrecognised egg group name.
	ErrUnknownEggGroup = errors.New("pokemon: unknown egg group")
	// ErrUnknownGender indicates an unrecognised gender name.
	ErrUnknownGender = errors.New("pokemon: unknown gender")
)
