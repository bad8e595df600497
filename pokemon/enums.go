package pokemon

import (
	"fmt"
	"strings"
)

// IV identifies one of the six independently rolled stats.
// A "perfect" IV is at its maximum value and can be passed on by breeding.
type IV uint8

const (
	HP IV = iota
	Attack
	Defense
	SpecialAttack
	SpecialDefense
	Speed
)

// AllIVs lists every IV in canonical stat order.
var AllIVs = []IV{HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed}

var ivNames = [...]string{"HP", "Attack", "Defense", "SpecialAttack", "SpecialDefense", "Speed"}

var ivAliases = map[string]IV{
	"hp": HP, "hitpoints": HP,
	"atk": Attack, "attack": Attack,
	"def": Defense, "defense": Defense,
	"spa": SpecialAttack, "spatk": SpecialAttack, "specialattack": SpecialAttack,
	"spd": SpecialDefense, "spdef": SpecialDefense, "specialdefense": SpecialDefense,
	"spe": Speed, "speed": Speed,
}

func (iv IV) String() string {
	if int(iv) < len(ivNames) {
		return ivNames[iv]
	}
	return fmt.Sprintf("IV(%d)", uint8(iv))
}

// ParseIV accepts full names and the usual short forms ("atk", "spa", "spe", ...).
func ParseIV(s string) (IV, error) {
	if iv, ok := ivAliases[normalize(s)]; ok {
		return iv, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownIV, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (iv *IV) UnmarshalText(b []byte) error {
	v, err := ParseIV(string(b))
	if err != nil {
		return err
	}
	*iv = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (iv IV) MarshalText() ([]byte, error) { return []byte(iv.String()), nil }

// Nature is the personality trait passed on through the held-item mechanic.
// The zero value NoNature means "no nature requested".
type Nature uint8

const (
	NoNature Nature = iota
	Hardy
	Lonely
	Brave
	Adamant
	Naughty
	Bold
	Docile
	Relaxed
	Impish
	Lax
	Timid
	Hasty
	Serious
	Jolly
	Naive
	Modest
	Mild
	Quiet
	Bashful
	Rash
	Calm
	Gentle
	Sassy
	Careful
	Quirky
)

var natureNames = [...]string{
	"None", "Hardy", "Lonely", "Brave", "Adamant", "Naughty", "Bold", "Docile", "Relaxed",
	"Impish", "Lax", "Timid", "Hasty", "Serious", "Jolly", "Naive", "Modest", "Mild",
	"Quiet", "Bashful", "Rash", "Calm", "Gentle", "Sassy", "Careful", "Quirky",
}

func (n Nature) String() string {
	if int(n) < len(natureNames) {
		return natureNames[n]
	}
	return fmt.Sprintf("Nature(%d)", uint8(n))
}

// IsSet reports whether n names an actual nature.
func (n Nature) IsSet() bool { return n != NoNature }

// ParseNature parses a nature name. The empty string and "none" yield NoNature.
func ParseNature(s string) (Nature, error) {
	key := normalize(s)
	if key == "" {
		return NoNature, nil
	}
	for i, name := range natureNames {
		if strings.ToLower(name) == key {
			return Nature(i), nil
		}
	}
	return NoNature, fmt.Errorf("%w: %q", ErrUnknownNature, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (n *Nature) UnmarshalText(b []byte) error {
	v, err := ParseNature(string(b))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (n Nature) MarshalText() ([]byte, error) { return []byte(n.String()), nil }

// Gender of a placed creature. AnyGender is the zero value and means no
// requirement has been decided yet.
type Gender uint8

const (
	AnyGender Gender = iota
	Female
	Male
	Genderless
)

var genderNames = [...]string{"Any", "Female", "Male", "Genderless"}

func (g Gender) String() string {
	if int(g) < len(genderNames) {
		return genderNames[g]
	}
	return fmt.Sprintf("Gender(%d)", uint8(g))
}

// ParseGender parses "female"/"f", "male"/"m", "genderless"/"none" and "any"/"".
func ParseGender(s string) (Gender, error) {
	switch normalize(s) {
	case "", "any":
		return AnyGender, nil
	case "f", "female":
		return Female, nil
	case "m", "male":
		return Male, nil
	case "genderless", "none", "n":
		return Genderless, nil
	}
	return AnyGender, fmt.Errorf("%w: %q", ErrUnknownGender, s)
}

// Type is an elemental type.
type Type uint8

const (
	Normal Type = iota
	Fire
	Water
	Grass
	Electric
	Flying
	Bug
	Poison
	Ground
	Rock
	Fighting
	Psychic
	Ghost
	Ice
	Dragon
	Dark
	Steel
)

var typeNames = [...]string{
	"Normal", "Fire", "Water", "Grass", "Electric", "Flying", "Bug", "Poison", "Ground",
	"Rock", "Fighting", "Psychic", "Ghost", "Ice", "Dragon", "Dark", "Steel",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// ParseType parses an elemental type name.
func ParseType(s string) (Type, error) {
	key := normalize(s)
	for i, name := range typeNames {
		if strings.ToLower(name) == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(b []byte) error {
	v, err := ParseType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// EggGroup is a breeding-compatibility group. Two creatures may breed only if
// they share at least one egg group (Ditto aside).
type EggGroup uint8

const (
	Monster EggGroup = iota
	WaterA
	WaterB
	WaterC
	BugGroup
	FlyingGroup
	Field
	Fairy
	Plant
	Humanoid
	Mineral
	Chaos
	Ditto
	DragonGroup
	CannotBreed
	GenderlessGroup
)

var eggGroupNames = [...]string{
	"Monster", "WaterA", "WaterB", "WaterC", "Bug", "Flying", "Field", "Fairy", "Plant",
	"Humanoid", "Mineral", "Chaos", "Ditto", "Dragon", "CannotBreed", "Genderless",
}

func (g EggGroup) String() string {
	if int(g) < len(eggGroupNames) {
		return eggGroupNames[g]
	}
	return fmt.Sprintf("EggGroup(%d)", uint8(g))
}

// ParseEggGroup parses an egg group name ("Water A", "water-a" and "WaterA" are equal).
func ParseEggGroup(s string) (EggGroup, error) {
	key := normalize(s)
	for i, name := range eggGroupNames {
		if strings.ToLower(name) == key {
			return EggGroup(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEggGroup, s)
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *EggGroup) UnmarshalText(b []byte) error {
	v, err := ParseEggGroup(string(b))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (g EggGroup) MarshalText() ([]byte, error) { return []byte(g.String()), nil }

// normalize lowercases s and strips separators so "Sp. Atk", "sp-atk" and
// "SpAtk" compare equal.
func normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_', '.':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
