package pokemon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Species is the descriptor of a creature kind as consumed by the breeding
// planner. The second type and second egg group are optional; HasSecondType and
// HasSecondEggGroup tell whether they are set.
//
// PercentageMale is kept as text because species sheets ship it that way
// ("87.5", "50", "0"). Genderless species usually carry "-1" or an empty value;
// see IsGenderless.
type Species struct {
	Number            uint16
	Name              string
	Types             [2]Type
	HasSecondType     bool
	EggGroups         [2]EggGroup
	HasSecondEggGroup bool
	PercentageMale    string
}

// MaleRatio parses PercentageMale and returns it as a fraction in [0,1].
// Returns ErrMalformedPercentage when the text is not a number in [0,100].
// Genderless species (see IsGenderless) are reported with ratio 0 and no error.
// Complexity: O(len(PercentageMale)).
func (s Species) MaleRatio() (float64, error) {
	if s.IsGenderless() {
		return 0, nil
	}
	raw := strings.TrimSuffix(strings.TrimSpace(s.PercentageMale), "%")
	pct, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s has %q", ErrMalformedPercentage, s.Name, s.PercentageMale)
	}
	if math.IsNaN(pct) || pct < 0 || pct > 100 {
		return 0, fmt.Errorf("%w: %s has %q (out of range)", ErrMalformedPercentage, s.Name, s.PercentageMale)
	}

	return pct / 100, nil
}

// EggGroupsInclude reports whether g is one of the species' egg groups.
func (s Species) EggGroupsInclude(g EggGroup) bool {
	if s.EggGroups[0] == g {
		return true
	}
	return s.HasSecondEggGroup && s.EggGroups[1] == g
}

// SharesEggGroup reports whether s and other have at least one egg group in common.
func (s Species) SharesEggGroup(other Species) bool {
	if other.EggGroupsInclude(s.EggGroups[0]) {
		return true
	}
	return s.HasSecondEggGroup && other.EggGroupsInclude(s.EggGroups[1])
}

// IsGenderless reports whether the species has no gender: it sits in the
// Genderless egg group, belongs to a known genderless line, or its male
// percentage is the "-1" marker.
func (s Species) IsGenderless() bool {
	if s.EggGroupsInclude(GenderlessGroup) {
		return true
	}
	if _, ok := GenderlessLine(s.Number); ok {
		return true
	}
	return strings.TrimSpace(s.PercentageMale) == "-1"
}

// TypeList returns the species' types (one or two).
func (s Species) TypeList() []Type {
	if s.HasSecondType {
		return []Type{s.Types[0], s.Types[1]}
	}
	return []Type{s.Types[0]}
}

// EggGroupList returns the species' egg groups (one or two).
func (s Species) EggGroupList() []EggGroup {
	if s.HasSecondEggGroup {
		return []EggGroup{s.EggGroups[0], s.EggGroups[1]}
	}
	return []EggGroup{s.EggGroups[0]}
}

func (s Species) String() string {
	return fmt.Sprintf("#%03d %s", s.Number, s.Name)
}
