package breedtree

// Leaf layouts, indexed by Generations. Entry i is the role of the leaf at
// (G-1, i). The layouts are known-optimal arrangements taken as data.
// The two leaves of a pair never share a role.
var (
	natureless = [MaxGenerations + 1][]Role{
		2: {RoleA, RoleB},
		3: {RoleA, RoleB, RoleA, RoleC},
		4: {
			RoleA, RoleB, RoleA, RoleC, RoleB, RoleC, RoleB, RoleD,
		},
		5: {
			RoleA, RoleB, RoleA, RoleC, RoleB, RoleC, RoleB, RoleD,
			RoleB, RoleC, RoleB, RoleD, RoleC, RoleD, RoleC, RoleE,
		},
	}

	natured = [MaxGenerations + 1][]Role{
		3: {RoleNature, RoleA, RoleA, RoleB},
		4: {
			RoleNature, RoleA, RoleA, RoleB, RoleA, RoleB, RoleA, RoleC,
		},
		5: {
			RoleNature, RoleA, RoleA, RoleB, RoleA, RoleB, RoleA, RoleC,
			RoleA, RoleB, RoleA, RoleC, RoleB, RoleC, RoleB, RoleD,
		},
		6: {
			RoleA, RoleB, RoleA, RoleC, RoleB, RoleC, RoleB, RoleD,
			RoleB, RoleC, RoleB, RoleD, RoleC, RoleD, RoleC, RoleE,
			RoleNature, RoleB, RoleB, RoleC, RoleB, RoleC, RoleB, RoleD,
			RoleB, RoleC, RoleB, RoleD, RoleC, RoleD, RoleC, RoleE,
		},
	}
)

// Template is the leaf layout for one (Generations, natured) pair.
// The zero value is not a valid template; obtain one from TemplateFor.
type Template struct {
	generations Generations
	natured     bool
	leaves      []Role
}

// TemplateFor returns the leaf layout for g generations.
// Supported: natureless g ∈ [2,5], natured g ∈ [3,6].
// Returns ErrUnsupportedGenerationCount otherwise.
// Complexity: O(1).
func TemplateFor(g Generations, withNature bool) (Template, error) {
	table := &natureless
	if withNature {
		table = &natured
	}
	if g > MaxGenerations || table[g] == nil {
		return Template{}, errorf(MethodTemplateFor, ErrUnsupportedGenerationCount,
			"%d generations (natured=%t)", uint8(g), withNature)
	}

	return Template{generations: g, natured: withNature, leaves: table[g]}, nil
}

// Templates lists every supported template, natureless first, each group by
// ascending generation count.
func Templates() []Template {
	var out []Template
	for _, withNature := range []bool{false, true} {
		for g := MinGenerations; g <= MaxGenerations; g++ {
			if t, err := TemplateFor(g, withNature); err == nil {
				out = append(out, t)
			}
		}
	}

	return out
}

// Generations is the number of rows of trees built from t.
func (t Template) Generations() Generations { return t.generations }

// Natured reports whether t carries a Nature leaf.
func (t Template) Natured() bool { return t.natured }

// LeafRow is the row the template's leaves sit on.
func (t Template) LeafRow() uint { return t.generations.LeafRow() }

// Len is the number of leaves.
func (t Template) Len() int { return len(t.leaves) }

// Leaves returns a copy of the leaf roles in column order.
func (t Template) Leaves() []Role {
	out := make([]Role, len(t.leaves))
	copy(out, t.leaves)
	return out
}

// RoleAt returns the role of the leaf at p. The second result is false when p
// is not on the leaf row or is out of range.
func (t Template) RoleAt(p Position) (Role, bool) {
	if p.Row != t.LeafRow() || p.Col >= uint(len(t.leaves)) {
		return 0, false
	}
	return t.leaves[p.Col], true
}

// Roles returns the distinct lettered roles used by t, in role order.
func (t Template) Roles() []Role {
	var seen [RoleNature + 1]bool
	for _, r := range t.leaves {
		seen[r] = true
	}
	out := make([]Role, 0, len(LetteredRoles))
	for _, r := range LetteredRoles {
		if seen[r] {
			out = append(out, r)
		}
	}

	return out
}

// RoleCounts returns how many donors of each role the template needs,
// RoleNature included when present.
func (t Template) RoleCounts() map[Role]int {
	out := make(map[Role]int, len(LetteredRoles)+1)
	for _, r := range t.leaves {
		out[r]++
	}

	return out
}
