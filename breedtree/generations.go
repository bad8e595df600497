package breedtree

import "fmt"

// Generations is the number of rows of a lineage tree, root row included.
// A natureless plan for N IVs spans N generations; a natured one spans N+1,
// because the nature donor occupies its own leaf and never shares it with an IV.
type Generations uint8

// Bounds of the supported range. Which (Generations, natured) pairs actually
// have a template is decided by TemplateFor.
const (
	MinGenerations Generations = 2
	MaxGenerations Generations = 6

	// MinIVs and MaxIVs bound the number of perfect IVs a plan may request.
	MinIVs = 2
	MaxIVs = 5
)

// GenerationsFor derives the generation count for a plan with ivCount IVs.
// Returns ErrUnsupportedGenerationCount when ivCount is outside [MinIVs, MaxIVs].
// Complexity: O(1).
func GenerationsFor(ivCount int, natured bool) (Generations, error) {
	if ivCount < MinIVs || ivCount > MaxIVs {
		return 0, errorf(MethodGenerations, ErrUnsupportedGenerationCount,
			"%d ivs (natured=%t), supported %d..%d", ivCount, natured, MinIVs, MaxIVs)
	}
	g := ivCount
	if natured {
		g++
	}

	return Generations(g), nil
}

// LeafRow is the deepest row, where the donors sit.
func (g Generations) LeafRow() uint {
	if g == 0 {
		return 0
	}
	return uint(g) - 1
}

// Width is the number of positions on row r (2^r).
func (g Generations) Width(row uint) uint {
	return 1 << row
}

// NodeCount is the number of positions in the tree: 2^G − 1.
func (g Generations) NodeCount() int {
	return 1<<uint(g) - 1
}

// Contains reports whether p is a valid position of a tree with g generations.
func (g Generations) Contains(p Position) bool {
	return p.Row < uint(g) && p.Col < g.Width(p.Row)
}

// mergeOrder enumerates the positions that are derived by merging, in the
// order Build visits them: rows G-2 down to 1, columns ascending. Row 0 is
// the caller's final node and the leaf row comes from the template, so
// neither appears.
func (g Generations) mergeOrder() []Position {
	if g < 3 {
		return nil
	}
	out := make([]Position, 0, g.NodeCount())
	for row := g.LeafRow() - 1; row >= 1; row-- {
		for col := uint(0); col < g.Width(row); col++ {
			out = append(out, Position{Row: row, Col: col})
		}
	}

	return out
}

func (g Generations) String() string {
	return fmt.Sprintf("%d generations", uint8(g))
}
