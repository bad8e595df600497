package breedtree

import (
	"slices"
)

// Tree is a built breeding plan: one Node per position of a complete binary
// tree of Generations rows, plus any positions construction or placement
// could not resolve.
//
// Build produces a complete skeleton. Afterwards the placement phase replaces
// nodes one at a time through InsertNode; the tree does not interpret those
// replacements.
type Tree struct {
	template   Template
	nodes      map[Position]Node
	unresolved []Position
}

// Generations returns the number of rows of the tree.
func (t *Tree) Generations() Generations { return t.template.Generations() }

// Template returns the leaf layout the tree was built from.
func (t *Tree) Template() Template { return t.template }

// Len returns the number of nodes currently held.
func (t *Tree) Len() int { return len(t.nodes) }

// Get returns the node at p.
func (t *Tree) Get(p Position) (Node, bool) {
	n, ok := t.nodes[p]
	return n, ok
}

// FinalNode returns the root node. Returns ErrMissingRoot if the tree is nil or
// holds no node at Root.
func (t *Tree) FinalNode() (Node, error) {
	if t == nil {
		return Node{}, errorf(MethodFinalNode, ErrMissingRoot, "nil tree")
	}
	n, ok := t.nodes[Root]
	if !ok {
		return Node{}, errorf(MethodFinalNode, ErrMissingRoot, "no node at %s", Root)
	}

	return n, nil
}

// InsertNode stores n at p, replacing whatever was there. No consistency check
// against the template or the neighbouring nodes is made; that is the caller's
// business. Returns ErrTreeNil on a nil tree.
func (t *Tree) InsertNode(p Position, n Node) error {
	if t == nil {
		return errorf(MethodInsertNode, ErrTreeNil, "insert at %s", p)
	}
	if t.nodes == nil {
		t.nodes = make(map[Position]Node)
	}
	t.nodes[p] = n

	return nil
}

// RoleAt returns the template role of the leaf at p.
func (t *Tree) RoleAt(p Position) (Role, bool) { return t.template.RoleAt(p) }

// Positions returns every occupied position in row-major order.
// Complexity: O(n log n).
func (t *Tree) Positions() []Position {
	out := make([]Position, 0, len(t.nodes))
	for p := range t.nodes {
		out = append(out, p)
	}
	slices.SortFunc(out, comparePositions)

	return out
}

// Row returns the occupied positions of row r in column order, or nil when r
// lies below the leaf row.
func (t *Tree) Row(r uint) []Position {
	if t == nil || r > t.Generations().LeafRow() {
		return nil
	}
	width := t.Generations().Width(r)
	out := make([]Position, 0, width)
	for col := uint(0); col < width; col++ {
		p := Position{Row: r, Col: col}
		if _, ok := t.nodes[p]; ok {
			out = append(out, p)
		}
	}

	return out
}

// Leaves returns the occupied positions of the leaf row in column order.
func (t *Tree) Leaves() []Position { return t.Row(t.Generations().LeafRow()) }

// Unresolved returns a copy of the positions marked unresolved.
func (t *Tree) Unresolved() []Position { return slices.Clone(t.unresolved) }

// MarkUnresolved records p as unresolved. Repeated marks are kept once.
func (t *Tree) MarkUnresolved(p Position) {
	if !slices.Contains(t.unresolved, p) {
		t.unresolved = append(t.unresolved, p)
	}
}

// Err returns ErrUnresolvedPositions listing the unresolved positions, or nil.
func (t *Tree) Err() error {
	if len(t.unresolved) == 0 {
		return nil
	}
	return errorf(MethodBuild, ErrUnresolvedPositions, "%v", t.unresolved)
}

func comparePositions(a, b Position) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	}
	return 0
}
