package breedtree

import "fmt"

// Position addresses a node in the complete binary lineage tree.
// Row 0 holds the final creature; row r holds 2^r nodes, columns 0..2^r-1.
// Higher rows are earlier generations.
type Position struct {
	Row, Col uint
}

// Root is the position of the final creature.
var Root = Position{Row: 0, Col: 0}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col uint) Position {
	return Position{Row: row, Col: col}
}

// Partner returns the position p is bred with: same row, column with the low
// bit flipped (even columns pair with col+1). Partner(Partner(p)) == p.
// Complexity: O(1).
func (p Position) Partner() Position {
	return Position{Row: p.Row, Col: p.Col ^ 1}
}

// ParentPositions returns the two positions of the next row whose breeding
// yields p: (row+1, 2col) and (row+1, 2col+1).
//
// The result is not bounded: for a node on the deepest row of a tree it names
// positions the tree does not have. Check with Generations.Contains and treat
// an out-of-range pair as "no contributing pair".
// Complexity: O(1).
func (p Position) ParentPositions() (Position, Position) {
	row, col := p.Row+1, p.Col*2
	return Position{Row: row, Col: col}, Position{Row: row, Col: col + 1}
}

// Offspring returns the position produced by breeding p with its partner.
// The second result is false for the root, which has no offspring.
func (p Position) Offspring() (Position, bool) {
	if p.Row == 0 {
		return Position{}, false
	}
	return Position{Row: p.Row - 1, Col: p.Col / 2}, true
}

// IsLeft reports whether p is the left (even-column) member of its pair.
func (p Position) IsLeft() bool {
	return p.Col%2 == 0
}

// Less orders positions row-major: by row, then by column.
func (p Position) Less(q Position) bool {
	if p.Row != q.Row {
		return p.Row < q.Row
	}
	return p.Col < q.Col
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
