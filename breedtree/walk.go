package breedtree

import "fmt"

// Order selects the sequence in which Walk visits rows.
type Order int

const (
	// RootFirst visits row 0 first, then each deeper row (breadth-first).
	RootFirst Order = iota
	// LeavesFirst visits the leaf row first and climbs to the root: the order
	// in which the breedings are actually performed.
	LeavesFirst
)

// WalkOption configures Walk via functional arguments. Invalid options are
// recorded and surfaced as ErrOptionViolation when Walk runs.
type WalkOption func(*WalkOptions)

// WalkOptions holds the parameters and hooks of a walk.
type WalkOptions struct {
	// Order picks RootFirst (default) or LeavesFirst.
	Order Order

	// OnVisit is called for every visited node. A non-nil error aborts the
	// walk and is returned wrapped.
	OnVisit func(p Position, n Node) error

	// MaxRow, if > 0, skips rows deeper than MaxRow. 0 means no limit.
	MaxRow int

	err error
}

// DefaultWalkOptions returns RootFirst order, no row limit and a no-op hook.
func DefaultWalkOptions() WalkOptions {
	return WalkOptions{
		Order:   RootFirst,
		OnVisit: func(Position, Node) error { return nil },
		MaxRow:  0,
	}
}

// WithOrder sets the visiting order.
func WithOrder(o Order) WalkOption {
	return func(w *WalkOptions) {
		if o != RootFirst && o != LeavesFirst {
			w.err = fmt.Errorf("%w: unknown order %d", ErrOptionViolation, o)
			return
		}
		w.Order = o
	}
}

// WithOnVisit registers the visit hook.
func WithOnVisit(fn func(p Position, n Node) error) WalkOption {
	return func(w *WalkOptions) {
		if fn != nil {
			w.OnVisit = fn
		}
	}
}

// WithMaxRow limits the walk to rows 0..r.
//
//	r > 0: limit to rows ≤ r
//	r == 0: explicit no limit
//	r < 0: invalid option → ErrOptionViolation
func WithMaxRow(r int) WalkOption {
	return func(w *WalkOptions) {
		if r < 0 {
			w.err = fmt.Errorf("%w: MaxRow cannot be negative (%d)", ErrOptionViolation, r)
			return
		}
		w.MaxRow = r
	}
}

// WalkResult holds the visited positions in visit order.
type WalkResult struct {
	Order []Position
}

// Walk visits the nodes of t. Starting at the root it follows ParentPositions
// breadth-first, descending only into positions the tree holds, so a tree
// with missing nodes is walked up to the gaps.
//
// Returns ErrTreeNil, ErrOptionViolation, or the wrapped OnVisit error.
// Complexity: O(n) for n nodes.
func Walk(t *Tree, opts ...WalkOption) (*WalkResult, error) {
	if t == nil {
		return nil, ErrTreeNil
	}
	o := DefaultWalkOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	rows := t.levels(o.MaxRow)
	if o.Order == LeavesFirst {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	res := &WalkResult{Order: make([]Position, 0, t.Len())}
	for _, row := range rows {
		for _, p := range row {
			res.Order = append(res.Order, p)
			if err := o.OnVisit(p, t.nodes[p]); err != nil {
				return res, fmt.Errorf("%s: OnVisit error at %s: %w", MethodWalk, p, err)
			}
		}
	}

	return res, nil
}

// levels groups the positions reachable from the root by row, breadth-first.
// maxRow > 0 stops the descent below that row.
func (t *Tree) levels(maxRow int) [][]Position {
	if _, ok := t.nodes[Root]; !ok {
		return nil
	}
	var rows [][]Position
	frontier := []Position{Root}
	for len(frontier) > 0 {
		rows = append(rows, frontier)
		if maxRow > 0 && frontier[0].Row >= uint(maxRow) {
			break
		}
		next := make([]Position, 0, 2*len(frontier))
		for _, p := range frontier {
			l, r := p.ParentPositions()
			for _, q := range [2]Position{l, r} {
				if _, ok := t.nodes[q]; ok {
					next = append(next, q)
				}
			}
		}
		frontier = next
	}

	return rows
}
