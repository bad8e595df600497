package breedtree

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/breedplan/pokemon"
)

// Build constructs the breeding tree for final, the requirement of the
// creature at the root, resolving the template's roles through roles.
//
// Steps:
//  1. Generations = len(final.IVs), plus one when final requires a nature.
//  2. The template for (Generations, natured) is selected.
//  3. roles must assign exactly the template's lettered roles, each to a
//     distinct IV requested by final.
//  4. Every leaf is materialised: a lettered role yields [iv]; the Nature role
//     yields no IVs and final's nature.
//  5. Rows G-2 down to 1 are merged from the pairs beneath them.
//
// The root is stored as given (a copy of final), resolved or not, and is never
// recomputed. The returned tree always holds 2^G − 1 nodes.
//
// Errors (wrapped with "Build: "): ErrUnsupportedGenerationCount,
// ErrMissingTemplateEntry, ErrUnexpectedRole, ErrAssignmentMismatch,
// ErrUnresolvedPositions.
//
// Complexity: O(2^G) time and memory. Deterministic for equal inputs.
func Build(final Node, roles Assignment, opts ...Option) (*Tree, error) {
	cfg := newBuildConfig(opts...)
	withNature := final.HasNature()

	g, err := GenerationsFor(len(final.IVs), withNature)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	tpl, err := TemplateFor(g, withNature)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}
	if err = checkAssignment(tpl, final, roles); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodBuild, err)
	}

	log := cfg.logger.With().Uint8("generations", uint8(g)).Bool("natured", withNature).Logger()
	t := &Tree{
		template: tpl,
		nodes:    make(map[Position]Node, g.NodeCount()),
	}
	t.nodes[Root] = final.clone()

	leafRow := tpl.LeafRow()
	for col, role := range tpl.leaves {
		pos := Position{Row: leafRow, Col: uint(col)}
		var n Node
		if role.IsNature() {
			n = natureLeaf(final.Nature)
		} else {
			n = ivLeaf(roles[role])
		}
		t.nodes[pos] = n
		logNode(log, "leaf", pos, n)
	}

	// Every position is visited exactly once; a skipped or unresolved
	// position does not affect which position comes next.
	for _, pos := range g.mergeOrder() {
		left, right := pos.ParentPositions()
		if !g.Contains(left) || !g.Contains(right) {
			log.Debug().Stringer("pos", pos).Msg("no contributing pair")
			continue
		}
		ln, lok := t.nodes[left]
		rn, rok := t.nodes[right]
		if !lok || !rok {
			t.MarkUnresolved(pos)
			log.Debug().Stringer("pos", pos).Msg("contributor missing")
			continue
		}
		n := merge(ln, rn)
		t.nodes[pos] = n
		logNode(log, "merge", pos, n)
	}

	if err = t.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// checkAssignment verifies that roles covers exactly the lettered roles of
// tpl and maps them one-to-one onto IVs requested by final.
func checkAssignment(tpl Template, final Node, roles Assignment) error {
	used := tpl.Roles()
	for _, r := range used {
		if _, ok := roles[r]; !ok {
			return errorf(methodAssignment, ErrMissingTemplateEntry,
				"role %s (template %s, natured=%t)", r, tpl.Generations(), tpl.Natured())
		}
	}

	extra := make([]Role, 0)
	for r := range roles {
		if !slices.Contains(used, r) {
			extra = append(extra, r)
		}
	}
	if len(extra) > 0 {
		slices.Sort(extra)
		return errorf(methodAssignment, ErrUnexpectedRole, "%v", extra)
	}

	owner := make(map[pokemon.IV]Role, len(used))
	for _, r := range used {
		iv := roles[r]
		if !final.Carries(iv) {
			return errorf(methodAssignment, ErrAssignmentMismatch,
				"role %s → %s, final requests %v", r, iv, final.IVs)
		}
		if prev, dup := owner[iv]; dup {
			return errorf(methodAssignment, ErrAssignmentMismatch,
				"%s assigned to both %s and %s", iv, prev, r)
		}
		owner[iv] = r
	}

	return nil
}

func logNode(log zerolog.Logger, msg string, pos Position, n Node) {
	e := log.Debug()
	if !e.Enabled() {
		return
	}
	ivs := make([]string, len(n.IVs))
	for i, iv := range n.IVs {
		ivs[i] = iv.String()
	}
	e = e.Stringer("pos", pos).Strs("ivs", ivs)
	if n.HasNature() {
		e = e.Stringer("nature", n.Nature)
	}
	e.Msg(msg)
}
