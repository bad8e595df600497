package plan

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/breedplan/breedtree"
	"github.com/katalvlaran/breedplan/catalog"
	"github.com/katalvlaran/breedplan/pokemon"
)

// Plan is the breeding tree built for one request.
type Plan struct {
	Request Request
	Species pokemon.Species
	Roles   breedtree.Assignment
	Tree    *breedtree.Tree
}

// Resolve validates req, looks its species up in cat and returns the final
// node, placed with that species, together with the role assignment.
func Resolve(req Request, cat *catalog.Catalog) (breedtree.Node, breedtree.Assignment, error) {
	ivs, nature, err := req.parse()
	if err != nil {
		return breedtree.Node{}, nil, err
	}
	species, err := cat.Lookup(req.Species)
	if err != nil {
		return breedtree.Node{}, nil, err
	}
	final := breedtree.NewNode(ivs, nature).Resolve(species, pokemon.AnyGender)

	return final, breedtree.AssignInOrder(ivs), nil
}

// Build resolves req against cat and builds its tree. opts are passed to
// breedtree.Build.
func Build(req Request, cat *catalog.Catalog, opts ...breedtree.Option) (*Plan, error) {
	final, roles, err := Resolve(req, cat)
	if err != nil {
		return nil, err
	}
	t, err := breedtree.Build(final, roles, opts...)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", req.Species, err)
	}
	placed, _ := final.Placement()

	return &Plan{Request: req, Species: placed.Species, Roles: roles, Tree: t}, nil
}

// Donor is one line of the shopping list: how many leaf creatures of a role
// the plan needs and what each must carry.
type Donor struct {
	Role   breedtree.Role
	IV     pokemon.IV     // meaningless for the Nature role
	Nature pokemon.Nature // set for the Nature role only
	Count  int
}

// Summary lists the donors of a tree, lettered roles first, Nature last.
type Summary []Donor

// Summarize counts the leaves of t per role.
func Summarize(t *breedtree.Tree) Summary {
	idx := make(map[breedtree.Role]int)
	var out Summary
	for _, p := range t.Leaves() {
		role, ok := t.RoleAt(p)
		if !ok {
			continue
		}
		if i, seen := idx[role]; seen {
			out[i].Count++
			continue
		}
		n, _ := t.Get(p)
		d := Donor{Role: role, Nature: n.Nature, Count: 1}
		if len(n.IVs) > 0 {
			d.IV = n.IVs[0]
		}
		idx[role] = len(out)
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b Donor) int { return int(a.Role) - int(b.Role) })

	return out
}

// Total returns the number of donors.
func (s Summary) Total() int {
	total := 0
	for _, d := range s {
		total += d.Count
	}
	return total
}

// Donors returns the donor summary of the plan's tree.
func (p *Plan) Donors() Summary { return Summarize(p.Tree) }
