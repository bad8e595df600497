package breedtree

import (
	"slices"

	"github.com/katalvlaran/breedplan/pokemon"
)

// Requirement is what the creature at a node must carry: an ordered set of
// perfect IVs and, optionally, a nature.
type Requirement struct {
	IVs    []pokemon.IV
	Nature pokemon.Nature
}

// Placement is the concrete creature chosen for a node by the placement phase.
type Placement struct {
	Species pokemon.Species
	Gender  pokemon.Gender
}

// Node is one slot of the lineage. A node starts as a skeleton holding only
// its Requirement; Resolve attaches a Placement and yields the resolved stage.
// Nodes are values: Resolve and the constructors never alias the caller's slices.
type Node struct {
	Requirement
	placement *Placement
}

// NewNode returns a skeleton node requiring ivs and nature.
// Pass pokemon.NoNature when no nature is required.
func NewNode(ivs []pokemon.IV, nature pokemon.Nature) Node {
	return Node{Requirement: Requirement{IVs: slices.Clone(ivs), Nature: nature}}
}

// ivLeaf is the node of a lettered-role donor: one IV, never a nature.
func ivLeaf(iv pokemon.IV) Node {
	return Node{Requirement: Requirement{IVs: []pokemon.IV{iv}}}
}

// natureLeaf is the node of the Nature donor: the nature, never an IV.
func natureLeaf(n pokemon.Nature) Node {
	return Node{Requirement: Requirement{IVs: []pokemon.IV{}, Nature: n}}
}

// merge derives the offspring requirement of a breeding pair: the left IV
// list followed by the right one, and the nature of whichever side carries
// one (left wins if, against the templates, both do). An IV carried by both
// sides appears twice.
func merge(left, right Node) Node {
	ivs := make([]pokemon.IV, 0, len(left.IVs)+len(right.IVs))
	ivs = append(ivs, left.IVs...)
	ivs = append(ivs, right.IVs...)
	nature := left.Nature
	if !nature.IsSet() {
		nature = right.Nature
	}

	return Node{Requirement: Requirement{IVs: ivs, Nature: nature}}
}

// HasNature reports whether the node requires a nature.
func (n Node) HasNature() bool { return n.Nature.IsSet() }

// Carries reports whether iv is among the node's required IVs.
func (n Node) Carries(iv pokemon.IV) bool { return slices.Contains(n.IVs, iv) }

// Resolve returns a copy of n in the resolved stage, placed with species and gender.
func (n Node) Resolve(species pokemon.Species, gender pokemon.Gender) Node {
	out := n.clone()
	out.placement = &Placement{Species: species, Gender: gender}
	return out
}

// Placement returns the placed creature. The second result is false while the
// node is still a skeleton.
func (n Node) Placement() (Placement, bool) {
	if n.placement == nil {
		return Placement{}, false
	}
	return *n.placement, true
}

// IsResolved reports whether a creature has been placed on the node.
func (n Node) IsResolved() bool { return n.placement != nil }

// Skeleton returns a copy of n without its placement.
func (n Node) Skeleton() Node {
	return NewNode(n.IVs, n.Nature)
}

// Equal reports whether n and o have the same requirement and placement.
// A nil IV list equals an empty one.
func (n Node) Equal(o Node) bool {
	if n.Nature != o.Nature || !slices.Equal(n.IVs, o.IVs) {
		return false
	}
	if (n.placement == nil) != (o.placement == nil) {
		return false
	}

	return n.placement == nil || *n.placement == *o.placement
}

func (n Node) clone() Node {
	out := Node{Requirement: Requirement{IVs: slices.Clone(n.IVs), Nature: n.Nature}}
	if n.placement != nil {
		p := *n.placement
		out.placement = &p
	}

	return out
}
