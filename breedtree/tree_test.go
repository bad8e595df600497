package breedtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedplan/breedtree"
	"github.com/katalvlaran/breedplan/pokemon"
)

func buildThree(t *testing.T) *breedtree.Tree {
	t.Helper()
	ivs := []pokemon.IV{pokemon.Attack, pokemon.Speed, pokemon.HP}
	tree, err := breedtree.Build(breedtree.NewNode(ivs, pokemon.NoNature), breedtree.AssignInOrder(ivs))
	require.NoError(t, err)
	return tree
}

func TestInsertNode_ThenGet(t *testing.T) {
	tree := buildThree(t)
	sibling := mustGet(t, tree, breedtree.Pos(2, 1))

	leaf := mustGet(t, tree, breedtree.Pos(2, 0))
	placed := leaf.Resolve(charizard(), pokemon.Male)
	require.NoError(t, tree.InsertNode(breedtree.Pos(2, 0), placed))

	got := mustGet(t, tree, breedtree.Pos(2, 0))
	assert.True(t, got.Equal(placed))
	p, ok := got.Placement()
	require.True(t, ok)
	assert.Equal(t, pokemon.Male, p.Gender)

	assert.True(t, mustGet(t, tree, breedtree.Pos(2, 1)).Equal(sibling), "sibling untouched")
	assert.Equal(t, 7, tree.Len())
}

func TestInsertNode_NoValidation(t *testing.T) {
	tree := buildThree(t)
	odd := breedtree.NewNode(pokemon.AllIVs, pokemon.Quirky)
	require.NoError(t, tree.InsertNode(breedtree.Pos(2, 3), odd))
	assert.True(t, mustGet(t, tree, breedtree.Pos(2, 3)).Equal(odd))

	require.NoError(t, tree.InsertNode(breedtree.Pos(9, 9), odd))
	assert.Equal(t, 8, tree.Len())
}

func TestInsertNode_NilTree(t *testing.T) {
	var nilTree *breedtree.Tree
	err := nilTree.InsertNode(breedtree.Root, breedtree.NewNode([]pokemon.IV{pokemon.HP}, pokemon.NoNature))
	assert.ErrorIs(t, err, breedtree.ErrTreeNil)
}

func TestFinalNode_MissingRoot(t *testing.T) {
	var empty breedtree.Tree
	_, err := empty.FinalNode()
	assert.ErrorIs(t, err, breedtree.ErrMissingRoot)

	var nilTree *breedtree.Tree
	_, err = nilTree.FinalNode()
	assert.ErrorIs(t, err, breedtree.ErrMissingRoot)

	require.NoError(t, empty.InsertNode(breedtree.Root, breedtree.NewNode([]pokemon.IV{pokemon.HP}, pokemon.NoNature)))
	root, err := empty.FinalNode()
	require.NoError(t, err)
	assert.Equal(t, []pokemon.IV{pokemon.HP}, root.IVs)
}

func TestTree_PositionsRowsLeaves(t *testing.T) {
	tree := buildThree(t)

	want := []breedtree.Position{
		breedtree.Pos(0, 0),
		breedtree.Pos(1, 0), breedtree.Pos(1, 1),
		breedtree.Pos(2, 0), breedtree.Pos(2, 1), breedtree.Pos(2, 2), breedtree.Pos(2, 3),
	}
	assert.Equal(t, want, tree.Positions())
	assert.Equal(t, want[1:3], tree.Row(1))
	assert.Equal(t, want[3:], tree.Leaves())
	assert.Empty(t, tree.Row(5))
}

func TestTree_RowBelowLeaves(t *testing.T) {
	tree := buildThree(t)

	assert.Nil(t, tree.Row(3))
	assert.Nil(t, tree.Row(40))
	assert.Nil(t, tree.Row(^uint(0)))

	var nilTree *breedtree.Tree
	assert.Nil(t, nilTree.Row(0))
}

func TestTree_Unresolved(t *testing.T) {
	tree := buildThree(t)
	require.NoError(t, tree.Err())

	tree.MarkUnresolved(breedtree.Pos(2, 2))
	tree.MarkUnresolved(breedtree.Pos(2, 2))
	tree.MarkUnresolved(breedtree.Pos(1, 1))

	assert.Equal(t, []breedtree.Position{breedtree.Pos(2, 2), breedtree.Pos(1, 1)}, tree.Unresolved())
	err := tree.Err()
	assert.ErrorIs(t, err, breedtree.ErrUnresolvedPositions)
	assert.Contains(t, err.Error(), "(2,2)")

	got := tree.Unresolved()
	got[0] = breedtree.Root
	assert.Equal(t, breedtree.Pos(2, 2), tree.Unresolved()[0], "Unresolved returns a copy")
}

func TestNode_Stages(t *testing.T) {
	skel := breedtree.NewNode([]pokemon.IV{pokemon.Defense}, pokemon.NoNature)
	assert.False(t, skel.IsResolved())
	_, ok := skel.Placement()
	assert.False(t, ok)

	res := skel.Resolve(charizard(), pokemon.Female)
	assert.True(t, res.IsResolved())
	assert.False(t, skel.IsResolved(), "Resolve returns a copy")
	assert.False(t, res.Equal(skel))
	assert.True(t, res.Skeleton().Equal(skel))

	other := skel.Resolve(charizard(), pokemon.Male)
	assert.False(t, res.Equal(other))
}
