package breedtree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedplan/breedtree"
)

func TestWalk_RootFirst(t *testing.T) {
	tree := buildThree(t)
	res, err := breedtree.Walk(tree)
	require.NoError(t, err)
	assert.Equal(t, tree.Positions(), res.Order)
}

func TestWalk_LeavesFirst(t *testing.T) {
	tree := buildThree(t)
	res, err := breedtree.Walk(tree, breedtree.WithOrder(breedtree.LeavesFirst))
	require.NoError(t, err)

	want := []breedtree.Position{
		breedtree.Pos(2, 0), breedtree.Pos(2, 1), breedtree.Pos(2, 2), breedtree.Pos(2, 3),
		breedtree.Pos(1, 0), breedtree.Pos(1, 1),
		breedtree.Pos(0, 0),
	}
	assert.Equal(t, want, res.Order)
}

func TestWalk_MaxRow(t *testing.T) {
	tree := buildThree(t)
	res, err := breedtree.Walk(tree, breedtree.WithMaxRow(1))
	require.NoError(t, err)
	assert.Equal(t, []breedtree.Position{breedtree.Pos(0, 0), breedtree.Pos(1, 0), breedtree.Pos(1, 1)}, res.Order)

	_, err = breedtree.Walk(tree, breedtree.WithMaxRow(-1))
	assert.ErrorIs(t, err, breedtree.ErrOptionViolation)

	_, err = breedtree.Walk(tree, breedtree.WithOrder(breedtree.Order(7)))
	assert.ErrorIs(t, err, breedtree.ErrOptionViolation)
}

func TestWalk_OnVisitAbort(t *testing.T) {
	tree := buildThree(t)
	stop := errors.New("stop")
	visited := 0
	res, err := breedtree.Walk(tree, breedtree.WithOnVisit(func(p breedtree.Position, n breedtree.Node) error {
		visited++
		if p == breedtree.Pos(1, 1) {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
	assert.Len(t, res.Order, 3)
}

func TestWalk_NilTreeAndGaps(t *testing.T) {
	_, err := breedtree.Walk(nil)
	assert.ErrorIs(t, err, breedtree.ErrTreeNil)

	var empty breedtree.Tree
	res, err := breedtree.Walk(&empty)
	require.NoError(t, err)
	assert.Empty(t, res.Order)

	// A hand-assembled tree with a hole below (1,1) is walked up to the hole.
	tree := buildThree(t)
	partial := &breedtree.Tree{}
	for _, p := range []breedtree.Position{breedtree.Root, breedtree.Pos(1, 0), breedtree.Pos(2, 0)} {
		require.NoError(t, partial.InsertNode(p, mustGet(t, tree, p)))
	}
	res, err = breedtree.Walk(partial)
	require.NoError(t, err)
	assert.Equal(t, []breedtree.Position{breedtree.Root, breedtree.Pos(1, 0), breedtree.Pos(2, 0)}, res.Order)
}
