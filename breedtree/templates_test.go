package breedtree_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedplan/breedtree"
)

func TestTemplateFor_Supported(t *testing.T) {
	templates := breedtree.Templates()
	require.Len(t, templates, 8)

	for _, tpl := range templates {
		name := fmt.Sprintf("%s/natured=%t", tpl.Generations(), tpl.Natured())
		t.Run(name, func(t *testing.T) {
			g := tpl.Generations()
			assert.Equal(t, 1<<tpl.LeafRow(), tpl.Len(), "leaf count is 2^(G-1)")

			wantIVs := int(g)
			if tpl.Natured() {
				wantIVs--
			}
			assert.Len(t, tpl.Roles(), wantIVs)

			counts := tpl.RoleCounts()
			if tpl.Natured() {
				assert.Equal(t, 1, counts[breedtree.RoleNature], "exactly one nature donor")
			} else {
				assert.Zero(t, counts[breedtree.RoleNature])
			}
			total := 0
			for _, c := range counts {
				total += c
			}
			assert.Equal(t, tpl.Len(), total)

			leaves := tpl.Leaves()
			for col := 0; col < len(leaves); col += 2 {
				assert.NotEqual(t, leaves[col], leaves[col+1], "pair at column %d repeats a role", col)
			}
		})
	}
}

func TestTemplateFor_Unsupported(t *testing.T) {
	cases := []struct {
		g       breedtree.Generations
		natured bool
	}{
		{0, false}, {1, false}, {6, false}, {7, false},
		{0, true}, {1, true}, {2, true}, {7, true}, {255, true},
	}
	for _, tc := range cases {
		_, err := breedtree.TemplateFor(tc.g, tc.natured)
		assert.ErrorIs(t, err, breedtree.ErrUnsupportedGenerationCount, "g=%d natured=%t", tc.g, tc.natured)
	}
}

func TestTemplate_RoleAt(t *testing.T) {
	tpl, err := breedtree.TemplateFor(3, false)
	require.NoError(t, err)

	want := []breedtree.Role{breedtree.RoleA, breedtree.RoleB, breedtree.RoleA, breedtree.RoleC}
	for col, role := range want {
		got, ok := tpl.RoleAt(breedtree.Pos(2, uint(col)))
		require.True(t, ok)
		assert.Equal(t, role, got)
	}

	_, ok := tpl.RoleAt(breedtree.Pos(2, 4))
	assert.False(t, ok)
	_, ok = tpl.RoleAt(breedtree.Pos(1, 0))
	assert.False(t, ok)
}

func TestTemplate_LeavesIsCopy(t *testing.T) {
	tpl, err := breedtree.TemplateFor(2, false)
	require.NoError(t, err)

	leaves := tpl.Leaves()
	leaves[0] = breedtree.RoleE

	again, err := breedtree.TemplateFor(2, false)
	require.NoError(t, err)
	assert.Equal(t, []breedtree.Role{breedtree.RoleA, breedtree.RoleB}, again.Leaves())
}

func TestRole_Kinds(t *testing.T) {
	for _, r := range breedtree.LetteredRoles {
		assert.True(t, r.IsLettered())
		assert.False(t, r.IsNature())
	}
	assert.True(t, breedtree.RoleNature.IsNature())
	assert.False(t, breedtree.RoleNature.IsLettered())
	assert.Equal(t, "Nature", breedtree.RoleNature.String())
	assert.Equal(t, "C", breedtree.RoleC.String())
}
