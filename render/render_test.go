package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedplan/breedtree"
	"github.com/katalvlaran/breedplan/pokemon"
	"github.com/katalvlaran/breedplan/render"
)

func buildTree(t *testing.T, nature pokemon.Nature, ivs ...pokemon.IV) *breedtree.Tree {
	t.Helper()
	tree, err := breedtree.Build(breedtree.NewNode(ivs, nature), breedtree.AssignInOrder(ivs))
	require.NoError(t, err)
	return tree
}

func TestTree(t *testing.T) {
	tree := buildTree(t, pokemon.NoNature, pokemon.HP, pokemon.Attack, pokemon.Defense)
	r := render.New(render.Options{ShowRoles: true})

	want := strings.Join([]string{
		"Generation 1 (4 donors)",
		"  (2,0) [A] HP",
		"  (2,1) [B] Attack",
		"  (2,2) [A] HP",
		"  (2,3) [C] Defense",
		"",
		"Generation 2",
		"  (1,0) HP Attack",
		"  (1,1) HP Defense",
		"",
		"Generation 3 (final)",
		"  (0,0) HP Attack Defense",
		"",
	}, "\n")
	assert.Equal(t, want, r.Tree(tree))
}

func TestTree_NatureAndPlacement(t *testing.T) {
	tree := buildTree(t, pokemon.Jolly, pokemon.Speed, pokemon.Attack)
	root, err := tree.FinalNode()
	require.NoError(t, err)
	require.NoError(t, tree.InsertNode(breedtree.Root, root.Resolve(pokemon.Species{Number: 443, Name: "Gible"}, pokemon.Female)))

	out := render.New(render.Options{}).Tree(tree)
	assert.Contains(t, out, "(0,0) Speed Attack + Jolly  #443 Gible (Female)")
	assert.Contains(t, out, "(2,0) Jolly\n")
	assert.NotContains(t, out, "[Nature]")
}

func TestTree_Unresolved(t *testing.T) {
	tree := buildTree(t, pokemon.NoNature, pokemon.HP, pokemon.Speed)
	tree.MarkUnresolved(breedtree.Pos(1, 0))

	out := render.New(render.Options{}).Tree(tree)
	assert.Contains(t, out, "unresolved: [(1,0)]")
}

func TestDonors(t *testing.T) {
	tree := buildTree(t, pokemon.Adamant, pokemon.Attack, pokemon.Speed, pokemon.HP)
	out := render.New(render.Options{}).Donors(tree)

	for _, want := range []string{"Role", "Carries", "Count", "Attack", "Speed", "HP", "Adamant", "Nature", "total", "8"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "\x1b[")
}

func TestTemplates(t *testing.T) {
	out := render.New(render.Options{}).Templates(breedtree.Templates())

	assert.Contains(t, out, "A×1 B×1")
	assert.Contains(t, out, "A×6 B×5 C×3 D×1 Nature×1")
	assert.Contains(t, out, "Nature A A B")
}

func TestSpecies(t *testing.T) {
	r := render.New(render.Options{})

	zard := pokemon.Species{
		Number: 6, Name: "Charizard",
		Types: [2]pokemon.Type{pokemon.Fire, pokemon.Flying}, HasSecondType: true,
		EggGroups: [2]pokemon.EggGroup{pokemon.Monster, pokemon.DragonGroup}, HasSecondEggGroup: true,
		PercentageMale: "87.5",
	}
	out := r.Species(zard)
	assert.Contains(t, out, "#006 Charizard")
	assert.Contains(t, out, "Fire, Flying")
	assert.Contains(t, out, "Monster, Dragon")
	assert.Contains(t, out, "87.5% male")

	beldum := pokemon.Species{Number: 374, Name: "Beldum", EggGroups: [2]pokemon.EggGroup{pokemon.Mineral}}
	assert.Contains(t, r.Species(beldum), "genderless")

	bad := zard
	bad.PercentageMale = "lots"
	assert.Contains(t, r.Species(bad), "malformed")
}
