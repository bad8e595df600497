package pokemon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breedplan/pokemon"
)

func charizard() pokemon.Species {
	return pokemon.Species{
		Number:            6,
		Name:              "Charizard",
		Types:             [2]pokemon.Type{pokemon.Fire, pokemon.Flying},
		HasSecondType:     true,
		EggGroups:         [2]pokemon.EggGroup{pokemon.Monster, pokemon.DragonGroup},
		HasSecondEggGroup: true,
		PercentageMale:    "87.5",
	}
}

func TestParseIV_Aliases(t *testing.T) {
	cases := map[string]pokemon.IV{
		"hp":              pokemon.HP,
		"Atk":             pokemon.Attack,
		"defense":         pokemon.Defense,
		"Sp. Atk":         pokemon.SpecialAttack,
		"special-defense": pokemon.SpecialDefense,
		"SPE":             pokemon.Speed,
	}
	for in, want := range cases {
		got, err := pokemon.ParseIV(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := pokemon.ParseIV("luck")
	assert.ErrorIs(t, err, pokemon.ErrUnknownIV)
}

func TestParseNature(t *testing.T) {
	n, err := pokemon.ParseNature("adamant")
	require.NoError(t, err)
	assert.Equal(t, pokemon.Adamant, n)
	assert.True(t, n.IsSet())

	n, err = pokemon.ParseNature("")
	require.NoError(t, err)
	assert.False(t, n.IsSet())

	_, err = pokemon.ParseNature("grumpy")
	assert.ErrorIs(t, err, pokemon.ErrUnknownNature)
}

func TestParseTypeAndEggGroup(t *testing.T) {
	ty, err := pokemon.ParseType("steel")
	require.NoError(t, err)
	assert.Equal(t, pokemon.Steel, ty)

	g, err := pokemon.ParseEggGroup("Water A")
	require.NoError(t, err)
	assert.Equal(t, pokemon.WaterA, g)

	_, err = pokemon.ParseType("sound")
	assert.ErrorIs(t, err, pokemon.ErrUnknownType)
	_, err = pokemon.ParseEggGroup("Amorphous")
	assert.ErrorIs(t, err, pokemon.ErrUnknownEggGroup)
}

func TestParseGender(t *testing.T) {
	g, err := pokemon.ParseGender("F")
	require.NoError(t, err)
	assert.Equal(t, pokemon.Female, g)

	_, err = pokemon.ParseGender("both")
	assert.ErrorIs(t, err, pokemon.ErrUnknownGender)
}

func TestMaleRatio(t *testing.T) {
	s := charizard()
	r, err := s.MaleRatio()
	require.NoError(t, err)
	assert.InDelta(t, 0.875, r, 1e-9)

	s.PercentageMale = "50%"
	r, err = s.MaleRatio()
	require.NoError(t, err)
	assert.InDelta(t, 0.5, r, 1e-9)
}

func TestMaleRatio_Malformed(t *testing.T) {
	for _, raw := range []string{"", "abc", "150", "-3", "NaN", "nan%", "+Inf"} {
		s := charizard()
		s.PercentageMale = raw
		_, err := s.MaleRatio()
		assert.ErrorIs(t, err, pokemon.ErrMalformedPercentage, "input %q", raw)
	}
}

func TestEggGroups(t *testing.T) {
	s := charizard()
	assert.True(t, s.EggGroupsInclude(pokemon.Monster))
	assert.True(t, s.EggGroupsInclude(pokemon.DragonGroup))
	assert.False(t, s.EggGroupsInclude(pokemon.Field))

	bulbasaur := pokemon.Species{
		Number:            1,
		Name:              "Bulbasaur",
		EggGroups:         [2]pokemon.EggGroup{pokemon.Monster, pokemon.Plant},
		HasSecondEggGroup: true,
		PercentageMale:    "87.5",
	}
	assert.True(t, s.SharesEggGroup(bulbasaur))

	single := pokemon.Species{EggGroups: [2]pokemon.EggGroup{pokemon.Field, pokemon.Monster}}
	assert.False(t, single.EggGroupsInclude(pokemon.Monster), "second slot ignored when unset")
	assert.Equal(t, []pokemon.EggGroup{pokemon.Field}, single.EggGroupList())
}

func TestGenderlessLine(t *testing.T) {
	line, ok := pokemon.GenderlessLine(82)
	require.True(t, ok)
	assert.Equal(t, []uint16{81, 82, 462}, line.Members())
	assert.True(t, line.Contains(462))

	line, ok = pokemon.GenderlessLine(121)
	require.True(t, ok)
	assert.Equal(t, []uint16{120, 121}, line.Members())
	assert.False(t, line.Contains(0))

	_, ok = pokemon.GenderlessLine(6)
	assert.False(t, ok)

	magneton := pokemon.Species{Number: 82, Name: "Magneton", PercentageMale: "-1"}
	assert.True(t, magneton.IsGenderless())
	r, err := magneton.MaleRatio()
	require.NoError(t, err)
	assert.Zero(t, r)
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "SpecialAttack", pokemon.SpecialAttack.String())
	assert.Equal(t, "Adamant", pokemon.Adamant.String())
	assert.Equal(t, "Dragon", pokemon.DragonGroup.String())
	assert.Equal(t, "#006 Charizard", charizard().String())
	assert.Equal(t, "IV(42)", pokemon.IV(42).String())
}
