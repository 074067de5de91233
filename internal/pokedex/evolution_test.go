package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/model"
)

func eeveeChain() []model.Species {
	return []model.Species{
		{Number: 133, Name: "Eevee", EvolutionChainID: 67},
		{Number: 136, Name: "Flareon", EvolutionChainID: 67, EvolvesFrom: intPtr(133)},
		{Number: 134, Name: "Vaporeon", EvolutionChainID: 67, EvolvesFrom: intPtr(133)},
		{Number: 135, Name: "Jolteon", EvolutionChainID: 67, EvolvesFrom: intPtr(133)},
		{Number: 25, Name: "Pikachu", EvolutionChainID: 10, EvolvesFrom: intPtr(172)},
		{Number: 26, Name: "Raichu", EvolutionChainID: 10, EvolvesFrom: intPtr(25)},
		{Number: 172, Name: "Pichu", EvolutionChainID: 10},
		{Number: 132, Name: "Ditto", EvolutionChainID: 66},
	}
}

func stageNumbers(stages []Stage) []int {
	out := make([]int, 0, len(stages))
	for _, s := range stages {
		out = append(out, s.Species.Number)
	}
	return out
}

func TestBuildEvolutionChain(t *testing.T) {
	t.Run("linear chain from middle stage", func(t *testing.T) {
		root, err := BuildEvolutionChain(eeveeChain(), 25)
		require.NoError(t, err)
		assert.Equal(t, 172, root.Species.Number)
		require.Len(t, root.EvolvesTo, 1)
		assert.Equal(t, 25, root.EvolvesTo[0].Species.Number)
		require.Len(t, root.EvolvesTo[0].EvolvesTo, 1)
		assert.Equal(t, 26, root.EvolvesTo[0].EvolvesTo[0].Species.Number)
	})

	t.Run("branching children sorted", func(t *testing.T) {
		root, err := BuildEvolutionChain(eeveeChain(), 136)
		require.NoError(t, err)
		assert.Equal(t, 133, root.Species.Number)
		assert.Equal(t, []int{133, 134, 135, 136}, stageNumbers(Flatten(root)))
	})

	t.Run("single stage", func(t *testing.T) {
		root, err := BuildEvolutionChain(eeveeChain(), 132)
		require.NoError(t, err)
		assert.Equal(t, 132, root.Species.Number)
		assert.Empty(t, root.EvolvesTo)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := BuildEvolutionChain(eeveeChain(), 999)
		assert.ErrorIs(t, err, ErrSpeciesNotFound)
	})

	t.Run("cycle does not loop", func(t *testing.T) {
		species := []model.Species{
			{Number: 10, EvolutionChainID: 5, EvolvesFrom: intPtr(11)},
			{Number: 11, EvolutionChainID: 5, EvolvesFrom: intPtr(10)},
		}
		root, err := BuildEvolutionChain(species, 11)
		require.NoError(t, err)
		assert.Equal(t, 10, root.Species.Number)
		assert.Equal(t, []int{10, 11}, stageNumbers(Flatten(root)))
	})

	t.Run("target inside cycle of split chain", func(t *testing.T) {
		species := []model.Species{
			{Number: 1, EvolutionChainID: 9},
			{Number: 2, EvolutionChainID: 9, EvolvesFrom: intPtr(1)},
			{Number: 3, EvolutionChainID: 9, EvolvesFrom: intPtr(4)},
			{Number: 4, EvolutionChainID: 9, EvolvesFrom: intPtr(3)},
		}
		root, err := BuildEvolutionChain(species, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, root.Species.Number)
		assert.Equal(t, []int{3, 4}, stageNumbers(Flatten(root)))
	})

	t.Run("stage hanging below cycle", func(t *testing.T) {
		species := []model.Species{
			{Number: 3, EvolutionChainID: 9, EvolvesFrom: intPtr(4)},
			{Number: 4, EvolutionChainID: 9, EvolvesFrom: intPtr(3)},
			{Number: 5, EvolutionChainID: 9, EvolvesFrom: intPtr(4)},
		}
		root, err := BuildEvolutionChain(species, 5)
		require.NoError(t, err)
		assert.Equal(t, 3, root.Species.Number)
		assert.Contains(t, stageNumbers(Flatten(root)), 5)
	})

	t.Run("dangling parent becomes root", func(t *testing.T) {
		species := []model.Species{
			{Number: 20, EvolutionChainID: 8, EvolvesFrom: intPtr(999)},
			{Number: 21, EvolutionChainID: 8, EvolvesFrom: intPtr(20)},
		}
		root, err := BuildEvolutionChain(species, 21)
		require.NoError(t, err)
		assert.Equal(t, 20, root.Species.Number)
	})

	t.Run("no chain id stands alone", func(t *testing.T) {
		species := []model.Species{{Number: 1}, {Number: 2}}
		root, err := BuildEvolutionChain(species, 2)
		require.NoError(t, err)
		assert.Equal(t, 2, root.Species.Number)
		assert.Empty(t, root.EvolvesTo)
	})
}

func TestFlattenDepth(t *testing.T) {
	root, err := BuildEvolutionChain(eeveeChain(), 26)
	require.NoError(t, err)
	stages := Flatten(root)
	require.Len(t, stages, 3)
	assert.Equal(t, 0, stages[0].Depth)
	assert.Equal(t, 1, stages[1].Depth)
	assert.Equal(t, 2, stages[2].Depth)
	assert.Nil(t, Flatten(nil))
}
