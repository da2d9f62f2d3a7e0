package evolve_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/evolve"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/tsp"
)

// synthetic builds members with the given lengths and no tours.
func synthetic(lengths ...float64) evolve.Population {
	pop := make(evolve.Population, len(lengths))
	for i, l := range lengths {
		pop[i] = &evolve.Chromosome{ID: uuid.New(), Length: l, Genome: logic.StackOf(1, 2, 3)}
	}
	return pop
}

func TestCull_FloorKeepsBest(t *testing.T) {
	pop := synthetic(10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21)
	required := pop.Required(evolve.MinRequirement)

	out, culled := pop.Cull(required, rand.New(rand.NewSource(1)), tsp.NopLogger())
	require.Len(t, out, evolve.PopulationFloor)
	assert.Equal(t, 8, culled)
	assert.Equal(t, []float64{10, 19, 20, 21}, out.Lengths())
	assert.Equal(t, 0, out.Best())
}

func TestCull_LooseRequirementKeepsBest(t *testing.T) {
	pop := synthetic(10, 12, 14, 16, 18, 20)
	for seed := int64(1); seed <= 50; seed++ {
		out, culled := pop.Cull(pop.Required(evolve.MaxRequirement), rand.New(rand.NewSource(seed)), tsp.NopLogger())
		require.Equal(t, len(pop)-culled, len(out))
		require.GreaterOrEqual(t, len(out), evolve.PopulationFloor)
		assert.Equal(t, 10.0, out.Lengths()[out.Best()])
	}
}

func TestCull_SmallPopulationUntouched(t *testing.T) {
	pop := synthetic(1, 100, 200, 300)
	out, culled := pop.Cull(pop.Required(evolve.MinRequirement), rand.New(rand.NewSource(1)), tsp.NopLogger())
	assert.Equal(t, 0, culled)
	assert.Equal(t, pop.Lengths(), out.Lengths())
}

func TestPopulation_BestAndRequired(t *testing.T) {
	var empty evolve.Population
	assert.Equal(t, -1, empty.Best())

	pop := synthetic(5, 2, 9)
	assert.Equal(t, 1, pop.Best())
	assert.InDelta(t, 2.5, pop.Required(1.25), 1e-12)
}

func TestPair_ScratchFollowsMembers(t *testing.T) {
	pop := evolve.Population{
		{ID: uuid.New(), Genome: logic.StackOf(1, 2, 3, 4, 5)},
		{ID: uuid.New(), Genome: logic.StackOf(1, 2, 3, 4, 5)},
		{ID: uuid.New(), Genome: logic.StackOf(5, 4, 3, 2, 1)},
		{ID: uuid.New(), Genome: logic.StackOf(2, 2, 2, 2, 3)},
		{ID: uuid.New(), Genome: logic.StackOf(1, 1, 1, 1, 1)},
	}
	ids := make(map[uuid.UUID]bool, len(pop))
	for _, c := range pop {
		ids[c.ID] = true
	}

	scratch := pop.Pair()
	require.Len(t, scratch, len(pop))
	for i, c := range pop {
		require.True(t, ids[c.ID])
		delete(ids, c.ID)
		// a scratch copy may lose its top values, never its bottom ones
		vals := c.Genome.Values()
		require.LessOrEqual(t, scratch[i].Len(), len(vals))
		assert.Equal(t, vals[:scratch[i].Len()], scratch[i].Values())
		assert.Equal(t, 5, c.Genome.Len())
	}
	assert.Empty(t, ids)
}
