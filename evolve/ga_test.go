package evolve_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/evolve"
	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
)

func TestEvolveGA_Hamiltonian(t *testing.T) {
	pts := randomPoints(20, 4, 500)
	cfg := smallConfig()
	cfg.PopulationSize = 5
	var reports []evolve.GenerationReport
	cfg.OnGeneration = func(r evolve.GenerationReport) { reports = append(reports, r) }

	res, err := evolve.EvolveGA(pts, cfg, evolve.GAOptions{})
	require.NoError(t, err)
	require.NoError(t, geom.CheckHamiltonian(res.Tour, pts))

	require.Len(t, reports, 2)
	for _, r := range reports {
		assert.Equal(t, 6, r.Size)
		assert.GreaterOrEqual(t, r.StdDev, 0.0)
	}
}

func TestEvolveGA_BadOptions(t *testing.T) {
	pts := randomPoints(10, 1, 100)
	_, err := evolve.EvolveGA(pts, smallConfig(), evolve.GAOptions{MutRate: 1.5})
	require.ErrorIs(t, err, evolve.ErrBadConfig)
	_, err = evolve.EvolveGA(pts, smallConfig(), evolve.GAOptions{CrossRate: -0.1})
	require.ErrorIs(t, err, evolve.ErrBadConfig)
}

func TestChromosome_CrossoverLineage(t *testing.T) {
	a := &evolve.Chromosome{ID: uuid.New(), Genome: logic.StackOf(1, 2, 3, 4, 5)}
	b := &evolve.Chromosome{ID: uuid.New(), Genome: logic.StackOf(5, 4, 3, 2, 1)}
	ida, idb := a.ID, b.ID

	a.Crossover(b, rand.New(rand.NewSource(3)))
	for _, c := range []*evolve.Chromosome{a, b} {
		assert.NotEqual(t, ida, c.ID)
		assert.NotEqual(t, idb, c.ID)
		assert.Equal(t, [2]uuid.UUID{ida, idb}, c.Parents)
		for _, v := range c.Genome.Values() {
			assert.True(t, logic.DefaultRegistry().Valid(v), "id %d", v)
		}
	}
	assert.NotEqual(t, a.ID, b.ID)
}

func TestChromosome_CloneIsDeep(t *testing.T) {
	c := &evolve.Chromosome{
		ID:     uuid.New(),
		Tour:   geom.Tour{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)},
		Genome: logic.StackOf(1, 2),
		Length: 4,
	}
	cc := c.Clone().(*evolve.Chromosome)
	cc.Tour[0] = geom.Pt(9, 9)
	cc.Genome.Push(3)

	assert.Equal(t, geom.Pt(0, 0), c.Tour[0])
	assert.Equal(t, []int{1, 2}, c.Genome.Values())
	assert.Equal(t, c.ID, cc.ID)
	assert.Equal(t, 4.0, cc.Length)
}
