package som_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/som"
)

func runConfig(iterations int, maxDistance float64) som.Config {
	cfg := som.DefaultConfig()
	cfg.MaxIterations = iterations
	cfg.MaxDistance = maxDistance
	cfg.Seed = 7
	return cfg
}

func TestRun_OneNeuronMovesByLearningRate(t *testing.T) {
	inputs := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10)}
	neurons := []geom.Point{geom.Pt(5, 5)}

	for seed := int64(1); seed <= 8; seed++ {
		cfg := runConfig(1, 14.142)
		cfg.Seed = seed
		got, err := som.Run(inputs, neurons, cfg, nil)
		require.NoError(t, err)
		require.Len(t, got, 1)

		p := got[0].Point
		step := 5 * som.DefaultLearningRate
		switch got[0].Cluster {
		case 0:
			assert.InDelta(t, 5-step, p.X, 1e-12)
			assert.InDelta(t, 5-step, p.Y, 1e-12)
		case 1:
			assert.InDelta(t, 5+step, p.X, 1e-12)
			assert.InDelta(t, 5+step, p.Y, 1e-12)
		default:
			t.Fatalf("cluster %d", got[0].Cluster)
		}
		assert.False(t, p.Same(inputs[0]) || p.Same(inputs[1]))
	}
	assert.Equal(t, geom.Pt(5, 5), neurons[0], "input slice untouched")
}

func TestRun_NeuronNeverRestsOnInput(t *testing.T) {
	inputs := []geom.Point{geom.Pt(0, 0)}
	got, err := som.Run(inputs, []geom.Point{geom.Pt(0, 0)}, runConfig(1, 10), nil)
	require.NoError(t, err)

	p := got[0].Point
	assert.GreaterOrEqual(t, p.X, som.CollisionMin)
	assert.Less(t, p.X, som.CollisionMax)
	assert.LessOrEqual(t, p.Y, -som.CollisionMin)
	assert.Greater(t, p.Y, -som.CollisionMax)
}

func TestRun_SeparatesCoincidentNeurons(t *testing.T) {
	inputs := []geom.Point{geom.Pt(0, 0), geom.Pt(50, 0)}
	neurons := []geom.Point{geom.Pt(20, 20), geom.Pt(20, 20), geom.Pt(20, 20)}
	got, err := som.Run(inputs, neurons, runConfig(10, 50), nil)
	require.NoError(t, err)

	seen := map[[2]float64]bool{}
	for _, a := range got {
		assert.False(t, seen[a.Point.Key()], "duplicate neuron %v", a.Point)
		seen[a.Point.Key()] = true
	}
}

func TestRun_PullsTowardInputs(t *testing.T) {
	target := geom.Pt(100, 100)
	r := rand.New(rand.NewSource(3))
	neurons := make([]geom.Point, 20)
	for i := range neurons {
		neurons[i] = geom.Pt(float64(r.Intn(80)), float64(r.Intn(80)))
	}
	got, err := som.Run([]geom.Point{target}, neurons, runConfig(200, 140), nil)
	require.NoError(t, err)
	for i, a := range got {
		assert.Less(t, geom.Distance(a.Point, target), geom.Distance(neurons[i], target))
		assert.Equal(t, 0, a.Cluster)
	}
}

func TestRun_GenomeIsConsumed(t *testing.T) {
	inputs := []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0), geom.Pt(50, 90)}
	neurons := []geom.Point{geom.Pt(40, 30), geom.Pt(60, 30), geom.Pt(50, 50)}

	genome := logic.StackOf(3, 1, 4, 5, 2, 0, 99, 3)
	got, err := som.Run(inputs, neurons, runConfig(5, 100), genome)
	require.NoError(t, err)
	assert.True(t, genome.Empty())
	require.Len(t, got, 3)
	for _, a := range got {
		assert.True(t, a.Cluster >= 0 && a.Cluster < len(inputs))
	}
}

func TestRun_Errors(t *testing.T) {
	pts := []geom.Point{geom.Pt(1, 1)}
	_, err := som.Run(nil, pts, runConfig(1, 1), nil)
	require.ErrorIs(t, err, geom.ErrShapeMismatch)
	require.ErrorIs(t, err, geom.ErrInvalidInput)
	_, err = som.Run(pts, nil, runConfig(1, 1), nil)
	require.ErrorIs(t, err, geom.ErrShapeMismatch)

	_, err = som.Run(pts, pts, runConfig(0, 1), nil)
	require.ErrorIs(t, err, som.ErrBadConfig)
	_, err = som.Run(pts, pts, runConfig(1, 0), nil)
	require.ErrorIs(t, err, som.ErrBadConfig)

	bad := runConfig(1, 1)
	bad.LearningRate = 1.5
	_, err = som.Run(pts, pts, bad, nil)
	require.ErrorIs(t, err, geom.ErrInvalidInput)

	_, err = som.RunXY([]float64{0, 1}, []float64{0}, []float64{2}, []float64{2}, runConfig(1, 1), nil)
	require.ErrorIs(t, err, geom.ErrShapeMismatch)
	got, err := som.RunXY([]float64{0, 10}, []float64{0, 10}, []float64{5}, []float64{5}, runConfig(1, 14), nil)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
