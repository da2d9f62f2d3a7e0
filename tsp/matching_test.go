package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/tsp"
)

// requirePerfectMatching asserts every node appears in exactly one edge.
func requirePerfectMatching(t *testing.T, nodes []geom.Point, edges []geom.Edge) {
	t.Helper()
	require.Len(t, edges, len(nodes)/2)

	count := map[[2]float64]int{}
	for _, e := range edges {
		require.False(t, e.From.Same(e.To), "self pair %v", e.From)
		count[e.From.Key()]++
		count[e.To.Key()]++
	}
	require.Len(t, count, len(nodes))
	for _, p := range nodes {
		assert.Equal(t, 1, count[p.Key()], "node %v", p)
	}
}

func TestMatch_BothStrategiesArePerfect(t *testing.T) {
	for _, n := range []int{2, 4, 10, 36, 80} {
		nodes := randomPoints(n, int64(n), 2000)
		for _, s := range []tsp.MatchStrategy{tsp.MatchAnt, tsp.MatchFallback, tsp.MatchAuto} {
			edges, err := tsp.MatchWithStrategy(nodes, s)
			require.NoError(t, err, "n=%d strategy=%d", n, s)
			requirePerfectMatching(t, nodes, edges)
		}
	}
}

func TestMatch_LargeInputUsesFallback(t *testing.T) {
	nodes := randomPoints(160, 8, 5000)
	opts := tsp.DefaultOptions().Matching
	edges, err := tsp.Match(nodes, opts)
	require.NoError(t, err)
	requirePerfectMatching(t, nodes, edges)
}

func TestMatch_Errors(t *testing.T) {
	_, err := tsp.MatchWithStrategy(randomPoints(5, 1, 100), tsp.MatchAuto)
	require.ErrorIs(t, err, tsp.ErrOddMatching)
	require.ErrorIs(t, err, geom.ErrInvalidInput)

	dup := []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(1, 1), geom.Pt(4, 4)}
	_, err = tsp.MatchWithStrategy(dup, tsp.MatchAnt)
	require.ErrorIs(t, err, geom.ErrDuplicatePoint)

	edges, err := tsp.MatchWithStrategy(nil, tsp.MatchAuto)
	require.NoError(t, err)
	assert.Empty(t, edges)

	bad := tsp.DefaultOptions().Matching
	bad.Strategy = tsp.MatchStrategy(7)
	_, err = tsp.Match(randomPoints(4, 1, 100), bad)
	require.ErrorIs(t, err, tsp.ErrBadOptions)
}

func TestMatch_PairsObviousNeighbours(t *testing.T) {
	// Two tight clusters far apart: both strategies must pair within clusters.
	nodes := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1000, 1000), geom.Pt(1001, 1000)}
	for _, s := range []tsp.MatchStrategy{tsp.MatchAnt, tsp.MatchFallback} {
		edges, err := tsp.MatchWithStrategy(nodes, s)
		require.NoError(t, err)
		for _, e := range edges {
			assert.InDelta(t, 1.0, e.Length(), 1e-12)
		}
	}
}
