package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/tsp"
)

func optsSeed(seed int64) tsp.Options {
	opt := tsp.DefaultOptions()
	opt.Seed = seed
	opt.LKPasses = 200
	opt.TwoOptPasses = 500
	return opt
}

func TestConstructTour_NNH_FivePoints(t *testing.T) {
	pts := fivePoints()
	res, err := tsp.ConstructTour(pts, tsp.ConstructNearestNeighbor, optsSeed(seedDet))
	require.NoError(t, err)

	require.Len(t, res.Order, 6, "closed order over 5 points")
	assert.Equal(t, res.Order[0], res.Order[5])
	seen := map[int]bool{}
	for _, v := range res.Order[:5] {
		require.False(t, seen[v], "index %d repeated", v)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
	requireHamiltonian(t, res.Tour, pts)
	assert.InDelta(t, res.Tour.Length(), res.Length, 1e-8)
}

func TestConstructTour_AllMethodsHamiltonian(t *testing.T) {
	methods := []tsp.Constructor{
		tsp.ConstructNearestNeighbor,
		tsp.ConstructDoubleMST,
		tsp.ConstructHullInsertion,
		tsp.ConstructChristofides,
		tsp.ConstructBestOfThree,
	}
	sets := map[string][]geom.Point{
		"five":   fivePoints(),
		"rand40": randomPoints(40, 11, 1000),
		"rand90": randomPoints(90, 12, 5000),
		"circle": circlePoints(24),
	}
	for name, pts := range sets {
		for _, m := range methods {
			t.Run(name+"/"+m.String(), func(t *testing.T) {
				res, err := tsp.ConstructTour(pts, m, optsSeed(seedDet))
				require.NoError(t, err)
				requireHamiltonian(t, res.Tour, pts)
				assert.Greater(t, res.Length, 0.0)
			})
		}
	}
}

func TestConstructTour_Deterministic(t *testing.T) {
	pts := randomPoints(50, 3, 2000)
	for _, m := range []tsp.Constructor{tsp.ConstructNearestNeighbor, tsp.ConstructChristofides, tsp.ConstructDoubleMST} {
		a, err := tsp.ConstructTour(pts, m, optsSeed(42))
		require.NoError(t, err)
		b, err := tsp.ConstructTour(pts, m, optsSeed(42))
		require.NoError(t, err)
		assert.Equal(t, a.Order, b.Order, m.String())
	}
}

func TestConstructTour_DoubleMSTBound(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		pts := randomPoints(60, seed, 3000)
		res, err := tsp.ConstructTour(pts, tsp.ConstructDoubleMST, optsSeed(seed))
		require.NoError(t, err)

		w := tsp.MSTWeight(tsp.PrimMST(pts, tsp.NewRNG(seed)))
		assert.LessOrEqual(t, res.Length, 2*w+epsLen, "seed %d", seed)
	}
}

func TestConstructTour_InvalidInput(t *testing.T) {
	_, err := tsp.ConstructTour(fivePoints()[:3], tsp.ConstructNearestNeighbor, tsp.DefaultOptions())
	require.ErrorIs(t, err, geom.ErrTooFewPoints)

	dup := append(fivePoints(), geom.Pt(1, 1))
	_, err = tsp.ConstructTour(dup, tsp.ConstructChristofides, tsp.DefaultOptions())
	require.ErrorIs(t, err, geom.ErrDuplicatePoint)

	_, err = tsp.ConstructTour(fivePoints(), tsp.Constructor(99), tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrUnknownMethod)
	require.ErrorIs(t, err, geom.ErrInvalidInput)

	bad := tsp.DefaultOptions()
	bad.LKSwapBias = 2
	_, err = tsp.ConstructTour(fivePoints(), tsp.ConstructNearestNeighbor, bad)
	require.ErrorIs(t, err, tsp.ErrBadOptions)
}

func TestHullInsertion_KeepsHullOrder(t *testing.T) {
	pts := fivePoints()
	tour, err := tsp.HullInsertion(pts)
	require.NoError(t, err)
	requireHamiltonian(t, tour, pts)

	// The optimal tour here visits the four corners in hull order with the
	// interior point between two adjacent corners.
	hull := tsp.ConvexHull(pts)
	pos := map[[2]float64]int{}
	for i, p := range tour {
		pos[p.Key()] = i
	}
	for i := range hull {
		a, b := pos[hull[i].Key()], pos[hull[(i+1)%len(hull)].Key()]
		gap := (b - a + len(tour)) % len(tour)
		assert.True(t, gap == 1 || gap == 2 || gap == len(tour)-1 || gap == len(tour)-2)
	}
}

func TestChristofides_SmallInputs(t *testing.T) {
	two := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1)}
	tour, err := tsp.Christofides(two, tsp.NewRNG(1), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, tour, 2)

	nine := randomPoints(9, 5, 100)
	tour, err = tsp.Christofides(nine, tsp.NewRNG(1), tsp.DefaultOptions())
	require.NoError(t, err)
	requireHamiltonian(t, tour, nine)
}
