// Package tsp_test provides helpers shared across *_test.go files in this package.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/geom"
)

const (
	// seedDet is a deterministic seed for RNG-based components.
	seedDet = int64(7)

	// epsLen absorbs floating-point noise when comparing lengths.
	epsLen = 1e-9
)

// fivePoints is the square-plus-interior scenario: (3,4) lies inside the hull.
func fivePoints() []geom.Point {
	return []geom.Point{
		geom.Pt(3, 4), geom.Pt(1, 5), geom.Pt(1, 1), geom.Pt(5, 1), geom.Pt(5, 5),
	}
}

// randomPoints returns n distinct points on an integer grid in [0, span).
func randomPoints(n int, seed int64, span int) []geom.Point {
	r := rand.New(rand.NewSource(seed))
	seen := make(map[[2]float64]bool, n)
	out := make([]geom.Point, 0, n)
	for len(out) < n {
		p := geom.Pt(float64(r.Intn(span)), float64(r.Intn(span)))
		if seen[p.Key()] {
			continue
		}
		seen[p.Key()] = true
		out = append(out, p)
	}
	return out
}

// circlePoints returns n points on a circle; the optimal tour is the polygon.
func circlePoints(n int) []geom.Point {
	out := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = geom.Pt(1000+500*math.Cos(a), 1000+500*math.Sin(a))
	}
	return out
}

// requireHamiltonian asserts that tour visits every point exactly once.
func requireHamiltonian(t *testing.T, tour geom.Tour, pts []geom.Point) {
	t.Helper()
	require.NoError(t, geom.CheckHamiltonian(tour, pts))
}

// scrambled returns pts in a shuffled order as a tour.
func scrambled(pts []geom.Point, seed int64) geom.Tour {
	out := geom.Tour(pts).Clone()
	r := rand.New(rand.NewSource(seed))
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
