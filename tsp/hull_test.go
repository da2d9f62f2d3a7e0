package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/tsp"
)

func TestConvexHull_FivePoints(t *testing.T) {
	hull := tsp.ConvexHull(fivePoints())
	require.Len(t, hull, 4)

	assert.Equal(t, geom.Pt(5, 1), hull[0], "pivot is the lowest of the rightmost points")
	assert.NotContains(t, hull, geom.Pt(3, 4))
	assert.ElementsMatch(t, []geom.Point{geom.Pt(5, 1), geom.Pt(5, 5), geom.Pt(1, 5), geom.Pt(1, 1)}, hull)
}

func TestConvexHull_DropsCollinear(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2), geom.Pt(2, 1)}
	hull := tsp.ConvexHull(pts)
	assert.ElementsMatch(t, []geom.Point{geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2)}, hull)
}

func TestConvexHull_EnclosesAndTurnsLeft(t *testing.T) {
	pts := randomPoints(200, 9, 10000)
	hull := tsp.ConvexHull(pts)
	require.GreaterOrEqual(t, len(hull), 3)

	m := len(hull)
	for i := 0; i < m; i++ {
		a, b, c := hull[i], hull[(i+1)%m], hull[(i+2)%m]
		assert.Equal(t, geom.CounterClockwise, geom.Orient(a, b, c))
		for _, p := range pts {
			assert.GreaterOrEqual(t, geom.Cross(a, b, p), 0.0, "point %v outside edge %v→%v", p, a, b)
		}
	}
	assert.Len(t, tsp.HullEdges(hull), m)
}

func TestConvexHull_Degenerate(t *testing.T) {
	assert.Len(t, tsp.ConvexHull([]geom.Point{geom.Pt(1, 1), geom.Pt(2, 2)}), 2)

	line := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 1), geom.Pt(2, 2), geom.Pt(3, 3)}
	hull := tsp.ConvexHull(line)
	assert.ElementsMatch(t, []geom.Point{geom.Pt(0, 0), geom.Pt(3, 3)}, hull)
}
