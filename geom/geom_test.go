package geom_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/somtsp/geom"
)

func TestDistance_Basics(t *testing.T) {
	a := geom.Pt(0, 0)
	b := geom.Pt(3, 4)

	assert.Equal(t, 5.0, geom.Distance(a, b))
	assert.Equal(t, 25.0, geom.DistanceSquared(a, b))
	assert.Equal(t, 0.0, geom.Distance(b, b))
	assert.Equal(t, geom.Distance(a, b), geom.Distance(b, a))
}

func TestDistance_NonNegativeAndTriangle(t *testing.T) {
	pts := []geom.Point{geom.Pt(1, 7), geom.Pt(10, 2), geom.Pt(4, 4), geom.Pt(9, 9)}
	for _, a := range pts {
		for _, b := range pts {
			require.GreaterOrEqual(t, geom.Distance(a, b), 0.0)
			for _, c := range pts {
				assert.LessOrEqual(t, geom.Distance(a, c), geom.Distance(a, b)+geom.Distance(b, c)+1e-9)
			}
		}
	}
}

func TestOrient(t *testing.T) {
	a, b := geom.Pt(0, 0), geom.Pt(1, 0)

	assert.Equal(t, geom.CounterClockwise, geom.Orient(a, b, geom.Pt(1, 1)))
	assert.Equal(t, geom.Clockwise, geom.Orient(a, b, geom.Pt(1, -1)))
	assert.Equal(t, geom.Collinear, geom.Orient(a, b, geom.Pt(2, 0)))
	// Sub-unit cross products must not collapse to collinear.
	assert.Equal(t, geom.CounterClockwise, geom.Orient(a, b, geom.Pt(0.5, 0.25)))
	assert.Equal(t, "CCW", geom.CounterClockwise.String())
}

func TestTour_LengthCloneFlat(t *testing.T) {
	sq := geom.Tour{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)}

	assert.InDelta(t, 4.0, sq.Length(), 1e-12)
	assert.Equal(t, []float64{0, 0, 1, 0, 1, 1, 0, 1}, sq.Flat())
	assert.Len(t, sq.Edges(), 4)

	cp := sq.Clone()
	cp[0] = geom.Pt(5, 5)
	assert.Equal(t, geom.Pt(0, 0), sq[0])
	assert.Equal(t, 0.0, geom.Tour{geom.Pt(1, 1)}.Length())
}

func TestTranslate(t *testing.T) {
	p := geom.Translate(geom.Pt(0, 0), geom.Pt(10, 20), 0.5)
	assert.Equal(t, geom.Pt(5, 10), p)

	away := geom.Translate(geom.Pt(0, 0), geom.Pt(10, 0), -0.5)
	assert.Equal(t, geom.Pt(-5, 0), away)
	assert.Equal(t, geom.Pt(1, 2), geom.Midpoint(geom.Pt(0, 0), geom.Pt(2, 4)))
}

func TestValidatePoints(t *testing.T) {
	good := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)}
	require.NoError(t, geom.ValidatePoints(good))

	cases := []struct {
		name string
		pts  []geom.Point
		want error
	}{
		{"too few", good[:3], geom.ErrTooFewPoints},
		{"negative", append([]geom.Point{geom.Pt(-1, 0)}, good[1:]...), geom.ErrOutOfRange},
		{"too large", append([]geom.Point{geom.Pt(geom.MaxCoordinate, 0)}, good[1:]...), geom.ErrOutOfRange},
		{"nan", append([]geom.Point{geom.Pt(math.NaN(), 0)}, good[1:]...), geom.ErrOutOfRange},
		{"duplicate", append(good, geom.Pt(1, 1)), geom.ErrDuplicatePoint},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := geom.ValidatePoints(tc.pts)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, geom.ErrInvalidInput)
		})
	}
}

func TestFromXY(t *testing.T) {
	pts, err := geom.FromXY([]float64{1, 2}, []float64{3, 4})
	require.NoError(t, err)
	assert.Equal(t, []geom.Point{geom.Pt(1, 3), geom.Pt(2, 4)}, pts)

	_, err = geom.FromXY([]float64{1, 2}, []float64{3})
	require.ErrorIs(t, err, geom.ErrShapeMismatch)
	require.True(t, errors.Is(err, geom.ErrInvalidInput))
}

func TestCheckHamiltonian(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(1, 0), geom.Pt(1, 1), geom.Pt(0, 1)}
	tour := geom.Tour{pts[2], pts[3], pts[0], pts[1]}

	order, err := geom.IndexOrder(tour, pts)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3, 0, 1, 2}, order)

	back, err := geom.FromOrder(order, pts)
	require.NoError(t, err)
	assert.Equal(t, tour, back)

	require.ErrorIs(t, geom.CheckHamiltonian(tour[:3], pts), geom.ErrResultInvariant)
	dup := geom.Tour{pts[0], pts[0], pts[1], pts[2]}
	require.ErrorIs(t, geom.CheckHamiltonian(dup, pts), geom.ErrResultInvariant)
	foreign := geom.Tour{pts[0], pts[1], pts[2], geom.Pt(9, 9)}
	require.ErrorIs(t, geom.CheckHamiltonian(foreign, pts), geom.ErrResultInvariant)
}
