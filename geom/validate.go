// Package geom - boundary validation.
//
// ValidatePoints guards every public entry point; CheckHamiltonian and
// IndexOrder re-validate produced tours so that a defective result is never
// returned as if it were valid.
//
// Complexity: O(n) expected time, O(n) space (one hash set).
package geom

import "math"

// ValidatePoints checks the collaborator contract: at least MinPoints points,
// finite coordinates in [0, MaxCoordinate), no duplicate coordinates.
func ValidatePoints(pts []Point) error {
	if len(pts) < MinPoints {
		return ErrTooFewPoints
	}
	return validateCoordinates(pts)
}

// ValidateDistinct applies the range and duplicate checks without the
// minimum-size rule. Sub-problems (matching nodes, fragment fields) use it.
func ValidateDistinct(pts []Point) error {
	return validateCoordinates(pts)
}

func validateCoordinates(pts []Point) error {
	seen := make(map[[2]float64]struct{}, len(pts))

	var (
		i  int
		p  Point
		ok bool
	)
	for i = range pts {
		p = pts[i]
		if !inRange(p.X) || !inRange(p.Y) {
			return ErrOutOfRange
		}
		if _, ok = seen[p.Key()]; ok {
			return ErrDuplicatePoint
		}
		seen[p.Key()] = struct{}{}
	}
	return nil
}

func inRange(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	return v >= 0 && v < MaxCoordinate
}

// FromXY zips parallel coordinate lists into points.
// Lists of different length, or empty lists, yield ErrShapeMismatch.
func FromXY(xs, ys []float64) ([]Point, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return nil, ErrShapeMismatch
	}
	out := make([]Point, len(xs))
	var i int
	for i = range xs {
		out[i] = Point{X: xs[i], Y: ys[i]}
	}
	return out, nil
}

// IndexOrder maps tour back to indices of points and returns a closed index
// sequence (len n+1, order[0] == order[n]). Any point that is missing,
// repeated or foreign yields ErrResultInvariant.
func IndexOrder(tour Tour, points []Point) ([]int, error) {
	var n = len(points)
	if len(tour) != n || n == 0 {
		return nil, ErrResultInvariant
	}
	index := make(map[[2]float64]int, n)
	var i int
	for i = range points {
		index[points[i].Key()] = i
	}

	var (
		seen  = make([]bool, n)
		order = make([]int, n+1)
		idx   int
		ok    bool
	)
	for i = range tour {
		idx, ok = index[tour[i].Key()]
		if !ok || seen[idx] {
			return nil, ErrResultInvariant
		}
		seen[idx] = true
		order[i] = idx
	}
	order[n] = order[0]
	return order, nil
}

// CheckHamiltonian reports ErrResultInvariant unless tour visits every point
// of points exactly once.
func CheckHamiltonian(tour Tour, points []Point) error {
	_, err := IndexOrder(tour, points)
	return err
}

// FromOrder builds a Tour from an index permutation over points. A closing
// repeat of the first index is tolerated and dropped.
func FromOrder(order []int, points []Point) (Tour, error) {
	var m = len(order)
	if m > 1 && order[0] == order[m-1] {
		m--
	}
	if m != len(points) {
		return nil, ErrResultInvariant
	}
	out := make(Tour, m)
	var i int
	for i = 0; i < m; i++ {
		if order[i] < 0 || order[i] >= len(points) {
			return nil, ErrResultInvariant
		}
		out[i] = points[order[i]]
	}
	return out, nil
}
