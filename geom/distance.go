// Package geom - distance and orientation primitives.
//
// Complexity: every function here is O(1) except the Tour helpers, which are O(n).
package geom

import "math"

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Sqrt(DistanceSquared(a, b))
}

// DistanceSquared returns the squared Euclidean distance between a and b.
func DistanceSquared(a, b Point) float64 {
	var (
		dx = a.X - b.X
		dy = a.Y - b.Y
	)
	return dx*dx + dy*dy
}

// Cross returns (b−a)×(c−a). Positive means c lies to the left of a→b.
func Cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// Orient classifies the turn a→b→c by the sign of Cross.
func Orient(a, b, c Point) Orientation {
	var v = Cross(a, b, c)
	switch {
	case v > 0:
		return CounterClockwise
	case v < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// Tour is an ordered, implicitly closed sequence of points: the last point
// connects back to the first, which is not repeated.
type Tour []Point

// Length returns the closed length of the tour. Tours shorter than two points
// have length 0.
func (t Tour) Length() float64 {
	var n = len(t)
	if n < 2 {
		return 0
	}
	var (
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += Distance(t[i], t[i+1])
	}
	return sum + Distance(t[n-1], t[0])
}

// Clone returns an independent copy of t.
func (t Tour) Clone() Tour {
	if t == nil {
		return nil
	}
	out := make(Tour, len(t))
	copy(out, t)
	return out
}

// Flat returns the tour as [x0,y0,x1,y1,...].
func (t Tour) Flat() []float64 {
	out := make([]float64, 0, 2*len(t))
	var i int
	for i = range t {
		out = append(out, t[i].X, t[i].Y)
	}
	return out
}

// Edges returns the n closing edges of the tour in order.
func (t Tour) Edges() []Edge {
	var n = len(t)
	if n < 2 {
		return nil
	}
	out := make([]Edge, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = Edge{From: t[i], To: t[(i+1)%n]}
	}
	return out
}

// Translate returns the point obtained by moving p toward q by fraction f of
// the remaining distance. Negative f moves away from q.
func Translate(p, q Point, f float64) Point {
	return Point{
		X:      p.X + (q.X-p.X)*f,
		Y:      p.Y + (q.Y-p.Y)*f,
		Weight: p.Weight,
	}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
