package geom

import (
	"errors"
	"fmt"
)

// MaxCoordinate is the exclusive upper bound for X and Y.
const MaxCoordinate = 5_000_000

// MinPoints is the smallest instance the solvers accept.
const MinPoints = 4

// ErrInvalidInput is the root of every input-validation failure.
var ErrInvalidInput = errors.New("geom: invalid input")

// ErrTooFewPoints indicates fewer than MinPoints points.
var ErrTooFewPoints = fmt.Errorf("%w: fewer than %d points", ErrInvalidInput, MinPoints)

// ErrOutOfRange indicates a coordinate outside [0, MaxCoordinate) or a non-finite value.
var ErrOutOfRange = fmt.Errorf("%w: coordinate out of range", ErrInvalidInput)

// ErrDuplicatePoint indicates two points with identical coordinates.
var ErrDuplicatePoint = fmt.Errorf("%w: duplicate coordinates", ErrInvalidInput)

// ErrShapeMismatch indicates coordinate lists of different or zero length.
var ErrShapeMismatch = fmt.Errorf("%w: coordinate list shape mismatch", ErrInvalidInput)

// ErrResultInvariant is returned when a produced tour is not a Hamiltonian
// circuit over its input. It always signals an internal defect.
var ErrResultInvariant = errors.New("geom: result is not a Hamiltonian circuit")

// Point is a location in the plane. Weight is carried through unchanged and
// ignored by every algorithm.
type Point struct {
	X      float64
	Y      float64
	Weight float64
}

// Pt is shorthand for an unweighted Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Key returns the coordinate pair, usable as a map key for equality checks
// that must ignore Weight.
func (p Point) Key() [2]float64 { return [2]float64{p.X, p.Y} }

// Same reports whether p and q have identical coordinates.
func (p Point) Same(q Point) bool { return p.X == q.X && p.Y == q.Y }

// Edge is a directed pair of points. MST and matching treat it as undirected.
type Edge struct {
	From Point
	To   Point
}

// Reversed returns the edge with its endpoints swapped.
func (e Edge) Reversed() Edge { return Edge{From: e.To, To: e.From} }

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 { return Distance(e.From, e.To) }

// Orientation is the turn direction of an ordered point triple.
type Orientation int

const (
	// Clockwise marks a right turn.
	Clockwise Orientation = -1
	// Collinear marks three points on one line.
	Collinear Orientation = 0
	// CounterClockwise marks a left turn.
	CounterClockwise Orientation = 1
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "CW"
	case CounterClockwise:
		return "CCW"
	default:
		return "COLLINEAR"
	}
}
