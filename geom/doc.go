// Package geom is the geometry kernel shared by every solver in somtsp.
//
// It defines the planar data model (Point, Edge, Tour), the distance and
// orientation primitives, and the input/result validation used at the
// boundaries of the public API.
//
// What's inside:
//
//   - Distance / DistanceSquared: Euclidean metric; the squared form is used
//     wherever only the relative order of distances matters.
//   - Cross / Orient: signed area of (b−a)×(c−a) and its sign as an Orientation.
//   - Tour: an implicitly closed ordered sequence of points with Length, Clone, Flat.
//   - ValidatePoints: rejects fewer than MinPoints points, coordinates outside
//     [0, MaxCoordinate), NaN/Inf and duplicate coordinates.
//   - CheckHamiltonian / IndexOrder: post-hoc verification that a tour visits
//     every input point exactly once.
//
// Error taxonomy (all sentinels, compare with errors.Is):
//
//	ErrInvalidInput
//	 ├─ ErrTooFewPoints
//	 ├─ ErrOutOfRange
//	 ├─ ErrDuplicatePoint
//	 └─ ErrShapeMismatch
//	ErrResultInvariant
//
// All functions are pure; nothing here allocates shared state.
package geom
