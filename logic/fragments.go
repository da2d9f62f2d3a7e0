// Package logic - built-in movement rules.
//
// Every rule works on a local view of the field: the origin first, then the
// field points that differ from it. Rules that need a partner point and find
// none report ok=false.
package logic

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/tsp"
)

const (
	// sproutSteps is the walk length of SproutThird.
	sproutSteps = 3

	// sproutNodes is the node count ChristofidesSprout needs and samples.
	sproutNodes = 9

	nudgeUp    = 1.3
	nudgeDown  = 0.7
	nudgeLeft  = 0.7
	nudgeRight = 1.3
)

// Traverse moves p toward q by fraction t of the remaining distance; a
// negative t moves away. Fractions with |t| ≥ 1 would land on or past q
// (or flip through p) and leave p unchanged.
func Traverse(p, q geom.Point, t float64) geom.Point {
	if t >= 1 || t <= -1 {
		return p
	}
	return geom.Translate(p, q, t)
}

// SproutThird walks three nearest-neighbour steps from origin and moves
// toward the last node reached.
func SproutThird(origin geom.Point, field []geom.Point, threshold float64, _ *rand.Rand) (geom.Point, bool) {
	local := withOrigin(origin, field)
	path := tsp.NearestNeighborSprout(local, 0, sproutSteps)
	if len(path) < 2 {
		return origin, false
	}
	var target = local[path[len(path)-1]]
	if target.Same(origin) {
		return origin, false
	}
	return Traverse(origin, target, threshold), true
}

// ChristofidesSprout samples nine nodes with a nearest-neighbour sprout,
// tours them with Christofides and moves toward the tour neighbour of the
// origin's nearest node on the side away from the origin.
func ChristofidesSprout(origin geom.Point, field []geom.Point, threshold float64, rng *rand.Rand) (geom.Point, bool) {
	local := withOrigin(origin, field)
	if len(local) < sproutNodes {
		return origin, false
	}
	nodes := distinctPath(local, tsp.NearestNeighborSprout(local, 0, sproutNodes-1))
	if len(nodes) < 3 {
		return origin, false
	}
	tour, err := tsp.Christofides(nodes, rng, tsp.Options{})
	if err != nil {
		return origin, false
	}
	near, ok := nearestOther(origin, nodes)
	if !ok {
		return origin, false
	}

	var (
		m   = len(tour)
		pos = -1
		i   int
	)
	for i = range tour {
		if tour[i].Same(near) {
			pos = i
			break
		}
	}
	if pos < 0 {
		return origin, false
	}
	var target = tour[(pos+1)%m]
	if target.Same(origin) {
		target = tour[(pos+m-1)%m]
	}
	return Traverse(origin, target, threshold), true
}

// TowardNearest moves toward the nearest other node.
func TowardNearest(origin geom.Point, field []geom.Point, threshold float64, _ *rand.Rand) (geom.Point, bool) {
	q, ok := nearestOther(origin, field)
	if !ok {
		return origin, false
	}
	return Traverse(origin, q, threshold), true
}

// TowardRandom moves toward a uniformly drawn field node. Drawing the
// origin itself is a no-op.
func TowardRandom(origin geom.Point, field []geom.Point, threshold float64, rng *rand.Rand) (geom.Point, bool) {
	if len(field) == 0 {
		return origin, false
	}
	var q = field[rng.Intn(len(field))]
	if q.Same(origin) {
		return origin, false
	}
	return Traverse(origin, q, threshold), true
}

// AwayFromNearest moves away from the nearest node by threshold, then
// scales one coordinate: up y·1.3, down y·0.7, left x·0.7 or right x·1.3.
func AwayFromNearest(origin geom.Point, field []geom.Point, threshold float64, rng *rand.Rand) (geom.Point, bool) {
	q, ok := nearestOther(origin, field)
	if !ok {
		return origin, false
	}
	p := Traverse(origin, q, -threshold)
	switch rng.Intn(4) {
	case 0:
		p.Y *= nudgeUp
	case 1:
		p.Y *= nudgeDown
	case 2:
		p.X *= nudgeLeft
	default:
		p.X *= nudgeRight
	}
	return p, true
}

// withOrigin returns origin followed by the field points distinct from it.
func withOrigin(origin geom.Point, field []geom.Point) []geom.Point {
	out := make([]geom.Point, 1, len(field)+1)
	out[0] = origin
	var i int
	for i = range field {
		if !field[i].Same(origin) {
			out = append(out, field[i])
		}
	}
	return out
}

// distinctPath maps sprout indices to points, keeping first visits only.
func distinctPath(local []geom.Point, path []int) []geom.Point {
	seen := make(map[[2]float64]struct{}, len(path))
	out := make([]geom.Point, 0, len(path))
	var (
		i  int
		p  geom.Point
		ok bool
	)
	for i = range path {
		p = local[path[i]]
		if _, ok = seen[p.Key()]; ok {
			continue
		}
		seen[p.Key()] = struct{}{}
		out = append(out, p)
	}
	return out
}

// nearestOther returns the field point closest to origin at positive distance.
func nearestOther(origin geom.Point, field []geom.Point) (geom.Point, bool) {
	var (
		best  = math.Inf(1)
		found bool
		q     geom.Point
		d     float64
		i     int
	)
	for i = range field {
		d = geom.DistanceSquared(origin, field[i])
		if d > 0 && d < best {
			best, q, found = d, field[i], true
		}
	}
	return q, found
}
