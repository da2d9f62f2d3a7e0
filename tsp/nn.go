// Package tsp - nearest-neighbour walks.
//
// NearestNeighbor is the classic greedy constructor. NearestNeighborSprout is
// the bounded walk used by the ant-colony matching and by the movement
// fragments: every field point may be entered twice, the start's first copy
// is consumed up front, and the walk never steps onto a point at zero
// distance from its current position.
//
// Complexity: O(n²) for NearestNeighbor, O(length·n) for a sprout.
package tsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
)

// NearestNeighbor builds a tour starting from a uniformly random point and
// repeatedly stepping to the nearest unvisited point. The input is assumed
// validated (see geom.ValidatePoints).
func NearestNeighbor(pts []geom.Point, rng *rand.Rand) geom.Tour {
	if len(pts) == 0 {
		return nil
	}
	var start = orDefault(rng).Intn(len(pts))
	order := nearestNeighborOrder(pts, start)
	out := make(geom.Tour, len(order))
	var i int
	for i = range order {
		out[i] = pts[order[i]]
	}
	return out
}

// nearestNeighborOrder returns the NN visiting order from start as indices.
func nearestNeighborOrder(pts []geom.Point, start int) []int {
	var n = len(pts)
	visited := make([]bool, n)
	order := make([]int, 0, n)

	var (
		cur  = start
		next int
		best float64
		d    float64
		j    int
	)
	visited[cur] = true
	order = append(order, cur)
	for len(order) < n {
		next, best = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			d = geom.DistanceSquared(pts[cur], pts[j])
			if d < best {
				best, next = d, j
			}
		}
		visited[next] = true
		order = append(order, next)
		cur = next
	}
	return order
}

// NearestNeighborSprout walks at most length steps from field[start] and
// returns the visited indices, start first. Each field point can be entered
// at most twice; the start's first copy is consumed before the walk. The walk
// stops early when no reachable point at positive distance remains.
//
// length is clamped to 2·len(field). An out-of-range start yields nil.
func NearestNeighborSprout(field []geom.Point, start, length int) []int {
	var n = len(field)
	if start < 0 || start >= n || length <= 0 {
		return nil
	}
	if length > 2*n {
		length = 2 * n
	}

	// visits[i] counts the remaining entries for point i (the doubled table).
	visits := make([]int, n)
	var i int
	for i = range visits {
		visits[i] = 2
	}
	visits[start]--

	path := make([]int, 1, length+1)
	path[0] = start

	var (
		cur  = start
		next int
		best float64
		d    float64
		step int
	)
	for step = 0; step < length; step++ {
		next, best = -1, math.Inf(1)
		for i = 0; i < n; i++ {
			if visits[i] == 0 {
				continue
			}
			d = geom.DistanceSquared(field[cur], field[i])
			if d > 0 && d < best {
				best, next = d, i
			}
		}
		if next < 0 {
			break
		}
		visits[next]--
		path = append(path, next)
		cur = next
	}
	return path
}
