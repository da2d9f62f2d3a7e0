// Package tsp - convex-hull cheapest insertion.
//
// Start from the hull cycle and insert the inner points one by one:
//
//   - Selection: the inner point orthogonally closest to a cycle edge whose
//     foot of perpendicular falls between the edge endpoints, provided it is
//     closer than the nearest inner-point/cycle-vertex distance. Otherwise
//     that nearest inner point is taken.
//   - Placement: the edge (c1,c2) minimising d²(p,c1) + d²(p,c2) − d²(c1,c2).
//
// The betweenness test uses orientation: p and its foot F lie "between" c1
// and c2 when the turns p→F→c1 and p→F→c2 differ.
//
// Complexity: O(n²·h) per insertion in the worst case, O(n³) overall.
package tsp

import (
	"math"

	"github.com/katalvlaran/somtsp/geom"
)

// HullInsertion builds a tour from the convex hull by repeated insertion.
func HullInsertion(pts []geom.Point) (geom.Tour, error) {
	if err := geom.ValidateDistinct(pts); err != nil {
		return nil, err
	}
	var n = len(pts)
	if n < 4 {
		return geom.Tour(pts).Clone(), nil
	}

	cycle := hullIndices(pts)
	inCycle := make([]bool, n)
	var i int
	for i = range cycle {
		inCycle[cycle[i]] = true
	}

	for len(cycle) < n {
		var p = nextInsertion(pts, cycle, inCycle)
		var at = cheapestEdge(pts, cycle, p)
		// Insert p after position at.
		cycle = append(cycle, 0)
		copy(cycle[at+2:], cycle[at+1:])
		cycle[at+1] = p
		inCycle[p] = true
	}
	return orderToTour(cycle, pts)
}

// nextInsertion picks the next inner point to add to cycle.
func nextInsertion(pts []geom.Point, cycle []int, inCycle []bool) int {
	var (
		n       = len(pts)
		m       = len(cycle)
		nearest = -1
		minD    = math.Inf(1)
		i, j    int
		d       float64
	)
	// Nearest inner point to any cycle vertex.
	for j = 0; j < m; j++ {
		for i = 0; i < n; i++ {
			if inCycle[i] {
				continue
			}
			d = geom.Distance(pts[cycle[j]], pts[i])
			if d < minD {
				minD, nearest = d, i
			}
		}
	}

	// Orthogonal candidates closer than that.
	var (
		orth = -1
		c1   geom.Point
		c2   geom.Point
		foot geom.Point
		ok   bool
	)
	for i = 0; i < n; i++ {
		if inCycle[i] {
			continue
		}
		for j = 0; j < m; j++ {
			c1 = pts[cycle[j]]
			c2 = pts[cycle[(j+1)%m]]
			foot, d, ok = perpendicular(pts[i], c1, c2)
			if !ok || d >= minD {
				continue
			}
			if d == 0 {
				// On the supporting line: accept only when on the segment.
				if geom.DistanceSquared(c1, pts[i])+geom.DistanceSquared(c2, pts[i]) > geom.DistanceSquared(c1, c2) {
					continue
				}
			} else if (geom.Cross(pts[i], foot, c1) >= 0) == (geom.Cross(pts[i], foot, c2) > 0) {
				continue
			}
			minD, orth = d, i
		}
	}
	if orth >= 0 {
		return orth
	}
	return nearest
}

// perpendicular returns the foot of the perpendicular from p onto the line
// through a and b, and the distance from p to it. Degenerate lines yield ok=false.
func perpendicular(p, a, b geom.Point) (geom.Point, float64, bool) {
	var (
		dx  = b.X - a.X
		dy  = b.Y - a.Y
		den = dx*dx + dy*dy
	)
	if den == 0 {
		return geom.Point{}, 0, false
	}
	var t = ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / den
	foot := geom.Point{X: a.X + t*dx, Y: a.Y + t*dy}
	return foot, math.Abs(geom.Cross(a, b, p)) / math.Sqrt(den), true
}

// cheapestEdge returns the cycle position j whose edge (cycle[j], cycle[j+1])
// is cheapest to break for p.
func cheapestEdge(pts []geom.Point, cycle []int, p int) int {
	var (
		m     = len(cycle)
		best  = math.Inf(1)
		at    int
		j     int
		c1    geom.Point
		c2    geom.Point
		extra float64
	)
	for j = 0; j < m; j++ {
		c1 = pts[cycle[j]]
		c2 = pts[cycle[(j+1)%m]]
		extra = geom.DistanceSquared(pts[p], c1) + geom.DistanceSquared(pts[p], c2) - geom.DistanceSquared(c1, c2)
		if extra < best {
			best, at = extra, j
		}
	}
	return at
}
