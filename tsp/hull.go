// Package tsp - convex hull (Graham-scan variant).
//
// Algorithm:
//  1. Pivot = the lowest point among the rightmost ones. Every other point
//     then lies within a half-turn [90°, 270°) around it.
//  2. Sort the rest by polar angle around the pivot; equal angles are broken
//     by distance from the pivot (closer first).
//  3. Sweep with a stack, keeping only left (CCW) turns; a right or collinear
//     turn pops the stack.
//  4. Cleanup: remove the middle vertex of any remaining collinear triple.
//
// The cleanup is best-effort. Downstream code (hull insertion, SOM-CH-NN)
// must not assume the hull is minimal, only that it is a simple cycle over
// input points that encloses the rest.
//
// Complexity: O(n log n) time, O(n) space.
package tsp

import (
	"sort"

	"github.com/katalvlaran/somtsp/geom"
)

// ConvexHull returns the hull vertices in counter-clockwise order, starting
// at the pivot. Inputs with fewer than three points are returned as-is.
func ConvexHull(pts []geom.Point) []geom.Point {
	idx := hullIndices(pts)
	out := make([]geom.Point, len(idx))
	var i int
	for i = range idx {
		out[i] = pts[idx[i]]
	}
	return out
}

// HullEdges returns the closing edges of a hull (or any cycle) in order.
func HullEdges(hull []geom.Point) []geom.Edge {
	return geom.Tour(hull).Edges()
}

// hullIndices computes the hull as indices into pts.
func hullIndices(pts []geom.Point) []int {
	var n = len(pts)
	if n < 3 {
		out := make([]int, n)
		var i int
		for i = range out {
			out[i] = i
		}
		return out
	}

	// 1) Pivot: max X, then min Y.
	var (
		pivot = 0
		i     int
	)
	for i = 1; i < n; i++ {
		if pts[i].X > pts[pivot].X || (pts[i].X == pts[pivot].X && pts[i].Y < pts[pivot].Y) {
			pivot = i
		}
	}
	var p0 = pts[pivot]

	// 2) Angular sort of the remaining points.
	rest := make([]int, 0, n-1)
	for i = 0; i < n; i++ {
		if i != pivot {
			rest = append(rest, i)
		}
	}
	sort.SliceStable(rest, func(a, b int) bool {
		var c = geom.Cross(p0, pts[rest[a]], pts[rest[b]])
		if c != 0 {
			return c > 0
		}
		return geom.DistanceSquared(p0, pts[rest[a]]) < geom.DistanceSquared(p0, pts[rest[b]])
	})

	// 3) Sweep.
	stack := make([]int, 0, n)
	stack = append(stack, pivot)
	var top int
	for i = range rest {
		for len(stack) >= 2 {
			top = len(stack) - 1
			if geom.Cross(pts[stack[top-1]], pts[stack[top]], pts[rest[i]]) > 0 {
				break
			}
			stack = stack[:top]
		}
		stack = append(stack, rest[i])
	}

	// 4) Collinear cleanup over the closed cycle.
	return dropCollinear(pts, stack)
}

// dropCollinear removes middle vertices of collinear triples from a cycle.
// A single pass over each position is made until no removal happens; cycles
// of three or fewer vertices are left untouched.
func dropCollinear(pts []geom.Point, cycle []int) []int {
	var (
		changed = true
		m       int
		i       int
		prev    int
		next    int
	)
	for changed && len(cycle) > 3 {
		changed = false
		m = len(cycle)
		for i = 0; i < m; i++ {
			prev = cycle[(i+m-1)%m]
			next = cycle[(i+1)%m]
			if geom.Orient(pts[prev], pts[cycle[i]], pts[next]) == geom.Collinear {
				cycle = append(cycle[:i], cycle[i+1:]...)
				changed = true
				break
			}
		}
	}
	return cycle
}
