// Package tsp - Prim minimum spanning tree over planar points.
//
// The tree grows from a uniformly random root by repeatedly attaching the
// globally closest (connected, unconnected) pair. A best-link array keeps the
// closest connected vertex for every outside point, which yields exactly that
// pair at every step.
//
// Complexity: O(n²) time, O(n) extra space.
package tsp

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// arc is an index edge used internally by the tree, matching and Euler code.
type arc struct {
	u, v int
}

// PrimMST returns the n−1 edges of a minimum spanning tree of pts, grown from
// a random root. Fewer than two points yield no edges.
func PrimMST(pts []geom.Point, rng *rand.Rand) []geom.Edge {
	if len(pts) < 2 {
		return nil
	}
	arcs := primArcs(pts, orDefault(rng).Intn(len(pts)))
	return arcsToEdges(pts, arcs)
}

// primArcs computes the tree as index arcs (parent→child) rooted at root.
func primArcs(pts []geom.Point, root int) []arc {
	var n = len(pts)
	if n < 2 {
		return nil
	}
	inTree := make([]bool, n)
	bestDist := make([]float64, n)
	bestLink := make([]int, n)

	var i int
	for i = 0; i < n; i++ {
		bestDist[i] = math.Inf(1)
		bestLink[i] = -1
	}

	out := make([]arc, 0, n-1)
	var (
		cur  = root
		next int
		best float64
		d    float64
	)
	inTree[cur] = true
	for len(out) < n-1 {
		// Relax links through the vertex that just joined.
		for i = 0; i < n; i++ {
			if inTree[i] {
				continue
			}
			d = geom.DistanceSquared(pts[cur], pts[i])
			if d < bestDist[i] {
				bestDist[i] = d
				bestLink[i] = cur
			}
		}
		next, best = -1, math.Inf(1)
		for i = 0; i < n; i++ {
			if !inTree[i] && bestDist[i] < best {
				best, next = bestDist[i], i
			}
		}
		inTree[next] = true
		out = append(out, arc{u: bestLink[next], v: next})
		cur = next
	}
	return out
}

// MSTWeight returns the total Euclidean length of edges.
func MSTWeight(edges []geom.Edge) float64 {
	var (
		sum float64
		i   int
	)
	for i = range edges {
		sum += edges[i].Length()
	}
	return sum
}

// IsSpanningTree reports whether edges form a spanning tree over pts: exactly
// n−1 edges between known points, forming a single connected component.
func IsSpanningTree(pts []geom.Point, edges []geom.Edge) bool {
	var n = len(pts)
	if n == 0 || len(edges) != n-1 {
		return false
	}
	index := make(map[[2]float64]int, n)
	var i int
	for i = range pts {
		index[pts[i].Key()] = i
	}
	arcs := make([]arc, 0, len(edges))
	var (
		u, v    int
		ok, ok2 bool
	)
	for i = range edges {
		u, ok = index[edges[i].From.Key()]
		v, ok2 = index[edges[i].To.Key()]
		if !ok || !ok2 || u == v {
			return false
		}
		arcs = append(arcs, arc{u: u, v: v})
	}
	return connected(n, arcs)
}

// connected reports whether the undirected multigraph over n vertices given
// by arcs has a single connected component. Parallel arcs collapse to one
// simple edge, which does not change connectivity.
func connected(n int, arcs []arc) bool {
	if n == 0 {
		return false
	}
	g := simple.NewUndirectedGraph()
	var i int
	for i = 0; i < n; i++ {
		g.AddNode(simple.Node(i))
	}
	for i = range arcs {
		if arcs[i].u == arcs[i].v {
			continue
		}
		g.SetEdge(g.NewEdge(simple.Node(arcs[i].u), simple.Node(arcs[i].v)))
	}
	return len(topo.ConnectedComponents(g)) == 1
}

// arcsToEdges maps index arcs back to point edges.
func arcsToEdges(pts []geom.Point, arcs []arc) []geom.Edge {
	out := make([]geom.Edge, len(arcs))
	var i int
	for i = range arcs {
		out[i] = geom.Edge{From: pts[arcs[i].u], To: pts[arcs[i].v]}
	}
	return out
}
