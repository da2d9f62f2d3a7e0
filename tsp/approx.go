// Package tsp - Double-MST and Christofides constructors.
//
// Both share one pipeline:
//
//  1. Prim MST from a random root (mst.go).
//  2. Augment the tree into a degree-even multigraph:
//     - Double-MST: add the reversed copy of every tree arc;
//     - Christofides: add a perfect matching over the odd-degree vertices
//     (matching.go).
//  3. Check the multigraph is connected (gonum topo), then Euler walk with
//     stuck recovery and shortcut (euler.go).
//
// Guarantees:
//   - Double-MST: length ≤ 2·MST weight (triangle inequality on shortcuts).
//   - Christofides: 1.5·OPT only with a minimum-weight perfect matching. The
//     ant/fallback matching is not one, so the bound is not guaranteed.
//
// Complexity: O(n²) for the tree plus the matching cost; Euler/shortcut O(n).
package tsp

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
)

// DoubleMST builds a tour by walking the doubled minimum spanning tree.
func DoubleMST(pts []geom.Point, rng *rand.Rand, opts Options) (geom.Tour, error) {
	o := opts.normalize()
	if err := geom.ValidateDistinct(pts); err != nil {
		return nil, err
	}
	if len(pts) < 3 {
		return geom.Tour(pts).Clone(), nil
	}

	var root = orDefault(rng).Intn(len(pts))
	tree := primArcs(pts, root)
	arcs := make([]arc, 0, 2*len(tree))
	arcs = append(arcs, tree...)
	var i int
	for i = range tree {
		arcs = append(arcs, arc{u: tree[i].v, v: tree[i].u})
	}
	if !connected(len(pts), arcs) {
		return nil, geom.ErrResultInvariant
	}
	order := eulerShortcut(len(pts), arcs, root, o.Logger)
	return orderToTour(order, pts)
}

// Christofides builds a tour from the MST plus a matching over its
// odd-degree vertices.
func Christofides(pts []geom.Point, rng *rand.Rand, opts Options) (geom.Tour, error) {
	o := opts.normalize()
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := geom.ValidateDistinct(pts); err != nil {
		return nil, err
	}
	if len(pts) < 3 {
		return geom.Tour(pts).Clone(), nil
	}

	var (
		n    = len(pts)
		root = orDefault(rng).Intn(n)
	)
	tree := primArcs(pts, root)

	// Odd-degree vertices: degree parity via the low bit.
	deg := make([]int, n)
	var i int
	for i = range tree {
		deg[tree[i].u]++
		deg[tree[i].v]++
	}
	odd := make([]int, 0, n/2+1)
	for i = 0; i < n; i++ {
		if deg[i]&1 == 1 {
			odd = append(odd, i)
		}
	}
	nodes := make([]geom.Point, len(odd))
	for i = range odd {
		nodes[i] = pts[odd[i]]
	}

	matched, err := matchIndices(nodes, o.Matching, o.Logger)
	if err != nil {
		return nil, err
	}
	o.Logger.Debug("christofides: matched odd vertices",
		slog.Int("n", n), slog.Int("odd", len(odd)), slog.Int("pairs", len(matched)))

	arcs := make([]arc, 0, len(tree)+len(matched))
	arcs = append(arcs, tree...)
	for i = range matched {
		arcs = append(arcs, arc{u: odd[matched[i].u], v: odd[matched[i].v]})
	}
	if !connected(n, arcs) {
		return nil, geom.ErrResultInvariant
	}
	order := eulerShortcut(n, arcs, root, o.Logger)
	return orderToTour(order, pts)
}

// orderToTour materializes an index order and checks it covers pts exactly.
func orderToTour(order []int, pts []geom.Point) (geom.Tour, error) {
	tour, err := geom.FromOrder(order, pts)
	if err != nil {
		return nil, err
	}
	if err = geom.CheckHamiltonian(tour, pts); err != nil {
		return nil, err
	}
	return tour, nil
}
