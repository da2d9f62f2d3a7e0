// Package tsp - Euler walk with stuck recovery, and shortcutting.
//
// The walk consumes every arc of a degree-even multigraph exactly once:
//  1. Prefer an unused arc leaving the current vertex (u == cur).
//  2. Otherwise take an unused arc entering it (v == cur) and flip it.
//  3. Otherwise the walk is stuck: jump to the next unused arc in input
//     order. This is the recovery for errStuckSearch; it never surfaces.
//
// Shortcutting keeps the first occurrence of every vertex. Because every arc
// is consumed, every vertex with at least one arc appears in the walk.
//
// Complexity: O(V + E) time and space (per-vertex cursors skip used arcs).
package tsp

import (
	"log/slog"

	"github.com/katalvlaran/somtsp/geom"
)

// eulerWalk returns the vertex sequence of the walk over arcs starting at
// start, together with the number of stuck jumps that were needed.
func eulerWalk(n int, arcs []arc, start int) ([]int, int) {
	out := make([][]int, n)
	in := make([][]int, n)
	var i int
	for i = range arcs {
		out[arcs[i].u] = append(out[arcs[i].u], i)
		in[arcs[i].v] = append(in[arcs[i].v], i)
	}
	outCur := make([]int, n)
	inCur := make([]int, n)
	used := make([]bool, len(arcs))

	// nextFrom advances a cursor past used arcs and returns the next unused one.
	nextFrom := func(list []int, cursor *int) int {
		for *cursor < len(list) && used[list[*cursor]] {
			*cursor++
		}
		if *cursor < len(list) {
			return list[*cursor]
		}
		return -1
	}

	walk := make([]int, 0, len(arcs)+1)
	walk = append(walk, start)

	var (
		cur    = start
		global int
		a      int
		jumps  int
		left   = len(arcs)
	)
	for left > 0 {
		if a = nextFrom(out[cur], &outCur[cur]); a >= 0 {
			cur = arcs[a].v
		} else if a = nextFrom(in[cur], &inCur[cur]); a >= 0 {
			cur = arcs[a].u
		} else {
			// Stuck: resume from the first unused arc.
			for used[global] {
				global++
			}
			a = global
			jumps++
			walk = append(walk, arcs[a].u)
			cur = arcs[a].v
		}
		used[a] = true
		left--
		walk = append(walk, cur)
	}
	return walk, jumps
}

// shortcut keeps the first occurrence of each vertex in walk.
func shortcut(n int, walk []int) []int {
	seen := make([]bool, n)
	order := make([]int, 0, n)
	var i int
	for i = range walk {
		if !seen[walk[i]] {
			seen[walk[i]] = true
			order = append(order, walk[i])
		}
	}
	return order
}

// eulerShortcut runs the walk from start and shortcuts it into a vertex
// order. A disconnected arc set is an internal defect: errStuckSearch is
// logged and the walk still proceeds through jumps.
func eulerShortcut(n int, arcs []arc, start int, log *slog.Logger) []int {
	if !connected(n, arcs) {
		log.Debug("euler: multigraph is disconnected", slog.Int("n", n), slog.Int("arcs", len(arcs)))
	}
	walk, jumps := eulerWalk(n, arcs, start)
	if jumps > 0 {
		log.Debug("euler: recovered from stuck walk",
			slog.String("reason", errStuckSearch.Error()),
			slog.Int("jumps", jumps))
	}
	return shortcut(n, walk)
}

// EulerShortcut walks the given edges as an Euler tour (flipping edges and
// jumping when stuck) and returns the shortcut vertex order as a tour over
// the distinct endpoints, starting at edges[0].From.
func EulerShortcut(edges []geom.Edge) geom.Tour {
	if len(edges) == 0 {
		return nil
	}
	index := make(map[[2]float64]int)
	pts := make([]geom.Point, 0, len(edges)+1)
	id := func(p geom.Point) int {
		if k, ok := index[p.Key()]; ok {
			return k
		}
		index[p.Key()] = len(pts)
		pts = append(pts, p)
		return len(pts) - 1
	}
	arcs := make([]arc, len(edges))
	var i int
	for i = range edges {
		arcs[i] = arc{u: id(edges[i].From), v: id(edges[i].To)}
	}
	order := eulerShortcut(len(pts), arcs, 0, NopLogger())
	out := make(geom.Tour, len(order))
	for i = range order {
		out[i] = pts[order[i]]
	}
	return out
}
