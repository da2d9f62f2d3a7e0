// Package tsp - perfect matching over odd-degree MST vertices.
//
// Two strategies:
//
//   - Ant colony (≤ AntLimit nodes): every node grows Rounds nearest-neighbour
//     sprouts of length 2n; each traversed pair deposits one unit of
//     symmetric pheromone. Candidate pairs (pheromone > 0) are sorted by
//     pheromone (desc), then by squared length, and taken greedily while
//     rejecting any pair that reuses a matched vertex. An incomplete pick is
//     retried from the next start index; when every start fails the search
//     is stuck and the fallback runs.
//   - Fallback: bubble-sort the slice [n/3+n/2, n−n/7) by x, then repeatedly
//     scan free pairs accepting any with d² < 1.5·best (updating best on each
//     hit) and pair the last accepted one. When a scan finds nothing, best
//     resets to +Inf so the loop always terminates.
//
// Neither strategy is a minimum-weight perfect matching, so the Christofides
// 1.5·OPT bound does not hold for tours built on top of them.
//
// Complexity: ant colony O(R·n²·n + C²) with C candidate pairs; fallback O(n³).
package tsp

import (
	"log/slog"
	"math"
	"sort"

	"github.com/katalvlaran/somtsp/geom"
)

// Match returns a perfect matching over nodes using opts.Strategy.
// Odd cardinality yields ErrOddMatching; duplicate coordinates yield
// geom.ErrDuplicatePoint.
func Match(nodes []geom.Point, opts MatchingOptions) ([]geom.Edge, error) {
	o := Options{Matching: opts}.normalize()
	if err := o.validate(); err != nil {
		return nil, err
	}
	arcs, err := matchIndices(nodes, o.Matching, o.Logger)
	if err != nil {
		return nil, err
	}
	return arcsToEdges(nodes, arcs), nil
}

// matchIndices validates nodes and dispatches to a strategy.
func matchIndices(nodes []geom.Point, opts MatchingOptions, log *slog.Logger) ([]arc, error) {
	if len(nodes)%2 != 0 {
		return nil, ErrOddMatching
	}
	if err := geom.ValidateDistinct(nodes); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, nil
	}

	var useAnt bool
	switch opts.Strategy {
	case MatchAnt:
		useAnt = true
	case MatchFallback:
		useAnt = false
	default:
		useAnt = len(nodes) <= opts.AntLimit
	}
	if useAnt {
		arcs, err := antMatch(nodes, opts.Rounds)
		if err == nil {
			log.Debug("matching: ant colony", slog.Int("nodes", len(nodes)))
			return arcs, nil
		}
		log.Debug("matching: ant colony stuck, using fallback",
			slog.Int("nodes", len(nodes)), slog.String("reason", err.Error()))
	}
	return fallbackMatch(nodes), nil
}

// candidate is a pheromone-weighted pair.
type candidate struct {
	u, v int
	ph   int
	d2   float64
}

// antMatch runs the pheromone exploration and the greedy pick with retries.
func antMatch(nodes []geom.Point, rounds int) ([]arc, error) {
	var n = len(nodes)
	ph := make([]int, n*n)

	var (
		r, s, k int
		path    []int
	)
	for r = 0; r < rounds; r++ {
		for s = 0; s < n; s++ {
			path = NearestNeighborSprout(nodes, s, 2*n)
			for k = 0; k+1 < len(path); k++ {
				ph[path[k]*n+path[k+1]]++
				ph[path[k+1]*n+path[k]]++
			}
		}
	}

	cands := make([]candidate, 0, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if ph[i*n+j] > 0 {
				cands = append(cands, candidate{u: i, v: j, ph: ph[i*n+j], d2: geom.DistanceSquared(nodes[i], nodes[j])})
			}
		}
	}
	sort.SliceStable(cands, func(a, b int) bool {
		if cands[a].ph != cands[b].ph {
			return cands[a].ph > cands[b].ph
		}
		return cands[a].d2 < cands[b].d2
	})

	var (
		begin int
		taken = make([]bool, n)
		sel   = make([]arc, 0, n/2)
	)
	for begin = 0; len(cands)-begin >= n/2; begin++ {
		for i = range taken {
			taken[i] = false
		}
		sel = sel[:0]
		for k = begin; k < len(cands) && len(sel) < n/2; k++ {
			// A pair touching a matched vertex would form a bowtie.
			if taken[cands[k].u] || taken[cands[k].v] {
				continue
			}
			taken[cands[k].u] = true
			taken[cands[k].v] = true
			sel = append(sel, arc{u: cands[k].u, v: cands[k].v})
		}
		if len(sel) == n/2 {
			return sel, nil
		}
	}
	return nil, errStuckSearch
}

// fallbackMatch is the relaxed greedy pairing; it always returns n/2 arcs.
func fallbackMatch(nodes []geom.Point) []arc {
	var n = len(nodes)
	perm := make([]int, n)
	var i, j int
	for i = range perm {
		perm[i] = i
	}

	// Partial bubble sort of the middle slice by x.
	var (
		lo = n/3 + n/2
		hi = n - n/7
	)
	if hi > n {
		hi = n
	}
	for i = lo; i < hi; i++ {
		for j = lo; j+1 < hi-(i-lo); j++ {
			if nodes[perm[j]].X > nodes[perm[j+1]].X {
				perm[j], perm[j+1] = perm[j+1], perm[j]
			}
		}
	}

	var (
		taken = make([]bool, n)
		out   = make([]arc, 0, n/2)
		best  = math.Inf(1)
		k, l  int
		d     float64
	)
	for len(out) < n/2 {
		k, l = -1, -1
		for i = 0; i < n; i++ {
			if taken[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if taken[j] {
					continue
				}
				d = geom.DistanceSquared(nodes[perm[i]], nodes[perm[j]])
				if d < best*fallbackRelax {
					best = d
					k, l = i, j
				}
			}
		}
		if k < 0 {
			best = math.Inf(1)
			continue
		}
		taken[k] = true
		taken[l] = true
		out = append(out, arc{u: perm[k], v: perm[l]})
	}
	return out
}

// MatchWithStrategy forces strategy regardless of node count. It exists so
// tests can exercise both paths on the same input.
func MatchWithStrategy(nodes []geom.Point, strategy MatchStrategy) ([]geom.Edge, error) {
	opts := DefaultOptions().Matching
	opts.Strategy = strategy
	return Match(nodes, opts)
}
