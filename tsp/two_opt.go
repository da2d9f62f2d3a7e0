// Package tsp - 2-opt local search on point tours.
//
// One move: for edges (a,b) = (T[i],T[i+1]) and (c,d) = (T[j],T[j+1]) that do
// not share a vertex, the profit of reconnecting them as (a,c),(b,d) is
//
//	Δ = d²(a,c) + d²(b,d) − d²(a,b) − d²(c,d)
//
// computed on squared distances. The first pair with Δ < −eps is applied by
// reversing T[i+1..j] and the scan stops (first improvement).
//
// Because Δ is a squared-distance proxy, a move can lengthen the real tour.
// TwoOpt therefore returns the new tour only when its real length beats the
// caller's baseline, otherwise the original, unchanged.
//
// Complexity: O(n²) per scan, O(n) per applied move.
package tsp

import "github.com/katalvlaran/somtsp/geom"

// TwoOpt applies one first-improvement move with the default epsilon and
// returns the result if it is shorter than baseline, else tour itself.
func TwoOpt(tour geom.Tour, baseline float64) geom.Tour {
	out, _ := twoOptStep(tour, baseline, DefaultTwoOptEps)
	return out
}

// twoOptStep reports whether a move was applied and accepted.
func twoOptStep(tour geom.Tour, baseline, eps float64) (geom.Tour, bool) {
	if len(tour) < 4 {
		return tour, false
	}
	cand := tour.Clone()
	if !twoOptMove(cand, eps) {
		return tour, false
	}
	if cand.Length() < baseline {
		return cand, true
	}
	return tour, false
}

// TwoOptPasses chains up to passes TwoOpt calls, stopping at the first call
// that does not shorten the tour.
func TwoOptPasses(tour geom.Tour, passes int) geom.Tour {
	return twoOptPassesWithEps(tour, passes, DefaultTwoOptEps)
}

func twoOptPassesWithEps(tour geom.Tour, passes int, eps float64) geom.Tour {
	var (
		cur    = tour
		curLen = tour.Length()
		next   geom.Tour
		ok     bool
		p      int
	)
	for p = 0; p < passes; p++ {
		if next, ok = twoOptStep(cur, curLen, eps); !ok {
			break
		}
		cur, curLen = next, next.Length()
	}
	return cur
}

// twoOptMove applies the first improving move to t in place.
func twoOptMove(t geom.Tour, eps float64) bool {
	var (
		n     = len(t)
		i, j  int
		jMax  int
		a, b  geom.Point
		c, d  geom.Point
		delta float64
	)
	for i = 0; i < n-2; i++ {
		a, b = t[i], t[i+1]
		jMax = n - 1
		if i == 0 {
			// Edge (T[n-1],T[0]) shares a vertex with (T[0],T[1]).
			jMax = n - 2
		}
		for j = i + 2; j <= jMax; j++ {
			c, d = t[j], t[(j+1)%n]
			delta = geom.DistanceSquared(a, c) + geom.DistanceSquared(b, d) -
				geom.DistanceSquared(a, b) - geom.DistanceSquared(c, d)
			if delta < -eps {
				reverseSegment(t, i+1, j)
				return true
			}
		}
	}
	return false
}
