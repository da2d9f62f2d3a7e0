// Package tsp - Lin-Kernighan-style stack search.
//
// One pass:
//  1. Rotate the best tour by a random offset and push it onto a stack.
//  2. Pop the first point into the trial.
//  3. While at least three points remain, pop A, B, C and compare
//     gain = d²(A,B) − d²(C,B) with the adaptive limit:
//     - gain > limit: exchange. With probability LKSwapBias append B,C,
//     otherwise C,B; push A back; limit *= DefaultLKLoosen.
//     - otherwise: append A,B,C; limit /= DefaultLKTighten.
//  4. Flush the remaining points.
//
// Every popped point is either appended or pushed back, so a trial is always
// a permutation of the tour. A trial replaces the best tour only when it is
// strictly shorter. After the passes, TwoOptPasses polishes the result.
//
// The limit is a gain control: starting at 0 it stays 0 and every positive
// gain is taken, which is the reference behaviour.
//
// Complexity: O(passes·n) for the stack passes plus the 2-opt polish.
package tsp

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
)

// LinKernighan improves tour with randomized stack passes followed by a
// bounded 2-opt polish. The result is never longer than tour.
func LinKernighan(tour geom.Tour, rng *rand.Rand, opts Options) (geom.Tour, error) {
	o := opts.normalize()
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(tour) < 4 {
		return tour.Clone(), nil
	}
	var (
		r       = orDefault(rng)
		n       = len(tour)
		best    = tour.Clone()
		bestLen = best.Length()
		passes  = o.lkPasses(n)
		trial   geom.Tour
		l       float64
		p       int
		wins    int
	)
	stack := make(geom.Tour, 0, n)
	for p = 0; p < passes; p++ {
		trial = lkPass(best, stack, r, o)
		if l = trial.Length(); l < bestLen {
			best, bestLen = trial, l
			wins++
		}
	}
	o.Logger.Debug("lin-kernighan: stack passes done",
		slog.Int("n", n), slog.Int("passes", passes), slog.Int("improvements", wins),
		slog.Float64("length", bestLen))

	polished := twoOptPassesWithEps(best, o.TwoOptPasses, o.TwoOptEps)
	if polished.Length() < bestLen {
		best = polished
	}
	return best, nil
}

// lkPass builds one trial from best using stack as scratch space.
func lkPass(best geom.Tour, stack geom.Tour, r *rand.Rand, o Options) geom.Tour {
	var n = len(best)
	stack = append(stack[:0], rotate(best, r.Intn(n))...)

	pop := func() geom.Point {
		var p = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return p
	}

	trial := make(geom.Tour, 0, n)
	trial = append(trial, pop())

	var (
		limit   = o.LKInitialLimit
		a, b, c geom.Point
		gain    float64
	)
	for len(stack) >= 3 {
		a, b, c = pop(), pop(), pop()
		gain = geom.DistanceSquared(a, b) - geom.DistanceSquared(c, b)
		if limit < gain {
			if r.Float64() < o.LKSwapBias {
				trial = append(trial, b, c)
			} else {
				trial = append(trial, c, b)
			}
			stack = append(stack, a)
			limit *= DefaultLKLoosen
		} else {
			trial = append(trial, a, b, c)
			limit /= DefaultLKTighten
		}
	}
	for len(stack) > 0 {
		trial = append(trial, pop())
	}
	return trial
}
