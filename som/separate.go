// Package som - anti-collision repair.
//
// Two neurons on the same coordinates would be indistinguishable to the
// nearest-neighbour chaining. separate nudges both by independent draws in
// [CollisionMin, CollisionMax): x grows, y shrinks. A neuron sitting on an
// input is nudged the same way; inputs never move. Rounds repeat until a
// full pass finds no collision.
package som

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
)

// separate repairs collisions in place and returns the number of nudges.
func separate(neurons, inputs []geom.Point, rng *rand.Rand, log *slog.Logger) int {
	var (
		fixed  = make(map[[2]float64]struct{}, len(inputs))
		owner  = make(map[[2]float64]int, len(neurons))
		total  int
		round  int
		clean  bool
		j, k   int
		ok     bool
		hitFix bool
		i      int
	)
	for i = range inputs {
		fixed[inputs[i].Key()] = struct{}{}
	}

	for round = 0; round < maxSeparationRounds; round++ {
		clean = true
		clear(owner)
		for j = range neurons {
			_, hitFix = fixed[neurons[j].Key()]
			if k, ok = owner[neurons[j].Key()]; ok {
				neurons[k] = nudge(neurons[k], rng)
				neurons[j] = nudge(neurons[j], rng)
				total += 2
				clean = false
				continue
			}
			if hitFix {
				neurons[j] = nudge(neurons[j], rng)
				total++
				clean = false
				continue
			}
			owner[neurons[j].Key()] = j
		}
		if clean {
			return total
		}
	}
	log.Debug("som: anti-collision gave up", slog.Int("rounds", round), slog.Int("nudges", total))
	return total
}

// nudge shifts p by one collision epsilon: right and down.
func nudge(p geom.Point, rng *rand.Rand) geom.Point {
	var (
		x = p.X + epsilon(rng)
		y = p.Y - epsilon(rng)
	)
	// At large magnitudes the epsilon can vanish in rounding.
	if x == p.X {
		x = math.Nextafter(p.X, math.Inf(1))
	}
	if y == p.Y {
		y = math.Nextafter(p.Y, math.Inf(-1))
	}
	return geom.Point{X: x, Y: y, Weight: p.Weight}
}

func epsilon(rng *rand.Rand) float64 {
	return CollisionMin + (CollisionMax-CollisionMin)*rng.Float64()
}
