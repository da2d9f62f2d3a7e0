// Package som - the map itself.
//
// Complexity: O(MaxIterations·m) for the pull phase with m neurons, plus
// the fragment cost per popped rule when a genome is given. Anti-collision
// is O(m + k) expected per round with k inputs.
package som

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/tsp"
)

// Run trains neurons against inputs and classifies them. The slices are
// not modified. genome may be nil; it is consumed one pop per neuron per
// iteration, and an empty pop leaves that neuron in place.
func Run(inputs, neurons []geom.Point, cfg Config, genome *logic.Stack) ([]Assignment, error) {
	if len(inputs) == 0 || len(neurons) == 0 {
		return nil, geom.ErrShapeMismatch
	}
	o := cfg.normalize()
	if err := o.validate(); err != nil {
		return nil, err
	}
	return run(inputs, neurons, o, genome, tsp.NewRNG(o.Seed)), nil
}

// RunXY is Run over flat coordinate lists. Unequal X/Y lengths yield
// geom.ErrShapeMismatch.
func RunXY(inX, inY, nX, nY []float64, cfg Config, genome *logic.Stack) ([]Assignment, error) {
	inputs, err := geom.FromXY(inX, inY)
	if err != nil {
		return nil, err
	}
	neurons, err := geom.FromXY(nX, nY)
	if err != nil {
		return nil, err
	}
	return Run(inputs, neurons, cfg, genome)
}

// run assumes validated, normalized input.
func run(inputs, start []geom.Point, o Config, genome *logic.Stack, rng *rand.Rand) []Assignment {
	neurons := append([]geom.Point(nil), start...)

	var (
		m      = len(neurons)
		field  = make([]geom.Point, m+len(inputs))
		it     int
		j      int
		id     int
		ok     bool
		moved  geom.Point
		popped int
		nudged int
	)
	copy(field[m:], inputs)

	for it = 0; it < o.MaxIterations; it++ {
		pull(neurons, inputs[rng.Intn(len(inputs))], o)
		nudged += separate(neurons, inputs, rng, o.Logger)

		if genome.Empty() {
			continue
		}
		for j = 0; j < m; j++ {
			if id, ok = genome.Pop(); !ok {
				break
			}
			popped++
			copy(field[:m], neurons)
			if moved, ok = o.Registry.Apply(id, neurons[j], field, o.Threshold, rng); ok {
				neurons[j] = moved
			}
		}
		nudged += separate(neurons, inputs, rng, o.Logger)
	}

	o.Logger.Debug("som: trained",
		slog.Int("inputs", len(inputs)), slog.Int("neurons", m),
		slog.Int("iterations", o.MaxIterations), slog.Int("rules", popped),
		slog.Int("nudges", nudged))
	return classify(neurons, inputs)
}

// pull moves every neuron toward target.
func pull(neurons []geom.Point, target geom.Point, o Config) {
	var (
		bmu    = nearest(target, neurons)
		radius = o.MaxDistance / neighbourhoodDivisor
		w      float64
		d      float64
		j      int
	)
	for j = range neurons {
		d = geom.Distance(neurons[j], neurons[bmu])
		w = o.FarWeight
		if d < radius {
			w = bmuWeight * (1 - d/radius)
		}
		neurons[j] = logic.Traverse(neurons[j], target, o.LearningRate*w/bmuWeight)
	}
}

// classify maps each neuron to its nearest input.
func classify(neurons, inputs []geom.Point) []Assignment {
	out := make([]Assignment, len(neurons))
	var j int
	for j = range neurons {
		out[j] = Assignment{Point: neurons[j], Cluster: nearest(neurons[j], inputs)}
	}
	return out
}

// nearest returns the index of the point in pts closest to p. Ties keep
// the first index.
func nearest(p geom.Point, pts []geom.Point) int {
	var (
		best = math.Inf(1)
		at   int
		d    float64
		i    int
	)
	for i = range pts {
		if d = geom.DistanceSquared(p, pts[i]); d < best {
			best, at = d, i
		}
	}
	return at
}
