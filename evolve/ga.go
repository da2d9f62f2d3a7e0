// Package evolve - eaopt engine.
//
// EvolveGA hands the chromosomes to eaopt's generational model. The
// operators map onto eaopt.Genome:
//
//   - Evaluate: grow the tour with a copy of the genome; fitness is the
//     tour length.
//   - Crossover: both offspring get logic.Mutate(logic.Interleave(...)) of
//     the two genomes, in opposite parent order, and fresh identities.
//   - Mutate: reseed the SOM sampling and top the genome up to StackSize
//     with random rule IDs.
//
// The engine runs a single population without parallel evaluation.
package evolve

import (
	"log/slog"
	"math/rand"

	"github.com/MaxHalford/eaopt"
	"github.com/google/uuid"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/tsp"
)

// GA defaults.
const (
	DefaultMutRate     = 0.3
	DefaultCrossRate   = 0.7
	DefaultContestants = 3
)

// GAOptions tunes the eaopt model. Zero fields take the defaults.
type GAOptions struct {
	MutRate     float64
	CrossRate   float64
	Contestants uint
}

func (o GAOptions) normalize() GAOptions {
	if o.MutRate == 0 {
		o.MutRate = DefaultMutRate
	}
	if o.CrossRate == 0 {
		o.CrossRate = DefaultCrossRate
	}
	if o.Contestants == 0 {
		o.Contestants = DefaultContestants
	}
	return o
}

// Evaluate grows the tour and returns its length.
func (c *Chromosome) Evaluate() (float64, error) {
	if err := c.env.grow(c, tsp.NewRNG(c.seed)); err != nil {
		return 0, err
	}
	return c.Length, nil
}

// Crossover breeds c and other in place.
func (c *Chromosome) Crossover(other eaopt.Genome, rng *rand.Rand) {
	o := other.(*Chromosome)
	var (
		parents = [2]uuid.UUID{c.ID, o.ID}
		a       = logic.Mutate(logic.Interleave(c.Genome.Clone(), o.Genome.Clone()), rng)
		b       = logic.Mutate(logic.Interleave(o.Genome.Clone(), c.Genome.Clone()), rng)
	)
	c.Genome, o.Genome = a, b
	c.rebirth(parents, rng)
	o.rebirth(parents, rng)
}

// Mutate reseeds c and refills its genome.
func (c *Chromosome) Mutate(rng *rand.Rand) {
	var reg = c.env.cfg.Registry
	for c.Genome.Len() < c.env.cfg.StackSize {
		c.Genome.Push(reg.RandomID(rng))
	}
	c.seed = rng.Int63()
}

// Clone returns a deep copy sharing only the environment.
func (c *Chromosome) Clone() eaopt.Genome {
	cc := *c
	cc.Tour = c.Tour.Clone()
	cc.Genome = c.Genome.Clone()
	return &cc
}

func (c *Chromosome) rebirth(parents [2]uuid.UUID, rng *rand.Rand) {
	c.ID = newID(rng)
	c.Parents = parents
	c.seed = rng.Int63()
}

// EvolveGA runs the chromosomes through eaopt with tournament selection and
// returns the hall-of-fame winner as a validated Result. Config.Generations
// (or 1 for large inputs) sets the generation count; an odd PopulationSize
// is rounded up.
func EvolveGA(points []geom.Point, cfg Config, opts GAOptions) (tsp.Result, error) {
	if err := geom.ValidatePoints(points); err != nil {
		return tsp.Result{}, err
	}
	if err := cfg.validate(); err != nil {
		return tsp.Result{}, err
	}
	if opts.MutRate < 0 || opts.MutRate > 1 || opts.CrossRate < 0 || opts.CrossRate > 1 {
		return tsp.Result{}, ErrBadConfig
	}
	var (
		c   = cfg.normalize()
		o   = opts.normalize()
		rng = tsp.NewRNG(c.Seed)
		env = &environment{points: points, cfg: c}
	)
	size := c.PopulationSize
	if size%2 == 1 {
		size++
	}
	if o.Contestants > uint(size) {
		o.Contestants = uint(size)
	}

	gaCfg := eaopt.GAConfig{
		NPops:        1,
		PopSize:      uint(size),
		NGenerations: uint(c.generations(len(points))),
		HofSize:      1,
		Model: eaopt.ModGenerational{
			Selector:  eaopt.SelTournament{NContestants: o.Contestants},
			MutRate:   o.MutRate,
			CrossRate: o.CrossRate,
		},
		ParallelEval: false,
		Logger:       slog.NewLogLogger(c.Logger.Handler(), slog.LevelDebug),
		Callback: func(ga *eaopt.GA) {
			if ga.Generations == 0 {
				return
			}
			inds := ga.Populations[0].Individuals
			lengths := make([]float64, len(inds))
			var i int
			for i = range inds {
				lengths[i] = inds[i].Fitness
			}
			r := summarize(int(ga.Generations), lengths)
			r.Children = len(inds)
			c.emit(r)
		},
		RNG: rng,
	}
	ga, err := gaCfg.NewGA()
	if err != nil {
		return tsp.Result{}, err
	}
	err = ga.Minimize(func(r *rand.Rand) eaopt.Genome {
		return env.chromosome(nil, c.Registry.RandomStack(c.StackSize, r), [2]uuid.UUID{}, r)
	})
	if err != nil {
		return tsp.Result{}, err
	}

	best := ga.HallOfFame[0].Genome.(*Chromosome)
	return env.finish(best, rng)
}
