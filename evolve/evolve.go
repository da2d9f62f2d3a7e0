// Package evolve - the reference generational loop.
package evolve

import (
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/tsp"
)

// Evolve runs SEED, Generations rounds of GROW, FITNESS, CULL and
// PAIR/CROSS/MUTATE, then returns the shortest member as a validated
// Result. Inputs of LargeInputThreshold points or more get one generation.
func Evolve(points []geom.Point, cfg Config) (tsp.Result, error) {
	if err := geom.ValidatePoints(points); err != nil {
		return tsp.Result{}, err
	}
	if err := cfg.validate(); err != nil {
		return tsp.Result{}, err
	}
	c := cfg.normalize()
	rng := tsp.NewRNG(c.Seed)
	env := &environment{points: points, cfg: c}

	pop, err := env.populate(rng)
	if err != nil {
		return tsp.Result{}, err
	}

	var (
		gens     = c.generations(len(points))
		report   GenerationReport
		culled   int
		children Population
		g, i     int
	)
	for g = 1; g <= gens; g++ {
		for i = range pop {
			if err = env.grow(pop[i], rng); err != nil {
				return tsp.Result{}, err
			}
		}
		report = summarize(g, pop.Lengths())

		pop, culled = pop.Cull(pop.Required(c.Requirement), rng, c.Logger)
		children = pop.Breed(pop.Pair(), rng)
		pop = append(pop, children...)

		report.Culled = culled
		report.Children = len(children)
		report.Size = len(pop)
		c.emit(report)
	}

	return env.finish(pop[pop.Best()], rng)
}

// populate seeds PopulationSize members.
func (e *environment) populate(rng *rand.Rand) (Population, error) {
	pop := make(Population, 0, e.cfg.PopulationSize)
	var i int
	for i = 0; i < e.cfg.PopulationSize; i++ {
		c, err := e.seed(rng)
		if err != nil {
			return nil, err
		}
		pop = append(pop, c)
	}
	return pop, nil
}

// finish polishes best when configured and re-validates it.
func (e *environment) finish(best *Chromosome, rng *rand.Rand) (tsp.Result, error) {
	tour := best.Tour.Clone()
	if e.cfg.Polish {
		var err error
		if tour, err = tsp.LinKernighan(tour, tsp.DeriveRNG(rng, 1), e.cfg.PolishOptions); err != nil {
			return tsp.Result{}, err
		}
	}
	if err := geom.CheckHamiltonian(tour, e.points); err != nil {
		return tsp.Result{}, err
	}
	return tsp.NewResult(tour, e.points)
}
