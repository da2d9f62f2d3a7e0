// Package evolve - chromosomes.
package evolve

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/som"
)

// Chromosome is one candidate: a tour and the genome that shapes its SOM
// growth. Parents is zero for seeded members.
type Chromosome struct {
	ID      uuid.UUID
	Parents [2]uuid.UUID
	Tour    geom.Tour
	Genome  *logic.Stack
	Length  float64

	env  *environment
	seed int64
}

// environment is the state shared by every chromosome of a run.
type environment struct {
	points []geom.Point
	cfg    Config
}

// newID draws a version-4 UUID from rng so runs are reproducible.
func newID(rng *rand.Rand) uuid.UUID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.New()
	}
	return id
}

func (e *environment) chromosome(tour geom.Tour, genome *logic.Stack, parents [2]uuid.UUID, rng *rand.Rand) *Chromosome {
	return &Chromosome{
		ID:      newID(rng),
		Parents: parents,
		Tour:    tour,
		Genome:  genome,
		Length:  tour.Length(),
		env:     e,
		seed:    rng.Int63(),
	}
}

// seed builds a member from a genome-free SOM-CH-NN tour.
func (e *environment) seed(rng *rand.Rand) (*Chromosome, error) {
	tour, err := som.Construct(e.points, e.cfg.SOM, nil, rng)
	if err != nil {
		return nil, err
	}
	genome := e.cfg.Registry.RandomStack(e.cfg.StackSize, rng)
	return e.chromosome(tour, genome, [2]uuid.UUID{}, rng), nil
}

// grow rebuilds c's tour with a consumed copy of its genome.
func (e *environment) grow(c *Chromosome, rng *rand.Rand) error {
	tour, err := som.Construct(e.points, e.cfg.SOM, c.Genome.Clone(), rng)
	if err != nil {
		return err
	}
	c.Tour = tour
	c.Length = tour.Length()
	return nil
}

// swapInterior swaps two random interior points of t with probability
// tourSwapRate. The first point stays in place.
func swapInterior(t geom.Tour, rng *rand.Rand) {
	var n = len(t)
	if n < 4 || rng.Float64() >= tourSwapRate {
		return
	}
	var (
		a = 1 + rng.Intn(n-1)
		b = 1 + rng.Intn(n-1)
	)
	t[a], t[b] = t[b], t[a]
}
