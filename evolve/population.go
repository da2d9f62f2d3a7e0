// Package evolve - population operators.
//
// The operators are exported so callers can drive a custom loop; Evolve
// chains them in the reference order. None of them changes a member's
// tour; only Breed creates new members.
package evolve

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/katalvlaran/somtsp/logic"
)

// Population is an ordered set of chromosomes. Order matters only for
// pairing.
type Population []*Chromosome

// Best returns the index of the shortest member, or -1 when empty.
func (p Population) Best() int {
	var (
		at   = -1
		best = math.Inf(1)
		i    int
	)
	for i = range p {
		if p[i].Length < best {
			best, at = p[i].Length, i
		}
	}
	return at
}

// Lengths returns the tour lengths in population order.
func (p Population) Lengths() []float64 {
	out := make([]float64, len(p))
	var i int
	for i = range p {
		out[i] = p[i].Length
	}
	return out
}

// Required returns best length × requirement.
func (p Population) Required(requirement float64) float64 {
	if i := p.Best(); i >= 0 {
		return p[i].Length * requirement
	}
	return math.Inf(1)
}

// Cull removes members longer than required and, with probability 2%,
// members above required/1.15 other than the current best. A removal that
// would leave fewer than PopulationFloor members is skipped. It returns the
// survivors in order and the number removed.
func (p Population) Cull(required float64, rng *rand.Rand, log *slog.Logger) (Population, int) {
	var (
		best   = p.Best()
		size   = len(p)
		out    = make(Population, 0, len(p))
		culled int
		drop   bool
		reason string
		i      int
	)
	for i = range p {
		drop, reason = false, ""
		switch {
		case p[i].Length > required:
			drop, reason = true, "over-required"
		case i != best && p[i].Length > required/extraCullMargin && rng.Float64() < extraCullRate:
			drop, reason = true, "random"
		}
		if drop && size-1 >= PopulationFloor {
			size--
			culled++
			log.Debug("evolve: cull",
				slog.String("id", p[i].ID.String()), slog.String("reason", reason),
				slog.Float64("length", p[i].Length), slog.Float64("required", required))
			continue
		}
		out = append(out, p[i])
	}
	return out, culled
}

// Pair reorders p in place so adjacent members are mates and returns the
// scratch genome copies aligned with the new order.
//
// For every i and j ≠ i: when the scratch tops differ and depths match,
// member j moves next to i (swap [i+1] and [j]). When the tops are equal
// and j < i, both scratch copies lose their top while deeper than 3, so
// later comparisons look further down. The scan ends early once both
// copies under comparison are exhausted.
func (p Population) Pair() []*logic.Stack {
	var n = len(p)
	scratch := make([]*logic.Stack, n)
	var i, j int
	for i = range p {
		scratch[i] = p[i].Genome.Clone()
	}

	var (
		ti, tj   int
		oki, okj bool
	)
	for i = 0; i < n-1; i++ {
		for j = 1; j < n; j++ {
			if i == j {
				continue
			}
			ti, oki = scratch[i].Peek()
			tj, okj = scratch[j].Peek()
			if ti != tj || oki != okj {
				if scratch[i].Len() == scratch[j].Len() {
					p[i+1], p[j] = p[j], p[i+1]
					scratch[i+1], scratch[j] = scratch[j], scratch[i+1]
				}
			} else if j < i && scratch[i].Len() > 3 && scratch[j].Len() > 3 {
				scratch[i].Pop()
				scratch[j].Pop()
			}
			if scratch[i].Empty() && scratch[j].Empty() {
				return scratch
			}
		}
	}
	return scratch
}

// Breed creates one child per adjacent pair (0,1), (2,3), ... using the
// scratch genomes returned by Pair, which it consumes.
func (p Population) Breed(scratch []*logic.Stack, rng *rand.Rand) Population {
	children := make(Population, 0, len(p)/2)
	var (
		i       int
		mother  *Chromosome
		father  *Chromosome
		genome  *logic.Stack
		parents [2]uuid.UUID
	)
	for i = 0; i+1 < len(p); i += 2 {
		mother, father = p[i], p[i+1]
		child := mother.Tour.Clone()
		swapInterior(child, rng)
		genome = logic.Mutate(logic.Interleave(scratch[i], scratch[i+1]), rng)
		parents = [2]uuid.UUID{mother.ID, father.ID}
		children = append(children, mother.env.chromosome(child, genome, parents, rng))
	}
	return children
}
