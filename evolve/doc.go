// Package evolve is the evolutionary layer of somtsp. A population of
// Chromosomes, each a tour plus a logic.Stack genome, is grown with the
// SOM-CH-NN constructor and refined over a few generations.
//
// Evolve runs the reference loop:
//
//	SEED → for each generation { GROW → FITNESS → CULL → PAIR/CROSS/MUTATE } → SELECT_BEST
//
//   - SEED: PopulationSize chromosomes, each with a SOM-CH-NN tour built
//     without a genome and a stack of StackSize random rule IDs.
//   - GROW: re-run SOM-CH-NN with a copy of the chromosome's genome driving
//     the extra neuron moves; the copy is consumed, the genome is kept for
//     breeding.
//   - FITNESS: required = best length × Requirement.
//   - CULL: drop members longer than required; drop members above
//     required/1.15 with probability 2% (the current best is spared). Never
//     below PopulationFloor members.
//   - PAIR: reorder so adjacent members are mates, preferring genomes with
//     different tops and equal depth.
//   - CROSS/MUTATE: one child per adjacent pair; its tour is the mother's
//     with a 50% chance of two interior points swapped, its genome is
//     logic.Mutate(logic.Interleave(mother, father)).
//   - SELECT_BEST: the shortest member, optionally polished with
//     tsp.LinKernighan and re-validated.
//
// EvolveGA runs the same operators inside eaopt's generational model with
// tournament selection; *Chromosome implements eaopt.Genome.
//
// Generation statistics (GenerationReport) are computed with gonum/stat and
// delivered through Config.OnGeneration.
package evolve
