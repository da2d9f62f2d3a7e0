// Package logic holds the behavioural genome of the evolutionary solver:
// a stack of movement-rule IDs (Stack) and the registry of movement rules
// (Fragment) those IDs select.
//
// A Fragment moves one point (a SOM neuron) relative to a field of other
// points. IDs start at 1; 0 is reserved and never resolves to a rule, as
// does any ID above Registry.Count. Unknown IDs and rules that find nothing
// to do report ok=false and the caller leaves the point where it was.
//
// DefaultRegistry holds five rules:
//
//  1. Nearest-neighbour sprout of three steps, move toward the third node.
//  2. Christofides tour over a nine-node sprout, move toward the node that
//     follows the origin's nearest neighbour (no-op below nine nodes).
//  3. Move toward the nearest other node.
//  4. Move toward a random node (no-op when it picks the origin).
//  5. Move away from the nearest node, then nudge up, down, left or right.
//
// The genome operators Interleave and Mutate implement the crossover and
// mutation of the evolve package. Neither introduces an ID below 1.
//
// Randomness is always injected as *rand.Rand. Nothing here is safe for
// concurrent use.
package logic
