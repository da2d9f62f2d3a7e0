// Package tsp provides tour construction and local search for the 2D
// Euclidean Travelling Salesman Problem over planar points (geom.Point).
//
// Constructors (see ConstructTour):
//
//   - NearestNeighbor: greedy walk from a random start. O(n²).
//   - DoubleMST: Prim MST, doubled, Euler walk, shortcut. ≤ 2·MST weight.
//   - HullInsertion: convex hull grown by cheapest insertion. O(n³).
//   - Christofides: MST + matching over odd vertices, Euler walk, shortcut.
//     The matching (ant colony with a greedy fallback) is not minimum-weight,
//     so the 1.5·OPT bound is not guaranteed.
//   - BestOfThree: best of the three above, polished by LinKernighan.
//
// Improvers (see ImproveTour):
//
//   - TwoOpt: one first-improvement move on squared-distance profit,
//     accepted only when the real length beats the baseline.
//   - LinKernighan: randomized stack passes with an adaptive gain limit,
//     followed by a bounded 2-opt polish.
//
// Building blocks are exported for reuse: PrimMST, ConvexHull, Match,
// EulerShortcut, NearestNeighborSprout.
//
// Every result returned through ConstructTour is re-validated; a tour that is
// not a Hamiltonian circuit over the input yields geom.ErrResultInvariant.
// Randomness comes from Options.Seed (0 ⇒ fixed default), so runs are
// reproducible. Nothing here is safe for concurrent use of one *rand.Rand.
package tsp
