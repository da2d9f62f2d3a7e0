// Package somtsp builds and improves tours for the 2D Euclidean travelling
// salesman problem.
//
// The facade in this package covers the four external operations:
//
//	ConstructTour  — NNH, Double-MST, convex-hull insertion, Christofides,
//	                 SOM-CH-NN, or LK over the best of three constructors
//	ImproveTour    — one 2-opt move or a Lin-Kernighan run, never longer
//	                 than the baseline
//	ClusterWithSOM — assign neurons to input clusters with a
//	                 self-organizing map, optionally steered by a genome
//	EvolveTours    — evolve a population of SOM-grown tours
//
// Everything underneath lives in subpackages:
//
//	geom/   — points, tours, distances, validation and the error taxonomy
//	tsp/    — constructors, matching, 2-opt and Lin-Kernighan
//	som/    — the SOM engine and the SOM-CH-NN constructor
//	logic/  — genome stacks and the logic-fragment registry
//	evolve/ — the generational loop and the eaopt engine
//
// Quick example:
//
//	pts := []geom.Point{geom.Pt(3, 4), geom.Pt(1, 5), geom.Pt(1, 1), geom.Pt(5, 1), geom.Pt(5, 5)}
//	res, err := somtsp.ConstructTour(pts, somtsp.Christofides, somtsp.WithSeed(7))
//	if err != nil {
//		// errors.Is(err, geom.ErrInvalidInput) for bad input
//	}
//	better, _ := somtsp.ImproveTour(res.Tour, res.Length, somtsp.LinKernighan)
//
// All randomness flows from one seed (WithSeed); seed 0 selects a fixed
// default, so runs are reproducible. Nothing here is safe for concurrent use
// of a shared *rand.Rand, and nothing spawns goroutines.
package somtsp
