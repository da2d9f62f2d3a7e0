// Package somtsp - facade operations.
package somtsp

import (
	"log/slog"

	"github.com/katalvlaran/somtsp/evolve"
	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tsp"
)

// Method selects a constructor or an improver.
type Method int

const (
	// NNH is the nearest-neighbor heuristic.
	NNH Method = iota
	// DoubleMST shortcuts a walk of the doubled MST.
	DoubleMST
	// ConvexHullInsertion grows the hull by cheapest insertion.
	ConvexHullInsertion
	// Christofides joins the MST with a matching over its odd vertices.
	Christofides
	// SOMClusters chains SOM clusters grown from the hull (SOM-CH-NN).
	SOMClusters
	// LKBestOfThree polishes the best of NNH, hull insertion and
	// Christofides with Lin-Kernighan.
	LKBestOfThree
	// TwoOpt applies one improving 2-opt move.
	TwoOpt
	// LinKernighan runs the stack-based exchange search.
	LinKernighan
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case NNH:
		return "nnh"
	case DoubleMST:
		return "double-mst"
	case ConvexHullInsertion:
		return "convex-hull-insertion"
	case Christofides:
		return "christofides"
	case SOMClusters:
		return "som-ch-nn"
	case LKBestOfThree:
		return "lk-best-of-three"
	case TwoOpt:
		return "2-opt"
	case LinKernighan:
		return "lin-kernighan"
	default:
		return "unknown"
	}
}

// Result is a validated tour with its index order and length.
type Result = tsp.Result

// ErrUnknownMethod is returned for a Method the operation does not support.
var ErrUnknownMethod = tsp.ErrUnknownMethod

var constructors = map[Method]tsp.Constructor{
	NNH:                 tsp.ConstructNearestNeighbor,
	DoubleMST:           tsp.ConstructDoubleMST,
	ConvexHullInsertion: tsp.ConstructHullInsertion,
	Christofides:        tsp.ConstructChristofides,
	LKBestOfThree:       tsp.ConstructBestOfThree,
}

// ConstructTour builds a tour over points with a constructor Method. The
// result is re-validated as a Hamiltonian circuit; improver methods return
// ErrUnknownMethod.
func ConstructTour(points []geom.Point, method Method, opts ...Option) (Result, error) {
	o := apply(opts)
	if c, ok := constructors[method]; ok {
		return tsp.ConstructTour(points, c, o.tspOptions())
	}
	if method != SOMClusters {
		return Result{}, ErrUnknownMethod
	}

	if err := geom.ValidatePoints(points); err != nil {
		return Result{}, err
	}
	cfg := o.somConfig()
	tour, err := som.Construct(points, cfg, nil, tsp.NewRNG(o.Seed))
	if err != nil {
		return Result{}, err
	}
	return tsp.NewResult(tour, points)
}

// ImproveTour runs TwoOpt or LinKernighan on tour. The returned tour is
// never longer than currentLength or tour itself.
func ImproveTour(tour geom.Tour, currentLength float64, method Method, opts ...Option) (geom.Tour, error) {
	var m tsp.Improver
	switch method {
	case TwoOpt:
		m = tsp.ImproveTwoOpt
	case LinKernighan:
		m = tsp.ImproveLinKernighan
	default:
		return nil, ErrUnknownMethod
	}
	return tsp.ImproveTour(tour, currentLength, m, apply(opts).tspOptions())
}

// ClusterWithSOM runs the SOM over inputs and neurons and returns one
// Assignment per neuron. genome may be nil; it is consumed.
func ClusterWithSOM(inputs, neurons []geom.Point, maxIterations int, maxDistance float64, genome *logic.Stack, opts ...Option) ([]som.Assignment, error) {
	o := apply(opts)
	cfg := o.somConfig()
	cfg.MaxIterations = maxIterations
	cfg.MaxDistance = maxDistance

	out, err := som.Run(inputs, neurons, cfg, genome)
	if err != nil {
		return nil, err
	}
	if o.Logger != nil {
		o.Logger.Debug("som: clustered",
			slog.Int("inputs", len(inputs)), slog.Int("neurons", len(neurons)))
	}
	return out, nil
}

// EvolveTours evolves SOM-grown tours over points and returns the best.
func EvolveTours(points []geom.Point, cfg evolve.Config) (Result, error) {
	return evolve.Evolve(points, cfg)
}
