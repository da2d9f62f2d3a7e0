// Package tsp - shared types, options and sentinel errors.
//
// Design:
//   - Options follows the DefaultOptions()+validate idiom; zero values are
//     replaced by defaults in normalize, never silently misused.
//   - Every exported error is a sentinel; derived sentinels wrap
//     geom.ErrInvalidInput so callers can test the whole input taxonomy with
//     a single errors.Is.
//   - errStuckSearch is internal: the Euler walk and the ant matching always
//     recover from it with a documented fallback.
package tsp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/somtsp/geom"
)

// ErrOddMatching indicates a matching request over an odd number of nodes.
var ErrOddMatching = fmt.Errorf("%w: matching needs an even number of nodes", geom.ErrInvalidInput)

// ErrUnknownMethod indicates an unsupported Constructor or Improver value.
var ErrUnknownMethod = fmt.Errorf("%w: unknown method", geom.ErrInvalidInput)

// ErrBadOptions indicates negative budgets or probabilities outside [0,1].
var ErrBadOptions = fmt.Errorf("%w: invalid options", geom.ErrInvalidInput)

// errStuckSearch marks a search that cannot proceed with its current
// structure. It never leaves this package.
var errStuckSearch = errors.New("tsp: search is stuck")

// Constructor selects a tour-construction heuristic.
type Constructor int

const (
	// ConstructNearestNeighbor is the greedy always-closest-next walk.
	ConstructNearestNeighbor Constructor = iota
	// ConstructDoubleMST walks the doubled Prim MST and shortcuts it.
	ConstructDoubleMST
	// ConstructHullInsertion grows the convex hull by cheapest insertion.
	ConstructHullInsertion
	// ConstructChristofides adds a matching over odd MST vertices before the walk.
	ConstructChristofides
	// ConstructBestOfThree runs NN, hull insertion and Christofides, keeps the
	// shortest and polishes it with LinKernighan.
	ConstructBestOfThree
)

// String implements fmt.Stringer.
func (c Constructor) String() string {
	switch c {
	case ConstructNearestNeighbor:
		return "nnh"
	case ConstructDoubleMST:
		return "double-mst"
	case ConstructHullInsertion:
		return "hull-insertion"
	case ConstructChristofides:
		return "christofides"
	case ConstructBestOfThree:
		return "lk-best-of-three"
	default:
		return "unknown"
	}
}

// Improver selects a local-search method.
type Improver int

const (
	// ImproveTwoOpt applies one first-improvement 2-opt move.
	ImproveTwoOpt Improver = iota
	// ImproveLinKernighan runs the stack-based sequential exchange search.
	ImproveLinKernighan
)

// String implements fmt.Stringer.
func (m Improver) String() string {
	switch m {
	case ImproveTwoOpt:
		return "2-opt"
	case ImproveLinKernighan:
		return "lin-kernighan"
	default:
		return "unknown"
	}
}

// MatchStrategy forces a matching path; MatchAuto picks by node count.
type MatchStrategy int

const (
	// MatchAuto uses the ant colony up to AntLimit nodes, the fallback above.
	MatchAuto MatchStrategy = iota
	// MatchAnt always tries the ant colony first (still falls back when stuck).
	MatchAnt
	// MatchFallback always uses the relaxed greedy matching.
	MatchFallback
)

// Defaults.
const (
	DefaultAntLimit     = 150
	DefaultAntRounds    = 2
	DefaultTwoOptEps    = 1e-6
	DefaultTwoOptPasses = 3000
	DefaultLKSwapBias   = 0.8
	DefaultLKLoosen     = 1.2
	DefaultLKTighten    = 1.5
	DefaultLKMinPasses  = 100
	DefaultLKMaxPasses  = 20000
	DefaultLKPassFactor = 20
	fallbackRelax       = 1.5
)

// MatchingOptions configures the matching subsystem.
type MatchingOptions struct {
	// AntLimit is the largest node count handled by the ant colony.
	AntLimit int
	// Rounds is the number of sprout rounds per node.
	Rounds int
	// Strategy forces a path; MatchAuto by default.
	Strategy MatchStrategy
}

// Options configures construction and local search.
//
// Use DefaultOptions() and override fields; zero numeric fields are replaced
// by their defaults.
type Options struct {
	// Seed drives every random draw; 0 maps to a fixed default seed.
	Seed int64

	// Logger receives debug events. nil discards them.
	Logger *slog.Logger

	// Matching tunes the Christofides matching.
	Matching MatchingOptions

	// LKPasses is the number of randomized stack passes; 0 means
	// DefaultLKPassFactor·n clamped to [DefaultLKMinPasses, DefaultLKMaxPasses].
	LKPasses int

	// TwoOptPasses bounds the 2-opt polish after LinKernighan.
	TwoOptPasses int

	// TwoOptEps is the squared-distance profit a 2-opt move must exceed.
	TwoOptEps float64

	// LKSwapBias is the probability of appending B,C (instead of C,B) on an exchange.
	LKSwapBias float64

	// LKInitialLimit seeds the adaptive gain limit; 0 keeps it inert.
	LKInitialLimit float64
}

// DefaultOptions returns the reference configuration.
func DefaultOptions() Options {
	return Options{
		Seed:   0,
		Logger: nil,
		Matching: MatchingOptions{
			AntLimit: DefaultAntLimit,
			Rounds:   DefaultAntRounds,
			Strategy: MatchAuto,
		},
		LKPasses:       0,
		TwoOptPasses:   DefaultTwoOptPasses,
		TwoOptEps:      DefaultTwoOptEps,
		LKSwapBias:     DefaultLKSwapBias,
		LKInitialLimit: 0,
	}
}

// NopLogger returns a logger that discards every record.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// Result is a constructed tour with its index form and stabilized length.
type Result struct {
	// Tour lists the points in visiting order (implicitly closed).
	Tour geom.Tour
	// Order is the closed index sequence over the input: len n+1, Order[0]==Order[n].
	Order []int
	// Length is the closed tour length rounded to 1e-9.
	Length float64
}
