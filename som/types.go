// Package som - configuration, defaults and results.
package som

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/tsp"
)

// Defaults.
const (
	DefaultLearningRate = 0.015
	DefaultFarWeight    = 1.0
	DefaultThreshold    = 0.7777

	// CollisionMin and CollisionMax bound the anti-collision nudge.
	CollisionMin = 1e-8
	CollisionMax = 2e-8

	// neighbourhoodDivisor sets the BMU neighbourhood to MaxDistance/10.
	neighbourhoodDivisor = 10

	// bmuWeight is the weight of the BMU; weights are percentages.
	bmuWeight = 100

	// iterationBonus is added to 2·inputs for the SOM-CH-NN budget.
	iterationBonus = 14

	// maxSeparationRounds bounds the anti-collision loop.
	maxSeparationRounds = 1000
)

// ErrBadConfig reports an unusable Config.
var ErrBadConfig = fmt.Errorf("%w: som config", geom.ErrInvalidInput)

// Config tunes Run and Construct.
type Config struct {
	// MaxIterations is the ITERATE budget. Required by Run; Construct
	// derives 2·inputs + 14 when it is zero.
	MaxIterations int

	// MaxDistance scales the BMU neighbourhood. Required by Run; Construct
	// derives the largest distance between inputs when it is zero.
	MaxDistance float64

	// LearningRate is the fraction of the remaining distance the BMU moves.
	LearningRate float64

	// FarWeight is the weight of neurons outside the BMU neighbourhood.
	// Zero freezes them.
	FarWeight float64

	// Threshold is the traverse fraction handed to logic fragments.
	Threshold float64

	// Registry resolves genome rule IDs; nil uses logic.DefaultRegistry.
	Registry *logic.Registry

	// ApproachInputs adds the extra inputs of the evolutionary mode to
	// Construct: one (hull[i]+hull[i+h/2])/r + 1 per hull vertex, r ∈ [3,7).
	ApproachInputs bool

	// Seed drives Run. Construct takes its RNG explicitly.
	Seed int64

	// Logger receives debug events; nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns the reference tuning with derived budgets.
func DefaultConfig() Config {
	return Config{
		LearningRate: DefaultLearningRate,
		FarWeight:    DefaultFarWeight,
		Threshold:    DefaultThreshold,
	}
}

// Assignment is a neuron's final position and the index of its nearest input.
type Assignment struct {
	Point   geom.Point
	Cluster int
}

// validate checks the fields Run needs.
func (c Config) validate() error {
	if c.MaxIterations <= 0 || c.MaxDistance <= 0 {
		return ErrBadConfig
	}
	if c.LearningRate <= 0 || c.LearningRate >= 1 {
		return ErrBadConfig
	}
	if c.FarWeight < 0 || c.FarWeight > bmuWeight {
		return ErrBadConfig
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return ErrBadConfig
	}
	return nil
}

// normalize fills zero tuning fields. Budgets are left alone.
func (c Config) normalize() Config {
	if c.LearningRate == 0 {
		c.LearningRate = DefaultLearningRate
	}
	if c.Threshold == 0 {
		c.Threshold = DefaultThreshold
	}
	if c.Registry == nil {
		c.Registry = logic.DefaultRegistry()
	}
	if c.Logger == nil {
		c.Logger = tsp.NopLogger()
	}
	return c
}
