// Package evolve - configuration, defaults, sentinels and reports.
package evolve

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/somtsp/geom"
	"github.com/katalvlaran/somtsp/logic"
	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tsp"
)

// Defaults and bounds.
const (
	DefaultRequirement         = 1.12
	DefaultPopulationSize      = 12
	DefaultStackSize           = 10
	DefaultGenerations         = 3
	DefaultLargeInputThreshold = 300

	MinRequirement = 1.0000001
	MaxRequirement = 3.0

	// PopulationFloor is the size culling never goes below.
	PopulationFloor = 4

	extraCullRate   = 0.02
	extraCullMargin = 1.15
	tourSwapRate    = 0.5
)

var (
	// ErrRequirement reports a Requirement outside [MinRequirement, MaxRequirement].
	ErrRequirement = fmt.Errorf("%w: requirement outside [%v, %v]", geom.ErrInvalidInput, MinRequirement, MaxRequirement)

	// ErrBadConfig reports negative sizes or a population too small to pair.
	ErrBadConfig = fmt.Errorf("%w: evolve config", geom.ErrInvalidInput)
)

// Config tunes Evolve and EvolveGA. Zero fields take the defaults.
type Config struct {
	// Requirement is the culling factor over the best length, in
	// [1.0000001, 3.0]. Zero means DefaultRequirement.
	Requirement float64

	PopulationSize int
	StackSize      int
	Generations    int

	// LargeInputThreshold drops Generations to 1 for inputs at least this
	// large.
	LargeInputThreshold int

	// Polish runs tsp.LinKernighan on the winner with PolishOptions.
	Polish        bool
	PolishOptions tsp.Options

	// SOM configures the SOM-CH-NN runs. The zero value means
	// som.DefaultConfig with ApproachInputs set.
	SOM som.Config

	// Registry resolves genome IDs; nil uses logic.DefaultRegistry.
	Registry *logic.Registry

	Seed   int64
	Logger *slog.Logger

	// OnGeneration receives one report per finished generation.
	OnGeneration func(GenerationReport)
}

// DefaultConfig returns the reference settings.
func DefaultConfig() Config {
	return Config{
		Requirement:         DefaultRequirement,
		PopulationSize:      DefaultPopulationSize,
		StackSize:           DefaultStackSize,
		Generations:         DefaultGenerations,
		LargeInputThreshold: DefaultLargeInputThreshold,
	}
}

// GenerationReport summarizes one generation. Size is the population after
// culling, Children the number appended by breeding. Best, Mean and StdDev
// describe the tour lengths before culling.
type GenerationReport struct {
	Generation int
	Size       int
	Best       float64
	Mean       float64
	StdDev     float64
	Culled     int
	Children   int
}

// validate checks the raw config; zero fields are accepted.
func (c Config) validate() error {
	if c.Requirement != 0 && (c.Requirement < MinRequirement || c.Requirement > MaxRequirement) {
		return ErrRequirement
	}
	if c.PopulationSize < 0 || c.StackSize < 0 || c.Generations < 0 || c.LargeInputThreshold < 0 {
		return ErrBadConfig
	}
	if c.PopulationSize == 1 {
		return ErrBadConfig
	}
	return nil
}

// normalize fills zero fields with defaults.
func (c Config) normalize() Config {
	if c.Requirement == 0 {
		c.Requirement = DefaultRequirement
	}
	if c.PopulationSize == 0 {
		c.PopulationSize = DefaultPopulationSize
	}
	if c.StackSize == 0 {
		c.StackSize = DefaultStackSize
	}
	if c.Generations == 0 {
		c.Generations = DefaultGenerations
	}
	if c.LargeInputThreshold == 0 {
		c.LargeInputThreshold = DefaultLargeInputThreshold
	}
	if c.Logger == nil {
		c.Logger = tsp.NopLogger()
	}
	if c.Registry == nil {
		c.Registry = logic.DefaultRegistry()
	}
	if c.SOM == (som.Config{}) {
		c.SOM = som.DefaultConfig()
		c.SOM.ApproachInputs = true
	}
	if c.SOM.Registry == nil {
		c.SOM.Registry = c.Registry
	}
	if c.SOM.Logger == nil {
		c.SOM.Logger = c.Logger
	}
	if c.PolishOptions.Logger == nil {
		c.PolishOptions.Logger = c.Logger
	}
	return c
}

// generations resolves the generation budget for n points.
func (c Config) generations(n int) int {
	if n >= c.LargeInputThreshold {
		return 1
	}
	return c.Generations
}
