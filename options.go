// Package somtsp - functional options.
package somtsp

import (
	"log/slog"

	"github.com/katalvlaran/somtsp/som"
	"github.com/katalvlaran/somtsp/tsp"
)

// Options collects the facade settings. Build it with Option functions.
type Options struct {
	Seed         int64
	Logger       *slog.Logger
	LKPasses     int
	TwoOptPasses int
	Matching     tsp.MatchingOptions

	// SOM is the base configuration for SOMClusters and ClusterWithSOM.
	// The zero value means som.DefaultConfig.
	SOM som.Config
}

// Option configures Options. All Option functions modify the pointed Options.
type Option func(*Options)

// WithSeed sets the seed for every random draw. 0 selects the default seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithLogger routes debug events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithLKPasses sets the number of Lin-Kernighan stack passes.
func WithLKPasses(n int) Option {
	return func(o *Options) {
		o.LKPasses = n
	}
}

// WithTwoOptPasses bounds the 2-opt polish.
func WithTwoOptPasses(n int) Option {
	return func(o *Options) {
		o.TwoOptPasses = n
	}
}

// WithMatching tunes the Christofides matching.
func WithMatching(m tsp.MatchingOptions) Option {
	return func(o *Options) {
		o.Matching = m
	}
}

// WithSOM sets the base SOM configuration.
func WithSOM(cfg som.Config) Option {
	return func(o *Options) {
		o.SOM = cfg
	}
}

// DefaultOptions returns the facade defaults.
func DefaultOptions() Options {
	return Options{
		Matching: tsp.DefaultOptions().Matching,
		SOM:      som.DefaultConfig(),
	}
}

func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// tspOptions maps o onto tsp.Options; zero fields keep the tsp defaults.
func (o Options) tspOptions() tsp.Options {
	t := tsp.DefaultOptions()
	t.Seed = o.Seed
	t.Logger = o.Logger
	t.Matching = o.Matching
	t.LKPasses = o.LKPasses
	if o.TwoOptPasses != 0 {
		t.TwoOptPasses = o.TwoOptPasses
	}
	return t
}

// somConfig returns the SOM configuration with the facade seed and logger.
func (o Options) somConfig() som.Config {
	c := o.SOM
	if c == (som.Config{}) {
		c = som.DefaultConfig()
	}
	c.Seed = o.Seed
	if c.Logger == nil {
		c.Logger = o.Logger
	}
	return c
}
