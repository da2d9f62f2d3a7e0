// Package evolve - generation statistics.
package evolve

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summarize fills Best, Mean and StdDev from lengths. StdDev is 0 for fewer
// than two samples.
func summarize(generation int, lengths []float64) GenerationReport {
	r := GenerationReport{Generation: generation, Size: len(lengths)}
	if len(lengths) == 0 {
		return r
	}
	r.Best = floats.Min(lengths)
	r.Mean = stat.Mean(lengths, nil)
	if len(lengths) > 1 {
		r.StdDev = stat.StdDev(lengths, nil)
	}
	return r
}

// emit logs r and hands it to the OnGeneration hook.
func (c Config) emit(r GenerationReport) {
	c.Logger.Debug("evolve: generation",
		slog.Int("generation", r.Generation),
		slog.Int("size", r.Size),
		slog.Float64("best", r.Best),
		slog.Float64("mean", r.Mean),
		slog.Float64("stddev", r.StdDev),
		slog.Int("culled", r.Culled),
		slog.Int("children", r.Children))
	if c.OnGeneration != nil {
		c.OnGeneration(r)
	}
}
