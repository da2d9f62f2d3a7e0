// Package tsp - stabilized tour lengths.
//
// Returned lengths are rounded to 1e-9 so that equal tours compare equal
// across platforms and optimization levels. Searches compare raw lengths;
// only values handed back to callers are rounded.
package tsp

import (
	"math"

	"github.com/katalvlaran/somtsp/geom"
)

// roundScale controls final length stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 rounds x to 1e-9.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// StableLength returns t.Length() rounded to 1e-9.
func StableLength(t geom.Tour) float64 {
	return round1e9(t.Length())
}
