// Package tsp - unified dispatcher for constructors and improvers.
//
// This file provides the canonical entry points:
//
//   - ConstructTour: validate points, route to the chosen Constructor, then
//     re-validate the result as a Hamiltonian circuit over the input.
//   - ImproveTour: route to TwoOpt or LinKernighan and enforce monotonicity,
//     the returned tour is never longer than the caller's baseline.
//   - BestOfThree: NN, hull insertion and Christofides on independent RNG
//     streams; the shortest is polished with LinKernighan.
//
// Design principles:
//   - Deterministic: one seed (Options.Seed) drives every draw.
//   - Strict sentinels: geom.ErrInvalidInput family on bad input,
//     geom.ErrResultInvariant when a produced tour fails re-validation.
//   - Stable length: returned lengths are rounded to 1e−9.
package tsp

import (
	"log/slog"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
)

// ConstructTour validates pts and builds a tour with method.
func ConstructTour(pts []geom.Point, method Constructor, opts Options) (Result, error) {
	if err := geom.ValidatePoints(pts); err != nil {
		return Result{}, err
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	o := opts.normalize()
	rng := NewRNG(o.Seed)

	var (
		tour geom.Tour
		err  error
	)
	switch method {
	case ConstructNearestNeighbor:
		tour = NearestNeighbor(pts, rng)
	case ConstructDoubleMST:
		tour, err = DoubleMST(pts, rng, o)
	case ConstructHullInsertion:
		tour, err = HullInsertion(pts)
	case ConstructChristofides:
		tour, err = Christofides(pts, rng, o)
	case ConstructBestOfThree:
		tour, err = BestOfThree(pts, rng, o)
	default:
		return Result{}, ErrUnknownMethod
	}
	if err != nil {
		return Result{}, err
	}
	res, err := NewResult(tour, pts)
	if err != nil {
		return Result{}, err
	}
	o.Logger.Debug("construct: done",
		slog.String("method", method.String()),
		slog.Int("n", len(pts)),
		slog.Float64("length", res.Length))
	return res, nil
}

// NewResult re-validates tour against pts and packs it with its index order
// and stabilized length.
func NewResult(tour geom.Tour, pts []geom.Point) (Result, error) {
	order, err := geom.IndexOrder(tour, pts)
	if err != nil {
		return Result{}, err
	}
	return Result{Tour: tour, Order: order, Length: StableLength(tour)}, nil
}

// ImproveTour runs method on tour. currentLength is the baseline the result
// must not exceed; pass tour.Length() when unknown.
func ImproveTour(tour geom.Tour, currentLength float64, method Improver, opts Options) (geom.Tour, error) {
	if err := geom.ValidatePoints(tour); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}
	o := opts.normalize()

	var (
		out geom.Tour
		err error
	)
	switch method {
	case ImproveTwoOpt:
		out, _ = twoOptStep(tour, currentLength, o.TwoOptEps)
	case ImproveLinKernighan:
		out, err = LinKernighan(tour, NewRNG(o.Seed), o)
		if err != nil {
			return nil, err
		}
	default:
		return nil, ErrUnknownMethod
	}
	if err = geom.CheckHamiltonian(out, tour); err != nil {
		return nil, err
	}
	if out.Length() > currentLength || out.Length() > tour.Length() {
		return tour.Clone(), nil
	}
	return out, nil
}

// BestOfThree builds NN, hull-insertion and Christofides tours, keeps the
// shortest and polishes it with LinKernighan.
func BestOfThree(pts []geom.Point, rng *rand.Rand, opts Options) (geom.Tour, error) {
	o := opts.normalize()
	base := orDefault(rng)

	nn := NearestNeighbor(pts, DeriveRNG(base, 1))
	hull, err := HullInsertion(pts)
	if err != nil {
		return nil, err
	}
	chr, err := Christofides(pts, DeriveRNG(base, 2), o)
	if err != nil {
		return nil, err
	}

	var best = nn
	if hull.Length() < best.Length() {
		best = hull
	}
	if chr.Length() < best.Length() {
		best = chr
	}
	o.Logger.Debug("best-of-three: candidates",
		slog.Float64("nnh", nn.Length()),
		slog.Float64("hull", hull.Length()),
		slog.Float64("christofides", chr.Length()))
	return LinKernighan(best, DeriveRNG(base, 3), o)
}
