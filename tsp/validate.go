// Package tsp - option validation and normalization.
//
// normalize fills zero fields with defaults; validate rejects values that
// would make a search ill-posed. Both are O(1) and side-effect free.
package tsp

// validate rejects negative budgets and probabilities outside [0,1].
func (o Options) validate() error {
	if o.LKPasses < 0 || o.TwoOptPasses < 0 {
		return ErrBadOptions
	}
	if o.TwoOptEps < 0 || o.LKInitialLimit < 0 {
		return ErrBadOptions
	}
	if o.LKSwapBias < 0 || o.LKSwapBias > 1 {
		return ErrBadOptions
	}
	if o.Matching.AntLimit < 0 || o.Matching.Rounds < 0 {
		return ErrBadOptions
	}
	switch o.Matching.Strategy {
	case MatchAuto, MatchAnt, MatchFallback:
	default:
		return ErrBadOptions
	}
	return nil
}

// normalize returns a copy of o with zero fields replaced by defaults.
func (o Options) normalize() Options {
	if o.Logger == nil {
		o.Logger = NopLogger()
	}
	if o.Matching.AntLimit == 0 {
		o.Matching.AntLimit = DefaultAntLimit
	}
	if o.Matching.Rounds == 0 {
		o.Matching.Rounds = DefaultAntRounds
	}
	if o.TwoOptPasses == 0 {
		o.TwoOptPasses = DefaultTwoOptPasses
	}
	if o.TwoOptEps == 0 {
		o.TwoOptEps = DefaultTwoOptEps
	}
	if o.LKSwapBias == 0 {
		o.LKSwapBias = DefaultLKSwapBias
	}
	return o
}

// lkPasses resolves the pass budget for an instance of n points.
func (o Options) lkPasses(n int) int {
	if o.LKPasses > 0 {
		return o.LKPasses
	}
	var p = DefaultLKPassFactor * n
	if p < DefaultLKMinPasses {
		p = DefaultLKMinPasses
	}
	if p > DefaultLKMaxPasses {
		p = DefaultLKMaxPasses
	}
	return p
}
