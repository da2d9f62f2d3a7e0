// Package logic - rule registry.
//
// A Registry is an append-only table of Fragments. The i-th registered rule
// gets ID i (1-based). Registries are not safe for concurrent mutation;
// Apply and RandomID only read.
package logic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/somtsp/geom"
)

var (
	// ErrNilFragment is returned by Register for a nil rule.
	ErrNilFragment = fmt.Errorf("%w: nil fragment", geom.ErrInvalidInput)

	// ErrEmptyName is returned by Register for a rule without a name.
	ErrEmptyName = fmt.Errorf("%w: empty fragment name", geom.ErrInvalidInput)
)

// Fragment moves origin relative to field. field may contain origin itself.
// threshold is the traverse fraction (see Traverse). ok=false means "no
// movement" and the returned point must be ignored.
type Fragment func(origin geom.Point, field []geom.Point, threshold float64, rng *rand.Rand) (moved geom.Point, ok bool)

type rule struct {
	name string
	fn   Fragment
}

// Registry maps rule IDs to Fragments.
type Registry struct {
	rules []rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry { return &Registry{} }

// DefaultRegistry returns a fresh registry with the five built-in rules.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.mustRegister("nn-sprout-3", SproutThird)
	r.mustRegister("christofides-sprout-9", ChristofidesSprout)
	r.mustRegister("toward-nearest", TowardNearest)
	r.mustRegister("toward-random", TowardRandom)
	r.mustRegister("away-from-nearest-nudge", AwayFromNearest)
	return r
}

func (r *Registry) mustRegister(name string, f Fragment) {
	if _, err := r.Register(name, f); err != nil {
		panic(err)
	}
}

// Register appends f and returns its ID.
func (r *Registry) Register(name string, f Fragment) (int, error) {
	if f == nil {
		return 0, ErrNilFragment
	}
	if name == "" {
		return 0, ErrEmptyName
	}
	r.rules = append(r.rules, rule{name: name, fn: f})
	return len(r.rules), nil
}

// Count returns the number of registered rules, which is also the largest ID.
func (r *Registry) Count() int { return len(r.rules) }

// Valid reports whether id resolves to a rule.
func (r *Registry) Valid(id int) bool { return id >= 1 && id <= len(r.rules) }

// Name returns the rule name for id, or "" when id is not registered.
func (r *Registry) Name(id int) string {
	if !r.Valid(id) {
		return ""
	}
	return r.rules[id-1].name
}

// RandomID draws an ID uniformly from [1, Count]. An empty registry yields 0.
func (r *Registry) RandomID(rng *rand.Rand) int {
	if len(r.rules) == 0 {
		return 0
	}
	return 1 + rng.Intn(len(r.rules))
}

// RandomStack returns a stack of size IDs drawn with RandomID.
func (r *Registry) RandomStack(size int, rng *rand.Rand) *Stack {
	s := NewStack(0)
	var i int
	for i = 0; i < size; i++ {
		s.Push(r.RandomID(rng))
	}
	return s
}

// Apply runs rule id on origin. Unknown IDs are a no-op (ok=false).
func (r *Registry) Apply(id int, origin geom.Point, field []geom.Point, threshold float64, rng *rand.Rand) (geom.Point, bool) {
	if !r.Valid(id) {
		return origin, false
	}
	return r.rules[id-1].fn(origin, field, threshold, rng)
}

// builtin backs the package-level Apply and Count.
var builtin = DefaultRegistry()

// Apply runs rule id of the default registry.
func Apply(id int, origin geom.Point, field []geom.Point, threshold float64, rng *rand.Rand) (geom.Point, bool) {
	return builtin.Apply(id, origin, field, threshold, rng)
}

// Count returns the number of rules in the default registry.
func Count() int { return builtin.Count() }
