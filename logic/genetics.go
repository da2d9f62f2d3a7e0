// Package logic - genome operators.
//
// Interleave is the crossover: it drains copies of two parent stacks,
// alternating mother then father, until either runs dry. Mutate drains a
// stack into a new one, keeping each value with probability KeepRate and,
// independently, adding value−ShiftBy with probability ShiftRate when the
// value exceeds ShiftBy. Draining reverses order, which is part of the
// operator: a child genome is consumed in a different order than its
// parents.
package logic

import "math/rand"

const (
	// KeepRate is the probability that Mutate re-pushes a value.
	KeepRate = 0.49

	// ShiftRate is the probability that Mutate adds a shifted value.
	ShiftRate = 0.05

	// ShiftBy is subtracted from a value to form the shifted gene.
	ShiftBy = 2
)

// Interleave pops mother and father alternately into a new stack until one
// of them is empty. Both arguments are consumed; pass clones to keep them.
func Interleave(mother, father *Stack) *Stack {
	child := NewStack(0)
	var m, f int
	for !mother.Empty() && !father.Empty() {
		m, _ = mother.Pop()
		f, _ = father.Pop()
		child.Push(m)
		child.Push(f)
	}
	return child
}

// Mutate drains s into a new stack under the keep/shift rules. s is consumed.
func Mutate(s *Stack, rng *rand.Rand) *Stack {
	out := NewStack(0)
	var (
		v  int
		ok bool
	)
	for {
		if v, ok = s.Pop(); !ok {
			break
		}
		if rng.Float64() < KeepRate {
			out.Push(v)
		}
		if rng.Float64() < ShiftRate && v > ShiftBy {
			out.Push(v - ShiftBy)
		}
	}
	return out
}
