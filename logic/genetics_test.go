package logic_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/somtsp/logic"
)

func TestInterleave(t *testing.T) {
	mother := logic.StackOf(1, 2, 3)
	father := logic.StackOf(4, 5)
	child := logic.Interleave(mother, father)

	assert.Equal(t, []int{3, 5, 2, 4}, child.Values())
	assert.Equal(t, []int{1}, mother.Values(), "leftover stays with the parent")
	assert.True(t, father.Empty())

	assert.True(t, logic.Interleave(logic.StackOf(1), nil).Empty())
}

func TestMutate_StaysInRange(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	reg := logic.DefaultRegistry()
	for round := 0; round < 200; round++ {
		in := reg.RandomStack(30, r)
		out := logic.Mutate(in.Clone(), r)
		assert.LessOrEqual(t, out.Len(), 2*in.Len())
		for _, v := range out.Values() {
			assert.True(t, reg.Valid(v), "id %d out of range", v)
		}
	}
}

func TestMutate_ShiftedGenes(t *testing.T) {
	r := rand.New(rand.NewSource(9))
	var shifted, kept int
	for round := 0; round < 400; round++ {
		out := logic.Mutate(logic.StackOf(5, 5, 5, 5, 5), r)
		for _, v := range out.Values() {
			switch v {
			case 5:
				kept++
			case 3:
				shifted++
			default:
				t.Fatalf("unexpected gene %d", v)
			}
		}
	}
	// 2000 draws: about 980 kept and 100 shifted.
	assert.InDelta(t, 980, kept, 120)
	assert.InDelta(t, 100, shifted, 50)

	// Genes at or below the shift never go below 1.
	out := logic.Mutate(logic.StackOf(1, 2, 1, 2), r)
	for _, v := range out.Values() {
		assert.GreaterOrEqual(t, v, 1)
	}
}
