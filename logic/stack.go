// Package logic - the LogicStack genome.
//
// Stack is a LIFO of rule IDs with a soft capacity. Pop and Peek on an
// empty stack return (0, false); Push beyond capacity returns false and
// leaves the stack unchanged. A nil *Stack behaves as an empty one, which
// lets callers pass "no genome" without a branch.
package logic

// DefaultCapacity bounds a Stack created with capacity ≤ 0.
const DefaultCapacity = 1 << 20

// Stack is a bounded LIFO of rule IDs. The zero value is ready to use.
type Stack struct {
	data     []int
	capacity int
}

// NewStack returns an empty stack holding at most capacity values.
func NewStack(capacity int) *Stack {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Stack{capacity: capacity}
}

// StackOf returns a stack with ids pushed in order, so the last one is on top.
func StackOf(ids ...int) *Stack {
	s := NewStack(0)
	if len(ids) > s.capacity {
		ids = ids[:s.capacity]
	}
	s.data = append(make([]int, 0, len(ids)), ids...)
	return s
}

func (s *Stack) limit() int {
	if s.capacity <= 0 {
		return DefaultCapacity
	}
	return s.capacity
}

// Push adds id on top. It reports false when the stack is full.
func (s *Stack) Push(id int) bool {
	if len(s.data) >= s.limit() {
		return false
	}
	s.data = append(s.data, id)
	return true
}

// Pop removes and returns the top value.
func (s *Stack) Pop() (int, bool) {
	if s == nil || len(s.data) == 0 {
		return 0, false
	}
	var top = s.data[len(s.data)-1]
	s.data = s.data[:len(s.data)-1]
	return top, true
}

// Peek returns the top value without removing it.
func (s *Stack) Peek() (int, bool) {
	if s == nil || len(s.data) == 0 {
		return 0, false
	}
	return s.data[len(s.data)-1], true
}

// Len returns the number of values on the stack.
func (s *Stack) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data)
}

// Empty reports whether Len() == 0.
func (s *Stack) Empty() bool { return s.Len() == 0 }

// Reset drops every value but keeps the capacity.
func (s *Stack) Reset() {
	if s != nil {
		s.data = s.data[:0]
	}
}

// Clone returns an independent copy. Clone of nil is an empty stack.
func (s *Stack) Clone() *Stack {
	if s == nil {
		return NewStack(0)
	}
	return &Stack{data: append([]int(nil), s.data...), capacity: s.capacity}
}

// Values returns a copy of the contents, bottom first.
func (s *Stack) Values() []int {
	if s == nil {
		return nil
	}
	return append([]int(nil), s.data...)
}
