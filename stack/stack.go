// Package stack implements a LIFO adapter over a backend container.
//
// The adapter holds exactly one backend and translates stack operations
// into the backend's back-end operations: Push appends, Pop removes the
// last element, Top reads it. Any type implementing container.Interface
// can serve as the backend; New picks vector.Vector, From adopts a
// caller-supplied one. Dispatch is resolved at compile time through the
// type parameter, so the adapter adds no overhead over calling the
// backend directly.
//
// Builds tagged dsdebug check preconditions: Top and Pop on an empty
// stack panic with a message naming the operation. Default builds skip
// the checks and fall through to the backend, whose own bounds checks
// apply.
package stack

import (
	"github.com/larynjahor/ds/container"
	"github.com/larynjahor/ds/internal/check"
	"github.com/larynjahor/ds/vector"
)

// New returns a stack over a fresh vector backend with vals pushed in
// order, so the last value ends up on top.
func New[T any](vals ...T) *Stack[T, *vector.Vector[T]] {
	return From[T](vector.New[T](), vals...)
}

// From returns a stack adopting c. Elements already in c stay where they
// are, with the back of c becoming the top of the stack. Any vals are then
// pushed on top in order.
func From[T any, C container.Interface[T]](c C, vals ...T) *Stack[T, C] {
	s := &Stack[T, C]{
		c: c,
	}

	for _, v := range vals {
		s.Push(v)
	}

	return s
}

// Stack adapts a backend container into a LIFO stack. The adapter owns the
// backend it was constructed with; it never reallocates or replaces it
// except through Swap.
//
// Assigning a Stack value copies the handle to the same backend when C is a
// pointer type, as all backends in this module are. Clone is the deep copy.
type Stack[T any, C container.Interface[T]] struct {
	c C
}

func (s *Stack[T, C]) Empty() bool {
	return s.c.Empty()
}

func (s *Stack[T, C]) Len() int {
	return s.c.Len()
}

// Top returns a copy of the top element. To mutate the top element in
// place, go through Container().Back().
func (s *Stack[T, C]) Top() T {
	if check.Enabled && s.c.Empty() {
		panic("stack: Top of empty stack")
	}

	return *s.c.Back()
}

func (s *Stack[T, C]) Push(val T) {
	s.c.PushBack(val)
}

// Emplace pushes a zero value and returns a pointer to it for in-place
// construction. How long the pointer stays valid is up to the backend.
func (s *Stack[T, C]) Emplace() *T {
	return s.c.EmplaceBack()
}

// Pop removes the top element. It does not return the removed value; read
// Top first when the value is needed.
func (s *Stack[T, C]) Pop() {
	if check.Enabled && s.c.Empty() {
		panic("stack: Pop of empty stack")
	}

	s.c.PopBack()
}

// Swap exchanges the backends of two stacks of the same instantiation.
func (s *Stack[T, C]) Swap(other *Stack[T, C]) {
	s.c, other.c = other.c, s.c
}

// Container returns the backend itself, not a copy. Callers may mutate it
// between stack operations; the stack observes the changes immediately.
func (s *Stack[T, C]) Container() C {
	return s.c
}
