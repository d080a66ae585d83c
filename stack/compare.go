package stack

import (
	"cmp"

	"github.com/larynjahor/ds/container"
)

// The functions below require capabilities beyond container.Interface.
// Methods cannot carry extra constraints, so they are package-level
// functions constrained on the backend type; instantiating one with a
// backend lacking the capability is a compile error.

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable, C interface {
	container.Interface[T]
	container.Comparer[T, C]
}](a, b *Stack[T, C]) bool {
	return a.c.EqualFunc(b.c, func(x, y T) bool { return x == y })
}

func EqualFunc[T any, C interface {
	container.Interface[T]
	container.Comparer[T, C]
}](a, b *Stack[T, C], eq func(x, y T) bool) bool {
	return a.c.EqualFunc(b.c, eq)
}

// Compare orders a and b lexicographically, bottom of the stack first. It
// returns -1 when a is before b, 0 when they are equal and +1 otherwise.
func Compare[T cmp.Ordered, C interface {
	container.Interface[T]
	container.Comparer[T, C]
}](a, b *Stack[T, C]) int {
	return a.c.CompareFunc(b.c, cmp.Compare[T])
}

func CompareFunc[T any, C interface {
	container.Interface[T]
	container.Comparer[T, C]
}](a, b *Stack[T, C], cmp func(x, y T) int) int {
	return a.c.CompareFunc(b.c, cmp)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered, C interface {
	container.Interface[T]
	container.Comparer[T, C]
}](a, b *Stack[T, C]) bool {
	return Compare(a, b) < 0
}

// Clone returns a stack over a deep copy of s's backend.
func Clone[T any, C interface {
	container.Interface[T]
	container.Cloner[C]
}](s *Stack[T, C]) *Stack[T, C] {
	return &Stack[T, C]{
		c: s.c.Clone(),
	}
}

// Validate runs the backend's own invariant checks. The adapter itself
// keeps no state besides the backend, so a valid backend means a valid
// stack.
func Validate[T any, C interface {
	container.Interface[T]
	container.Validator
}](s *Stack[T, C]) error {
	return s.c.Validate()
}
