package queue

import (
	"cmp"

	"github.com/larynjahor/ds/container"
)

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable, C interface {
	container.DoubleEnded[T]
	container.Comparer[T, C]
}](a, b *Queue[T, C]) bool {
	return a.c.EqualFunc(b.c, func(x, y T) bool { return x == y })
}

func EqualFunc[T any, C interface {
	container.DoubleEnded[T]
	container.Comparer[T, C]
}](a, b *Queue[T, C], eq func(x, y T) bool) bool {
	return a.c.EqualFunc(b.c, eq)
}

// Compare orders a and b lexicographically, front of the queue first.
func Compare[T cmp.Ordered, C interface {
	container.DoubleEnded[T]
	container.Comparer[T, C]
}](a, b *Queue[T, C]) int {
	return a.c.CompareFunc(b.c, cmp.Compare[T])
}

func CompareFunc[T any, C interface {
	container.DoubleEnded[T]
	container.Comparer[T, C]
}](a, b *Queue[T, C], cmp func(x, y T) int) int {
	return a.c.CompareFunc(b.c, cmp)
}

// Less reports whether a orders before b.
func Less[T cmp.Ordered, C interface {
	container.DoubleEnded[T]
	container.Comparer[T, C]
}](a, b *Queue[T, C]) bool {
	return Compare(a, b) < 0
}

// Clone returns a queue over a deep copy of q's backend.
func Clone[T any, C interface {
	container.DoubleEnded[T]
	container.Cloner[C]
}](q *Queue[T, C]) *Queue[T, C] {
	return &Queue[T, C]{
		c: q.c.Clone(),
	}
}

// Validate runs the backend's own invariant checks.
func Validate[T any, C interface {
	container.DoubleEnded[T]
	container.Validator
}](q *Queue[T, C]) error {
	return q.c.Validate()
}
