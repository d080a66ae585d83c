// Package vector implements a contiguous growable sequence over a Go slice.
// It is the default backend of the stack adapter.
package vector

import (
	"fmt"
	"iter"
	"slices"

	"github.com/goccy/go-json"

	"github.com/larynjahor/ds/container"
)

var _ container.RandomAccess[int] = (*Vector[int])(nil)
var _ container.Cloner[*Vector[int]] = (*Vector[int])(nil)
var _ container.Validator = (*Vector[int])(nil)
var _ container.Comparer[int, *Vector[int]] = (*Vector[int])(nil)

// New returns a vector holding vals in order.
func New[T any](vals ...T) *Vector[T] {
	return &Vector[T]{
		elems: vals,
	}
}

// WithCapacity returns an empty vector with room for n elements before the
// first reallocation.
func WithCapacity[T any](n int) *Vector[T] {
	return &Vector[T]{
		elems: make([]T, 0, n),
	}
}

// Vector is a slice with sequence-container methods. Indexing out of range
// panics with the slice's own bounds error; there are no added checks.
type Vector[T any] struct {
	elems []T
}

func (v *Vector[T]) Len() int {
	return len(v.elems)
}

func (v *Vector[T]) Empty() bool {
	return len(v.elems) == 0
}

// Cap reports the current capacity of the backing array.
func (v *Vector[T]) Cap() int {
	return cap(v.elems)
}

func (v *Vector[T]) PushBack(val T) {
	v.elems = append(v.elems, val)
}

// EmplaceBack appends a zero value and returns a pointer to it. The pointer
// is invalidated by the next growth of the vector.
func (v *Vector[T]) EmplaceBack() *T {
	var zero T

	v.elems = append(v.elems, zero)

	return &v.elems[len(v.elems)-1]
}

// PopBack removes the last element. The vacated slot is zeroed so popped
// values do not keep their referents alive.
func (v *Vector[T]) PopBack() {
	n := len(v.elems) - 1

	var zero T
	v.elems[n] = zero

	v.elems = v.elems[:n]
}

func (v *Vector[T]) Back() *T {
	return &v.elems[len(v.elems)-1]
}

func (v *Vector[T]) At(i int) *T {
	return &v.elems[i]
}

func (v *Vector[T]) Set(i int, val T) {
	v.elems[i] = val
}

// Insert places val at index i, shifting the tail toward the back.
func (v *Vector[T]) Insert(i int, val T) {
	v.elems = slices.Insert(v.elems, i, val)
}

// RemoveAt removes the element at index i, preserving element order.
func (v *Vector[T]) RemoveAt(i int) {
	v.elems = slices.Delete(v.elems, i, i+1)
}

// Grow reserves capacity for at least n more elements.
func (v *Vector[T]) Grow(n int) {
	v.elems = slices.Grow(v.elems, n)
}

// Clear removes all elements but keeps the allocated capacity.
func (v *Vector[T]) Clear() {
	clear(v.elems)
	v.elems = v.elems[:0]
}

// Values returns the live backing slice, front to back. Mutations through it
// are visible to the vector and vice versa.
func (v *Vector[T]) Values() []T {
	return v.elems
}

// All iterates the elements front to back.
func (v *Vector[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, val := range v.elems {
			if !yield(val) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Element values are copied with plain assignment.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{
		elems: slices.Clone(v.elems),
	}
}

func (v *Vector[T]) EqualFunc(other *Vector[T], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.elems, other.elems, eq)
}

func (v *Vector[T]) CompareFunc(other *Vector[T], cmp func(a, b T) int) int {
	return slices.CompareFunc(v.elems, other.elems, cmp)
}

// Validate checks internal consistency. For a slice-backed vector the only
// checkable invariant is that length never exceeds capacity.
func (v *Vector[T]) Validate() error {
	if len(v.elems) > cap(v.elems) {
		return fmt.Errorf("vector: length %d exceeds capacity %d", len(v.elems), cap(v.elems))
	}

	return nil
}

// MarshalJSON encodes the elements as a JSON array, front to back.
func (v *Vector[T]) MarshalJSON() ([]byte, error) {
	if v.elems == nil {
		return []byte("[]"), nil
	}

	return json.Marshal(v.elems)
}

// UnmarshalJSON replaces the vector's contents with the decoded array.
func (v *Vector[T]) UnmarshalJSON(data []byte) error {
	v.elems = nil

	return json.Unmarshal(data, &v.elems)
}
