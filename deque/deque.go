// Package deque implements a growable ring buffer with constant-time
// insertion and removal at both ends. It is the default backend of the queue
// adapter and a drop-in stack backend.
package deque

import (
	"fmt"
	"iter"

	"github.com/goccy/go-json"

	"github.com/larynjahor/ds/container"
)

var _ container.DoubleEnded[int] = (*Deque[int])(nil)
var _ container.Cloner[*Deque[int]] = (*Deque[int])(nil)
var _ container.Validator = (*Deque[int])(nil)
var _ container.Comparer[int, *Deque[int]] = (*Deque[int])(nil)

// minCapacity is the smallest buffer allocated. Must be a power of two: the
// ring indexes with a bit mask.
const minCapacity = 16

// New returns a deque holding vals in order, front to back.
func New[T any](vals ...T) *Deque[T] {
	d := &Deque[T]{}

	if len(vals) > 0 {
		d.resize(capacityFor(len(vals)))
		d.count = copy(d.buf, vals)
	}

	return d
}

// WithCapacity returns an empty deque with room for at least n elements
// before the first reallocation.
func WithCapacity[T any](n int) *Deque[T] {
	d := &Deque[T]{}

	if n > 0 {
		d.resize(capacityFor(n))
	}

	return d
}

// Deque is a double-ended queue over a ring buffer whose capacity is always
// zero or a power of two. The zero value is an empty deque ready to use.
//
// Operations that read or remove an element of an empty deque panic: the
// ring has to check emptiness anyway to keep its indices consistent.
type Deque[T any] struct {
	buf   []T
	head  int
	count int
}

func (d *Deque[T]) Len() int {
	return d.count
}

func (d *Deque[T]) Empty() bool {
	return d.count == 0
}

// Cap reports the current buffer capacity.
func (d *Deque[T]) Cap() int {
	return len(d.buf)
}

func (d *Deque[T]) PushBack(val T) {
	d.grow()

	d.buf[d.index(d.count)] = val
	d.count++
}

// EmplaceBack appends a zero value and returns a pointer to it. The pointer
// is invalidated by the next growth of the deque.
func (d *Deque[T]) EmplaceBack() *T {
	d.grow()

	var zero T

	i := d.index(d.count)
	d.buf[i] = zero
	d.count++

	return &d.buf[i]
}

func (d *Deque[T]) PushFront(val T) {
	d.grow()

	d.head = d.index(len(d.buf) - 1)
	d.buf[d.head] = val
	d.count++
}

// PopBack removes the last element. The vacated slot is zeroed so popped
// values do not keep their referents alive.
func (d *Deque[T]) PopBack() {
	if d.count == 0 {
		panic("deque: PopBack of empty deque")
	}

	var zero T

	d.count--
	d.buf[d.index(d.count)] = zero
}

// PopFront removes the first element, zeroing the vacated slot.
func (d *Deque[T]) PopFront() {
	if d.count == 0 {
		panic("deque: PopFront of empty deque")
	}

	var zero T

	d.buf[d.head] = zero
	d.head = d.index(1)
	d.count--
}

func (d *Deque[T]) Back() *T {
	if d.count == 0 {
		panic("deque: Back of empty deque")
	}

	return &d.buf[d.index(d.count-1)]
}

func (d *Deque[T]) Front() *T {
	if d.count == 0 {
		panic("deque: Front of empty deque")
	}

	return &d.buf[d.head]
}

// At returns a pointer to the element at logical index i, 0 being the front.
func (d *Deque[T]) At(i int) *T {
	if i < 0 || i >= d.count {
		panic(fmt.Sprintf("deque: index %d out of range with length %d", i, d.count))
	}

	return &d.buf[d.index(i)]
}

// Clear removes all elements but keeps the allocated buffer.
func (d *Deque[T]) Clear() {
	var zero T

	for i := 0; i < d.count; i++ {
		d.buf[d.index(i)] = zero
	}

	d.head = 0
	d.count = 0
}

// Values returns a fresh slice of the elements, front to back.
func (d *Deque[T]) Values() []T {
	vals := make([]T, 0, d.count)

	for i := 0; i < d.count; i++ {
		vals = append(vals, d.buf[d.index(i)])
	}

	return vals
}

// All iterates the elements front to back.
func (d *Deque[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < d.count; i++ {
			if !yield(d.buf[d.index(i)]) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Element values are copied with plain assignment.
func (d *Deque[T]) Clone() *Deque[T] {
	clone := &Deque[T]{
		head:  d.head,
		count: d.count,
	}

	if d.buf != nil {
		clone.buf = make([]T, len(d.buf))
		copy(clone.buf, d.buf)
	}

	return clone
}

func (d *Deque[T]) EqualFunc(other *Deque[T], eq func(a, b T) bool) bool {
	if d.count != other.count {
		return false
	}

	for i := 0; i < d.count; i++ {
		if !eq(d.buf[d.index(i)], other.buf[other.index(i)]) {
			return false
		}
	}

	return true
}

func (d *Deque[T]) CompareFunc(other *Deque[T], cmp func(a, b T) int) int {
	for i := 0; i < d.count && i < other.count; i++ {
		if c := cmp(d.buf[d.index(i)], other.buf[other.index(i)]); c != 0 {
			return c
		}
	}

	switch {
	case d.count < other.count:
		return -1
	case d.count > other.count:
		return 1
	default:
		return 0
	}
}

// Validate checks ring invariants: capacity is zero or a power of two, the
// head index is inside the buffer, and the element count fits the buffer.
func (d *Deque[T]) Validate() error {
	if len(d.buf)&(len(d.buf)-1) != 0 {
		return fmt.Errorf("deque: capacity %d is not a power of two", len(d.buf))
	}

	if d.count < 0 || d.count > len(d.buf) {
		return fmt.Errorf("deque: count %d outside buffer of capacity %d", d.count, len(d.buf))
	}

	if d.head != 0 && (d.head < 0 || d.head >= len(d.buf)) {
		return fmt.Errorf("deque: head %d outside buffer of capacity %d", d.head, len(d.buf))
	}

	return nil
}

// MarshalJSON encodes the elements as a JSON array, front to back.
func (d *Deque[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Values())
}

// UnmarshalJSON replaces the deque's contents with the decoded array.
func (d *Deque[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}

	*d = *New(vals...)

	return nil
}

// index maps a logical offset from the head to a buffer position.
func (d *Deque[T]) index(i int) int {
	return (d.head + i) & (len(d.buf) - 1)
}

// grow doubles the buffer when it is full, re-linearizing the elements.
func (d *Deque[T]) grow() {
	if d.count < len(d.buf) {
		return
	}

	if len(d.buf) == 0 {
		d.resize(minCapacity)
		return
	}

	d.resize(len(d.buf) * 2)
}

// resize moves the elements into a fresh buffer of capacity n, which must be
// a power of two no smaller than the element count.
func (d *Deque[T]) resize(n int) {
	buf := make([]T, n)

	if d.count > 0 {
		if d.head+d.count <= len(d.buf) {
			copy(buf, d.buf[d.head:d.head+d.count])
		} else {
			m := copy(buf, d.buf[d.head:])
			copy(buf[m:], d.buf[:d.count-m])
		}
	}

	d.buf = buf
	d.head = 0
}

// capacityFor returns the smallest power of two that is at least n and at
// least minCapacity.
func capacityFor(n int) int {
	c := minCapacity
	for c < n {
		c <<= 1
	}

	return c
}
