// Package queue implements a FIFO adapter over a double-ended backend
// container. Push appends at the back, Pop removes at the front, so the
// backend must be cheap at both ends: New picks deque.Deque, From adopts
// any container.DoubleEnded. Like the stack adapter, dispatch is resolved
// at compile time and dsdebug builds check preconditions.
package queue

import (
	"github.com/larynjahor/ds/container"
	"github.com/larynjahor/ds/deque"
	"github.com/larynjahor/ds/internal/check"
)

// New returns a queue over a fresh deque backend with vals pushed in
// order, so the first value ends up at the front.
func New[T any](vals ...T) *Queue[T, *deque.Deque[T]] {
	return From[T](deque.New[T](), vals...)
}

// From returns a queue adopting c. Elements already in c stay where they
// are, with the front of c becoming the front of the queue. Any vals are
// then pushed at the back in order.
func From[T any, C container.DoubleEnded[T]](c C, vals ...T) *Queue[T, C] {
	q := &Queue[T, C]{
		c: c,
	}

	for _, v := range vals {
		q.Push(v)
	}

	return q
}

// Queue adapts a double-ended backend into a FIFO queue. The adapter owns
// the backend it was constructed with; it never replaces it except through
// Swap. Assigning a Queue value copies the handle to the same backend;
// Clone is the deep copy.
type Queue[T any, C container.DoubleEnded[T]] struct {
	c C
}

func (q *Queue[T, C]) Empty() bool {
	return q.c.Empty()
}

func (q *Queue[T, C]) Len() int {
	return q.c.Len()
}

// Front returns a copy of the oldest element. Mutable access goes through
// Container().Front().
func (q *Queue[T, C]) Front() T {
	if check.Enabled && q.c.Empty() {
		panic("queue: Front of empty queue")
	}

	return *q.c.Front()
}

func (q *Queue[T, C]) Back() T {
	if check.Enabled && q.c.Empty() {
		panic("queue: Back of empty queue")
	}

	return *q.c.Back()
}

func (q *Queue[T, C]) Push(val T) {
	q.c.PushBack(val)
}

// Emplace pushes a zero value at the back and returns a pointer to it.
func (q *Queue[T, C]) Emplace() *T {
	return q.c.EmplaceBack()
}

// Pop removes the oldest element. It does not return the removed value;
// read Front first when the value is needed.
func (q *Queue[T, C]) Pop() {
	if check.Enabled && q.c.Empty() {
		panic("queue: Pop of empty queue")
	}

	q.c.PopFront()
}

// Swap exchanges the backends of two queues of the same instantiation.
func (q *Queue[T, C]) Swap(other *Queue[T, C]) {
	q.c, other.c = other.c, q.c
}

// Container returns the backend itself, not a copy.
func (q *Queue[T, C]) Container() C {
	return q.c
}
