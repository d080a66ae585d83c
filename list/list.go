// Package list implements a doubly linked list with a sentinel root node.
// Element pointers stay valid across every mutation except the removal of
// the element itself, which makes it the backend of choice when adapters
// hand out long-lived references.
package list

import (
	"fmt"
	"iter"

	"github.com/goccy/go-json"

	"github.com/larynjahor/ds/container"
)

var _ container.DoubleEnded[int] = (*List[int])(nil)
var _ container.Cloner[*List[int]] = (*List[int])(nil)
var _ container.Validator = (*List[int])(nil)
var _ container.Comparer[int, *List[int]] = (*List[int])(nil)

type node[T any] struct {
	next *node[T]
	prev *node[T]
	val  T
}

// New returns a list holding vals in order, front to back.
func New[T any](vals ...T) *List[T] {
	l := &List[T]{}

	for _, v := range vals {
		l.PushBack(v)
	}

	return l
}

// List is a doubly linked list. The zero value is an empty list ready to
// use. The sentinel ring points back at the root, so a List must not be
// copied by value after first use; Clone is the supported copy.
// Operations that read or remove an element of an empty list panic.
type List[T any] struct {
	root node[T]
	len  int
}

func (l *List[T]) Len() int {
	return l.len
}

func (l *List[T]) Empty() bool {
	return l.len == 0
}

func (l *List[T]) PushBack(val T) {
	n := &node[T]{val: val}
	l.insert(n, l.root.prev)
}

// EmplaceBack appends a zero value and returns a pointer to it. The pointer
// stays valid until the element is removed.
func (l *List[T]) EmplaceBack() *T {
	n := &node[T]{}
	l.insert(n, l.root.prev)

	return &n.val
}

func (l *List[T]) PushFront(val T) {
	n := &node[T]{val: val}
	l.insert(n, &l.root)
}

func (l *List[T]) PopBack() {
	if l.len == 0 {
		panic("list: PopBack of empty list")
	}

	l.remove(l.root.prev)
}

func (l *List[T]) PopFront() {
	if l.len == 0 {
		panic("list: PopFront of empty list")
	}

	l.remove(l.root.next)
}

func (l *List[T]) Back() *T {
	if l.len == 0 {
		panic("list: Back of empty list")
	}

	return &l.root.prev.val
}

func (l *List[T]) Front() *T {
	if l.len == 0 {
		panic("list: Front of empty list")
	}

	return &l.root.next.val
}

// Clear removes all elements. Outstanding element pointers are detached
// from the list but remain readable.
func (l *List[T]) Clear() {
	l.root.next = &l.root
	l.root.prev = &l.root
	l.len = 0
}

// Values returns a fresh slice of the elements, front to back.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.len)

	for n := l.front(); n != &l.root; n = n.next {
		vals = append(vals, n.val)
	}

	return vals
}

// All iterates the elements front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.front(); n != &l.root; n = n.next {
			if !yield(n.val) {
				return
			}
		}
	}
}

// Clone returns a deep copy. Element values are copied with plain assignment.
func (l *List[T]) Clone() *List[T] {
	clone := New[T]()

	for n := l.front(); n != &l.root; n = n.next {
		clone.PushBack(n.val)
	}

	return clone
}

func (l *List[T]) EqualFunc(other *List[T], eq func(a, b T) bool) bool {
	if l.len != other.len {
		return false
	}

	b := other.front()
	for a := l.front(); a != &l.root; a = a.next {
		if !eq(a.val, b.val) {
			return false
		}

		b = b.next
	}

	return true
}

func (l *List[T]) CompareFunc(other *List[T], cmp func(a, b T) int) int {
	a, b := l.front(), other.front()

	for a != &l.root && b != &other.root {
		if c := cmp(a.val, b.val); c != 0 {
			return c
		}

		a, b = a.next, b.next
	}

	switch {
	case l.len < other.len:
		return -1
	case l.len > other.len:
		return 1
	default:
		return 0
	}
}

// Validate walks the list checking that every link is symmetric and that the
// node count matches the stored length.
func (l *List[T]) Validate() error {
	if l.root.next == nil {
		if l.len != 0 {
			return fmt.Errorf("list: length %d on uninitialized list", l.len)
		}

		return nil
	}

	count := 0

	for n := l.root.next; n != &l.root; n = n.next {
		if count >= l.len {
			return fmt.Errorf("list: walked past %d nodes, links do not return to the root", l.len)
		}

		if n.next == nil || n.next.prev != n {
			return fmt.Errorf("list: asymmetric link after node %d", count)
		}

		if n.prev == nil || n.prev.next != n {
			return fmt.Errorf("list: asymmetric link before node %d", count)
		}

		count++
	}

	if count != l.len {
		return fmt.Errorf("list: counted %d nodes, length says %d", count, l.len)
	}

	return nil
}

// MarshalJSON encodes the elements as a JSON array, front to back.
func (l *List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON replaces the list's contents with the decoded array.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var vals []T
	if err := json.Unmarshal(data, &vals); err != nil {
		return err
	}

	// The sentinel ring points at l.root, so the list is rebuilt in place
	// rather than assigned over.
	l.Clear()

	for _, v := range vals {
		l.PushBack(v)
	}

	return nil
}

// front returns the first node, initializing the sentinel of a zero-value
// list on the way.
func (l *List[T]) front() *node[T] {
	if l.root.next == nil {
		l.Clear()
	}

	return l.root.next
}

// insert links n after at.
func (l *List[T]) insert(n, at *node[T]) {
	if l.root.next == nil {
		l.Clear()
	}

	if at == nil {
		at = &l.root
	}

	n.prev = at
	n.next = at.next
	n.prev.next = n
	n.next.prev = n
	l.len++
}

// remove unlinks n, clearing its links so a removed node does not pin its
// neighbors.
func (l *List[T]) remove(n *node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.next = nil
	n.prev = nil
	l.len--
}
