// Package vmap implements an ordered map as an adapter over a sorted
// random-access backend. Lookups binary-search the backend, insertions
// shift elements, so it suits read-heavy maps and small maps where the
// flat layout beats a tree. Iteration is always in ascending key order.
package vmap

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/larynjahor/ds/container"
	"github.com/larynjahor/ds/internal/check"
	"github.com/larynjahor/ds/vector"
)

// Entry is a single key-value pair of the backend.
type Entry[K, V any] struct {
	Key K
	Val V
}

// New returns an empty map over a fresh vector backend, ordered by
// cmp.Compare on the keys.
func New[K cmp.Ordered, V any]() *Map[K, V, *vector.Vector[Entry[K, V]]] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty map over a fresh vector backend, ordered by the
// given key comparison.
func NewFunc[K, V any](cmp func(a, b K) int) *Map[K, V, *vector.Vector[Entry[K, V]]] {
	return From[K, V](vector.New[Entry[K, V]](), cmp)
}

// From returns a map adopting c, which must already be sorted by cmp with
// no duplicate keys. Builds tagged dsdebug verify the order on adoption.
func From[K, V any, C container.RandomAccess[Entry[K, V]]](c C, cmp func(a, b K) int) *Map[K, V, C] {
	m := &Map[K, V, C]{
		c:   c,
		cmp: cmp,
	}

	if check.Enabled {
		if err := m.Validate(); err != nil {
			panic("vmap: From of unsorted container: " + err.Error())
		}
	}

	return m
}

// Map is an ordered map over a sorted backend. The adapter owns the
// backend; mutating it through Container is allowed as long as the entries
// stay sorted by the map's key comparison.
type Map[K, V any, C container.RandomAccess[Entry[K, V]]] struct {
	c   C
	cmp func(a, b K) int
}

func (m *Map[K, V, C]) Len() int {
	return m.c.Len()
}

func (m *Map[K, V, C]) Empty() bool {
	return m.c.Empty()
}

// Get returns the value stored under key and whether the key is present.
func (m *Map[K, V, C]) Get(key K) (V, bool) {
	if i, ok := m.search(key); ok {
		return m.c.At(i).Val, true
	}

	var zero V

	return zero, false
}

func (m *Map[K, V, C]) Has(key K) bool {
	_, ok := m.search(key)
	return ok
}

// Set stores val under key, overwriting an existing entry in place. It
// reports whether a new entry was inserted.
func (m *Map[K, V, C]) Set(key K, val V) bool {
	i, ok := m.search(key)
	if ok {
		m.c.At(i).Val = val
		return false
	}

	m.c.Insert(i, Entry[K, V]{Key: key, Val: val})

	return true
}

// Delete removes the entry under key and reports whether it was present.
func (m *Map[K, V, C]) Delete(key K) bool {
	i, ok := m.search(key)
	if !ok {
		return false
	}

	m.c.RemoveAt(i)

	return true
}

// Min returns the smallest key and its value.
func (m *Map[K, V, C]) Min() (K, V) {
	if check.Enabled && m.c.Empty() {
		panic("vmap: Min of empty map")
	}

	e := m.c.At(0)

	return e.Key, e.Val
}

// Max returns the largest key and its value.
func (m *Map[K, V, C]) Max() (K, V) {
	if check.Enabled && m.c.Empty() {
		panic("vmap: Max of empty map")
	}

	e := m.c.Back()

	return e.Key, e.Val
}

// All iterates the entries in ascending key order.
func (m *Map[K, V, C]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < m.c.Len(); i++ {
			e := m.c.At(i)
			if !yield(e.Key, e.Val) {
				return
			}
		}
	}
}

// Container returns the backend itself, not a copy. The entries in it are
// sorted by the map's key comparison.
func (m *Map[K, V, C]) Container() C {
	return m.c
}

// Validate checks that the backend's entries are in strictly ascending key
// order. Backend-internal invariants are reachable through Container.
func (m *Map[K, V, C]) Validate() error {
	for i := 1; i < m.c.Len(); i++ {
		if m.cmp(m.c.At(i-1).Key, m.c.At(i).Key) >= 0 {
			return fmt.Errorf("vmap: keys out of order at index %d", i)
		}
	}

	return nil
}

// search returns the position of key, or the position it would be inserted
// at, and whether it was found.
func (m *Map[K, V, C]) search(key K) (int, bool) {
	lo, hi := 0, m.c.Len()

	for lo < hi {
		mid := int(uint(lo+hi) >> 1)

		if m.cmp(m.c.At(mid).Key, key) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, lo < m.c.Len() && m.cmp(m.c.At(lo).Key, key) == 0
}

// Clone returns a map over a deep copy of m's backend.
func Clone[K, V any, C interface {
	container.RandomAccess[Entry[K, V]]
	container.Cloner[C]
}](m *Map[K, V, C]) *Map[K, V, C] {
	return &Map[K, V, C]{
		c:   m.c.Clone(),
		cmp: m.cmp,
	}
}

// Equal reports whether a and b hold the same entries. Keys and values are
// compared with ==.
func Equal[K, V comparable, C interface {
	container.RandomAccess[Entry[K, V]]
	container.Comparer[Entry[K, V], C]
}](a, b *Map[K, V, C]) bool {
	return a.c.EqualFunc(b.c, func(x, y Entry[K, V]) bool {
		return x.Key == y.Key && x.Val == y.Val
	})
}
