// Package container defines the capability contracts the adapters in this
// module require from their backends.
//
// The contracts are consumed as type-parameter constraints, never as interface
// values: an adapter owns its backend as a concrete type and every call is
// dispatched statically. A type satisfies a contract by implementing its
// method set; backends in this module additionally assert conformance with a
// blank variable so drift is caught at compile time.
package container

// Interface is the minimal capability set a sequence container must provide
// to back a stack: append at the back, construct in place at the back, remove
// the back element, access the back element, and report length and emptiness.
//
// PushBack takes its value by value; containers with intrusive ownership
// semantics (where node identity is the element itself) are not supported.
type Interface[T any] interface {
	// PushBack appends v after the current last element.
	PushBack(v T)

	// EmplaceBack appends a zero-valued element and returns a pointer to it,
	// for the caller to fill in place. The pointer is valid until the next
	// mutation of the container.
	EmplaceBack() *T

	// PopBack removes the last element. Calling it on an empty container is
	// the container's own failure, in whatever form the container fails.
	PopBack()

	// Back returns a pointer to the last element. Same empty-container
	// caveat as PopBack.
	Back() *T

	// Len reports the number of elements held.
	Len() int

	// Empty reports whether the container holds no elements.
	Empty() bool
}

// DoubleEnded extends Interface with the front-end operations a FIFO adapter
// needs. A contiguous buffer deliberately does not satisfy it: removing the
// front of a vector shifts every remaining element.
type DoubleEnded[T any] interface {
	Interface[T]

	// PushFront inserts v before the current first element.
	PushFront(v T)

	// PopFront removes the first element. Empty-container behavior is the
	// container's own.
	PopFront()

	// Front returns a pointer to the first element. Same caveat.
	Front() *T
}

// RandomAccess extends Interface with positional operations, required by the
// sorted-map adapter. Indices are logical: 0 is the front, Len()-1 the back.
type RandomAccess[T any] interface {
	Interface[T]

	// At returns a pointer to the element at index i.
	At(i int) *T

	// Insert places v at index i, shifting elements at i and above one
	// position toward the back.
	Insert(i int, v T)

	// RemoveAt removes the element at index i, preserving the order of the
	// remaining elements.
	RemoveAt(i int)
}

// Cloner is the optional deep-copy capability. Adapters that are asked for a
// deep copy delegate here; containers that cannot be cloned simply make the
// adapter's Clone unavailable at compile time.
type Cloner[C any] interface {
	Clone() C
}

// Validator is the optional self-check capability behind the adapters'
// diagnostic Validate functions. The returned error names the violated
// container invariant; nil means the container looks consistent.
type Validator interface {
	Validate() error
}

// Comparer is the optional capability behind adapter equality and ordering.
// Both methods compare element-wise in logical order, front to back;
// CompareFunc is lexicographic: the first unequal pair decides, otherwise the
// shorter container orders first.
//
// The signatures take comparison functions so the capability itself places no
// constraint on T; adapters apply comparable or ordered constraints in their
// exported wrappers.
type Comparer[T, C any] interface {
	EqualFunc(other C, eq func(a, b T) bool) bool
	CompareFunc(other C, cmp func(a, b T) int) int
}
