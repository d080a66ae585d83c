package queue_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/larynjahor/ds/list"
	"github.com/larynjahor/ds/queue"
)

func TestQueue_FIFO(t *testing.T) {
	q := queue.New[string]()

	ids := make([]string, 10)
	for i := range ids {
		ids[i] = uuid.NewString()
		q.Push(ids[i])
	}

	got := make([]string, 0, len(ids))
	for !q.Empty() {
		got = append(got, q.Front())
		q.Pop()
	}

	require.Equal(t, ids, got)
}

func TestQueue_FrontBack(t *testing.T) {
	q := queue.New(1, 2, 3)

	require.Equal(t, 1, q.Front())
	require.Equal(t, 3, q.Back())

	q.Pop()
	require.Equal(t, 2, q.Front())
	require.Equal(t, 3, q.Back())
	require.Equal(t, 2, q.Len())
}

func TestQueue_ListBackend(t *testing.T) {
	q := queue.From[string](list.New[string](), "a", "b")

	q.Push("c")
	q.Pop()

	require.Equal(t, "b", q.Front())
	require.Equal(t, []string{"b", "c"}, q.Container().Values())
}

func TestQueue_Emplace(t *testing.T) {
	q := queue.New(1)

	*q.Emplace() = 2

	require.Equal(t, 1, q.Front())
	require.Equal(t, 2, q.Back())
}

func TestQueue_Swap(t *testing.T) {
	a := queue.New(1, 2)
	b := queue.New(3)

	a.Swap(b)

	require.Equal(t, 3, a.Front())
	require.Equal(t, 1, b.Front())
	require.Equal(t, 2, b.Len())
}

func TestQueue_Ordering(t *testing.T) {
	a := queue.New(1, 2)
	b := queue.New(1, 2)

	require.True(t, queue.Equal(a, b))
	require.Equal(t, 0, queue.Compare(a, b))

	b.Pop()

	require.False(t, queue.Equal(a, b))
	require.Equal(t, 1, queue.Compare(b, a))
	require.True(t, queue.Less(a, b))
}

func TestQueue_Clone(t *testing.T) {
	q := queue.New("x", "y")
	clone := queue.Clone(q)

	q.Pop()

	require.Equal(t, "x", clone.Front())
	require.NoError(t, queue.Validate(clone))
}
