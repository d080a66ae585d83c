//go:build !dsdebug

package stack_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larynjahor/ds/deque"
	"github.com/larynjahor/ds/stack"
)

func TestStack_UncheckedEmptyOps(t *testing.T) {
	t.Run("Top", func(t *testing.T) {
		defer wantRuntimePanic(t)

		stack.New[int]().Top()
	})

	t.Run("Pop", func(t *testing.T) {
		defer wantRuntimePanic(t)

		stack.New[int]().Pop()
	})
}

func TestStack_UncheckedBackendMessage(t *testing.T) {
	s := stack.From[int](deque.New[int]())

	require.PanicsWithValue(t, "deque: PopBack of empty deque", func() { s.Pop() })
}

func wantRuntimePanic(t *testing.T) {
	t.Helper()

	if _, ok := recover().(runtime.Error); !ok {
		t.Fail()
	}
}
