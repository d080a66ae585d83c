package vector_test

import (
	"cmp"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"

	"github.com/larynjahor/ds/vector"
)

func TestVector_PushPop(t *testing.T) {
	v := vector.New(1, 2, 3)

	require.Equal(t, 3, v.Len())
	require.Equal(t, 3, *v.Back())

	v.PushBack(4)
	require.Equal(t, 4, *v.Back())

	v.PopBack()
	v.PopBack()
	require.Equal(t, []int{1, 2}, v.Values())

	v.PopBack()
	v.PopBack()
	require.True(t, v.Empty())
}

func TestVector_EmplaceBack(t *testing.T) {
	v := vector.New[int]()

	p := v.EmplaceBack()
	require.Equal(t, 0, *v.Back())

	*p = 42
	require.Equal(t, 42, *v.Back())
}

func TestVector_InsertRemove(t *testing.T) {
	tests := []struct {
		name   string
		start  []int
		insert bool
		index  int
		val    int
		want   []int
	}{
		{
			name:   "insert front",
			start:  []int{2, 3},
			insert: true,
			index:  0,
			val:    1,
			want:   []int{1, 2, 3},
		},
		{
			name:   "insert middle",
			start:  []int{1, 3},
			insert: true,
			index:  1,
			val:    2,
			want:   []int{1, 2, 3},
		},
		{
			name:   "insert back",
			start:  []int{1, 2},
			insert: true,
			index:  2,
			val:    3,
			want:   []int{1, 2, 3},
		},
		{
			name:  "remove front",
			start: []int{1, 2, 3},
			index: 0,
			want:  []int{2, 3},
		},
		{
			name:  "remove back",
			start: []int{1, 2, 3},
			index: 2,
			want:  []int{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := vector.New(tt.start...)

			if tt.insert {
				v.Insert(tt.index, tt.val)
			} else {
				v.RemoveAt(tt.index)
			}

			require.Equal(t, tt.want, v.Values())
		})
	}
}

func TestVector_At(t *testing.T) {
	v := vector.New("a", "b", "c")

	*v.At(1) = "B"
	v.Set(0, "A")

	require.Equal(t, []string{"A", "B", "c"}, v.Values())
}

func TestVector_All(t *testing.T) {
	v := vector.New(1, 2, 3)

	var got []int
	for x := range v.All() {
		got = append(got, x)
	}

	require.Equal(t, []int{1, 2, 3}, got)
}

func TestVector_CapacityOps(t *testing.T) {
	v := vector.WithCapacity[int](2)

	v.PushBack(1)
	v.PushBack(2)
	require.Equal(t, 2, v.Cap())

	v.Grow(10)
	require.GreaterOrEqual(t, v.Cap(), 12)

	saved := v.Cap()
	v.Clear()

	require.True(t, v.Empty())
	require.Equal(t, saved, v.Cap())
}

func TestVector_Clone(t *testing.T) {
	v := vector.New(1, 2, 3)
	clone := v.Clone()

	v.PushBack(4)
	*v.At(0) = 100

	require.Equal(t, []int{1, 2, 3}, clone.Values())
}

func TestVector_CompareFunc(t *testing.T) {
	tests := []struct {
		name string
		a    []int
		b    []int
		want int
	}{
		{
			name: "equal",
			a:    []int{1, 2, 3},
			b:    []int{1, 2, 3},
			want: 0,
		},
		{
			name: "less by element",
			a:    []int{1, 2, 3},
			b:    []int{1, 2, 4},
			want: -1,
		},
		{
			name: "prefix is less",
			a:    []int{1, 2},
			b:    []int{1, 2, 3},
			want: -1,
		},
		{
			name: "greater",
			a:    []int{2},
			b:    []int{1, 9, 9},
			want: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := vector.New(tt.a...), vector.New(tt.b...)

			got := a.CompareFunc(b, cmp.Compare[int])

			if got != tt.want {
				t.Fail()
			}
		})
	}
}

func TestVector_JSON(t *testing.T) {
	v := vector.New(1, 2, 3)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.JSONEq(t, `[1,2,3]`, string(data))

	data, err = json.Marshal(vector.New[int]())
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))

	var decoded vector.Vector[int]
	require.NoError(t, json.Unmarshal([]byte(`[4,5]`), &decoded))
	require.Equal(t, []int{4, 5}, decoded.Values())
}

func TestVector_EmptyOps(t *testing.T) {
	v := vector.New[int]()

	require.Panics(t, func() { v.PopBack() })
	require.Panics(t, func() { v.Back() })
}

func TestVector_Validate(t *testing.T) {
	v := vector.WithCapacity[int](8)
	v.PushBack(1)

	require.NoError(t, v.Validate())
}
