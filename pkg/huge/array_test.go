package huge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHugeLongArray_SetGet(t *testing.T) {
	tests := []struct {
		name string
		size int64
	}{
		{"below page size", 100},
		{"exactly page size", pageSize},
		{"spans multiple pages", pageSize*3 + 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewHugeLongArray(tt.size)
			assert.Equal(t, tt.size, a.Size())

			var i int64
			for i = 0; i < tt.size; i++ {
				require.NoError(t, a.Set(i, i*2))
			}
			for i = 0; i < tt.size; i++ {
				v, err := a.Get(i)
				require.NoError(t, err)
				assert.Equal(t, i*2, v)
			}
		})
	}
}

func TestHugeLongArray_OutOfBounds(t *testing.T) {
	a := NewHugeLongArray(10)

	_, err := a.Get(10)
	assert.Error(t, err)

	_, err = a.Get(-1)
	assert.Error(t, err)

	err = a.Set(10, 1)
	assert.Error(t, err)
}

func TestHugeLongArray_Fill(t *testing.T) {
	a := NewHugeLongArrayWithDefault(pageSize+5, 7)
	var i int64
	for i = 0; i < a.Size(); i++ {
		v, _ := a.Get(i)
		assert.Equal(t, int64(7), v)
	}

	a.Fill(9)
	for i = 0; i < a.Size(); i++ {
		v, _ := a.Get(i)
		assert.Equal(t, int64(9), v)
	}
}

func TestHugeLongArray_Swap(t *testing.T) {
	a := NewHugeLongArray(5)
	for i := int64(0); i < 5; i++ {
		_ = a.Set(i, i)
	}
	require.NoError(t, a.Swap(1, 3))
	v1, _ := a.Get(1)
	v3, _ := a.Get(3)
	assert.Equal(t, int64(3), v1)
	assert.Equal(t, int64(1), v3)
}

func TestHugeLongArray_CopyFrom(t *testing.T) {
	src := NewHugeLongArray(pageSize + 10)
	for i := int64(0); i < src.Size(); i++ {
		_ = src.Set(i, i+1)
	}
	dst := NewHugeLongArray(pageSize + 10)
	dst.CopyFrom(src)

	for i := int64(0); i < dst.Size(); i++ {
		v, _ := dst.Get(i)
		assert.Equal(t, i+1, v)
	}
}

func TestBinarySearchLong(t *testing.T) {
	a := NewHugeLongArray(pageSize * 2)
	for i := int64(0); i < a.Size(); i++ {
		_ = a.Set(i, i*3)
	}

	assert.Equal(t, int64(0), BinarySearchLong(a, 0))
	assert.Equal(t, a.Size()-1, BinarySearchLong(a, (a.Size()-1)*3))
	assert.Equal(t, int64(-1), BinarySearchLong(a, 1))
}

// Cursor iteration equivalence: for a HugeLongArray of size 10000 filled
// by set(i, i*2), iterating once via get(i) and once via cursor
// next()/slice reads must produce the same sum.
func TestHugeLongArray_CursorIterationEquivalence(t *testing.T) {
	const size = 10000
	a := NewHugeLongArray(size)
	for i := int64(0); i < size; i++ {
		require.NoError(t, a.Set(i, i*2))
	}

	var sumByGet int64
	for i := int64(0); i < size; i++ {
		v, _ := a.Get(i)
		sumByGet += v
	}

	var sumByCursor int64
	var seen int64
	cur := a.NewCursor()
	for cur.Next() {
		for _, v := range cur.Array() {
			sumByCursor += v
			seen++
		}
	}

	assert.Equal(t, int64(size), seen)
	assert.Equal(t, sumByGet, sumByCursor)

	var want int64
	for i := int64(0); i < size; i++ {
		want += i * 2
	}
	assert.Equal(t, want, sumByCursor)
}

func TestHugeLongArray_CursorRange(t *testing.T) {
	a := NewHugeLongArray(pageSize * 2)
	for i := int64(0); i < a.Size(); i++ {
		_ = a.Set(i, i)
	}

	cur := NewCursor[int64]()
	a.InitCursorRange(cur, 100, 5000)

	var got []int64
	for cur.Next() {
		for _, v := range cur.Array() {
			got = append(got, v)
		}
	}
	assert.Len(t, got, 4900)
	assert.Equal(t, int64(100), got[0])
	assert.Equal(t, int64(4999), got[len(got)-1])
}

func TestHugeDoubleArray_SetGet(t *testing.T) {
	a := NewHugeDoubleArray(pageSize + 3)
	for i := int64(0); i < a.Size(); i++ {
		require.NoError(t, a.Set(i, float64(i)*1.5))
	}
	for i := int64(0); i < a.Size(); i++ {
		v, err := a.Get(i)
		require.NoError(t, err)
		assert.InDelta(t, float64(i)*1.5, v, 1e-9)
	}
}

func TestHugeObjectArray_SetGet(t *testing.T) {
	type point struct{ x, y int }
	a := NewHugeObjectArray[point](pageSize + 1)
	require.NoError(t, a.Set(0, point{1, 2}))
	require.NoError(t, a.Set(pageSize, point{3, 4}))

	v0, _ := a.Get(0)
	vN, _ := a.Get(pageSize)
	assert.Equal(t, point{1, 2}, v0)
	assert.Equal(t, point{3, 4}, vN)
}

func TestFillParallel(t *testing.T) {
	a := NewHugeLongArray(pageSize*4 + 13)
	err := FillParallel(context.Background(), a, 4, func(index int64) int64 {
		return index * index
	})
	require.NoError(t, err)

	for i := int64(0); i < a.Size(); i += 97 {
		v, _ := a.Get(i)
		assert.Equal(t, i*i, v)
	}
}
