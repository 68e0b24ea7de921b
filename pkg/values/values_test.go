package values

import (
	"testing"

	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/huge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLongNodeValues_NativeAndWidening(t *testing.T) {
	arr := huge.NewHugeLongArray(5)
	require.NoError(t, arr.Set(2, 42))

	col := NewLongNodeValues(arr)
	assert.Equal(t, Long, col.ValueType())
	assert.Equal(t, int64(5), col.ElementCount())

	l, err := col.LongValue(2)
	require.NoError(t, err)
	assert.Equal(t, int64(42), l)

	d, err := col.DoubleValue(2)
	require.NoError(t, err)
	assert.Equal(t, 42.0, d)

	_, err = col.LongArrayValue(2)
	assert.Error(t, err)
	var unsupported *gdserrors.UnsupportedOperationError
	assert.ErrorAs(t, err, &unsupported)
}

func TestDoubleNodeValues_RefusesLong(t *testing.T) {
	arr := huge.NewHugeDoubleArray(3)
	require.NoError(t, arr.Set(0, 3.5))

	col := NewDoubleNodeValues(arr)
	d, err := col.DoubleValue(0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, d)

	_, err = col.LongValue(0)
	assert.Error(t, err)
}

func TestArrayNodeValues_RefuseScalarAccess(t *testing.T) {
	arr := huge.NewHugeObjectArray[[]int64](2)
	require.NoError(t, arr.Set(0, []int64{1, 2, 3}))

	col := NewLongArrayNodeValues(arr)
	assert.Equal(t, LongArray, col.ValueType())

	got, err := col.LongArrayValue(0)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, got)

	_, err = col.LongValue(0)
	assert.Error(t, err)
	_, err = col.DoubleArrayValue(0)
	assert.Error(t, err)
}

func TestLongRelationshipValues(t *testing.T) {
	arr := huge.NewHugeLongArray(4)
	require.NoError(t, arr.Set(1, 7))

	col := NewLongRelationshipValues(arr)
	l, err := col.LongValue(1)
	require.NoError(t, err)
	assert.Equal(t, int64(7), l)

	d, err := col.DoubleValue(1)
	require.NoError(t, err)
	assert.Equal(t, 7.0, d)
}

func TestDoubleRelationshipValues_RefusesLong(t *testing.T) {
	arr := huge.NewHugeDoubleArray(4)
	require.NoError(t, arr.Set(1, 2.25))

	col := NewDoubleRelationshipValues(arr)
	_, err := col.LongValue(1)
	assert.Error(t, err)
}

func TestGraphPropertyValues_Scalar(t *testing.T) {
	arr := huge.NewHugeLongArray(1)
	require.NoError(t, arr.Set(0, 100))

	col := NewLongGraphValues(arr)
	assert.Equal(t, int64(1), col.ElementCount())

	v, err := col.LongValue(0)
	require.NoError(t, err)
	assert.Equal(t, int64(100), v)
}

func TestOutOfBoundsPropagatesFromHugeArray(t *testing.T) {
	arr := huge.NewHugeLongArray(3)
	col := NewLongNodeValues(arr)

	_, err := col.LongValue(5)
	assert.Error(t, err)
	var oob *gdserrors.IndexOutOfBoundsError
	assert.ErrorAs(t, err, &oob)
}
