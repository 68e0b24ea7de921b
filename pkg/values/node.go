package values

import "github.com/orneryd/gdscore/pkg/huge"

// NodePropertyValues is a per-node property column: column length equals
// the owning store's node count, and typed getters are indexed by mapped
// node id.
type NodePropertyValues interface {
	PropertyValues
	LongValue(node int64) (int64, error)
	DoubleValue(node int64) (float64, error)
	LongArrayValue(node int64) ([]int64, error)
	DoubleArrayValue(node int64) ([]float64, error)
	FloatArrayValue(node int64) ([]float32, error)
}

// LongNodeValues is the type-specific refinement for a Long-typed node
// column, exposing the backing HugeLongArray directly for fast-path
// dispatch (algorithms that know a column is Long-typed can skip the
// interface getter and its bounds-checked error path).
type LongNodeValues interface {
	NodePropertyValues
	Values() *huge.HugeLongArray
}

// DoubleNodeValues is the type-specific refinement for a Double-typed node
// column.
type DoubleNodeValues interface {
	NodePropertyValues
	Values() *huge.HugeDoubleArray
}

// longNode implements NodePropertyValues over a HugeLongArray.
type longNode struct {
	values *huge.HugeLongArray
}

// NewLongNodeValues wraps a HugeLongArray as a Long-typed node property
// column.
func NewLongNodeValues(values *huge.HugeLongArray) LongNodeValues {
	return &longNode{values: values}
}

func (v *longNode) ValueType() ValueType    { return Long }
func (v *longNode) ElementCount() int64     { return v.values.Size() }
func (v *longNode) Values() *huge.HugeLongArray { return v.values }

func (v *longNode) LongValue(node int64) (int64, error) { return v.values.Get(node) }

// DoubleValue widens the stored int64 to float64. Precision is exact up to
// 2^53; callers reading Long columns wider than that via DoubleValue should
// expect rounding.
func (v *longNode) DoubleValue(node int64) (float64, error) {
	l, err := v.values.Get(node)
	if err != nil {
		return 0, err
	}
	return float64(l), nil
}

func (v *longNode) LongArrayValue(node int64) ([]int64, error) {
	return nil, scalarError(Long, "array access")
}

func (v *longNode) DoubleArrayValue(node int64) ([]float64, error) {
	return nil, scalarError(Long, "array access")
}

func (v *longNode) FloatArrayValue(node int64) ([]float32, error) {
	return nil, scalarError(Long, "array access")
}

// doubleNode implements NodePropertyValues over a HugeDoubleArray.
type doubleNode struct {
	values *huge.HugeDoubleArray
}

// NewDoubleNodeValues wraps a HugeDoubleArray as a Double-typed node
// property column.
func NewDoubleNodeValues(values *huge.HugeDoubleArray) DoubleNodeValues {
	return &doubleNode{values: values}
}

func (v *doubleNode) ValueType() ValueType        { return Double }
func (v *doubleNode) ElementCount() int64         { return v.values.Size() }
func (v *doubleNode) Values() *huge.HugeDoubleArray { return v.values }

func (v *doubleNode) DoubleValue(node int64) (float64, error) { return v.values.Get(node) }

// LongValue refuses: a Double column never narrows to Long implicitly,
// since truncation would silently lose the fractional part.
func (v *doubleNode) LongValue(node int64) (int64, error) {
	return 0, scalarError(Double, "long_value")
}

func (v *doubleNode) LongArrayValue(node int64) ([]int64, error) {
	return nil, scalarError(Double, "array access")
}

func (v *doubleNode) DoubleArrayValue(node int64) ([]float64, error) {
	return nil, scalarError(Double, "array access")
}

func (v *doubleNode) FloatArrayValue(node int64) ([]float32, error) {
	return nil, scalarError(Double, "array access")
}

// longArrayNode implements NodePropertyValues over a HugeObjectArray of
// []int64 elements.
type longArrayNode struct {
	values *huge.HugeObjectArray[[]int64]
}

// NewLongArrayNodeValues wraps a HugeObjectArray[[]int64] as a LongArray-
// typed node property column.
func NewLongArrayNodeValues(values *huge.HugeObjectArray[[]int64]) NodePropertyValues {
	return &longArrayNode{values: values}
}

func (v *longArrayNode) ValueType() ValueType { return LongArray }
func (v *longArrayNode) ElementCount() int64  { return v.values.Size() }

func (v *longArrayNode) LongValue(node int64) (int64, error) {
	return 0, scalarError(LongArray, "scalar access")
}
func (v *longArrayNode) DoubleValue(node int64) (float64, error) {
	return 0, scalarError(LongArray, "scalar access")
}
func (v *longArrayNode) LongArrayValue(node int64) ([]int64, error) { return v.values.Get(node) }
func (v *longArrayNode) DoubleArrayValue(node int64) ([]float64, error) {
	return nil, scalarError(LongArray, "double_array_value")
}
func (v *longArrayNode) FloatArrayValue(node int64) ([]float32, error) {
	return nil, scalarError(LongArray, "float_array_value")
}

// doubleArrayNode implements NodePropertyValues over a HugeObjectArray of
// []float64 elements.
type doubleArrayNode struct {
	values *huge.HugeObjectArray[[]float64]
}

// NewDoubleArrayNodeValues wraps a HugeObjectArray[[]float64] as a
// DoubleArray-typed node property column.
func NewDoubleArrayNodeValues(values *huge.HugeObjectArray[[]float64]) NodePropertyValues {
	return &doubleArrayNode{values: values}
}

func (v *doubleArrayNode) ValueType() ValueType { return DoubleArray }
func (v *doubleArrayNode) ElementCount() int64  { return v.values.Size() }

func (v *doubleArrayNode) LongValue(node int64) (int64, error) {
	return 0, scalarError(DoubleArray, "scalar access")
}
func (v *doubleArrayNode) DoubleValue(node int64) (float64, error) {
	return 0, scalarError(DoubleArray, "scalar access")
}
func (v *doubleArrayNode) LongArrayValue(node int64) ([]int64, error) {
	return nil, scalarError(DoubleArray, "long_array_value")
}
func (v *doubleArrayNode) DoubleArrayValue(node int64) ([]float64, error) { return v.values.Get(node) }
func (v *doubleArrayNode) FloatArrayValue(node int64) ([]float32, error) {
	return nil, scalarError(DoubleArray, "float_array_value")
}

// floatArrayNode implements NodePropertyValues over a HugeObjectArray of
// []float32 elements.
type floatArrayNode struct {
	values *huge.HugeObjectArray[[]float32]
}

// NewFloatArrayNodeValues wraps a HugeObjectArray[[]float32] as a
// FloatArray-typed node property column.
func NewFloatArrayNodeValues(values *huge.HugeObjectArray[[]float32]) NodePropertyValues {
	return &floatArrayNode{values: values}
}

func (v *floatArrayNode) ValueType() ValueType { return FloatArray }
func (v *floatArrayNode) ElementCount() int64  { return v.values.Size() }

func (v *floatArrayNode) LongValue(node int64) (int64, error) {
	return 0, scalarError(FloatArray, "scalar access")
}
func (v *floatArrayNode) DoubleValue(node int64) (float64, error) {
	return 0, scalarError(FloatArray, "scalar access")
}
func (v *floatArrayNode) LongArrayValue(node int64) ([]int64, error) {
	return nil, scalarError(FloatArray, "long_array_value")
}
func (v *floatArrayNode) DoubleArrayValue(node int64) ([]float64, error) {
	return nil, scalarError(FloatArray, "double_array_value")
}
func (v *floatArrayNode) FloatArrayValue(node int64) ([]float32, error) { return v.values.Get(node) }
