package values

import "github.com/orneryd/gdscore/pkg/huge"

// GraphPropertyValues is a property of the whole graph rather than of an
// individual node or relationship: a scalar (element_count == 1) or an
// aggregate (e.g. one value per relationship type, element_count == number
// of types). Indexing is by aggregate slot, not by mapped node/relationship
// id.
type GraphPropertyValues interface {
	PropertyValues
	LongValue(slot int64) (int64, error)
	DoubleValue(slot int64) (float64, error)
	LongArrayValue(slot int64) ([]int64, error)
	DoubleArrayValue(slot int64) ([]float64, error)
}

// longGraph implements GraphPropertyValues over a HugeLongArray.
type longGraph struct {
	values *huge.HugeLongArray
}

// NewLongGraphValues wraps a HugeLongArray as a Long-typed graph property.
func NewLongGraphValues(values *huge.HugeLongArray) GraphPropertyValues {
	return &longGraph{values: values}
}

func (v *longGraph) ValueType() ValueType { return Long }
func (v *longGraph) ElementCount() int64  { return v.values.Size() }

func (v *longGraph) LongValue(slot int64) (int64, error) { return v.values.Get(slot) }

func (v *longGraph) DoubleValue(slot int64) (float64, error) {
	l, err := v.values.Get(slot)
	if err != nil {
		return 0, err
	}
	return float64(l), nil
}

func (v *longGraph) LongArrayValue(slot int64) ([]int64, error) {
	return nil, scalarError(Long, "array access")
}

func (v *longGraph) DoubleArrayValue(slot int64) ([]float64, error) {
	return nil, scalarError(Long, "array access")
}

// doubleGraph implements GraphPropertyValues over a HugeDoubleArray.
type doubleGraph struct {
	values *huge.HugeDoubleArray
}

// NewDoubleGraphValues wraps a HugeDoubleArray as a Double-typed graph
// property.
func NewDoubleGraphValues(values *huge.HugeDoubleArray) GraphPropertyValues {
	return &doubleGraph{values: values}
}

func (v *doubleGraph) ValueType() ValueType { return Double }
func (v *doubleGraph) ElementCount() int64  { return v.values.Size() }

func (v *doubleGraph) DoubleValue(slot int64) (float64, error) { return v.values.Get(slot) }

func (v *doubleGraph) LongValue(slot int64) (int64, error) {
	return 0, scalarError(Double, "long_value")
}

func (v *doubleGraph) LongArrayValue(slot int64) ([]int64, error) {
	return nil, scalarError(Double, "array access")
}

func (v *doubleGraph) DoubleArrayValue(slot int64) ([]float64, error) {
	return nil, scalarError(Double, "array access")
}
