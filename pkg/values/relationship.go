package values

import "github.com/orneryd/gdscore/pkg/huge"

// RelationshipPropertyValues is a per-relationship property column. Column
// length equals the owning topology's relationship count; values are
// restricted to Long and Double scalars (no array relationship properties).
type RelationshipPropertyValues interface {
	PropertyValues
	LongValue(relationship int64) (int64, error)
	DoubleValue(relationship int64) (float64, error)
}

// longRelationship implements RelationshipPropertyValues over a
// HugeLongArray.
type longRelationship struct {
	values *huge.HugeLongArray
}

// NewLongRelationshipValues wraps a HugeLongArray as a Long-typed
// relationship property column.
func NewLongRelationshipValues(values *huge.HugeLongArray) RelationshipPropertyValues {
	return &longRelationship{values: values}
}

func (v *longRelationship) ValueType() ValueType { return Long }
func (v *longRelationship) ElementCount() int64  { return v.values.Size() }

func (v *longRelationship) LongValue(rel int64) (int64, error) { return v.values.Get(rel) }

func (v *longRelationship) DoubleValue(rel int64) (float64, error) {
	l, err := v.values.Get(rel)
	if err != nil {
		return 0, err
	}
	return float64(l), nil
}

// doubleRelationship implements RelationshipPropertyValues over a
// HugeDoubleArray.
type doubleRelationship struct {
	values *huge.HugeDoubleArray
}

// NewDoubleRelationshipValues wraps a HugeDoubleArray as a Double-typed
// relationship property column.
func NewDoubleRelationshipValues(values *huge.HugeDoubleArray) RelationshipPropertyValues {
	return &doubleRelationship{values: values}
}

func (v *doubleRelationship) ValueType() ValueType { return Double }
func (v *doubleRelationship) ElementCount() int64  { return v.values.Size() }

func (v *doubleRelationship) DoubleValue(rel int64) (float64, error) { return v.values.Get(rel) }

func (v *doubleRelationship) LongValue(rel int64) (int64, error) {
	return 0, scalarError(Double, "long_value")
}
