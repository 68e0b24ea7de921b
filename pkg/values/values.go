// Package values implements the typed property column hierarchy: the
// closed ValueType set, PropertyDescriptor, and the PropertyValues
// interfaces that every node/relationship/graph property column
// implements. Concrete columns are backed by pkg/huge arrays so a
// billion-node Long property column pages the same way the rest of the
// store does.
package values

import "github.com/orneryd/gdscore/pkg/gdserrors"

// ValueType is the closed set of property element types.
type ValueType int

const (
	// Long is a 64-bit signed integer scalar.
	Long ValueType = iota
	// Double is a 64-bit float scalar.
	Double
	// LongArray is a variable-length []int64 per element.
	LongArray
	// DoubleArray is a variable-length []float64 per element.
	DoubleArray
	// FloatArray is a variable-length []float32 per element.
	FloatArray
)

func (t ValueType) String() string {
	switch t {
	case Long:
		return "Long"
	case Double:
		return "Double"
	case LongArray:
		return "LongArray"
	case DoubleArray:
		return "DoubleArray"
	case FloatArray:
		return "FloatArray"
	default:
		return "Unknown"
	}
}

// IsScalar reports whether t is a fixed-width scalar (Long, Double) rather
// than a per-element array type.
func (t ValueType) IsScalar() bool {
	return t == Long || t == Double
}

// PropertyDescriptor is the single source of truth describing one property
// column: every other view of a property (schema entry, builder argument,
// store key) projects from this one.
type PropertyDescriptor struct {
	ID           int64
	Name         string
	Type         ValueType
	Nullable     bool
	DefaultValue any
	SourceColumn string // optional hint naming the importer's source column
}

// PropertyValues is the base contract every property column satisfies,
// regardless of scope (graph/node/relationship).
type PropertyValues interface {
	ValueType() ValueType
	ElementCount() int64
}

// scalarError builds the UnsupportedOperation error for a getter called
// against a column of the wrong shape (array getter on scalar column, or
// vice versa).
func scalarError(have ValueType, want string) error {
	return gdserrors.NewUnsupportedOperation(have.String() + " column does not support " + want)
}
