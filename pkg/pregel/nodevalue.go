package pregel

import (
	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/huge"
	"github.com/orneryd/gdscore/pkg/values"
)

// NodeValue is per-node property storage for an in-flight Pregel
// computation, keyed by property name from the algorithm's Schema. Each
// column is backed by a HugeArray of the matching primitive type and
// supports schema-checked random access by mapped node id.
type NodeValue struct {
	nodeCount       int64
	types           map[string]values.ValueType
	longCols        map[string]*huge.HugeLongArray
	doubleCols      map[string]*huge.HugeDoubleArray
	longArrayCols   map[string]*huge.HugeObjectArray[[]int64]
	doubleArrayCols map[string]*huge.HugeObjectArray[[]float64]
}

// NewNodeValue allocates one column per schema entry, sized for nodeCount
// nodes, zero-valued.
func NewNodeValue(schema *Schema, nodeCount int64) (*NodeValue, error) {
	if err := schema.validate(); err != nil {
		return nil, err
	}
	nv := &NodeValue{
		nodeCount:       nodeCount,
		types:           make(map[string]values.ValueType),
		longCols:        make(map[string]*huge.HugeLongArray),
		doubleCols:      make(map[string]*huge.HugeDoubleArray),
		longArrayCols:   make(map[string]*huge.HugeObjectArray[[]int64]),
		doubleArrayCols: make(map[string]*huge.HugeObjectArray[[]float64]),
	}
	for _, e := range schema.Entries() {
		nv.types[e.Name] = e.Type
		switch e.Type {
		case values.Long:
			nv.longCols[e.Name] = huge.NewHugeLongArrayWithDefault(nodeCount, 0)
		case values.Double:
			nv.doubleCols[e.Name] = huge.NewHugeDoubleArrayWithDefault(nodeCount, 0)
		case values.LongArray:
			nv.longArrayCols[e.Name] = huge.NewHugeObjectArray[[]int64](nodeCount)
		case values.DoubleArray:
			nv.doubleArrayCols[e.Name] = huge.NewHugeObjectArray[[]float64](nodeCount)
		}
	}
	return nv, nil
}

// NodeCount returns the node count this NodeValue was sized for.
func (nv *NodeValue) NodeCount() int64 { return nv.nodeCount }

// Type returns the declared ValueType of name, or an error if name was not
// declared in the schema.
func (nv *NodeValue) Type(name string) (values.ValueType, error) {
	t, ok := nv.types[name]
	if !ok {
		return 0, gdserrors.NewUnknownName("node value", name)
	}
	return t, nil
}

func (nv *NodeValue) typeError(name string, want values.ValueType) error {
	got, ok := nv.types[name]
	if !ok {
		return gdserrors.NewUnknownName("node value", name)
	}
	return gdserrors.NewUnsupportedOperation("property \"" + name + "\" is " + got.String() + ", not " + want.String())
}

// LongValue returns the Long-typed column's value for node.
func (nv *NodeValue) LongValue(name string, node int64) (int64, error) {
	col, ok := nv.longCols[name]
	if !ok {
		return 0, nv.typeError(name, values.Long)
	}
	return col.Get(node)
}

// SetLong writes to the Long-typed column at node.
func (nv *NodeValue) SetLong(name string, node, v int64) error {
	col, ok := nv.longCols[name]
	if !ok {
		return nv.typeError(name, values.Long)
	}
	return col.Set(node, v)
}

// LongColumn returns the backing HugeLongArray for name, for algorithms
// that want direct fast-path access (e.g. bulk write-back to a property
// store after the run).
func (nv *NodeValue) LongColumn(name string) (*huge.HugeLongArray, error) {
	col, ok := nv.longCols[name]
	if !ok {
		return nil, nv.typeError(name, values.Long)
	}
	return col, nil
}

// DoubleValue returns the Double-typed column's value for node.
func (nv *NodeValue) DoubleValue(name string, node int64) (float64, error) {
	col, ok := nv.doubleCols[name]
	if !ok {
		return 0, nv.typeError(name, values.Double)
	}
	return col.Get(node)
}

// SetDouble writes to the Double-typed column at node.
func (nv *NodeValue) SetDouble(name string, node int64, v float64) error {
	col, ok := nv.doubleCols[name]
	if !ok {
		return nv.typeError(name, values.Double)
	}
	return col.Set(node, v)
}

// DoubleColumn returns the backing HugeDoubleArray for name.
func (nv *NodeValue) DoubleColumn(name string) (*huge.HugeDoubleArray, error) {
	col, ok := nv.doubleCols[name]
	if !ok {
		return nil, nv.typeError(name, values.Double)
	}
	return col, nil
}

// LongArrayValue returns the LongArray-typed column's value for node.
func (nv *NodeValue) LongArrayValue(name string, node int64) ([]int64, error) {
	col, ok := nv.longArrayCols[name]
	if !ok {
		return nil, nv.typeError(name, values.LongArray)
	}
	return col.Get(node)
}

// SetLongArray writes to the LongArray-typed column at node.
func (nv *NodeValue) SetLongArray(name string, node int64, v []int64) error {
	col, ok := nv.longArrayCols[name]
	if !ok {
		return nv.typeError(name, values.LongArray)
	}
	return col.Set(node, v)
}

// DoubleArrayValue returns the DoubleArray-typed column's value for node.
func (nv *NodeValue) DoubleArrayValue(name string, node int64) ([]float64, error) {
	col, ok := nv.doubleArrayCols[name]
	if !ok {
		return nil, nv.typeError(name, values.DoubleArray)
	}
	return col.Get(node)
}

// SetDoubleArray writes to the DoubleArray-typed column at node.
func (nv *NodeValue) SetDoubleArray(name string, node int64, v []float64) error {
	col, ok := nv.doubleArrayCols[name]
	if !ok {
		return nv.typeError(name, values.DoubleArray)
	}
	return col.Set(node, v)
}
