// Package pregel implements the vertex-centric bulk-synchronous-parallel
// computation engine: a superstep loop (master compute -> messenger
// init_iteration -> parallel node compute -> barrier -> convergence check)
// driving a user-supplied Computation over a graphstore.Graph view.
package pregel

import (
	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/values"
)

// Visibility marks whether a schema-declared property column is part of a
// computation's public output (written back to the store after the run)
// or purely internal scratch state.
type Visibility int

const (
	// Public properties are the computation's externally meaningful
	// output, e.g. a PageRank score column.
	Public Visibility = iota
	// Internal properties are scratch columns an algorithm needs during
	// the run but doesn't intend callers to read afterward.
	Internal
)

// PropertyEntry declares one NodeValue column: its name, element type, and
// visibility. Pregel restricts column types to the four schema-eligible
// ValueTypes (Long, Double, LongArray, DoubleArray) — no FloatArray, which
// the property-store layer allows but node-value scratch state does not
// need.
type PropertyEntry struct {
	Name       string
	Type       values.ValueType
	Visibility Visibility
}

// Schema is a Computation's declared set of NodeValue columns.
type Schema struct {
	entries []PropertyEntry
}

// NewSchema returns an empty schema. Chain Add calls to declare columns.
func NewSchema() *Schema {
	return &Schema{}
}

// Add declares one property column and returns the schema for chaining.
func (s *Schema) Add(name string, valueType values.ValueType, visibility Visibility) *Schema {
	s.entries = append(s.entries, PropertyEntry{Name: name, Type: valueType, Visibility: visibility})
	return s
}

// Entries returns the declared property entries in declaration order.
func (s *Schema) Entries() []PropertyEntry {
	return s.entries
}

func (s *Schema) validate() error {
	seen := make(map[string]struct{}, len(s.entries))
	for _, e := range s.entries {
		if _, dup := seen[e.Name]; dup {
			return gdserrors.NewSchemaViolation("pregel schema", "duplicate property \""+e.Name+"\"")
		}
		seen[e.Name] = struct{}{}
		switch e.Type {
		case values.Long, values.Double, values.LongArray, values.DoubleArray:
		default:
			return gdserrors.NewSchemaViolation("pregel schema", "property \""+e.Name+"\" has an unsupported type for node-value columns")
		}
	}
	return nil
}
