// Package graphstore implements the orchestrator (GraphStore) holding name,
// database info, capabilities, schema, id map, relationship topologies, and
// the three property stores, plus the immutable Graph view it issues.
// Property mutation uses copy-on-write: GraphStore.AddNodeProperty produces
// a new GraphStore sharing everything except the replaced property store,
// so a view issued before the mutation never observes it.
package graphstore

import (
	"os"

	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/values"
	"gopkg.in/yaml.v3"
)

// PropertySchemaEntry declares one permitted property column: its type and
// default value. A store may only contain columns whose descriptors appear
// in the owning GraphSchema.
type PropertySchemaEntry struct {
	Name         string       `yaml:"name"`
	Type         string       `yaml:"type"` // "long" | "double" | "long_array" | "double_array" | "float_array"
	DefaultValue any          `yaml:"default,omitempty"`
	valueType    values.ValueType
}

// ValueType parses the YAML-declared type string into a values.ValueType.
// Call after loading to validate the schema document.
func (e *PropertySchemaEntry) ValueType() (values.ValueType, error) {
	switch e.Type {
	case "long":
		return values.Long, nil
	case "double":
		return values.Double, nil
	case "long_array":
		return values.LongArray, nil
	case "double_array":
		return values.DoubleArray, nil
	case "float_array":
		return values.FloatArray, nil
	default:
		return 0, gdserrors.NewSchemaViolation("graph schema", "unknown property type \""+e.Type+"\"")
	}
}

// GraphSchema declares node labels, relationship types, and for each the
// permitted property descriptors with their default values.
type GraphSchema struct {
	NodeLabels        []string                       `yaml:"node_labels"`
	RelationshipTypes []string                       `yaml:"relationship_types"`
	NodeProperties    map[string]*PropertySchemaEntry `yaml:"node_properties"`
	RelationshipProps map[string]*PropertySchemaEntry `yaml:"relationship_properties"`
	GraphProperties   map[string]*PropertySchemaEntry `yaml:"graph_properties"`
}

// NewGraphSchema returns an empty schema with the given labels/types
// declared and no properties yet.
func NewGraphSchema(nodeLabels, relationshipTypes []string) *GraphSchema {
	return &GraphSchema{
		NodeLabels:        nodeLabels,
		RelationshipTypes: relationshipTypes,
		NodeProperties:    make(map[string]*PropertySchemaEntry),
		RelationshipProps: make(map[string]*PropertySchemaEntry),
		GraphProperties:   make(map[string]*PropertySchemaEntry),
	}
}

// AllowsNodeProperty reports whether name is declared as a node property.
func (s *GraphSchema) AllowsNodeProperty(name string) bool {
	_, ok := s.NodeProperties[name]
	return ok
}

// AllowsRelationshipProperty reports whether name is declared as a
// relationship property.
func (s *GraphSchema) AllowsRelationshipProperty(name string) bool {
	_, ok := s.RelationshipProps[name]
	return ok
}

// AllowsGraphProperty reports whether name is declared as a graph
// property.
func (s *GraphSchema) AllowsGraphProperty(name string) bool {
	_, ok := s.GraphProperties[name]
	return ok
}

// LoadSchemaYAML reads a GraphSchema from a YAML document on disk, the
// declarative alternative to building one PropertyDescriptor at a time —
// mirrors how APOC-style config loads its category/function allowlist
// from YAML.
func LoadSchemaYAML(path string) (*GraphSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseSchemaYAML(data)
}

// ParseSchemaYAML parses a GraphSchema from an in-memory YAML document.
func ParseSchemaYAML(data []byte) (*GraphSchema, error) {
	var schema GraphSchema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, err
	}
	if schema.NodeProperties == nil {
		schema.NodeProperties = make(map[string]*PropertySchemaEntry)
	}
	if schema.RelationshipProps == nil {
		schema.RelationshipProps = make(map[string]*PropertySchemaEntry)
	}
	if schema.GraphProperties == nil {
		schema.GraphProperties = make(map[string]*PropertySchemaEntry)
	}
	for name, entry := range schema.NodeProperties {
		if _, err := entry.ValueType(); err != nil {
			return nil, gdserrors.NewSchemaViolation("graph schema", "node property \""+name+"\": "+err.Error())
		}
	}
	for name, entry := range schema.RelationshipProps {
		t, err := entry.ValueType()
		if err != nil {
			return nil, gdserrors.NewSchemaViolation("graph schema", "relationship property \""+name+"\": "+err.Error())
		}
		if !t.IsScalar() {
			return nil, gdserrors.NewSchemaViolation("graph schema", "relationship property \""+name+"\" must be Long or Double")
		}
	}
	return &schema, nil
}
