package graphstore

import (
	"github.com/orneryd/gdscore/pkg/idmap"
	"github.com/orneryd/gdscore/pkg/propstore"
	"github.com/orneryd/gdscore/pkg/topology"
)

// GraphStoreBuilder assembles a GraphStore from validated inputs: an id
// map, a set of relationship topologies, and the initial property stores.
// Importers are expected to have already produced dense mapped ids and
// length-matching property columns before handing them to this builder —
// the store itself does not import anything.
type GraphStoreBuilder struct {
	name         string
	databaseInfo DatabaseInfo
	capabilities *Capabilities
	schema       *GraphSchema
	idMap        *idmap.IdMap
	topologies   map[string]*topologyEntry

	nodeProperties  *propstore.NodePropertyStoreBuilder
	graphProperties *propstore.GraphPropertyStoreBuilder
}

// NewGraphStoreBuilder starts a builder for a graph named name.
func NewGraphStoreBuilder(name string) *GraphStoreBuilder {
	return &GraphStoreBuilder{
		name:            name,
		capabilities:    NewCapabilities(),
		topologies:      make(map[string]*topologyEntry),
		nodeProperties:  propstore.NewNodePropertyStoreBuilder(),
		graphProperties: propstore.NewGraphPropertyStoreBuilder(),
	}
}

// DatabaseInfo sets the store's provenance metadata.
func (b *GraphStoreBuilder) DatabaseInfo(info DatabaseInfo) *GraphStoreBuilder {
	b.databaseInfo = info
	return b
}

// Capabilities sets the store's feature flags.
func (b *GraphStoreBuilder) Capabilities(caps *Capabilities) *GraphStoreBuilder {
	b.capabilities = caps
	return b
}

// Schema sets the store's declared schema.
func (b *GraphStoreBuilder) Schema(schema *GraphSchema) *GraphStoreBuilder {
	b.schema = schema
	return b
}

// IdMap sets the store's id mapping.
func (b *GraphStoreBuilder) IdMap(idMap *idmap.IdMap) *GraphStoreBuilder {
	b.idMap = idMap
	return b
}

// RelationshipTopology registers a topology and its property columns under
// typeName.
func (b *GraphStoreBuilder) RelationshipTopology(typeName string, topo *topology.RelationshipTopology, properties *propstore.RelationshipPropertyStore) *GraphStoreBuilder {
	if properties == nil {
		properties = propstore.NewRelationshipPropertyStoreBuilder().Build()
	}
	b.topologies[typeName] = &topologyEntry{topology: topo, properties: properties}
	return b
}

// NodePropertyBuilder exposes the underlying node property store builder
// for direct population before Build.
func (b *GraphStoreBuilder) NodePropertyBuilder() *propstore.NodePropertyStoreBuilder {
	return b.nodeProperties
}

// GraphPropertyBuilder exposes the underlying graph property store builder
// for direct population before Build.
func (b *GraphStoreBuilder) GraphPropertyBuilder() *propstore.GraphPropertyStoreBuilder {
	return b.graphProperties
}

// Build consumes the builder and produces a GraphStore.
func (b *GraphStoreBuilder) Build() *GraphStore {
	if b.schema == nil {
		b.schema = NewGraphSchema(nil, nil)
	}
	topologies := make(map[string]*topologyEntry, len(b.topologies))
	for k, v := range b.topologies {
		topologies[k] = v
	}
	return &GraphStore{
		name:            b.name,
		databaseInfo:    b.databaseInfo,
		capabilities:    b.capabilities,
		schema:          b.schema,
		idMap:           b.idMap,
		topologies:      topologies,
		nodeProperties:  b.nodeProperties.Build(),
		graphProperties: b.graphProperties.Build(),
	}
}
