package graphstore

import (
	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/idmap"
	"github.com/orneryd/gdscore/pkg/propstore"
	"github.com/orneryd/gdscore/pkg/topology"
	"github.com/orneryd/gdscore/pkg/values"
)

// DatabaseInfo is opaque provenance metadata about where a GraphStore's
// data came from; the core does not interpret it beyond carrying it.
type DatabaseInfo struct {
	Name    string
	Version string
}

type topologyEntry struct {
	topology   *topology.RelationshipTopology
	properties *propstore.RelationshipPropertyStore
}

// GraphStore owns name, database info, capabilities, schema, id map,
// relationship topologies, and the graph/node property stores. Mutations
// (add/remove property) use copy-on-write: they return a new *GraphStore
// sharing every unmodified field, so a Graph view issued before the
// mutation continues to observe pre-mutation state.
type GraphStore struct {
	name         string
	databaseInfo DatabaseInfo
	capabilities *Capabilities
	schema       *GraphSchema
	idMap        *idmap.IdMap
	topologies   map[string]*topologyEntry

	nodeProperties  *propstore.NodePropertyStore
	graphProperties *propstore.GraphPropertyStore
}

// Name returns the graph's name.
func (s *GraphStore) Name() string { return s.name }

// DatabaseInfo returns the store's provenance metadata.
func (s *GraphStore) DatabaseInfo() DatabaseInfo { return s.databaseInfo }

// Capabilities returns the store's feature flags.
func (s *GraphStore) Capabilities() *Capabilities { return s.capabilities }

// Schema returns the store's declared schema.
func (s *GraphStore) Schema() *GraphSchema { return s.schema }

// IdMap returns the store's id mapping.
func (s *GraphStore) IdMap() *idmap.IdMap { return s.idMap }

// RelationshipTypes returns the names of all registered relationship
// topologies.
func (s *GraphStore) RelationshipTypes() []string {
	types := make([]string, 0, len(s.topologies))
	for t := range s.topologies {
		types = append(types, t)
	}
	return types
}

// Graph returns a view over all registered relationship types.
func (s *GraphStore) Graph() *Graph {
	return s.GraphFor(s.RelationshipTypes())
}

// GraphFor returns a view restricted to the given relationship types.
// Unknown type names are simply absent from the resulting view (not an
// error) — a caller filtering by a type this store never registered just
// sees no edges of that type.
func (s *GraphStore) GraphFor(types []string) *Graph {
	selected := make(map[string]*topologyEntry, len(types))
	for _, t := range types {
		if entry, ok := s.topologies[t]; ok {
			selected[t] = entry
		}
	}
	return &Graph{
		idMap:           s.idMap,
		topologies:      selected,
		nodeProperties:  s.nodeProperties,
		graphProperties: s.graphProperties,
	}
}

// copyWith returns a shallow copy of s with the given overrides applied;
// every other field (including the topology map, shared by reference) is
// left exactly as-is, which is what makes this copy-on-write rather than a
// deep clone.
func (s *GraphStore) copyWith(nodeProps *propstore.NodePropertyStore, graphProps *propstore.GraphPropertyStore, topologies map[string]*topologyEntry) *GraphStore {
	next := &GraphStore{
		name:            s.name,
		databaseInfo:    s.databaseInfo,
		capabilities:    s.capabilities,
		schema:          s.schema,
		idMap:           s.idMap,
		topologies:      s.topologies,
		nodeProperties:  s.nodeProperties,
		graphProperties: s.graphProperties,
	}
	if nodeProps != nil {
		next.nodeProperties = nodeProps
	}
	if graphProps != nil {
		next.graphProperties = graphProps
	}
	if topologies != nil {
		next.topologies = topologies
	}
	return next
}

// AddNodeProperty returns a new GraphStore with name added to the node
// property store, failing if name is already present (when putIfAbsent is
// true) or if col's element count doesn't match the store's node count.
func (s *GraphStore) AddNodeProperty(name string, col values.NodePropertyValues, putIfAbsent bool) (*GraphStore, error) {
	if col.ElementCount() != s.idMap.NodeCount() {
		return nil, gdserrors.NewSchemaViolation("node property store", "column length does not match node count")
	}
	b := s.nodeProperties.ToBuilder()
	if putIfAbsent {
		if err := b.PutIfAbsent(name, col); err != nil {
			return nil, err
		}
	} else {
		if err := b.Put(name, col); err != nil {
			return nil, err
		}
	}
	return s.copyWith(b.Build(), nil, nil), nil
}

// RemoveNodeProperty returns a new GraphStore with name removed from the
// node property store, failing if name is absent.
func (s *GraphStore) RemoveNodeProperty(name string) (*GraphStore, error) {
	b := s.nodeProperties.ToBuilder()
	if err := b.Remove(name); err != nil {
		return nil, err
	}
	return s.copyWith(b.Build(), nil, nil), nil
}

// AddGraphProperty returns a new GraphStore with name added to the graph
// property store, failing if name is already present (when putIfAbsent is
// true).
func (s *GraphStore) AddGraphProperty(name string, col values.GraphPropertyValues, putIfAbsent bool) (*GraphStore, error) {
	b := s.graphProperties.ToBuilder()
	if putIfAbsent {
		if err := b.PutIfAbsent(name, col); err != nil {
			return nil, err
		}
	} else {
		if err := b.Put(name, col); err != nil {
			return nil, err
		}
	}
	return s.copyWith(nil, b.Build(), nil), nil
}

// RemoveGraphProperty returns a new GraphStore with name removed from the
// graph property store, failing if name is absent.
func (s *GraphStore) RemoveGraphProperty(name string) (*GraphStore, error) {
	b := s.graphProperties.ToBuilder()
	if err := b.Remove(name); err != nil {
		return nil, err
	}
	return s.copyWith(nil, b.Build(), nil), nil
}

// AddRelationshipType returns a new GraphStore with a new topology
// registered under typeName, failing if typeName is already present.
func (s *GraphStore) AddRelationshipType(typeName string, topo *topology.RelationshipTopology, properties *propstore.RelationshipPropertyStore) (*GraphStore, error) {
	if _, ok := s.topologies[typeName]; ok {
		return nil, gdserrors.NewSchemaViolation("graph store", "relationship type \""+typeName+"\" already present")
	}
	next := make(map[string]*topologyEntry, len(s.topologies)+1)
	for k, v := range s.topologies {
		next[k] = v
	}
	next[typeName] = &topologyEntry{topology: topo, properties: properties}
	return s.copyWith(nil, nil, next), nil
}
