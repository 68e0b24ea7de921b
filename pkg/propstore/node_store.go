package propstore

import "github.com/orneryd/gdscore/pkg/values"

// NodePropertyStore is an immutable map of property name -> NodePropertyValues,
// one column per node property, each column's length equal to the owning
// graph's node count.
type NodePropertyStore struct {
	*genericStore[values.NodePropertyValues]
}

// NodePropertyStoreBuilder builds a NodePropertyStore.
type NodePropertyStoreBuilder struct {
	*genericBuilder[values.NodePropertyValues]
}

// NewNodePropertyStoreBuilder starts an empty builder.
func NewNodePropertyStoreBuilder() *NodePropertyStoreBuilder {
	return &NodePropertyStoreBuilder{genericBuilder: newGenericBuilder[values.NodePropertyValues]("node property store")}
}

// NodePropertyStoreBuilderFromStore seeds a builder from an existing store's
// current contents (from_store).
func NodePropertyStoreBuilderFromStore(s *NodePropertyStore) *NodePropertyStoreBuilder {
	return &NodePropertyStoreBuilder{genericBuilder: fromGenericStore(s.genericStore)}
}

// PutProperty is a convenience alias for Put, named put(name, values) for
// call sites that prefer that vocabulary.
func (b *NodePropertyStoreBuilder) PutProperty(name string, v values.NodePropertyValues) error {
	return b.Put(name, v)
}

// Build consumes the builder and produces an immutable NodePropertyStore.
func (b *NodePropertyStoreBuilder) Build() *NodePropertyStore {
	return &NodePropertyStore{genericStore: b.genericBuilder.Build()}
}

// ToBuilder seeds a fresh builder from this store's current contents,
// satisfying the store round-trip invariant: s.ToBuilder().Build() observes
// the same properties as s under no intervening mutation.
func (s *NodePropertyStore) ToBuilder() *NodePropertyStoreBuilder {
	return NodePropertyStoreBuilderFromStore(s)
}

// ContainsKey is a convenience alias for Has, named contains_key for call
// sites that prefer that vocabulary.
func (s *NodePropertyStore) ContainsKey(name string) bool {
	return s.Has(name)
}
