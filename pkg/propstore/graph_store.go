package propstore

import "github.com/orneryd/gdscore/pkg/values"

// GraphPropertyStore is an immutable map of property name ->
// GraphPropertyValues: properties describing the whole graph rather than
// an individual node or relationship.
type GraphPropertyStore struct {
	*genericStore[values.GraphPropertyValues]
}

// GraphPropertyStoreBuilder builds a GraphPropertyStore.
type GraphPropertyStoreBuilder struct {
	*genericBuilder[values.GraphPropertyValues]
}

// NewGraphPropertyStoreBuilder starts an empty builder.
func NewGraphPropertyStoreBuilder() *GraphPropertyStoreBuilder {
	return &GraphPropertyStoreBuilder{genericBuilder: newGenericBuilder[values.GraphPropertyValues]("graph property store")}
}

// GraphPropertyStoreBuilderFromStore seeds a builder from an existing
// store's current contents.
func GraphPropertyStoreBuilderFromStore(s *GraphPropertyStore) *GraphPropertyStoreBuilder {
	return &GraphPropertyStoreBuilder{genericBuilder: fromGenericStore(s.genericStore)}
}

// PutProperty is the builder's inherent convenience method (block iv).
func (b *GraphPropertyStoreBuilder) PutProperty(name string, v values.GraphPropertyValues) error {
	return b.Put(name, v)
}

// Build consumes the builder and produces an immutable GraphPropertyStore.
func (b *GraphPropertyStoreBuilder) Build() *GraphPropertyStore {
	return &GraphPropertyStore{genericStore: b.genericBuilder.Build()}
}

// ToBuilder seeds a fresh builder from this store's current contents.
func (s *GraphPropertyStore) ToBuilder() *GraphPropertyStoreBuilder {
	return GraphPropertyStoreBuilderFromStore(s)
}

// ContainsKey is the store's inherent convenience alias for Has.
func (s *GraphPropertyStore) ContainsKey(name string) bool {
	return s.Has(name)
}
