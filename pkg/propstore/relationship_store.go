package propstore

import "github.com/orneryd/gdscore/pkg/values"

// RelationshipPropertyStore is an immutable map of property name ->
// RelationshipPropertyValues, one column per relationship property, each
// column's length equal to the owning topology's relationship count.
type RelationshipPropertyStore struct {
	*genericStore[values.RelationshipPropertyValues]
}

// RelationshipPropertyStoreBuilder builds a RelationshipPropertyStore.
type RelationshipPropertyStoreBuilder struct {
	*genericBuilder[values.RelationshipPropertyValues]
}

// NewRelationshipPropertyStoreBuilder starts an empty builder.
func NewRelationshipPropertyStoreBuilder() *RelationshipPropertyStoreBuilder {
	return &RelationshipPropertyStoreBuilder{genericBuilder: newGenericBuilder[values.RelationshipPropertyValues]("relationship property store")}
}

// RelationshipPropertyStoreBuilderFromStore seeds a builder from an
// existing store's current contents.
func RelationshipPropertyStoreBuilderFromStore(s *RelationshipPropertyStore) *RelationshipPropertyStoreBuilder {
	return &RelationshipPropertyStoreBuilder{genericBuilder: fromGenericStore(s.genericStore)}
}

// PutProperty is the builder's inherent convenience method (block iv).
func (b *RelationshipPropertyStoreBuilder) PutProperty(name string, v values.RelationshipPropertyValues) error {
	return b.Put(name, v)
}

// Build consumes the builder and produces an immutable
// RelationshipPropertyStore.
func (b *RelationshipPropertyStoreBuilder) Build() *RelationshipPropertyStore {
	return &RelationshipPropertyStore{genericStore: b.genericBuilder.Build()}
}

// ToBuilder seeds a fresh builder from this store's current contents.
func (s *RelationshipPropertyStore) ToBuilder() *RelationshipPropertyStoreBuilder {
	return RelationshipPropertyStoreBuilderFromStore(s)
}

// ContainsKey is the store's inherent convenience alias for Has.
func (s *RelationshipPropertyStore) ContainsKey(name string) bool {
	return s.Has(name)
}
