// Package propstore implements the triadic property store: GraphPropertyStore,
// NodePropertyStore, and RelationshipPropertyStore. All three are
// structurally identical immutable maps of name -> PropertyValues built
// through a fluent Builder, following a four-block implementation
// template: a Store interface, a StoreBuilder interface, inherent
// convenience methods on the store, and inherent convenience methods on the
// builder. Rather than hand-copy that template three times, gdscore
// generalizes it to one generic core (genericStore[V]/genericBuilder[V])
// and has GraphPropertyStore/NodePropertyStore/RelationshipPropertyStore
// each instantiate it with their scope's PropertyValues interface — the
// same tradeoff the original design notes call out between trait-object
// duplication and a single generic template.
package propstore

import "github.com/orneryd/gdscore/pkg/gdserrors"

// genericStore is the shared immutable core: name -> V, built once and
// never mutated in place.
type genericStore[V any] struct {
	scope  string
	values map[string]V
}

func newGenericStore[V any](scope string, values map[string]V) *genericStore[V] {
	copied := make(map[string]V, len(values))
	for k, v := range values {
		copied[k] = v
	}
	return &genericStore[V]{scope: scope, values: copied}
}

// (i) Store interface block — satisfied by the methods below.

func (s *genericStore[V]) Size() int { return len(s.values) }

func (s *genericStore[V]) IsEmpty() bool { return len(s.values) == 0 }

func (s *genericStore[V]) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

func (s *genericStore[V]) Get(name string) (V, error) {
	v, ok := s.values[name]
	if !ok {
		var zero V
		return zero, gdserrors.NewUnknownName(s.scope, name)
	}
	return v, nil
}

func (s *genericStore[V]) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	return keys
}

func (s *genericStore[V]) AllValues() map[string]V {
	copied := make(map[string]V, len(s.values))
	for k, v := range s.values {
		copied[k] = v
	}
	return copied
}

// genericBuilder is the shared fluent builder core. Each method returns the
// same builder (moves in spirit, not in Go's type system — callers should
// treat a builder as consumed after Build).
type genericBuilder[V any] struct {
	scope  string
	values map[string]V
}

func newGenericBuilder[V any](scope string) *genericBuilder[V] {
	return &genericBuilder[V]{scope: scope, values: make(map[string]V)}
}

func fromGenericStore[V any](s *genericStore[V]) *genericBuilder[V] {
	b := newGenericBuilder[V](s.scope)
	for k, v := range s.values {
		b.values[k] = v
	}
	return b
}

// (ii) StoreBuilder interface block.

func (b *genericBuilder[V]) Put(name string, v V) error {
	b.values[name] = v
	return nil
}

func (b *genericBuilder[V]) PutIfAbsent(name string, v V) error {
	if _, ok := b.values[name]; ok {
		return gdserrors.NewSchemaViolation(b.scope, "property \""+name+"\" already present")
	}
	b.values[name] = v
	return nil
}

func (b *genericBuilder[V]) Remove(name string) error {
	if _, ok := b.values[name]; !ok {
		return gdserrors.NewUnknownName(b.scope, name)
	}
	delete(b.values, name)
	return nil
}

func (b *genericBuilder[V]) Properties(values map[string]V) error {
	for k, v := range values {
		b.values[k] = v
	}
	return nil
}

func (b *genericBuilder[V]) Build() *genericStore[V] {
	return newGenericStore[V](b.scope, b.values)
}
