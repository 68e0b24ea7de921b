package idmap

import "github.com/orneryd/gdscore/pkg/gdserrors"

// IdMapBuilder constructs an IdMap by appending original ids in the order
// importers discover them. Mapped ids must be dense and assigned starting
// at 0, and builders that grow the mapping must only append — Put never
// reassigns a mapped id once given.
type IdMapBuilder struct {
	toOriginal []int64
	toMapped   *openTable
	labels     []map[string]struct{}
	nextMapped int64
}

// NewIdMapBuilder starts an empty builder. expectedSize sizes the internal
// hash table up front to avoid rehashing during a bulk import.
func NewIdMapBuilder(expectedSize int64) *IdMapBuilder {
	return &IdMapBuilder{
		toOriginal: make([]int64, 0, expectedSize),
		toMapped:   newOpenTable(expectedSize),
	}
}

// Put assigns original the next dense mapped id, unless it was already
// seen, in which case it returns the existing mapped id. This makes Put
// idempotent for repeated edges/nodes referencing the same original id
// (the common importer pattern: nodes discovered implicitly from edge
// endpoints).
func (b *IdMapBuilder) Put(original int64) int64 {
	if mapped, ok := b.toMapped.Get(original); ok {
		return mapped
	}
	mapped := b.nextMapped
	b.toMapped.Put(original, mapped)
	b.toOriginal = append(b.toOriginal, original)
	b.nextMapped++
	return mapped
}

// PutLabel associates label with the node already assigned mapped id
// mapped. Returns an error if mapped is out of range.
func (b *IdMapBuilder) PutLabel(mapped int64, label string) error {
	if mapped < 0 || mapped >= int64(len(b.toOriginal)) {
		return gdserrors.NewIndexOutOfBounds(mapped, int64(len(b.toOriginal)))
	}
	if b.labels == nil {
		b.labels = make([]map[string]struct{}, len(b.toOriginal))
	}
	for int64(len(b.labels)) < int64(len(b.toOriginal)) {
		b.labels = append(b.labels, nil)
	}
	if b.labels[mapped] == nil {
		b.labels[mapped] = make(map[string]struct{})
	}
	b.labels[mapped][label] = struct{}{}
	return nil
}

// Build consumes the builder and produces an immutable IdMap.
func (b *IdMapBuilder) Build() *IdMap {
	toOriginal := make([]int64, len(b.toOriginal))
	copy(toOriginal, b.toOriginal)

	var labels []map[string]struct{}
	if b.labels != nil {
		labels = make([]map[string]struct{}, len(toOriginal))
		copy(labels, b.labels)
	}

	return &IdMap{
		toOriginal: toOriginal,
		toMapped:   b.toMapped,
		labels:     labels,
	}
}
