package graphstore

import "sync/atomic"

// Capabilities are runtime-toggleable feature flags describing what a
// GraphStore supports. Each flag is an atomic.Bool rather than a plain bool
// field so concurrent readers (the Pregel engine, exporters) never race
// with a toggle made by, say, a test fixture or a store builder finishing
// inverse-index construction in the background.
type Capabilities struct {
	inverseIndexed              atomic.Bool
	relationshipPropsSupported  atomic.Bool
	parallelPropertyIteration   atomic.Bool
}

// NewCapabilities returns a Capabilities with all flags clear.
func NewCapabilities() *Capabilities {
	return &Capabilities{}
}

// InverseIndexed reports whether relationship topologies in this store
// carry an inverse (incoming) adjacency index.
func (c *Capabilities) InverseIndexed() bool { return c.inverseIndexed.Load() }

// SetInverseIndexed toggles the InverseIndexed capability.
func (c *Capabilities) SetInverseIndexed(v bool) { c.inverseIndexed.Store(v) }

// RelationshipPropertiesSupported reports whether this store's relationship
// topologies carry property columns.
func (c *Capabilities) RelationshipPropertiesSupported() bool {
	return c.relationshipPropsSupported.Load()
}

// SetRelationshipPropertiesSupported toggles the
// RelationshipPropertiesSupported capability.
func (c *Capabilities) SetRelationshipPropertiesSupported(v bool) {
	c.relationshipPropsSupported.Store(v)
}

// ParallelPropertyIteration reports whether node/relationship property
// iteration is safe to parallelize for this store (false for backends
// whose columns are not independently page-addressable).
func (c *Capabilities) ParallelPropertyIteration() bool {
	return c.parallelPropertyIteration.Load()
}

// SetParallelPropertyIteration toggles the ParallelPropertyIteration
// capability.
func (c *Capabilities) SetParallelPropertyIteration(v bool) {
	c.parallelPropertyIteration.Store(v)
}
