package topology

import (
	"sort"

	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/huge"
	"github.com/orneryd/gdscore/pkg/values"
)

type edge struct {
	source, target int64
}

// RelationshipTopologyBuilder accumulates edges for one relationship type
// and compiles them into an immutable CSR RelationshipTopology on Build.
type RelationshipTopologyBuilder struct {
	nodeCount     int64
	edges         []edge
	properties    map[string][]float64 // per-property value, indexed by edge insertion order
	buildInverse  bool
}

// NewRelationshipTopologyBuilder starts a builder for a topology over
// nodeCount nodes.
func NewRelationshipTopologyBuilder(nodeCount int64) *RelationshipTopologyBuilder {
	return &RelationshipTopologyBuilder{
		nodeCount:  nodeCount,
		properties: make(map[string][]float64),
	}
}

// WithInverseIndex enables building the reverse adjacency alongside the
// forward one.
func (b *RelationshipTopologyBuilder) WithInverseIndex() *RelationshipTopologyBuilder {
	b.buildInverse = true
	return b
}

// AddEdge appends a directed edge from srcMapped to tgtMapped. Both must be
// in [0, nodeCount).
func (b *RelationshipTopologyBuilder) AddEdge(srcMapped, tgtMapped int64) error {
	if srcMapped < 0 || srcMapped >= b.nodeCount {
		return gdserrors.NewIndexOutOfBounds(srcMapped, b.nodeCount)
	}
	if tgtMapped < 0 || tgtMapped >= b.nodeCount {
		return gdserrors.NewIndexOutOfBounds(tgtMapped, b.nodeCount)
	}
	b.edges = append(b.edges, edge{source: srcMapped, target: tgtMapped})
	return nil
}

// SetProperty records a per-edge scalar property value for the most
// recently added edge. Must be called immediately after the matching
// AddEdge so the property's value list stays aligned with edge insertion
// order.
func (b *RelationshipTopologyBuilder) SetProperty(name string, value float64) error {
	if len(b.edges) == 0 {
		return gdserrors.NewSchemaViolation("relationship topology builder", "set_property called before any add_edge")
	}
	col := b.properties[name]
	for len(col) < len(b.edges)-1 {
		col = append(col, 0)
	}
	col = append(col, value)
	b.properties[name] = col
	return nil
}

// Build compiles the accumulated edges into an immutable CSR
// RelationshipTopology, sorted by source so the offsets/targets invariant
// holds. It returns the topology and, for each property registered via
// SetProperty, a compiled RelationshipPropertyValues column in the same
// post-sort edge order.
func (b *RelationshipTopologyBuilder) Build() (*RelationshipTopology, map[string]values.RelationshipPropertyValues, error) {
	order := make([]int, len(b.edges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return b.edges[order[i]].source < b.edges[order[j]].source
	})

	relCount := int64(len(b.edges))
	offsets := huge.NewHugeLongArray(b.nodeCount + 1)
	targets := huge.NewHugeLongArray(relCount)

	counts := make([]int64, b.nodeCount)
	for _, e := range b.edges {
		counts[e.source]++
	}
	var running int64
	for v := int64(0); v < b.nodeCount; v++ {
		_ = offsets.Set(v, running)
		running += counts[v]
	}
	_ = offsets.Set(b.nodeCount, running)

	for i, origIdx := range order {
		_ = targets.Set(int64(i), b.edges[origIdx].target)
	}

	propCols := make(map[string]values.RelationshipPropertyValues, len(b.properties))
	for name, col := range b.properties {
		arr := huge.NewHugeDoubleArray(relCount)
		for i, origIdx := range order {
			if origIdx < len(col) {
				_ = arr.Set(int64(i), col[origIdx])
			}
		}
		propCols[name] = values.NewDoubleRelationshipValues(arr)
	}

	topo := &RelationshipTopology{
		offsets:           offsets,
		targets:           targets,
		nodeCount:         b.nodeCount,
		relationshipCount: relCount,
	}

	if b.buildInverse {
		invOffsets := huge.NewHugeLongArray(b.nodeCount + 1)
		invTargets := huge.NewHugeLongArray(relCount)

		invCounts := make([]int64, b.nodeCount)
		for _, e := range b.edges {
			invCounts[e.target]++
		}
		running = 0
		for v := int64(0); v < b.nodeCount; v++ {
			_ = invOffsets.Set(v, running)
			running += invCounts[v]
		}
		_ = invOffsets.Set(b.nodeCount, running)

		invOrder := make([]int, len(b.edges))
		for i := range invOrder {
			invOrder[i] = i
		}
		sort.SliceStable(invOrder, func(i, j int) bool {
			return b.edges[invOrder[i]].target < b.edges[invOrder[j]].target
		})
		for i, origIdx := range invOrder {
			_ = invTargets.Set(int64(i), b.edges[origIdx].source)
		}

		topo.inverseOffsets = invOffsets
		topo.inverseTargets = invTargets
	}

	return topo, propCols, nil
}
