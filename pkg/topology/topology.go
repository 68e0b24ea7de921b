// Package topology implements RelationshipTopology: the CSR (compressed
// sparse row) adjacency representation for a single relationship type —
// offsets array + concatenated targets array — with an optional inverse
// index over reversed edges. Topologies are immutable after construction;
// all mutation happens through RelationshipTopologyBuilder.
package topology

import (
	"github.com/orneryd/gdscore/pkg/huge"
)

// RelationshipTopology is the adjacency representation for one relationship
// type. Neighbors of mapped node v are targets[offsets[v] : offsets[v+1]].
type RelationshipTopology struct {
	offsets *huge.HugeLongArray // length nodeCount+1
	targets *huge.HugeLongArray // length relationshipCount

	inverseOffsets *huge.HugeLongArray // nil if no inverse index
	inverseTargets *huge.HugeLongArray

	nodeCount         int64
	relationshipCount int64
}

// NodeCount returns the node count this topology was built over (offsets
// has NodeCount()+1 entries).
func (t *RelationshipTopology) NodeCount() int64 { return t.nodeCount }

// RelationshipCount returns the total number of directed edges in this
// topology.
func (t *RelationshipTopology) RelationshipCount() int64 { return t.relationshipCount }

// HasInverseIndex reports whether an inverse (incoming) adjacency was
// built.
func (t *RelationshipTopology) HasInverseIndex() bool {
	return t.inverseOffsets != nil
}

// Degree returns the out-degree of mapped node v.
func (t *RelationshipTopology) Degree(v int64) (int64, error) {
	return degree(t.offsets, v)
}

// Offset returns the starting index into targets (and into any compiled
// relationship property column, which shares targets' post-sort edge
// order) for mapped node v's adjacency list: the k-th entry of
// Neighbors(v) sits at global edge index Offset(v)+k.
func (t *RelationshipTopology) Offset(v int64) (int64, error) {
	return t.offsets.Get(v)
}

// InverseDegree returns the in-degree of mapped node v, and whether an
// inverse index exists at all (ok is false if HasInverseIndex() is false,
// regardless of v).
func (t *RelationshipTopology) InverseDegree(v int64) (degreeVal int64, ok bool, err error) {
	if t.inverseOffsets == nil {
		return 0, false, nil
	}
	d, err := degree(t.inverseOffsets, v)
	if err != nil {
		return 0, true, err
	}
	return d, true, nil
}

func degree(offsets *huge.HugeLongArray, v int64) (int64, error) {
	start, err := offsets.Get(v)
	if err != nil {
		return 0, err
	}
	end, err := offsets.Get(v + 1)
	if err != nil {
		return 0, err
	}
	return end - start, nil
}

// Neighbors returns the mapped target ids of v's outgoing edges. The
// returned slice is a fresh copy built on each call; mutating it does not
// affect the topology, which never changes after construction.
func (t *RelationshipTopology) Neighbors(v int64) ([]int64, error) {
	return neighborSlice(t.offsets, t.targets, v)
}

// InverseNeighbors returns the mapped source ids of v's incoming edges. ok
// is false if no inverse index was built.
func (t *RelationshipTopology) InverseNeighbors(v int64) (neighbors []int64, ok bool, err error) {
	if t.inverseOffsets == nil {
		return nil, false, nil
	}
	n, err := neighborSlice(t.inverseOffsets, t.inverseTargets, v)
	if err != nil {
		return nil, true, err
	}
	return n, true, nil
}

func neighborSlice(offsets, targets *huge.HugeLongArray, v int64) ([]int64, error) {
	start, err := offsets.Get(v)
	if err != nil {
		return nil, err
	}
	end, err := offsets.Get(v + 1)
	if err != nil {
		return nil, err
	}
	out := make([]int64, end-start)
	for i := start; i < end; i++ {
		val, err := targets.Get(i)
		if err != nil {
			return nil, err
		}
		out[i-start] = val
	}
	return out, nil
}
