package graphstore

import (
	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/idmap"
	"github.com/orneryd/gdscore/pkg/propstore"
	"github.com/orneryd/gdscore/pkg/values"
)

// RelationshipCursor describes one relationship edge as seen from a
// traversal starting node: its target, the relationship type it belongs
// to, and — when the owning topology carries a scalar property column —
// the property value attached to it. Property is nil when the topology
// has no properties, using a pointer rather than a zero-value sentinel
// so "no property" and "property is zero" stay distinguishable.
type RelationshipCursor struct {
	Source           int64
	Target           int64
	RelationshipType string
	Property         *float64
}

// Graph is an immutable snapshot over a GraphStore's id map, a selected
// subset of its relationship topologies, and its property stores. It is
// produced by GraphStore.Graph / GraphStore.GraphFor and never observes
// mutations applied to the GraphStore afterward: the GraphStore's
// copy-on-write mutation methods replace fields on a new GraphStore value
// rather than writing through the one a Graph already holds references
// into.
type Graph struct {
	idMap           *idmap.IdMap
	topologies      map[string]*topologyEntry
	nodeProperties  *propstore.NodePropertyStore
	graphProperties *propstore.GraphPropertyStore
}

// NodeCount returns the number of nodes in the underlying id map.
func (g *Graph) NodeCount() int64 {
	return g.idMap.NodeCount()
}

// RelationshipCount returns the total relationship count across every
// relationship type included in this view.
func (g *Graph) RelationshipCount() int64 {
	var total int64
	for _, entry := range g.topologies {
		total += entry.topology.RelationshipCount()
	}
	return total
}

// RelationshipCountOf returns the relationship count for a single type,
// or gdserrors.UnknownNameError if typeName is not part of this view.
func (g *Graph) RelationshipCountOf(typeName string) (int64, error) {
	entry, ok := g.topologies[typeName]
	if !ok {
		return 0, gdserrors.NewUnknownName("graph view", typeName)
	}
	return entry.topology.RelationshipCount(), nil
}

// Degree returns the number of outgoing relationships from node across
// every relationship type in this view — the sum of each topology's
// per-type degree, so it agrees with the count a caller would get by
// summing len(Neighbors(node)) per type (property #4, relationship-count
// additivity across a type filter).
func (g *Graph) Degree(node int64) (int64, error) {
	var total int64
	for _, entry := range g.topologies {
		d, err := entry.topology.Degree(node)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// InverseDegree returns the number of incoming relationships into node,
// summed across every relationship type in this view that carries an
// inverse index. ok is false only when none of the view's topologies
// carry an inverse index at all; topologies lacking one simply
// contribute zero rather than making the whole call fail, since a view
// can mix indexed and unindexed types.
func (g *Graph) InverseDegree(node int64) (total int64, ok bool, err error) {
	for _, entry := range g.topologies {
		if !entry.topology.HasInverseIndex() {
			continue
		}
		ok = true
		d, hasInverse, derr := entry.topology.InverseDegree(node)
		if derr != nil {
			return 0, false, derr
		}
		if hasInverse {
			total += d
		}
	}
	return total, ok, nil
}

// Neighbors returns the union of node's outgoing neighbors across every
// relationship type in this view, in type-iteration then per-type
// adjacency order.
func (g *Graph) Neighbors(node int64) ([]int64, error) {
	var all []int64
	for _, entry := range g.topologies {
		n, err := entry.topology.Neighbors(node)
		if err != nil {
			return nil, err
		}
		all = append(all, n...)
	}
	return all, nil
}

// RelationshipCursor returns one RelationshipCursor entry per outgoing
// relationship from node, across every relationship type in this view.
// The returned slice is a one-shot snapshot: callers needing a second pass
// call this again rather than rewinding a shared iterator.
//
// Property is populated from the type's sole compiled property column
// (Neighbors(node)'s k-th entry sits at topology edge index
// Offset(node)+k, the same post-sort order the property column was
// compiled in) when exactly one is declared; a type with multiple
// relationship properties leaves Property nil, since the cursor's single
// scalar field cannot carry more than one value — callers needing a
// specific named column should read it directly via the topology's
// compiled property store instead of this cursor.
func (g *Graph) RelationshipCursor(node int64) ([]RelationshipCursor, error) {
	var cursors []RelationshipCursor
	for typeName, entry := range g.topologies {
		neighbors, err := entry.topology.Neighbors(node)
		if err != nil {
			return nil, err
		}
		start, err := entry.topology.Offset(node)
		if err != nil {
			return nil, err
		}
		propCol := solePropertyColumn(entry.properties)
		for k, target := range neighbors {
			cursor := RelationshipCursor{
				Source:           node,
				Target:           target,
				RelationshipType: typeName,
			}
			if propCol != nil {
				v, err := propCol.DoubleValue(start + int64(k))
				if err != nil {
					return nil, err
				}
				cursor.Property = &v
			}
			cursors = append(cursors, cursor)
		}
	}
	return cursors, nil
}

// solePropertyColumn returns store's only property column, or nil if it
// has zero or more than one.
func solePropertyColumn(store *propstore.RelationshipPropertyStore) values.RelationshipPropertyValues {
	if store == nil || store.Size() != 1 {
		return nil
	}
	col, err := store.Get(store.Keys()[0])
	if err != nil {
		return nil
	}
	return col
}

// RelationshipWeight returns the value of the named relationship property
// on the edge from source to target, or 1.0 if propertyName is empty, no
// edge between source and target carries that property in this view, or
// no such edge exists at all — the "weight defaults to 1.0" rule Pregel
// computations rely on for RelationshipWeightProperty. When more than one
// relationship type in this view connects source to target, the first
// type (in map iteration order) that both has an edge to target and
// declares propertyName wins.
func (g *Graph) RelationshipWeight(source, target int64, propertyName string) (float64, error) {
	if propertyName == "" {
		return 1.0, nil
	}
	for _, entry := range g.topologies {
		if entry.properties == nil || !entry.properties.Has(propertyName) {
			continue
		}
		neighbors, err := entry.topology.Neighbors(source)
		if err != nil {
			return 0, err
		}
		for k, t := range neighbors {
			if t != target {
				continue
			}
			start, err := entry.topology.Offset(source)
			if err != nil {
				return 0, err
			}
			col, err := entry.properties.Get(propertyName)
			if err != nil {
				return 0, err
			}
			return col.DoubleValue(start + int64(k))
		}
	}
	return 1.0, nil
}

// NodeProperties returns the named node property column and whether it
// is present in this view's property store.
func (g *Graph) NodeProperties(name string) (values.NodePropertyValues, bool) {
	v, err := g.nodeProperties.Get(name)
	if err != nil {
		return nil, false
	}
	return v, true
}

// GraphProperties returns the named graph property column and whether it
// is present in this view's property store.
func (g *Graph) GraphProperties(name string) (values.GraphPropertyValues, bool) {
	v, err := g.graphProperties.Get(name)
	if err != nil {
		return nil, false
	}
	return v, true
}
