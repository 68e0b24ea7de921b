package graphstore

import (
	"testing"

	"github.com/orneryd/gdscore/pkg/idmap"
	"github.com/orneryd/gdscore/pkg/propstore"
	"github.com/orneryd/gdscore/pkg/topology"
)

// buildWeightedStore builds the same 4-node graph as buildTestStore but
// with a "weight" relationship property set to 10x the edge's position in
// insertion order, so tests can tell which edge a cursor/weight lookup
// actually read.
func buildWeightedStore(t *testing.T) *GraphStore {
	t.Helper()

	idBuilder := idmap.NewIdMapBuilder(4)
	for i := int64(0); i < 4; i++ {
		idBuilder.Put(i)
	}
	idm := idBuilder.Build()

	topoBuilder := topology.NewRelationshipTopologyBuilder(4)
	edges := [][2]int64{{0, 1}, {0, 2}, {1, 2}, {2, 0}, {3, 0}}
	for i, e := range edges {
		if err := topoBuilder.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("add edge: %v", err)
		}
		if err := topoBuilder.SetProperty("weight", float64(i)*10); err != nil {
			t.Fatalf("set property: %v", err)
		}
	}
	topo, cols, err := topoBuilder.Build()
	if err != nil {
		t.Fatalf("build topology: %v", err)
	}

	propBuilder := propstore.NewRelationshipPropertyStoreBuilder()
	if err := propBuilder.PutProperty("weight", cols["weight"]); err != nil {
		t.Fatalf("put property: %v", err)
	}

	store := NewGraphStoreBuilder("weighted").
		IdMap(idm).
		RelationshipTopology("FOLLOWS", topo, propBuilder.Build()).
		Build()
	return store
}

func TestGraph_InverseDegree(t *testing.T) {
	s := buildTestStore(t)
	g := s.Graph()

	// node 0 has incoming edges from 2 and 3.
	d, ok, err := g.InverseDegree(0)
	if err != nil {
		t.Fatalf("InverseDegree: %v", err)
	}
	if !ok {
		t.Fatalf("InverseDegree: ok = false, want true (topology has an inverse index)")
	}
	if d != 2 {
		t.Fatalf("InverseDegree(0) = %d, want 2", d)
	}
}

func TestGraph_InverseDegree_NoIndex(t *testing.T) {
	idm := buildTestStore(t).idMap
	builderNoInverse := NewGraphStoreBuilder("noinverse").IdMap(idm)
	s := builderNoInverse.Build()
	g := s.Graph()

	_, ok, err := g.InverseDegree(0)
	if err != nil {
		t.Fatalf("InverseDegree: %v", err)
	}
	if ok {
		t.Fatalf("InverseDegree: ok = true, want false for a view with no topologies")
	}
}

func TestGraph_RelationshipCursor(t *testing.T) {
	s := buildTestStore(t)
	g := s.Graph()

	cursors, err := g.RelationshipCursor(0)
	if err != nil {
		t.Fatalf("RelationshipCursor: %v", err)
	}
	if len(cursors) != 2 {
		t.Fatalf("RelationshipCursor(0) returned %d entries, want 2", len(cursors))
	}
	for _, c := range cursors {
		if c.Source != 0 {
			t.Fatalf("cursor.Source = %d, want 0", c.Source)
		}
		if c.RelationshipType != "FOLLOWS" {
			t.Fatalf("cursor.RelationshipType = %q, want FOLLOWS", c.RelationshipType)
		}
	}
}

func TestGraph_RelationshipCursor_PropertyPopulated(t *testing.T) {
	s := buildWeightedStore(t)
	g := s.Graph()

	cursors, err := g.RelationshipCursor(0)
	if err != nil {
		t.Fatalf("RelationshipCursor: %v", err)
	}
	if len(cursors) != 2 {
		t.Fatalf("RelationshipCursor(0) returned %d entries, want 2", len(cursors))
	}
	got := map[int64]float64{}
	for _, c := range cursors {
		if c.Property == nil {
			t.Fatalf("cursor to %d: Property = nil, want a value", c.Target)
		}
		got[c.Target] = *c.Property
	}
	if got[1] != 0 {
		t.Fatalf("cursor 0->1 Property = %v, want 0", got[1])
	}
	if got[2] != 10 {
		t.Fatalf("cursor 0->2 Property = %v, want 10", got[2])
	}
}

func TestGraph_RelationshipWeight(t *testing.T) {
	s := buildWeightedStore(t)
	g := s.Graph()

	w, err := g.RelationshipWeight(0, 2, "weight")
	if err != nil {
		t.Fatalf("RelationshipWeight: %v", err)
	}
	if w != 10 {
		t.Fatalf("RelationshipWeight(0, 2, weight) = %v, want 10", w)
	}
}

func TestGraph_RelationshipWeight_DefaultsToOne(t *testing.T) {
	s := buildWeightedStore(t)
	g := s.Graph()

	w, err := g.RelationshipWeight(0, 2, "")
	if err != nil {
		t.Fatalf("RelationshipWeight: %v", err)
	}
	if w != 1.0 {
		t.Fatalf("RelationshipWeight with no property name = %v, want 1.0", w)
	}

	w, err = g.RelationshipWeight(0, 1, "nonexistent")
	if err != nil {
		t.Fatalf("RelationshipWeight: %v", err)
	}
	if w != 1.0 {
		t.Fatalf("RelationshipWeight with unknown property = %v, want 1.0", w)
	}
}

func TestGraph_NodeCount(t *testing.T) {
	s := buildTestStore(t)
	if s.Graph().NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", s.Graph().NodeCount())
	}
}
