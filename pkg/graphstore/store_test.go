package graphstore

import (
	"testing"

	"github.com/orneryd/gdscore/pkg/huge"
	"github.com/orneryd/gdscore/pkg/idmap"
	"github.com/orneryd/gdscore/pkg/topology"
	"github.com/orneryd/gdscore/pkg/values"
)

func buildTestStore(t *testing.T) *GraphStore {
	t.Helper()

	idBuilder := idmap.NewIdMapBuilder(4)
	for i := int64(0); i < 4; i++ {
		idBuilder.Put(i * 10)
	}
	idm := idBuilder.Build()

	topoBuilder := topology.NewRelationshipTopologyBuilder(4).WithInverseIndex()
	edges := [][2]int64{{0, 1}, {0, 2}, {1, 2}, {2, 0}, {3, 0}}
	for _, e := range edges {
		if err := topoBuilder.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("add edge: %v", err)
		}
	}
	topo, _, err := topoBuilder.Build()
	if err != nil {
		t.Fatalf("build topology: %v", err)
	}

	store := NewGraphStoreBuilder("test").
		IdMap(idm).
		RelationshipTopology("FOLLOWS", topo, nil).
		Build()
	return store
}

func TestGraphStore_NameAndIdMap(t *testing.T) {
	s := buildTestStore(t)
	if s.Name() != "test" {
		t.Fatalf("Name() = %q, want test", s.Name())
	}
	if s.IdMap().NodeCount() != 4 {
		t.Fatalf("NodeCount() = %d, want 4", s.IdMap().NodeCount())
	}
}

func TestGraphStore_GraphViewDegreeAndNeighbors(t *testing.T) {
	s := buildTestStore(t)
	g := s.Graph()

	d, err := g.Degree(0)
	if err != nil {
		t.Fatalf("Degree: %v", err)
	}
	if d != 2 {
		t.Fatalf("Degree(0) = %d, want 2", d)
	}

	neighbors, err := g.Neighbors(0)
	if err != nil {
		t.Fatalf("Neighbors: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("Neighbors(0) = %v, want len 2", neighbors)
	}
}

func TestGraphStore_RelationshipCountAdditivity(t *testing.T) {
	// invariant: relationship_count_of summed across every type in the
	// view equals relationship_count() for the full view.
	s := buildTestStore(t)
	g := s.Graph()

	total := g.RelationshipCount()
	var summed int64
	for _, typ := range s.RelationshipTypes() {
		c, err := g.RelationshipCountOf(typ)
		if err != nil {
			t.Fatalf("RelationshipCountOf: %v", err)
		}
		summed += c
	}
	if summed != total {
		t.Fatalf("summed per-type counts = %d, total = %d", summed, total)
	}
	if total != 5 {
		t.Fatalf("RelationshipCount() = %d, want 5", total)
	}
}

func TestGraphStore_GraphForUnknownTypeIsEmptyNotError(t *testing.T) {
	s := buildTestStore(t)
	g := s.GraphFor([]string{"NOPE"})
	if g.RelationshipCount() != 0 {
		t.Fatalf("RelationshipCount() = %d, want 0 for unknown type filter", g.RelationshipCount())
	}
}

func TestGraphStore_AddNodeProperty_ViewIsolation(t *testing.T) {
	// A view taken before a mutation must not observe the mutation.
	s := buildTestStore(t)
	before := s.Graph()

	col := huge.NewHugeLongArrayWithDefault(4, 0)
	_ = col.Set(0, 100)
	nodeVals := values.NewLongNodeValues(col)

	after, err := s.AddNodeProperty("score", nodeVals, true)
	if err != nil {
		t.Fatalf("AddNodeProperty: %v", err)
	}

	if _, ok := before.NodeProperties("score"); ok {
		t.Fatalf("pre-mutation view observed the added property")
	}
	afterView := after.Graph()
	got, ok := afterView.NodeProperties("score")
	if !ok {
		t.Fatalf("post-mutation view missing added property")
	}
	v, err := got.LongValue(0)
	if err != nil {
		t.Fatalf("LongValue: %v", err)
	}
	if v != 100 {
		t.Fatalf("LongValue(0) = %d, want 100", v)
	}
}

func TestGraphStore_AddNodeProperty_RejectsWrongLength(t *testing.T) {
	s := buildTestStore(t)
	col := huge.NewHugeLongArrayWithDefault(3, 0)
	nodeVals := values.NewLongNodeValues(col)
	if _, err := s.AddNodeProperty("bad", nodeVals, true); err == nil {
		t.Fatalf("expected error for mismatched column length")
	}
}

func TestGraphStore_AddRelationshipType_RejectsDuplicate(t *testing.T) {
	s := buildTestStore(t)
	topoBuilder := topology.NewRelationshipTopologyBuilder(4)
	_ = topoBuilder.AddEdge(0, 1)
	topo, _, err := topoBuilder.Build()
	if err != nil {
		t.Fatalf("build topology: %v", err)
	}
	if _, err := s.AddRelationshipType("FOLLOWS", topo, nil); err == nil {
		t.Fatalf("expected error adding duplicate relationship type")
	}
}

func TestGraphStore_RemoveNodeProperty(t *testing.T) {
	s := buildTestStore(t)
	col := huge.NewHugeLongArrayWithDefault(4, 0)
	nodeVals := values.NewLongNodeValues(col)

	withProp, err := s.AddNodeProperty("score", nodeVals, true)
	if err != nil {
		t.Fatalf("AddNodeProperty: %v", err)
	}
	withoutProp, err := withProp.RemoveNodeProperty("score")
	if err != nil {
		t.Fatalf("RemoveNodeProperty: %v", err)
	}
	if _, ok := withoutProp.Graph().NodeProperties("score"); ok {
		t.Fatalf("property still present after removal")
	}
	if _, ok := withProp.Graph().NodeProperties("score"); !ok {
		t.Fatalf("earlier view lost its property after a later mutation")
	}
}
