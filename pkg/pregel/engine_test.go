package pregel

import (
	"context"
	"testing"

	"github.com/orneryd/gdscore/pkg/graphstore"
	"github.com/orneryd/gdscore/pkg/idmap"
	"github.com/orneryd/gdscore/pkg/propstore"
	"github.com/orneryd/gdscore/pkg/topology"
	"github.com/orneryd/gdscore/pkg/values"
)

func buildDirectedGraph(t *testing.T, nodeCount int64, edges [][2]int64) *graphstore.Graph {
	t.Helper()
	idBuilder := idmap.NewIdMapBuilder(nodeCount)
	for i := int64(0); i < nodeCount; i++ {
		idBuilder.Put(i)
	}
	idm := idBuilder.Build()

	topoBuilder := topology.NewRelationshipTopologyBuilder(nodeCount)
	for _, e := range edges {
		if err := topoBuilder.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("add edge: %v", err)
		}
	}
	topo, _, err := topoBuilder.Build()
	if err != nil {
		t.Fatalf("build topology: %v", err)
	}

	store := graphstore.NewGraphStoreBuilder("test").
		IdMap(idm).
		RelationshipTopology("REL", topo, nil).
		Build()
	return store.Graph()
}

// buildWeightedGraph builds a directed graph like buildDirectedGraph but
// with a "cost" relationship property set to weights[i] on edges[i].
func buildWeightedGraph(t *testing.T, nodeCount int64, edges [][2]int64, weights []float64) *graphstore.Graph {
	t.Helper()
	idBuilder := idmap.NewIdMapBuilder(nodeCount)
	for i := int64(0); i < nodeCount; i++ {
		idBuilder.Put(i)
	}
	idm := idBuilder.Build()

	topoBuilder := topology.NewRelationshipTopologyBuilder(nodeCount)
	for i, e := range edges {
		if err := topoBuilder.AddEdge(e[0], e[1]); err != nil {
			t.Fatalf("add edge: %v", err)
		}
		if err := topoBuilder.SetProperty("cost", weights[i]); err != nil {
			t.Fatalf("set property: %v", err)
		}
	}
	topo, cols, err := topoBuilder.Build()
	if err != nil {
		t.Fatalf("build topology: %v", err)
	}

	propBuilder := propstore.NewRelationshipPropertyStoreBuilder()
	if err := propBuilder.PutProperty("cost", cols["cost"]); err != nil {
		t.Fatalf("put property: %v", err)
	}

	store := graphstore.NewGraphStoreBuilder("weighted").
		IdMap(idm).
		RelationshipTopology("REL", topo, propBuilder.Build()).
		Build()
	return store.Graph()
}

// weightReader is a one-superstep computation that records the
// RelationshipWeightProperty-configured edge weight from node 0 to node 1
// into node 0's NodeValue, proving Config.RelationshipWeightProperty
// reaches ComputeContext.
type weightReader struct {
	BaseComputation
}

func (weightReader) Schema() *Schema { return NewSchema().Add("seen", values.Double, Public) }
func (weightReader) Init(ctx *InitContext) {}
func (weightReader) Compute(ctx *ComputeContext, messages MessageIterator) {
	if ctx.NodeID() == 0 {
		w, err := ctx.RelationshipWeight(1)
		if err == nil {
			_ = ctx.SetDouble("seen", w)
		}
	}
	ctx.VoteToHalt()
}

func TestEngine_RelationshipWeightPropertyReachesComputeContext(t *testing.T) {
	graph := buildWeightedGraph(t, 2, [][2]int64{{0, 1}}, []float64{42})
	cfg := DefaultConfig(5)
	cfg.RelationshipWeightProperty = "cost"
	engine, err := NewEngine(graph, weightReader{}, cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	result, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	seen, err := result.NodeValue.DoubleValue("seen", 0)
	if err != nil {
		t.Fatalf("DoubleValue: %v", err)
	}
	if seen != 42 {
		t.Fatalf("seen weight = %v, want 42 (from Config.RelationshipWeightProperty)", seen)
	}
}

type sumComputation struct {
	BaseComputation
}

func (sumComputation) Schema() *Schema {
	return NewSchema().Add("value", values.Double, Public)
}

func (sumComputation) MessageReducer() Reducer { return SumReducer{} }

func (c sumComputation) Init(ctx *InitContext) {
	if ctx.NodeID() == 0 {
		_ = ctx.SetDouble("value", 1.0)
	}
}

func (c sumComputation) Compute(ctx *ComputeContext, messages MessageIterator) {
	if ctx.Iteration() == 0 && ctx.NodeID() == 0 {
		_ = ctx.SendToNeighbors(1.0)
		ctx.VoteToHalt()
		return
	}
	if v, ok := messages.Next(); ok {
		cur, _ := ctx.DoubleValue("value")
		_ = ctx.SetDouble("value", cur+v)
		if err := ctx.SendToNeighbors(v); err != nil {
			ctx.VoteToHalt()
			return
		}
	}
	ctx.VoteToHalt()
}

func TestEngine_ConvergesWhenAllVoteToHaltAndNoMessages(t *testing.T) {
	graph := buildDirectedGraph(t, 3, [][2]int64{{0, 1}, {1, 2}})
	cfg := DefaultConfig(20)
	engine, err := NewEngine(graph, sumComputation{}, cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	result, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Converged {
		t.Fatalf("expected convergence, got iterations=%d", result.IterationCount)
	}

	v, err := result.NodeValue.DoubleValue("value", 2)
	if err != nil {
		t.Fatalf("DoubleValue: %v", err)
	}
	if v != 1.0 {
		t.Fatalf("node 2 value = %v, want 1.0 (propagated from node 0 via node 1)", v)
	}
}

func TestEngine_StopsAtMaxIterationsWhenNeverConverging(t *testing.T) {
	graph := buildDirectedGraph(t, 2, [][2]int64{{0, 1}, {1, 0}})
	cfg := DefaultConfig(3)
	engine, err := NewEngine(graph, &pingPong{}, cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	result, err := engine.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Converged {
		t.Fatalf("expected non-convergence for a computation that never halts")
	}
	if result.IterationCount != 3 {
		t.Fatalf("IterationCount = %d, want 3 (max_iterations)", result.IterationCount)
	}
}

// pingPong never votes to halt and always sends, forcing the engine to
// run to max_iterations.
type pingPong struct {
	BaseComputation
}

func (pingPong) Schema() *Schema { return NewSchema().Add("value", values.Double, Public) }
func (pingPong) MessageReducer() Reducer { return SumReducer{} }
func (pingPong) Init(ctx *InitContext) {
	if ctx.NodeID() == 0 {
		_ = ctx.SetDouble("value", 1.0)
	}
}
func (pingPong) Compute(ctx *ComputeContext, messages MessageIterator) {
	_ = ctx.SendToNeighbors(1.0)
}

func TestEngine_ContextCancellationStopsEarly(t *testing.T) {
	graph := buildDirectedGraph(t, 2, [][2]int64{{0, 1}, {1, 0}})
	cfg := DefaultConfig(1000)
	engine, err := NewEngine(graph, &pingPong{}, cfg, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	result, err := engine.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Converged {
		t.Fatalf("cancelled run must report converged=false")
	}
}
