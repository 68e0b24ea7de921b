package algorithms

import (
	"github.com/orneryd/gdscore/pkg/pregel"
	"github.com/orneryd/gdscore/pkg/values"
)

const componentProperty = "component"

// WCC computes weakly connected components by min-propagation: each node
// starts as its own component id and repeatedly adopts the smallest id it
// has seen from a neighbor, broadcasting the change, until nothing changes.
// Uses the reducing messenger with MinReducer so concurrent neighbor
// proposals collapse to the smallest one before a node ever sees them.
type WCC struct {
	pregel.BaseComputation
}

// Schema declares the single Public "component" column.
func (WCC) Schema() *pregel.Schema {
	return pregel.NewSchema().Add(componentProperty, values.Long, pregel.Public)
}

// MessageReducer takes the minimum proposed component id per target.
func (WCC) MessageReducer() pregel.Reducer { return pregel.MinReducer{} }

// Init seeds every node's component as its own id; Compute proposes it to
// every neighbor in superstep 0. Proposals travel only along outgoing edges
// (an inverse index is not consulted), so the caller supplies a topology
// with both directions present for a true undirected result.
func (w WCC) Init(ctx *pregel.InitContext) {
	id := ctx.NodeID()
	_ = ctx.SetLong(componentProperty, id)
}

// Compute adopts the smallest id seen (its own current value or any
// incoming proposal) and, on change, broadcasts it to neighbors.
func (w WCC) Compute(ctx *pregel.ComputeContext, messages pregel.MessageIterator) {
	current, _ := ctx.LongValue(componentProperty)

	changed := false
	if v, ok := messages.Next(); ok {
		if int64(v) < current {
			current = int64(v)
			changed = true
		}
	}

	if ctx.Iteration() == 0 {
		_ = ctx.SetLong(componentProperty, current)
		if err := ctx.SendToNeighbors(float64(current)); err != nil {
			ctx.VoteToHalt()
			return
		}
		ctx.VoteToHalt()
		return
	}

	if !changed {
		ctx.VoteToHalt()
		return
	}

	_ = ctx.SetLong(componentProperty, current)
	if err := ctx.SendToNeighbors(float64(current)); err != nil {
		ctx.VoteToHalt()
		return
	}
	ctx.VoteToHalt()
}
