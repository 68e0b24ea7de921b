// Package algorithms provides reference Computation implementations built
// on top of the Pregel engine, grounded in the same PageRank/damping-factor
// shape as the iterative scoring functions in apoc/algo.
package algorithms

import (
	"github.com/orneryd/gdscore/pkg/pregel"
	"github.com/orneryd/gdscore/pkg/values"
)

const rankProperty = "rank"

// PageRank is a vertex-centric PageRank computation using the reducing
// messenger (Sum) so each node's incoming rank share arrives pre-summed,
// rather than as an individually-walked message list.
type PageRank struct {
	pregel.BaseComputation
	DampingFactor float64
	NodeCount     int64
}

// Schema declares the single Public "rank" column.
func (p *PageRank) Schema() *pregel.Schema {
	return pregel.NewSchema().Add(rankProperty, values.Double, pregel.Public)
}

// MessageReducer sums incoming rank contributions per target per superstep.
func (p *PageRank) MessageReducer() pregel.Reducer { return pregel.SumReducer{} }

// Init seeds every node's rank at 1/N. Init cannot send; the first
// contributions go out from Compute in superstep 0.
func (p *PageRank) Init(ctx *pregel.InitContext) {
	_ = ctx.SetDouble(rankProperty, 1.0/float64(p.NodeCount))
}

// Compute folds the reduced incoming rank sum into the PageRank formula
// and redistributes the new rank evenly across outgoing neighbors.
func (p *PageRank) Compute(ctx *pregel.ComputeContext, messages pregel.MessageIterator) {
	var incoming float64
	if v, ok := messages.Next(); ok {
		incoming = v
	}

	newRank := (1-p.DampingFactor)/float64(p.NodeCount) + p.DampingFactor*incoming
	_ = ctx.SetDouble(rankProperty, newRank)

	degree, err := ctx.Degree()
	if err != nil || degree == 0 {
		ctx.VoteToHalt()
		return
	}
	share := newRank / float64(degree)
	if err := ctx.SendToNeighbors(share); err != nil {
		ctx.VoteToHalt()
		return
	}
	ctx.VoteToHalt()
}
