package pregel

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/orneryd/gdscore/pkg/gdserrors"
	"github.com/orneryd/gdscore/pkg/graphstore"
	"github.com/orneryd/gdscore/pkg/huge"
)

// PregelResult is the outcome of running an Engine to completion or to its
// iteration limit: the final NodeValue, how many supersteps ran, and
// whether the computation converged (vote-to-halt with no outstanding
// messages) rather than being cut off by max_iterations or cancellation.
type PregelResult struct {
	NodeValue      *NodeValue
	IterationCount uint32
	Converged      bool
}

// Engine drives a Computation through the Pregel bulk-synchronous-parallel
// superstep loop described in the engine's package doc: init pass, then
// per superstep a master compute, messenger handoff, parallel node
// compute, and a convergence check.
type Engine struct {
	graph       *graphstore.Graph
	computation Computation
	config      *Config
	nodeValue   *NodeValue
	messenger   Messenger
	voteBits    *huge.HugeAtomicBitSet
	observer    graphstore.ProgressObserver
}

// NewEngine builds an Engine for computation over graph, allocating the
// NodeValue from the computation's declared Schema and selecting a
// Messenger implementation per the rule: a non-nil MessageReducer selects
// the reducing messenger; otherwise config.IsAsynchronous selects the
// async queue; otherwise the sync queue.
func NewEngine(graph *graphstore.Graph, computation Computation, cfg *Config, observer graphstore.ProgressObserver) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig(20)
	}
	nodeCount := graph.NodeCount()

	nodeValue, err := NewNodeValue(computation.Schema(), nodeCount)
	if err != nil {
		return nil, err
	}

	var messenger Messenger
	if reducer := computation.MessageReducer(); reducer != nil {
		messenger = NewReducingMessenger(nodeCount, reducer, cfg.TrackSender)
	} else if cfg.IsAsynchronous {
		messenger = NewAsyncQueueMessenger(nodeCount)
	} else {
		messenger = NewSyncQueueMessenger(nodeCount)
	}

	return &Engine{
		graph:       graph,
		computation: computation,
		config:      cfg,
		nodeValue:   nodeValue,
		messenger:   messenger,
		voteBits:    huge.NewHugeAtomicBitSet(nodeCount),
		observer:    observer,
	}, nil
}

// Run executes the superstep loop until the computation converges, hits
// config.MaxIterations, or ctx is cancelled. A panic inside Init or
// Compute is fatal: the loop aborts, releases the messenger, and returns
// an AlgorithmFailureError — there is no per-node retry.
func (e *Engine) Run(ctx context.Context) (result *PregelResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			e.messenger.Release()
			err = gdserrors.NewAlgorithmFailure("panic during pregel computation", fmt.Errorf("%v", r))
		}
	}()

	nodeCount := e.graph.NodeCount()
	concurrency := e.config.ResolvedConcurrency()
	partitions, perr := e.partitions(concurrency)
	if perr != nil {
		return nil, perr
	}

	if e.observer != nil {
		e.observer.BeginTask("pregel init", nodeCount)
	}
	if err := e.runOverPartitions(ctx, partitions, func(node int64) error {
		initCtx := &InitContext{nodeID: node, graph: e.graph, nodeValue: e.nodeValue, weightProperty: e.config.RelationshipWeightProperty}
		e.computation.Init(initCtx)
		return nil
	}); err != nil {
		e.messenger.Release()
		if ctx.Err() != nil {
			return &PregelResult{NodeValue: e.nodeValue, IterationCount: 0, Converged: false}, nil
		}
		return nil, err
	}
	if e.observer != nil {
		e.observer.Finish()
	}

	var iteration uint32
	converged := false

	for {
		if err := ctx.Err(); err != nil {
			e.messenger.Release()
			return &PregelResult{NodeValue: e.nodeValue, IterationCount: iteration, Converged: false}, nil
		}

		masterCtx := &MasterComputeContext{nodeValue: e.nodeValue, iteration: iteration, nodeCount: nodeCount}
		if e.computation.MasterCompute(masterCtx) {
			converged = true
			break
		}

		e.messenger.InitIteration(iteration)

		var messagesSent int64
		if e.observer != nil {
			e.observer.BeginTask(fmt.Sprintf("pregel superstep %d", iteration), nodeCount)
		}
		computeErr := e.runOverPartitions(ctx, partitions, func(node int64) error {
			halted, _ := e.voteBits.Get(node)
			if halted && e.messenger.IsEmpty(node) {
				return nil
			}
			_ = e.voteBits.Clear(node)

			computeCtx := &ComputeContext{
				InitContext: InitContext{nodeID: node, graph: e.graph, nodeValue: e.nodeValue, weightProperty: e.config.RelationshipWeightProperty},
				messenger:   e.messenger,
				iteration:   iteration,
				messagesSentFunc: func() {
					atomic.AddInt64(&messagesSent, 1)
				},
			}
			e.computation.Compute(computeCtx, e.messenger.Messages(node))
			if computeCtx.voted {
				_ = e.voteBits.Set(node)
			}
			return nil
		})
		if e.observer != nil {
			e.observer.Finish()
		}
		if computeErr != nil {
			e.messenger.Release()
			if ctx.Err() != nil {
				return &PregelResult{NodeValue: e.nodeValue, IterationCount: iteration, Converged: false}, nil
			}
			return nil, computeErr
		}

		if e.voteBits.AllSet() && atomic.LoadInt64(&messagesSent) == 0 {
			converged = true
			break
		}
		iteration++
		if iteration >= e.config.MaxIterations {
			break
		}
	}

	e.messenger.Release()
	return &PregelResult{NodeValue: e.nodeValue, IterationCount: iteration, Converged: converged}, nil
}

func (e *Engine) partitions(concurrency int) ([][2]int64, error) {
	if e.config.Partitioning == Degree {
		return partitionDegree(e.graph, concurrency)
	}
	return partitionRange(e.graph.NodeCount(), concurrency), nil
}

// runOverPartitions runs fn(node) for every node across all partitions,
// one goroutine per partition, bounded by len(partitions) concurrent
// goroutines (already sized to the engine's resolved concurrency).
func (e *Engine) runOverPartitions(ctx context.Context, partitions [][2]int64, fn func(node int64) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, p := range partitions {
		start, end := p[0], p[1]
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = gdserrors.NewAlgorithmFailure("panic during pregel computation", fmt.Errorf("%v", r))
				}
			}()
			for node := start; node < end; node++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				if err := fn(node); err != nil {
					return err
				}
			}
			return nil
		})
	}
	return g.Wait()
}
