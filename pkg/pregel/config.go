package pregel

import (
	"runtime"

	"github.com/orneryd/gdscore/pkg/config"
)

// Partitioning selects how the engine divides [0, node_count) across
// workers for the parallel node-compute phase of a superstep.
type Partitioning string

const (
	// Range splits the id space into contiguous chunks, one per worker.
	Range Partitioning = "range"
	// Degree balances workers by cumulative out-degree rather than raw
	// node count, trading partition-build cost for load balance on
	// skewed graphs.
	Degree Partitioning = "degree"
)

// Config is the recognized set of options controlling a Pregel engine run.
type Config struct {
	// MaxIterations is a hard upper bound on supersteps; the loop force-
	// stops with converged=false if reached.
	MaxIterations uint32
	// Concurrency is the worker count for parallel node compute. 0
	// resolves to runtime.NumCPU() via ResolvedConcurrency.
	Concurrency int
	// Partitioning selects Range or Degree node partitioning.
	Partitioning Partitioning
	// IsAsynchronous selects the async queue messenger over the sync
	// queue messenger. Ignored if the computation supplies a Reducer.
	IsAsynchronous bool
	// RelationshipWeightProperty names the relationship property a
	// computation reads as edge weight; empty means weight 1.0 for every
	// edge.
	RelationshipWeightProperty string
	// TrackSender, for the reducing messenger, records the source node
	// id of the last-applied reduction alongside the reduced value.
	TrackSender bool
}

// DefaultConfig returns a Config seeded from the process-wide engine
// defaults (pkg/config.LoadFromEnv), with MaxIterations set by the caller
// per algorithm — spec explicitly calls out that there is no implicit
// infinite default.
func DefaultConfig(maxIterations uint32) *Config {
	env := config.LoadFromEnv()
	cfg := &Config{
		MaxIterations:  maxIterations,
		Concurrency:    env.Engine.Concurrency,
		Partitioning:   Partitioning(env.Engine.Partitioning),
		IsAsynchronous: config.IsAsyncMessengerEnabled(),
		TrackSender:    config.IsTrackSenderEnabled(),
	}
	if config.IsDegreePartitioningDefault() {
		cfg.Partitioning = Degree
	}
	return cfg
}

// ResolvedConcurrency returns Concurrency, substituting runtime.NumCPU()
// when it is 0.
func (c *Config) ResolvedConcurrency() int {
	if c.Concurrency > 0 {
		return c.Concurrency
	}
	return runtime.NumCPU()
}
