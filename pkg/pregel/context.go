package pregel

import "github.com/orneryd/gdscore/pkg/graphstore"

// InitContext is handed to Computation.Init once per node before superstep
// 0: it exposes the node's id, read-only topology queries, and typed
// NodeValue mutators, but no message access (there is nothing to receive
// before the first superstep).
type InitContext struct {
	nodeID         int64
	graph          *graphstore.Graph
	nodeValue      *NodeValue
	weightProperty string
}

// NodeID returns the mapped id of the node this context is scoped to.
func (c *InitContext) NodeID() int64 { return c.nodeID }

// Degree returns the node's out-degree across the Graph view's selected
// relationship types.
func (c *InitContext) Degree() (int64, error) { return c.graph.Degree(c.nodeID) }

// Neighbors returns the node's outgoing neighbor ids.
func (c *InitContext) Neighbors() ([]int64, error) { return c.graph.Neighbors(c.nodeID) }

// RelationshipWeight returns the edge weight from this node to target:
// the value of Config.RelationshipWeightProperty on that edge, or 1.0 if
// no weight property is configured or the edge carries no such value.
func (c *InitContext) RelationshipWeight(target int64) (float64, error) {
	return c.graph.RelationshipWeight(c.nodeID, target, c.weightProperty)
}

// LongValue reads the named Long-typed NodeValue column for this node.
func (c *InitContext) LongValue(name string) (int64, error) {
	return c.nodeValue.LongValue(name, c.nodeID)
}

// SetLong writes the named Long-typed NodeValue column for this node.
func (c *InitContext) SetLong(name string, v int64) error {
	return c.nodeValue.SetLong(name, c.nodeID, v)
}

// DoubleValue reads the named Double-typed NodeValue column for this node.
func (c *InitContext) DoubleValue(name string) (float64, error) {
	return c.nodeValue.DoubleValue(name, c.nodeID)
}

// SetDouble writes the named Double-typed NodeValue column for this node.
func (c *InitContext) SetDouble(name string, v float64) error {
	return c.nodeValue.SetDouble(name, c.nodeID, v)
}

// LongArrayValue reads the named LongArray-typed NodeValue column.
func (c *InitContext) LongArrayValue(name string) ([]int64, error) {
	return c.nodeValue.LongArrayValue(name, c.nodeID)
}

// SetLongArray writes the named LongArray-typed NodeValue column.
func (c *InitContext) SetLongArray(name string, v []int64) error {
	return c.nodeValue.SetLongArray(name, c.nodeID, v)
}

// DoubleArrayValue reads the named DoubleArray-typed NodeValue column.
func (c *InitContext) DoubleArrayValue(name string) ([]float64, error) {
	return c.nodeValue.DoubleArrayValue(name, c.nodeID)
}

// SetDoubleArray writes the named DoubleArray-typed NodeValue column.
func (c *InitContext) SetDoubleArray(name string, v []float64) error {
	return c.nodeValue.SetDoubleArray(name, c.nodeID, v)
}

// ComputeContext extends InitContext with message sends and vote-to-halt,
// handed to Computation.Compute once per node per superstep.
type ComputeContext struct {
	InitContext
	messenger        Messenger
	iteration        uint32
	voted            bool
	messagesSentFunc func()
}

// SendTo sends msg to target, visible per the active messenger's
// visibility rule (next superstep for sync/reducing, immediately for
// async).
func (c *ComputeContext) SendTo(target int64, msg float64) {
	c.messenger.SendTo(c.nodeID, true, target, msg)
	c.messagesSentFunc()
}

// SendToNeighbors broadcasts msg to every outgoing neighbor of this node.
func (c *ComputeContext) SendToNeighbors(msg float64) error {
	neighbors, err := c.graph.Neighbors(c.nodeID)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		c.SendTo(n, msg)
	}
	return nil
}

// VoteToHalt marks this node as wanting to stop participating in further
// supersteps, until it receives a new message that wakes it.
func (c *ComputeContext) VoteToHalt() { c.voted = true }

// Iteration returns the current (0-based) superstep number.
func (c *ComputeContext) Iteration() uint32 { return c.iteration }

// MasterComputeContext is handed to Computation.MasterCompute once per
// superstep, before messenger init and node compute, on a single
// coordinator goroutine. It exposes the iteration, the node count and
// read-only global NodeValue reductions; it has no mutators.
type MasterComputeContext struct {
	nodeValue *NodeValue
	iteration uint32
	nodeCount int64
}

// Iteration returns the current (0-based) superstep number.
func (c *MasterComputeContext) Iteration() uint32 { return c.iteration }

// NodeCount returns the graph's node count.
func (c *MasterComputeContext) NodeCount() int64 { return c.nodeCount }

// ReduceLongSum sums the named Long-typed NodeValue column across every
// node — a global reduction a master_compute implementation can use to
// decide early termination (e.g. "total change below epsilon").
func (c *MasterComputeContext) ReduceLongSum(name string) (int64, error) {
	col, err := c.nodeValue.LongColumn(name)
	if err != nil {
		return 0, err
	}
	var sum int64
	for i := int64(0); i < col.Size(); i++ {
		v, err := col.Get(i)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}

// ReduceDoubleSum sums the named Double-typed NodeValue column across
// every node.
func (c *MasterComputeContext) ReduceDoubleSum(name string) (float64, error) {
	col, err := c.nodeValue.DoubleColumn(name)
	if err != nil {
		return 0, err
	}
	var sum float64
	for i := int64(0); i < col.Size(); i++ {
		v, err := col.Get(i)
		if err != nil {
			return 0, err
		}
		sum += v
	}
	return sum, nil
}
