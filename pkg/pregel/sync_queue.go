package pregel

import (
	"sync"

	"github.com/orneryd/gdscore/pkg/pool"
)

// SyncQueueMessenger is the synchronous, double-buffered messenger: each
// node has a read queue (messages from the prior superstep) and a write
// queue (being filled now). InitIteration swaps read<->write and clears
// the new write side, so sends in superstep N become visible only in
// superstep N+1.
type SyncQueueMessenger struct {
	nodeCount int64
	read      [][]float64
	write     [][]float64
	locks     [numShards]sync.Mutex
}

// NewSyncQueueMessenger allocates a SyncQueueMessenger sized for
// nodeCount nodes.
func NewSyncQueueMessenger(nodeCount int64) *SyncQueueMessenger {
	return &SyncQueueMessenger{
		nodeCount: nodeCount,
		read:      make([][]float64, nodeCount),
		write:     make([][]float64, nodeCount),
	}
}

// InitIteration returns the now-stale read side's buffers to the message
// pool, then swaps read<->write. The new write side starts all-nil;
// SendTo pulls a pooled buffer on first send to each target.
func (m *SyncQueueMessenger) InitIteration(iteration uint32) {
	for i, buf := range m.read {
		if buf != nil {
			pool.PutMessageSlice(buf)
			m.read[i] = nil
		}
	}
	m.read, m.write = m.write, m.read
}

// SendTo atomically appends msg to target's write queue, pulling a pooled
// buffer on first use.
func (m *SyncQueueMessenger) SendTo(source int64, hasSource bool, target int64, msg float64) {
	shard := shardOf(target)
	m.locks[shard].Lock()
	if m.write[target] == nil {
		m.write[target] = pool.GetMessageSlice()
	}
	m.write[target] = append(m.write[target], msg)
	m.locks[shard].Unlock()
}

// Messages returns an iterator over target's read queue (messages sent in
// the prior superstep).
func (m *SyncQueueMessenger) Messages(target int64) MessageIterator {
	if len(m.read[target]) == 0 {
		return emptyMessages
	}
	return newSliceMessageIterator(m.read[target])
}

// IsEmpty reports whether target's read queue has no messages this
// superstep.
func (m *SyncQueueMessenger) IsEmpty(target int64) bool {
	return len(m.read[target]) == 0
}

// Release returns all buffered messages to the pool and drops the slices.
func (m *SyncQueueMessenger) Release() {
	for i, buf := range m.read {
		if buf != nil {
			pool.PutMessageSlice(buf)
			m.read[i] = nil
		}
	}
	for i, buf := range m.write {
		if buf != nil {
			pool.PutMessageSlice(buf)
			m.write[i] = nil
		}
	}
	m.read = nil
	m.write = nil
}
