package pregel

import (
	"sync"

	"github.com/orneryd/gdscore/pkg/pool"
)

// AsyncQueueMessenger is the asynchronous, single-buffered messenger: one
// per-node buffer with a head pointer. Sends become visible immediately
// in the same superstep, rather than waiting for the next one's
// InitIteration as the sync queue does.
type AsyncQueueMessenger struct {
	nodeCount int64
	buffers   [][]float64
	heads     []int
	locks     [numShards]sync.Mutex
}

// NewAsyncQueueMessenger allocates an AsyncQueueMessenger sized for
// nodeCount nodes.
func NewAsyncQueueMessenger(nodeCount int64) *AsyncQueueMessenger {
	return &AsyncQueueMessenger{
		nodeCount: nodeCount,
		buffers:   make([][]float64, nodeCount),
		heads:     make([]int, nodeCount),
	}
}

// InitIteration compacts each node's buffer (dropping the consumed
// prefix) once the head has advanced past a quarter of the buffer's
// length, bounding unbounded growth from long-lived partially-consumed
// queues.
func (m *AsyncQueueMessenger) InitIteration(iteration uint32) {
	for i := range m.buffers {
		buf := m.buffers[i]
		head := m.heads[i]
		if head > 0 && head > len(buf)/4 {
			compacted := pool.GetMessageSlice()
			compacted = append(compacted, buf[head:]...)
			pool.PutMessageSlice(buf)
			m.buffers[i] = compacted
			m.heads[i] = 0
		}
	}
}

// SendTo appends msg to target's buffer; it is visible to Messages(target)
// immediately, including within the same superstep that sent it.
func (m *AsyncQueueMessenger) SendTo(source int64, hasSource bool, target int64, msg float64) {
	shard := shardOf(target)
	m.locks[shard].Lock()
	if m.buffers[target] == nil {
		m.buffers[target] = pool.GetMessageSlice()
	}
	m.buffers[target] = append(m.buffers[target], msg)
	m.locks[shard].Unlock()
}

// Messages returns an iterator over target's unconsumed messages,
// advancing target's head as each value is consumed.
func (m *AsyncQueueMessenger) Messages(target int64) MessageIterator {
	if m.heads[target] >= len(m.buffers[target]) {
		return emptyMessages
	}
	return &asyncMessageIterator{messenger: m, target: target}
}

// IsEmpty reports whether target has any unconsumed messages.
func (m *AsyncQueueMessenger) IsEmpty(target int64) bool {
	return m.heads[target] >= len(m.buffers[target])
}

// Release returns all buffered messages to the pool and drops the slices.
func (m *AsyncQueueMessenger) Release() {
	for i, buf := range m.buffers {
		if buf != nil {
			pool.PutMessageSlice(buf)
			m.buffers[i] = nil
		}
	}
	m.buffers = nil
	m.heads = nil
}

type asyncMessageIterator struct {
	messenger *AsyncQueueMessenger
	target    int64
}

func (it *asyncMessageIterator) Next() (float64, bool) {
	m := it.messenger
	if m.heads[it.target] >= len(m.buffers[it.target]) {
		return 0, false
	}
	v := m.buffers[it.target][m.heads[it.target]]
	m.heads[it.target]++
	return v, true
}

func (it *asyncMessageIterator) IsEmpty() bool {
	return it.messenger.IsEmpty(it.target)
}

func (it *asyncMessageIterator) Reset() {
	// Async consumption is destructive by design (head advances as
	// consumed) — there is no prior position to rewind to.
}

func (it *asyncMessageIterator) Sender() (int64, bool) { return 0, false }
