package pregel

// MessageIterator yields the messages visible to one target node for the
// current superstep. Sender() is only meaningful for the reducing
// messenger with sender tracking enabled; sync and async queues never
// track senders and always report ok=false.
type MessageIterator interface {
	Next() (float64, bool)
	IsEmpty() bool
	Reset()
	Sender() (int64, bool)
}

// Messenger is the per-superstep message delivery service. All three
// variants (SyncQueue, AsyncQueue, Reducing) implement this interface;
// SendTo must be safe to call concurrently from any worker, while
// InitIteration is always called single-threaded between supersteps.
type Messenger interface {
	InitIteration(iteration uint32)
	SendTo(source int64, hasSource bool, target int64, msg float64)
	Messages(target int64) MessageIterator
	IsEmpty(target int64) bool
	Release()
}

// numShards bounds the lock striping used by the queue-based messengers:
// enough shards that unrelated targets rarely contend, without paying for
// one lock per node on billion-node graphs.
const numShards = 256

func shardOf(target int64) int64 {
	m := target % numShards
	if m < 0 {
		m += numShards
	}
	return m
}

// sliceMessageIterator iterates a fixed snapshot slice of messages — used
// by the sync queue messenger, whose read side never mutates mid-
// superstep.
type sliceMessageIterator struct {
	values []float64
	pos    int
}

func newSliceMessageIterator(values []float64) *sliceMessageIterator {
	return &sliceMessageIterator{values: values}
}

func (it *sliceMessageIterator) Next() (float64, bool) {
	if it.pos >= len(it.values) {
		return 0, false
	}
	v := it.values[it.pos]
	it.pos++
	return v, true
}

func (it *sliceMessageIterator) IsEmpty() bool { return len(it.values) == 0 }

func (it *sliceMessageIterator) Reset() { it.pos = 0 }

func (it *sliceMessageIterator) Sender() (int64, bool) { return 0, false }

// emptyMessageIterator is the shared zero-message iterator.
type emptyMessageIterator struct{}

func (emptyMessageIterator) Next() (float64, bool)    { return 0, false }
func (emptyMessageIterator) IsEmpty() bool            { return true }
func (emptyMessageIterator) Reset()                   {}
func (emptyMessageIterator) Sender() (int64, bool)    { return 0, false }

var emptyMessages MessageIterator = emptyMessageIterator{}
