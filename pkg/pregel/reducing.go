package pregel

import "github.com/orneryd/gdscore/pkg/huge"

// ReducingMessenger is the atomic-scalar-reduction messenger: each target
// receives at most one reduced value per superstep, stored in a pair of
// HugeAtomicDoubleArrays (send/receive) that InitIteration swaps. SendTo
// performs a CAS retry loop via the configured Reducer instead of queueing
// individual messages, giving O(node_count) memory regardless of how many
// messages are sent — the point of this variant for dense messaging
// patterns like PageRank.
type ReducingMessenger struct {
	nodeCount   int64
	reducer     Reducer
	trackSender bool

	arrayA, arrayB   *huge.HugeAtomicDoubleArray
	sentA, sentB     *huge.HugeAtomicBitSet
	senderA, senderB *huge.HugeAtomicLongArray
	sendIsA          bool
}

// NewReducingMessenger allocates a ReducingMessenger sized for nodeCount
// nodes, using reducer to fold concurrent sends to the same target.
// trackSender additionally records the last-applied sender id per target,
// for reducers where "last writer" is a meaningful choice (Min/Max).
func NewReducingMessenger(nodeCount int64, reducer Reducer, trackSender bool) *ReducingMessenger {
	m := &ReducingMessenger{
		nodeCount:   nodeCount,
		reducer:     reducer,
		trackSender: trackSender,
		arrayA:      huge.NewHugeAtomicDoubleArrayWithDefault(nodeCount, reducer.Identity()),
		arrayB:      huge.NewHugeAtomicDoubleArrayWithDefault(nodeCount, reducer.Identity()),
		sentA:       huge.NewHugeAtomicBitSet(nodeCount),
		sentB:       huge.NewHugeAtomicBitSet(nodeCount),
		sendIsA:     true,
	}
	if trackSender {
		m.senderA = huge.NewHugeAtomicLongArray(nodeCount)
		m.senderB = huge.NewHugeAtomicLongArray(nodeCount)
	}
	return m
}

func (m *ReducingMessenger) sendArrays() (*huge.HugeAtomicDoubleArray, *huge.HugeAtomicBitSet, *huge.HugeAtomicLongArray) {
	if m.sendIsA {
		return m.arrayA, m.sentA, m.senderA
	}
	return m.arrayB, m.sentB, m.senderB
}

func (m *ReducingMessenger) receiveArrays() (*huge.HugeAtomicDoubleArray, *huge.HugeAtomicBitSet, *huge.HugeAtomicLongArray) {
	if m.sendIsA {
		return m.arrayB, m.sentB, m.senderB
	}
	return m.arrayA, m.sentA, m.senderA
}

// InitIteration swaps send and receive, then resets the new send side to
// the reducer's identity value with all sent-bits cleared.
func (m *ReducingMessenger) InitIteration(iteration uint32) {
	m.sendIsA = !m.sendIsA
	array, sent, _ := m.sendArrays()
	array.Fill(m.reducer.Identity())
	sent.ClearAll()
}

// SendTo folds msg into target's current-superstep reduced value via a CAS
// retry loop, safe for concurrent callers.
func (m *ReducingMessenger) SendTo(source int64, hasSource bool, target int64, msg float64) {
	array, sent, sender := m.sendArrays()
	for {
		current, _ := array.Load(target)
		reduced := m.reducer.Reduce(current, msg)
		if swapped, _ := array.CompareAndSwap(target, current, reduced); swapped {
			break
		}
	}
	_ = sent.Set(target)
	if m.trackSender && hasSource && sender != nil {
		_ = sender.Store(target, source)
	}
}

// Messages returns an iterator yielding the single reduced value visible
// to target this superstep, or nothing if target received no sends.
func (m *ReducingMessenger) Messages(target int64) MessageIterator {
	array, sent, sender := m.receiveArrays()
	isSet, _ := sent.Get(target)
	if !isSet {
		return emptyMessages
	}
	value, _ := array.Load(target)
	it := &reducedMessageIterator{value: value, hasValue: true}
	if m.trackSender && sender != nil {
		s, _ := sender.Load(target)
		it.sender = s
		it.hasSender = true
	}
	return it
}

// IsEmpty reports whether target received no sends during the superstep
// whose results are currently visible.
func (m *ReducingMessenger) IsEmpty(target int64) bool {
	_, sent, _ := m.receiveArrays()
	isSet, _ := sent.Get(target)
	return !isSet
}

// Release drops the reduction arrays.
func (m *ReducingMessenger) Release() {
	m.arrayA, m.arrayB = nil, nil
	m.sentA, m.sentB = nil, nil
	m.senderA, m.senderB = nil, nil
}

type reducedMessageIterator struct {
	value     float64
	hasValue  bool
	sender    int64
	hasSender bool
}

func (it *reducedMessageIterator) Next() (float64, bool) {
	if !it.hasValue {
		return 0, false
	}
	it.hasValue = false
	return it.value, true
}

func (it *reducedMessageIterator) IsEmpty() bool { return !it.hasValue }

func (it *reducedMessageIterator) Reset() { it.hasValue = true }

func (it *reducedMessageIterator) Sender() (int64, bool) { return it.sender, it.hasSender }
