package pregel

import (
	"sync"
	"testing"
)

func TestReducingMessenger_SumFoldsAllSendsToOneValue(t *testing.T) {
	m := NewReducingMessenger(2, SumReducer{}, false)
	m.InitIteration(0)
	m.SendTo(0, true, 1, 1.0)
	m.SendTo(0, true, 1, 2.0)
	m.SendTo(0, true, 1, 3.0)
	m.InitIteration(1)

	if m.IsEmpty(1) {
		t.Fatalf("target 1 received sends, must not be empty")
	}
	v, ok := m.Messages(1).Next()
	if !ok || v != 6.0 {
		t.Fatalf("reduced value = (%v, %v), want (6.0, true)", v, ok)
	}
}

func TestReducingMessenger_UntouchedTargetIsEmpty(t *testing.T) {
	m := NewReducingMessenger(2, SumReducer{}, false)
	m.InitIteration(0)
	m.SendTo(0, true, 1, 5.0)
	m.InitIteration(1)

	if !m.IsEmpty(0) {
		t.Fatalf("target 0 received no sends, must be empty")
	}
}

func TestReducingMessenger_ConcurrentSendsExactCount(t *testing.T) {
	const workers = 8
	const sendsPerWorker = 10000
	m := NewReducingMessenger(1, CountReducer{}, false)
	m.InitIteration(0)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < sendsPerWorker; i++ {
				m.SendTo(int64(w), true, 0, 0)
			}
		}()
	}
	wg.Wait()
	m.InitIteration(1)

	v, ok := m.Messages(0).Next()
	if !ok {
		t.Fatalf("expected a reduced value")
	}
	if int(v) != workers*sendsPerWorker {
		t.Fatalf("count = %v, want %v", v, workers*sendsPerWorker)
	}
}

func TestReducingMessenger_TrackSenderRecordsLastWriter(t *testing.T) {
	m := NewReducingMessenger(3, MaxReducer{}, true)
	m.InitIteration(0)
	m.SendTo(5, true, 0, 10.0)
	m.InitIteration(1)

	it := m.Messages(0)
	v, ok := it.Next()
	if !ok || v != 10.0 {
		t.Fatalf("value = (%v, %v), want (10.0, true)", v, ok)
	}
	sender, hasSender := it.Sender()
	if !hasSender || sender != 5 {
		t.Fatalf("sender = (%v, %v), want (5, true)", sender, hasSender)
	}
}
