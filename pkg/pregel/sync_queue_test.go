package pregel

import "testing"

func TestSyncQueueMessenger_VisibleNextSuperstepOnly(t *testing.T) {
	m := NewSyncQueueMessenger(4)

	m.InitIteration(0)
	m.SendTo(0, true, 1, 42.0)

	if !m.IsEmpty(1) {
		t.Fatalf("message sent during superstep 0 must not be visible in superstep 0")
	}

	m.InitIteration(1)
	if m.IsEmpty(1) {
		t.Fatalf("message sent during superstep 0 must be visible in superstep 1")
	}
	it := m.Messages(1)
	v, ok := it.Next()
	if !ok || v != 42.0 {
		t.Fatalf("Next() = (%v, %v), want (42.0, true)", v, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("expected exactly one message")
	}
}

func TestSyncQueueMessenger_MultipleMessagesPreserved(t *testing.T) {
	m := NewSyncQueueMessenger(2)
	m.InitIteration(0)
	m.SendTo(1, true, 0, 1.0)
	m.SendTo(1, true, 0, 2.0)
	m.InitIteration(1)

	var sum float64
	it := m.Messages(0)
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		sum += v
	}
	if sum != 3.0 {
		t.Fatalf("sum = %v, want 3.0", sum)
	}
}

func TestSyncQueueMessenger_ReleaseClearsBuffers(t *testing.T) {
	m := NewSyncQueueMessenger(2)
	m.InitIteration(0)
	m.SendTo(0, true, 1, 1.0)
	m.Release()
	if m.read != nil || m.write != nil {
		t.Fatalf("Release must nil out both buffers")
	}
}
