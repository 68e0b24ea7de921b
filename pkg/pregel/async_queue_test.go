package pregel

import "testing"

func TestAsyncQueueMessenger_VisibleSameSuperstep(t *testing.T) {
	m := NewAsyncQueueMessenger(4)
	m.InitIteration(0)

	m.SendTo(0, true, 1, 7.0)
	if m.IsEmpty(1) {
		t.Fatalf("async send must be visible immediately in the same superstep")
	}
	it := m.Messages(1)
	v, ok := it.Next()
	if !ok || v != 7.0 {
		t.Fatalf("Next() = (%v, %v), want (7.0, true)", v, ok)
	}
}

func TestAsyncQueueMessenger_DestructiveConsumption(t *testing.T) {
	m := NewAsyncQueueMessenger(2)
	m.InitIteration(0)
	m.SendTo(0, true, 0, 1.0)
	m.SendTo(0, true, 0, 2.0)

	it := m.Messages(0)
	v1, _ := it.Next()
	if v1 != 1.0 {
		t.Fatalf("first value = %v, want 1.0", v1)
	}

	// A second send interleaved with partial consumption must still
	// surface via the same iterator contract.
	m.SendTo(0, true, 0, 3.0)

	it2 := m.Messages(0)
	var sum float64
	for {
		v, ok := it2.Next()
		if !ok {
			break
		}
		sum += v
	}
	if sum != 5.0 {
		t.Fatalf("remaining sum = %v, want 5.0 (2.0+3.0)", sum)
	}
	if !m.IsEmpty(0) {
		t.Fatalf("buffer should be fully consumed")
	}
}

func TestAsyncQueueMessenger_CompactionPreservesPending(t *testing.T) {
	m := NewAsyncQueueMessenger(1)
	m.InitIteration(0)
	for i := 0; i < 10; i++ {
		m.SendTo(0, true, 0, float64(i))
	}
	it := m.Messages(0)
	for i := 0; i < 9; i++ {
		it.Next()
	}
	m.InitIteration(1)
	if m.IsEmpty(0) {
		t.Fatalf("one message should remain pending after compaction")
	}
	v, ok := m.Messages(0).Next()
	if !ok || v != 9.0 {
		t.Fatalf("Next() = (%v, %v), want (9.0, true)", v, ok)
	}
}
