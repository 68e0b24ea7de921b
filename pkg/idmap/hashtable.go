package idmap

import "github.com/cespare/xxhash/v2"

// openTable is an open-addressed int64 -> int64 hash table using xxhash of
// the key's byte representation for bucket placement, and linear probing on
// collision. It exists so IdMap.ToMapped's hot-path lookup doesn't depend
// on the hash quality or iteration-order guarantees of Go's built-in map —
// xxhash gives a known-good avalanche for the dense, often-sequential
// original ids importers tend to hand in.
type openTable struct {
	keys     []int64
	values   []int64
	occupied []bool
	count    int
}

const emptyKey = int64(-1) // original ids are assumed non-negative (spec: external ids)

func newOpenTable(expectedSize int64) *openTable {
	capacity := nextPowerOfTwo(expectedSize*2 + 1)
	if capacity < 16 {
		capacity = 16
	}
	t := &openTable{
		keys:     make([]int64, capacity),
		values:   make([]int64, capacity),
		occupied: make([]bool, capacity),
	}
	for i := range t.keys {
		t.keys[i] = emptyKey
	}
	return t
}

func nextPowerOfTwo(n int64) int64 {
	if n < 1 {
		return 1
	}
	p := int64(1)
	for p < n {
		p <<= 1
	}
	return p
}

func hashKey(key int64) uint64 {
	var buf [8]byte
	u := uint64(key)
	for i := 0; i < 8; i++ {
		buf[i] = byte(u >> (8 * i))
	}
	return xxhash.Sum64(buf[:])
}

func (t *openTable) bucket(key int64) int {
	return int(hashKey(key) & uint64(len(t.keys)-1))
}

// maxLoadFactor bounds occupied/capacity before Put triggers a grow-and-
// rehash; keeping load below 0.7 keeps probe chains short.
const maxLoadFactor = 0.7

// Put inserts or overwrites key -> value, growing and rehashing the table
// first if it has reached maxLoadFactor. expectedSize passed to
// newOpenTable is only a sizing hint for the common case (an importer that
// knows its node count up front); Put remains correct for builders that
// exceed it.
func (t *openTable) Put(key, value int64) {
	if float64(t.count+1) > maxLoadFactor*float64(len(t.keys)) {
		t.grow()
	}
	t.insert(key, value)
}

func (t *openTable) insert(key, value int64) {
	idx := t.bucket(key)
	for {
		if !t.occupied[idx] {
			t.keys[idx] = key
			t.values[idx] = value
			t.occupied[idx] = true
			t.count++
			return
		}
		if t.keys[idx] == key {
			t.values[idx] = value
			return
		}
		idx = (idx + 1) & (len(t.keys) - 1)
	}
}

func (t *openTable) grow() {
	oldKeys, oldValues, oldOccupied := t.keys, t.values, t.occupied
	newCapacity := int64(len(t.keys)) * 2

	t.keys = make([]int64, newCapacity)
	t.values = make([]int64, newCapacity)
	t.occupied = make([]bool, newCapacity)
	for i := range t.keys {
		t.keys[i] = emptyKey
	}
	t.count = 0

	for i, occ := range oldOccupied {
		if occ {
			t.insert(oldKeys[i], oldValues[i])
		}
	}
}

// Get returns the value for key and whether it was found.
func (t *openTable) Get(key int64) (int64, bool) {
	idx := t.bucket(key)
	for i := 0; i < len(t.keys); i++ {
		if !t.occupied[idx] {
			return 0, false
		}
		if t.keys[idx] == key {
			return t.values[idx], true
		}
		idx = (idx + 1) & (len(t.keys) - 1)
	}
	return 0, false
}

func (t *openTable) Len() int { return t.count }
