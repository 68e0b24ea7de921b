package huge

import (
	"math"
	"sync/atomic"
)

// HugeAtomicDoubleArray is a paged float64 array with lock-free CAS-capable
// element access, addressable up to 2^63 elements. Go has no native
// atomic.Float64, so each element is stored as the IEEE 754 bit pattern in
// an atomic.Uint64; CompareAndSwap and FetchAdd compare/exchange those bits
// directly (bit-exact equality, not numeric tolerance).
type HugeAtomicDoubleArray struct {
	pages [][]atomic.Uint64
	size  int64
}

// NewHugeAtomicDoubleArray allocates a HugeAtomicDoubleArray of size
// elements, zero-valued.
func NewHugeAtomicDoubleArray(size int64) *HugeAtomicDoubleArray {
	a := &HugeAtomicDoubleArray{size: size}
	n := numPages(size)
	if n == 0 {
		n = 1
	}
	a.pages = make([][]atomic.Uint64, n)
	for i := range a.pages {
		pageLen := pageSize
		if int64(i+1)*pageSize > size {
			pageLen = int(size - int64(i)*pageSize)
		}
		if pageLen < 0 {
			pageLen = 0
		}
		a.pages[i] = make([]atomic.Uint64, pageLen)
	}
	return a
}

// NewHugeAtomicDoubleArrayWithDefault allocates a HugeAtomicDoubleArray of
// size elements, each initialized to def.
func NewHugeAtomicDoubleArrayWithDefault(size int64, def float64) *HugeAtomicDoubleArray {
	a := NewHugeAtomicDoubleArray(size)
	if def != 0 {
		a.Fill(def)
	}
	return a
}

// Size returns the fixed element count.
func (a *HugeAtomicDoubleArray) Size() int64 { return a.size }

func (a *HugeAtomicDoubleArray) cell(index int64) *atomic.Uint64 {
	return &a.pages[pageIndex(index)][indexInPage(index)]
}

// Load reads the element at index.
func (a *HugeAtomicDoubleArray) Load(index int64) (float64, error) {
	if err := checkBounds(index, a.size); err != nil {
		return 0, err
	}
	return math.Float64frombits(a.cell(index).Load()), nil
}

// Store writes v at index.
func (a *HugeAtomicDoubleArray) Store(index int64, v float64) error {
	if err := checkBounds(index, a.size); err != nil {
		return err
	}
	a.cell(index).Store(math.Float64bits(v))
	return nil
}

// CompareAndSwap atomically sets the element at index to newVal if its
// current bit pattern equals old's, returning whether the swap happened.
// The comparison is on raw bits, not IEEE 754 equality: a NaN matches a NaN
// with the identical bit pattern, and 0.0 and -0.0 do not match each other.
func (a *HugeAtomicDoubleArray) CompareAndSwap(index int64, old, newVal float64) (bool, error) {
	if err := checkBounds(index, a.size); err != nil {
		return false, err
	}
	return a.cell(index).CompareAndSwap(math.Float64bits(old), math.Float64bits(newVal)), nil
}

// FetchAdd atomically adds delta to the element at index and returns the
// value prior to the addition. Implemented as a CAS retry loop since there
// is no hardware atomic-add over floats.
func (a *HugeAtomicDoubleArray) FetchAdd(index int64, delta float64) (float64, error) {
	if err := checkBounds(index, a.size); err != nil {
		return 0, err
	}
	cell := a.cell(index)
	for {
		oldBits := cell.Load()
		oldVal := math.Float64frombits(oldBits)
		newVal := oldVal + delta
		if cell.CompareAndSwap(oldBits, math.Float64bits(newVal)) {
			return oldVal, nil
		}
	}
}

// Fill stores v into every element. Not atomic as a whole operation — only
// each individual element write is atomic.
func (a *HugeAtomicDoubleArray) Fill(v float64) {
	bits := math.Float64bits(v)
	for _, page := range a.pages {
		for i := range page {
			page[i].Store(bits)
		}
	}
}
