package huge

import "sync/atomic"

// HugeAtomicLongArray is a paged int64 array with lock-free CAS-capable
// element access, addressable up to 2^63 elements. It deliberately does not
// implement Cursor: handing out a raw []int64 slice over atomic.Int64
// storage would let a reader observe a torn or stale value outside the
// atomic discipline.
type HugeAtomicLongArray struct {
	pages [][]atomic.Int64
	size  int64
}

// NewHugeAtomicLongArray allocates a HugeAtomicLongArray of size elements,
// zero-valued.
func NewHugeAtomicLongArray(size int64) *HugeAtomicLongArray {
	a := &HugeAtomicLongArray{size: size}
	n := numPages(size)
	if n == 0 {
		n = 1
	}
	a.pages = make([][]atomic.Int64, n)
	for i := range a.pages {
		pageLen := pageSize
		if int64(i+1)*pageSize > size {
			pageLen = int(size - int64(i)*pageSize)
		}
		if pageLen < 0 {
			pageLen = 0
		}
		a.pages[i] = make([]atomic.Int64, pageLen)
	}
	return a
}

// NewHugeAtomicLongArrayWithDefault allocates a HugeAtomicLongArray of size
// elements, each initialized to def.
func NewHugeAtomicLongArrayWithDefault(size int64, def int64) *HugeAtomicLongArray {
	a := NewHugeAtomicLongArray(size)
	if def != 0 {
		a.Fill(def)
	}
	return a
}

// Size returns the fixed element count.
func (a *HugeAtomicLongArray) Size() int64 { return a.size }

func (a *HugeAtomicLongArray) cell(index int64) *atomic.Int64 {
	return &a.pages[pageIndex(index)][indexInPage(index)]
}

// Load reads the element at index with sequentially-consistent ordering.
func (a *HugeAtomicLongArray) Load(index int64) (int64, error) {
	if err := checkBounds(index, a.size); err != nil {
		return 0, err
	}
	return a.cell(index).Load(), nil
}

// Store writes v at index with sequentially-consistent ordering.
func (a *HugeAtomicLongArray) Store(index int64, v int64) error {
	if err := checkBounds(index, a.size); err != nil {
		return err
	}
	a.cell(index).Store(v)
	return nil
}

// CompareAndSwap atomically sets the element at index to newVal if its
// current value equals old, returning whether the swap happened.
func (a *HugeAtomicLongArray) CompareAndSwap(index int64, old, newVal int64) (bool, error) {
	if err := checkBounds(index, a.size); err != nil {
		return false, err
	}
	return a.cell(index).CompareAndSwap(old, newVal), nil
}

// FetchAdd atomically adds delta to the element at index and returns the
// value prior to the addition.
func (a *HugeAtomicLongArray) FetchAdd(index int64, delta int64) (int64, error) {
	if err := checkBounds(index, a.size); err != nil {
		return 0, err
	}
	newVal := a.cell(index).Add(delta)
	return newVal - delta, nil
}

// Fill stores v into every element. Not atomic as a whole operation — only
// each individual element write is atomic — so concurrent readers may
// observe a partially-filled array mid-call.
func (a *HugeAtomicLongArray) Fill(v int64) {
	for _, page := range a.pages {
		for i := range page {
			page[i].Store(v)
		}
	}
}
