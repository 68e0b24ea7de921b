package huge

// Array is the generic paged/single primitive array underlying
// HugeLongArray, HugeDoubleArray, and HugeObjectArray[T]. Those three are
// instantiations of this one generic core rather than three hand-copied
// implementations, the same type-parameterization tradeoff used for the
// triadic property store.
type Array[T any] struct {
	pages    [][]T
	single   bool
	size     int64
	capacity int64
}

// newArray allocates an Array of the given size, zero-valued.
func newArray[T any](size int64) *Array[T] {
	a := &Array[T]{size: size, capacity: size}
	a.single = !pageSizeFor(size)
	if a.single {
		a.pages = [][]T{make([]T, size)}
		return a
	}
	n := numPages(size)
	a.pages = make([][]T, n)
	for i := 0; i < n; i++ {
		pageLen := pageSize
		if i == n-1 {
			last := size - int64(i)*pageSize
			pageLen = int(last)
		}
		a.pages[i] = make([]T, pageLen)
	}
	return a
}

// newArrayWithDefault allocates an Array of the given size, every element
// initialized to def.
func newArrayWithDefault[T any](size int64, def T) *Array[T] {
	a := newArray[T](size)
	a.Fill(def)
	return a
}

// Size returns the fixed element count. It never changes post-construction;
// growing requires building a new array (Reserve only raises the number
// Capacity reports; it does not mutate Size).
func (a *Array[T]) Size() int64 { return a.size }

// Capacity returns Size, or the larger value last recorded by Reserve. It
// is a recorded number only: no backing pages exist beyond Size elements.
func (a *Array[T]) Capacity() int64 { return a.capacity }

// Get returns the element at index, or an IndexOutOfBounds error.
func (a *Array[T]) Get(index int64) (T, error) {
	var zero T
	if err := checkBounds(index, a.size); err != nil {
		return zero, err
	}
	return a.at(index), nil
}

// Set writes v at index, or returns an IndexOutOfBounds error.
func (a *Array[T]) Set(index int64, v T) error {
	if err := checkBounds(index, a.size); err != nil {
		return err
	}
	a.setAt(index, v)
	return nil
}

func (a *Array[T]) at(index int64) T {
	if a.single {
		return a.pages[0][index]
	}
	return a.pages[pageIndex(index)][indexInPage(index)]
}

func (a *Array[T]) setAt(index int64, v T) {
	if a.single {
		a.pages[0][index] = v
		return
	}
	a.pages[pageIndex(index)][indexInPage(index)] = v
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for _, page := range a.pages {
		for i := range page {
			page[i] = v
		}
	}
}

// Reserve records size()+additional as the array's Capacity when that is
// larger than the current value. It allocates no pages and never changes
// Size(); since Array.size is fixed post-construction, the recorded value
// only matters to callers building a successor array of a known eventual
// size.
func (a *Array[T]) Reserve(additional int64) {
	want := a.size + additional
	if want <= a.capacity {
		return
	}
	a.capacity = want
}

// Swap exchanges the elements at i and j.
func (a *Array[T]) Swap(i, j int64) error {
	vi, err := a.Get(i)
	if err != nil {
		return err
	}
	vj, err := a.Get(j)
	if err != nil {
		return err
	}
	a.setAt(i, vj)
	a.setAt(j, vi)
	return nil
}

// CopyFrom copies min(a.Size(), src.Size()) elements from src into a,
// starting at index 0 in both.
func (a *Array[T]) CopyFrom(src *Array[T]) {
	n := a.size
	if src.size < n {
		n = src.size
	}
	var i int64
	for i = 0; i < n; i++ {
		a.setAt(i, src.at(i))
	}
}

// NewCursor returns a fresh cursor bound to this array's full range.
func (a *Array[T]) NewCursor() *Cursor[T] {
	c := NewCursor[T]()
	c.Init(a.pages, a.single, a.size)
	return c
}

// InitCursor (re-)binds an existing cursor to this array's full range,
// avoiding a fresh allocation on repeated iteration.
func (a *Array[T]) InitCursor(c *Cursor[T]) {
	c.Init(a.pages, a.single, a.size)
}

// InitCursorRange (re-)binds an existing cursor to [start, end) of this
// array.
func (a *Array[T]) InitCursorRange(c *Cursor[T], start, end int64) {
	c.InitRange(a.pages, a.single, a.size, start, end)
}
