package huge

// Cursor yields contiguous page-sized slices of a HugeLongArray,
// HugeDoubleArray, or HugeObjectArray[T], enabling zero-copy iteration. A
// cursor is single-pass: advancing with Next invalidates any slice returned
// by a prior Next. Atomic arrays do not implement this interface — see the
// package doc for why.
type Cursor[T any] struct {
	pages  [][]T
	single bool

	page   int
	offset int64 // global index of the start of the current page slice
	limit  int64 // global index one past the end of the current page slice
	end    int64 // global exclusive end of the cursor's bound range

	current []T
	started bool
}

// NewCursor returns a fresh, unbound cursor. It must be bound with Init or
// InitRange before Next is called.
func NewCursor[T any]() *Cursor[T] {
	return &Cursor[T]{}
}

// Init binds the cursor to the full range of the array.
func (c *Cursor[T]) Init(pages [][]T, single bool, size int64) {
	c.InitRange(pages, single, size, 0, size)
}

// InitRange binds the cursor to [start, end) of the array. Re-initializing
// a cursor resets it to single-pass state regardless of prior use.
func (c *Cursor[T]) InitRange(pages [][]T, single bool, size int64, start, end int64) {
	c.pages = pages
	c.single = single
	c.page = pageIndex(start)
	c.offset = start
	c.limit = start
	c.end = end
	c.current = nil
	c.started = false
}

// Next advances to the next page-sized slice within the cursor's bound
// range. It returns false once the range is exhausted; Array, Offset, and
// Limit are only valid after a call that returned true.
func (c *Cursor[T]) Next() bool {
	if c.limit >= c.end {
		c.current = nil
		return false
	}
	start := c.limit
	if !c.started {
		start = c.offset
		c.started = true
	}

	if c.single {
		page := c.pages[0]
		stop := c.end
		if stop > int64(len(page)) {
			stop = int64(len(page))
		}
		c.current = page[start:stop]
		c.offset = start
		c.limit = stop
		return len(c.current) > 0
	}

	pIdx := pageIndex(start)
	inPage := indexInPage(start)
	page := c.pages[pIdx]

	pageGlobalEnd := int64(pIdx+1) * pageSize
	stop := c.end
	if stop > pageGlobalEnd {
		stop = pageGlobalEnd
	}
	stopInPage := inPage + int(stop-start)

	c.current = page[inPage:stopInPage]
	c.offset = start
	c.limit = stop
	return len(c.current) > 0
}

// Array returns the slice for the current page. Valid only until the next
// call to Next or InitRange.
func (c *Cursor[T]) Array() []T { return c.current }

// Offset returns the global index of the first element in Array.
func (c *Cursor[T]) Offset() int64 { return c.offset }

// Limit returns the global index one past the last element in Array.
func (c *Cursor[T]) Limit() int64 { return c.limit }
