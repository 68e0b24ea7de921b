// Package huge implements the paged/atomic primitive array family that
// backs every property column and NodeValue column in gdscore: arrays that
// can address up to 2^63 elements without ever allocating a single
// contiguous Go slice of that size.
//
// Two layouts are supported per element type:
//   - single: one contiguous slice, used when size fits comfortably in one
//     Go allocation (at most pageSize elements).
//   - paged: a slice of fixed-size pages (pageSize elements each), used once
//     size exceeds a single page. Growth is never in-place; callers get a
//     new array instead.
//
// Atomic variants (HugeAtomicLongArray, HugeAtomicDoubleArray) are a
// separate family: they expose compare-and-swap primitives instead of bare
// get/set, and deliberately do not implement the Cursor interface, since a
// raw slice handed out by a cursor would let a reader observe a torn,
// non-atomic value.
package huge

import "github.com/orneryd/gdscore/pkg/gdserrors"

// pageSize is the element count per page in the paged layout. 4096 is a
// typical default, and keeps each page's backing array comfortably inside
// a single size class for the allocator.
const pageSize = 4096

// pageSizeFor returns the layout decision for a given total size: arrays at
// or below one page use the single (contiguous) layout, larger arrays page.
func pageSizeFor(size int64) bool {
	return size > pageSize
}

func numPages(size int64) int {
	if size == 0 {
		return 0
	}
	return int((size + pageSize - 1) / pageSize)
}

func pageIndex(index int64) int {
	return int(index / pageSize)
}

func indexInPage(index int64) int {
	return int(index % pageSize)
}

func checkBounds(index, size int64) error {
	if index < 0 || index >= size {
		return gdserrors.NewIndexOutOfBounds(index, size)
	}
	return nil
}
