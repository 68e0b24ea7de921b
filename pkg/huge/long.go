package huge

// HugeLongArray is a paged/single int64 array addressable up to 2^63
// elements. It is the primary backing store for Long-typed property
// columns and NodeValue columns.
type HugeLongArray = Array[int64]

// NewHugeLongArray allocates a HugeLongArray of size elements, zero-valued.
func NewHugeLongArray(size int64) *HugeLongArray {
	return newArray[int64](size)
}

// NewHugeLongArrayWithDefault allocates a HugeLongArray of size elements,
// every element initialized to def.
func NewHugeLongArrayWithDefault(size int64, def int64) *HugeLongArray {
	return newArrayWithDefault[int64](size, def)
}

// BinarySearchLong returns the index of target in a, assuming a's elements
// are sorted ascending, or -1 if not found. Ties resolve to the first
// matching index found by the search, not necessarily the leftmost.
func BinarySearchLong(a *HugeLongArray, target int64) int64 {
	lo, hi := int64(0), a.Size()-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		v, _ := a.Get(mid)
		switch {
		case v == target:
			return mid
		case v < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return -1
}
