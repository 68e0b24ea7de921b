package huge

// HugeDoubleArray is a paged/single float64 array addressable up to 2^63
// elements. It is the primary backing store for Double-typed property
// columns and NodeValue columns.
type HugeDoubleArray = Array[float64]

// NewHugeDoubleArray allocates a HugeDoubleArray of size elements, zero-valued.
func NewHugeDoubleArray(size int64) *HugeDoubleArray {
	return newArray[float64](size)
}

// NewHugeDoubleArrayWithDefault allocates a HugeDoubleArray of size
// elements, every element initialized to def.
func NewHugeDoubleArrayWithDefault(size int64, def float64) *HugeDoubleArray {
	return newArrayWithDefault[float64](size, def)
}

// BinarySearchDouble returns the index of target in a, assuming a's
// elements are sorted ascending, or -1 if not found. Exact equality is
// required; callers searching for computed floats should round or use a
// tolerance before calling.
func BinarySearchDouble(a *HugeDoubleArray, target float64) int64 {
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
