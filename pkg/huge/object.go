package huge

// HugeObjectArray is a paged/single array of an arbitrary element type T,
// addressable up to 2^63 elements. Used where a property column's element
// type isn't one of the scalar primitives — e.g. LongArray/DoubleArray
// property values, each element itself a slice.
type HugeObjectArray[T any] = Array[T]

// NewHugeObjectArray allocates a HugeObjectArray[T] of size elements, each
// the zero value of T.
func NewHugeObjectArray[T any](size int64) *HugeObjectArray[T] {
	return newArray[T](size)
}

// NewHugeObjectArrayWithDefault allocates a HugeObjectArray[T] of size
// elements, every element initialized to def.
func NewHugeObjectArrayWithDefault[T any](size int64, def T) *HugeObjectArray[T] {
	return newArrayWithDefault[T](size, def)
}
