package th

// Helpers for the two sequences TH storage views are built from: tensor
// sizes and tensor strides. Sizes and strides use opposite normalizations
// at the TH boundary, hence the two constructors.

// MakeSizesView wraps the dimensions of a tensor as a THLongStorage for a
// THSize argument. A zero-dim (scalar) tensor has no dimensions, but TH has
// no zero-dim tensors, so an empty sizes slice is presented as [1].
func MakeSizesView(sizes []int64) *LongStorageView {
	return MakeLongStorageView(sizes, true, false)
}

// MakeStridesView wraps the strides of a tensor as a THLongStorage for a
// THStride argument. TH treats a NULL stride storage as "compute contiguous
// strides", so an empty strides slice is presented as NULL.
func MakeStridesView(strides []int64) *LongStorageView {
	return MakeLongStorageView(strides, false, true)
}

// MakeContiguousStridesView builds the strides view for a contiguous tensor
// of the given sizes. The strides slice is owned by the returned view.
func MakeContiguousStridesView(sizes []int64) *LongStorageView {
	return MakeStridesView(ContiguousStrides(sizes))
}

// NumElements returns the number of elements of a tensor with the given
// sizes. A zero-dim (scalar) tensor has 1 element.
func NumElements(sizes []int64) int64 {
	n := int64(1)
	for _, dim := range sizes {
		n *= dim
	}
	return n
}

// ContiguousStrides returns the strides of a row-major contiguous tensor
// with the given sizes: strides[i] is the product of sizes[i+1:]. An empty
// sizes slice yields nil.
func ContiguousStrides(sizes []int64) []int64 {
	if len(sizes) == 0 {
		return nil
	}
	strides := make([]int64, len(sizes))
	stride := int64(1)
	for i := len(sizes) - 1; i >= 0; i-- {
		strides[i] = stride
		stride *= sizes[i]
	}
	return strides
}
