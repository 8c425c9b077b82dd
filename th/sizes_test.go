package th

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNumElements(t *testing.T) {
	require.Equal(t, int64(1), NumElements(nil)) // scalar
	require.Equal(t, int64(5), NumElements([]int64{5}))
	require.Equal(t, int64(32), NumElements([]int64{4, 8}))
	require.Equal(t, int64(0), NumElements([]int64{2, 0, 3}))
}

func TestContiguousStrides(t *testing.T) {
	require.Nil(t, ContiguousStrides(nil))
	require.Equal(t, []int64{1}, ContiguousStrides([]int64{5}))
	require.Equal(t, []int64{12, 4, 1}, ContiguousStrides([]int64{2, 3, 4}))
}

func TestMakeSizesView(t *testing.T) {
	// Scalars are presented to TH as 1-dim of size 1.
	v := MakeSizesView(nil)
	require.Equal(t, 1, v.Len())
	require.Equal(t, []int64{1}, v.Ints())
	require.NotNil(t, v.CPointer())

	sizes := []int64{3, 4}
	v = MakeSizesView(sizes)
	require.Equal(t, 2, v.Len())
	require.Equal(t, unsafe.Pointer(&sizes[0]), v.dataPointer())
}

func TestMakeStridesView(t *testing.T) {
	// Missing strides are presented to TH as NULL.
	require.Nil(t, MakeStridesView(nil).CPointer())

	strides := []int64{12, 4, 1}
	v := MakeStridesView(strides)
	require.Equal(t, 3, v.Len())
	require.Equal(t, unsafe.Pointer(&strides[0]), v.dataPointer())
}

func TestMakeContiguousStridesView(t *testing.T) {
	v := MakeContiguousStridesView([]int64{2, 3, 4})
	require.Equal(t, []int64{12, 4, 1}, v.Ints())

	require.Nil(t, MakeContiguousStridesView(nil).CPointer())
}
