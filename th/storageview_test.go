package th

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestLongStorageView_AliasesNonEmpty(t *testing.T) {
	src := []int64{4, 8}
	for _, flags := range [][2]bool{{false, false}, {true, false}, {false, true}} {
		v := MakeLongStorageView(src, flags[0], flags[1])
		require.Equal(t, 2, v.Len())
		require.Equal(t, unsafe.Pointer(&src[0]), v.dataPointer())
		require.NotNil(t, v.CPointer())
		require.Equal(t, []int64{4, 8}, v.Ints())
	}

	// No copy is made: writes to the source are seen through the view.
	v := MakeLongStorageView(src, false, false)
	src[0] = 7
	require.Equal(t, []int64{7, 8}, v.Ints())
}

func TestLongStorageView_ZeroDimToOne(t *testing.T) {
	src := []int64{}
	v := MakeLongStorageView(src, true, false)
	require.Equal(t, 1, v.Len())
	require.Equal(t, []int64{1}, v.Ints())
	require.NotNil(t, v.CPointer())

	// The singleton cell is the view's own, not the (empty) source memory.
	require.NotNil(t, v.dataPointer())
	require.NotEqual(t, unsafe.Pointer(unsafe.SliceData(src)), v.dataPointer())

	// A non-empty source is never normalized.
	src2 := []int64{3}
	v2 := MakeLongStorageView(src2, true, false)
	require.Equal(t, 1, v2.Len())
	require.Equal(t, unsafe.Pointer(&src2[0]), v2.dataPointer())
}

func TestLongStorageView_EmptyToNull(t *testing.T) {
	v := MakeLongStorageView(nil, false, true)
	require.Nil(t, v.CPointer())
	require.Equal(t, 0, v.Len())
	require.Nil(t, v.Ints())

	// Only empty views collapse to NULL.
	v2 := MakeLongStorageView([]int64{4, 8}, false, true)
	require.NotNil(t, v2.CPointer())
	require.Equal(t, 2, v2.Len())
}

func TestLongStorageView_EmptyNoFlags(t *testing.T) {
	src := []int64{}
	v := MakeLongStorageView(src, false, false)
	require.Equal(t, 0, v.Len())
	require.Nil(t, v.Ints())
	require.NotNil(t, v.CPointer())
	require.Equal(t, unsafe.Pointer(unsafe.SliceData(src)), v.dataPointer())
}

func TestLongStorageView_BothFlagsPanic(t *testing.T) {
	for _, src := range [][]int64{nil, {}, {4, 8}} {
		require.Panics(t, func() { MakeLongStorageView(src, true, true) })
	}
}

func TestLongStorageView_ConversionIdempotent(t *testing.T) {
	v := MakeLongStorageView([]int64{4, 8}, false, false)
	require.Equal(t, v.CPointer(), v.CPointer())
	require.Equal(t, v.Len(), v.Len())

	vNull := MakeLongStorageView(nil, false, true)
	require.Nil(t, vNull.CPointer())
	require.Nil(t, vNull.CPointer())
}

func TestLongStorageView_NeutralBookkeeping(t *testing.T) {
	views := []*LongStorageView{
		MakeLongStorageView([]int64{4, 8}, false, false),
		MakeLongStorageView(nil, true, false),
		MakeLongStorageView(nil, false, true),
		MakeLongStorageView(nil, false, false),
	}
	for _, v := range views {
		refcount, flag, allocator, allocatorContext := v.bookkeeping()
		require.Zero(t, refcount)
		require.Zero(t, flag)
		require.Nil(t, allocator)
		require.Nil(t, allocatorContext)
	}
}

func BenchmarkMakeLongStorageView(b *testing.B) {
	sizes := []int64{2, 3, 5, 7}
	for i := 0; i < b.N; i++ {
		v := MakeLongStorageView(sizes, true, false)
		if v.Len() != 4 {
			b.Fatal("wrong view length")
		}
	}
}
