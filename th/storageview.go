package th

/*
#include "thstorage.h"
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// LongStorageView presents a Go slice of int64 values -- typically the sizes
// or strides of a tensor -- as a THLongStorage, without copying the data.
// It is the bridge used wherever TH takes a THSize or THStride argument.
//
// The view borrows the slice: it must not outlive it, and TH only reads it.
// The bookkeeping fields of the THLongStorage (refcount, flag, allocator)
// are left neutral, so TH never tries to retain or free the storage through
// this path.
//
// Views are transient: build one immediately before a TH call and drop it
// right after. The pointer returned by CPointer aliases either ref's backing
// array or the view itself; keep both alive across the call
// (runtime.KeepAlive), and pin them when required by the cgo pointer passing
// rules.
type LongStorageView struct {
	storage C.THLongStorage

	// one backs the storage when an empty ref is normalized to [1].
	one C.int64_t

	// ref keeps the borrowed backing array reachable for the view's lifetime.
	ref []int64

	emptyToNull bool
}

// MakeLongStorageView wraps ref as a THLongStorage.
//
// zeroDimToOne converts an empty ref into [1]: zero-dim tensors get allocated
// as 1-dim inside TH. emptyToNull converts an empty ref into a NULL
// THLongStorage pointer at conversion time. At most one of the two may be
// set; setting both is a programming error and panics.
func MakeLongStorageView(ref []int64, zeroDimToOne, emptyToNull bool) *LongStorageView {
	if zeroDimToOne && emptyToNull {
		panic(fmt.Sprintf("th.MakeLongStorageView: zeroDimToOne and emptyToNull are mutually exclusive (ref=%v)", ref))
	}
	v := &LongStorageView{ref: ref, emptyToNull: emptyToNull}
	if zeroDimToOne && len(ref) == 0 {
		v.one = 1
		v.storage.data = &v.one
		v.storage.size = 1
	} else {
		v.storage.data = (*C.int64_t)(unsafe.Pointer(unsafe.SliceData(ref)))
		v.storage.size = C.ptrdiff_t(len(ref))
	}
	// Neutral bookkeeping: TH must not refcount nor free through this view.
	v.storage.refcount = 0
	v.storage.flag = 0
	v.storage.allocator = nil
	v.storage.allocatorContext = nil
	return v
}

// cStorage is the conversion handed to TH calls: a *C.THLongStorage, or nil
// when an empty view was built with emptyToNull. It is idempotent and has no
// side effects.
func (v *LongStorageView) cStorage() *C.THLongStorage {
	if v.emptyToNull && v.storage.size == 0 {
		return nil
	}
	return &v.storage
}

// CPointer returns the THLongStorage pointer to pass to TH, as an
// unsafe.Pointer. It is nil when an empty view was built with emptyToNull.
//
// The pointer is only valid while the view (and the slice it borrows) are
// alive; do not retain it past the TH call it was built for.
func (v *LongStorageView) CPointer() unsafe.Pointer {
	return unsafe.Pointer(v.cStorage())
}

// Len returns the number of elements the THLongStorage advertises to TH --
// after normalization, so an empty ref built with zeroDimToOne reports 1.
func (v *LongStorageView) Len() int {
	return int(v.storage.size)
}

// Ints returns the elements the THLongStorage exposes to TH, aliasing the
// same memory (ref's backing array, or the embedded normalization cell).
// It returns nil for length-0 views.
func (v *LongStorageView) Ints() []int64 {
	if v.storage.size == 0 {
		return nil
	}
	return cDataToSlice[int64](unsafe.Pointer(v.storage.data), int(v.storage.size))
}

// bookkeeping returns the refcount, flag and allocator fields of the
// underlying THLongStorage, for tests.
func (v *LongStorageView) bookkeeping() (refcount int, flag byte, allocator, allocatorContext unsafe.Pointer) {
	return int(v.storage.refcount), byte(v.storage.flag),
		unsafe.Pointer(v.storage.allocator), v.storage.allocatorContext
}

// dataPointer returns the THLongStorage data field, for tests: unlike Ints it
// is meaningful even for length-0 views.
func (v *LongStorageView) dataPointer() unsafe.Pointer {
	return unsafe.Pointer(v.storage.data)
}
