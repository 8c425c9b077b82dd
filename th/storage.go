package th

/*
#include "thstorage.h"
*/
import "C"
import (
	"runtime"
	"unsafe"

	"github.com/gomlx/goth/dtypes"
	"k8s.io/klog/v2"
)

// LongStorage is the owning counterpart of LongStorageView: a THLongStorage
// allocated on the C heap, together with its data, and freed by the caller
// with Free -- never by TH (the allocator fields stay NULL, so TH cannot
// release it either).
//
// Use it when the int64 data must survive past the current call stack, e.g.
// when a TH function retains the storage pointer. For transient THSize and
// THStride arguments, prefer LongStorageView, which does not copy.
type LongStorage struct {
	wrapper *longStorageWrapper
}

type longStorageWrapper struct {
	c     *C.THLongStorage
	stack []byte
}

// NewLongStorage allocates a THLongStorage on the C heap holding a copy of
// values. It must be freed with Free.
//
// If `withStack` is set to true, it also stores a stack of where it was
// created. This is used for debugging if it is garbage collected without
// being freed.
func NewLongStorage(values []int64, withStack bool) *LongStorage {
	c := cMalloc[C.THLongStorage]()
	n := len(values)
	if n > 0 {
		data := cMallocArray[C.int64_t](n)
		copy(cDataToSlice[int64](unsafe.Pointer(data), n), values)
		c.data = data
	}
	c.size = C.ptrdiff_t(n)
	c.refcount = 1
	s := &LongStorage{&longStorageWrapper{c: c}}
	if withStack {
		buf := make([]byte, 10*1024)
		n := runtime.Stack(buf, false)
		s.wrapper.stack = buf[:n]
	}
	runtime.AddCleanup(s, func(wrapper *longStorageWrapper) {
		if wrapper.c == nil {
			return // Correctly freed.
		}

		// We cannot free here: a TH call may still hold the pointer if the
		// user forgot a runtime.KeepAlive. A leak with a warning is better
		// than a use-after-free.
		if wrapper.stack == nil {
			klog.Errorf("th.LongStorage of %d elements garbage collected without being freed", wrapper.c.size)
		} else {
			klog.Errorf("th.LongStorage of %d elements garbage collected without being freed. Stack:\n%s\n", wrapper.c.size, wrapper.stack)
		}
	}, s.wrapper)
	return s
}

func (wrapper *longStorageWrapper) Free() {
	if wrapper.c == nil {
		return
	}
	if wrapper.c.data != nil {
		cFree(wrapper.c.data)
	}
	cFree(wrapper.c)
	wrapper.c = nil
}

// Free releases the C heap allocations.
// It sets the pointer to nil, so if it is called again, it is a no-op.
func (s *LongStorage) Free() {
	s.wrapper.Free()
}

// CPointer returns the THLongStorage pointer to pass to TH, as an
// unsafe.Pointer. Returns nil after Free.
func (s *LongStorage) CPointer() unsafe.Pointer {
	return unsafe.Pointer(s.wrapper.c)
}

// Len returns the number of elements held. Returns 0 after Free.
func (s *LongStorage) Len() int {
	if s.wrapper.c == nil {
		return 0
	}
	return int(s.wrapper.c.size)
}

// Ints returns the storage elements as a slice aliasing the C data.
//
// Ownership is not transferred: the slice is invalid after Free, and writes
// to it are seen by TH.
func (s *LongStorage) Ints() []int64 {
	c := s.wrapper.c
	if c == nil || c.size == 0 {
		return nil
	}
	return cDataToSlice[int64](unsafe.Pointer(c.data), int(c.size))
}

// Memory returns the number of bytes of C heap used by the storage data.
func (s *LongStorage) Memory() uintptr {
	return dtypes.Long.Memory() * uintptr(s.Len())
}
