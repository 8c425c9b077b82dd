// Package goth provides low-level Go binding support for the legacy TH tensor
// library's C storage ABI.
//
// The actual bindings live in the sub-packages:
//
//   - github.com/gomlx/goth/th: the storage types. th.LongStorageView presents
//     a Go []int64 of tensor sizes or strides, without copying, as the
//     THLongStorage record that TH functions take for THSize/THStride
//     arguments. th.LongStorage is the owning counterpart, allocated on the
//     C heap and freed by the caller.
//   - github.com/gomlx/goth/dtypes: the TH scalar types (Byte, Char, Short,
//     Int, Long, Half, Float, Double) and their properties.
//
// Aliasing and lifetime rules: a LongStorageView borrows the slice it is
// given and the pointer it yields aliases either that slice's backing array
// or the view itself. Both must stay alive (and, when crossing into a C call,
// pinned per the cgo pointer passing rules) for as long as TH may read the
// storage. Views are meant to be built immediately before a TH call and
// discarded right after; they are not to be stored.
package goth
