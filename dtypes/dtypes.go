// Package dtypes defines the scalar types supported by the legacy TH storage
// ABI, and properties used when converting values in-between Go and TH.
package dtypes

import (
	"math"
	"reflect"
	"strings"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
	"github.com/x448/float16"
)

// DType is the type of the scalar elements stored in a TH storage.
//
// The zero value is InvalidDType.
type DType int

const (
	InvalidDType DType = iota
	Uint8
	Int8
	Int16
	Int32
	Int64
	Float16
	Float32
	Float64
)

// Aliases to the names used by the TH library itself: each dtype maps to one
// TH<Name>Storage / TH<Name>Tensor family of C types.
const (
	Byte   = Uint8
	Char   = Int8
	Short  = Int16
	Int    = Int32
	Long   = Int64
	Half   = Float16
	Float  = Float32
	Double = Float64
)

// dtypeNames are the primary (Go-style) names, indexed by DType.
var dtypeNames = [...]string{
	InvalidDType: "InvalidDType",
	Uint8:        "Uint8",
	Int8:         "Int8",
	Int16:        "Int16",
	Int32:        "Int32",
	Int64:        "Int64",
	Float16:      "Float16",
	Float32:      "Float32",
	Float64:      "Float64",
}

// thNames are the names TH uses for the same types, indexed by DType.
var thNames = [...]string{
	InvalidDType: "Invalid",
	Uint8:        "Byte",
	Int8:         "Char",
	Int16:        "Short",
	Int32:        "Int",
	Int64:        "Long",
	Float16:      "Half",
	Float32:      "Float",
	Float64:      "Double",
}

// String implements fmt.Stringer, and returns the Go-style name of the dtype.
func (dtype DType) String() string {
	if dtype < 0 || int(dtype) >= len(dtypeNames) {
		return "InvalidDType"
	}
	return dtypeNames[dtype]
}

// THName returns the name TH uses for the dtype, e.g. "Long" for Int64.
func (dtype DType) THName() string {
	if dtype < 0 || int(dtype) >= len(thNames) {
		return "Invalid"
	}
	return thNames[dtype]
}

// IsValid reports whether the dtype is one of the supported TH scalar types.
func (dtype DType) IsValid() bool {
	return dtype > InvalidDType && int(dtype) < len(dtypeNames)
}

// IsFloat returns whether dtype is a float type.
func (dtype DType) IsFloat() bool {
	return dtype == Float16 || dtype == Float32 || dtype == Float64
}

// IsInt returns whether dtype is an integer type.
func (dtype DType) IsInt() bool {
	switch dtype {
	case Uint8, Int8, Int16, Int32, Int64:
		return true
	}
	return false
}

// Memory returns the number of bytes used to store one element of the given
// dtype. Returns 0 for InvalidDType.
func (dtype DType) Memory() uintptr {
	switch dtype {
	case Uint8, Int8:
		return 1
	case Int16, Float16:
		return 2
	case Int32, Float32:
		return 4
	case Int64, Float64:
		return 8
	}
	return 0
}

// GoType returns the Go type used to represent one element of the given
// dtype. Float16 is represented as a float16.Float16.
// Returns nil for InvalidDType.
func (dtype DType) GoType() reflect.Type {
	switch dtype {
	case Uint8:
		return reflect.TypeOf(uint8(0))
	case Int8:
		return reflect.TypeOf(int8(0))
	case Int16:
		return reflect.TypeOf(int16(0))
	case Int32:
		return reflect.TypeOf(int32(0))
	case Int64:
		return reflect.TypeOf(int64(0))
	case Float16:
		return reflect.TypeOf(float16.Float16(0))
	case Float32:
		return reflect.TypeOf(float32(0))
	case Float64:
		return reflect.TypeOf(float64(0))
	}
	return nil
}

// HighestValue for dtype converted to the corresponding Go type.
// For float dtypes, it returns positive infinity.
func (dtype DType) HighestValue() any {
	switch dtype {
	case Uint8:
		return uint8(math.MaxUint8)
	case Int8:
		return int8(math.MaxInt8)
	case Int16:
		return int16(math.MaxInt16)
	case Int32:
		return int32(math.MaxInt32)
	case Int64:
		return int64(math.MaxInt64)
	case Float16:
		return float16.Inf(1)
	case Float32:
		return math32.Inf(1)
	case Float64:
		return math.Inf(1)
	}
	return nil
}

// LowestValue for dtype converted to the corresponding Go type.
// For float dtypes, it returns negative infinity.
func (dtype DType) LowestValue() any {
	switch dtype {
	case Uint8:
		return uint8(0)
	case Int8:
		return int8(math.MinInt8)
	case Int16:
		return int16(math.MinInt16)
	case Int32:
		return int32(math.MinInt32)
	case Int64:
		return int64(math.MinInt64)
	case Float16:
		return float16.Inf(-1)
	case Float32:
		return math32.Inf(-1)
	case Float64:
		return math.Inf(-1)
	}
	return nil
}

// SmallestNonZeroValueForDType returns the smallest non-zero value for the
// dtype. For integer types it returns 1 converted to the corresponding Go
// type.
func (dtype DType) SmallestNonZeroValueForDType() any {
	switch dtype {
	case Uint8:
		return uint8(1)
	case Int8:
		return int8(1)
	case Int16:
		return int16(1)
	case Int32:
		return int32(1)
	case Int64:
		return int64(1)
	case Float16:
		return float16.Frombits(0x0001)
	case Float32:
		return float32(math32.SmallestNonzeroFloat32)
	case Float64:
		return math.SmallestNonzeroFloat64
	}
	return nil
}

// MapOfNames maps the various names (Go-style, TH-style and their lowercase
// forms) to their dtypes.
var MapOfNames = map[string]DType{}

func init() {
	for dtype := Uint8; dtype <= Float64; dtype++ {
		for _, name := range []string{dtype.String(), dtype.THName()} {
			MapOfNames[name] = dtype
			MapOfNames[strings.ToLower(name)] = dtype
		}
	}
}

// FromName returns the dtype for the given name, accepting both the Go-style
// names ("Int64") and the TH names ("Long"), case-insensitive.
func FromName(name string) (DType, error) {
	dtype, ok := MapOfNames[name]
	if !ok {
		dtype, ok = MapOfNames[strings.ToLower(name)]
	}
	if !ok {
		return InvalidDType, errors.Errorf("unknown dtype name %q", name)
	}
	return dtype, nil
}
