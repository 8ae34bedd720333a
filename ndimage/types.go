// Package ndimage defines the in-memory N-dimensional image carrier
// consumed by the lvlregions algorithms: sizes, strides, scalar element
// type and raster-order iteration.
package ndimage

import "errors"

// Sentinel errors for image construction.
var (
	// ErrEmptySizes indicates an image with no dimensions was requested.
	ErrEmptySizes = errors.New("ndimage: sizes must contain at least one dimension")
	// ErrBadSize indicates a dimension extent smaller than one.
	ErrBadSize = errors.New("ndimage: every dimension extent must be at least 1")
	// ErrBadStrides indicates a strides array whose length differs from sizes.
	ErrBadStrides = errors.New("ndimage: strides length must equal sizes length")
	// ErrBadOrigin indicates a strides/origin combination that addresses
	// storage below offset zero.
	ErrBadOrigin = errors.New("ndimage: origin and strides address negative offsets")
	// ErrBadDataType indicates an unknown DataType value.
	ErrBadDataType = errors.New("ndimage: unknown data type")
	// ErrBadTensor indicates a tensor-element count smaller than one.
	ErrBadTensor = errors.New("ndimage: tensor element count must be at least 1")
)

// DataType enumerates the scalar element types an Image can hold.
//
// Binary images hold 0/1 values; the unsigned family holds object labels;
// the float family holds grey (real-valued) data.
type DataType int

const (
	// Binary is a two-valued image: 0 = background, 1 = foreground.
	Binary DataType = iota
	// UInt8 is an 8-bit unsigned label image.
	UInt8
	// UInt16 is a 16-bit unsigned label image.
	UInt16
	// UInt32 is a 32-bit unsigned label image.
	UInt32
	// UInt64 is a 64-bit unsigned label image.
	UInt64
	// Float32 is a single-precision real-valued (grey) image.
	Float32
	// Float64 is a double-precision real-valued (grey) image.
	Float64
)

// Label is the dedicated element type of freshly produced label images.
const Label = UInt32

// IsBinary reports whether dt is the binary type.
func (dt DataType) IsBinary() bool { return dt == Binary }

// IsUnsigned reports whether dt belongs to the unsigned-integer (label)
// family. Binary is not part of the family: a binary image is input to
// labeling, never a labeled image itself.
func (dt DataType) IsUnsigned() bool {
	return dt == UInt8 || dt == UInt16 || dt == UInt32 || dt == UInt64
}

// IsReal reports whether dt belongs to the real-valued (grey) family.
func (dt DataType) IsReal() bool { return dt == Float32 || dt == Float64 }

// valid reports whether dt is one of the declared DataType constants.
func (dt DataType) valid() bool { return dt >= Binary && dt <= Float64 }

// MaxLabel returns the largest label value representable by dt.
// Meaningful for the unsigned family only.
func (dt DataType) MaxLabel() uint64 {
	switch dt {
	case Binary:
		return 1
	case UInt8:
		return 1<<8 - 1
	case UInt16:
		return 1<<16 - 1
	case UInt32:
		return 1<<32 - 1
	default:
		return 1<<64 - 1
	}
}
