package ndimage

// Image is an N-dimensional scalar buffer with explicit sizes and
// storage strides. It is the only data carrier the lvlregions
// algorithms operate on. Once built, sizes/strides/type never change;
// only element values do.
//
// Storage is a flat slice; the element at coordinates c lives at
// storage offset origin + Σ c[d]·strides[d]. Strides may be negative
// or non-contiguous (views), which is why algorithms address pixels
// through Offset/Iterator rather than assuming row-major layout.
//
// Binary and unsigned-integer data share the uints backing slice
// (binary as 0/1); real-valued data lives in floats.
type Image struct {
	sizes   []int
	strides []int
	origin  int
	tensor  int
	dtype   DataType
	uints   []uint64
	floats  []float64
}

// New constructs an image with normal (contiguous, dimension-0-fastest)
// strides, all elements zero.
// Returns ErrEmptySizes, ErrBadSize or ErrBadDataType on invalid input.
// Complexity: O(Πsizes) memory.
func New(sizes []int, dtype DataType) (*Image, error) {
	return newImage(sizes, nil, 0, dtype, 1)
}

// NewBinary constructs a zeroed binary image with normal strides.
func NewBinary(sizes []int) (*Image, error) { return New(sizes, Binary) }

// NewLabel constructs a zeroed label image of the dedicated Label type.
func NewLabel(sizes []int) (*Image, error) { return New(sizes, Label) }

// NewGrey constructs a zeroed double-precision grey image.
func NewGrey(sizes []int) (*Image, error) { return New(sizes, Float64) }

// NewWithStrides constructs an image over custom strides. origin is the
// storage offset of the all-zero coordinate; the backing slice is sized
// to cover every addressable element. Used to exercise non-contiguous
// and reversed views.
// Returns ErrBadStrides on length mismatch, ErrBadOrigin if any
// coordinate would address a negative offset.
func NewWithStrides(sizes, strides []int, origin int, dtype DataType) (*Image, error) {
	return newImage(sizes, strides, origin, dtype, 1)
}

// NewTensor constructs an image carrying tensor elements per pixel.
// The lvlregions operations reject tensor images (NotScalar); this
// constructor exists so callers holding tensor data can still share the
// type, and so the rejection paths are exercisable.
func NewTensor(sizes []int, dtype DataType, tensor int) (*Image, error) {
	return newImage(sizes, nil, 0, dtype, tensor)
}

// newImage validates and allocates. strides == nil means normal strides.
func newImage(sizes, strides []int, origin int, dtype DataType, tensor int) (*Image, error) {
	if len(sizes) == 0 {
		return nil, ErrEmptySizes
	}
	for _, s := range sizes {
		if s < 1 {
			return nil, ErrBadSize
		}
	}
	if !dtype.valid() {
		return nil, ErrBadDataType
	}
	if tensor < 1 {
		return nil, ErrBadTensor
	}
	d := len(sizes)
	sz := make([]int, d)
	copy(sz, sizes)

	var st []int
	if strides == nil {
		// Normal strides: dimension 0 fastest.
		st = make([]int, d)
		acc := tensor
		for i := 0; i < d; i++ {
			st[i] = acc
			acc *= sz[i]
		}
	} else {
		if len(strides) != d {
			return nil, ErrBadStrides
		}
		st = make([]int, d)
		copy(st, strides)
	}

	// Address range: walk the extreme corners per dimension.
	lo, hi := origin, origin
	for i := 0; i < d; i++ {
		span := (sz[i] - 1) * st[i]
		if span > 0 {
			hi += span
		} else {
			lo += span
		}
	}
	if lo < 0 {
		return nil, ErrBadOrigin
	}

	im := &Image{sizes: sz, strides: st, origin: origin, tensor: tensor, dtype: dtype}
	n := hi + tensor
	if dtype.IsReal() {
		im.floats = make([]float64, n)
	} else {
		im.uints = make([]uint64, n)
	}

	return im, nil
}

// Sizes returns a copy of the per-dimension extents.
func (im *Image) Sizes() []int {
	out := make([]int, len(im.sizes))
	copy(out, im.sizes)

	return out
}

// Size returns the extent of dimension d.
func (im *Image) Size(d int) int { return im.sizes[d] }

// Strides returns a copy of the per-dimension storage strides.
func (im *Image) Strides() []int {
	out := make([]int, len(im.strides))
	copy(out, im.strides)

	return out
}

// Dimensionality returns the number of dimensions (≥ 1).
func (im *Image) Dimensionality() int { return len(im.sizes) }

// DataType returns the scalar element type.
func (im *Image) DataType() DataType { return im.dtype }

// TensorElements returns the number of tensor elements per pixel.
func (im *Image) TensorElements() int { return im.tensor }

// IsScalar reports whether the image holds exactly one sample per pixel.
func (im *Image) IsScalar() bool { return im.tensor == 1 }

// NumPixels returns the total pixel count, the product of all extents.
func (im *Image) NumPixels() int {
	n := 1
	for _, s := range im.sizes {
		n *= s
	}

	return n
}

// SameSizes reports whether other has identical dimensionality and
// per-dimension extents. Strides are irrelevant to shape equality.
func (im *Image) SameSizes(other *Image) bool {
	if other == nil || len(im.sizes) != len(other.sizes) {
		return false
	}
	for i, s := range im.sizes {
		if other.sizes[i] != s {
			return false
		}
	}

	return true
}

// Offset maps coordinates to the storage offset of their first sample.
// No bounds checking: out-of-range coordinates are a programming error.
// Complexity: O(D).
func (im *Image) Offset(coords []int) int {
	off := im.origin
	for d, c := range coords {
		off += c * im.strides[d]
	}

	return off
}

// RasterIndex maps coordinates to their dense raster index: the scan
// position under dimension-0-fastest ordering, independent of strides.
// This index is the deterministic tie-break key of the library.
// Complexity: O(D).
func (im *Image) RasterIndex(coords []int) int {
	idx, mult := 0, 1
	for d, c := range coords {
		idx += c * mult
		mult *= im.sizes[d]
	}

	return idx
}

// UintAt returns the integer sample at coords (binary or label types).
func (im *Image) UintAt(coords []int) uint64 { return im.uints[im.Offset(coords)] }

// SetUint stores an integer sample at coords.
func (im *Image) SetUint(coords []int, v uint64) { im.uints[im.Offset(coords)] = v }

// UintAtOffset returns the integer sample at a precomputed offset.
func (im *Image) UintAtOffset(off int) uint64 { return im.uints[off] }

// SetUintAtOffset stores an integer sample at a precomputed offset.
func (im *Image) SetUintAtOffset(off int, v uint64) { im.uints[off] = v }

// FloatAt returns the real-valued sample at coords (grey types).
func (im *Image) FloatAt(coords []int) float64 { return im.floats[im.Offset(coords)] }

// SetFloat stores a real-valued sample at coords.
func (im *Image) SetFloat(coords []int, v float64) { im.floats[im.Offset(coords)] = v }

// FloatAtOffset returns the real-valued sample at a precomputed offset.
func (im *Image) FloatAtOffset(off int) float64 { return im.floats[off] }

// SetFloatAtOffset stores a real-valued sample at a precomputed offset.
func (im *Image) SetFloatAtOffset(off int, v float64) { im.floats[off] = v }

// Clone returns a deep copy: same sizes, strides, type and values.
func (im *Image) Clone() *Image {
	out := &Image{
		sizes:   append([]int(nil), im.sizes...),
		strides: append([]int(nil), im.strides...),
		origin:  im.origin,
		tensor:  im.tensor,
		dtype:   im.dtype,
	}
	if im.uints != nil {
		out.uints = append([]uint64(nil), im.uints...)
	}
	if im.floats != nil {
		out.floats = append([]float64(nil), im.floats...)
	}

	return out
}

// CopyFrom copies every sample value from src into im. Both images must
// share sizes, strides and data type (e.g. both produced by Clone of
// the same original); violating that is a programming error.
func (im *Image) CopyFrom(src *Image) {
	copy(im.uints, src.uints)
	copy(im.floats, src.floats)
}

// Fill sets every pixel's integer sample to v.
func (im *Image) Fill(v uint64) {
	for it := im.NewIterator(); it.Valid(); it.Next() {
		im.uints[it.Offset()] = v
	}
}
