package ndimage

// Iterator walks every pixel of an image in raster order: dimension 0
// varies fastest, the last dimension slowest. The visiting order is a
// function of sizes only — images with exotic strides are scanned in
// the same coordinate order as contiguous ones, which is what makes
// labeling output independent of storage layout.
//
// The storage offset is maintained incrementally from the strides, so
// a full scan costs O(N) total, not O(N·D).
//
// Usage:
//
//	for it := im.NewIterator(); it.Valid(); it.Next() {
//	    v := im.UintAtOffset(it.Offset())
//	    ...
//	}
type Iterator struct {
	sizes   []int
	strides []int
	coords  []int
	offset  int
	index   int
	valid   bool
}

// NewIterator returns an iterator positioned at the all-zero coordinate.
func (im *Image) NewIterator() *Iterator {
	return &Iterator{
		sizes:   im.sizes,
		strides: im.strides,
		coords:  make([]int, len(im.sizes)),
		offset:  im.origin,
		index:   0,
		valid:   true,
	}
}

// Valid reports whether the iterator still points at a pixel.
func (it *Iterator) Valid() bool { return it.valid }

// Next advances to the following pixel in raster order.
// Returns false once the scan is exhausted.
func (it *Iterator) Next() bool {
	if !it.valid {
		return false
	}
	it.index++
	for d := 0; d < len(it.sizes); d++ {
		it.coords[d]++
		it.offset += it.strides[d]
		if it.coords[d] < it.sizes[d] {
			return true
		}
		// Carry into the next dimension: rewind this one.
		it.coords[d] = 0
		it.offset -= it.sizes[d] * it.strides[d]
	}
	it.valid = false

	return false
}

// Coords returns the current coordinates. The slice is reused between
// steps; callers that retain it must copy.
func (it *Iterator) Coords() []int { return it.coords }

// Offset returns the storage offset of the current pixel.
func (it *Iterator) Offset() int { return it.offset }

// Index returns the dense raster index of the current pixel, counting
// from 0 in visiting order.
func (it *Iterator) Index() int { return it.index }
