package regions

import "github.com/katalvlaran/lvlregions/ndimage"

// Relabel re-assigns the labels of a labeled image so they are
// consecutive starting at 1, preserving first-occurrence order in
// raster scan: the first distinct label encountered becomes 1, the
// second 2, and so on. Background (0) stays 0; no labels are merged and
// none are filtered. Applying Relabel to its own output changes nothing.
//
// The input must be a scalar image of unsigned-integer type; the output
// preserves the element type.
//
// Complexity: O(N) time, O(M) memory, M = distinct labels.
func Relabel(label *ndimage.Image, opts ...Option) (*ndimage.Image, error) {
	_ = buildOptions(opts) // Relabel currently has no tunables.
	if err := requireScalar(label); err != nil {
		return nil, err
	}
	if !label.DataType().IsUnsigned() {
		return nil, ErrTypeMismatch
	}

	out, err := ndimage.New(label.Sizes(), label.DataType())
	if err != nil {
		return nil, err
	}

	mapping := make(map[uint64]uint64)
	var next uint64
	itIn := label.NewIterator()
	itOut := out.NewIterator()
	for ; itIn.Valid(); itIn.Next() {
		if v := label.UintAtOffset(itIn.Offset()); v != 0 {
			nv, seen := mapping[v]
			if !seen {
				next++
				nv = next
				mapping[v] = nv
			}
			out.SetUintAtOffset(itOut.Offset(), nv)
		}
		itOut.Next()
	}

	return out, nil
}
