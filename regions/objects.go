package regions

import (
	"sort"

	"github.com/katalvlaran/lvlregions/ndimage"
)

// GetObjectLabels returns the distinct label values present in a
// labeled image, ascending and deduplicated. With WithMask, only pixels
// under the mask's foreground are considered. Label 0 is omitted unless
// WithBackground(IncludeBackground) is given, in which case it appears
// iff a (mask-permitted) zero pixel exists.
//
// The labeled image must be scalar and of unsigned-integer type; the
// mask, if any, must be binary and of identical sizes.
//
// Complexity: O(N + M log M) time, O(M) memory, M = distinct labels.
func GetObjectLabels(label *ndimage.Image, opts ...Option) ([]uint64, error) {
	cfg := buildOptions(opts)
	if err := requireScalar(label); err != nil {
		return nil, err
	}
	if !label.DataType().IsUnsigned() {
		return nil, ErrTypeMismatch
	}
	if err := requireMask(cfg.Mask, label); err != nil {
		return nil, err
	}

	present := make(map[uint64]struct{})
	itL := label.NewIterator()
	var itM *ndimage.Iterator
	if cfg.Mask != nil {
		itM = cfg.Mask.NewIterator()
	}
	for ; itL.Valid(); itL.Next() {
		masked := false
		if itM != nil {
			masked = cfg.Mask.UintAtOffset(itM.Offset()) == 0
			itM.Next()
		}
		if masked {
			continue
		}
		present[label.UintAtOffset(itL.Offset())] = struct{}{}
	}
	if cfg.Background == ExcludeBackground {
		delete(present, 0)
	}

	labels := make([]uint64, 0, len(present))
	for v := range present {
		labels = append(labels, v)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })

	return labels, nil
}

// SmallObjectsRemove removes objects with fewer than threshold pixels
// from a labeled or binary image. A threshold of 0 removes nothing.
//
// Labeled input (unsigned-integer type): each label's pixel count is
// measured independently — touching objects stay separate — labels
// below the threshold are zeroed, and the survivors are re-compacted to
// consecutive IDs in first-occurrence order. Connectivity is ignored.
//
// Binary input: delegates to Label with MinSize = threshold (passing
// the connectivity through) and binarizes the result. This is
// equivalent to an area opening with parameter threshold. The labeled
// case can diverge from the area opening when labeled regions touch;
// that divergence is the documented contract, not a defect.
//
// The result preserves the input element type.
//
// Complexity: O(N·3^D) for binary input (a full labeling), O(N) for
// labeled input.
func SmallObjectsRemove(in *ndimage.Image, threshold uint64, opts ...Option) (*ndimage.Image, error) {
	cfg := buildOptions(opts)
	if err := requireScalar(in); err != nil {
		return nil, err
	}
	if !in.DataType().IsBinary() && !in.DataType().IsUnsigned() {
		return nil, ErrTypeMismatch
	}
	// threshold 0 filters nothing; the identity contract holds even for
	// label images whose IDs are not dense.
	if threshold == 0 {
		return in.Clone(), nil
	}

	if in.DataType().IsUnsigned() {
		return removeSmallLabels(in, threshold)
	}

	lab, _, err := Label(in,
		WithConnectivity(cfg.Connectivity),
		WithSizeRange(threshold, 0),
	)
	if err != nil {
		return nil, err
	}
	out, err := ndimage.NewBinary(in.Sizes())
	if err != nil {
		return nil, err
	}
	itL := lab.NewIterator()
	itO := out.NewIterator()
	for ; itL.Valid(); itL.Next() {
		if lab.UintAtOffset(itL.Offset()) != 0 {
			out.SetUintAtOffset(itO.Offset(), 1)
		}
		itO.Next()
	}

	return out, nil
}

// removeSmallLabels implements the labeled-input branch: measure, zero
// the small labels, re-compact the survivors (Relabel semantics).
func removeSmallLabels(in *ndimage.Image, threshold uint64) (*ndimage.Image, error) {
	counts := make(map[uint64]uint64)
	for it := in.NewIterator(); it.Valid(); it.Next() {
		if v := in.UintAtOffset(it.Offset()); v != 0 {
			counts[v]++
		}
	}

	out, err := ndimage.New(in.Sizes(), in.DataType())
	if err != nil {
		return nil, err
	}
	mapping := make(map[uint64]uint64, len(counts))
	var next uint64
	itIn := in.NewIterator()
	itOut := out.NewIterator()
	for ; itIn.Valid(); itIn.Next() {
		if v := in.UintAtOffset(itIn.Offset()); v != 0 && counts[v] >= threshold {
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
