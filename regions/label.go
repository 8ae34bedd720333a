package regions

import (
	"github.com/katalvlaran/lvlregions/ndimage"
	"github.com/katalvlaran/lvlregions/neighborhood"
	"github.com/katalvlaran/lvlregions/unionfind"
)

// Label labels the connected components of a binary image.
//
// Each object — a maximal set of foreground pixels connected under the
// chosen connectivity — receives a unique label in 1..objectCount; all
// background pixels are 0. Labels are consecutive starting at 1, and
// identical input always yields identical output.
//
// Size filtering: objects whose pixel count falls outside
// [MinSize, MaxSize] (a bound of 0 disables that side) are zeroed out
// and the surviving labels re-compacted, so the consecutive-ID
// invariant holds after filtering too.
//
// Boundary conditions are ignored except BoundaryPeriodic, the only one
// meaningful here: it connects components across the wrap of the marked
// dimensions. All other conditions stop labeling at the image edge.
//
// Steps:
//  1. Validate inputs (binary, scalar, connectivity, boundary spec).
//  2. Raster pass: assign provisional labels from already-visited
//     neighbors, merging via union-find on contact.
//  3. Seam pass (periodic dimensions only): merge components touching
//     across the wrap.
//  4. Flatten the union-find table into dense final labels, counting
//     pixels per label.
//  5. Rewrite with the composed provisional→final→filtered mapping.
//
// Returns the labeled image (element type ndimage.Label) and the number
// of surviving objects.
//
// Errors: ErrTypeMismatch (input not binary), ErrNotScalar,
// ErrInvalidParameter (connectivity out of [1,D], bad boundary array).
//
// Complexity: O(N·3^D) time, O(N) memory, N = pixel count.
func Label(binary *ndimage.Image, opts ...Option) (*ndimage.Image, uint64, error) {
	cfg := buildOptions(opts)
	if err := requireScalar(binary); err != nil {
		return nil, 0, err
	}
	if !binary.DataType().IsBinary() {
		return nil, 0, ErrTypeMismatch
	}
	dims := binary.Dimensionality()

	// Connectivity: 0 means the full hypercube; alternating (negative)
	// makes no sense for a single-pass labeling.
	conn := cfg.Connectivity
	if conn == 0 {
		conn = dims
	}
	if conn < 1 || conn > dims {
		return nil, 0, ErrInvalidParameter
	}
	boundary, err := expandBoundary(cfg.Boundary, dims)
	if err != nil {
		return nil, 0, err
	}
	nh, err := neighborhood.New(dims, conn)
	if err != nil {
		return nil, 0, err
	}
	back := nh.Backward()

	out, err := ndimage.NewLabel(binary.Sizes())
	if err != nil {
		return nil, 0, err
	}
	uf := unionfind.New(64)

	// 2) Raster pass. Only already-visited neighbors are examined, so a
	// single sweep suffices; merges go through the union-find table.
	sizes := binary.Sizes()
	ncoords := make([]int, dims)
	itIn := binary.NewIterator()
	itOut := out.NewIterator()
	for ; itIn.Valid(); itIn.Next() {
		if binary.UintAtOffset(itIn.Offset()) != 0 {
			coords := itIn.Coords()
			var lab uint64
			for i := 0; i < back.Len(); i++ {
				if !applyOffset(coords, back.Offset(i), sizes, ncoords) {
					continue
				}
				n := out.UintAt(ncoords)
				if n == 0 {
					continue
				}
				switch {
				case lab == 0:
					lab = n
				case n < lab:
					uf.Union(uint32(n), uint32(lab))
					lab = n
				case n > lab:
					uf.Union(uint32(lab), uint32(n))
				}
			}
			if lab == 0 {
				lab = uint64(uf.MakeSet())
			}
			out.SetUintAtOffset(itOut.Offset(), lab)
		}
		itOut.Next()
	}

	// 3) Seam pass: only needed when some dimension wraps.
	if anyPeriodic(boundary) {
		mergePeriodicSeams(out, back, boundary, uf)
	}

	// 4) Flatten and count. counts is indexed by final label.
	table, count := uf.Flatten()
	counts := make([]uint64, count+1)
	for it := out.NewIterator(); it.Valid(); it.Next() {
		if p := out.UintAtOffset(it.Offset()); p != 0 {
			counts[table[p]]++
		}
	}

	// Compose the size filter into a final remapping, keeping surviving
	// labels dense and in ascending final-label order.
	remap := make([]uint64, count+1)
	var objects uint64
	for f := uint32(1); f <= count; f++ {
		n := counts[f]
		if (cfg.MinSize > 0 && n < cfg.MinSize) || (cfg.MaxSize > 0 && n > cfg.MaxSize) {
			continue
		}
		objects++
		remap[f] = objects
	}

	// 5) Rewrite provisional → final → filtered in one pass.
	for it := out.NewIterator(); it.Valid(); it.Next() {
		if p := out.UintAtOffset(it.Offset()); p != 0 {
			out.SetUintAtOffset(it.Offset(), remap[table[p]])
		}
	}

	return out, objects, nil
}

// expandBoundary normalizes a boundary-condition array to length dims:
// empty → all default, single → broadcast, dims → as given.
// Any other length is ErrInvalidParameter.
func expandBoundary(bc []neighborhood.BoundaryCondition, dims int) ([]neighborhood.BoundaryCondition, error) {
	out := make([]neighborhood.BoundaryCondition, dims)
	switch len(bc) {
	case 0:
		// all BoundaryDefault
	case 1:
		for d := range out {
			out[d] = bc[0]
		}
	case dims:
		copy(out, bc)
	default:
		return nil, ErrInvalidParameter
	}
	for _, c := range out {
		if c != neighborhood.BoundaryDefault && c != neighborhood.BoundaryPeriodic {
			return nil, ErrInvalidParameter
		}
	}

	return out, nil
}

// anyPeriodic reports whether at least one dimension wraps.
func anyPeriodic(bc []neighborhood.BoundaryCondition) bool {
	for _, c := range bc {
		if c == neighborhood.BoundaryPeriodic {
			return true
		}
	}

	return false
}

// applyOffset writes coords+off into ncoords and reports whether the
// result lies inside the image. Out-of-range neighbors do not exist
// under the default (hard stop) boundary condition.
func applyOffset(coords, off, sizes []int, ncoords []int) bool {
	for d := range coords {
		c := coords[d] + off[d]
		if c < 0 || c >= sizes[d] {
			return false
		}
		ncoords[d] = c
	}

	return true
}

// applyOffsetPeriodic is applyOffset under per-dimension boundary
// conditions: a periodic dimension wraps modulo its extent, any other
// out-of-range dimension kills the neighbor. wrapped reports whether at
// least one dimension actually wrapped.
func applyOffsetPeriodic(coords, off, sizes []int, bc []neighborhood.BoundaryCondition, ncoords []int) (ok, wrapped bool) {
	for d := range coords {
		c := coords[d] + off[d]
		if c < 0 || c >= sizes[d] {
			if bc[d] != neighborhood.BoundaryPeriodic {
				return false, false
			}
			c = (c + sizes[d]) % sizes[d]
			wrapped = true
		}
		ncoords[d] = c
	}

	return true, wrapped
}

// mergePeriodicSeams unions provisional labels across the wrap of every
// periodic dimension. It runs after the raster pass, when every
// foreground pixel already carries a provisional label. Backward
// offsets cover each wrapped pixel pair exactly once (the converse pair
// is the forward offset seen from the other side).
func mergePeriodicSeams(out *ndimage.Image, back *neighborhood.Neighborhood, bc []neighborhood.BoundaryCondition, uf *unionfind.UnionFind) {
	sizes := out.Sizes()
	ncoords := make([]int, out.Dimensionality())
	for it := out.NewIterator(); it.Valid(); it.Next() {
		p := out.UintAtOffset(it.Offset())
		if p == 0 {
			continue
		}
		coords := it.Coords()
		for i := 0; i < back.Len(); i++ {
			ok, wrapped := applyOffsetPeriodic(coords, back.Offset(i), sizes, bc, ncoords)
			if !ok || !wrapped {
				// In-range pairs were already merged during the raster pass.
				continue
			}
			if n := out.UintAt(ncoords); n != 0 {
				uf.Union(uint32(p), uint32(n))
			}
		}
	}
}
