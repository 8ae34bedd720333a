package regions

import (
	"errors"

	"github.com/katalvlaran/lvlregions/ndimage"
	"github.com/katalvlaran/lvlregions/neighborhood"
)

// GrowRegions dilates the labeled regions of an image uniformly,
// without one label ever overwriting another.
//
// Each iteration performs one synchronous wavefront step: an unlabeled
// pixel (within the mask, if one is given) that is adjacent to exactly
// one distinct label in the previous iteration's snapshot adopts that
// label. A pixel adjacent to two or more distinct labels stays
// unlabeled for that step; the contention resolves in a later step once
// one side has committed. Because every step compares against the
// stable previous snapshot and writes into a fresh buffer, the result
// is independent of pixel traversal order.
//
// WithIterations(0) (the default) grows until a full step changes
// nothing; otherwise exactly that many steps run. With a mask this is
// the labeled equivalent of binary propagation; without one, a binary
// dilation per label that freezes on contact.
//
// Connectivity: positive values fix the neighbor topology; 0 or a
// negative value selects the default, alternating connectivity
// (city-block and full hypercube in turn, 2D/3D only — 1D degenerates
// to 1), which approximates isotropic growth.
//
// Errors: ErrTypeMismatch (label not unsigned-integer, mask not
// binary), ErrDimensionsDontMatch (mask sizes), ErrNotScalar,
// neighborhood.ErrDimensionalityNotSupported (alternating with D ≥ 4).
//
// Complexity: O(I·N·3^D) time, O(N) memory for the two snapshots.
func GrowRegions(label *ndimage.Image, opts ...Option) (*ndimage.Image, error) {
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
	dims := label.Dimensionality()

	// 0 selects the grower's default, which is alternating connectivity.
	conn := cfg.Connectivity
	if conn == 0 {
		conn = -1
	}
	// Resolve once upfront so parameter errors surface before any work.
	if _, err := neighborhood.Resolve(dims, conn, 0); err != nil {
		if errors.Is(err, neighborhood.ErrBadConnectivity) {
			return nil, ErrInvalidParameter
		}

		return nil, err
	}

	cur := label.Clone()
	next := label.Clone()
	sizes := label.Sizes()
	ncoords := make([]int, dims)

	// Under alternating connectivity the fixed point requires both
	// phases to pass without change: a city-block step can stall while
	// the full-hypercube step still has diagonal moves left.
	phases := uint(1)
	if conn < 0 && (dims == 2 || dims == 3) {
		phases = 2
	}
	idle := uint(0)

	for step := uint(0); cfg.Iterations == 0 || step < cfg.Iterations; step++ {
		stepConn, err := neighborhood.Resolve(dims, conn, step)
		if err != nil {
			return nil, err
		}
		nh, err := neighborhood.New(dims, stepConn)
		if err != nil {
			return nil, err
		}

		next.CopyFrom(cur)
		changed := false
		itC := cur.NewIterator()
		itN := next.NewIterator()
		var itM *ndimage.Iterator
		if cfg.Mask != nil {
			itM = cfg.Mask.NewIterator()
		}
		for ; itC.Valid(); itC.Next() {
			blocked := false
			if itM != nil {
				blocked = cfg.Mask.UintAtOffset(itM.Offset()) == 0
				itM.Next()
			}
			if !blocked && cur.UintAtOffset(itC.Offset()) == 0 {
				// Adjacent to exactly one distinct label in the previous
				// snapshot → adopt it; two or more → stay unlabeled.
				coords := itC.Coords()
				var adopt uint64
				conflict := false
				for i := 0; i < nh.Len() && !conflict; i++ {
					if !applyOffset(coords, nh.Offset(i), sizes, ncoords) {
						continue
					}
					n := cur.UintAt(ncoords)
					if n == 0 || n == adopt {
						continue
					}
					if adopt == 0 {
						adopt = n
					} else {
						conflict = true
					}
				}
				if adopt != 0 && !conflict {
					next.SetUintAtOffset(itN.Offset(), adopt)
					changed = true
				}
			}
			itN.Next()
		}

		cur, next = next, cur
		if changed {
			idle = 0
		} else {
			idle++
			if cfg.Iterations == 0 && idle >= phases {
				break
			}
		}
	}

	return cur, nil
}
