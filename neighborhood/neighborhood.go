package neighborhood

import "math"

// Neighborhood is an ordered set of relative offset vectors defining
// pixel adjacency, with a geometric distance per offset. It is built
// once per call and read-only afterwards.
//
// Offsets are every integer vector in {-1,0,1}^D excluding zero whose
// number of non-zero components is at most the connectivity, generated
// in a fixed order (dimension 0 varying fastest), which keeps every
// consumer deterministic.
type Neighborhood struct {
	dims      int
	offsets   [][]int
	distances []float64
}

// New builds the neighborhood for the given dimensionality and
// connectivity with isotropic sampling.
// Returns ErrBadDimensionality or ErrBadConnectivity on invalid input.
// Complexity: O(3^D · D).
func New(dims, connectivity int) (*Neighborhood, error) {
	return NewWithPixelSize(dims, connectivity, nil)
}

// NewWithPixelSize builds the neighborhood with per-dimension sampling
// distances; the geometric distance of an offset is the Euclidean norm
// of the offset scaled component-wise by pixelSize. pixelSize nil means
// 1 per dimension; otherwise its length must equal dims and every entry
// must be positive (ErrBadPixelSize).
func NewWithPixelSize(dims, connectivity int, pixelSize []float64) (*Neighborhood, error) {
	if dims < 1 {
		return nil, ErrBadDimensionality
	}
	if connectivity < 1 || connectivity > dims {
		return nil, ErrBadConnectivity
	}
	px, err := checkPixelSize(dims, pixelSize)
	if err != nil {
		return nil, err
	}

	n := &Neighborhood{dims: dims}
	off := make([]int, dims)
	for i := range off {
		off[i] = -1
	}
	for {
		nz := 0
		for _, c := range off {
			if c != 0 {
				nz++
			}
		}
		if nz >= 1 && nz <= connectivity {
			v := make([]int, dims)
			copy(v, off)
			n.offsets = append(n.offsets, v)
			n.distances = append(n.distances, euclidean(v, px))
		}
		// Advance dimension 0 fastest, carrying -1..1 per component.
		d := 0
		for ; d < dims; d++ {
			off[d]++
			if off[d] <= 1 {
				break
			}
			off[d] = -1
		}
		if d == dims {
			break
		}
	}

	return n, nil
}

// Dimensionality returns the dimensionality the neighborhood was built for.
func (n *Neighborhood) Dimensionality() int { return n.dims }

// Len returns the number of neighbor offsets.
func (n *Neighborhood) Len() int { return len(n.offsets) }

// Offset returns the i-th offset vector. Callers must not mutate it.
func (n *Neighborhood) Offset(i int) []int { return n.offsets[i] }

// Distance returns the geometric distance of the i-th offset.
func (n *Neighborhood) Distance(i int) float64 { return n.distances[i] }

// Backward returns the sub-neighborhood of offsets that point at
// already-visited pixels under raster scan order: those whose
// highest-dimension non-zero component is negative. These are the
// neighbors a single-pass labeler examines.
func (n *Neighborhood) Backward() *Neighborhood { return n.filter(true) }

// Forward returns the complement of Backward: offsets pointing at
// not-yet-visited pixels in raster scan order.
func (n *Neighborhood) Forward() *Neighborhood { return n.filter(false) }

// filter selects the backward or forward half, preserving order.
func (n *Neighborhood) filter(backward bool) *Neighborhood {
	out := &Neighborhood{dims: n.dims}
	for i, off := range n.offsets {
		if isBackward(off) == backward {
			out.offsets = append(out.offsets, off)
			out.distances = append(out.distances, n.distances[i])
		}
	}

	return out
}

// isBackward reports whether off points at a pixel visited earlier in
// raster order: the non-zero component of the slowest-varying (highest)
// dimension decides.
func isBackward(off []int) bool {
	for d := len(off) - 1; d >= 0; d-- {
		if off[d] != 0 {
			return off[d] < 0
		}
	}

	return false
}

// Resolve normalizes an operation-level connectivity parameter for a
// given image dimensionality and iteration number (counting from 0):
//
//   - c in [1, D]  → c, every iteration.
//   - c == 0       → D (the full neighbor hypercube, the default).
//   - c < 0        → alternating connectivity: even iterations use 1
//     (city-block), odd iterations use D (chessboard). Only defined for
//     D ∈ {2, 3}; D == 1 degenerates to 1; any other D fails with
//     ErrDimensionalityNotSupported.
//
// Out-of-range positive values fail with ErrBadConnectivity.
func Resolve(dims, connectivity int, iteration uint) (int, error) {
	if dims < 1 {
		return 0, ErrBadDimensionality
	}
	switch {
	case connectivity == 0:
		return dims, nil
	case connectivity > 0:
		if connectivity > dims {
			return 0, ErrBadConnectivity
		}

		return connectivity, nil
	default:
		if dims == 1 {
			return 1, nil
		}
		if dims != 2 && dims != 3 {
			return 0, ErrDimensionalityNotSupported
		}
		if iteration%2 == 0 {
			return 1, nil
		}

		return dims, nil
	}
}

// checkPixelSize validates and defaults a pixel-size array.
func checkPixelSize(dims int, pixelSize []float64) ([]float64, error) {
	if len(pixelSize) == 0 {
		px := make([]float64, dims)
		for i := range px {
			px[i] = 1
		}

		return px, nil
	}
	if len(pixelSize) != dims {
		return nil, ErrBadPixelSize
	}
	for _, p := range pixelSize {
		if p <= 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, ErrBadPixelSize
		}
	}
	px := make([]float64, dims)
	copy(px, pixelSize)

	return px, nil
}

// euclidean returns the Euclidean norm of off scaled by px.
func euclidean(off []int, px []float64) float64 {
	var sum float64
	for d, c := range off {
		s := float64(c) * px[d]
		sum += s * s
	}

	return math.Sqrt(sum)
}
