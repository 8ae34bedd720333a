package neighborhood

// Neighborhood materializes the metric into an offset set with
// per-offset propagation costs for a D-dimensional image.
//
// Shapes:
//
//   - CityBlock  — connectivity 1; cost of an axis step is that
//     dimension's sampling distance.
//   - Chessboard — connectivity D; cost is the max-norm of the scaled
//     offset (1 everywhere under isotropic sampling).
//   - Chamfer    — connectivity min(Order, D); cost is the Euclidean
//     norm of the scaled offset. Order 1 reduces to the city-block
//     shape with Euclidean (= axis) costs; order 2 covers the full
//     3^D hypercube for D ≤ 2 and diagonals up to two axes for D ≥ 3.
//
// Returns ErrBadMetric for an unknown kind or a zero chamfer order,
// ErrBadPixelSize for an invalid PixelSize array.
func (m Metric) Neighborhood(dims int) (*Neighborhood, error) {
	if dims < 1 {
		return nil, ErrBadDimensionality
	}
	var conn int
	switch m.Kind {
	case CityBlock:
		conn = 1
	case Chessboard:
		conn = dims
	case Chamfer:
		if m.Order < 1 {
			return nil, ErrBadMetric
		}
		conn = int(m.Order)
		if conn > dims {
			conn = dims
		}
	default:
		return nil, ErrBadMetric
	}

	px, err := checkPixelSize(dims, m.PixelSize)
	if err != nil {
		return nil, err
	}
	n, err := NewWithPixelSize(dims, conn, px)
	if err != nil {
		return nil, err
	}
	if m.Kind == Chessboard {
		for i, off := range n.offsets {
			n.distances[i] = maxNorm(off, px)
		}
	}

	return n, nil
}

// maxNorm returns the Chebyshev norm of off scaled by px.
func maxNorm(off []int, px []float64) float64 {
	var best float64
	for d, c := range off {
		s := float64(c) * px[d]
		if s < 0 {
			s = -s
		}
		if s > best {
			best = s
		}
	}

	return best
}
