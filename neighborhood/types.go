// Package neighborhood defines core types, options, and sentinel errors
// for neighbor enumeration in N-dimensional images: connectivity-driven
// offset sets, per-offset geometric distances, boundary-condition
// policies, and distance metrics for cost-driven propagation.
package neighborhood

import "errors"

// Sentinel errors for neighborhood construction.
var (
	// ErrBadDimensionality indicates a dimensionality smaller than one.
	ErrBadDimensionality = errors.New("neighborhood: dimensionality must be at least 1")
	// ErrBadConnectivity indicates a connectivity outside [1, D].
	ErrBadConnectivity = errors.New("neighborhood: connectivity must be in [1, dimensionality]")
	// ErrDimensionalityNotSupported indicates alternating connectivity
	// requested for a dimensionality where it is undefined.
	ErrDimensionalityNotSupported = errors.New("neighborhood: alternating connectivity is only defined for 2D and 3D")
	// ErrBadPixelSize indicates a pixel-size array of wrong length or
	// with a non-positive entry.
	ErrBadPixelSize = errors.New("neighborhood: pixel sizes must be positive and match dimensionality")
	// ErrBadMetric indicates an unknown metric kind or a zero chamfer order.
	ErrBadMetric = errors.New("neighborhood: invalid metric specification")
)

// BoundaryCondition selects how neighbor lookups behave at the image edge.
type BoundaryCondition int

const (
	// BoundaryDefault treats the border as a hard stop: out-of-range
	// neighbors do not exist.
	BoundaryDefault BoundaryCondition = iota
	// BoundaryPeriodic wraps neighbor coordinates modulo the dimension's
	// extent. The only non-default condition meaningful to labeling.
	BoundaryPeriodic
)

// MetricKind names the shape of a propagation-cost metric.
type MetricKind int

const (
	// Chamfer approximates Euclidean distance over the 3^D neighborhood;
	// the metric order bounds the neighborhood connectivity.
	Chamfer MetricKind = iota
	// CityBlock uses axis-aligned steps only (L1 shape).
	CityBlock
	// Chessboard uses the full neighbor hypercube with max-norm costs.
	Chessboard
)

// Metric describes a propagation-cost metric: a named shape, a chamfer
// order, and optional per-dimension sampling distances.
//
// PixelSize scales every offset component; empty means isotropic
// sampling (1 per dimension). Costs produced by Metric.Neighborhood are
// strictly positive.
type Metric struct {
	Kind      MetricKind
	Order     uint
	PixelSize []float64
}

// DefaultMetric returns the default metric: chamfer of order 2,
// isotropic sampling.
func DefaultMetric() Metric {
	return Metric{Kind: Chamfer, Order: 2}
}
