// Package regions defines the options and sentinel errors shared by the
// labeled-region operations: Label, GetObjectLabels, Relabel,
// SmallObjectsRemove, GrowRegions and GrowRegionsWeighted.
package regions

import (
	"errors"

	"github.com/katalvlaran/lvlregions/ndimage"
	"github.com/katalvlaran/lvlregions/neighborhood"
)

// Sentinel errors returned by the regions operations. All parameter
// problems are detected eagerly, before any output is allocated or
// mutated; a failed call returns a nil image.
var (
	// ErrNilImage indicates a nil image where one is required.
	ErrNilImage = errors.New("regions: image is nil")

	// ErrTypeMismatch indicates an element type the operation cannot
	// accept (e.g. a grey image where a binary one is required).
	ErrTypeMismatch = errors.New("regions: wrong image element type for this operation")

	// ErrDimensionsDontMatch indicates co-input images of differing sizes.
	ErrDimensionsDontMatch = errors.New("regions: input images must have identical sizes")

	// ErrNotScalar indicates a tensor image where a scalar one is required.
	ErrNotScalar = errors.New("regions: image must be scalar")

	// ErrInvalidParameter indicates an out-of-range connectivity, size
	// bound or boundary-condition specification.
	ErrInvalidParameter = errors.New("regions: invalid parameter")

	// ErrMaskNotImplemented indicates a mask passed to GrowRegionsWeighted,
	// which does not support masking yet. Failing beats silently ignoring
	// the mask and returning a wrong partition.
	ErrMaskNotImplemented = errors.New("regions: mask in GrowRegionsWeighted is not yet implemented")
)

// Background selects whether GetObjectLabels reports label 0.
type Background int

const (
	// ExcludeBackground omits label 0 from the result (the default).
	ExcludeBackground Background = iota
	// IncludeBackground retains label 0 in the result if it occurs.
	IncludeBackground
)

// Options configures the regions operations. Each operation reads only
// the fields meaningful to it and validates them eagerly at call entry.
//
// Connectivity — neighbor topology selector: 1 = axis-aligned
// (city-block) up to D = full hypercube (chessboard); 0 = the
// operation's default (D for Label/SmallObjectsRemove, alternating for
// GrowRegions); negative = alternating per iteration (2D/3D only).
// MinSize/MaxSize — inclusive object pixel-count bounds for Label;
// 0 disables a bound.
// Boundary — per-dimension boundary conditions for Label; length 0
// (all default), 1 (broadcast) or D.
// Mask — optional binary constraint image (GetObjectLabels, GrowRegions).
// Iterations — wavefront step budget for GrowRegions; 0 = run to the
// fixed point.
// Metric — propagation-cost metric for GrowRegionsWeighted.
// Background — background policy for GetObjectLabels.
type Options struct {
	Connectivity int
	MinSize      uint64
	MaxSize      uint64
	Boundary     []neighborhood.BoundaryCondition
	Mask         *ndimage.Image
	Iterations   uint
	Metric       neighborhood.Metric
	Background   Background
}

// Option is a functional option for the regions operations.
type Option func(*Options)

// DefaultOptions returns the defaults: connectivity 0 (operation
// default), no size filtering, hard-stop boundaries, no mask, run to
// fixed point, chamfer-2 metric, background excluded.
func DefaultOptions() Options {
	return Options{Metric: neighborhood.DefaultMetric()}
}

// WithConnectivity selects the neighbor topology. 0 keeps the
// operation's default; validation happens at call entry.
func WithConnectivity(c int) Option {
	return func(o *Options) { o.Connectivity = c }
}

// WithSizeRange bounds the object pixel count kept by Label,
// inclusive on both sides; 0 disables the corresponding bound.
func WithSizeRange(minSize, maxSize uint64) Option {
	return func(o *Options) {
		o.MinSize = minSize
		o.MaxSize = maxSize
	}
}

// WithBoundary sets per-dimension boundary conditions for Label.
// Pass one condition to broadcast it across all dimensions.
func WithBoundary(bc ...neighborhood.BoundaryCondition) Option {
	return func(o *Options) { o.Boundary = bc }
}

// WithMask constrains an operation to the foreground of a binary mask.
func WithMask(mask *ndimage.Image) Option {
	return func(o *Options) { o.Mask = mask }
}

// WithIterations caps GrowRegions at exactly n synchronous wavefront
// steps; 0 (the default) grows until no further change is possible.
func WithIterations(n uint) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithMetric selects the propagation-cost metric for GrowRegionsWeighted.
func WithMetric(m neighborhood.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithBackground selects whether GetObjectLabels reports label 0.
func WithBackground(b Background) Option {
	return func(o *Options) { o.Background = b }
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// requireScalar validates that im is non-nil and scalar.
func requireScalar(im *ndimage.Image) error {
	if im == nil {
		return ErrNilImage
	}
	if !im.IsScalar() {
		return ErrNotScalar
	}

	return nil
}

// requireMask validates an optional mask against a reference image:
// scalar, binary-typed, and of identical sizes.
func requireMask(mask, ref *ndimage.Image) error {
	if mask == nil {
		return nil
	}
	if !mask.IsScalar() {
		return ErrNotScalar
	}
	if !mask.DataType().IsBinary() {
		return ErrTypeMismatch
	}
	if !ref.SameSizes(mask) {
		return ErrDimensionsDontMatch
	}

	return nil
}
