// Package regions labels connected components in N-dimensional binary
// images and propagates those labels outward under geometric or
// grey-weighted cost metrics.
//
// What:
//
//   - Label: connected-component labeling with configurable
//     connectivity, periodic boundary support, and size filtering.
//   - GetObjectLabels: the sorted set of labels present in an image.
//   - Relabel: compact arbitrary label values to consecutive IDs.
//   - SmallObjectsRemove: per-object size filtering for binary and
//     labeled images.
//   - GrowRegions: uniform wavefront dilation that stops where labels
//     meet, optionally mask-constrained.
//   - GrowRegionsWeighted: Dijkstra-style grey-weighted flood that
//     partitions the image among the seed regions.
//
// Why:
//
//   - Region analysis: objects must be identified before they can be
//     measured.
//   - Seeded segmentation: grow markers over an intensity landscape.
//   - Morphology: size opening and label-respecting dilation.
//
// Determinism: every operation is a pure function of its input. Label
// numbering derives from raster scan order; wavefront steps read only
// the previous iteration's snapshot; the weighted frontier breaks cost
// ties by ascending raster index.
//
// Complexity:
//
//   - Label, SmallObjectsRemove:  O(N·3^D), memory O(N).
//   - Relabel, GetObjectLabels:   O(N), memory O(M) for M labels.
//   - GrowRegions:                O(I·N·3^D), memory O(N).
//   - GrowRegionsWeighted:        O(N·3^D·log N), memory O(N).
//
// Options:
//
//   - WithConnectivity: 1 (city-block) .. D (chessboard); 0 = default;
//     negative = alternating per iteration (2D/3D growers only).
//   - WithSizeRange: inclusive object-size bounds for Label.
//   - WithBoundary: per-dimension hard-stop or periodic wrap.
//   - WithMask, WithIterations, WithMetric, WithBackground.
//
// Errors:
//
//   - ErrTypeMismatch: wrong element kind for the operation.
//   - ErrDimensionsDontMatch: co-input images of differing sizes.
//   - ErrNotScalar: tensor image where a scalar one is required.
//   - ErrInvalidParameter: bad connectivity or boundary specification.
//   - ErrMaskNotImplemented: masked weighted growth.
//
// All errors are detected before any output is produced; a failed call
// returns a nil image.
package regions
