// Package lvlregions is an in-memory toolkit for labeling and growing
// regions in N-dimensional images — from connected-component analysis
// to grey-weighted seeded growth.
//
// 🚀 What is lvlregions?
//
//	A pure-Go library that brings together:
//		• ndimage: a compact N-dimensional image carrier (sizes, strides,
//		  binary/label/grey element types, raster-order iteration)
//		• neighborhood: connectivity-driven neighbor enumeration, boundary
//		  conditions, and chamfer/city-block/chessboard metrics
//		• unionfind: the deterministic merge table behind one-pass labeling
//		• regions: Label, GetObjectLabels, Relabel, SmallObjectsRemove,
//		  GrowRegions, GrowRegionsWeighted
//
// ✨ Why choose lvlregions?
//
//   - Deterministic by construction – identical input, identical labels,
//     whatever the storage layout
//   - Any dimensionality – 1D signals, 2D images, 3D volumes and beyond
//     through one code path
//   - Pure Go – no cgo, no hidden deps
//   - Eager validation – a failed call never returns a half-written image
//
// Quick ASCII example:
//
//	0 1 1 0        0 1 1 0
//	1 1 0 0   →    1 1 0 0     one 4-connected object, labeled 1;
//	0 0 1 1        0 0 2 2     a second one labeled 2.
//
// Dive into the regions package documentation for the full operation
// contracts.
package lvlregions
