package regions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlregions/ndimage"
	"github.com/katalvlaran/lvlregions/neighborhood"
	"github.com/katalvlaran/lvlregions/regions"
)

// TestLabel_Sequence1D labels the sequence [0,1,1,0,1,0,1,1,1] with
// connectivity 1: three runs, numbered left to right.
func TestLabel_Sequence1D(t *testing.T) {
	in := binary1D(t, []uint64{0, 1, 1, 0, 1, 0, 1, 1, 1})

	out, count, err := regions.Label(in, regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(3), count)
	assert.Equal(t, []uint64{0, 1, 1, 0, 2, 0, 3, 3, 3}, rasterUints(out))
	assert.Equal(t, ndimage.Label, out.DataType())
}

// TestLabel_MinSize1D re-labels the same sequence with MinSize=2: the
// single-pixel run disappears and the survivors stay consecutive.
func TestLabel_MinSize1D(t *testing.T) {
	in := binary1D(t, []uint64{0, 1, 1, 0, 1, 0, 1, 1, 1})

	out, count, err := regions.Label(in,
		regions.WithConnectivity(1),
		regions.WithSizeRange(2, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
	assert.Equal(t, []uint64{0, 1, 1, 0, 0, 0, 2, 2, 2}, rasterUints(out))
}

// TestLabel_MaxSize removes the large object and keeps the small one.
func TestLabel_MaxSize(t *testing.T) {
	in := binary1D(t, []uint64{1, 1, 1, 0, 1})

	out, count, err := regions.Label(in,
		regions.WithConnectivity(1),
		regions.WithSizeRange(0, 2),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
	assert.Equal(t, []uint64{0, 0, 0, 0, 1}, rasterUints(out))
}

// TestLabel_DiagonalConnectivity: two diagonally-touching pixels are
// separate objects under connectivity 1 and one object under 2.
func TestLabel_DiagonalConnectivity(t *testing.T) {
	grid := [][]uint64{
		{1, 0, 0, 0, 0},
		{0, 1, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	}

	_, count, err := regions.Label(binary2D(t, grid), regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count, "city-block keeps the diagonal pair apart")

	_, count, err = regions.Label(binary2D(t, grid), regions.WithConnectivity(2))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count, "chessboard merges the diagonal pair")
}

// TestLabel_UShapeMerge exercises the union-find path: two arms carry
// different provisional labels until the bottom row joins them.
func TestLabel_UShapeMerge(t *testing.T) {
	in := binary2D(t, [][]uint64{
		{1, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
	})

	out, count, err := regions.Label(in, regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
	assert.Equal(t, []uint64{1, 0, 1, 1, 0, 1, 1, 1, 1}, rasterUints(out))
}

// TestLabel_NumberingByFirstOccurrence: final IDs follow raster order of
// each object's first pixel, merges notwithstanding.
func TestLabel_NumberingByFirstOccurrence(t *testing.T) {
	in := binary2D(t, [][]uint64{
		{1, 0, 1, 0, 1},
		{1, 1, 1, 0, 1},
	})

	out, count, err := regions.Label(in, regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
	assert.Equal(t, []uint64{
		1, 0, 1, 0, 2,
		1, 1, 1, 0, 2,
	}, rasterUints(out))
}

// TestLabel_DefaultConnectivityIsFull: connectivity 0 means the full
// neighbor hypercube, so the diagonal pair merges.
func TestLabel_DefaultConnectivityIsFull(t *testing.T) {
	in := binary2D(t, [][]uint64{
		{1, 0},
		{0, 1},
	})

	_, count, err := regions.Label(in)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

// TestLabel_Deterministic: labeling the same input twice yields
// identical output.
func TestLabel_Deterministic(t *testing.T) {
	in := binary2D(t, [][]uint64{
		{1, 1, 0, 1, 0, 1},
		{0, 1, 0, 1, 1, 0},
		{1, 0, 0, 0, 1, 1},
		{1, 1, 1, 0, 0, 1},
	})

	a, ca, err := regions.Label(in, regions.WithConnectivity(2))
	require.NoError(t, err)
	b, cb, err := regions.Label(in, regions.WithConnectivity(2))
	require.NoError(t, err)
	assert.Equal(t, ca, cb)
	assert.Equal(t, rasterUints(a), rasterUints(b))
}

// TestLabel_StrideIndependence: the same logical content behind
// reversed storage strides labels identically.
func TestLabel_StrideIndependence(t *testing.T) {
	vals := []uint64{0, 1, 1, 0, 1, 0, 1, 1, 1}
	normal := binary1D(t, vals)

	reversed, err := ndimage.NewWithStrides([]int{len(vals)}, []int{-1}, len(vals)-1, ndimage.Binary)
	require.NoError(t, err)
	for x, v := range vals {
		reversed.SetUint([]int{x}, v)
	}

	a, ca, err := regions.Label(normal, regions.WithConnectivity(1))
	require.NoError(t, err)
	b, cb, err := regions.Label(reversed, regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, ca, cb)
	assert.Equal(t, rasterUints(a), rasterUints(b))
}

// TestLabel_Periodic1D: under a periodic boundary the two edge runs are
// one component.
func TestLabel_Periodic1D(t *testing.T) {
	in := binary1D(t, []uint64{1, 0, 1})

	out, count, err := regions.Label(in,
		regions.WithConnectivity(1),
		regions.WithBoundary(neighborhood.BoundaryPeriodic),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
	assert.Equal(t, []uint64{1, 0, 1}, rasterUints(out))

	// Hard stop keeps them apart.
	_, count, err = regions.Label(in, regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)
}

// TestLabel_PeriodicPerDimension wraps only dimension 0: columns touch
// across the left/right seam, rows do not wrap.
func TestLabel_PeriodicPerDimension(t *testing.T) {
	in := binary2D(t, [][]uint64{
		{1, 0, 0, 1},
		{0, 0, 0, 0},
		{1, 0, 0, 0},
	})

	out, count, err := regions.Label(in,
		regions.WithConnectivity(1),
		regions.WithBoundary(neighborhood.BoundaryPeriodic, neighborhood.BoundaryDefault),
	)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count, "top row wraps into one object; bottom-left stays alone")
	assert.Equal(t, []uint64{
		1, 0, 0, 1,
		0, 0, 0, 0,
		2, 0, 0, 0,
	}, rasterUints(out))
}

// TestLabel_AllBackground labels an empty image: zero objects.
func TestLabel_AllBackground(t *testing.T) {
	in := binary2D(t, [][]uint64{{0, 0}, {0, 0}})

	out, count, err := regions.Label(in)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), count)
	assert.Equal(t, []uint64{0, 0, 0, 0}, rasterUints(out))
}

// TestLabel_MinSizeInvariant: after filtering, every survivor has at
// least MinSize pixels and IDs are exactly 1..count.
func TestLabel_MinSizeInvariant(t *testing.T) {
	in := binary2D(t, [][]uint64{
		{1, 0, 1, 1, 0, 1},
		{0, 0, 1, 1, 0, 1},
		{1, 0, 0, 0, 0, 1},
	})
	const k = 3

	out, count, err := regions.Label(in,
		regions.WithConnectivity(1),
		regions.WithSizeRange(k, 0),
	)
	require.NoError(t, err)

	sizes := make(map[uint64]uint64)
	for _, v := range rasterUints(out) {
		if v != 0 {
			sizes[v]++
		}
	}
	assert.Equal(t, int(count), len(sizes), "IDs must be dense")
	for id := uint64(1); id <= count; id++ {
		assert.GreaterOrEqual(t, sizes[id], uint64(k), "object %d too small", id)
	}
}

// TestLabel_Validation covers the eager failure modes.
func TestLabel_Validation(t *testing.T) {
	_, _, err := regions.Label(nil)
	assert.ErrorIs(t, err, regions.ErrNilImage)

	lab := label1D(t, []uint64{0, 1})
	_, _, err = regions.Label(lab)
	assert.ErrorIs(t, err, regions.ErrTypeMismatch, "label input is not binary")

	tensor, terr := ndimage.NewTensor([]int{2}, ndimage.Binary, 2)
	require.NoError(t, terr)
	_, _, err = regions.Label(tensor)
	assert.ErrorIs(t, err, regions.ErrNotScalar)

	in := binary2D(t, [][]uint64{{1, 0}, {0, 1}})
	_, _, err = regions.Label(in, regions.WithConnectivity(3))
	assert.ErrorIs(t, err, regions.ErrInvalidParameter)
	_, _, err = regions.Label(in, regions.WithConnectivity(-1))
	assert.ErrorIs(t, err, regions.ErrInvalidParameter, "alternating makes no sense for labeling")

	_, _, err = regions.Label(in, regions.WithBoundary(
		neighborhood.BoundaryPeriodic, neighborhood.BoundaryPeriodic, neighborhood.BoundaryPeriodic,
	))
	assert.ErrorIs(t, err, regions.ErrInvalidParameter, "boundary array length must be 0, 1 or D")
}

// TestLabel_3D labels a 2×2×2 volume with two opposite corner voxels:
// separate under face connectivity, merged under full connectivity.
func TestLabel_3D(t *testing.T) {
	im, err := ndimage.NewBinary([]int{2, 2, 2})
	require.NoError(t, err)
	im.SetUint([]int{0, 0, 0}, 1)
	im.SetUint([]int{1, 1, 1}, 1)

	_, count, err := regions.Label(im, regions.WithConnectivity(1))
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	_, count, err = regions.Label(im, regions.WithConnectivity(3))
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}
