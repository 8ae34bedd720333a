package regions_test

import (
	"testing"

	"github.com/katalvlaran/lvlregions/ndimage"
)

// binary1D builds a 1-D binary image from a 0/1 sequence.
func binary1D(t *testing.T, vals []uint64) *ndimage.Image {
	t.Helper()

	return fill1D(t, vals, ndimage.Binary)
}

// label1D builds a 1-D label image from a value sequence.
func label1D(t *testing.T, vals []uint64) *ndimage.Image {
	t.Helper()

	return fill1D(t, vals, ndimage.Label)
}

func fill1D(t *testing.T, vals []uint64, dt ndimage.DataType) *ndimage.Image {
	t.Helper()
	im, err := ndimage.New([]int{len(vals)}, dt)
	if err != nil {
		t.Fatalf("ndimage.New failed: %v", err)
	}
	for x, v := range vals {
		im.SetUint([]int{x}, v)
	}

	return im
}

// binary2D builds a 2-D binary image from rows[y][x].
func binary2D(t *testing.T, rows [][]uint64) *ndimage.Image {
	t.Helper()

	return fill2D(t, rows, ndimage.Binary)
}

// label2D builds a 2-D label image from rows[y][x].
func label2D(t *testing.T, rows [][]uint64) *ndimage.Image {
	t.Helper()

	return fill2D(t, rows, ndimage.Label)
}

func fill2D(t *testing.T, rows [][]uint64, dt ndimage.DataType) *ndimage.Image {
	t.Helper()
	h, w := len(rows), len(rows[0])
	im, err := ndimage.New([]int{w, h}, dt)
	if err != nil {
		t.Fatalf("ndimage.New failed: %v", err)
	}
	for y, row := range rows {
		for x, v := range row {
			im.SetUint([]int{x, y}, v)
		}
	}

	return im
}

// grey1D builds a 1-D double-precision grey image.
func grey1D(t *testing.T, vals []float64) *ndimage.Image {
	t.Helper()
	im, err := ndimage.NewGrey([]int{len(vals)})
	if err != nil {
		t.Fatalf("ndimage.NewGrey failed: %v", err)
	}
	for x, v := range vals {
		im.SetFloat([]int{x}, v)
	}

	return im
}

// grey2D builds a 2-D double-precision grey image from rows[y][x].
func grey2D(t *testing.T, rows [][]float64) *ndimage.Image {
	t.Helper()
	h, w := len(rows), len(rows[0])
	im, err := ndimage.NewGrey([]int{w, h})
	if err != nil {
		t.Fatalf("ndimage.NewGrey failed: %v", err)
	}
	for y, row := range rows {
		for x, v := range row {
			im.SetFloat([]int{x, y}, v)
		}
	}

	return im
}

// rasterUints flattens an image's integer samples in raster order.
func rasterUints(im *ndimage.Image) []uint64 {
	out := make([]uint64, 0, im.NumPixels())
	for it := im.NewIterator(); it.Valid(); it.Next() {
		out = append(out, im.UintAtOffset(it.Offset()))
	}

	return out
}
