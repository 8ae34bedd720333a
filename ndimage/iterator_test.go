package ndimage

import (
	"reflect"
	"testing"
)

// TestIterator_RasterOrder checks the visiting order on a 3×2 image:
// dimension 0 fastest, dense indices 0..5.
func TestIterator_RasterOrder(t *testing.T) {
	im, _ := New([]int{3, 2}, Binary)
	var visited [][]int
	for it := im.NewIterator(); it.Valid(); it.Next() {
		c := make([]int, 2)
		copy(c, it.Coords())
		visited = append(visited, c)
		if want := im.RasterIndex(c); it.Index() != want {
			t.Errorf("Index() = %d at %v; want %d", it.Index(), c, want)
		}
		if want := im.Offset(c); it.Offset() != want {
			t.Errorf("Offset() = %d at %v; want %d", it.Offset(), c, want)
		}
	}
	want := [][]int{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("visiting order = %v; want %v", visited, want)
	}
}

// TestIterator_StridesIndependent verifies that exotic strides do not
// change the coordinate visiting order, only the storage offsets.
func TestIterator_StridesIndependent(t *testing.T) {
	// A reversed 1D view: coordinates 0,1,2 live at offsets 2,1,0.
	im, err := NewWithStrides([]int{3}, []int{-1}, 2, UInt16)
	if err != nil {
		t.Fatalf("NewWithStrides failed: %v", err)
	}
	var offsets, indices []int
	for it := im.NewIterator(); it.Valid(); it.Next() {
		offsets = append(offsets, it.Offset())
		indices = append(indices, it.Index())
	}
	if !reflect.DeepEqual(offsets, []int{2, 1, 0}) {
		t.Errorf("offsets = %v; want [2 1 0]", offsets)
	}
	if !reflect.DeepEqual(indices, []int{0, 1, 2}) {
		t.Errorf("indices = %v; want [0 1 2]", indices)
	}
}

// TestIterator_CountsEveryPixel scans a 3D image and counts pixels.
func TestIterator_CountsEveryPixel(t *testing.T) {
	im, _ := New([]int{2, 3, 4}, UInt32)
	n := 0
	for it := im.NewIterator(); it.Valid(); it.Next() {
		n++
	}
	if n != im.NumPixels() || n != 24 {
		t.Errorf("visited %d pixels; want %d", n, im.NumPixels())
	}
}
