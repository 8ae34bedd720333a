package regions

import (
	"container/heap"
	"math"

	"github.com/katalvlaran/lvlregions/ndimage"
	"github.com/katalvlaran/lvlregions/neighborhood"
)

// GrowRegionsWeighted grows labeled regions under a grey-weighted
// distance metric, producing a full labeled partition of the image.
//
// Every labeled pixel of the input is a zero-cost seed. For every other
// pixel, the cost to a seed is the minimum over all paths of the sum of
// per-step costs, where one step from u to a neighbor v costs the
// metric's geometric distance for that offset times the mean of the
// grey values at u and v. The pixel receives the label of the seed
// region achieving the minimal cost; every pixel reachable from a seed
// ends up labeled.
//
// The expansion is a multi-source Dijkstra flood: a min-priority
// frontier keyed by tentative cost pops the cheapest pending pixel,
// finalizes its label, and relaxes its unfinalized neighbors. Equal
// costs pop in ascending raster-index order, so the partition is fully
// deterministic and reproducible.
//
// The metric defaults to chamfer of order 2 (WithMetric to override;
// non-isotropic sampling goes through Metric.PixelSize). Masking is not
// implemented: a call carrying WithMask fails with ErrMaskNotImplemented
// rather than returning a silently unmasked partition.
//
// The output element type is ndimage.Label regardless of the input
// label type.
//
// Errors: ErrNotScalar (any input tensor-valued), ErrTypeMismatch
// (label not unsigned-integer, grey not real-valued),
// ErrDimensionsDontMatch, ErrMaskNotImplemented,
// neighborhood.ErrBadMetric / ErrBadPixelSize (metric specification).
//
// Complexity: O(N·3^D log N) time, O(N) memory.
func GrowRegionsWeighted(label, grey *ndimage.Image, opts ...Option) (*ndimage.Image, error) {
	cfg := buildOptions(opts)
	if err := requireScalar(label); err != nil {
		return nil, err
	}
	if err := requireScalar(grey); err != nil {
		return nil, err
	}
	if cfg.Mask != nil {
		if !cfg.Mask.IsScalar() {
			return nil, ErrNotScalar
		}

		return nil, ErrMaskNotImplemented
	}
	if !label.DataType().IsUnsigned() {
		return nil, ErrTypeMismatch
	}
	if !grey.DataType().IsReal() {
		return nil, ErrTypeMismatch
	}
	if !label.SameSizes(grey) {
		return nil, ErrDimensionsDontMatch
	}

	nh, err := cfg.Metric.Neighborhood(label.Dimensionality())
	if err != nil {
		return nil, err
	}

	out, err := ndimage.NewLabel(label.Sizes())
	if err != nil {
		return nil, err
	}

	r := &weightedRunner{
		label: label,
		grey:  grey,
		out:   out,
		nh:    nh,
		sizes: label.Sizes(),
	}
	r.init()
	r.flood()

	return out, nil
}

// weightedRunner holds the mutable state of one weighted-growth call.
// All slices are indexed by dense raster index; out is freshly built
// with normal strides, so its storage offsets coincide with raster
// indices.
type weightedRunner struct {
	label *ndimage.Image
	grey  *ndimage.Image
	out   *ndimage.Image
	nh    *neighborhood.Neighborhood
	sizes []int

	cost []float64 // tentative cost per pixel; +Inf until first relaxed
	done []bool    // cost and label finalized
	pq   pixelPQ   // frontier, lazy decrease-key
}

// init seeds the frontier: every labeled input pixel starts at cost 0
// under its own label; everything else starts unreached.
func (r *weightedRunner) init() {
	n := r.label.NumPixels()
	r.cost = make([]float64, n)
	r.done = make([]bool, n)
	inf := math.Inf(1)
	for i := range r.cost {
		r.cost[i] = inf
	}

	heap.Init(&r.pq)
	for it := r.label.NewIterator(); it.Valid(); it.Next() {
		if v := r.label.UintAtOffset(it.Offset()); v != 0 {
			idx := it.Index()
			r.cost[idx] = 0
			r.out.SetUintAtOffset(idx, v)
			heap.Push(&r.pq, &pixelItem{index: idx})
		}
	}
}

// flood is the greedy finalize-then-relax loop.
func (r *weightedRunner) flood() {
	dims := len(r.sizes)
	coords := make([]int, dims)
	ncoords := make([]int, dims)

	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*pixelItem)
		u := item.index
		if r.done[u] {
			continue // stale frontier entry
		}
		r.done[u] = true

		rasterCoords(u, r.sizes, coords)
		lab := r.out.UintAtOffset(u)
		gu := r.grey.FloatAt(coords)

		for i := 0; i < r.nh.Len(); i++ {
			if !applyOffset(coords, r.nh.Offset(i), r.sizes, ncoords) {
				continue
			}
			v := r.label.RasterIndex(ncoords)
			if r.done[v] {
				continue
			}
			// Step cost: geometric distance × mean endpoint grey.
			// Dijkstra needs non-negative steps; negative grey means
			// clamp to zero.
			step := r.nh.Distance(i) * 0.5 * (gu + r.grey.FloatAt(ncoords))
			if step < 0 {
				step = 0
			}
			nd := r.cost[u] + step
			if nd < r.cost[v] {
				r.cost[v] = nd
				r.out.SetUintAtOffset(v, lab)
				heap.Push(&r.pq, &pixelItem{index: v, cost: nd})
			}
		}
	}
}

// rasterCoords decodes a dense raster index into coordinates.
func rasterCoords(idx int, sizes []int, coords []int) {
	for d, s := range sizes {
		coords[d] = idx % s
		idx /= s
	}
}

// pixelItem is one frontier entry: a pixel and its tentative cost.
type pixelItem struct {
	cost  float64
	index int
}

// pixelPQ is a min-heap of *pixelItem ordered by cost, with ascending
// raster index as the tie-break. Stale entries from the lazy
// decrease-key pattern are skipped at pop time via done[].
type pixelPQ []*pixelItem

// Len returns the number of frontier entries.
func (pq pixelPQ) Len() int { return len(pq) }

// Less orders by cost, then raster index: the tie-break that makes
// equal-cost contention deterministic.
func (pq pixelPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}

	return pq[i].index < pq[j].index
}

// Swap swaps two frontier entries.
func (pq pixelPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends a new frontier entry; called by heap.Push.
func (pq *pixelPQ) Push(x interface{}) { *pq = append(*pq, x.(*pixelItem)) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *pixelPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
