// Package unionfind provides a disjoint-set structure over provisional
// label IDs, the merge table behind single-pass connected-component
// labeling.
//
// Unlike a general-purpose DSU keyed by strings, the set elements here
// are the integers 1..K issued by MakeSet during one raster pass, so
// the whole structure is an arena of parent slots indexed by ID. The
// table is scoped to a single labeling call and discarded afterwards.
//
// Determinism: Union always keeps the lower root as the representative,
// and Flatten numbers components by ascending first-encountered
// provisional ID. Together these make the final label numbering a pure
// function of the input, independent of union order.
package unionfind

// UnionFind is a disjoint-set arena over IDs 1..Size().
// Slot 0 is reserved (background) and never a member.
type UnionFind struct {
	parent []uint32
}

// New returns an empty UnionFind. capacityHint sizes the arena upfront
// to avoid re-allocation during the raster pass; 0 is fine.
func New(capacityHint int) *UnionFind {
	p := make([]uint32, 1, capacityHint+1)

	return &UnionFind{parent: p}
}

// MakeSet issues the next provisional ID as a fresh singleton set.
// Complexity: amortized O(1).
func (uf *UnionFind) MakeSet() uint32 {
	id := uint32(len(uf.parent))
	uf.parent = append(uf.parent, id)

	return id
}

// Size returns the number of provisional IDs issued so far.
func (uf *UnionFind) Size() int { return len(uf.parent) - 1 }

// Find returns the representative of the set containing x, applying
// path compression. x must be an issued ID; anything else is a
// programming error and panics via the slice bounds check.
// Complexity: near O(1) amortized.
func (uf *UnionFind) Find(x uint32) uint32 {
	for uf.parent[x] != x {
		// Point x at its grandparent, halving the path.
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}

	return x
}

// Union merges the sets containing a and b and returns the surviving
// root. The lower root wins: the later-created root is attached under
// the earlier one, so the representative of any component is always its
// first-encountered provisional ID.
func (uf *UnionFind) Union(a, b uint32) uint32 {
	ra, rb := uf.Find(a), uf.Find(b)
	if ra == rb {
		return ra
	}
	if rb < ra {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra

	return ra
}

// Flatten resolves every provisional ID to a dense final ID and returns
// the mapping table plus the number of distinct components.
//
// table[p] is the final ID of provisional ID p, in 1..count; table[0] is
// 0 (background). Final IDs are assigned in ascending order of each
// root's ID, i.e. by first occurrence in the issuing order. The
// structure is spent after Flatten; callers must not issue further
// MakeSet/Union calls on it.
// Complexity: O(K α(K)).
func (uf *UnionFind) Flatten() ([]uint32, uint32) {
	table := make([]uint32, len(uf.parent))
	var count uint32
	for p := uint32(1); p < uint32(len(uf.parent)); p++ {
		r := uf.Find(p)
		if r == p {
			count++
			table[p] = count
		} else {
			// Roots precede their members, so table[r] is already set.
			table[p] = table[r]
		}
	}

	return table, count
}
