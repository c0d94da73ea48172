package topocore

// birthUnionFind is the disjoint-set arena PersistenceH0 reduces edges into.
// It is the §9 redesign of the teacher's UnionFind (parent/size integer
// arrays, path compression by halving) adapted to §4.4's merge rule: the
// component with the later (larger) birth value dies when two components
// merge, and ties in rank increment the survivor's rank rather than always
// preferring the larger tree.
//
// Tree attachment (which root becomes the other's parent) is governed by
// rank for balance, same as the teacher's size-based attachment; it is
// independent of which component is the semantic "survivor" (earlier
// birth). Whichever node ends up as the merged root has its birth value
// overwritten with the surviving birth, so a lookup after union always
// returns the earlier birth regardless of which side rank attached to.
type birthUnionFind struct {
	parent []int32
	rank   []int8
	birth  []float64
}

// newBirthUnionFind creates a union-find over n elements, seeding birth[i]
// from the vertex filtration.
func newBirthUnionFind(vertexFilt Filtration) *birthUnionFind {
	n := len(vertexFilt)
	uf := &birthUnionFind{
		parent: make([]int32, n),
		rank:   make([]int8, n),
		birth:  make([]float64, n),
	}
	for i := 0; i < n; i++ {
		uf.parent[i] = int32(i)
		uf.birth[i] = vertexFilt[i]
	}
	return uf
}

// find returns the root of the set containing x, using path halving: every
// node visited on the way up is repointed at its grandparent, which is
// cheaper than full compression (one extra read instead of a second pass)
// and asymptotically just as effective.
func (uf *birthUnionFind) find(x int32) int32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// union merges the sets rooted at rx and ry (both already roots), returning
// the birth value of the component that dies per §4.4.
func (uf *birthUnionFind) union(rx, ry int32) (dyingBirth float64) {
	survivor, dying := rx, ry
	if uf.birth[ry] < uf.birth[rx] {
		survivor, dying = ry, rx
	}
	dyingBirth = uf.birth[dying]
	survivorBirth := uf.birth[survivor]

	switch {
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
		uf.birth[ry] = survivorBirth
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
		uf.birth[rx] = survivorBirth
	default:
		uf.parent[ry] = rx
		uf.birth[rx] = survivorBirth
		uf.rank[rx]++
	}
	return dyingBirth
}
