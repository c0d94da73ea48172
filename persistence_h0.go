package topocore

import (
	"context"
	"sort"
)

// PersistenceH0 reduces the 1-skeleton to H0 birth/death pairs by
// sorted-edge union-find (§4.4). Edges are sorted by filt ascending, with
// (src, dst) lexicographic tie-break for determinism (§4.4.1, §8 property
// 5); the merge rule and rank-based union live in unionfind.go.
func PersistenceH0(ctx context.Context, vertexFilt Filtration, edges []Edge) ([]PersistencePair, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	sorted := make([]Edge, len(edges))
	copy(sorted, edges)
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Filt != b.Filt {
			return a.Filt < b.Filt
		}
		if a.Src != b.Src {
			return a.Src < b.Src
		}
		return a.Dst < b.Dst
	})

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	uf := newBirthUnionFind(vertexFilt)
	var pairs []PersistencePair

	for _, e := range sorted {
		ru, rv := uf.find(e.Src), uf.find(e.Dst)
		if ru == rv {
			continue
		}
		dyingBirth := uf.union(ru, rv)
		if dyingBirth < e.Filt {
			pairs = append(pairs, PersistencePair{Birth: dyingBirth, Death: e.Filt, Dim: 0})
		}
	}

	return pairs, nil
}
