package topocore

import (
	"context"
	"sort"
)

// boundaryColumn is a triangle's boundary in the edge basis, kept in
// descending row-index order. Symmetric difference over Z/2 is a linear
// merge of two descending lists that drops equal entries — no allocation
// beyond the result slice, no reference counting (§9: "an owned vector of
// owned vectors; column replacement is a move").
type boundaryColumn []int32

// pivot returns the column's largest row index (its pivot), or -1 if the
// column has been fully reduced to empty.
func (c boundaryColumn) pivot() int32 {
	if len(c) == 0 {
		return -1
	}
	return c[0]
}

// xor computes the symmetric difference of two descending-sorted columns.
func xor(a, b boundaryColumn) boundaryColumn {
	out := make(boundaryColumn, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] > b[j]:
			out = append(out, a[i])
			i++
		case a[i] < b[j]:
			out = append(out, b[j])
			j++
		default:
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// PersistenceH1 reduces the 2-skeleton to H1 birth/death pairs by
// left-to-right column reduction over Z/2 (§4.5). edges need not be
// pre-sorted; this function establishes edge order itself so the row index
// of an edge inside a triangle's boundary column is well defined.
func PersistenceH1(ctx context.Context, edges []Edge, triangles []Triangle) ([]PersistencePair, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	sortedEdges := make([]Edge, len(edges))
	copy(sortedEdges, edges)
	sort.Slice(sortedEdges, func(i, j int) bool {
		a, b := sortedEdges[i], sortedEdges[j]
		if a.Filt != b.Filt {
			return a.Filt < b.Filt
		}
		if a.Src != b.Src {
			return a.Src < b.Src
		}
		return a.Dst < b.Dst
	})
	edgeRow := make(map[uint64]int32, len(sortedEdges))
	for i, e := range sortedEdges {
		edgeRow[edgeKey(e.Src, e.Dst)] = int32(i)
	}

	sortedTri := make([]Triangle, len(triangles))
	copy(sortedTri, triangles)
	sort.Slice(sortedTri, func(i, j int) bool {
		a, b := sortedTri[i], sortedTri[j]
		if a.Filt != b.Filt {
			return a.Filt < b.Filt
		}
		if a.V0 != b.V0 {
			return a.V0 < b.V0
		}
		if a.V1 != b.V1 {
			return a.V1 < b.V1
		}
		return a.V2 < b.V2
	})

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	columns := make([]boundaryColumn, len(sortedTri))
	for i, t := range sortedTri {
		rows := []int32{
			edgeRow[edgeKey(t.V0, t.V1)],
			edgeRow[edgeKey(t.V0, t.V2)],
			edgeRow[edgeKey(t.V1, t.V2)],
		}
		sort.Slice(rows, func(a, b int) bool { return rows[a] > rows[b] })
		columns[i] = boundaryColumn(rows)
	}

	pivotOwner := make([]int, len(sortedEdges))
	for i := range pivotOwner {
		pivotOwner[i] = -1
	}

	var pairs []PersistencePair
	for col := 0; col < len(columns); col++ {
		for {
			p := columns[col].pivot()
			if p < 0 {
				break
			}
			owner := pivotOwner[p]
			if owner < 0 {
				pivotOwner[p] = col
				birth := sortedEdges[p].Filt
				death := sortedTri[col].Filt
				if death > birth {
					pairs = append(pairs, PersistencePair{Birth: birth, Death: death, Dim: 1})
				}
				break
			}
			columns[col] = xor(columns[col], columns[owner])
		}
	}

	return pairs, nil
}
