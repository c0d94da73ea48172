package topocore

import "context"

// edgeKey canonically encodes an undirected pair (min, max) into a single
// uint64, giving the dedup map from §9 ("hash map keyed on the canonical
// (min, max) pair") a comparable value type instead of a [2]int32 struct key.
func edgeKey(u, v int32) uint64 {
	if u > v {
		u, v = v, u
	}
	return uint64(uint32(u))<<32 | uint64(uint32(v))
}

// BuildComplex produces the simplicial input to persistence from a kNN graph
// and its vertex filtration (§4.3). withTriangles controls whether the
// (more expensive) 2-skeleton is built; FeatureExtractor and PersistenceH0
// never need it, so callers computing H0 only can skip it.
func BuildComplex(ctx context.Context, knn *KnnResult, filt Filtration, withTriangles bool) (*Complex, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	n := knn.N
	seen := make(map[uint64]struct{}, n*knn.K)
	edges := make([]Edge, 0, n*knn.K)
	// neighborSet[i] holds every vertex reachable from i via a kNN edge,
	// including both directions of an asymmetric kNN pair. It backs
	// triangle closure tests the same way original_source's
	// _find_triangles builds a per-vertex set before intersecting.
	var neighborSet []map[int32]struct{}
	if withTriangles {
		neighborSet = make([]map[int32]struct{}, n)
		for i := range neighborSet {
			neighborSet[i] = make(map[int32]struct{}, knn.K)
		}
	}

	for i := 0; i < n; i++ {
		row := knn.IdxRow(i)
		for _, j := range row {
			key := edgeKey(int32(i), j)
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				src, dst := int32(i), j
				if src > dst {
					src, dst = dst, src
				}
				edges = append(edges, Edge{Src: src, Dst: dst, Filt: max2(filt[i], filt[j])})
			}
			if withTriangles {
				neighborSet[i][j] = struct{}{}
				neighborSet[j][int32(i)] = struct{}{}
			}
		}
	}

	c := &Complex{VertexFilt: filt, Edges: edges}

	if withTriangles {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}
		c.Triangles = findTriangles(n, neighborSet, filt)
	}

	return c, nil
}

// findTriangles enumerates closed triangles in the neighbor graph: for each
// vertex i and each neighbor j > i, every common neighbor c > j of both i
// and j closes a triangle (i, j, c), because c being in both neighborSet[i]
// and neighborSet[j] already guarantees all three edges (i,j), (i,c), (j,c)
// exist. This is bounded by iterating neighbor-set intersections rather
// than an O(n^3) scan over all vertex triples, per §4.3, and follows
// original_source's _find_triangles directly.
func findTriangles(n int, neighborSet []map[int32]struct{}, filt Filtration) []Triangle {
	triSeen := make(map[[3]int32]struct{})
	var tris []Triangle

	for i := 0; i < n; i++ {
		for j := range neighborSet[i] {
			if j <= int32(i) {
				continue
			}
			for c := range neighborSet[i] {
				if c <= j {
					continue
				}
				if _, ok := neighborSet[j][c]; !ok {
					continue
				}
				key := [3]int32{int32(i), j, c}
				if _, ok := triSeen[key]; ok {
					continue
				}
				triSeen[key] = struct{}{}
				tris = append(tris, Triangle{
					V0: int32(i), V1: j, V2: c,
					Filt: max3(filt[i], filt[j], filt[c]),
				})
			}
		}
	}
	return tris
}

func max2(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c float64) float64 {
	return max2(max2(a, b), c)
}
