package topocore

import "math"

// PointMatrix is a dense, row-major (n, d) point cloud. It is borrowed by
// every pipeline stage and mutated by none of them.
type PointMatrix struct {
	Data []float64 // flat row-major, length N*D
	N    int
	D    int
}

// NewPointMatrix validates and wraps a flat row-major point cloud. data is
// not copied; the caller retains ownership and must not mutate it while the
// matrix is in use.
func NewPointMatrix(data []float64, n, d int) (*PointMatrix, error) {
	if n < 2 {
		return nil, codeErrorf(InvalidArgument, "n must be >= 2, got %d", n)
	}
	if d < 1 {
		return nil, codeErrorf(InvalidArgument, "d must be >= 1, got %d", d)
	}
	if len(data) != n*d {
		return nil, codeErrorf(InvalidArgument, "data length %d does not match n*d = %d", len(data), n*d)
	}
	for _, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, codeErrorf(InvalidArgument, "point matrix contains a non-finite entry")
		}
	}
	return &PointMatrix{Data: data, N: n, D: d}, nil
}

// Row returns the i-th point as a sub-slice of the underlying data; callers
// must not retain it beyond the lifetime of the PointMatrix.
func (p *PointMatrix) Row(i int) []float64 {
	return p.Data[i*p.D : (i+1)*p.D]
}

// KnnResult is the (n, k) distance and index matrix produced by Knn.
// Dist[i] is sorted ascending; Idx[i][r] is never i.
type KnnResult struct {
	Dist []float64 // flat row-major, length N*K
	Idx  []int32   // flat row-major, length N*K
	N    int
	K    int
}

// DistRow returns the i-th row of Dist.
func (r *KnnResult) DistRow(i int) []float64 { return r.Dist[i*r.K : (i+1)*r.K] }

// IdxRow returns the i-th row of Idx.
func (r *KnnResult) IdxRow(i int) []int32 { return r.Idx[i*r.K : (i+1)*r.K] }

// Filtration holds one scalar filtration value per point, in sublevel-set
// convention (lower value = earlier in the filtration).
type Filtration []float64

// Edge is an undirected 1-simplex with src < dst and filt = max of its two
// endpoint filtration values (upper-star construction, §3).
type Edge struct {
	Src, Dst int32
	Filt     float64
}

// Triangle is a 2-simplex with v0 < v1 < v2 and filt = max of its three
// edges' filtration values.
type Triangle struct {
	V0, V1, V2 int32
	Filt       float64
}

// Complex is the simplicial input to persistence: the vertex filtration
// (identical to the Filtration that built it), a deduplicated edge list,
// and — when H1 is requested — a deduplicated triangle list.
type Complex struct {
	VertexFilt Filtration
	Edges      []Edge
	Triangles  []Triangle
}

// PersistencePair is a single (birth, death) homology feature in a given
// dimension. Only finite, strictly death > birth pairs are ever emitted.
type PersistencePair struct {
	Birth, Death float64
	Dim          int
}

// Lifetime returns Death - Birth.
func (p PersistencePair) Lifetime() float64 { return p.Death - p.Birth }

// Candidate is a significant persistence pair together with the indices of
// every input point enumerated as a member of that feature.
type Candidate struct {
	Birth, Death, Lifetime float64
	Members                []int32
}

// RunMetadata summarizes a single pipeline invocation per §6's "Run
// metadata" output.
type RunMetadata struct {
	N, D, K int
	Sigma   float64
	Epsilon float64
	// Counts[dim] is the number of finite persistence pairs in that
	// dimension; dim 0 is H0, dim 1 is H1.
	Counts [2]int
}

// Result is the top-level output of Pipeline.Run: one persistence diagram
// and one candidate list per homology dimension (0 = H0, 1 = H1), plus run
// metadata.
type Result struct {
	Diagrams   [2][]PersistencePair
	Candidates [2][]Candidate
	Metadata   RunMetadata
}
