package topocore

import (
	"context"
	"math"
)

// Knn computes, for every point in points, the k nearest neighbors
// (excluding itself) by Euclidean distance. Rows are independently
// determined, so the result is invariant under parallelization (§5).
//
// Contract (§4.1): fails with InvalidArgument when n <= 0, d <= 0, k <= 0,
// or k >= n. Within a row, neighbors are strictly ascending by distance,
// ties broken by ascending index — the insertion-sort below maintains that
// ordering by construction instead of needing a separate stable sort pass.
func Knn(ctx context.Context, points *PointMatrix, k, workers int) (*KnnResult, error) {
	n, d := points.N, points.D
	if n <= 0 || d <= 0 {
		return nil, codeErrorf(InvalidArgument, "n and d must be positive, got n=%d d=%d", n, d)
	}
	if k <= 0 {
		return nil, codeErrorf(InvalidArgument, "k must be >= 1, got %d", k)
	}
	if k >= n {
		return nil, codeErrorf(InvalidArgument, "k must be < n, got k=%d n=%d", k, n)
	}
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	dist := make([]float64, n*k)
	idx := make([]int32, n*k)

	parallelFor(n, workers, func(start, end int) {
		// Scratch top-k buffers are per-worker so concurrent rows never
		// share writable state.
		topDist := make([]float64, k)
		topIdx := make([]int32, k)
		for i := start; i < end; i++ {
			knnRow(points, i, k, topDist, topIdx)
			copy(dist[i*k:(i+1)*k], topDist)
			copy(idx[i*k:(i+1)*k], topIdx)
		}
	})

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	return &KnnResult{Dist: dist, Idx: idx, N: n, K: k}, nil
}

// knnRow fills topDist/topIdx (both length k) with the k nearest neighbors
// of point i, sorted ascending by squared distance then index. Using
// squared distance for the insertion comparisons and taking the root only
// once per slot follows the teacher's ReducedDistance-then-Distance split
// in EuclideanMetric.
func knnRow(points *PointMatrix, i, k int, topDist []float64, topIdx []int32) {
	filled := 0
	qi := points.Row(i)

	for j := 0; j < points.N; j++ {
		if j == i {
			continue
		}
		sq := euclideanSumOfSquares(qi, points.Row(j))

		// Insert (sq, j) into the sorted prefix topDist[:filled], keeping it
		// bounded to k entries. Ties on distance break on ascending index,
		// matching §4.1's tie-break rule.
		pos := filled
		if filled == k {
			if sq > topDist[k-1] || (sq == topDist[k-1] && int32(j) > topIdx[k-1]) {
				continue
			}
			pos = k - 1
		} else {
			filled++
		}
		for pos > 0 && (topDist[pos-1] > sq || (topDist[pos-1] == sq && topIdx[pos-1] > int32(j))) {
			topDist[pos] = topDist[pos-1]
			topIdx[pos] = topIdx[pos-1]
			pos--
		}
		topDist[pos] = sq
		topIdx[pos] = int32(j)
	}

	for r := 0; r < k; r++ {
		topDist[r] = sqrtOnce(topDist[r])
	}
}

// sqrtOnce takes the square root, defined to return exactly 0 for an input
// of 0 so coincident points (§4.1) never produce a negative-zero artifact.
func sqrtOnce(x float64) float64 {
	if x == 0 {
		return 0
	}
	return math.Sqrt(x)
}
