package topocore

import (
	"context"
	"testing"
)

func TestEdgeKey_SymmetricInInputOrder(t *testing.T) {
	if edgeKey(1, 2) != edgeKey(2, 1) {
		t.Error("edgeKey should be symmetric in its arguments")
	}
}

func TestEdgeKey_DifferentPairsDifferentKeys(t *testing.T) {
	if edgeKey(1, 2) == edgeKey(1, 3) {
		t.Error("different edges produced the same key")
	}
}

// buildTestKnn constructs a KnnResult by hand, bypassing Knn, so complex.go
// tests can control the exact neighbor graph under test.
func buildTestKnn(n, k int, idx [][]int32) *KnnResult {
	flat := make([]int32, n*k)
	dist := make([]float64, n*k)
	for i, row := range idx {
		copy(flat[i*k:(i+1)*k], row)
	}
	return &KnnResult{Dist: dist, Idx: flat, N: n, K: k}
}

func TestBuildComplex_DeduplicatesEdges(t *testing.T) {
	// 0->1, 1->0: same undirected edge, should appear once.
	knn := buildTestKnn(2, 1, [][]int32{{1}, {0}})
	filt := Filtration{-1, -2}

	c, err := BuildComplex(context.Background(), knn, filt, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Edges) != 1 {
		t.Fatalf("expected 1 deduplicated edge, got %d", len(c.Edges))
	}
	e := c.Edges[0]
	if e.Src != 0 || e.Dst != 1 {
		t.Errorf("edge = (%d,%d), want (0,1)", e.Src, e.Dst)
	}
	if e.Filt != max2(filt[0], filt[1]) {
		t.Errorf("edge filt = %v, want max(%v,%v)", e.Filt, filt[0], filt[1])
	}
}

func TestBuildComplex_SkipsTrianglesWhenNotRequested(t *testing.T) {
	knn := buildTestKnn(3, 2, [][]int32{{1, 2}, {0, 2}, {0, 1}})
	filt := Filtration{-1, -1, -1}

	c, err := BuildComplex(context.Background(), knn, filt, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Triangles != nil {
		t.Errorf("expected nil Triangles when withTriangles=false, got %v", c.Triangles)
	}
}

func TestBuildComplex_FindsTriangle(t *testing.T) {
	// A fully connected triple {0,1,2}: every pair is mutually a neighbor.
	knn := buildTestKnn(3, 2, [][]int32{{1, 2}, {0, 2}, {0, 1}})
	filt := Filtration{-3, -2, -1}

	c, err := BuildComplex(context.Background(), knn, filt, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Triangles) != 1 {
		t.Fatalf("expected 1 triangle, got %d", len(c.Triangles))
	}
	tri := c.Triangles[0]
	if tri.V0 != 0 || tri.V1 != 1 || tri.V2 != 2 {
		t.Errorf("triangle = (%d,%d,%d), want (0,1,2)", tri.V0, tri.V1, tri.V2)
	}
	if tri.Filt != max3(filt[0], filt[1], filt[2]) {
		t.Errorf("triangle filt = %v, want max of vertex filtrations", tri.Filt)
	}
}

func TestBuildComplex_NoTriangleWithoutFullClosure(t *testing.T) {
	// 0-1, 1-2 connected, but 0 and 2 are not neighbors: no closed triangle.
	knn := buildTestKnn(3, 1, [][]int32{{1}, {2}, {1}})
	filt := Filtration{-1, -1, -1}

	c, err := BuildComplex(context.Background(), knn, filt, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Triangles) != 0 {
		t.Errorf("expected 0 triangles, got %d", len(c.Triangles))
	}
}

func TestBuildComplex_EmptyGraphYieldsNoEdges(t *testing.T) {
	knn := &KnnResult{Dist: nil, Idx: nil, N: 0, K: 0}
	filt := Filtration{}

	c, err := BuildComplex(context.Background(), knn, filt, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Edges) != 0 || len(c.Triangles) != 0 {
		t.Errorf("expected empty complex, got %d edges, %d triangles", len(c.Edges), len(c.Triangles))
	}
}

func TestBuildComplex_RespectsCancellation(t *testing.T) {
	knn := buildTestKnn(2, 1, [][]int32{{1}, {0}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := BuildComplex(ctx, knn, Filtration{-1, -1}, true)
	if err == nil {
		t.Fatal("expected an error for a cancelled context")
	}
}
