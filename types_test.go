package topocore

import (
	"errors"
	"math"
	"testing"
)

func TestNewPointMatrix_RejectsTooFewPoints(t *testing.T) {
	_, err := NewPointMatrix([]float64{1, 2}, 1, 2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewPointMatrix_RejectsZeroDims(t *testing.T) {
	_, err := NewPointMatrix([]float64{1, 2}, 2, 0)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewPointMatrix_RejectsLengthMismatch(t *testing.T) {
	_, err := NewPointMatrix([]float64{1, 2, 3}, 2, 2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewPointMatrix_RejectsNaN(t *testing.T) {
	_, err := NewPointMatrix([]float64{1, math.NaN(), 3, 4}, 2, 2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewPointMatrix_RejectsInf(t *testing.T) {
	_, err := NewPointMatrix([]float64{1, math.Inf(1), 3, 4}, 2, 2)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestNewPointMatrix_Accepts(t *testing.T) {
	pm, err := NewPointMatrix([]float64{0, 0, 3, 4}, 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pm.N != 2 || pm.D != 2 {
		t.Fatalf("unexpected dims: N=%d D=%d", pm.N, pm.D)
	}
}

func TestPointMatrix_Row(t *testing.T) {
	pm, err := NewPointMatrix([]float64{0, 0, 3, 4, 6, 8}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	row := pm.Row(1)
	if row[0] != 3 || row[1] != 4 {
		t.Errorf("Row(1) = %v, want [3 4]", row)
	}
}

func TestKnnResult_RowAccessors(t *testing.T) {
	r := &KnnResult{
		Dist: []float64{1, 2, 3, 4},
		Idx:  []int32{0, 1, 2, 3},
		N:    2,
		K:    2,
	}
	if d := r.DistRow(1); d[0] != 3 || d[1] != 4 {
		t.Errorf("DistRow(1) = %v, want [3 4]", d)
	}
	if idx := r.IdxRow(0); idx[0] != 0 || idx[1] != 1 {
		t.Errorf("IdxRow(0) = %v, want [0 1]", idx)
	}
}

func TestPersistencePair_Lifetime(t *testing.T) {
	p := PersistencePair{Birth: -2.0, Death: -0.5}
	if got := p.Lifetime(); got != 1.5 {
		t.Errorf("Lifetime() = %v, want 1.5", got)
	}
}
