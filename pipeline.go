package topocore

import (
	"context"
	"errors"
)

// Pipeline owns a resolved Config and Accelerator and runs single-shot
// invocations of the six-stage core (§2). A *Pipeline has no other mutable
// state, so it is safe to call Run concurrently from multiple goroutines
// (§5: "no global mutable state is introduced").
type Pipeline struct {
	cfg   Config
	accel Accelerator
}

// New validates cfg, fills in defaults, and resolves the accelerator
// capability once. The resolved capability never changes for the lifetime
// of the returned Pipeline.
func New(cfg Config) (*Pipeline, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	accel, err := resolveAccelerator(cfg.UseAccelerator)
	if err != nil {
		return nil, err
	}
	return &Pipeline{cfg: cfg, accel: accel}, nil
}

// Run executes one pipeline invocation end to end: KnnIndex →
// DensityFiltration → ComplexBuilder → PersistenceH0 and PersistenceH1 (run
// independently on the same complex; neither reads the other's output) →
// FeatureExtractor. ctx is checked at each of the coarse boundaries named in
// §5; a cancellation observed at any boundary aborts the invocation and
// returns ErrCancelled, with nothing from the aborted stage retained.
func (p *Pipeline) Run(ctx context.Context, points *PointMatrix) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}
	if points.N < 2 {
		return nil, codeErrorf(InvalidArgument, "n must be >= 2, got %d", points.N)
	}

	k := p.cfg.K
	if k >= points.N {
		k = points.N - 1
	}

	knnResult, err := p.accel.Knn(ctx, points, k, p.cfg.Workers)
	if err != nil {
		if isUnavailable(err) && p.cfg.UseAccelerator == AcceleratorAuto {
			knnResult, err = hostAccelerator{}.Knn(ctx, points, k, p.cfg.Workers)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	kth := make([]float64, points.N)
	for i := 0; i < points.N; i++ {
		row := knnResult.DistRow(i)
		kth[i] = row[len(row)-1]
	}
	filt := DensityFiltration(kth, p.cfg.EpsilonDensity)

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	cx, err := BuildComplex(ctx, knnResult, filt, true)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	h0Pairs, err := PersistenceH0(ctx, cx.VertexFilt, cx.Edges)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	h1Pairs, err := PersistenceH1(ctx, cx.Edges, cx.Triangles)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	h0Candidates, err := ExtractFeatures(ctx, h0Pairs, points, filt, p.cfg.Sigma, p.cfg.Workers)
	if err != nil {
		return nil, err
	}
	h1Candidates, err := ExtractFeatures(ctx, h1Pairs, points, filt, p.cfg.Sigma, p.cfg.Workers)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Diagrams:   [2][]PersistencePair{h0Pairs, h1Pairs},
		Candidates: [2][]Candidate{h0Candidates, h1Candidates},
		Metadata: RunMetadata{
			N:       points.N,
			D:       points.D,
			K:       k,
			Sigma:   p.cfg.Sigma,
			Epsilon: p.cfg.EpsilonDensity,
			Counts:  [2]int{len(h0Pairs), len(h1Pairs)},
		},
	}
	return result, nil
}

// isUnavailable reports whether err is (or wraps) ErrAcceleratorUnavailable.
func isUnavailable(err error) bool {
	return errors.Is(err, ErrAcceleratorUnavailable)
}
