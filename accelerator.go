package topocore

import "context"

// Accelerator is the capability object from §9's redesign note: "the source
// branches at every call site... redesign as a capability object selected
// at pipeline construction that implements the same operation set; call
// sites invoke through the capability without branching." Pipeline resolves
// exactly one Accelerator in New and never re-checks availability again
// (§5: "any 'GPU available' predicate is evaluated once at pipeline
// construction and is thereafter read-only").
type Accelerator interface {
	// Available reports whether this capability can serve requests right
	// now. Evaluated once, at resolution time.
	Available() bool

	// Knn and RadiusQuery mirror the package-level functions of the same
	// name so a capability can serve either operation without the caller
	// knowing which implementation answered.
	Knn(ctx context.Context, points *PointMatrix, k, workers int) (*KnnResult, error)
	RadiusQuery(ctx context.Context, points *PointMatrix, center []float64, radius float64, workers int) ([]int32, error)
}

// hostAccelerator is always available and delegates directly to the
// brute-force, goroutine-parallel implementations in knn.go/radius.go.
type hostAccelerator struct{}

func (hostAccelerator) Available() bool { return true }

func (hostAccelerator) Knn(ctx context.Context, points *PointMatrix, k, workers int) (*KnnResult, error) {
	return Knn(ctx, points, k, workers)
}

func (hostAccelerator) RadiusQuery(ctx context.Context, points *PointMatrix, center []float64, radius float64, workers int) ([]int32, error) {
	return RadiusQuery(ctx, points, center, radius, workers)
}

// cudaAccelerator represents the GPU capability described in §4.1/§4.6. The
// kernels it would bind to (topo_gpu_knn, topo_gpu_radius_query, …) live in
// original_source/packages/cuda-kernels as a C/CUDA shared library — not a
// Go package available anywhere in this corpus, so there is no cgo binding
// to build here. Available always reports false and every method returns
// ErrAcceleratorUnavailable; this is the permitted §4.1 behavior ("fail with
// AcceleratorUnavailable"), not a placeholder waiting to be filled in.
type cudaAccelerator struct{}

func (cudaAccelerator) Available() bool { return false }

func (cudaAccelerator) Knn(context.Context, *PointMatrix, int, int) (*KnnResult, error) {
	return nil, ErrAcceleratorUnavailable
}

func (cudaAccelerator) RadiusQuery(context.Context, *PointMatrix, []float64, float64, int) ([]int32, error) {
	return nil, ErrAcceleratorUnavailable
}

// resolveAccelerator implements §7's fallback policy: required demands a
// working accelerator or fails fast; auto prefers the accelerator but falls
// back silently to host; off always uses host.
func resolveAccelerator(mode AcceleratorMode) (Accelerator, error) {
	accel := cudaAccelerator{}
	switch mode {
	case AcceleratorOff:
		return hostAccelerator{}, nil
	case AcceleratorRequired:
		if !accel.Available() {
			return nil, ErrAcceleratorUnavailable
		}
		return accel, nil
	default: // AcceleratorAuto
		if accel.Available() {
			return accel, nil
		}
		return hostAccelerator{}, nil
	}
}
