// Package topocore computes persistent homology (degrees 0 and 1) on a dense
// point cloud and extracts the point sets that participate in significant
// topological features.
//
// The pipeline runs k-nearest-neighbor search, turns kth-neighbor distances
// into a density-based filtration, builds the 1- and 2-skeleton of the
// resulting complex, reduces it with sorted-edge union-find (H0) and
// boundary-matrix column reduction over Z/2 (H1), and finally enumerates
// members of each significant feature with a radius query.
//
// Basic usage:
//
//	pts, _ := topocore.NewPointMatrix(flatData, n, d)
//	pipe, err := topocore.New(topocore.DefaultConfig())
//	result, err := pipe.Run(context.Background(), pts)
//	// result.Diagrams[0] holds H0 (birth, death) pairs
//	// result.Diagrams[1] holds H1 (birth, death) pairs
//	// result.Candidates[dim] holds significant features with member indices
//
// # Acceleration
//
// By default (Config.UseAccelerator: AcceleratorAuto) the pipeline resolves
// a capability object once at construction: a GPU-backed accelerator if one
// is available, otherwise the host (brute-force, goroutine-parallel)
// implementation. Call sites invoke through the capability without
// branching; AcceleratorRequired fails fast with ErrAcceleratorUnavailable
// instead of silently falling back.
package topocore
