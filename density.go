package topocore

// DensityFiltration converts the kth-neighbor distance of each point into a
// sublevel-set filtration value: F[i] = -1 / max(kth[i], epsilon). Higher
// local density (smaller kth-distance) maps to a more negative — i.e.
// earlier — filtration value, turning the "higher density appears first"
// superlevel-set problem into a standard sublevel-set filtration (§4.2).
//
// epsilon clamps the distance away from zero so two coincident points never
// divide by zero; it is Config.EpsilonDensity, threaded through by the
// pipeline rather than hardcoded, so callers can tune it without touching
// this file.
func DensityFiltration(kth []float64, epsilon float64) Filtration {
	f := make(Filtration, len(kth))
	for i, d := range kth {
		if d < epsilon {
			d = epsilon
		}
		f[i] = -1.0 / d
	}
	return f
}
