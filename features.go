package topocore

import (
	"context"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ExtractFeatures selects significant persistence pairs and enumerates the
// member points of each (§4.6). A pair is significant when its lifetime
// exceeds mean(lifetimes) + sigma*stddev(lifetimes); with fewer than two
// finite pairs, no feature is significant (§4.6, §8 property 9's minimum of
// one member is then vacuous since there is nothing to select).
//
// Mean and standard deviation are computed with gonum/stat the way
// hyper-light-sylk's quantization package computes the same two summary
// statistics over a float64 slice (stat.Mean(data, nil), stat.StdDev(data,
// nil)) — a population of numbers this small gains nothing from a
// hand-rolled reduction and the corpus already reaches for gonum when it
// needs exactly this.
func ExtractFeatures(ctx context.Context, pairs []PersistencePair, points *PointMatrix, vertexFilt Filtration, sigma float64, workers int) ([]Candidate, error) {
	if err := ctx.Err(); err != nil {
		return nil, ErrCancelled
	}

	if len(pairs) < 2 {
		return nil, nil
	}

	lifetimes := make([]float64, len(pairs))
	for i, p := range pairs {
		lifetimes[i] = p.Lifetime()
	}

	meanLife := stat.Mean(lifetimes, nil)
	stdLife := stat.StdDev(lifetimes, nil)
	threshold := meanLife + sigma*stdLife

	candidates := make([]Candidate, 0)
	for i, p := range pairs {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}
		if lifetimes[i] <= threshold {
			continue
		}

		rep := representativeVertex(vertexFilt, p.Birth)
		if rep < 0 {
			continue
		}
		radius := -1.0 / p.Death
		members, err := RadiusQuery(ctx, points, points.Row(rep), radius, workers)
		if err != nil {
			return nil, err
		}

		candidates = append(candidates, Candidate{
			Birth:    p.Birth,
			Death:    p.Death,
			Lifetime: lifetimes[i],
			Members:  members,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Lifetime > candidates[j].Lifetime
	})

	return candidates, nil
}

// representativeVertex returns the index of the point whose filtration
// value equals birth (§4.6: "the point whose filtration value equals the
// birth"). Filtration values are computed once per point and carried by
// value through the whole pipeline without re-derivation, so an exact f64
// comparison is safe here and is the cheapest correct lookup for the sizes
// this pipeline targets.
func representativeVertex(vertexFilt Filtration, birth float64) int {
	for i, f := range vertexFilt {
		if f == birth {
			return i
		}
	}
	return -1
}
