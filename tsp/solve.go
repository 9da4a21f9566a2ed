// Package tsp - unified dispatcher over the package operations.
//
// Solve is the facade the display layer talks to: it routes Options.Algo
// to the matching constructor, improver or verifier, building the initial
// tour with the radial sweep for the local-search routes.
package tsp

import (
	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// Solve runs the operation selected by opts.Algo and returns a unified
// Solution.
//
// Errors: ErrUnsupportedAlgorithm for unknown Algo values; ErrInfeasible
// from the exhaustive route; improver sentinels are impossible here since
// the initial tour is constructed internally.
func Solve(ps geom.PointSet, opts Options) (Solution, error) {
	sol, _, err := solve(ps, opts, false)

	return sol, err
}

// SolveTrace is the progressive form of Solve. For local-search routes the
// trace holds only the improvement steps (the constructed starting tour is
// part of every snapshot).
func SolveTrace(ps geom.PointSet, opts Options) (Solution, trace.Trace, error) {
	return solve(ps, opts, true)
}

// solve is the shared implementation of both forms.
func solve(ps geom.PointSet, opts Options, progressive bool) (Solution, trace.Trace, error) {
	opts = opts.normalized()

	switch opts.Algo {
	case SweepConstruct:
		if progressive {
			res, tr := SweepTourTrace(ps)

			return Solution{Tour: res.Tour, Length: geom.TourLength(ps, res.Tour)}, tr, nil
		}
		res := SweepTour(ps)

		return Solution{Tour: res.Tour, Length: geom.TourLength(ps, res.Tour)}, nil, nil

	case CurveConstruct:
		if progressive {
			res, tr := CurveTourTrace(ps, opts.GridSize)

			return Solution{Tour: res.Tour, Length: geom.TourLength(ps, res.Tour)}, tr, nil
		}
		res := CurveTour(ps, opts.GridSize)

		return Solution{Tour: res.Tour, Length: geom.TourLength(ps, res.Tour)}, nil, nil

	case TwoOptOnly:
		return improveRoute(ps, opts, progressive, TwoOpt, TwoOptTrace)

	case PairSwapOnly:
		return improveRoute(ps, opts, progressive, PairSwap, PairSwapTrace)

	case CombinedImprove:
		return improveRoute(ps, opts, progressive, Combined, CombinedTrace)

	case ExhaustiveSearch:
		if progressive {
			res, tr, err := ExhaustiveTrace(ps, opts)
			if err != nil {
				return Solution{}, tr, err
			}

			return Solution{Tour: res.Tour, Length: res.Distance}, tr, nil
		}
		res, err := Exhaustive(ps, opts)
		if err != nil {
			return Solution{}, nil, err
		}

		return Solution{Tour: res.Tour, Length: res.Distance}, nil, nil

	default:
		return Solution{}, nil, ErrUnsupportedAlgorithm
	}
}

// improveRoute builds a sweep tour and applies one improver pair.
func improveRoute(
	ps geom.PointSet,
	opts Options,
	progressive bool,
	atomic func(geom.PointSet, []int, Options) (ImproveResult, error),
	traced func(geom.PointSet, []int, Options) (ImproveResult, trace.Trace, error),
) (Solution, trace.Trace, error) {
	base := SweepTour(ps).Tour

	if progressive {
		res, tr, err := traced(ps, base, opts)
		if err != nil {
			return Solution{}, nil, err
		}

		return Solution{
			Tour:        res.Tour,
			Length:      geom.TourLength(ps, res.Tour),
			Improvement: res.Improvement,
		}, tr, nil
	}

	res, err := atomic(ps, base, opts)
	if err != nil {
		return Solution{}, nil, err
	}

	return Solution{
		Tour:        res.Tour,
		Length:      geom.TourLength(ps, res.Tour),
		Improvement: res.Improvement,
	}, nil, nil
}
