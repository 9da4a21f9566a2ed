// Package tsp - combined improver.
//
// Combined alternates a full pair-swap pass and a full 2-opt pass inside an
// outer round loop, stopping when a round yields no improvement or the
// round cap is reached. Pair swaps run first: they are cheap and clean up
// local zigzags before the quadratic reversal scan.
package tsp

import (
	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// Combined improves tour by alternating pair-swap and 2-opt rounds.
//
// Errors: ErrBadTour when tour is not a permutation of ps indices.
func Combined(ps geom.PointSet, tour []int, opts Options) (ImproveResult, error) {
	out, gain, err := combined(ps, tour, opts, nil)
	if err != nil {
		return ImproveResult{}, err
	}

	return ImproveResult{Tour: out, Improvement: gain}, nil
}

// CombinedTrace is the progressive form of Combined: the interleaved
// OptimizeStep sequence of both passes, in application order.
func CombinedTrace(ps geom.PointSet, tour []int, opts Options) (ImproveResult, trace.Trace, error) {
	var tr trace.Trace
	out, gain, err := combined(ps, tour, opts, func(s trace.Step) { tr = append(tr, s) })
	if err != nil {
		return ImproveResult{}, nil, err
	}

	return ImproveResult{Tour: out, Improvement: gain}, tr, nil
}

// combined is the shared implementation of both forms.
func combined(ps geom.PointSet, tour []int, opts Options, emit emitFunc) ([]int, float64, error) {
	opts = opts.normalized()
	if err := ValidateTour(tour, len(ps)); err != nil {
		return nil, 0, err
	}

	cur := copyTour(tour)
	if len(cur) < 4 {
		return cur, 0, nil
	}

	var (
		total float64 // improvement across all rounds
		round float64 // improvement of the current round
		gain  float64 // gain of the current scan
		r     int     // round counter
		it    int     // scan counter inside a pass
	)
	for r = 0; r < opts.CombinedMaxRounds; r++ {
		round = 0

		// Pass 1: pair-swap scans until fixpoint or cap.
		for it = 0; it < opts.PairSwapMaxIters; it++ {
			gain = pairSwapScan(ps, cur, opts.Eps, emit)
			if gain <= 0 {
				break
			}
			round += gain
		}

		// Pass 2: 2-opt scans until fixpoint or cap.
		for it = 0; it < opts.TwoOptMaxIters; it++ {
			gain = twoOptScan(ps, cur, opts.Eps, emit)
			if gain <= 0 {
				break
			}
			round += gain
		}

		if round <= 0 {
			break // neither pass improved: fixpoint of the combined search
		}
		total += round
	}

	return cur, round1e9(total), nil
}
