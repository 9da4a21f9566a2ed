// Package tsp - first-improvement 2-opt local search.
//
// One scan considers every pair of non-adjacent edges (i, i+1) and
// (j, j+1 mod n) with 0 <= i, i+2 <= j < n, skipping the pair (0, n-1)
// which would test the closing edge against itself. With endpoints
// a=T[i], b=T[i+1], c=T[j], d=T[j+1]:
//
//	delta = (d(a,c) + d(b,d)) - (d(a,b) + d(c,d))
//
// The first candidate with delta < -eps is applied by reversing the
// inclusive segment T[i+1..j], and the scan restarts from the beginning
// (first-improvement with immediate restart). Each accepted move counts
// against Options.TwoOptMaxIters.
//
// Complexity: O(iter * n^2) candidate checks; O(n) per accepted move.
package tsp

import (
	"fmt"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// TwoOpt improves tour by first-improvement 2-opt until no improving
// reversal remains or the iteration cap is reached.
//
// Errors: ErrBadTour when tour is not a permutation of ps indices.
func TwoOpt(ps geom.PointSet, tour []int, opts Options) (ImproveResult, error) {
	opts = opts.normalized()
	out, gain, err := localSearch(ps, tour, opts.Eps, opts.TwoOptMaxIters, twoOptScan, nil)
	if err != nil {
		return ImproveResult{}, err
	}

	return ImproveResult{Tour: out, Improvement: gain}, nil
}

// TwoOptTrace is the progressive form of TwoOpt: one OptimizeStep per
// accepted reversal. The trace is empty when nothing improved.
func TwoOptTrace(ps geom.PointSet, tour []int, opts Options) (ImproveResult, trace.Trace, error) {
	opts = opts.normalized()

	var tr trace.Trace
	out, gain, err := localSearch(ps, tour, opts.Eps, opts.TwoOptMaxIters, twoOptScan,
		func(s trace.Step) { tr = append(tr, s) })
	if err != nil {
		return ImproveResult{}, nil, err
	}

	return ImproveResult{Tour: out, Improvement: gain}, tr, nil
}

// twoOptScan applies at most one improving reversal (first-improvement)
// and returns its gain, or 0 when the full scan found none.
func twoOptScan(ps geom.PointSet, cur []int, eps float64, emit emitFunc) float64 {
	n := len(cur)

	var (
		i, j       int
		a, b, c, d geom.Point
		old, neu   float64
		gain       float64
	)
	for i = 0; i+2 < n; i++ {
		for j = i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // closing edge against itself
			}

			a = ps[cur[i]]
			b = ps[cur[i+1]]
			c = ps[cur[j]]
			d = ps[cur[(j+1)%n]]

			old = geom.Dist(a, b) + geom.Dist(c, d)
			neu = geom.Dist(a, c) + geom.Dist(b, d)
			if neu >= old-eps {
				continue // not improving beyond tolerance
			}

			reverseSegment(cur, i+1, j)
			gain = round1e9(old - neu)
			if emit != nil {
				emit(trace.OptimizeStep{
					Tour:        trace.CopyTour(cur),
					Move:        trace.Move{Kind: trace.MoveReverse, I: i + 1, J: j},
					Improvement: gain,
					Desc:        fmt.Sprintf("2-opt: reversed positions %d..%d, -%.3f", i+1, j, gain),
				})
			}

			return gain
		}
	}

	return 0
}
