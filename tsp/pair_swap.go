// Package tsp - adjacent-pair swap ("zigzag") local search.
//
// One scan walks i over 0..n-3 and considers exchanging the points at
// positions i+1 and i+2. The middle edge keeps its length under the swap,
// so with u=T[i+1], v=T[i+2] and the closing indices taken mod n:
//
//	delta = (d(T[i],v) + d(u,T[i+3])) - (d(T[i],u) + d(v,T[i+3]))
//
// Improving swaps (delta < -eps) are applied in place and the scan
// continues without restart; later candidates see the updated tour. Each
// full scan counts against Options.PairSwapMaxIters.
//
// Complexity: O(iter * n) candidate checks, O(1) per accepted swap.
package tsp

import (
	"fmt"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// PairSwap improves tour by adjacent-pair swaps until a full scan applies
// none or the scan cap is reached.
//
// Errors: ErrBadTour when tour is not a permutation of ps indices.
func PairSwap(ps geom.PointSet, tour []int, opts Options) (ImproveResult, error) {
	opts = opts.normalized()
	out, gain, err := localSearch(ps, tour, opts.Eps, opts.PairSwapMaxIters, pairSwapScan, nil)
	if err != nil {
		return ImproveResult{}, err
	}

	return ImproveResult{Tour: out, Improvement: gain}, nil
}

// PairSwapTrace is the progressive form of PairSwap: one OptimizeStep per
// accepted swap, carrying the identifiers of the two points that changed
// positions. The trace is empty when nothing improved.
func PairSwapTrace(ps geom.PointSet, tour []int, opts Options) (ImproveResult, trace.Trace, error) {
	opts = opts.normalized()

	var tr trace.Trace
	out, gain, err := localSearch(ps, tour, opts.Eps, opts.PairSwapMaxIters, pairSwapScan,
		func(s trace.Step) { tr = append(tr, s) })
	if err != nil {
		return ImproveResult{}, nil, err
	}

	return ImproveResult{Tour: out, Improvement: gain}, tr, nil
}

// pairSwapScan applies every improving adjacent swap in one left-to-right
// scan and returns the accumulated gain (0 when none applied).
func pairSwapScan(ps geom.PointSet, cur []int, eps float64, emit emitFunc) float64 {
	n := len(cur)

	var (
		i             int
		u, v          int     // point indices at positions i+1, i+2
		before, after float64 // edge sums around the pair
		gain, total   float64
	)
	for i = 0; i <= n-3; i++ {
		u = cur[i+1]
		v = cur[i+2]

		before = geom.Dist(ps[cur[i]], ps[u]) + geom.Dist(ps[v], ps[cur[(i+3)%n]])
		after = geom.Dist(ps[cur[i]], ps[v]) + geom.Dist(ps[u], ps[cur[(i+3)%n]])
		if after >= before-eps {
			continue // not improving beyond tolerance
		}

		cur[i+1], cur[i+2] = v, u
		gain = round1e9(before - after)
		total += gain
		if emit != nil {
			emit(trace.OptimizeStep{
				Tour:        trace.CopyTour(cur),
				Move:        trace.Move{Kind: trace.MoveSwap, I: ps[u].ID, J: ps[v].ID},
				Improvement: gain,
				Desc:        fmt.Sprintf("pair swap: points %d and %d, -%.3f", ps[u].ID, ps[v].ID, gain),
			})
		}
	}

	return round1e9(total)
}
