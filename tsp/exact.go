// Package tsp - exhaustive optimizer with best-so-far pruning.
//
// Index 0 is fixed as the start and the remaining indices are enumerated in
// lexicographic order by a used-marker DFS. A branch is abandoned as soon
// as its partial length reaches or exceeds the incumbent (best-so-far
// pruning), and a completed tour replaces the incumbent only when strictly
// shorter - together this selects the lexicographically first optimal
// permutation.
//
// Instances above Options.MaxExact (default 12) are infeasible by size:
// the atomic form returns ErrInfeasible and the progressive form ends with
// an infeasibility-marked terminal step.
//
// Complexity: O((n-1)!) worst case; pruning cuts most branches in
// practice. O(n^2) memory for the prefetched distance matrix.
package tsp

import (
	"fmt"
	"math"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// Exhaustive returns the exact optimal tour for n <= Options.MaxExact.
// Tour[0] is always 0; for n <= 1 the trivial answer comes back directly.
//
// Errors: ErrInfeasible above the size cap.
func Exhaustive(ps geom.PointSet, opts Options) (ExactResult, error) {
	res, err := exhaustive(ps, opts, nil)

	return res, err
}

// ExhaustiveTrace is the progressive form of Exhaustive: an announcement
// step, one step per strict improvement (with running progress over the
// permutation total), and a terminal step carrying the optimal tour - or
// an infeasibility marker above the size cap.
func ExhaustiveTrace(ps geom.PointSet, opts Options) (ExactResult, trace.Trace, error) {
	var tr trace.Trace
	res, err := exhaustive(ps, opts, func(s trace.Step) { tr = append(tr, s) })

	return res, tr, err
}

// exhaustive is the shared implementation of both forms.
func exhaustive(ps geom.PointSet, opts Options, emit emitFunc) (ExactResult, error) {
	opts = opts.normalized()
	n := len(ps)

	if n > opts.MaxExact {
		if emit != nil {
			emit(trace.SearchStep{
				Final:      true,
				Infeasible: true,
				Desc: fmt.Sprintf("infeasible: %d points exceed the exhaustive cap of %d",
					n, opts.MaxExact),
			})
		}

		return ExactResult{}, ErrInfeasible
	}

	// Trivial instances: nothing to enumerate.
	if n <= 1 {
		tour := make([]int, n)
		if emit != nil {
			emit(trace.SearchStep{
				Tour:     trace.CopyTour(tour),
				Progress: 1,
				Final:    true,
				Desc:     "trivial instance",
			})
		}

		return ExactResult{Tour: tour, Distance: 0}, nil
	}

	eng := newExactEngine(ps, emit)
	if emit != nil {
		emit(trace.SearchStep{
			Desc: fmt.Sprintf("exhaustive search over %d permutations", int64(eng.total)),
		})
	}

	eng.dfs(1, 0)

	res := ExactResult{Tour: copyTour(eng.best), Distance: round1e9(eng.bestDist)}
	if emit != nil {
		emit(trace.SearchStep{
			Tour:     trace.CopyTour(res.Tour),
			Distance: res.Distance,
			Progress: 1,
			Final:    true,
			Desc:     fmt.Sprintf("optimal tour of length %.3f", res.Distance),
		})
	}

	return res, nil
}

// exactEngine holds the mutable DFS state; arrays are allocated once per
// call and reused down the recursion.
type exactEngine struct {
	n    int
	d    []float64 // dense distances, d[u*n+v]
	perm []int     // permutation under construction, perm[0]==0
	used []bool
	fact []float64 // factorials for pruned-subtree accounting

	best     []int
	bestDist float64

	total float64 // (n-1)!: the permutation space size
	done  float64 // completed permutations, pruned subtrees included

	emit emitFunc
}

// newExactEngine prefetches the distance matrix and factorial table.
func newExactEngine(ps geom.PointSet, emit emitFunc) *exactEngine {
	n := len(ps)
	e := &exactEngine{
		n:        n,
		d:        make([]float64, n*n),
		perm:     make([]int, n),
		used:     make([]bool, n),
		fact:     make([]float64, n),
		best:     make([]int, n),
		bestDist: math.Inf(1),
		emit:     emit,
	}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			e.d[i*n+j] = geom.Dist(ps[i], ps[j])
		}
	}

	e.fact[0] = 1
	for i = 1; i < n; i++ {
		e.fact[i] = e.fact[i-1] * float64(i)
	}
	e.total = e.fact[n-1]

	e.perm[0] = 0
	e.used[0] = true

	return e
}

// dfs extends the permutation at position depth with every unused vertex
// in ascending order (lexicographic enumeration), pruning branches whose
// partial length already meets the incumbent.
func (e *exactEngine) dfs(depth int, partial float64) {
	if depth == e.n {
		e.done++
		cand := partial + e.d[e.perm[e.n-1]*e.n] // closing edge back to 0
		if cand < e.bestDist {
			e.bestDist = cand
			copy(e.best, e.perm)
			if e.emit != nil {
				e.emit(trace.SearchStep{
					Tour:     trace.CopyTour(e.perm),
					Distance: round1e9(cand),
					Progress: e.done / e.total,
					Desc: fmt.Sprintf("%d%% - improved to %.3f",
						int(e.done/e.total*100), cand),
				})
			}
		}

		return
	}

	var (
		v  int
		np float64 // partial length including the edge to v
	)
	for v = 1; v < e.n; v++ {
		if e.used[v] {
			continue
		}
		np = partial + e.d[e.perm[depth-1]*e.n+v]
		if np >= e.bestDist {
			// Whole subtree pruned: account its leaves for progress.
			e.done += e.fact[e.n-depth-1]
			continue
		}

		e.used[v] = true
		e.perm[depth] = v
		e.dfs(depth+1, np)
		e.used[v] = false
	}
}
