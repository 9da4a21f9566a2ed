// Package tsp - shared local-search harness.
//
// Both improvers follow one pattern: an outer loop until fixpoint around an
// inner scan with an epsilon-gated acceptance test. The scan is the
// strategy; the harness owns validation, the short-tour shortcut, copying,
// the iteration cap and improvement accounting.
package tsp

import (
	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// emitFunc receives steps from a progressive run; nil selects atomic mode.
type emitFunc func(trace.Step)

// scanFunc runs one scan over cur, mutating it in place on every accepted
// move, and returns the total gain of the scan (0 when nothing improved).
type scanFunc func(ps geom.PointSet, cur []int, eps float64, emit emitFunc) float64

// localSearch validates the input, then repeats scan until it yields no
// gain or maxIters scans ran.
//
// Guarantees: the returned tour is a fresh permutation; its length never
// exceeds the input length; tours shorter than four points come back
// unchanged with zero improvement and no emitted steps.
func localSearch(ps geom.PointSet, tour []int, eps float64, maxIters int, scan scanFunc, emit emitFunc) ([]int, float64, error) {
	if err := ValidateTour(tour, len(ps)); err != nil {
		return nil, 0, err
	}

	cur := copyTour(tour)
	if len(cur) < 4 {
		return cur, 0, nil
	}

	var (
		total float64 // accumulated improvement
		gain  float64 // gain of the current scan
		iter  int
	)
	for iter = 0; iter < maxIters; iter++ {
		gain = scan(ps, cur, eps, emit)
		if gain <= 0 {
			break // local optimum under the chosen neighborhood
		}
		total += gain
	}

	return cur, round1e9(total), nil
}
