// Package tsp_test provides lightweight fixtures and helpers shared across
// the *_test.go files in this package. The helpers are intentionally
// minimal and stdlib-only; focused test files own their scenario-specific
// checks.
package tsp_test

import (
	"math"
	"testing"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/tsp"
)

// -----------------------------------------------------------------------------
// Constants - single source of truth for test knobs
// -----------------------------------------------------------------------------

const (
	// floatTol is the comparison tolerance for stabilized lengths; matches
	// the 1e-9 rounding of the core.
	floatTol = 1e-9

	// epsLoose is a relaxed tolerance for geometric comparisons where the
	// exact value carries square roots.
	epsLoose = 1e-6
)

// -----------------------------------------------------------------------------
// Fixtures - small deterministic instances with known optima
// -----------------------------------------------------------------------------

// square returns the corners of a 10x10 axis-aligned square. The unique
// optimal closed tour is the perimeter of length 40, and the 1-tree bound
// is tight at exactly 40.
func square() geom.PointSet {
	return geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}
}

// collinear returns four unit-spaced points on the x axis. The optimal
// closed tour walks out and back for a total length of 6.
func collinear() geom.PointSet {
	return geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 1, Y: 0},
		{ID: 2, X: 2, Y: 0},
		{ID: 3, X: 3, Y: 0},
	}
}

// identityTour returns the tour 0..n-1.
func identityTour(n int) []int {
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// -----------------------------------------------------------------------------
// Assertions
// -----------------------------------------------------------------------------

// mustValidTour fails the test when tour is not a permutation of 0..n-1.
func mustValidTour(t *testing.T, tour []int, n int) {
	t.Helper()
	if err := tsp.ValidateTour(tour, n); err != nil {
		t.Fatalf("invalid tour %v for n=%d: %v", tour, n, err)
	}
}

// mustFloatClose fails the test when got is not within tol of want.
func mustFloatClose(t *testing.T, want, got, tol float64, label string) {
	t.Helper()
	if math.Abs(want-got) > tol {
		t.Fatalf("%s: got %.12f, want %.12f (tol %g)", label, got, want, tol)
	}
}

// sameCycleEitherDir reports whether two open tours starting at the same
// index describe the same closed cycle, allowing reversed orientation.
func sameCycleEitherDir(a, b []int) bool {
	n := len(a)
	if n == 0 || n != len(b) || a[0] != b[0] {
		return false
	}

	var i int
	forward := true
	for i = 0; i < n; i++ {
		if a[i] != b[i] {
			forward = false
			break
		}
	}
	if forward {
		return true
	}
	for i = 1; i < n; i++ {
		if a[i] != b[n-i] {
			return false
		}
	}

	return true
}
