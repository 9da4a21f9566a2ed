// Package geom - distance and tour-length primitives.
//
// These helpers are intentionally minimal and side-effect free; every other
// tourlab package builds on them.
//
// Design:
//   - Deterministic, allocation-free hot paths.
//   - Tours are index vectors into a PointSet; a tour of length n is read
//     as a closed cycle with the implicit edge tour[n-1] -> tour[0].
//   - Index validity is the caller's contract (solvers validate up front);
//     these functions do not re-check ranges.
package geom

import "math"

// roundScale controls length stabilization precision (1e-9).
// Tiny FP drifts across platforms would otherwise leak into tests and
// improvement accounting without affecting real optimality.
const roundScale = 1e9

// Dist returns the Euclidean distance between two points.
//
// Complexity: O(1).
func Dist(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// TourLength returns the total length of the closed tour over ps:
// the sum of distances between consecutive indices plus the closing edge
// from the last index back to the first. Tours shorter than two points
// have length 0.
//
// The result is stabilized to 1e-9.
//
// Complexity: O(n) time, O(1) space.
func TourLength(ps PointSet, tour []int) float64 {
	n := len(tour)
	if n < 2 {
		return 0
	}

	var (
		sum float64 // accumulated cycle length
		i   int     // tour position
	)
	for i = 0; i < n-1; i++ {
		sum += Dist(ps[tour[i]], ps[tour[i+1]])
	}
	sum += Dist(ps[tour[n-1]], ps[tour[0]]) // closing edge

	return round1e9(sum)
}

// Centroid returns the arithmetic mean of the point coordinates.
// An empty set yields (0, 0).
//
// Complexity: O(n).
func Centroid(ps PointSet) (cx, cy float64) {
	n := len(ps)
	if n == 0 {
		return 0, 0
	}

	var (
		sx float64 // running sum of x
		sy float64 // running sum of y
		i  int
	)
	for i = 0; i < n; i++ {
		sx += float64(ps[i].X)
		sy += float64(ps[i].Y)
	}

	return sx / float64(n), sy / float64(n)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
