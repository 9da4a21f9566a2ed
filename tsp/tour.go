// Package tsp - tour utilities shared by constructors and improvers.
//
// A tour is a permutation of the point indices 0..n-1, read as a closed
// cycle with the implicit edge tour[n-1] -> tour[0]. No cyclic linked
// structure is kept; all operations index into the vector modulo n.
package tsp

import "math"

// ValidateTour checks that tour is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if len(tour) != n {
		return ErrBadTour
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrBadTour
		}
		if seen[v] {
			return ErrBadTour
		}
		seen[v] = true
	}

	return nil
}

// copyTour returns an independent copy of a tour; nil stays nil.
func copyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// reverseSegment reverses the inclusive segment tour[i..k] in place.
// This is the 2-opt primitive. Callers guarantee 0 <= i <= k < len(tour).
//
// Complexity: O(k-i) time, O(1) space.
func reverseSegment(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// roundScale mirrors geom's 1e-9 length stabilization for improvement
// accounting, so accumulated deltas stay comparable to TourLength output.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
