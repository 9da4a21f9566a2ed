// Package tsp_test provides runnable, deterministic examples for the main
// entry points. Fixed integer geometry keeps every // Output: block stable
// across platforms.
package tsp_test

import (
	"fmt"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/tsp"
)

// ExampleSweepTour orders the corners of a square by polar angle around the
// centroid; a convex instance yields the perimeter directly.
func ExampleSweepTour() {
	ps := geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}

	res := tsp.SweepTour(ps)
	fmt.Println(res.Tour, geom.TourLength(ps, res.Tour))
	// Output: [3 0 1 2] 40
}

// ExampleTwoOpt uncrosses the bowtie tour over the same square.
func ExampleTwoOpt() {
	ps := geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}

	res, err := tsp.TwoOpt(ps, []int{0, 2, 1, 3}, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%v improved by %.3f\n", res.Tour, res.Improvement)
	// Output: [0 1 2 3] improved by 8.284
}

// ExampleExhaustive finds the provably optimal tour of a small instance and
// checks it against the 1-tree bound.
func ExampleExhaustive() {
	ps := geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 10, Y: 0},
		{ID: 2, X: 10, Y: 10},
		{ID: 3, X: 0, Y: 10},
	}

	res, err := tsp.Exhaustive(ps, tsp.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	v := tsp.VerifyOptimality(res.Distance, ps, tsp.DefaultOptions())
	fmt.Printf("tour %v, length %.0f, proven optimal: %t\n", res.Tour, res.Distance, v.IsOptimal)
	// Output: tour [0 1 2 3], length 40, proven optimal: true
}

// ExampleSolve runs the dispatcher end to end on a reproducible sampled
// instance.
func ExampleSolve() {
	ps, err := geom.Sample(8, 6, 42)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.ExhaustiveSearch

	sol, err := tsp.Solve(ps, opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(len(sol.Tour), sol.Tour[0])
	// Output: 6 0
}
