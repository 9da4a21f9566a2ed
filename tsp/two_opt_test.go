// Package tsp_test - 2-opt local search: crossing removal, fixpoint
// behavior, input isolation, error contract and trace shape.
package tsp_test

import (
	"errors"
	"testing"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
	"github.com/hexwald/tourlab/tsp"
)

func TestTwoOpt_UncrossesSquare(t *testing.T) {
	ps := square()
	crossed := []int{0, 2, 1, 3} // both diagonals: the classic bowtie
	before := geom.TourLength(ps, crossed)

	res, err := tsp.TwoOpt(ps, crossed, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("TwoOpt: %v", err)
	}
	mustValidTour(t, res.Tour, len(ps))

	after := geom.TourLength(ps, res.Tour)
	mustFloatClose(t, 40, after, floatTol, "uncrossed square length")
	mustFloatClose(t, before-after, res.Improvement, epsLoose, "improvement accounting")
	if !sameCycleEitherDir(res.Tour, []int{0, 1, 2, 3}) {
		t.Fatalf("tour = %v, want the perimeter cycle", res.Tour)
	}
}

func TestTwoOpt_OptimalTourUnchanged(t *testing.T) {
	ps := square()

	res, err := tsp.TwoOpt(ps, []int{0, 1, 2, 3}, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("TwoOpt: %v", err)
	}
	if res.Improvement != 0 {
		t.Fatalf("improvement = %f, want 0 on an optimal tour", res.Improvement)
	}
	if !sameCycleEitherDir(res.Tour, []int{0, 1, 2, 3}) {
		t.Fatalf("tour = %v, want [0 1 2 3] unchanged", res.Tour)
	}
}

func TestTwoOpt_ShortTourShortcut(t *testing.T) {
	ps := geom.PointSet{
		{ID: 0, X: 0, Y: 0},
		{ID: 1, X: 5, Y: 0},
		{ID: 2, X: 0, Y: 5},
	}

	res, tr, err := tsp.TwoOptTrace(ps, []int{2, 0, 1}, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("TwoOptTrace: %v", err)
	}
	if res.Improvement != 0 {
		t.Fatalf("improvement = %f, want 0 for n < 4", res.Improvement)
	}
	if len(tr) != 0 {
		t.Fatalf("trace has %d steps, want none for n < 4", len(tr))
	}

	want := []int{2, 0, 1}
	for i, v := range want {
		if res.Tour[i] != v {
			t.Fatalf("tour = %v, want %v unchanged", res.Tour, want)
		}
	}
}

func TestTwoOpt_RejectsBadTour(t *testing.T) {
	ps := square()

	cases := [][]int{
		{0, 1, 2},       // too short
		{0, 1, 2, 2},    // duplicate
		{0, 1, 2, 4},    // out of range
		{0, 1, 2, 3, 0}, // too long
	}
	for _, tour := range cases {
		if _, err := tsp.TwoOpt(ps, tour, tsp.DefaultOptions()); !errors.Is(err, tsp.ErrBadTour) {
			t.Fatalf("TwoOpt(%v) error = %v, want ErrBadTour", tour, err)
		}
		if _, _, err := tsp.TwoOptTrace(ps, tour, tsp.DefaultOptions()); !errors.Is(err, tsp.ErrBadTour) {
			t.Fatalf("TwoOptTrace(%v) error = %v, want ErrBadTour", tour, err)
		}
	}
}

func TestTwoOpt_DoesNotMutateInput(t *testing.T) {
	ps := square()
	in := []int{0, 2, 1, 3}

	if _, err := tsp.TwoOpt(ps, in, tsp.DefaultOptions()); err != nil {
		t.Fatalf("TwoOpt: %v", err)
	}

	want := []int{0, 2, 1, 3}
	for i, v := range want {
		if in[i] != v {
			t.Fatalf("input mutated to %v", in)
		}
	}
}

// TestTwoOpt_NeverLengthens runs the improver over sampled instances and
// checks the core guarantee: the output never exceeds the input length and
// the reported improvement matches the measured reduction.
func TestTwoOpt_NeverLengthens(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 5; seed++ {
		ps, err := geom.Sample(8, 10, seed)
		if err != nil {
			t.Fatalf("Sample(seed %d): %v", seed, err)
		}

		in := identityTour(len(ps))
		before := geom.TourLength(ps, in)

		res, errT := tsp.TwoOpt(ps, in, tsp.DefaultOptions())
		if errT != nil {
			t.Fatalf("TwoOpt(seed %d): %v", seed, errT)
		}
		mustValidTour(t, res.Tour, len(ps))

		after := geom.TourLength(ps, res.Tour)
		if after > before+floatTol {
			t.Fatalf("seed %d: length grew %.9f -> %.9f", seed, before, after)
		}
		mustFloatClose(t, before-after, res.Improvement, epsLoose, "improvement accounting")
	}
}

func TestTwoOptTrace_StepPerReversal(t *testing.T) {
	ps := square()
	crossed := []int{0, 2, 1, 3}

	res, tr, err := tsp.TwoOptTrace(ps, crossed, tsp.DefaultOptions())
	if err != nil {
		t.Fatalf("TwoOptTrace: %v", err)
	}
	if len(tr) == 0 {
		t.Fatal("expected at least one improving reversal")
	}

	prev := geom.TourLength(ps, crossed)
	for i, s := range tr {
		step, ok := s.(trace.OptimizeStep)
		if !ok {
			t.Fatalf("step %d is %T, want OptimizeStep", i, s)
		}
		if step.Move.Kind != trace.MoveReverse {
			t.Fatalf("step %d move kind = %v, want MoveReverse", i, step.Move.Kind)
		}
		if step.Improvement <= 0 {
			t.Fatalf("step %d improvement %f not positive", i, step.Improvement)
		}
		mustValidTour(t, step.Tour, len(ps))

		cur := geom.TourLength(ps, step.Tour)
		if cur >= prev {
			t.Fatalf("step %d length %.9f did not decrease from %.9f", i, cur, prev)
		}
		prev = cur
	}

	// The last snapshot is the returned tour.
	if !sameCycleEitherDir(tr.Final().Snapshot(), res.Tour) {
		t.Fatalf("final snapshot %v != result tour %v", tr.Final().Snapshot(), res.Tour)
	}
}
