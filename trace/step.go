// Package trace - step variants and trace helpers.
package trace

import "github.com/hexwald/tourlab/curve"

// Step is one replayable element of a progressive operation. The variant
// set is closed; see the package documentation.
type Step interface {
	// Snapshot returns the tour at the moment the step was emitted
	// (possibly empty for announcement steps). Read-only for consumers.
	Snapshot() []int
	// Description returns the display string for this step.
	Description() string

	isStep()
}

// Trace is a finite ordered sequence of steps produced by one progressive
// call. It is owned by the caller after return and never mutated by the
// core afterwards.
type Trace []Step

// Final returns the last step of the trace, or nil for an empty trace.
func (t Trace) Final() Step {
	if len(t) == 0 {
		return nil
	}

	return t[len(t)-1]
}

// MoveKind tags the local-search move recorded by an OptimizeStep.
type MoveKind int

const (
	// MoveReverse is a 2-opt segment reversal; Move.I and Move.J are the
	// first and last reversed tour positions.
	MoveReverse MoveKind = iota
	// MoveSwap is an adjacent-pair swap; Move.I and Move.J are the point
	// identifiers that changed positions.
	MoveSwap
)

// Move describes one accepted local-search move.
type Move struct {
	Kind MoveKind
	I    int
	J    int
}

// SweepStep records one point placed by the radial sweep constructor.
type SweepStep struct {
	// Angle is the raw atan2 angle of the placed point in radians,
	// before the sweep normalization.
	Angle     float64
	CentroidX float64
	CentroidY float64
	TourSoFar []int
	Desc      string
}

// CurveStep announces the generated Moore curve; it is always the first
// step of a progressive curve-projection run.
type CurveStep struct {
	Vertices []curve.Vertex
	Order    int
	Grid     int
	Desc     string
}

// VisitStep records one point placed in curve order.
type VisitStep struct {
	// CurvePos is the curve vertex index the point was assigned to.
	CurvePos  int
	TourSoFar []int
	Desc      string
}

// OptimizeStep records one accepted improving move; the snapshot is the
// tour after the move was applied.
type OptimizeStep struct {
	Tour        []int
	Move        Move
	Improvement float64
	Desc        string
}

// SearchStep is emitted by the exhaustive optimizer: an announcement
// (empty tour), one step per strict improvement, and a terminal step with
// Final set. Infeasible marks instances above the exhaustive size cap.
type SearchStep struct {
	Tour       []int
	Distance   float64
	Progress   float64 // completed fraction of the permutation space, 0..1
	Final      bool
	Infeasible bool
	Desc       string
}

func (s SweepStep) Snapshot() []int { return s.TourSoFar }

func (s SweepStep) Description() string { return s.Desc }

func (s SweepStep) isStep() {}

func (s CurveStep) Snapshot() []int { return nil }

func (s CurveStep) Description() string { return s.Desc }

func (s CurveStep) isStep() {}

func (s VisitStep) Snapshot() []int { return s.TourSoFar }

func (s VisitStep) Description() string { return s.Desc }

func (s VisitStep) isStep() {}

func (s OptimizeStep) Snapshot() []int { return s.Tour }

func (s OptimizeStep) Description() string { return s.Desc }

func (s OptimizeStep) isStep() {}

func (s SearchStep) Snapshot() []int { return s.Tour }

func (s SearchStep) Description() string { return s.Desc }

func (s SearchStep) isStep() {}

// NoImprovement builds the sentinel step a display caller may substitute
// when an improver returns an empty trace. tour is copied.
func NoImprovement(tour []int) Step {
	return OptimizeStep{
		Tour: CopyTour(tour),
		Desc: "no improvement found",
	}
}

// CopyTour returns an independent copy of a tour snapshot; nil stays nil.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
