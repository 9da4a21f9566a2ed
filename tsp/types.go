// Package tsp - options, results and sentinel errors.
package tsp

import (
	"errors"

	"github.com/hexwald/tourlab/curve"
)

// Sentinel errors for tsp operations. Tests and callers match them with
// errors.Is; no fmt.Errorf wrapping in hot paths.
var (
	// ErrInfeasible is returned by the exhaustive optimizer when the
	// instance exceeds Options.MaxExact. Callers must handle it without
	// trying to interpret a tour.
	ErrInfeasible = errors.New("tsp: instance exceeds exhaustive search capacity")

	// ErrBadTour indicates an input tour that is not a permutation of the
	// point set indices 0..n-1.
	ErrBadTour = errors.New("tsp: tour is not a permutation of the point set")

	// ErrUnsupportedAlgorithm is returned by the dispatcher for an unknown
	// Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")
)

// Defaults for Options; zero fields are replaced by these values.
const (
	// DefaultEps is the strict improvement tolerance: a move is accepted
	// only when it shortens the tour by more than DefaultEps.
	DefaultEps = 1e-3

	// DefaultTwoOptMaxIters caps accepted 2-opt moves per call.
	DefaultTwoOptMaxIters = 50

	// DefaultPairSwapMaxIters caps full pair-swap scans per call.
	DefaultPairSwapMaxIters = 100

	// DefaultCombinedMaxRounds caps pair-swap+2-opt rounds of Combined.
	DefaultCombinedMaxRounds = 100

	// DefaultMaxExact is the largest n the exhaustive optimizer accepts.
	DefaultMaxExact = 12
)

// BoundMethodOneTree tags lower bounds computed by OneTreeBound.
const BoundMethodOneTree = "1-tree"

// Algo selects the operation run by the Solve dispatcher.
type Algo int

const (
	// SweepConstruct builds a tour by radial sweep (default).
	SweepConstruct Algo = iota
	// CurveConstruct builds a tour by Moore curve projection.
	CurveConstruct
	// TwoOptOnly builds a sweep tour and improves it with 2-opt.
	TwoOptOnly
	// PairSwapOnly builds a sweep tour and improves it with pair swaps.
	PairSwapOnly
	// CombinedImprove builds a sweep tour and runs the combined improver.
	CombinedImprove
	// ExhaustiveSearch runs the exact optimizer.
	ExhaustiveSearch
)

// Options carries the tunable knobs shared by the package. The zero value
// selects every documented default; DefaultOptions spells them out.
type Options struct {
	// Algo selects the dispatcher route (Solve/SolveTrace only).
	Algo Algo

	// GridSize is the curve grid for CurveConstruct; snapped to the
	// nearest supported size. Callers must keep points within 0..g-1.
	GridSize int

	// Eps is the strict improvement tolerance (<=0 selects DefaultEps).
	Eps float64

	// TwoOptMaxIters caps accepted 2-opt moves (<=0 selects the default).
	TwoOptMaxIters int

	// PairSwapMaxIters caps pair-swap scans (<=0 selects the default).
	PairSwapMaxIters int

	// CombinedMaxRounds caps combined rounds (<=0 selects the default).
	CombinedMaxRounds int

	// MaxExact is the exhaustive size cap (<=0 selects DefaultMaxExact).
	MaxExact int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Algo:              SweepConstruct,
		GridSize:          8,
		Eps:               DefaultEps,
		TwoOptMaxIters:    DefaultTwoOptMaxIters,
		PairSwapMaxIters:  DefaultPairSwapMaxIters,
		CombinedMaxRounds: DefaultCombinedMaxRounds,
		MaxExact:          DefaultMaxExact,
	}
}

// normalized returns o with every non-positive knob replaced by its
// documented default.
func (o Options) normalized() Options {
	if o.Eps <= 0 {
		o.Eps = DefaultEps
	}
	if o.TwoOptMaxIters <= 0 {
		o.TwoOptMaxIters = DefaultTwoOptMaxIters
	}
	if o.PairSwapMaxIters <= 0 {
		o.PairSwapMaxIters = DefaultPairSwapMaxIters
	}
	if o.CombinedMaxRounds <= 0 {
		o.CombinedMaxRounds = DefaultCombinedMaxRounds
	}
	if o.MaxExact <= 0 {
		o.MaxExact = DefaultMaxExact
	}

	return o
}

// SweepResult is the atomic output of the sweep constructor.
type SweepResult struct {
	Tour      []int
	CentroidX float64
	CentroidY float64
}

// CurveResult is the atomic output of the curve-projection constructor.
type CurveResult struct {
	Tour     []int
	Vertices []curve.Vertex
	Grid     int // snapped grid size actually used
	Order    int // curve order log2(Grid)
}

// ImproveResult is the atomic output of every improver. Improvement is the
// total length reduction (0 when the input came back unchanged).
type ImproveResult struct {
	Tour        []int
	Improvement float64
}

// ExactResult is the atomic output of the exhaustive optimizer.
// Tour[0] is always index 0 for n >= 1.
type ExactResult struct {
	Tour     []int
	Distance float64
}

// Bound is a proven lower bound on the length of every valid tour over the
// same point set.
type Bound struct {
	Value  float64
	Method string
}

// Verification is the outcome of VerifyOptimality.
type Verification struct {
	IsOptimal  bool
	LowerBound float64
	Gap        float64 // additive gap: distance - LowerBound
	RelGap     float64 // relative gap: distance/LowerBound - 1 (0 at zero bound)
	Method     string
}

// Solution is the unified output of the Solve dispatcher.
type Solution struct {
	Tour        []int
	Length      float64
	Improvement float64 // local-search routes only, otherwise 0
}
