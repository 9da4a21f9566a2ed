// Package tsp implements tourlab's constructors, improvers and verifiers
// for the Euclidean TSP over integer grid points.
//
// Operations (each in an atomic and a progressive form):
//
//   - SweepTour / SweepTourTrace: polar-angle ordering around the centroid.
//   - CurveTour / CurveTourTrace: nearest-Moore-curve-vertex ordering.
//   - TwoOpt / TwoOptTrace: first-improvement segment reversal.
//   - PairSwap / PairSwapTrace: adjacent-pair swap local search.
//   - Combined / CombinedTrace: alternating pair-swap and 2-opt rounds.
//   - Exhaustive / ExhaustiveTrace: exact search with best-so-far pruning
//     for n <= Options.MaxExact (default 12).
//   - OneTreeBound: MST-based 1-tree lower bound.
//   - VerifyOptimality: optimality verdict of a tour length against the
//     1-tree bound.
//   - Solve / SolveTrace: a thin dispatcher over the operations above.
//
// Design principles, shared across the package:
//
//   - Deterministic: no time-based randomness; all tie-breaks by index.
//   - Strict sentinels: only errors from types.go; matched with errors.Is.
//   - Improvement discipline: a candidate move is accepted only when it
//     improves by strictly more than Options.Eps (default 1e-3), which
//     prevents oscillation on degenerate equal-length moves.
//   - Monotonicity: an improver's output is never longer than its input;
//     with no improving move the input comes back unchanged and the step
//     trace is empty.
//   - No logging, no retries, no shared state between calls; inputs are
//     read-only, outputs freshly allocated.
//
// The exhaustive optimizer is the only super-polynomial operation; callers
// must respect MaxExact and may offload such calls to a background worker.
// All other operations are polynomial and safe to run inline.
package tsp
