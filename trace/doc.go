// Package trace defines the replayable step model shared by tourlab's
// constructors, improvers and the exhaustive optimizer.
//
// A Step is one element of a progressive operation's output: a tagged
// variant carrying a snapshot of the tour at that moment (possibly empty),
// a human-readable description, and variant-specific metadata. A Trace is
// the finite ordered sequence of steps a progressive call produces; the
// display layer consumes it in order.
//
// The variant set is closed (unexported marker method):
//
//	SweepStep    - one point placed by the radial sweep constructor
//	CurveStep    - the generated Moore curve (first step of curve ordering)
//	VisitStep    - one point placed in curve order
//	OptimizeStep - one accepted local-search move (reversal or swap)
//	SearchStep   - exhaustive search announcement / improvement / terminal
//
// Steps are immutable snapshots: constructors copy every tour passed in,
// and consumers must treat the returned slices as read-only. An improver
// that finds nothing returns an empty trace by contract; display callers
// that need a non-empty trace can substitute NoImprovement.
package trace
