// Package tsp - optimality verification against the 1-tree bound.
package tsp

import "github.com/hexwald/tourlab/geom"

// VerifyOptimality checks a tour length against the 1-tree lower bound
// over the same point set. The tour is proven optimal when
// distance <= lowerBound + eps; otherwise the additive and relative gaps
// are reported.
//
// At a zero bound (degenerate coincident points) the relative gap is
// reported as 0; the additive gap still carries the difference.
//
// Complexity: O(n^2) (dominated by the bound computation).
func VerifyOptimality(distance float64, ps geom.PointSet, opts Options) Verification {
	opts = opts.normalized()
	lb := OneTreeBound(ps)

	out := Verification{
		LowerBound: lb.Value,
		Method:     lb.Method,
	}
	if distance <= lb.Value+opts.Eps {
		out.IsOptimal = true

		return out
	}

	out.Gap = round1e9(distance - lb.Value)
	if lb.Value > 0 {
		out.RelGap = round1e9(distance/lb.Value - 1)
	}

	return out
}
