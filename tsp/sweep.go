// Package tsp - radial sweep tour constructor.
//
// The sweep orders points by polar angle around the centroid. Angles are
// normalized by subtracting pi/2 so the sweep begins at the "down"
// direction, with +2*pi added to negative results to keep the domain
// [0, 2*pi). Ties are broken by input index (stable sort), which keeps the
// constructor fully deterministic.
package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// SweepTour builds a tour by radial sweep around the centroid.
//
// Complexity: O(n log n) time, O(n) space.
func SweepTour(ps geom.PointSet) SweepResult {
	res, _ := sweepTour(ps, false)

	return res
}

// SweepTourTrace is the progressive form of SweepTour: one SweepStep per
// point in sweep order, each carrying the partial tour built so far.
func SweepTourTrace(ps geom.PointSet) (SweepResult, trace.Trace) {
	return sweepTour(ps, true)
}

// sweepTour is the shared implementation of both forms.
func sweepTour(ps geom.PointSet, progressive bool) (SweepResult, trace.Trace) {
	n := len(ps)
	cx, cy := geom.Centroid(ps)
	if n == 0 {
		return SweepResult{Tour: []int{}, CentroidX: cx, CentroidY: cy}, nil
	}

	// Raw and normalized angles per point.
	var (
		raw  = make([]float64, n)
		norm = make([]float64, n)
		i    int
		a    float64
	)
	for i = 0; i < n; i++ {
		a = math.Atan2(float64(ps[i].Y)-cy, float64(ps[i].X)-cx)
		raw[i] = a
		a -= math.Pi / 2 // start the sweep at the "down" direction
		if a < 0 {
			a += 2 * math.Pi
		}
		norm[i] = a
	}

	// Stable sort keeps input order on exact angle ties.
	tour := make([]int, n)
	for i = 0; i < n; i++ {
		tour[i] = i
	}
	sort.SliceStable(tour, func(x, y int) bool { return norm[tour[x]] < norm[tour[y]] })

	var tr trace.Trace
	if progressive {
		tr = make(trace.Trace, 0, n)
		var (
			k   int
			idx int
		)
		for k = 0; k < n; k++ {
			idx = tour[k]
			tr = append(tr, trace.SweepStep{
				Angle:     raw[idx],
				CentroidX: cx,
				CentroidY: cy,
				TourSoFar: trace.CopyTour(tour[:k+1]),
				Desc: fmt.Sprintf("%d%% - point %d swept at %.1f°",
					(k+1)*100/n, ps[idx].ID, raw[idx]*180/math.Pi),
			})
		}
	}

	return SweepResult{Tour: tour, CentroidX: cx, CentroidY: cy}, tr
}
