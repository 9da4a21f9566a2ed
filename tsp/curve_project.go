// Package tsp - Moore curve projection tour constructor.
//
// Each input point is assigned to the nearest curve vertex (ties broken by
// the lower curve index), then points are ordered by assigned curve index.
// Walking the closed space-filling curve in order visits every grid cell
// once, so the induced ordering inherits the curve's locality.
//
// Contract: callers must keep point coordinates within 0..g-1 of the
// (snapped) grid; the constructor itself never fails.
package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/hexwald/tourlab/curve"
	"github.com/hexwald/tourlab/geom"
	"github.com/hexwald/tourlab/trace"
)

// CurveTour builds a tour by projecting points onto the Moore curve for
// grid size g (snapped to the nearest supported size).
//
// Complexity: O(n * g^2) assignment + O(n log n) sort.
func CurveTour(ps geom.PointSet, g int) CurveResult {
	res, _ := curveTour(ps, g, false)

	return res
}

// CurveTourTrace is the progressive form of CurveTour: a CurveStep
// describing the generated curve, then one VisitStep per point in tour
// order.
func CurveTourTrace(ps geom.PointSet, g int) (CurveResult, trace.Trace) {
	return curveTour(ps, g, true)
}

// curveTour is the shared implementation of both forms.
func curveTour(ps geom.PointSet, g int, progressive bool) (CurveResult, trace.Trace) {
	var (
		n     = len(ps)
		verts = curve.Moore(g)
		grid  = curve.SnapGridSize(g)
		order = curve.Order(g)
	)
	if g <= 1 {
		grid = 1
		order = 0
	}

	// Nearest curve vertex per point; ties keep the lower curve index.
	assigned := make([]int, n)
	var (
		i, c    int
		d, best float64
		bestIdx int
	)
	for i = 0; i < n; i++ {
		best = math.Inf(1)
		bestIdx = 0
		for c = 0; c < len(verts); c++ {
			d = math.Hypot(float64(ps[i].X-verts[c].X), float64(ps[i].Y-verts[c].Y))
			if d < best {
				best = d
				bestIdx = c
			}
		}
		assigned[i] = bestIdx
	}

	// Stable sort by curve index; ties keep input order.
	tour := make([]int, n)
	for i = 0; i < n; i++ {
		tour[i] = i
	}
	sort.SliceStable(tour, func(x, y int) bool { return assigned[tour[x]] < assigned[tour[y]] })

	res := CurveResult{Tour: tour, Vertices: verts, Grid: grid, Order: order}

	var tr trace.Trace
	if progressive {
		tr = make(trace.Trace, 0, n+1)
		vcopy := make([]curve.Vertex, len(verts))
		copy(vcopy, verts)
		tr = append(tr, trace.CurveStep{
			Vertices: vcopy,
			Order:    order,
			Grid:     grid,
			Desc: fmt.Sprintf("Moore curve of order %d on a %d×%d grid (%d vertices)",
				order, grid, grid, len(verts)),
		})

		var k int
		for k = 0; k < n; k++ {
			i = tour[k]
			tr = append(tr, trace.VisitStep{
				CurvePos:  assigned[i],
				TourSoFar: trace.CopyTour(tour[:k+1]),
				Desc: fmt.Sprintf("%d%% - point %d visits curve position %d",
					(k+1)*100/n, ps[i].ID, assigned[i]),
			})
		}
	}

	return res, tr
}
