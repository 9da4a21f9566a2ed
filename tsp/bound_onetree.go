// Package tsp - 1-tree lower bound for the Euclidean TSP.
//
// The bound removes vertex 0, computes the MST weight W of the induced
// subgraph on 1..n-1 (dense Prim, O(n^2)), and adds the two smallest
// distances m1 <= m2 from vertex 0 back to the rest:
//
//	lowerBound = W + m1 + m2
//
// Every Hamiltonian cycle contains a spanning tree of V\{0} plus two edges
// at vertex 0, so the bound is admissible: no valid tour over the same
// point set can be shorter.
//
// Determinism: Prim extraction and the two-minimum scan break ties by
// vertex index.
package tsp

import (
	"math"

	"github.com/hexwald/tourlab/geom"
)

// OneTreeBound computes the 1-tree lower bound over ps.
//
// Edge cases: n <= 1 yields 0; n == 2 yields the closed two-cycle cost
// 2*d(p0, p1), which is also exact.
//
// Complexity: O(n^2) time and space.
func OneTreeBound(ps geom.PointSet) Bound {
	n := len(ps)
	if n <= 1 {
		return Bound{Value: 0, Method: BoundMethodOneTree}
	}
	if n == 2 {
		return Bound{Value: round1e9(2 * geom.Dist(ps[0], ps[1])), Method: BoundMethodOneTree}
	}

	// Dense distance prefetch.
	w := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j] = geom.Dist(ps[i], ps[j])
		}
	}

	// Prim over V\{0}: n-1 extractions against a key array.
	var (
		inf    = math.Inf(1)
		inTree = make([]bool, n)
		key    = make([]float64, n)
		mstW   float64 // accumulated MST weight
		iter   int
		best   int
		v      int
		c      float64
	)
	for v = 1; v < n; v++ {
		key[v] = inf
	}
	key[1] = 0 // deterministic Prim seed: lowest non-root vertex

	for iter = 0; iter < n-1; iter++ {
		// best = argmin key[v] over v not in tree, tie by index.
		best = -1
		for v = 1; v < n; v++ {
			if inTree[v] {
				continue
			}
			if best == -1 || key[v] < key[best] {
				best = v
			}
		}

		inTree[best] = true
		mstW += key[best] // 0 for the seed vertex

		// Relax edges from best to the remaining vertices.
		for v = 1; v < n; v++ {
			if inTree[v] {
				continue
			}
			c = w[best*n+v]
			if c < key[v] {
				key[v] = c
			}
		}
	}

	// Two cheapest edges from vertex 0, index tie-break.
	m1, m2 := inf, inf
	for v = 1; v < n; v++ {
		c = w[v] // w[0*n+v]
		if c < m1 {
			m2 = m1
			m1 = c
		} else if c < m2 {
			m2 = c
		}
	}

	return Bound{Value: round1e9(mstW + m1 + m2), Method: BoundMethodOneTree}
}
