// Package curve_test verifies the Moore curve engine via the public API:
// exact vertex sequences for the small orders, closed-cycle completeness for
// every supported grid size, L-system rewriting, and cache isolation.
package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hexwald/tourlab/curve"
)

// unitStep reports whether a and b differ by exactly one unit along exactly
// one axis.
func unitStep(a, b curve.Vertex) bool {
	dx := a.X - b.X
	dy := a.Y - b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}

	return dx+dy == 1
}

func TestRewrite(t *testing.T) {
	t.Run("zero iterations is identity", func(t *testing.T) {
		assert.Equal(t, curve.Axiom, curve.Rewrite(curve.Axiom, 0))
		assert.Equal(t, curve.Axiom, curve.Rewrite(curve.Axiom, -1))
	})

	t.Run("non-rewriting symbols copy verbatim", func(t *testing.T) {
		assert.Equal(t, "F+-F", curve.Rewrite("F+-F", 3))
	})

	t.Run("single L production", func(t *testing.T) {
		assert.Equal(t, "-RF+LFL+FR-", curve.Rewrite("L", 1))
	})

	t.Run("single R production", func(t *testing.T) {
		assert.Equal(t, "+LF-RFR-FL+", curve.Rewrite("R", 1))
	})

	t.Run("growth is geometric", func(t *testing.T) {
		one := curve.Rewrite(curve.Axiom, 1)
		two := curve.Rewrite(curve.Axiom, 2)
		assert.Greater(t, len(one), len(curve.Axiom))
		assert.Greater(t, len(two), len(one))
		// Rewriting is compositional: two iterations equal one applied twice.
		assert.Equal(t, two, curve.Rewrite(one, 1))
	})
}

func TestMoore_Order1Sequence(t *testing.T) {
	want := []curve.Vertex{{0, 1}, {0, 0}, {1, 0}, {1, 1}}

	assert.Equal(t, want, curve.Moore(2))
}

func TestMoore_Order2Sequence(t *testing.T) {
	want := []curve.Vertex{
		{1, 3}, {0, 3}, {0, 2}, {1, 2},
		{1, 1}, {0, 1}, {0, 0}, {1, 0},
		{2, 0}, {3, 0}, {3, 1}, {2, 1},
		{2, 2}, {3, 2}, {3, 3}, {2, 3},
	}

	assert.Equal(t, want, curve.Moore(4))
}

// TestMoore_ClosedHamiltonianCycle checks the structural curve properties
// for every supported grid size: g*g vertices, each grid cell visited
// exactly once, unit steps throughout, and a unit closing edge back to the
// start (the Moore curve is a closed cycle, unlike the open Hilbert curve).
func TestMoore_ClosedHamiltonianCycle(t *testing.T) {
	for _, g := range curve.SupportedGridSizes() {
		verts := curve.Moore(g)
		require.Len(t, verts, g*g, "grid %d", g)

		seen := make(map[curve.Vertex]bool, len(verts))
		for i, v := range verts {
			require.GreaterOrEqual(t, v.X, 0, "grid %d vertex %d", g, i)
			require.Less(t, v.X, g, "grid %d vertex %d", g, i)
			require.GreaterOrEqual(t, v.Y, 0, "grid %d vertex %d", g, i)
			require.Less(t, v.Y, g, "grid %d vertex %d", g, i)
			require.False(t, seen[v], "grid %d: cell (%d,%d) visited twice", g, v.X, v.Y)
			seen[v] = true

			if i > 0 {
				require.True(t, unitStep(verts[i-1], v),
					"grid %d: non-unit step %v -> %v at %d", g, verts[i-1], v, i)
			}
		}
		require.True(t, unitStep(verts[len(verts)-1], verts[0]),
			"grid %d: closing edge %v -> %v is not a unit step", g, verts[len(verts)-1], verts[0])
	}
}

// TestMoore_CenterRowAndColumnCovered pins a regression: a buggy
// normalization once left a cross-shaped hole through the grid center.
func TestMoore_CenterRowAndColumnCovered(t *testing.T) {
	for _, g := range curve.SupportedGridSizes() {
		var (
			mid = g / 2
			row = make([]bool, g)
			col = make([]bool, g)
		)
		for _, v := range curve.Moore(g) {
			if v.Y == mid {
				row[v.X] = true
			}
			if v.X == mid {
				col[v.Y] = true
			}
		}
		for i := 0; i < g; i++ {
			require.True(t, row[i], "grid %d: center row misses x=%d", g, i)
			require.True(t, col[i], "grid %d: center column misses y=%d", g, i)
		}
	}
}

func TestMoore_DegenerateGrid(t *testing.T) {
	want := []curve.Vertex{{0, 0}}

	assert.Equal(t, want, curve.Moore(1))
	assert.Equal(t, want, curve.Moore(0))
	assert.Equal(t, want, curve.Moore(-5))
}

func TestMoore_SnapsUnsupportedSizes(t *testing.T) {
	// 3 snaps to 4, so the result is the order-2 curve.
	assert.Equal(t, curve.Moore(4), curve.Moore(3))
	// 10 snaps to 8.
	assert.Equal(t, curve.Moore(8), curve.Moore(10))
}

// TestMoore_ReturnsIndependentCopies guards the memo cache: mutating one
// result must not leak into later calls.
func TestMoore_ReturnsIndependentCopies(t *testing.T) {
	a := curve.Moore(4)
	a[0] = curve.Vertex{X: 99, Y: 99}

	b := curve.Moore(4)
	assert.Equal(t, curve.Vertex{X: 1, Y: 3}, b[0])
}
