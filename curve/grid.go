// Package curve - grid size utilities.
package curve

// SupportedGridSizes returns the closed set of valid grid sizes for
// curve-based operations, ascending. The slice is a fresh copy.
func SupportedGridSizes() []int {
	out := make([]int, len(supportedSizes))
	copy(out, supportedSizes)

	return out
}

// SnapGridSize maps an arbitrary grid size to the nearest supported value.
// Exact midpoints snap to the larger size (3 -> 4, 48 -> 64); values at or
// below the minimum snap to 2, values above the maximum snap to 64. It
// never fails.
//
// Complexity: O(1) (fixed-size scan).
func SnapGridSize(g int) int {
	var (
		best     = supportedSizes[0]
		bestDist = abs(g - best)
		i        int
		d        int
	)
	for i = 1; i < len(supportedSizes); i++ {
		d = abs(g - supportedSizes[i])
		// <= prefers the larger size on exact midpoints.
		if d <= bestDist {
			best = supportedSizes[i]
			bestDist = d
		}
	}

	return best
}

// Order returns the curve order log2(g) for a supported grid size g
// (after snapping): the order-k Moore curve covers a 2^k × 2^k grid.
// The rewriting iteration count is Order(g)-1 per the axiom convention.
func Order(g int) int {
	var (
		gs = SnapGridSize(g)
		k  int
	)
	for gs > 1 {
		gs >>= 1
		k++
	}

	return k
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
