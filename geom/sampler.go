// Package geom - deterministic random point sampling.
//
// Sample exists for tests and demos: it draws k distinct grid cells from a
// g×g grid and labels them with sequential identifiers.
//
// Determinism policy (shared across tourlab):
//   - seed==0 is replaced by a fixed default seed, never by wall-clock time;
//     the same (g, k, seed) triple always yields the same PointSet.
//
// Coordinate convention: sampled coordinates range over 0..g-1 inclusive,
// matching the Moore curve grid. Capacity is therefore g*g cells.
package geom

import "math/rand"

// defaultSamplerSeed is the fixed seed substituted when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSamplerSeed int64 = 1

// Sample returns k distinct points with integer coordinates in 0..g-1 and
// sequential identifiers 0..k-1, drawn uniformly without replacement.
//
// Errors:
//   - ErrGridSize if g < 1.
//   - ErrSampleCount if k < 0 or k > g*g.
//
// Complexity: O(g^2) time and space (cell permutation), O(k) output.
func Sample(g, k int, seed int64) (PointSet, error) {
	if g < 1 {
		return nil, ErrGridSize
	}
	cells := g * g
	if k < 0 || k > cells {
		return nil, ErrSampleCount
	}

	rng := rngFromSeed(seed)

	// Fisher-Yates over all cell indices; the k-prefix is then a uniform
	// sample without replacement.
	cell := make([]int, cells)
	var i, j int
	for i = 0; i < cells; i++ {
		cell[i] = i
	}
	for i = cells - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		cell[i], cell[j] = cell[j], cell[i]
	}

	out := make(PointSet, k)
	var c int // flat cell index
	for i = 0; i < k; i++ {
		c = cell[i]
		out[i] = Point{ID: i, X: c % g, Y: c / g}
	}

	return out, nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 uses defaultSamplerSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSamplerSeed
	}

	return rand.New(rand.NewSource(s))
}
