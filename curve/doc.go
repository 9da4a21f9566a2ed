// Package curve generates closed Moore space-filling curves on square
// integer grids via L-system rewriting and turtle interpretation.
//
// What:
//
//   - Rewrite: apply the Moore L-system productions a fixed number of times.
//   - Moore: the full pipeline - rewrite, turtle walk, normalization onto
//     the 0..g-1 grid - memoized per grid size.
//   - SupportedGridSizes / SnapGridSize / Order: the closed set of valid
//     grid sizes {2, 4, 8, 16, 32, 64} and snapping for arbitrary input.
//
// Iteration convention (normative): with k rewriting iterations the curve
// yields 4^(k+1) vertices and covers a 2^(k+1) grid, because the axiom
// itself already encodes one level of recursion. For a target grid of size
// g the correct iteration count is therefore log2(g) - 1.
//
// Guarantees, for any supported g:
//
//   - exactly g*g vertices are emitted;
//   - every grid cell appears exactly once;
//   - consecutive vertices are axis-adjacent (unit Manhattan distance);
//   - the first and last vertices are axis-adjacent, closing the loop.
//
// Failure semantics: unsupported sizes are snapped to the nearest supported
// value (never an error); g <= 1 yields a single vertex at the origin.
package curve
