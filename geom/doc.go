// Package geom provides the geometric primitives shared by every tourlab
// component: grid points, Euclidean distance, closed-tour length, the
// centroid, and a deterministic random point sampler.
//
// What:
//
//   - Point: an immutable grid point with a stable identifier.
//   - Dist: Euclidean distance between two points.
//   - TourLength: total length of a closed tour over a point set.
//   - Centroid: arithmetic mean of a point set.
//   - Sample: k distinct random points on a g×g grid, reproducible by seed.
//
// Design:
//
//   - Pure functions over values; the package never mutates a PointSet.
//   - 64-bit floating point throughout; lengths are stabilized to 1e-9 to
//     avoid cross-platform FP drift.
//   - Determinism: seed==0 maps to a fixed default seed, so the zero value
//     is reproducible rather than time-based.
//
// Errors:
//
//   - ErrGridSize: sampler grid size below 1.
//   - ErrSampleCount: sample count negative or above grid capacity.
package geom
