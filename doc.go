// Package tourlab is a small, deterministic toolbox for building and
// improving tours over 2-D grid points - the Euclidean TSP at teaching
// and visualization scale.
//
// What it offers:
//
//   - Tour constructors: radial sweep around the centroid, and ordering
//     along a Moore space-filling curve generated from an L-system.
//   - Tour improvers: first-improvement 2-opt, adjacent-pair swap, and a
//     combined improver alternating the two.
//   - Verifiers: exhaustive search with best-so-far pruning (small n),
//     and the 1-tree lower bound with an optimality verdict.
//
// Every operation has an atomic form (final artifact only) and a
// progressive form returning an ordered, replayable trace of steps
// suitable for animation. The engine itself is pure and single-threaded:
// values in, values out, no logging, no shared state between calls.
//
// Packages:
//
//	geom/  - points, Euclidean distance, tour length, random grid sampler
//	curve/ - L-system rewriting and the Moore curve engine
//	trace/ - the closed set of replayable step variants
//	tsp/   - constructors, improvers, verifiers and the dispatcher facade
//
// See cmd/tourlab for a demo CLI that samples instances, runs the
// pipeline and exports tours as GeoJSON.
package tourlab
