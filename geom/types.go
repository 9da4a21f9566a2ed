// Package geom defines core types and sentinel errors for the geometry
// primitives of github.com/hexwald/tourlab.
package geom

import "errors"

// Sentinel errors for geom operations.
var (
	// ErrGridSize indicates a sampler grid size below 1.
	ErrGridSize = errors.New("geom: grid size must be at least 1")
	// ErrSampleCount indicates a sample count that is negative or exceeds
	// the grid capacity g*g.
	ErrSampleCount = errors.New("geom: sample count out of range for grid capacity")
)

// Point is a 2-D grid point with a stable identifier.
// Coordinates are non-negative integers; a Point is immutable for the
// duration of any operation that reads it.
type Point struct {
	ID int // stable identifier, unique within a PointSet
	X  int // grid column, >= 0
	Y  int // grid row, >= 0
}

// PointSet is an ordered sequence of points with implicit indices 0..n-1.
// Identifiers must be unique within the set. The tourlab core only ever
// holds a read-only view of a PointSet; callers retain ownership.
type PointSet []Point
