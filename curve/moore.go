// Package curve - turtle interpretation and grid normalization.
//
// The turtle starts at the origin facing up in screen coordinates (up
// decreases y). '+' rotates the heading 90° clockwise, '-' rotates
// counter-clockwise, 'F' advances one unit; 'L' and 'R' are rewriting
// symbols with no geometric effect. The position is recorded initially and
// after every 'F'.
//
// Normalization maps the raw walk onto the integer grid 0..g-1 per axis:
// v' = round(((v - min) / (max - min)) * (g - 1)). A zero-extent axis maps
// to the constant coordinate 0 (guards the degenerate division).
package curve

import "math"

// headings in screen coordinates, clockwise from "up":
// up, right, down, left.
var headings = [4]Vertex{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Moore returns the closed Moore curve for grid size g, snapped to the
// nearest supported size. For g <= 1 it returns a single vertex at the
// origin. The result is a fresh copy owned by the caller; generation per
// size happens once and is memoized process-wide (pure function of g).
//
// Complexity: O(g^2) time and space on a cache miss, O(g^2) copy otherwise.
func Moore(g int) []Vertex {
	if g <= 1 {
		return []Vertex{{0, 0}}
	}

	return cachedMoore(SnapGridSize(g))
}

// generate builds the curve for a supported grid size without touching the
// memo cache. gs must be a member of supportedSizes.
func generate(gs int) []Vertex {
	prog := Rewrite(Axiom, Order(gs)-1)

	return normalize(walk(prog), gs)
}

// walk runs the turtle over an L-system program and returns the raw path:
// the initial position plus one vertex per 'F'.
//
// Complexity: O(len(prog)).
func walk(prog string) []Vertex {
	var (
		dir  int    // heading index into headings
		x, y int    // current position
		i    int    // program index
		path []Vertex
	)
	path = make([]Vertex, 0, len(prog)/2+1)
	path = append(path, Vertex{0, 0})

	for i = 0; i < len(prog); i++ {
		switch prog[i] {
		case 'F':
			x += headings[dir].X
			y += headings[dir].Y
			path = append(path, Vertex{x, y})
		case '+':
			dir = (dir + 1) % 4
		case '-':
			dir = (dir + 3) % 4
		}
	}

	return path
}

// normalize maps a raw turtle path onto the integer grid 0..g-1.
//
// Complexity: O(len(path)).
func normalize(path []Vertex, g int) []Vertex {
	if len(path) == 0 {
		return nil
	}

	// Bounding box of the raw walk.
	var (
		minX, maxX = path[0].X, path[0].X
		minY, maxY = path[0].Y, path[0].Y
		i          int
	)
	for i = 1; i < len(path); i++ {
		if path[i].X < minX {
			minX = path[i].X
		}
		if path[i].X > maxX {
			maxX = path[i].X
		}
		if path[i].Y < minY {
			minY = path[i].Y
		}
		if path[i].Y > maxY {
			maxY = path[i].Y
		}
	}

	var (
		spanX = float64(maxX - minX)
		spanY = float64(maxY - minY)
		scale = float64(g - 1)
		out   = make([]Vertex, len(path))
	)
	for i = 0; i < len(path); i++ {
		out[i] = Vertex{
			X: scaleCoord(path[i].X, minX, spanX, scale),
			Y: scaleCoord(path[i].Y, minY, spanY, scale),
		}
	}

	return out
}

// scaleCoord maps one raw coordinate onto 0..g-1, collapsing a zero-extent
// axis to 0.
func scaleCoord(v, min int, span, scale float64) int {
	if span == 0 {
		return 0
	}

	return int(math.Round(float64(v-min) / span * scale))
}
