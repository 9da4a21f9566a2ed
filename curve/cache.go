// Package curve - process-wide memoization of generated curves.
//
// The vertex sequence depends only on the (snapped) grid size, so results
// are cached for the lifetime of the process. Callers always receive an
// independent copy; the cached slices are never handed out directly.
package curve

import "sync"

var (
	cacheMu sync.Mutex
	cache   = make(map[int][]Vertex, len(supportedSizes))
)

// cachedMoore returns a copy of the memoized curve for a supported grid
// size, generating and storing it on first use.
func cachedMoore(gs int) []Vertex {
	cacheMu.Lock()
	v, ok := cache[gs]
	if !ok {
		v = generate(gs)
		cache[gs] = v
	}
	cacheMu.Unlock()

	out := make([]Vertex, len(v))
	copy(out, v)

	return out
}
