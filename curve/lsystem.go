// Package curve - L-system string rewriting.
package curve

// Rewrite applies the Moore productions (L -> ruleL, R -> ruleR, all other
// symbols copied verbatim) to s, iterations times. iterations <= 0 returns
// s unchanged.
//
// Growth is geometric: each iteration roughly quadruples the string, so an
// order-k curve costs O(4^k) output. Sizes here are tiny (g <= 64 means at
// most 5 iterations).
//
// Complexity: O(len(result)) time and space.
func Rewrite(s string, iterations int) string {
	var (
		it  int    // iteration counter
		cur []byte // current string
		nxt []byte // next string under construction
		i   int    // symbol index
	)
	cur = []byte(s)

	for it = 0; it < iterations; it++ {
		// Each L/R expands to 11 symbols; 4x capacity is a close upper bound.
		nxt = make([]byte, 0, len(cur)*4)
		for i = 0; i < len(cur); i++ {
			switch cur[i] {
			case 'L':
				nxt = append(nxt, ruleL...)
			case 'R':
				nxt = append(nxt, ruleR...)
			default:
				nxt = append(nxt, cur[i])
			}
		}
		cur = nxt
	}

	return string(cur)
}
