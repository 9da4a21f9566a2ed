// Package curve - core types and L-system constants.
package curve

// Vertex is a single curve vertex on the integer grid 0..g-1.
// Consecutive vertices of a generated curve differ by exactly one unit
// along one axis.
type Vertex struct {
	X int
	Y int
}

// Moore L-system over the alphabet {L, R, F, +, -}.
// L and R are rewriting symbols with no geometric effect; F advances the
// turtle one unit; + rotates the heading 90° clockwise (screen
// coordinates); - rotates counter-clockwise.
const (
	// Axiom is the Moore curve start string. It already encodes one level
	// of recursion, which is why grid size 2 needs zero iterations.
	Axiom = "LFL+F+LFL"

	// ruleL is the production for L.
	ruleL = "-RF+LFL+FR-"
	// ruleR is the production for R.
	ruleR = "+LF-RFR-FL+"
)

// supportedSizes is the closed set of valid grid sizes, ascending.
var supportedSizes = []int{2, 4, 8, 16, 32, 64}
