package heuristic

import "github.com/fdrplan/fdplan/strips"

// Heuristic estimates the cost to reach the goal from a state, already
// projected into a strips.FactSet. Implementations must be admissible:
// never overestimate the true optimal cost. A return value of hmax.Inf
// marks a dead end.
type Heuristic interface {
	Evaluate(s strips.FactSet) int
}
