package hmax

import "github.com/fdrplan/fdplan/strips"

// Heuristic adapts Eval to the heuristic.Heuristic capability interface,
// closing over the task it evaluates states against and discarding the
// per-fact sigma labeling Eval also returns (callers that need it, such
// as package landmark, call Eval directly).
type Heuristic struct {
	task *strips.Task
}

// New returns a h^max heuristic evaluator over task.
func New(task *strips.Task) *Heuristic {
	return &Heuristic{task: task}
}

// Evaluate computes h^max(s) for a state already projected into a
// strips.FactSet (see strips.Task.Project).
func (h *Heuristic) Evaluate(s strips.FactSet) int {
	v, _ := Eval(h.task, s, nil)
	return v
}
