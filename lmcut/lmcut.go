package lmcut

import (
	"github.com/fdrplan/fdplan/hmax"
	"github.com/fdrplan/fdplan/landmark"
	"github.com/fdrplan/fdplan/strips"
)

// Heuristic adapts Eval to the Evaluate(strips.FactSet) int capability
// every search-facing heuristic exposes, closing over the base
// (untransformed) task it is evaluated against.
type Heuristic struct {
	base *strips.Task
}

// New returns a LM-cut heuristic evaluator over base. base must outlive
// the Heuristic; it is never mutated.
func New(base *strips.Task) *Heuristic {
	return &Heuristic{base: base}
}

// Evaluate computes h_LMCut(s) for a state already projected into a
// strips.FactSet (see strips.Task.Project).
func (h *Heuristic) Evaluate(s strips.FactSet) int {
	return Eval(h.base, s)
}

// Eval computes h_LMCut(s): LMTransform's down/up facts seed a fresh
// h^max + cut-extraction loop that accumulates the minimum cost of each
// disjunctive landmark discovered, subtracting it from the cut's member
// actions' costs and repeating until the transformed task's h^max
// reaches zero.
//
// Costs are tracked in a per-evaluation array, initialised from the
// transformed task's action costs and reduced in place, rather than in a
// mutated clone of the transformed task, so base (and the task
// LMTransform derives) are never touched; see the module design notes
// for why this is admissibility-equivalent to the reference's deep-clone
// approach.
//
// Returns hmax.Inf if s is a dead end.
func Eval(base *strips.Task, s strips.FactSet) int {
	tr := base.LMTransform(s)

	costs := make([]int, len(tr.Actions))
	for ai, a := range tr.Actions {
		costs[ai] = a.Cost
	}

	total := 0
	for {
		h, sigma := hmax.Eval(tr, tr.Init, costs)
		if h == hmax.Inf {
			return hmax.Inf
		}
		if h == 0 {
			return total
		}

		pcf := landmark.PCF(tr, sigma)
		c, cut := landmark.ExtractCut(tr, pcf, costs)

		total += c
		for _, ai := range cut {
			costs[ai] -= c
		}
	}
}
