package hmax

import (
	"math"

	"github.com/fdrplan/fdplan/strips"
)

// Inf represents an unreachable fact or a dead-end state: no sequence of
// actions achieves it under the delete relaxation.
const Inf = math.MaxInt

// Eval computes h^max(s) and the per-fact cost labeling sigma it was
// derived from. costs, if non-nil, overrides each action's cost by index
// (used by package lmcut to apply its per-evaluation reduced costs
// without mutating the base task); pass nil to use each action's own
// Cost field.
//
// Returns (Inf, sigma) if s is a dead end under the delete relaxation,
// i.e. some goal fact is unreachable.
func Eval(t *strips.Task, s strips.FactSet, costs []int) (int, []int) {
	sigma := make([]int, t.NumFacts)
	for i := range sigma {
		sigma[i] = Inf
	}
	s.ForEach(func(id int) { sigma[id] = 0 })

	remaining := make([]int, len(t.Actions))
	for ai, a := range t.Actions {
		remaining[ai] = len(a.PreList)
		if len(a.PreList) == 0 {
			relax(sigma, a.AddList, actionCost(t, costs, ai))
		}
	}

	settled := make([]bool, t.NumFacts)
	for !isGoalSettled(t, settled) {
		q, qCost := pickMinUnsettled(sigma, settled)
		if q < 0 {
			// No further fact can be settled: some goal fact is
			// permanently unreachable under the delete relaxation.
			return Inf, sigma
		}
		settled[q] = true

		for _, ai := range t.PreOf[q] {
			remaining[ai]--
			if remaining[ai] == 0 {
				a := t.Actions[ai]
				relax(sigma, a.AddList, actionCost(t, costs, ai)+qCost)
			}
		}
	}

	h := 0
	t.Goal.ForEach(func(id int) {
		if sigma[id] > h {
			h = sigma[id]
		}
	})

	return h, sigma
}

func actionCost(t *strips.Task, costs []int, ai int) int {
	if costs != nil {
		return costs[ai]
	}

	return t.Actions[ai].Cost
}

func relax(sigma []int, addList []int, v int) {
	for _, p := range addList {
		if v < sigma[p] {
			sigma[p] = v
		}
	}
}

func isGoalSettled(t *strips.Task, settled []bool) bool {
	ok := true
	t.Goal.ForEach(func(id int) {
		if !settled[id] {
			ok = false
		}
	})

	return ok
}

// pickMinUnsettled returns the smallest-id, minimum-sigma unsettled fact,
// or (-1, 0) if every unsettled fact still has sigma == Inf.
func pickMinUnsettled(sigma []int, settled []bool) (int, int) {
	best := -1
	bestVal := Inf
	for id, st := range settled {
		if st {
			continue
		}
		if sigma[id] < bestVal {
			bestVal = sigma[id]
			best = id
		}
	}
	if bestVal == Inf {
		return -1, 0
	}

	return best, bestVal
}
