package astar

import (
	"container/heap"
	"math"
	"time"

	"github.com/tliron/commonlog"

	"github.com/fdrplan/fdplan/fdr"
	"github.com/fdrplan/fdplan/heuristic"
	"github.com/fdrplan/fdplan/strips"
)

var searchLog = commonlog.GetLogger("fdplan.astar")

// expansionLogInterval controls how often Search emits a milestone log
// line; frequent enough to see progress on a long search, rare enough
// not to dominate output on a short one.
const expansionLogInterval = 1000

// Search finds a cost-optimal operator sequence from ft's initial state
// to its goal, using h to estimate the remaining cost of the STRIPS
// projection of each state it visits. ft and st must describe the same
// task (st is ft compiled via strips.Compile); h is typically an
// hmax.Heuristic or lmcut.Heuristic wrapping st.
//
// Returns ErrUnsolvable if the open queue empties before a goal is
// found, or ErrBudgetExceeded if a WithBudget option is set and
// exhausted first.
func Search(ft *fdr.Task, st *strips.Task, h heuristic.Heuristic, opts ...Option) (*Plan, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	useDeadline := cfg.budget > 0
	var deadline time.Time
	if useDeadline {
		deadline = time.Now().Add(cfg.budget)
	}

	root := &node{state: ft.Init, g: 0}
	gBest := map[string]int{stateKey(root.state): 0}

	pq := make(openQueue, 0, 64)
	heap.Init(&pq)
	counter := 0
	push := func(n *node, f int) {
		heap.Push(&pq, &item{n: n, f: f, counter: counter})
		counter++
	}

	push(root, root.g+h.Evaluate(st.Project(root.state)))

	searchLog.Debugf("run=%s: search started", cfg.runID)

	expansions := 0
	for pq.Len() > 0 {
		it := heap.Pop(&pq).(*item)
		n := it.n

		if n.g > gBest[stateKey(n.state)] {
			continue // stale open-queue entry for an already-improved state.
		}

		if ft.IsGoal(n.state) {
			plan := buildPlan(n)
			searchLog.Debugf("run=%s: goal reached after %d expansions, cost=%d", cfg.runID, expansions, plan.Cost)

			return plan, nil
		}

		if useDeadline && time.Now().After(deadline) {
			return nil, ErrBudgetExceeded
		}
		expansions++

		if expansions%expansionLogInterval == 0 {
			searchLog.Debugf("run=%s: %d expansions, open=%d", cfg.runID, expansions, pq.Len())
		}

		for oi := range ft.Operators {
			op := &ft.Operators[oi]
			if !ft.Applicable(n.state, op) {
				continue
			}

			succState := ft.Apply(n.state, op)
			succG := n.g + op.Cost
			succKey := stateKey(succState)
			if best, ok := gBest[succKey]; ok && succG >= best {
				continue
			}
			gBest[succKey] = succG

			hv := h.Evaluate(st.Project(succState))
			if hv == math.MaxInt {
				// Dead end under the heuristic: per §4.9 such nodes may be
				// dropped rather than enqueued at infinite priority.
				continue
			}

			push(&node{state: succState, g: succG, op: op.Name, parent: n}, succG+hv)
		}
	}

	searchLog.Debugf("run=%s: queue exhausted after %d expansions, unsolvable", cfg.runID, expansions)

	return nil, ErrUnsolvable
}
