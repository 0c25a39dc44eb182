package landmark

import (
	"fmt"

	"github.com/fdrplan/fdplan/strips"
)

// ExtractCut builds the pcf-induced justification graph over the
// transformed task t and extracts the minimum-cost disjunctive action
// landmark it contains, given the current cost overlay (nil uses each
// action's own Cost field) and a pcf computed from the matching h^max
// labeling.
//
// Returns (min cost among the cut's actions, the cut's action ids). Per
// spec this can only be called when h^max on t is strictly positive;
// calling it otherwise, or a bug in an earlier stage that produces an
// inconsistent pcf, surfaces as a panic (InternalInvariantViolation
// class) rather than a silently wrong admissible estimate.
func ExtractCut(t *strips.Task, pcf []int, costs []int) (int, []int) {
	goalZone := backwardZeroCostReach(t, pcf, costs)
	initZone := forwardReach(t, pcf, goalZone)

	var cut []int
	minCost := -1
	for ai, a := range t.Actions {
		if !initZone[pcf[ai]] {
			continue
		}

		reachesGoal := false
		for _, q := range a.AddList {
			if goalZone[q] {
				reachesGoal = true
				break
			}
		}
		if !reachesGoal {
			continue
		}

		cut = append(cut, ai)
		c := actionCost(t, costs, ai)
		if minCost < 0 || c < minCost {
			minCost = c
		}
	}

	if len(cut) == 0 || minCost <= 0 {
		panic(fmt.Sprintf("landmark: invariant violation, empty or non-positive cut (len=%d, min=%d)", len(cut), minCost))
	}

	return minCost, cut
}

// backwardZeroCostReach computes V*_g: the facts backward-reachable from
// t.UpFact by following zero-cost actions from their add-effects to their
// pcf source.
func backwardZeroCostReach(t *strips.Task, pcf, costs []int) []bool {
	inZone := make([]bool, t.NumFacts)
	inZone[t.UpFact] = true

	for changed := true; changed; {
		changed = false
		for ai, a := range t.Actions {
			if actionCost(t, costs, ai) != 0 || inZone[pcf[ai]] {
				continue
			}
			for _, q := range a.AddList {
				if inZone[q] {
					inZone[pcf[ai]] = true
					changed = true
					break
				}
			}
		}
	}

	return inZone
}

// forwardReach computes V*_0: the facts forward-reachable from
// t.DownFact via edges whose head is not already in the goal zone.
func forwardReach(t *strips.Task, pcf []int, goalZone []bool) []bool {
	inZone := make([]bool, t.NumFacts)
	inZone[t.DownFact] = true

	for changed := true; changed; {
		changed = false
		for ai, a := range t.Actions {
			if !inZone[pcf[ai]] {
				continue
			}
			for _, q := range a.AddList {
				if goalZone[q] || inZone[q] {
					continue
				}
				inZone[q] = true
				changed = true
			}
		}
	}

	return inZone
}

func actionCost(t *strips.Task, costs []int, ai int) int {
	if costs != nil {
		return costs[ai]
	}

	return t.Actions[ai].Cost
}
