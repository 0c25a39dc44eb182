package landmark

import "github.com/fdrplan/fdplan/strips"

// PCF computes the precondition choice function for every action of t
// given a h^max cost labeling sigma (as returned by hmax.Eval on the same
// task). pcf(a) is the member of a's precondition set responsible for a's
// h^max value: the maximum-sigma precondition, ties broken by preferring
// the precondition whose (variable-index, value) pair compares greater
// lexicographically (variable first, then value), per the published
// LM-cut determinism contract.
//
// Actions with no precondition are pinned to t.DownFact: LMTransform
// seeds every search from down at cost 0, so a precondition-free action
// is, in effect, already supported from the start, and down is always
// forward-reachable from the transformed task's initial state. t.DownFact
// must be valid (t must be a LMTransform result) whenever any action has
// an empty PreList; PCF never special-cases the base (non-transformed)
// task.
func PCF(t *strips.Task, sigma []int) []int {
	pcf := make([]int, len(t.Actions))
	for ai, a := range t.Actions {
		if len(a.PreList) == 0 {
			pcf[ai] = t.DownFact
			continue
		}

		best := a.PreList[0]
		for _, p := range a.PreList[1:] {
			if supports(t, sigma, p, best) {
				best = p
			}
		}
		pcf[ai] = best
	}

	return pcf
}

// supports reports whether candidate fact cand should replace cur as the
// current best (argmax sigma) precondition.
func supports(t *strips.Task, sigma []int, cand, cur int) bool {
	if sigma[cand] != sigma[cur] {
		return sigma[cand] > sigma[cur]
	}

	fc, fu := t.Facts[cand], t.Facts[cur]
	if fc.Var != fu.Var {
		return fc.Var > fu.Var
	}

	return fc.Val > fu.Val
}
