package fdr

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is the sentinel wrapped by every malformed-task-file
// error. Use errors.Is(err, ErrInvalidInput) to distinguish it from I/O
// failures when deciding a CLI exit code.
var ErrInvalidInput = errors.New("fdr: invalid task file")

// Variable is one finite-domain state variable: a name (for
// pretty-printing) and an ordered list of value labels. The variable's
// domain is {0, ..., len(Values)-1}.
type Variable struct {
	Name   string
	Values []string
}

// Operator is an FDR operator: a partial-assignment precondition, a
// partial-assignment effect (total replacement on the listed variables),
// and a non-negative integer cost. Pre and Eff map variable index to
// domain-value index.
type Operator struct {
	Name string
	Pre  map[int]int
	Eff  map[int]int
	Cost int
}

// Task is a fully loaded finite-domain planning task.
type Task struct {
	Variables []Variable
	Init      []int // Init[v] is the value index of variable v in the initial state.
	Goal      map[int]int
	Operators []Operator
}

// Applicable reports whether op's precondition is satisfied by state.
func (t *Task) Applicable(state []int, op *Operator) bool {
	for v, val := range op.Pre {
		if state[v] != val {
			return false
		}
	}

	return true
}

// Apply returns the state reached by applying op's effect to state. state
// is not mutated.
func (t *Task) Apply(state []int, op *Operator) []int {
	next := make([]int, len(state))
	copy(next, state)
	for v, val := range op.Eff {
		next[v] = val
	}

	return next
}

// IsGoal reports whether state satisfies every assignment in t.Goal.
func (t *Task) IsGoal(state []int) bool {
	for v, val := range t.Goal {
		if state[v] != val {
			return false
		}
	}

	return true
}

// DebugString renders the task in a human-readable form for diagnostics,
// mirroring the pretty-printer the original FDR/STRIPS implementation
// exposed for interactive debugging.
func (t *Task) DebugString() string {
	var b strings.Builder

	b.WriteString("V:\n")
	for _, v := range t.Variables {
		fmt.Fprintf(&b, "- %s: %v\n", v.Name, v.Values)
	}

	b.WriteString("s0:\n")
	for v, val := range t.Init {
		fmt.Fprintf(&b, "- %s: %s\n", t.Variables[v].Name, t.Variables[v].Values[val])
	}

	b.WriteString("g:\n")
	for v, val := range t.Goal {
		fmt.Fprintf(&b, "- %s: %s\n", t.Variables[v].Name, t.Variables[v].Values[val])
	}

	b.WriteString("op:\n")
	for _, op := range t.Operators {
		fmt.Fprintf(&b, "- %s (%d): pre=%v eff=%v\n", op.Name, op.Cost, op.Pre, op.Eff)
	}

	return b.String()
}
