package astar

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnsolvable indicates the open queue emptied without reaching a goal
// state: the task has no plan from its initial state.
var ErrUnsolvable = errors.New("astar: no plan exists from the initial state")

// ErrBudgetExceeded indicates a caller-supplied wall-clock budget (see
// WithBudget) ran out before a goal was reached.
var ErrBudgetExceeded = errors.New("astar: search budget exceeded")

// Plan is an optimal operator sequence and its accumulated cost.
type Plan struct {
	Operators []string
	Cost      int
}

// config holds Search's optional behavior, set up via functional options
// in the style of the teacher's dijkstra.Options/Option pair.
type config struct {
	budget time.Duration // wall-clock search budget; 0 means unlimited.
	runID  string
}

// Option configures a Search call.
type Option func(*config)

// WithBudget caps Search's wall-clock running time; once the deadline
// passes, Search gives up with ErrBudgetExceeded at its next expansion
// check rather than running unbounded. A budget of 0 (the default) means
// no cap, matching the teacher's tsp.Options.TimeLimit soft-deadline
// convention.
func WithBudget(d time.Duration) Option {
	return func(c *config) {
		if d < 0 {
			panic("astar: budget must be non-negative")
		}
		c.budget = d
	}
}

// WithRunID overrides the per-run correlation id threaded into log lines.
// Search generates a fresh uuid by default; tests and callers that want
// to correlate a run's log output with an external trace can pin it.
func WithRunID(id string) Option {
	return func(c *config) {
		c.runID = id
	}
}

func defaultConfig() config {
	return config{budget: 0, runID: uuid.New().String()}
}
