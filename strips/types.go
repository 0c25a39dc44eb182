package strips

import "github.com/fdrplan/fdplan/idreg"

// VarVal is an (variable-index, value) pair, the key type interned by the
// fact registry. Synthetic facts introduced by LMTransform are not
// interned in the registry; only their FactInfo is set (to Var == -1).
type VarVal struct {
	Var int
	Val int
}

// FactInfo names the (variable, value) pair a fact id stands for. Facts
// introduced by LMTransform (down/up) carry Var == -1 and are never
// compared against a real fact by the pcf tie-break (see package
// landmark), since no real action's precondition ever contains them.
type FactInfo struct {
	Var int
	Val int
}

// Action is a propositional STRIPS action: a precondition fact set, an
// add-effect fact set, a non-negative cost, and the name of the
// originating FDR operator. PreList and AddList hold the same members as
// Pre and Add as sorted slices, for the many call sites that need to
// iterate a small set rather than scan the dense bitset.
type Action struct {
	Name    string
	Pre     FactSet
	Add     FactSet
	PreList []int
	AddList []int
	Cost    int
}

// Task is an immutable propositional STRIPS planning task.
type Task struct {
	NumFacts int
	Facts    []FactInfo // Facts[id] is the (var, val) pair fact id stands for.
	Actions  []Action
	Init     FactSet
	Goal     FactSet

	// PreOf[f] lists the ids of actions that have fact f in their
	// precondition set; AddOf[f] lists the ids of actions that have fact
	// f in their add-effect set. Both are adjacency indices built once at
	// compile time (or transform time) so hmax and landmark never need to
	// scan every action to find the ones incident on a given fact.
	PreOf [][]int
	AddOf [][]int

	// DownFact and UpFact are the ids of the two synthetic facts added by
	// LMTransform, or -1 on a base (non-transformed) task.
	DownFact int
	UpFact   int

	Registry *idreg.IdRegistry[VarVal]
}

// FactID looks up the fact id for the (variable, value) pair without
// interning a new one; ok is false if the pair was never compiled into
// the task (which would indicate a mismatched FDR/STRIPS pairing).
func (t *Task) FactID(varIdx, val int) (int, bool) {
	return t.Registry.LookupID(VarVal{Var: varIdx, Val: val})
}

// Project turns a multi-valued FDR state vector into the propositional
// fact set the heuristics operate on, by looking up each (variable, value)
// pair of state in the task's fact registry (without interning new ones). This is the only
// sanctioned way to turn a search-time state into a FactSet: it never
// consults any side-channel list of facts built during loading.
func (t *Task) Project(state []int) FactSet {
	s := NewFactSet(t.NumFacts)
	for v, val := range state {
		if id, ok := t.FactID(v, val); ok {
			s.Add(id)
		}
	}

	return s
}

// buildIndex constructs a fact -> action-id adjacency list from each
// action's member function (PreList or AddList).
func buildIndex(numFacts int, actions []Action, member func(Action) []int) [][]int {
	index := make([][]int, numFacts)
	for ai, a := range actions {
		for _, f := range member(a) {
			index[f] = append(index[f], ai)
		}
	}

	return index
}
