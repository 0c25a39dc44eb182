package strips

import (
	"sort"

	"github.com/fdrplan/fdplan/fdr"
	"github.com/fdrplan/fdplan/idreg"
)

// Compile lowers an FDR task into its propositional STRIPS form, per the
// compilation rules in the data-model and component-design sections:
// every (variable, value) pair reachable from the variable domains is
// interned into a fact id; s0 and g are interned from the FDR's total
// initial state and partial goal assignment; each operator becomes an
// action whose precondition and add-effect are the interned fact ids of
// its (already-flattened, see package fdr) precondition and effect maps.
//
// Compilation is deterministic given the input operator order: facts are
// interned variable-by-variable, value-by-value, and actions are emitted
// in the same order as t.Operators.
func Compile(t *fdr.Task) *Task {
	reg := idreg.New[VarVal]()
	for vi, v := range t.Variables {
		for val := range v.Values {
			reg.GetID(VarVal{Var: vi, Val: val})
		}
	}
	numFacts := reg.Len()

	facts := make([]FactInfo, numFacts)
	for id := 0; id < numFacts; id++ {
		vv := reg.MustGetValue(id)
		facts[id] = FactInfo{Var: vv.Var, Val: vv.Val}
	}

	init := NewFactSet(numFacts)
	for vi, val := range t.Init {
		id, _ := reg.LookupID(VarVal{Var: vi, Val: val})
		init.Add(id)
	}

	goal := NewFactSet(numFacts)
	for vi, val := range t.Goal {
		id, _ := reg.LookupID(VarVal{Var: vi, Val: val})
		goal.Add(id)
	}

	actions := make([]Action, 0, len(t.Operators))
	for _, op := range t.Operators {
		actions = append(actions, compileAction(reg, numFacts, op))
	}

	return &Task{
		NumFacts: numFacts,
		Facts:    facts,
		Actions:  actions,
		Init:     init,
		Goal:     goal,
		PreOf:    buildIndex(numFacts, actions, func(a Action) []int { return a.PreList }),
		AddOf:    buildIndex(numFacts, actions, func(a Action) []int { return a.AddList }),
		DownFact: -1,
		UpFact:   -1,
		Registry: reg,
	}
}

func compileAction(reg *idreg.IdRegistry[VarVal], numFacts int, op fdr.Operator) Action {
	pre := NewFactSet(numFacts)
	preList := make([]int, 0, len(op.Pre))
	for vi, val := range op.Pre {
		id, _ := reg.LookupID(VarVal{Var: vi, Val: val})
		pre.Add(id)
		preList = append(preList, id)
	}
	sort.Ints(preList)

	add := NewFactSet(numFacts)
	addList := make([]int, 0, len(op.Eff))
	for vi, val := range op.Eff {
		id, _ := reg.LookupID(VarVal{Var: vi, Val: val})
		add.Add(id)
		addList = append(addList, id)
	}
	sort.Ints(addList)

	return Action{
		Name:    op.Name,
		Pre:     pre,
		Add:     add,
		PreList: preList,
		AddList: addList,
		Cost:    op.Cost,
	}
}
