package strips

// LMTransform synthesizes the transformed task the LM-cut heuristic
// iterates over (§4.5): two fresh facts down/up, a zero-cost action
// a_down with precondition {down} and add-effect s, and a zero-cost
// action a_up with precondition g (the base task's goal) and add-effect
// {up}. The transformed task's initial state is {down} and its goal is
// {up}.
//
// LMTransform never mutates t: it returns a brand new Task whose action
// slice, fact slice and adjacency indices are freshly built (existing
// actions are copied with their fact sets resized to the larger fact
// space, never shared in a way that could let a later cost mutation leak
// back into t). The caller is expected to discard the returned task at
// the end of one heuristic evaluation.
func (t *Task) LMTransform(s FactSet) *Task {
	down := t.NumFacts
	up := t.NumFacts + 1
	numFacts := t.NumFacts + 2

	facts := make([]FactInfo, numFacts)
	copy(facts, t.Facts)
	facts[down] = FactInfo{Var: -1, Val: -1}
	facts[up] = FactInfo{Var: -1, Val: -1}

	actions := make([]Action, len(t.Actions), len(t.Actions)+2)
	for i, a := range t.Actions {
		actions[i] = Action{
			Name:    a.Name,
			Pre:     a.Pre.Resize(numFacts),
			Add:     a.Add.Resize(numFacts),
			PreList: a.PreList,
			AddList: a.AddList,
			Cost:    a.Cost,
		}
	}

	sResized := s.Resize(numFacts)
	downPre := NewFactSet(numFacts)
	downPre.Add(down)
	aDown := Action{
		Name:    "lmcut-down",
		Pre:     downPre,
		Add:     sResized,
		PreList: []int{down},
		AddList: sResized.ToSlice(),
		Cost:    0,
	}

	goalResized := t.Goal.Resize(numFacts)
	upAdd := NewFactSet(numFacts)
	upAdd.Add(up)
	aUp := Action{
		Name:    "lmcut-up",
		Pre:     goalResized,
		Add:     upAdd,
		PreList: goalResized.ToSlice(),
		AddList: []int{up},
		Cost:    0,
	}

	actions = append(actions, aDown, aUp)

	init := NewFactSet(numFacts)
	init.Add(down)
	goal := NewFactSet(numFacts)
	goal.Add(up)

	return &Task{
		NumFacts: numFacts,
		Facts:    facts,
		Actions:  actions,
		Init:     init,
		Goal:     goal,
		PreOf:    buildIndex(numFacts, actions, func(a Action) []int { return a.PreList }),
		AddOf:    buildIndex(numFacts, actions, func(a Action) []int { return a.AddList }),
		DownFact: down,
		UpFact:   up,
		Registry: t.Registry,
	}
}
