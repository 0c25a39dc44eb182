package strips_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdrplan/fdplan/fdr"
	"github.com/fdrplan/fdplan/strips"
)

func s2FDRTask() *fdr.Task {
	return &fdr.Task{
		Variables: []fdr.Variable{{Name: "v", Values: []string{"off", "on"}}},
		Init:      []int{0},
		Goal:      map[int]int{0: 1},
		Operators: []fdr.Operator{{Name: "set1", Pre: map[int]int{}, Eff: map[int]int{0: 1}, Cost: 4}},
	}
}

func TestCompileFactCountMatchesDomainSizes(t *testing.T) {
	ft := &fdr.Task{
		Variables: []fdr.Variable{
			{Name: "a", Values: []string{"0", "1", "2"}},
			{Name: "b", Values: []string{"0", "1"}},
		},
		Init: []int{0, 0},
		Goal: map[int]int{},
	}
	st := strips.Compile(ft)

	assert.Equal(t, 5, st.NumFacts) // |D_a| + |D_b| = 3 + 2
	for vi, v := range ft.Variables {
		for val := range v.Values {
			id, ok := st.FactID(vi, val)
			require.True(t, ok)
			assert.Less(t, id, st.NumFacts)
		}
	}
}

func TestCompileS2(t *testing.T) {
	st := strips.Compile(s2FDRTask())

	require.Len(t, st.Actions, 1)
	a := st.Actions[0]
	assert.Equal(t, "set1", a.Name)
	assert.Empty(t, a.PreList)
	assert.Equal(t, 4, a.Cost)

	onID, ok := st.FactID(0, 1)
	require.True(t, ok)
	assert.Equal(t, []int{onID}, a.AddList)
	assert.True(t, st.Goal.Has(onID))

	offID, ok := st.FactID(0, 0)
	require.True(t, ok)
	assert.True(t, st.Init.Has(offID))
}

func TestCompileDeterministicAcrossCalls(t *testing.T) {
	ft := s2FDRTask()
	st1 := strips.Compile(ft)
	st2 := strips.Compile(ft)

	assert.Equal(t, st1.NumFacts, st2.NumFacts)
	assert.Equal(t, st1.Init.ToSlice(), st2.Init.ToSlice())
	assert.Equal(t, st1.Goal.ToSlice(), st2.Goal.ToSlice())
}

func TestProjectUsesRegistryNotSideChannel(t *testing.T) {
	st := strips.Compile(s2FDRTask())

	facts := st.Project([]int{1})
	onID, _ := st.FactID(0, 1)
	assert.True(t, facts.Has(onID))
	assert.Equal(t, 1, facts.Len())
}
