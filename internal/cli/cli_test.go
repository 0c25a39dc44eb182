package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdrplan/fdplan/internal/cli"
)

const header = "3\nno_mutex_conditions\n1\n0\nno_axioms\n0\n"

// s2Task mirrors scenario S2: a single zero-precondition operator
// achieving the goal at cost 4.
const s2Task = `1
begin_variable
v
-1
2
off
on
end_variable
0
begin_state
0
end_state
begin_goal
1
0 1
end_goal
1
begin_operator
set1
0
1
0 0 -1 1
4
end_operator
`

const unsolvableTask = `1
begin_variable
v
-1
2
off
on
end_variable
0
begin_state
0
end_state
begin_goal
1
0 1
end_goal
0
`

func writeTask(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "task.sas")
	require.NoError(t, os.WriteFile(path, []byte(header+body), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := cli.NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestPlanFindsOptimalPlan(t *testing.T) {
	path := writeTask(t, s2Task)

	out, err := execute(t, "plan", path, "lmcut")
	require.NoError(t, err)
	assert.Contains(t, out, "set1")
	assert.Contains(t, out, "Plan cost: 4")
}

func TestPlanUnsolvableReportsDistinctExitCode(t *testing.T) {
	path := writeTask(t, unsolvableTask)

	_, err := execute(t, "plan", path, "hmax")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUnsolvable, cli.ExitCode(err))
}

func TestPlanUnknownHeuristicIsUsageError(t *testing.T) {
	path := writeTask(t, s2Task)

	_, err := execute(t, "plan", path, "bogus")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsageError, cli.ExitCode(err))
}

func TestPlanMissingFileIsInvalidInput(t *testing.T) {
	_, err := execute(t, "plan", "/no/such/file.sas", "hmax")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidInput, cli.ExitCode(err))
}

func TestPlanBudgetFlagAcceptsDuration(t *testing.T) {
	path := writeTask(t, s2Task)

	out, err := execute(t, "plan", "--budget", "1s", path, "lmcut")
	require.NoError(t, err)
	assert.Contains(t, out, "Plan cost: 4")
}

func TestHmaxCommandPrintsValue(t *testing.T) {
	path := writeTask(t, s2Task)

	out, err := execute(t, "hmax", path)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestLMCutCommandPrintsValue(t *testing.T) {
	path := writeTask(t, s2Task)

	out, err := execute(t, "lmcut", path)
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)
}

func TestWrongArgCountIsUsageError(t *testing.T) {
	_, err := execute(t, "plan", "only-one-arg")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsageError, cli.ExitCode(err))
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fdplan version")
}
