package fdr

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var loadLog = commonlog.GetLogger("fdplan.fdr")

// Load reads the task file at path and returns the parsed Task. Any
// malformed section, out-of-range index, or count mismatch is returned as
// an error wrapping ErrInvalidInput with the offending section name and
// line number; I/O failures are returned as the underlying os.ReadFile
// error wrapped with the file path, not as ErrInvalidInput.
func Load(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "fdr: reading task file %q", path)
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	p := &parser{lines: lines, path: path}
	task, err := p.parse()
	if err != nil {
		return nil, err
	}

	loadLog.Debugf("%s: loaded %d variables, %d operators", path, len(task.Variables), len(task.Operators))

	return task, nil
}

// parser walks the line-oriented task file with a single forward cursor.
type parser struct {
	lines []string
	pos   int
	path  string
}

func (p *parser) next() (string, error) {
	if p.pos >= len(p.lines) {
		return "", errors.Wrapf(ErrInvalidInput, "%s: unexpected end of file", p.path)
	}
	line := p.lines[p.pos]
	p.pos++

	return line, nil
}

func (p *parser) expect(want string) error {
	line, err := p.next()
	if err != nil {
		return err
	}
	if line != want {
		return errors.Wrapf(ErrInvalidInput, "%s: line %d: expected %q, got %q", p.path, p.pos, want, line)
	}

	return nil
}

func (p *parser) nextInt() (int, error) {
	line, err := p.next()
	if err != nil {
		return 0, err
	}
	v, cerr := strconv.Atoi(line)
	if cerr != nil {
		return 0, errors.Wrapf(ErrInvalidInput, "%s: line %d: expected integer, got %q", p.path, p.pos, line)
	}

	return v, nil
}

func (p *parser) nextInts() ([]int, error) {
	line, err := p.next()
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, cerr := strconv.Atoi(f)
		if cerr != nil {
			return nil, errors.Wrapf(ErrInvalidInput, "%s: line %d: expected integer, got %q", p.path, p.pos, f)
		}
		out[i] = v
	}

	return out, nil
}

// parse consumes the whole task file per the format in the external
// interfaces specification: a 6-line version/metric header (skipped),
// variables, mutex groups (skipped), initial state, goal, operators.
func (p *parser) parse() (*Task, error) {
	for i := 0; i < 6; i++ {
		if _, err := p.next(); err != nil {
			return nil, errors.Wrapf(err, "%s: header", p.path)
		}
	}

	numVars, err := p.nextInt()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: variable count", p.path)
	}

	variables, err := p.parseVariables(numVars)
	if err != nil {
		return nil, err
	}

	if err := p.skipMutexGroups(); err != nil {
		return nil, err
	}

	init, err := p.parseInitState(variables)
	if err != nil {
		return nil, err
	}

	goal, err := p.parseGoal(variables)
	if err != nil {
		return nil, err
	}

	operators, err := p.parseOperators(variables)
	if err != nil {
		return nil, err
	}

	return &Task{Variables: variables, Init: init, Goal: goal, Operators: operators}, nil
}

func (p *parser) parseVariables(numVars int) ([]Variable, error) {
	variables := make([]Variable, numVars)
	for vi := 0; vi < numVars; vi++ {
		if err := p.expect("begin_variable"); err != nil {
			return nil, err
		}
		name, err := p.next()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: variable %d name", p.path, vi)
		}
		// axiom layer, always -1 for the grounded tasks this planner consumes.
		if _, err := p.next(); err != nil {
			return nil, errors.Wrapf(err, "%s: variable %d axiom layer", p.path, vi)
		}
		numVals, err := p.nextInt()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: variable %d domain size", p.path, vi)
		}
		values := make([]string, numVals)
		for k := 0; k < numVals; k++ {
			values[k], err = p.next()
			if err != nil {
				return nil, errors.Wrapf(err, "%s: variable %d value %d", p.path, vi, k)
			}
		}
		if err := p.expect("end_variable"); err != nil {
			return nil, err
		}
		variables[vi] = Variable{Name: name, Values: values}
	}

	return variables, nil
}

func (p *parser) skipMutexGroups() error {
	numMutex, err := p.nextInt()
	if err != nil {
		return errors.Wrapf(err, "%s: mutex group count", p.path)
	}
	for i := 0; i < numMutex; i++ {
		for {
			line, err := p.next()
			if err != nil {
				return errors.Wrapf(err, "%s: mutex group %d", p.path, i)
			}
			if line == "end_mutex_group" {
				break
			}
		}
	}

	return nil
}

func (p *parser) parseInitState(variables []Variable) ([]int, error) {
	if err := p.expect("begin_state"); err != nil {
		return nil, err
	}
	init := make([]int, len(variables))
	for vi := range variables {
		val, err := p.nextInt()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: init state var %d", p.path, vi)
		}
		if val < 0 || val >= len(variables[vi].Values) {
			return nil, errors.Wrapf(ErrInvalidInput, "%s: init state var %d: value index %d out of range", p.path, vi, val)
		}
		init[vi] = val
	}
	if err := p.expect("end_state"); err != nil {
		return nil, err
	}

	return init, nil
}

func (p *parser) parseGoal(variables []Variable) (map[int]int, error) {
	if err := p.expect("begin_goal"); err != nil {
		return nil, err
	}
	numGoals, err := p.nextInt()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: goal count", p.path)
	}
	goal := make(map[int]int, numGoals)
	for i := 0; i < numGoals; i++ {
		pair, err := p.nextInts()
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, errors.Wrapf(ErrInvalidInput, "%s: goal %d: expected 2 fields, got %d", p.path, i, len(pair))
		}
		varIdx, valIdx := pair[0], pair[1]
		if varIdx < 0 || varIdx >= len(variables) {
			return nil, errors.Wrapf(ErrInvalidInput, "%s: goal %d: var index %d out of range", p.path, i, varIdx)
		}
		if valIdx < 0 || valIdx >= len(variables[varIdx].Values) {
			return nil, errors.Wrapf(ErrInvalidInput, "%s: goal %d: value index %d out of range", p.path, i, valIdx)
		}
		goal[varIdx] = valIdx
	}

	return goal, p.expect("end_goal")
}

func (p *parser) parseOperators(variables []Variable) ([]Operator, error) {
	numOps, err := p.nextInt()
	if err != nil {
		return nil, errors.Wrapf(err, "%s: operator count", p.path)
	}
	operators := make([]Operator, numOps)
	for oi := 0; oi < numOps; oi++ {
		op, err := p.parseOperator(variables, oi)
		if err != nil {
			return nil, err
		}
		operators[oi] = op
	}

	return operators, nil
}

func (p *parser) parseOperator(variables []Variable, oi int) (Operator, error) {
	if err := p.expect("begin_operator"); err != nil {
		return Operator{}, err
	}
	name, err := p.next()
	if err != nil {
		return Operator{}, errors.Wrapf(err, "%s: operator %d name", p.path, oi)
	}

	numPre, err := p.nextInt()
	if err != nil {
		return Operator{}, errors.Wrapf(err, "%s: operator %d precondition count", p.path, oi)
	}
	pre := make(map[int]int, numPre)
	for i := 0; i < numPre; i++ {
		pair, err := p.nextInts()
		if err != nil {
			return Operator{}, err
		}
		if len(pair) != 2 {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d precondition %d: expected 2 fields", p.path, oi, i)
		}
		varIdx, valIdx := pair[0], pair[1]
		if varIdx < 0 || varIdx >= len(variables) {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d precondition %d: var index out of range", p.path, oi, i)
		}
		if valIdx < 0 || valIdx >= len(variables[varIdx].Values) {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d precondition %d: value index out of range", p.path, oi, i)
		}
		pre[varIdx] = valIdx
	}

	numEff, err := p.nextInt()
	if err != nil {
		return Operator{}, errors.Wrapf(err, "%s: operator %d effect count", p.path, oi)
	}
	eff := make(map[int]int, numEff)
	for i := 0; i < numEff; i++ {
		fields, err := p.nextInts()
		if err != nil {
			return Operator{}, err
		}
		if len(fields) != 4 {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d effect %d: expected 4 fields", p.path, oi, i)
		}
		condCount, varIdx, from, to := fields[0], fields[1], fields[2], fields[3]
		if condCount != 0 {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d effect %d: conditional effects with cond-count > 0 are not supported", p.path, oi, i)
		}
		if varIdx < 0 || varIdx >= len(variables) {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d effect %d: var index out of range", p.path, oi, i)
		}
		if to < 0 || to >= len(variables[varIdx].Values) {
			return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d effect %d: to-value index out of range", p.path, oi, i)
		}
		if from != -1 {
			if from < 0 || from >= len(variables[varIdx].Values) {
				return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d effect %d: from-value index out of range", p.path, oi, i)
			}
			// A prevail condition: the "from" value is merged into the
			// precondition, per the flattening rule in the data model.
			pre[varIdx] = from
		}
		eff[varIdx] = to
	}

	cost, err := p.nextInt()
	if err != nil {
		return Operator{}, errors.Wrapf(err, "%s: operator %d cost", p.path, oi)
	}
	if cost < 0 {
		return Operator{}, errors.Wrapf(ErrInvalidInput, "%s: operator %d: negative cost %d", p.path, oi, cost)
	}

	if err := p.expect("end_operator"); err != nil {
		return Operator{}, err
	}

	return Operator{Name: name, Pre: pre, Eff: eff, Cost: cost}, nil
}
