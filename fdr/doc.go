// Package fdr loads and represents finite-domain representation (FDR)
// planning tasks: an ordered list of multi-valued variables, a total
// initial state, a partial goal assignment, and a set of operators with
// partial-assignment preconditions and effects.
//
// Load reads the de facto SAS+ task-file format (version/metric
// header, variable blocks, mutex groups, initial state, goal, operator
// blocks) described in the project's external-interfaces specification.
// Parsing is a single deterministic left-to-right pass; any malformed
// section, out-of-range index, or count mismatch is reported as a
// wrapped ErrInvalidInput carrying the offending section and line number.
//
// Errors (sentinel):
//
//	ErrInvalidInput - malformed or inconsistent task file.
//
// Conditional effects of the form "(cond-count var from to)" are
// flattened at load time: a cond-count of zero with from != -1 folds the
// "from" value into the operator's precondition set, exactly as a
// prevail condition would. Mutex groups are recognized (to keep the line
// cursor synchronized) but their content is discarded; the planner does
// not exploit mutexes (see Non-goals).
package fdr
