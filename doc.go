// Package fdplan finds a cost-optimal operator sequence for a
// finite-domain representation (FDR) classical planning task.
//
// Given a task file in the SAS+ multi-valued planning format — a set
// of finite-domain variables, an initial state, a goal partial
// assignment, and a set of cost-weighted operators — fdplan compiles
// the task to STRIPS (propositional facts and actions), evaluates an
// admissible delete-relaxation heuristic (h^max or LM-cut) over it,
// and runs A* best-first search to return a minimum-cost plan or
// report the instance unsolvable.
//
// Subpackages:
//
//	fdr/         — SAS+ loader and finite-domain task/operator types
//	strips/      — FDR-to-STRIPS compilation, LM-cut's down/up transform
//	hmax/        — h^max: Dijkstra-like delete-relaxation fixed point
//	landmark/    — precondition choice function and justification cut
//	lmcut/       — LM-cut: iterated h^max over successive landmark cuts
//	heuristic/   — the shared Heuristic interface hmax and lmcut satisfy
//	astar/       — g+h best-first search over FDR states
//	internal/cli — the fdplan command-line driver
//
// See cmd/fdplan for the command-line entry point.
package fdplan
