// Package hmax computes the admissible delete-relaxation max-cost
// heuristic over a compiled strips.Task.
//
// Eval runs a Dijkstra-like fixed-point computation: every fact starts at
// cost 0 (if in the queried state) or +Inf, and repeatedly settles the
// cheapest not-yet-settled fact, propagating its cost to any action whose
// last outstanding precondition it was. The loop terminates as soon as
// every goal fact is settled (or, for a dead end, as soon as no further
// fact can be settled); per the design notes this bounded termination
// keeps Eval usable both as a standalone heuristic and as the inner loop
// LM-cut iterates to a fixed point.
//
// Ties among facts of equal current cost are broken by picking the
// smallest fact id, which is what makes Eval's output reproducible across
// runs and is required by the pcf tie-break the landmark package builds
// on top of Eval's sigma output.
package hmax
