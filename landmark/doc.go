// Package landmark builds the pcf-induced justification graph over a
// LM-cut-transformed strips.Task and extracts the minimum-cost disjunctive
// action landmark it contains.
//
// PCF computes, for every action, the precondition fact responsible for
// its current h^max value. ExtractCut then partitions the fact space into
// a goal zone (backward-reachable from the transform's synthetic up fact
// along zero-cost edges) and an init zone (forward-reachable from the
// synthetic down fact avoiding the goal zone), and returns the set of
// actions bridging the two zones together with their minimum cost — the
// landmark package lmcut subtracts from action costs each iteration.
package landmark
