// Package lmcut computes the LM-cut admissible heuristic: an iterated
// h^max evaluation over a LMTransform-ed task, summing the minimum cost
// of each disjunctive action landmark the landmark package extracts,
// until h^max on the transformed task reaches zero.
//
// Unlike the reference implementation this iterates over a per-call
// working array of action costs rather than a deep clone of the
// transformed task;
// see the module's design notes for why that preserves admissibility.
package lmcut
