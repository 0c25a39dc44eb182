// Package astar implements best-first search over the multi-valued FDR
// state space, guided by a heuristic.Heuristic evaluated on the
// propositional STRIPS projection of each state.
//
// The open set is a min-heap keyed by (f, insertion-counter), mirroring
// the teacher's dijkstra package's nodePQ but generalized to an f = g+h
// priority with a strictly increasing tie-break so expansion order among
// equal-f nodes is reproducible. Closed states are tracked by a g-map
// keyed on a dense byte packing of the state vector (see stateKey);
// plans are reconstructed via predecessor links on goal hit rather than
// by copying the plan prefix into every node.
package astar
