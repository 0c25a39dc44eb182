// Package strips lowers a finite-domain (fdr.Task) planning task into
// propositional STRIPS form: an interned fact space F, actions with
// precondition and add-effect fact sets and a non-negative cost, an
// initial fact set, and a goal fact set.
//
// Delete effects are not modeled: only add-structure is retained, which
// is all the delete-relaxation heuristics in packages hmax, landmark and
// lmcut require. A Task is immutable once built by Compile; the only
// sanctioned derivation is LMTransform, which returns a brand new Task
// for a single heuristic evaluation and never mutates its receiver.
//
// Fact sets are represented as dense bitsets (FactSet) rather than
// Go maps or slices of ids, per the design notes' guidance that this is
// the single largest performance lever available to the heuristics.
package strips
