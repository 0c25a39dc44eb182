// Package idreg implements a bidirectional dense-integer interner.
//
// An IdRegistry assigns each distinct value the next free integer id on
// first sight and remembers the mapping for the registry's lifetime:
// repeated interning of an equal value always yields the same id. Ids are
// dense in [0, n) and suitable for use as slice indices, which is how the
// strips package turns (variable, value) pairs into fact ids.
//
// IdRegistry is not safe for concurrent use; callers needing concurrent
// interning must add their own locking. The planner only ever interns
// during the single-threaded compilation phase (see package strips), so
// none is provided here.
package idreg
