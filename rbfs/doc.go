// Package rbfs implements recursive best-first search (RBFS): informed
// search with A*-grade solution quality in linear space.
//
// What:
//
//   - Search(p, opts...): explore the best successor recursively while a
//     sibling's f-value (the "alternative") bounds how far the descent
//     may go. When the best subtree's cheapest f exceeds the bound, the
//     search backs out, storing that backed-up f on the subtree's root
//     so it competes honestly on the next sort. Successor f-values are
//     floored at the parent's (f never decreases along a path), which is
//     what lets a purely local f-limit comparison substitute for a
//     global explored set.
//
// Why:
//   - Best-first graph search keeps every generated state in memory.
//     RBFS keeps only the current path and each frame's successor list,
//     O(branching factor × depth), and, with the same admissible
//     heuristic, returns a solution of the same cost as A*, generally
//     after more re-expansions since only backed-up f-values persist.
//
// Options:
//
//   - WithContext(ctx)   cancellation via context.Context.
//   - WithHeuristic(h)   per-invocation heuristic override (otherwise
//     the problem must implement core.Informed).
//   - WithOnVisit(fn)    pre-order hook on every node entered, including
//     re-expansions; error aborts.
//
// The heuristic is memoized per state for the lifetime of one call.
//
// Complexity:
//
//   - Time:  potentially exponential re-expansion in the worst case.
//   - Space: O(branching factor × depth).
//
// Errors:
//
//	ErrNilProblem       - p is nil.
//	ErrMissingHeuristic - no heuristic available.
//	ErrNoSolution       - the space was exhausted within all usable
//	                      f-limits; no goal is reachable.
package rbfs
