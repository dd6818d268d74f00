// Package bestfirst implements generic best-first graph search over a
// core.Problem, specialized into uniform-cost search, greedy best-first
// search, and A*.
//
// What:
//
//   - Search(p, f, opts...): the generic engine. Repeatedly pop the
//     frontier node with the smallest f, goal-test it, move its state to
//     the explored set, and expand it. Unseen children enter the
//     frontier; children whose state is already queued replace the stale
//     entry iff their f is strictly better; everything else is discarded
//     because a known equal-or-cheaper path already exists.
//   - UniformCost(p, opts...): f(n) = g(n). Optimal and complete for
//     non-negative step costs.
//   - Greedy(p, opts...): f(n) = h(n). Complete on finite spaces, not
//     optimal.
//   - AStar(p, opts...): f(n) = g(n) + h(n). Optimal and complete given
//     an admissible heuristic; with a consistent heuristic no state is
//     re-expanded at a strictly lower cost than its first expansion.
//
// Why:
//   - One engine, one correctness argument: the three classic algorithms
//     differ only in the evaluation function they hand to Search.
//   - Replace-on-improve is the piece naive implementations miss; without
//     it a cheaper path to an already-queued state is silently ignored
//     and uniform-cost/A* optimality breaks.
//
// Options:
//
//   - WithContext(ctx)        cancellation via context.Context.
//   - WithHeuristic(h)        per-invocation heuristic override for
//     Greedy/AStar (otherwise the problem must implement core.Informed).
//   - WithOnVisit(fn)         hook on every popped node; error aborts.
//   - WithOnExpand(fn)        hook on every child entering the frontier.
//   - WithMaxExpansions(n)    expansion budget; 0 disables the cap.
//
// Hooks observe; they never influence ordering, termination, or results.
//
// Complexity:
//
//   - Time:  O(n log n) frontier operations for n generated nodes, plus
//     the caller's Actions/Result/heuristic work.
//   - Space: O(generated-but-unexpanded nodes) in the frontier plus
//     O(expanded states) in the explored set, memory-unbounded in the
//     worst case; see the rbfs package for the linear-space alternative.
//
// Errors:
//
//	ErrNilProblem       - p is nil.
//	ErrNilEval          - Search given a nil evaluation function.
//	ErrMissingHeuristic - Greedy/AStar with no heuristic available.
//	ErrNoSolution       - frontier exhausted; no goal is reachable.
//	ErrBudgetExhausted  - WithMaxExpansions cap hit before a goal.
//	ErrOptionViolation  - an invalid option value was supplied.
package bestfirst
