// Package iddfs implements depth-limited search and its iterative-
// deepening driver over a core.Problem.
//
// What:
//
//   - DepthLimited(p, limit, opts...): recursive depth-first exploration
//     bounded by limit remaining levels. Exactly three outcomes: a goal
//     node; ErrCutoff, meaning the bound truncated at least one branch
//     and more depth might help; or ErrNoSolution, meaning the subtree
//     was fully explored with no goal. Cutoff and failure are distinct
//     sentinels and must never be conflated: one says "unknown, try
//     deeper", the other "definitively nothing here".
//   - IterativeDeepening(p, opts...): calls DepthLimited with limit
//     0, 1, 2, … and returns the first non-cutoff result. Complete
//     whenever the branching factor and solution depth are finite, and
//     depth-optimal under equal step costs. Repeated re-expansion of
//     shallow nodes is accepted overhead (a factor near b/(b−1) for
//     branching factor b) in exchange for O(depth) space and no
//     heuristic requirement.
//
// Why:
//   - Best-first graph search holds every generated state in memory;
//     bounded DFS holds one path. Iterative deepening recovers
//     completeness and minimum depth without giving that up.
//
// Options:
//
//   - WithContext(ctx)     cancellation via context.Context.
//   - WithOnVisit(fn)      pre-order hook on every node; error aborts.
//   - WithOnExplored(fn)   called once per distinct state marked during
//     the run; a diagnostic window, never a pruning rule (states marked
//     here are still revisited through other branches).
//   - WithMaxDepth(d)      caps the IterativeDeepening ladder; 0 means
//     unbounded.
//
// Complexity:
//
//   - Time:  O(b^limit) worst case per DepthLimited call.
//   - Space: O(limit) recursion frames, each holding a successor slice,
//     so O(b × limit) working memory.
//
// Errors:
//
//	ErrNilProblem      - p is nil.
//	ErrBadLimit        - negative depth limit.
//	ErrCutoff          - bound reached on some branch; retry deeper.
//	ErrNoSolution      - subtree fully explored with no goal.
//	ErrOptionViolation - an invalid option value was supplied.
package iddfs
