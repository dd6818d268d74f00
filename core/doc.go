// Package core defines the building blocks shared by every search
// algorithm in wayfind: the Problem contract, the search-tree Node, and
// the state-keyed Frontier priority queue.
//
// What:
//
//   - Problem[S, A]: the interface a caller implements to describe a
//     state space: initial state, legal actions, deterministic action
//     results, goal test, and additive step costs.
//   - Informed[S, A]: a Problem that additionally supplies a heuristic
//     estimate of remaining cost (required by A*, greedy search, RBFS
//     unless the caller overrides the heuristic per invocation).
//   - Base[S, A]: embeddable defaults (goal test by equality or goal-set
//     membership, unit step costs) so a concrete problem only has to
//     implement Actions and Result.
//   - Node[S, A]: a state plus its discovery path (parent link, action,
//     cumulative cost g, depth) and a cached evaluation value F.
//   - Frontier[S, A]: a min-priority queue holding at most one entry per
//     state, with O(1) membership and the replace-on-improve operation
//     graph search depends on for optimality.
//
// Why:
//   - Separate the problem description from the algorithms once, reuse it
//     across uniform-cost, greedy, A*, depth-limited/iterative-deepening,
//     and recursive best-first search.
//   - Make duplicate-state handling explicit: membership is keyed by
//     state, never by node identity, and a cheaper path to a queued state
//     replaces the stale entry instead of being silently dropped.
//
// Key invariants:
//
//   - States are opaque, comparable values; they are never mutated by the
//     library (nodes hold them by value).
//   - A Node's Cost equals its parent's Cost plus one StepCost call; its
//     Depth equals parent depth + 1 (0 for the root).
//   - The Frontier contains at most one entry per state; Replace must only
//     be used with a strictly better evaluation value.
//
// Complexity:
//
//   - Frontier Push/Pop/Replace: O(log n); Contains/Lookup: O(1).
//   - Expand: O(b) child constructions for branching factor b.
//
// Errors:
//
//	ErrEmptyFrontier   - Pop on an empty frontier.
//	ErrDuplicateState  - Push for a state already queued (use Replace).
//	ErrStateNotFound   - Replace for a state that is not queued.
package core
