// This file declares the Problem and Informed contracts, the Heuristic
// and Eval function types, and the embeddable Base defaults.
package core

// Problem describes a state space to search. S is the opaque state type
// (must be comparable so states can key maps and be tested for equality);
// A is the opaque action type.
//
// All methods must be pure functions of their arguments: Result is
// deterministic, Actions must not mutate the given state, and StepCost
// must not keep side effects. The framework never mutates states.
type Problem[S comparable, A any] interface {
	// Initial returns the state the search starts from.
	Initial() S

	// Actions returns the legal actions in state s. The slice must be
	// finite; it may be empty when s is a dead end.
	Actions(s S) []A

	// Result returns the successor state reached by applying action a in
	// state s. a is guaranteed to come from Actions(s).
	Result(s S, a A) S

	// IsGoal reports whether s satisfies the goal condition.
	IsGoal(s S) bool

	// StepCost returns the cost of a path that reaches `to` from `from`
	// via action a, given accumulated cost c up to `from`. Unit-cost
	// problems return c + 1 (see Base for that default).
	StepCost(c float64, from S, via A, to S) float64
}

// Informed is a Problem that also supplies a heuristic estimate of the
// remaining cost from a state to the nearest goal. A*, greedy best-first
// search and RBFS consult it when no per-invocation heuristic override is
// given.
//
// Admissibility (never overestimating the true remaining cost) is a
// caller obligation: the framework does not validate it, but A* and RBFS
// optimality guarantees hold only for admissible estimates.
type Informed[S comparable, A any] interface {
	Problem[S, A]

	// Estimate returns h(s), the estimated cost from s to a goal.
	Estimate(s S) float64
}

// Heuristic estimates remaining cost from a node to the nearest goal.
// Per-invocation overrides (WithHeuristic options) use this type.
type Heuristic[S comparable, A any] func(n *Node[S, A]) float64

// Eval is an evaluation function f ordering the frontier; best-first
// search always pops the node with the smallest f value.
type Eval[S comparable, A any] func(n *Node[S, A]) float64

// Base carries the common Problem defaults: a start state, an optional
// set of goal states, goal test by membership, and unit step costs.
// Embed it in a concrete problem and implement only Actions and Result:
//
//	type eightPuzzle struct {
//	    core.Base[board, move]
//	}
//
// The type parameter A appears only in the StepCost signature; it must
// match the embedding problem's action type.
type Base[S comparable, A any] struct {
	// Start is the initial state.
	Start S

	// Goals holds the goal states; IsGoal tests membership. A single-goal
	// problem lists exactly one state. Problems with a non-enumerable goal
	// condition override IsGoal instead.
	Goals []S
}

// Initial returns the configured start state.
func (b Base[S, A]) Initial() S { return b.Start }

// IsGoal reports whether s equals one of the configured goal states.
func (b Base[S, A]) IsGoal(s S) bool {
	for _, g := range b.Goals {
		if s == g {
			return true
		}
	}

	return false
}

// StepCost implements the default unit-cost policy: every action costs 1.
func (b Base[S, A]) StepCost(c float64, _ S, _ A, _ S) float64 { return c + 1 }
