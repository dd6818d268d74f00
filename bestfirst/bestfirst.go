// This file implements the generic best-first graph-search engine and
// its three specializations: UniformCost, Greedy, and AStar.
package bestfirst

import (
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Search runs best-first graph search on p, ordering the frontier by the
// evaluation function f and always expanding the queued node with the
// smallest f value.
//
// Returns the goal node on success, ErrNoSolution when the frontier
// empties without reaching a goal, ErrBudgetExhausted when the
// WithMaxExpansions cap is hit, the context's error on cancellation, or
// any error returned by the OnVisit hook.
//
// The goal test runs when a node is popped, not when it is generated;
// popping late is what lets a cheaper path to the same state win first.
func Search[S comparable, A any](p core.Problem[S, A], f core.Eval[S, A], opts ...Option[S, A]) (*core.Node[S, A], error) {
	// 1) Build options and catch any invalid ones immediately.
	cfg := DefaultOptions[S, A]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate inputs.
	if p == nil {
		return nil, ErrNilProblem
	}
	if f == nil {
		return nil, ErrNilEval
	}

	// 3) Fresh frontier and explored set, owned by this invocation only.
	r := &runner[S, A]{
		problem:  p,
		eval:     f,
		opts:     cfg,
		frontier: core.NewFrontier[S, A](),
		explored: make(map[S]struct{}),
	}

	return r.run()
}

// UniformCost searches p by cumulative path cost: f(n) = g(n).
// Optimal and complete whenever step costs are non-negative.
func UniformCost[S comparable, A any](p core.Problem[S, A], opts ...Option[S, A]) (*core.Node[S, A], error) {
	return Search(p, func(n *core.Node[S, A]) float64 { return n.Cost }, opts...)
}

// Greedy searches p by heuristic estimate alone: f(n) = h(n).
// Complete on finite spaces but not optimal. The heuristic comes from
// WithHeuristic, or from p implementing core.Informed.
func Greedy[S comparable, A any](p core.Problem[S, A], opts ...Option[S, A]) (*core.Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	h, err := resolveHeuristic(p, opts)
	if err != nil {
		return nil, err
	}

	return Search(p, core.Eval[S, A](h), opts...)
}

// AStar searches p by f(n) = g(n) + h(n). Optimal and complete given an
// admissible heuristic; with a consistent heuristic no state is
// re-expanded at a strictly lower cost than its first expansion. The
// heuristic comes from WithHeuristic, or from p implementing
// core.Informed.
func AStar[S comparable, A any](p core.Problem[S, A], opts ...Option[S, A]) (*core.Node[S, A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	h, err := resolveHeuristic(p, opts)
	if err != nil {
		return nil, err
	}

	return Search(p, func(n *core.Node[S, A]) float64 { return n.Cost + h(n) }, opts...)
}

// resolveHeuristic picks the heuristic for an informed search: the
// WithHeuristic override wins, then the problem's own core.Informed
// estimate; with neither, ErrMissingHeuristic.
func resolveHeuristic[S comparable, A any](p core.Problem[S, A], opts []Option[S, A]) (core.Heuristic[S, A], error) {
	cfg := DefaultOptions[S, A]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Heuristic != nil {
		return cfg.Heuristic, nil
	}
	if ip, ok := p.(core.Informed[S, A]); ok {
		return func(n *core.Node[S, A]) float64 { return ip.Estimate(n.State) }, nil
	}

	return nil, ErrMissingHeuristic
}

// runner holds the mutable state for a single best-first execution.
type runner[S comparable, A any] struct {
	problem  core.Problem[S, A]
	eval     core.Eval[S, A]
	opts     Options[S, A]
	frontier *core.Frontier[S, A]
	explored map[S]struct{} // states already expanded; grows monotonically
	expanded int            // expansion count against MaxExpansions
}

// run seeds the frontier with the root and drives the main loop.
func (r *runner[S, A]) run() (*core.Node[S, A], error) {
	// 1) Root node: evaluate once, cache on the node, queue it.
	root := core.Root[S, A](r.problem.Initial())
	root.F = r.eval(root)
	if err := r.frontier.Push(root, root.F); err != nil {
		return nil, err
	}

	// 2) Main loop: pop the cheapest node, goal-test, expand.
	var node *core.Node[S, A]
	var err error
	for r.frontier.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		if node, err = r.frontier.Pop(); err != nil {
			return nil, err
		}
		if r.opts.OnVisit != nil {
			if err = r.opts.OnVisit(node); err != nil {
				return nil, fmt.Errorf("bestfirst: OnVisit hook at depth %d: %w", node.Depth, err)
			}
		}

		// goal test on pop, per the graph-search contract
		if r.problem.IsGoal(node.State) {
			return node, nil
		}

		// the state's cheapest entry has been expanded; remember it
		r.explored[node.State] = struct{}{}

		if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
			return nil, ErrBudgetExhausted
		}
		r.expanded++

		r.relax(node)
	}

	// 3) Frontier exhausted: no reachable goal exists.
	return nil, ErrNoSolution
}

// relax generates node's children and routes each one: fresh states join
// the frontier, queued states are replaced iff the new path evaluates
// strictly better, and everything else is discarded because a known
// equal-or-cheaper path already exists.
func (r *runner[S, A]) relax(node *core.Node[S, A]) {
	var seen bool
	for _, child := range core.Expand(r.problem, node) {
		child.F = r.eval(child)
		_, seen = r.explored[child.State]

		switch {
		case !seen && !r.frontier.Contains(child.State):
			// first path to this state: queue it
			_ = r.frontier.Push(child, child.F)
			if r.opts.OnExpand != nil {
				r.opts.OnExpand(node, child)
			}
		case r.frontier.Contains(child.State):
			// the state is queued but not yet expanded: replace on improve
			if _, stored, ok := r.frontier.Lookup(child.State); ok && child.F < stored {
				_ = r.frontier.Replace(child.State, child, child.F)
				if r.opts.OnExpand != nil {
					r.opts.OnExpand(node, child)
				}
			}
		default:
			// already expanded: an equal-or-cheaper path exists; discard
		}
	}
}
