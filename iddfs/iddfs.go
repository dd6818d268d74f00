// This file implements DepthLimited search with its distinct cutoff
// outcome, and the IterativeDeepening driver built on it.
package iddfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// DepthLimited runs depth-first search on p bounded by limit remaining
// levels below the root.
//
// Returns the goal node on success; ErrCutoff when the bound truncated
// at least one branch (a deeper retry might succeed); ErrNoSolution when
// the subtree was fully explored within the bound and holds no goal; the
// context's error on cancellation; or any error from the OnVisit hook.
//
// A limit of 0 goal-tests only the root: it returns the root node if the
// initial state is already a goal, and ErrCutoff otherwise (the root's
// children were never examined, so nothing is known about them).
func DepthLimited[S comparable, A any](p core.Problem[S, A], limit int, opts ...Option[S, A]) (*core.Node[S, A], error) {
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
	if limit < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLimit, limit)
	}

	// 3) Fresh walker per invocation; the explored set lives and dies
	//    with this call.
	w := &walker[S, A]{
		problem:  p,
		opts:     cfg,
		explored: make(map[S]struct{}),
	}

	return w.descend(core.Root[S, A](p.Initial()), limit)
}

// IterativeDeepening runs DepthLimited with limit 0, 1, 2, … and returns
// the first result that is not ErrCutoff. With WithMaxDepth(d) the
// ladder stops after limit d, returning ErrCutoff if the search was
// still being truncated there.
//
// Complete whenever the branching factor and solution depth are finite;
// returns a minimum-depth solution when all step costs are equal.
func IterativeDeepening[S comparable, A any](p core.Problem[S, A], opts ...Option[S, A]) (*core.Node[S, A], error) {
	// Option and input validation happens here too, so a bad call fails
	// before the first DepthLimited round.
	cfg := DefaultOptions[S, A]()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if p == nil {
		return nil, ErrNilProblem
	}

	for depth := 0; ; depth++ {
		if cfg.MaxDepth > 0 && depth > cfg.MaxDepth {
			return nil, ErrCutoff
		}
		n, err := DepthLimited(p, depth, opts...)
		if !errors.Is(err, ErrCutoff) {
			return n, err
		}
	}
}

// walker holds the mutable state for a single depth-limited execution.
type walker[S comparable, A any] struct {
	problem  core.Problem[S, A]
	opts     Options[S, A]
	explored map[S]struct{} // states marked during this run; observer-only
}

// descend explores n with `limit` levels remaining below it.
func (w *walker[S, A]) descend(n *core.Node[S, A], limit int) (*core.Node[S, A], error) {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return nil, w.opts.Ctx.Err()
	default:
	}

	// 2. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return nil, fmt.Errorf("iddfs: OnVisit hook at depth %d: %w", n.Depth, err)
		}
	}

	// 3. Goal test before the bound check: a goal on the bound counts.
	if w.problem.IsGoal(n.State) {
		return n, nil
	}

	// 4. Mark the state for the run-wide diagnostic set. The set never
	//    prunes: revisiting a state through another branch stays legal,
	//    otherwise a goal reachable only that way would be missed.
	w.mark(n.State)

	// 5. Bound reached: the subtree below n is unknown territory.
	if limit == 0 {
		return nil, ErrCutoff
	}

	// 6. Recurse into each child. A found goal propagates immediately;
	//    a cutoff anywhere is remembered and reported only if no sibling
	//    succeeds.
	cutoff := false
	for _, child := range core.Expand(w.problem, n) {
		res, err := w.descend(child, limit-1)
		switch {
		case errors.Is(err, ErrCutoff):
			cutoff = true
		case errors.Is(err, ErrNoSolution):
			// child subtree exhausted; keep scanning siblings
		case err != nil:
			// cancellation or hook error: abort outright
			return nil, err
		default:
			return res, nil
		}
	}

	// 7. No goal below n: cutoff if any branch was truncated, else the
	//    subtree is definitively empty.
	if cutoff {
		return nil, ErrCutoff
	}

	return nil, ErrNoSolution
}

// mark records s in the run-wide explored set and fires OnExplored on
// first sight.
func (w *walker[S, A]) mark(s S) {
	if _, seen := w.explored[s]; seen {
		return
	}
	w.explored[s] = struct{}{}
	if w.opts.OnExplored != nil {
		w.opts.OnExplored(s)
	}
}
