// This file implements recursive best-first search: descend into the
// best successor under an f-limit borrowed from the best alternative,
// backing exhausted subtrees' f-values up onto their roots.
package rbfs

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/wayfind/core"
)

// Search runs recursive best-first search on p.
//
// Returns the goal node on success, ErrNoSolution when the space is
// exhausted without reaching a goal, the context's error on
// cancellation, or any error from the OnVisit hook. With the same
// admissible heuristic, the returned solution costs the same as A*'s.
func Search[S comparable, A any](p core.Problem[S, A], opts ...Option[S, A]) (*core.Node[S, A], error) {
	// 1) Build options.
	cfg := DefaultOptions[S, A]()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs and resolve the heuristic.
	if p == nil {
		return nil, ErrNilProblem
	}
	h := cfg.Heuristic
	if h == nil {
		ip, ok := p.(core.Informed[S, A])
		if !ok {
			return nil, ErrMissingHeuristic
		}
		h = func(n *core.Node[S, A]) float64 { return ip.Estimate(n.State) }
	}

	// 3) Fresh walker; the heuristic memo lives for this call only.
	w := &walker[S, A]{
		problem: p,
		opts:    cfg,
		h:       h,
		memo:    make(map[S]float64),
	}

	// 4) Root carries a plain heuristic estimate; the top-level f-limit
	//    is unbounded.
	root := core.Root[S, A](p.Initial())
	root.F = w.estimate(root)

	goal, _, err := w.search(root, math.Inf(1))
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrNoSolution
	}

	return goal, nil
}

// walker holds the mutable state for a single RBFS execution.
type walker[S comparable, A any] struct {
	problem core.Problem[S, A]
	opts    Options[S, A]
	h       core.Heuristic[S, A]
	memo    map[S]float64 // per-state heuristic cache
}

// estimate returns h(n), memoized by state.
func (w *walker[S, A]) estimate(n *core.Node[S, A]) float64 {
	if v, ok := w.memo[n.State]; ok {
		return v
	}
	v := w.h(n)
	w.memo[n.State] = v

	return v
}

// search explores n while its cheapest descendant stays within fLimit.
// On success it returns the goal node; otherwise it returns nil together
// with the backed-up f-value the caller must store on its entry for n.
func (w *walker[S, A]) search(n *core.Node[S, A], fLimit float64) (*core.Node[S, A], float64, error) {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return nil, 0, w.opts.Ctx.Err()
	default:
	}

	// 2. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return nil, 0, fmt.Errorf("rbfs: OnVisit hook at depth %d: %w", n.Depth, err)
		}
	}

	// 3. Goal test. The backed-up value is immaterial on success.
	if w.problem.IsGoal(n.State) {
		return n, n.F, nil
	}

	// 4. Expand; a dead end backs up +Inf so the caller writes this
	//    subtree off permanently.
	succ := core.Expand(w.problem, n)
	if len(succ) == 0 {
		return nil, math.Inf(1), nil
	}

	// 5. Floor each successor's f at the parent's: the backed-up cost
	//    never decreases along a path.
	for _, s := range succ {
		s.F = math.Max(s.Cost+w.estimate(s), n.F)
	}

	// 6. Repeatedly descend into the current best successor. The sort is
	//    stable so equal f-values keep expansion order, mirroring the
	//    frontier's insertion-order tie-break.
	for {
		sort.SliceStable(succ, func(i, j int) bool { return succ[i].F < succ[j].F })
		best := succ[0]

		// Even the best successor overruns the limit: fail upward and
		// let the caller re-rank this subtree under best.F. An infinite
		// best.F means every branch below n is exhausted, so fail upward
		// regardless of the limit; that is what terminates an
		// unsolvable search at the root.
		if best.F > fLimit || math.IsInf(best.F, 1) {
			return nil, best.F, nil
		}

		alternative := math.Inf(1)
		if len(succ) > 1 {
			alternative = succ[1].F
		}

		goal, backed, err := w.search(best, math.Min(fLimit, alternative))
		if err != nil {
			return nil, 0, err
		}
		best.F = backed
		if goal != nil {
			return goal, best.F, nil
		}
	}
}
