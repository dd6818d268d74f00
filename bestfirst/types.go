// Package bestfirst defines options and error sentinels for best-first
// graph search (uniform-cost, greedy, A*).
package bestfirst

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for best-first search execution.
var (
	// ErrNilProblem is returned when a nil problem is passed.
	ErrNilProblem = errors.New("bestfirst: problem is nil")

	// ErrNilEval is returned when Search is given a nil evaluation function.
	ErrNilEval = errors.New("bestfirst: evaluation function is nil")

	// ErrMissingHeuristic is returned by Greedy and AStar when no
	// WithHeuristic override is supplied and the problem does not
	// implement core.Informed.
	ErrMissingHeuristic = errors.New("bestfirst: no heuristic available")

	// ErrNoSolution is returned when the frontier empties without a goal:
	// no path from the initial state reaches one.
	ErrNoSolution = errors.New("bestfirst: no solution found")

	// ErrBudgetExhausted is returned when the WithMaxExpansions cap is
	// reached before a goal is found.
	ErrBudgetExhausted = errors.New("bestfirst: expansion budget exhausted")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bestfirst: invalid option supplied")
)

// Option configures best-first search via functional arguments.
// Invalid values (e.g. a negative expansion budget) are recorded and
// surfaced as ErrOptionViolation when the search is invoked.
type Option[S comparable, A any] func(*Options[S, A])

// Options holds parameters and callbacks customizing one search run.
type Options[S comparable, A any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Heuristic overrides the problem's own estimate for Greedy/AStar.
	// Ignored by UniformCost and by Search (which takes f directly).
	Heuristic core.Heuristic[S, A]

	// OnVisit is called for every node popped from the frontier, before
	// its goal test. Returning an error aborts the search with that error.
	OnVisit func(n *core.Node[S, A]) error

	// OnExpand is called whenever a child enters the frontier, either as
	// a fresh entry or replacing a stale one.
	OnExpand func(parent, child *core.Node[S, A])

	// MaxExpansions caps how many nodes may be expanded; 0 disables the
	// cap. Hitting the cap surfaces ErrBudgetExhausted.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no heuristic override, no hooks, no expansion cap.
func DefaultOptions[S comparable, A any]() Options[S, A] {
	return Options[S, A]{
		Ctx:           context.Background(),
		Heuristic:     nil,
		OnVisit:       nil,
		OnExpand:      nil,
		MaxExpansions: 0,
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[S comparable, A any](ctx context.Context) Option[S, A] {
	return func(o *Options[S, A]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic overrides the heuristic used by Greedy and AStar for this
// invocation, taking precedence over core.Informed.
func WithHeuristic[S comparable, A any](h core.Heuristic[S, A]) Option[S, A] {
	return func(o *Options[S, A]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnVisit registers a callback on every popped node; returning an
// error from it stops the search.
func WithOnVisit[S comparable, A any](fn func(n *core.Node[S, A]) error) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExpand registers a callback for every child entering the frontier.
func WithOnExpand[S comparable, A any](fn func(parent, child *core.Node[S, A])) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxExpansions caps the number of node expansions.
//
//	n > 0:  expand at most n nodes, then fail with ErrBudgetExhausted
//	n == 0: explicit no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable, A any](n int) Option[S, A] {
	return func(o *Options[S, A]) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no cap"
			o.MaxExpansions = 0
		default:
			o.MaxExpansions = n
		}
	}
}
