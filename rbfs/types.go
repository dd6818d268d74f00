// Package rbfs defines options and error sentinels for recursive
// best-first search.
package rbfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for RBFS execution.
var (
	// ErrNilProblem is returned when a nil problem is passed.
	ErrNilProblem = errors.New("rbfs: problem is nil")

	// ErrMissingHeuristic is returned when no WithHeuristic override is
	// supplied and the problem does not implement core.Informed.
	ErrMissingHeuristic = errors.New("rbfs: no heuristic available")

	// ErrNoSolution is returned when the search space is exhausted within
	// all usable f-limits without reaching a goal.
	ErrNoSolution = errors.New("rbfs: no solution found")
)

// Option configures RBFS via functional arguments.
type Option[S comparable, A any] func(*Options[S, A])

// Options holds parameters and callbacks customizing one search run.
type Options[S comparable, A any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Heuristic overrides the problem's own estimate for this invocation.
	Heuristic core.Heuristic[S, A]

	// OnVisit is invoked pre-order on every node entered, including
	// nodes re-expanded after backtracking. Returning an error aborts
	// the search with that error.
	OnVisit func(n *core.Node[S, A]) error
}

// DefaultOptions returns Options with sane defaults: background context,
// no heuristic override, no hook.
func DefaultOptions[S comparable, A any]() Options[S, A] {
	return Options[S, A]{
		Ctx:       context.Background(),
		Heuristic: nil,
		OnVisit:   nil,
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

// WithHeuristic overrides the heuristic for this invocation, taking
// precedence over core.Informed.
func WithHeuristic[S comparable, A any](h core.Heuristic[S, A]) Option[S, A] {
	return func(o *Options[S, A]) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnVisit registers a pre-order callback; returning an error from it
// stops the search.
func WithOnVisit[S comparable, A any](fn func(n *core.Node[S, A]) error) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
