// Package iddfs defines options and error sentinels for depth-limited
// and iterative-deepening search.
package iddfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/wayfind/core"
)

// Sentinel errors for depth-limited and iterative-deepening search.
var (
	// ErrNilProblem is returned when a nil problem is passed.
	ErrNilProblem = errors.New("iddfs: problem is nil")

	// ErrBadLimit is returned when a negative depth limit is passed.
	ErrBadLimit = errors.New("iddfs: depth limit cannot be negative")

	// ErrCutoff reports that the depth bound truncated at least one
	// branch: the subtree was NOT fully explored, and a deeper limit
	// might still find a solution.
	ErrCutoff = errors.New("iddfs: depth bound reached")

	// ErrNoSolution reports that the subtree was fully explored within
	// the bound and contains no goal. Unlike ErrCutoff, retrying deeper
	// cannot help.
	ErrNoSolution = errors.New("iddfs: no solution found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iddfs: invalid option supplied")
)

// Option configures depth-limited search via functional arguments.
type Option[S comparable, A any] func(*Options[S, A])

// Options holds parameters and callbacks customizing one search run.
type Options[S comparable, A any] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is invoked pre-order on every node entered, including ones
	// revisited through different branches. Returning an error aborts
	// the search with that error.
	OnVisit func(n *core.Node[S, A]) error

	// OnExplored is invoked exactly once per distinct state marked during
	// the run. It is a diagnostic observer: the marked set never prunes
	// the traversal (see package doc).
	OnExplored func(s S)

	// MaxDepth caps the IterativeDeepening limit ladder; 0 means no cap.
	// DepthLimited ignores it (the caller passes the limit directly).
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background context,
// no hooks, unbounded deepening.
func DefaultOptions[S comparable, A any]() Options[S, A] {
	return Options[S, A]{
		Ctx:        context.Background(),
		OnVisit:    nil,
		OnExplored: nil,
		MaxDepth:   0,
		err:        nil,
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

// WithOnVisit registers a pre-order callback; returning an error from it
// stops the search.
func WithOnVisit[S comparable, A any](fn func(n *core.Node[S, A]) error) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExplored registers a callback invoked once per distinct state
// marked explored during the run.
func WithOnExplored[S comparable, A any](fn func(s S)) Option[S, A] {
	return func(o *Options[S, A]) {
		if fn != nil {
			o.OnExplored = fn
		}
	}
}

// WithMaxDepth caps the iterative-deepening limit ladder.
//
//	d > 0:  try limits 0..d, then give up with ErrCutoff
//	d == 0: explicit no cap
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth[S comparable, A any](d int) Option[S, A] {
	return func(o *Options[S, A]) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no cap"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}
