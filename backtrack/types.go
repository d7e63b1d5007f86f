package backtrack

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for backtracking execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to a driver.
	ErrNilProblem = errors.New("backtrack: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("backtrack: invalid option supplied")
)

// Mode selects how many solutions a driver collects.
type Mode int

const (
	// FindFirst stops at the first solution; its discovery propagates up
	// through every ancestor frame, terminating sibling exploration.
	FindFirst Mode = iota

	// FindAll records every solution as an independent path copy and keeps
	// exploring siblings. Solutions appear in depth-first order, choices in
	// the order Choices yields them.
	FindAll
)

// Problem is the callback contract a decision problem implements.
// The engine never mutates a state in place: Apply must return a successor
// value and leave its input intact.
type Problem[S, C any] interface {
	// Choices returns the ordered candidate choices from s.
	// The order is part of the contract: it fixes enumeration order.
	Choices(s S) []C

	// Valid reports whether taking c from s is worth exploring.
	// It is consulted before Apply, enabling whole-subtree pruning.
	Valid(s S, c C) bool

	// Apply returns the successor state reached by taking c from s.
	Apply(s S, c C) S

	// Goal reports whether s is a complete solution.
	Goal(s S) bool
}

// Funcs adapts plain closures into a Problem. Nil fields fall back to
// permissive defaults: no choices, everything valid, identity apply,
// never a goal.
type Funcs[S, C any] struct {
	ChoicesFn func(s S) []C
	ValidFn   func(s S, c C) bool
	ApplyFn   func(s S, c C) S
	GoalFn    func(s S) bool
}

// Choices implements Problem.
func (f Funcs[S, C]) Choices(s S) []C {
	if f.ChoicesFn == nil {
		return nil
	}

	return f.ChoicesFn(s)
}

// Valid implements Problem.
func (f Funcs[S, C]) Valid(s S, c C) bool {
	if f.ValidFn == nil {
		return true
	}

	return f.ValidFn(s, c)
}

// Apply implements Problem.
func (f Funcs[S, C]) Apply(s S, c C) S {
	if f.ApplyFn == nil {
		return s
	}

	return f.ApplyFn(s, c)
}

// Goal implements Problem.
func (f Funcs[S, C]) Goal(s S) bool {
	if f.GoalFn == nil {
		return false
	}

	return f.GoalFn(s)
}

// Option configures driver behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the driver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a search run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked at every node entry.
	Ctx context.Context

	// MaxDepth, if > 0, abandons any branch whose path grows to this length,
	// marking Result.DepthExceeded. A value of 0 disables the guard.
	MaxDepth int

	// ShouldStop, if non-nil, is polled at every node entry. Returning true
	// makes the current branch behave as a dead end: the pending pops still
	// execute and no error is reported.
	ShouldStop func() bool

	// OnPush is called after a choice is pushed; depth is the path length
	// including the new entry.
	OnPush func(depth int)

	// OnPop is called after a choice is popped; depth is the remaining
	// path length.
	OnPop func(depth int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth guard (MaxDepth == 0)
//   - no stop predicate
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		MaxDepth:   0,
		ShouldStop: nil,
		OnPush:     func(int) {},
		OnPop:      func(int) {},
		err:        nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth abandons branches deeper than d choices.
//
//	d > 0: guard at depth d
//	d == 0: explicit no guard
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no guard"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithShouldStop installs a cooperative stop predicate, polled per node.
func WithShouldStop(fn func() bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.ShouldStop = fn
		}
	}
}

// WithOnPush registers a callback to run after each path push.
func WithOnPush(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithOnPop registers a callback to run after each path pop.
func WithOnPop(fn func(depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// Result holds the outcome of a search:
//   - Solutions: accepted paths, each an independent copy detached from the
//     driver's live path.
//   - Found: whether at least one solution was recorded.
//   - Visited: nodes expanded, for diagnostics.
//   - DepthExceeded: whether the MaxDepth guard abandoned any branch; those
//     branches are reported as exhausted, not as errors.
type Result[C any] struct {
	Solutions     [][]C
	Found         bool
	Visited       int
	DepthExceeded bool
}

// First returns the first recorded solution, or nil when none exists.
func (r *Result[C]) First() []C {
	if len(r.Solutions) == 0 {
		return nil
	}

	return r.Solutions[0]
}
