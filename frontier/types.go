// Package frontier defines the graph contract, tunable options, sentinel
// errors, and result types for breadth-first search.
package frontier

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable is the sentinel distance reported for keys the search never
// reached.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil Graph is passed.
	ErrNilGraph = errors.New("frontier: graph is nil")

	// ErrNoSources is returned when Search is given no seed states.
	ErrNoSources = errors.New("frontier: at least one source is required")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("frontier: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo when the destination key was
	// never reached.
	ErrNoPath = errors.New("frontier: no path to destination")
)

// Graph is the callback contract an implicit graph implements.
type Graph[S any, K comparable] interface {
	// Neighbors returns the successor states of s in deterministic order.
	// The order fixes parent assignment and therefore path tie-breaking.
	Neighbors(s S) []S

	// Key collapses s into the comparable identity the visited registry
	// uses. Search-equivalent states must map to equal keys; states that
	// differ in reachability-relevant auxiliary data must not.
	Key(s S) K
}

// Funcs adapts plain closures into a Graph. KeyFn must be non-nil;
// a nil NeighborsFn yields no successors.
type Funcs[S any, K comparable] struct {
	NeighborsFn func(s S) []S
	KeyFn       func(s S) K
}

// Neighbors implements Graph.
func (f Funcs[S, K]) Neighbors(s S) []S {
	if f.NeighborsFn == nil {
		return nil
	}

	return f.NeighborsFn(s)
}

// Key implements Graph.
func (f Funcs[S, K]) Key(s S) K {
	return f.KeyFn(s)
}

// Option configures Search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this distance.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// OnEnqueue is called when a state is enqueued, with its distance.
	OnEnqueue func(dist int)

	// OnDequeue is called immediately before visiting a state.
	OnDequeue func(dist int)

	// OnVisit is called when visiting a state. If it returns an error,
	// Search aborts and propagates that error.
	OnVisit func(dist int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxDepth:  0,
		OnEnqueue: func(int) {},
		OnDequeue: func(int) {},
		OnVisit:   func(int) error { return nil },
		err:       nil,
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

// WithMaxDepth stops the search at the given distance (inclusive).
//
//	d > 0: limit to distance d
//	d == 0: explicit no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit(fn func(dist int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Result holds the outcome of a breadth-first search:
//   - Order: keys visited, in dequeue sequence.
//   - Dist: map from key to its distance (in steps) from the nearest source.
//   - Parent: map from key to the key that first enqueued it; sources are
//     absent.
//   - GoalReached / GoalState / GoalDist: outcome of the goal predicate.
//     GoalDist is Unreachable when the frontier drained without a goal.
type Result[S any, K comparable] struct {
	Order       []K
	Dist        map[K]int
	Parent      map[K]K
	GoalReached bool
	GoalState   S
	GoalDist    int
}

// DistanceTo returns the shortest distance recorded for key, or Unreachable
// when the search never saw it.
func (r *Result[S, K]) DistanceTo(key K) int {
	d, ok := r.Dist[key]
	if !ok {
		return Unreachable
	}

	return d
}

// PathTo reconstructs the key sequence from a source to dest by walking
// parent links. Among equal-length shortest paths it returns the
// first-discovered one (neighbor-iteration order). Returns ErrNoPath if
// dest was not reached.
func (r *Result[S, K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, fmt.Errorf("%w: %v", ErrNoPath, dest)
	}
	// build reversed path
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
