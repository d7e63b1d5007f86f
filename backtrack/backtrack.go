package backtrack

// walker encapsulates mutable search state shared by both drivers.
type walker[S, C any] struct {
	problem Problem[S, C]
	mode    Mode
	opts    Options
	path    []C
	res     *Result[C]
	done    bool // FindFirst short-circuit flag
}

// Search runs depth-first backtracking over the decision tree rooted at
// initial, applying any number of functional Options.
// Returns ErrNilProblem for a nil problem, ErrOptionViolation for bad
// options, or the context error when cancelled mid-search. Dead ends and
// depth-guard trips are normal outcomes reported through Result.
func Search[S, C any](p Problem[S, C], initial S, mode Mode, opts ...Option) (*Result[C], error) {
	w, err := newWalker(p, mode, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.descend(initial, 0)
}

// newWalker validates inputs, resolves options, and prepares shared state.
func newWalker[S, C any](p Problem[S, C], mode Mode, opts []Option) (*walker[S, C], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &walker[S, C]{
		problem: p,
		mode:    mode,
		opts:    o,
		path:    make([]C, 0, o.MaxDepth),
		res:     &Result[C]{},
	}, nil
}

// descend explores the subtree rooted at s, with depth == len(path).
func (w *walker[S, C]) descend(s S, depth int) error {
	expand, err := w.enter(s, depth)
	if err != nil || !expand {
		return err
	}

	for _, c := range w.problem.Choices(s) {
		if !w.problem.Valid(s, c) {
			continue // prune: the whole subtree under c is skipped
		}

		w.push(c)
		err = w.descend(w.problem.Apply(s, c), depth+1)
		// The pop must run before err/done are inspected, so an early
		// return still leaves the path intact for sibling branches.
		w.pop()
		if err != nil {
			return err
		}
		if w.done {
			return nil
		}
	}

	// Zero valid choices and no goal: a dead end, absorbed silently.
	return nil
}

// enter performs the node-entry work shared by both drivers: cancellation,
// the stop predicate, diagnostics, goal detection, and the depth guard.
// It reports whether the node's choices should be explored.
func (w *walker[S, C]) enter(s S, depth int) (bool, error) {
	// cancellation check (once per node)
	select {
	case <-w.opts.Ctx.Done():
		return false, w.opts.Ctx.Err()
	default:
	}
	// cooperative stop: the branch becomes a dead end, not an error
	if w.opts.ShouldStop != nil && w.opts.ShouldStop() {
		return false, nil
	}

	w.res.Visited++

	if w.problem.Goal(s) {
		w.record()
		if w.mode == FindFirst {
			w.done = true

			return false, nil
		}
		// FindAll keeps descending: deeper solutions may extend this one.
	}

	if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
		w.res.DepthExceeded = true

		return false, nil
	}

	return true, nil
}

// push appends c to the live path and fires OnPush.
func (w *walker[S, C]) push(c C) {
	w.path = append(w.path, c)
	w.opts.OnPush(len(w.path))
}

// pop removes the most recent choice and fires OnPop.
func (w *walker[S, C]) pop() {
	w.path = w.path[:len(w.path)-1]
	w.opts.OnPop(len(w.path))
}

// record snapshots the live path into the result. The copy detaches the
// solution from the driver's mutable path.
func (w *walker[S, C]) record() {
	snap := make([]C, len(w.path))
	copy(snap, w.path)
	w.res.Solutions = append(w.res.Solutions, snap)
	w.res.Found = true
}
