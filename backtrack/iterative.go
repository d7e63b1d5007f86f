package backtrack

// defaultFrameCap is the initial frame-stack capacity for iterative search.
const defaultFrameCap = 64

// stackFrame records one in-progress node of the iterative traversal:
// its state, its candidate choices, and the next choice to try.
type stackFrame[S, C any] struct {
	state   S
	choices []C
	next    int
}

// SearchIterative runs the same depth-first backtracking as Search using an
// explicit frame stack instead of recursion, for decision trees deep enough
// to exhaust the goroutine call stack. Enumeration order, push/pop
// discipline, hook sequence, and Result contents match Search exactly.
func SearchIterative[S, C any](p Problem[S, C], initial S, mode Mode, opts ...Option) (*Result[C], error) {
	w, err := newWalker(p, mode, opts)
	if err != nil {
		return nil, err
	}

	return w.res, w.loop(initial)
}

// loop drives the explicit stack. Invariant: at the top of each iteration
// len(path) == len(stack)-1 — every frame below the root was reached through
// exactly one pushed choice, and that choice is popped when its frame is.
func (w *walker[S, C]) loop(initial S) error {
	stack := make([]stackFrame[S, C], 0, defaultFrameCap)

	expand, err := w.enter(initial, 0)
	if err != nil || w.done {
		return err
	}
	if expand {
		stack = append(stack, stackFrame[S, C]{state: initial, choices: w.problem.Choices(initial)})
	}

	for len(stack) > 0 {
		f := &stack[len(stack)-1]

		// Frame exhausted: backtrack to the parent, undoing the choice
		// that produced this frame.
		if f.next == len(f.choices) {
			stack = stack[:len(stack)-1]
			if len(stack) > 0 {
				w.pop()
			}

			continue
		}

		c := f.choices[f.next]
		f.next++
		if !w.problem.Valid(f.state, c) {
			continue // prune
		}

		w.push(c)
		child := w.problem.Apply(f.state, c)
		expand, err = w.enter(child, len(w.path))
		if err != nil || w.done {
			// Unwind exactly as the recursive driver would: every pending
			// pop executes, innermost first, before control returns.
			w.pop()
			for len(stack) > 1 {
				stack = stack[:len(stack)-1]
				w.pop()
			}

			return err
		}
		if expand {
			stack = append(stack, stackFrame[S, C]{state: child, choices: w.problem.Choices(child)})
		} else {
			// Dead end or guarded branch: undo immediately, try siblings.
			w.pop()
		}
	}

	return nil
}
