package frontier

import "fmt"

// queueItem pairs a state with its key and BFS distance.
type queueItem[S any, K comparable] struct {
	state S
	key   K
	dist  int
}

// walker encapsulates mutable BFS state.
type walker[S any, K comparable] struct {
	graph Graph[S, K]
	goal  func(S) bool
	opts  Options
	queue []queueItem[S, K]
	seen  map[K]bool
	res   *Result[S, K]
}

// Search runs breadth-first search over g seeded with sources, applying any
// number of functional Options. Every source is enqueued at distance 0, so
// several origins expand simultaneously. If goal is non-nil the search
// stops at the first dequeued state satisfying it; a drained frontier
// without a goal yields GoalReached == false and GoalDist == Unreachable,
// which is a normal outcome, not an error.
// Returns ErrNilGraph or ErrNoSources for invalid input, ErrOptionViolation
// for bad options, or any user-supplied hook or context error.
func Search[S any, K comparable](g Graph[S, K], sources []S, goal func(S) bool, opts ...Option) (*Result[S, K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S, K]{
		graph: g,
		goal:  goal,
		opts:  o,
		queue: make([]queueItem[S, K], 0, len(sources)),
		seen:  make(map[K]bool, len(sources)),
		res: &Result[S, K]{
			Order:    make([]K, 0, len(sources)),
			Dist:     make(map[K]int, len(sources)),
			Parent:   make(map[K]K, len(sources)),
			GoalDist: Unreachable,
		},
	}

	// Seed the frontier with every source at distance 0. Duplicate source
	// keys collapse: only the first occurrence enters the queue.
	var k K
	for _, s := range sources {
		if k = g.Key(s); !w.seen[k] {
			w.enqueue(s, k, 0)
		}
	}

	return w.res, w.loop()
}

// enqueue marks key seen, records its distance, calls OnEnqueue, and adds
// the state to the queue. Marking happens here, at enqueue time, so a key
// can never enter the frontier twice through different same-level paths.
func (w *walker[S, K]) enqueue(s S, key K, d int) {
	w.seen[key] = true
	w.res.Dist[key] = d
	w.opts.OnEnqueue(d)
	w.queue = append(w.queue, queueItem[S, K]{state: s, key: key, dist: d})
}

// loop processes the queue until the goal is met, the queue empties, an
// error occurs, or the context is cancelled.
func (w *walker[S, K]) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}

		// First dequeue of a key carries its final, provably shortest
		// distance: all distance-d keys precede every distance-(d+1) key.
		if w.goal != nil && w.goal(item.state) {
			w.res.GoalReached = true
			w.res.GoalState = item.state
			w.res.GoalDist = item.dist

			return nil
		}

		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the oldest item, invokes OnDequeue, and returns it.
func (w *walker[S, K]) dequeue() queueItem[S, K] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.dist)

	return item
}

// visit records the key in Order and calls OnVisit.
func (w *walker[S, K]) visit(item queueItem[S, K]) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(item.dist); err != nil {
		return fmt.Errorf("frontier: OnVisit error at %v: %w", item.key, err)
	}

	return nil
}

// expand enqueues each unseen neighbor of item at distance item.dist+1,
// applying the MaxDepth limit and recording parent links.
func (w *walker[S, K]) expand(item queueItem[S, K]) error {
	nextDist := item.dist + 1
	if w.opts.MaxDepth > 0 && nextDist > w.opts.MaxDepth {
		return nil
	}

	var k K
	for _, nbr := range w.graph.Neighbors(item.state) {
		// cancellation check inside neighbor iteration
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// first time seen?
		if k = w.graph.Key(nbr); !w.seen[k] {
			w.res.Parent[k] = item.key
			w.enqueue(nbr, k, nextDist)
		}
	}

	return nil
}
