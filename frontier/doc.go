// Package frontier implements level-synchronous breadth-first search over an
// implicit graph, returning shortest unweighted distances, parent links, and
// visit order, with multi-source seeding and composite visited keys.
//
// What:
//
//   - Search(g, sources, goal, opts...): seeds a FIFO frontier with every
//     source at distance 0 and drains it level by level. The first time a
//     key is dequeued its recorded distance is final: all distance-d keys
//     are fully enqueued before any distance-(d+1) key is processed.
//   - Graph[S, K]: the two-callback contract — Neighbors yields the
//     successor states of s in deterministic order, Key collapses states
//     into the comparable identity the visited registry is keyed by.
//   - Result: distances, parents, visit order, goal outcome, and PathTo
//     reconstruction.
//
// Keys matter when two distinct states are search-equivalent — or when they
// are not: a position paired with a remaining resource budget must key on
// both, so the same position can be legitimately re-enqueued under a
// different budget as a distinct node.
//
// The one subtle correctness requirement: a key is marked seen at enqueue
// time, never at dequeue time. Marking late lets the same key enter the
// frontier through several same-level paths and silently inflates work.
//
// Why:
//   - Fewest-step paths through grids, puzzles, and other implicit graphs
//   - Simultaneous expansion from many origins (spread/infection rounds)
//   - Reachability under a per-state auxiliary budget
//
// Tie-breaking among equal-length shortest paths is deterministic: a key's
// parent is the key that first enqueued it, and neighbors are scanned in
// the order Neighbors yields them.
//
// Complexity:
//
//   - Time:   O(K + E) over distinct reachable keys K and expanded edges E.
//   - Memory: O(K) for the registry, distances, and parents. Unbounded
//     auxiliary state in the key makes K itself unbounded — budget
//     accordingly.
//
// Errors:
//
//   - ErrNilGraph         if g is nil
//   - ErrNoSources        if no seed states are supplied
//   - ErrOptionViolation  for invalid options (negative MaxDepth)
//   - ErrNoPath           from Result.PathTo for an unreached key
//   - context errors via WithContext, and any error from an OnVisit hook
//
// An unreachable goal is not an error: Search returns a Result whose
// GoalReached is false and whose GoalDist is Unreachable.
package frontier
