// Package backtrack implements depth-first search over an implicit decision
// tree, with choice pruning, undo discipline, and first-solution or
// all-solutions collection.
//
// What:
//
//   - Search(p, initial, mode, opts...): recursive driver. At each state it
//     asks the Problem for the ordered candidate choices, prunes the invalid
//     ones, pushes each surviving choice onto the live path, descends into
//     the successor state, and pops the choice on the way back up — the pop
//     runs on every return, including early FindFirst propagation and
//     cancellation, so sibling branches always see an intact path.
//   - SearchIterative(p, initial, mode, opts...): explicit-stack variant with
//     identical enumeration order and push/pop discipline, for search spaces
//     deep enough to threaten the goroutine call stack.
//   - Problem[S, C]: the four-callback contract a problem implements
//     (Choices, Valid, Apply, Goal). Funcs adapts plain closures.
//
// Why:
//   - Enumerate constraint-satisfaction solutions (N-Queens, Sudoku)
//   - Generate combinatorial objects (permutations, subsets)
//   - Prune whole subtrees before ever visiting them via Valid
//
// Determinism: choices are tried exactly in the order Choices yields them.
// That order decides which solution FindFirst returns and the enumeration
// order of FindAll, so Problem implementations should document it.
//
// Complexity:
//
//   - Time:   O(nodes visited × cost of callbacks); pruning via Valid is the
//     only defense against the tree's worst-case exponential size.
//   - Memory: O(max depth) for the path, plus O(max depth) call stack for
//     Search or an explicit O(max depth) frame stack for SearchIterative.
//
// Errors:
//
//   - ErrNilProblem       if p is nil
//   - ErrOptionViolation  for invalid options (negative MaxDepth)
//   - context.Canceled / context.DeadlineExceeded via WithContext
//
// Dead ends are not errors: a state with no valid choices that fails Goal
// simply returns control to its parent. A configured depth guard that trips
// is reported through Result.DepthExceeded, not through an error.
package backtrack
