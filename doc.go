// Package searchspace is your in-memory toolbox for exploring implicit
// state spaces — from exhaustive backtracking over decision trees to
// level-synchronous shortest-path search over graphs you never materialize.
//
// 🚀 What is searchspace?
//
//	A small, focused library that brings together:
//		• backtrack/ — depth-first decision-tree search with undo, pruning,
//		  FindFirst/FindAll modes, and an explicit-stack variant for deep trees
//		• frontier/  — multi-source breadth-first search over implicit graphs,
//		  with composite visited keys, distances, parents, and path rebuilding
//		• grid/      — rectangular obstacle grids as ready-made frontier
//		  problems: shortest paths, multi-source spread, budgeted wall-breaking
//		• problems/  — classic decision problems (N-Queens, permutations,
//		  subsets, Sudoku) expressed against the backtrack callback contract
//
// ✨ Why choose searchspace?
//
//   - One engine, many problems – describe a problem through a handful of
//     callbacks and both drivers are written once, reused everywhere
//   - Deterministic by contract – choice order and neighbor order decide
//     enumeration order and tie-breaks, reproducibly
//   - Extensible – hooks (OnPush, OnPop, OnEnqueue…) for custom diagnostics
//   - Pure Go – no cgo, no hidden machinery
//
// Under the hood, everything is organized under four subpackages:
//
//	backtrack/ — decision-tree search: push, descend, pop, never leak state
//	frontier/  — FIFO frontier search: seen-at-enqueue, first-dequeue-is-final
//	grid/      — 2D grids bridged onto frontier/
//	problems/  — concrete problem definitions bridged onto backtrack/
//
// Quick ASCII example:
//
//	    start ──┬── choice₁ ── … ── ✔ solution
//	            ├── choice₂ ── ✘ pruned
//	            └── choice₃ ── … ── ✔ solution
//
//	backtracking walks this tree depth-first, undoing each choice on the
//	way back up; frontier search floods outward one distance layer at a time.
//
// Dive into each package's doc.go for contracts, complexity, and examples.
//
//	go get github.com/katalvlaran/searchspace
package searchspace
