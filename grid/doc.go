// Package grid treats a rectangular 2D grid of integer cell values as an
// implicit graph for the frontier driver. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Shortest fewest-step paths between open cells
//   - Multi-source spread rounds (several origins expanding together)
//   - Budgeted pathfinding that may pass through a limited number of
//     blocked cells, keyed on (cell, remaining budget)
//   - Connected components of open cells
//
// Cells with value ≥ BlockThreshold are blocked; cells below it are open.
// The defaults (BlockThreshold=1, Conn4) make 0 open and 1 an obstacle.
//
// All searches run on the frontier package: the grid only supplies
// Neighbors and Key callbacks, so every distance reported here inherits
// frontier's first-dequeue-is-shortest guarantee and its deterministic
// tie-breaking. Neighbor order follows the precomputed offset table
// (N, E, S, W for Conn4), so paths are reproducible.
//
// Errors:
//
//   - ErrEmptyGrid        input has no rows or no columns
//   - ErrNonRectangular   rows of differing lengths
//   - ErrOutOfBounds      a cell argument lies outside the grid
//   - ErrNoSources        a multi-source operation got no sources
//   - ErrNegativeBudget   a negative elimination budget
//
// An unreachable destination is not an error: path operations report the
// frontier.Unreachable sentinel distance instead.
package grid
