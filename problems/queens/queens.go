// Package queens expresses the N-Queens puzzle against the backtrack
// contract: place n queens on an n×n board so that no two attack each other.
//
// State is the partial assignment []int where element r is the column of
// the queen in row r; a choice is the column for the next row. Choices are
// yielded in increasing column order, so FindFirst returns the
// lexicographically smallest solution and FindAll enumerates solutions in
// lexicographic order.
package queens

import (
	"errors"

	"github.com/katalvlaran/searchspace/backtrack"
)

// ErrBadSize is returned for a board size below 1.
var ErrBadSize = errors.New("queens: board size must be at least 1")

// Problem implements backtrack.Problem for an n×n board.
type Problem struct {
	n       int
	columns []int // 0..n-1, shared read-only choice slice
}

// New constructs an N-Queens problem. Returns ErrBadSize for n < 1.
func New(n int) (Problem, error) {
	if n < 1 {
		return Problem{}, ErrBadSize
	}
	cols := make([]int, n)
	for i := range cols {
		cols[i] = i
	}

	return Problem{n: n, columns: cols}, nil
}

// Choices returns every column for the next row, in increasing order, or
// nothing once all rows are filled.
func (p Problem) Choices(placed []int) []int {
	if len(placed) == p.n {
		return nil
	}

	return p.columns
}

// Valid reports whether placing the next queen in col attacks no queen
// already on the board. Column and both diagonals are checked; rows cannot
// clash by construction.
func (p Problem) Valid(placed []int, col int) bool {
	row := len(placed)
	for r, c := range placed {
		if c == col || row-r == col-c || row-r == c-col {
			return false
		}
	}

	return true
}

// Apply returns a fresh assignment extended by col; the input is never
// mutated.
func (p Problem) Apply(placed []int, col int) []int {
	next := make([]int, len(placed)+1)
	copy(next, placed)
	next[len(placed)] = col

	return next
}

// Goal reports whether all n rows hold a queen.
func (p Problem) Goal(placed []int) bool {
	return len(placed) == p.n
}

// Solve runs the backtracking driver over an n×n board in the given mode.
// Each solution is the column-per-row assignment.
func Solve(n int, mode backtrack.Mode, opts ...backtrack.Option) (*backtrack.Result[int], error) {
	p, err := New(n)
	if err != nil {
		return nil, err
	}

	return backtrack.Search(p, []int(nil), mode, opts...)
}

// Count returns the number of distinct solutions on an n×n board.
func Count(n int) (int, error) {
	res, err := Solve(n, backtrack.FindAll)
	if err != nil {
		return 0, err
	}

	return len(res.Solutions), nil
}
