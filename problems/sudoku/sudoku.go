// Package sudoku expresses the classic 9×9 puzzle against the backtrack
// contract.
//
// State is the whole Board value (copied by Apply, never mutated); a choice
// is a Placement of one digit into the first empty cell, digits offered in
// increasing order. FindFirst therefore returns the same solution a
// hand-written row-major backtracking solver would find first.
package sudoku

import (
	"errors"
	"strings"

	"github.com/katalvlaran/searchspace/backtrack"
)

// Size is the board edge length; Box the sub-square edge length.
const (
	Size = 9
	Box  = 3
)

// Sentinel errors for sudoku solving.
var (
	// ErrBadCell indicates a board value outside 0..9.
	ErrBadCell = errors.New("sudoku: cell values must be in 0..9")
	// ErrUnsolvable indicates a board with no valid completion.
	ErrUnsolvable = errors.New("sudoku: board has no solution")
)

// Board is a 9×9 grid; 0 marks an empty cell.
type Board [Size][Size]int

// Placement is one decision: digit goes into cell (Row, Col).
type Placement struct {
	Row, Col, Digit int
}

// Problem implements backtrack.Problem for board completion.
type Problem struct{}

// Choices finds the first empty cell in row-major order and offers digits
// 1..9 for it, or nothing when the board is full.
func (Problem) Choices(b Board) []Placement {
	row, col, ok := firstEmpty(b)
	if !ok {
		return nil
	}
	out := make([]Placement, 0, Size)
	for d := 1; d <= Size; d++ {
		out = append(out, Placement{Row: row, Col: col, Digit: d})
	}

	return out
}

// Valid reports whether the placement clashes with its row, column, or box.
func (Problem) Valid(b Board, pl Placement) bool {
	for i := 0; i < Size; i++ {
		if b[pl.Row][i] == pl.Digit || b[i][pl.Col] == pl.Digit {
			return false
		}
	}
	br, bc := (pl.Row/Box)*Box, (pl.Col/Box)*Box
	for dr := 0; dr < Box; dr++ {
		for dc := 0; dc < Box; dc++ {
			if b[br+dr][bc+dc] == pl.Digit {
				return false
			}
		}
	}

	return true
}

// Apply returns a copy of the board with the placement written in.
func (Problem) Apply(b Board, pl Placement) Board {
	b[pl.Row][pl.Col] = pl.Digit // b is already a copy: arrays pass by value

	return b
}

// Goal reports whether no empty cell remains.
func (Problem) Goal(b Board) bool {
	_, _, ok := firstEmpty(b)

	return !ok
}

// firstEmpty locates the first 0 cell in row-major order.
func firstEmpty(b Board) (row, col int, ok bool) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == 0 {
				return r, c, true
			}
		}
	}

	return 0, 0, false
}

// Solve completes the board, leaving given digits in place.
// Returns ErrBadCell for malformed input and ErrUnsolvable when no
// completion exists.
func Solve(b Board, opts ...backtrack.Option) (Board, error) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] < 0 || b[r][c] > Size {
				return b, ErrBadCell
			}
		}
	}

	res, err := backtrack.Search[Board, Placement](Problem{}, b, backtrack.FindFirst, opts...)
	if err != nil {
		return b, err
	}
	if !res.Found {
		return b, ErrUnsolvable
	}

	// Replay the winning placements onto the input board.
	for _, pl := range res.First() {
		b[pl.Row][pl.Col] = pl.Digit
	}

	return b, nil
}

// String renders the board as nine space-separated rows, empty cells as
// dots.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(byte('0' + b[r][c]))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
