package sudoku

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	sudokuproblem "github.com/katalvlaran/searchspace/problems/sudoku"
)

func NewSudokuCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sudoku [board]",
		Short: "Returns a solved sudoku board",
		Long: `Solves a 9×9 sudoku. The optional argument is the board as 81 characters
row by row, digits 1-9 for givens and . or 0 for empty cells. Without an
argument an empty board is solved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var spec string
			if len(args) == 1 {
				spec = args[0]
			}

			return solve(spec)
		},
	}
}

func solve(spec string) error {
	board, err := parseBoard(spec)
	if err != nil {
		return err
	}

	solved, err := sudokuproblem.Solve(board)
	if err != nil {
		if errors.Is(err, sudokuproblem.ErrUnsolvable) {
			fmt.Println("no solution found")

			return nil
		}

		return err
	}

	fmt.Print(solved.String())

	return nil
}

// parseBoard reads 81 characters row by row; '.' and '0' mark empty cells.
func parseBoard(spec string) (sudokuproblem.Board, error) {
	var b sudokuproblem.Board
	if spec == "" {
		return b, nil
	}
	if len(spec) != sudokuproblem.Size*sudokuproblem.Size {
		return b, fmt.Errorf("board must be %d characters, got %d", sudokuproblem.Size*sudokuproblem.Size, len(spec))
	}
	for i, ch := range spec {
		r, c := i/sudokuproblem.Size, i%sudokuproblem.Size
		switch {
		case ch == '.' || ch == '0':
			b[r][c] = 0
		case ch >= '1' && ch <= '9':
			b[r][c] = int(ch - '0')
		default:
			return b, fmt.Errorf("cell %d: %q is not a digit or dot", i, ch)
		}
	}

	return b, nil
}
