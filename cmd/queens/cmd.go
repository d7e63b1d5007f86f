package queens

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchspace/backtrack"
	queensproblem "github.com/katalvlaran/searchspace/problems/queens"
)

func NewQueensCommand() *cobra.Command {
	var (
		size int
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Solves the N-Queens puzzle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(size, all)
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 8, "board size")
	cmd.Flags().BoolVar(&all, "all", false, "enumerate every solution instead of the first")

	return cmd
}

func solve(size int, all bool) error {
	mode := backtrack.FindFirst
	if all {
		mode = backtrack.FindAll
	}

	res, err := queensproblem.Solve(size, mode)
	if err != nil {
		return err
	}
	if !res.Found {
		fmt.Printf("no solution for a %d×%d board\n", size, size)

		return nil
	}

	if all {
		fmt.Printf("%d solutions\n", len(res.Solutions))

		return nil
	}

	printBoard(res.First())

	return nil
}

// printBoard renders a column-per-row assignment as an ASCII board.
func printBoard(cols []int) {
	var sb strings.Builder
	for _, qc := range cols {
		for c := 0; c < len(cols); c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if c == qc {
				sb.WriteByte('Q')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	fmt.Print(sb.String())
}
