package maze

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchspace/frontier"
	"github.com/katalvlaran/searchspace/grid"
)

func NewMazeCommand() *cobra.Command {
	var budget int

	cmd := &cobra.Command{
		Use:   "maze [rows...]",
		Short: "Finds the shortest route through an obstacle grid",
		Long: `Each argument is one grid row of digits: 0 for open, 1 for blocked.
The route runs from the top-left to the bottom-right cell. With a positive
--budget, up to that many blocked cells may be broken through.

Example: searchspace maze 000 010 000`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return solve(args, budget)
		},
	}
	cmd.Flags().IntVar(&budget, "budget", 0, "blocked cells that may be eliminated")

	return cmd
}

func solve(rows []string, budget int) error {
	values, err := parseRows(rows)
	if err != nil {
		return err
	}

	g, err := grid.New(values, grid.DefaultOptions())
	if err != nil {
		return err
	}
	from := grid.Cell{X: 0, Y: 0}
	to := grid.Cell{X: g.Width - 1, Y: g.Height - 1}

	if budget > 0 {
		dist, err := g.ShortestPathEliminating(from, to, budget)
		if err != nil {
			return err
		}
		report(dist, nil)

		return nil
	}

	path, dist, err := g.ShortestPath(from, to)
	if err != nil {
		return err
	}
	report(dist, path)

	return nil
}

func parseRows(rows []string) ([][]int, error) {
	values := make([][]int, len(rows))
	for y, row := range rows {
		values[y] = make([]int, len(row))
		for x, ch := range row {
			v, err := strconv.Atoi(string(ch))
			if err != nil {
				return nil, fmt.Errorf("row %d: %q is not a digit", y, ch)
			}
			values[y][x] = v
		}
	}

	return values, nil
}

func report(dist int, path []grid.Cell) {
	if dist == frontier.Unreachable {
		fmt.Println("unreachable")

		return
	}

	fmt.Printf("distance %d\n", dist)
	if len(path) > 0 {
		steps := make([]string, len(path))
		for i, c := range path {
			steps[i] = fmt.Sprintf("(%d,%d)", c.X, c.Y)
		}
		fmt.Println(strings.Join(steps, " → "))
	}
}
