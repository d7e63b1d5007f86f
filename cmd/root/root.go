package root

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/searchspace/cmd/maze"
	"github.com/katalvlaran/searchspace/cmd/queens"
	"github.com/katalvlaran/searchspace/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "searchspace",
		Short: "Searchspace drives generic backtracking and frontier search",
		Long: `A showcase CLI for the searchspace library: backtracking over decision
trees and breadth-first search over implicit graphs.
For more information visit https://github.com/katalvlaran/searchspace`,
	}

	// add sub-commands
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(maze.NewMazeCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())

	return rootCmd
}
