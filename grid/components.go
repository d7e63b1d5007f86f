package grid

import (
	"github.com/katalvlaran/searchspace/frontier"
)

// Components finds all contiguous regions of open cells according to the
// grid's connectivity. Each component lists its cells in BFS dequeue order
// from the component's row-major-first cell, so output is deterministic.
//
// Time:   O(W×H×d), where d = 4 or 8.
// Memory: O(W×H) for seen flags and output.
func (g *Grid) Components() ([][]Cell, error) {
	seen := make(map[Cell]bool, g.Width*g.Height)
	var comps [][]Cell

	for _, c := range g.openCells() {
		if seen[c] {
			continue
		}

		res, err := frontier.Search(g.cellGraph(), []Cell{c}, nil)
		if err != nil {
			return nil, err
		}

		comp := make([]Cell, len(res.Order))
		copy(comp, res.Order)
		for _, m := range comp {
			seen[m] = true
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
