package grid

import (
	"github.com/katalvlaran/searchspace/frontier"
)

// cellGraph adapts a Grid's open-cell adjacency to the frontier contract.
// Cell is its own key: equal positions are equal nodes.
func (g *Grid) cellGraph() frontier.Graph[Cell, Cell] {
	return frontier.Funcs[Cell, Cell]{
		NeighborsFn: g.openNeighbors,
		KeyFn:       func(c Cell) Cell { return c },
	}
}

// ShortestPath returns the fewest-step path from one open cell to another,
// along with its step count (0 when from == to). When to is unreachable the
// path is nil and the distance is frontier.Unreachable — that is a normal
// outcome, not an error. Returns ErrOutOfBounds for cells outside the grid.
// Among equal-length paths the first-discovered one (offset order) wins.
// Complexity: O(W×H) time and memory.
func (g *Grid) ShortestPath(from, to Cell) ([]Cell, int, error) {
	if !g.InBounds(from) || !g.InBounds(to) {
		return nil, frontier.Unreachable, ErrOutOfBounds
	}
	if g.Blocked(from) || g.Blocked(to) {
		return nil, frontier.Unreachable, nil
	}

	res, err := frontier.Search(g.cellGraph(), []Cell{from}, func(c Cell) bool { return c == to })
	if err != nil {
		return nil, frontier.Unreachable, err
	}
	if !res.GoalReached {
		return nil, frontier.Unreachable, nil
	}

	path, err := res.PathTo(to)
	if err != nil {
		return nil, frontier.Unreachable, err
	}

	return path, res.GoalDist, nil
}

// Spread expands from every source simultaneously through open cells and
// reports how many rounds it takes to cover all of them: the eccentricity
// of the source set over the reachable open region. If any open cell stays
// uncovered, rounds is frontier.Unreachable. Sources must be open cells in
// bounds; ErrNoSources / ErrOutOfBounds otherwise.
// Complexity: O(W×H) time and memory.
func (g *Grid) Spread(sources []Cell) (int, error) {
	if len(sources) == 0 {
		return frontier.Unreachable, ErrNoSources
	}
	for _, s := range sources {
		if !g.InBounds(s) {
			return frontier.Unreachable, ErrOutOfBounds
		}
	}

	res, err := frontier.Search(g.cellGraph(), sources, nil)
	if err != nil {
		return frontier.Unreachable, err
	}

	rounds := 0
	for _, c := range g.openCells() {
		d := res.DistanceTo(c)
		if d == frontier.Unreachable {
			return frontier.Unreachable, nil
		}
		if d > rounds {
			rounds = d
		}
	}

	return rounds, nil
}

// probe is the composite search state for budgeted pathfinding: a position
// plus the eliminations still available. Two visits to the same cell with
// different remaining budgets are distinct nodes.
type probe struct {
	cell      Cell
	remaining int
}

// ShortestPathEliminating returns the fewest-step distance from one cell to
// another when up to budget blocked cells may be stepped through (each
// elimination costs one step like any other move). The visited registry is
// keyed on (cell, remaining budget), so a cell may be legitimately
// re-enqueued under a larger remaining budget. Unreachable within the
// budget yields frontier.Unreachable without error.
// Complexity: O(W×H×budget) time and memory.
func (g *Grid) ShortestPathEliminating(from, to Cell, budget int) (int, error) {
	if budget < 0 {
		return frontier.Unreachable, ErrNegativeBudget
	}
	if !g.InBounds(from) || !g.InBounds(to) {
		return frontier.Unreachable, ErrOutOfBounds
	}

	graph := frontier.Funcs[probe, probe]{
		NeighborsFn: func(p probe) []probe {
			out := make([]probe, 0, len(g.neighborOffsets))
			var n Cell
			for _, d := range g.neighborOffsets {
				n = Cell{X: p.cell.X + d[0], Y: p.cell.Y + d[1]}
				if !g.InBounds(n) {
					continue
				}
				if g.Blocked(n) {
					if p.remaining > 0 {
						out = append(out, probe{cell: n, remaining: p.remaining - 1})
					}

					continue
				}
				out = append(out, probe{cell: n, remaining: p.remaining})
			}

			return out
		},
		KeyFn: func(p probe) probe { return p },
	}

	start := probe{cell: from, remaining: budget}
	if g.Blocked(from) {
		if budget == 0 {
			return frontier.Unreachable, nil
		}
		start.remaining = budget - 1
	}

	res, err := frontier.Search(graph, []probe{start}, func(p probe) bool { return p.cell == to })
	if err != nil {
		return frontier.Unreachable, err
	}
	if !res.GoalReached {
		return frontier.Unreachable, nil
	}

	return res.GoalDist, nil
}
