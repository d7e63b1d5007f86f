package grid

// New constructs a Grid from a non-empty, rectangular 2D slice indexed as
// values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if the grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts Options) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &Grid{
		Width:           w,
		Height:          h,
		cells:           cells,
		conn:            opts.Conn,
		blockThreshold:  opts.BlockThreshold,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// Blocked reports whether c holds a blocked value. Out-of-bounds cells are
// treated as blocked.
// Complexity: O(1).
func (g *Grid) Blocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.cells[c.Y][c.X] >= g.blockThreshold
}

// Value returns the stored value at c. The caller must ensure c is in
// bounds.
func (g *Grid) Value(c Cell) int {
	return g.cells[c.Y][c.X]
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Y*g.Width + c.X
}

// CellAt converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) CellAt(idx int) Cell {
	return Cell{X: idx % g.Width, Y: idx / g.Width}
}

// openNeighbors returns the in-bounds, unblocked neighbors of c in offset
// order. Used by every plain-cell search in this package.
func (g *Grid) openNeighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(g.neighborOffsets))
	var n Cell
	for _, d := range g.neighborOffsets {
		n = Cell{X: c.X + d[0], Y: c.Y + d[1]}
		if g.InBounds(n) && !g.Blocked(n) {
			out = append(out, n)
		}
	}

	return out
}

// openCells returns every unblocked cell, row-major.
func (g *Grid) openCells() []Cell {
	out := make([]Cell, 0, g.Width*g.Height)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.cells[y][x] < g.blockThreshold {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}

	return out
}
