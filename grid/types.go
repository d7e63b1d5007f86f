package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell argument outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrNoSources indicates a multi-source operation received no sources.
	ErrNoSources = errors.New("grid: at least one source cell is required")
	// ErrNegativeBudget indicates a negative elimination budget.
	ErrNegativeBudget = errors.New("grid: elimination budget cannot be negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies a single grid position. It is comparable, so it doubles
// as the frontier key for plain cell searches.
type Cell struct {
	X, Y int
}

// Options contains tunable parameters for grid analysis.
type Options struct {
	// BlockThreshold specifies the minimum cell value considered blocked.
	BlockThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with default settings:
// BlockThreshold=1 (values ≥1 are blocked), Conn=Conn4.
func DefaultOptions() Options {
	return Options{
		BlockThreshold: 1,
		Conn:           Conn4,
	}
}

// Grid treats a 2D integer grid as an implicit graph. It is immutable once
// built. Width and Height define dimensions; cell values are deep-copied at
// construction. neighborOffsets is precomputed for adjacency scans.
type Grid struct {
	Width, Height   int
	cells           [][]int
	conn            Connectivity
	blockThreshold  int
	neighborOffsets [][2]int
}
