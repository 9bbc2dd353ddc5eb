package hexgrid

import (
	"fmt"
)

// NewHexGrid constructs a HexGrid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrInvalidOptions if WallThreshold or WallOpacity is below 1.
// A nil opts.Logger falls back to a discarding logger.
// Algorithmic complexity: O(W×H) time and memory.
func NewHexGrid(values [][]int, opts GridOptions) (*HexGrid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.WallThreshold < 1 || opts.WallOpacity < 1 {
		return nil, fmt.Errorf("%w: WallThreshold=%d WallOpacity=%d", ErrInvalidOptions, opts.WallThreshold, opts.WallOpacity)
	}
	if opts.Logger == nil {
		opts.Logger = DefaultGridOptions().Logger
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], values[r])
	}

	return &HexGrid{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		WallThreshold: opts.WallThreshold,
		WallOpacity:   opts.WallOpacity,
		logger:        opts.Logger,
	}, nil
}

// From2D is shorthand for NewHexGrid(values, DefaultGridOptions()).
func From2D(values [][]int) (*HexGrid, error) {
	return NewHexGrid(values, DefaultGridOptions())
}

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *HexGrid) InBounds(c Coord) bool {
	return c.Q >= 0 && c.Q < g.Width && c.R >= 0 && c.R < g.Height
}

// Value returns the stored value at c, or false for off-grid cells.
func (g *HexGrid) Value(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.CellValues[c.R][c.Q], true
}

// IsWall reports whether c is a wall. Off-grid cells are walls.
func (g *HexGrid) IsWall(c Coord) bool {
	v, ok := g.Value(c)
	return !ok || v >= g.WallThreshold
}

// Passable reports whether a walk may step onto c.
func (g *HexGrid) Passable(c Coord) bool {
	return !g.IsWall(c)
}

// Opaqueness returns the light c absorbs: WallOpacity for walls and
// off-grid cells, the cell value otherwise (at least 1).
func (g *HexGrid) Opaqueness(c Coord) int {
	if g.IsWall(c) {
		return g.WallOpacity
	}
	return max(g.CellValues[c.R][c.Q], 1)
}

// index maps c to a row-major index: R*Width + Q.
// Complexity: O(1).
func (g *HexGrid) index(c Coord) int {
	return c.R*g.Width + c.Q
}

// Coordinate converts a row-major index back to a cell.
// Complexity: O(1).
func (g *HexGrid) Coordinate(idx int) Coord {
	return Coord{Q: idx % g.Width, R: idx / g.Width}
}
