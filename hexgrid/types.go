// Package hexgrid defines core types, options, and sentinel errors
// for the hexgrid subpackage of github.com/katalvlaran/hexalgo.
package hexgrid

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/hexalgo/hex"
)

// Sentinel errors for hexgrid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("hexgrid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("hexgrid: all rows must have the same length")
	// ErrInvalidOptions indicates a GridOptions field out of range.
	ErrInvalidOptions = errors.New("hexgrid: invalid grid options")
	// ErrOutOfBounds indicates a query coordinate outside the grid.
	ErrOutOfBounds = errors.New("hexgrid: coordinate out of bounds")
	// ErrNoPath indicates no walk connects the requested cells.
	ErrNoPath = errors.New("hexgrid: no path between specified cells")
	// ErrComponentIndex indicates a requested room index is out of range.
	ErrComponentIndex = errors.New("hexgrid: component index out of range")
	// ErrUnknownVariant indicates a Variant outside the defined set.
	ErrUnknownVariant = errors.New("hexgrid: unknown line-of-sight variant")
)

// Coord is the coordinate type used by HexGrid.
type Coord = hex.Coordinate[int]

// Variant selects the line-of-sight algorithm used by FieldOfView.
type Variant int

const (
	// VariantShadowcast uses los.Shadowcast with los.PreOpacity.
	VariantShadowcast Variant = iota
	// VariantShadowcastPost uses los.Shadowcast with los.PostOpacity.
	VariantShadowcastPost
	// VariantTrace uses los.Trace.
	VariantTrace
)

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// WallThreshold specifies the minimum cell value considered a wall.
	WallThreshold int
	// WallOpacity is the opaqueness reported for walls and off-grid cells.
	WallOpacity int
	// Logger receives Debug-level events from traversals and sweeps.
	Logger *slog.Logger
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=9 (values ≥9 are walls), WallOpacity=1<<16, discarding logger.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold: 9,
		WallOpacity:   1 << 16,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// HexGrid treats a 2D integer grid as a hex map. It is immutable once built.
// Width and Height define dimensions; CellValues[r][q] holds the original input value.
type HexGrid struct {
	Width, Height int
	CellValues    [][]int
	WallThreshold int
	WallOpacity   int
	logger        *slog.Logger
}
