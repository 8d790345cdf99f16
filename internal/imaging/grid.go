package imaging

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidGridDimensions is returned when a grid does not fit an image:
// non-positive rows or columns, dimensions that are not evenly divisible,
// or a tile count that does not match the grid.
var ErrInvalidGridDimensions = errors.New("invalid grid dimensions")

// Grid describes a uniform layout of Rows x Cols cells.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Validate reports whether both Rows and Cols are positive.
func (g Grid) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: rows and columns must be positive, got %dx%d", ErrInvalidGridDimensions, g.Rows, g.Cols)
	}
	return nil
}

// Len returns the number of cells in the grid.
func (g Grid) Len() int {
	return g.Rows * g.Cols
}

// Index returns the row-major index of the cell at (row, col).
func (g Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Position is the inverse of Index.
func (g Grid) Position(index int) (row, col int) {
	return index / g.Cols, index % g.Cols
}

// CellSize returns the size of one cell when the grid is laid over an
// image of the given dimensions.
//
// # Errors
//
//   - ErrInvalidGridDimensions if the grid is invalid or width is not
//     divisible by Cols or height by Rows
func (g Grid) CellSize(width, height int) (cellWidth, cellHeight int, err error) {
	if err := g.Validate(); err != nil {
		return 0, 0, err
	}
	if width%g.Cols != 0 {
		return 0, 0, fmt.Errorf("%w: width %d is not evenly divisible by %d columns", ErrInvalidGridDimensions, width, g.Cols)
	}
	if height%g.Rows != 0 {
		return 0, 0, fmt.Errorf("%w: height %d is not evenly divisible by %d rows", ErrInvalidGridDimensions, height, g.Rows)
	}
	return width / g.Cols, height / g.Rows, nil
}

// Tile is one cell cut out of a source image.
//
// Row and Col are carried explicitly so that reassembly never has to
// recover them from a filename.
type Tile struct {
	Index  int             `json:"index"`
	Row    int             `json:"row"`
	Col    int             `json:"col"`
	Bounds image.Rectangle `json:"-"` // Region of the source, relative to its top-left corner
	Image  *image.NRGBA    `json:"-"`
}
