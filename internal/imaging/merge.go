package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// ErrTileSizeMismatch is returned when tiles being merged differ in size.
var ErrTileSizeMismatch = errors.New("tile size mismatch")

// Merge composes tiles back into one image.
//
// tiles are in row-major order: tile i lands at row i/Cols, column
// i%Cols. The first tile fixes the cell size and every other tile must
// match it. The canvas starts fully transparent and each tile replaces
// the pixels under it, so merging the output of Split reproduces the
// source exactly.
//
// # Errors
//
//   - ErrInvalidGridDimensions if the grid is invalid or len(tiles) != grid.Len()
//   - ErrTileSizeMismatch if a tile differs in size from the first one
func Merge(tiles []image.Image, grid Grid) (*image.NRGBA, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	if len(tiles) != grid.Len() {
		return nil, fmt.Errorf("%w: %dx%d grid needs %d tiles, got %d",
			ErrInvalidGridDimensions, grid.Rows, grid.Cols, grid.Len(), len(tiles))
	}

	tw, th := tiles[0].Bounds().Dx(), tiles[0].Bounds().Dy()
	canvas := imaging.New(tw*grid.Cols, th*grid.Rows, color.Transparent)

	for i, tile := range tiles {
		b := tile.Bounds()
		if b.Dx() != tw || b.Dy() != th {
			return nil, fmt.Errorf("%w: tile %d is %dx%d, expected %dx%d",
				ErrTileSizeMismatch, i, b.Dx(), b.Dy(), tw, th)
		}
		row, col := grid.Position(i)
		dst := image.Rect(col*tw, row*th, col*tw+tw, row*th+th)
		draw.Draw(canvas, dst, tile, b.Min, draw.Src)
	}
	return canvas, nil
}
