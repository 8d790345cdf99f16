package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// Split cuts img into the cells of grid, in row-major order.
//
// The image width must be divisible by grid.Cols and the height by
// grid.Rows. Cell (row, col) covers the half-open box
//
//	(col*cw, row*ch) - (col*cw+cw, row*ch+ch)
//
// measured from the image's top-left corner, so the returned tiles cover
// the image exactly once. Each tile owns a copy of its pixels.
func Split(img image.Image, grid Grid) ([]Tile, error) {
	bounds := img.Bounds()
	cw, ch, err := grid.CellSize(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	tiles := make([]Tile, 0, grid.Len())
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			box := image.Rect(col*cw, row*ch, col*cw+cw, row*ch+ch)
			tiles = append(tiles, Tile{
				Index:  grid.Index(row, col),
				Row:    row,
				Col:    col,
				Bounds: box,
				Image:  imaging.Crop(img, box.Add(bounds.Min)),
			})
		}
	}
	return tiles, nil
}
