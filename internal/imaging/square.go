package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// SquareOffset returns where an image of the given size is placed on the
// square canvas produced by Square.
func SquareOffset(width, height int) image.Point {
	off := (max(width, height) - min(width, height)) / 2
	if width > height {
		return image.Pt(0, off)
	}
	return image.Pt(off, 0)
}

// Square pads img to a square canvas filled with bg.
//
// The canvas side is the larger image dimension. The image is centered
// along its shorter axis; when the margin is odd the extra pixel goes to
// the bottom or right. img is not modified.
func Square(img image.Image, bg color.NRGBA) *image.NRGBA {
	bounds := img.Bounds()
	side := max(bounds.Dx(), bounds.Dy())

	canvas := imaging.New(side, side, bg)
	return imaging.Paste(canvas, img, SquareOffset(bounds.Dx(), bounds.Dy()))
}
