package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultBorderPercent is the size of each sampled border band, as a
// percentage of the corresponding image dimension.
const DefaultBorderPercent = 10.0

var (
	// ErrInvalidBorderPercentage is returned when a border percentage lies outside [0,100].
	ErrInvalidBorderPercentage = errors.New("border percentage must be between 0 and 100")

	// ErrNoBorderPixels is returned when the border bands contain no pixels.
	ErrNoBorderPixels = errors.New("border region contains no pixels")
)

// RGBAColor represents an RGBA color with 8-bit components including alpha.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBAColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult contains a color value in multiple representations.
type ColorResult struct {
	Hex  string    `json:"hex"`  // Hex format "#RRGGBB" (no alpha)
	RGBA RGBAColor `json:"rgba"` // RGBA components with alpha
	HSL  HSLColor  `json:"hsl"`  // HSL representation
}

// NewColorResult describes c in hex, RGBA and HSL form.
func NewColorResult(c color.NRGBA) ColorResult {
	h, s, l := toColorful(c).Hsl()
	return ColorResult{
		Hex:  HexColor(c),
		RGBA: RGBAColor{R: c.R, G: c.G, B: c.B, A: c.A},
		HSL:  HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}
}

// HexColor formats c as "#RRGGBB". Alpha is not included.
func HexColor(c color.NRGBA) string {
	return strings.ToUpper(toColorful(c).Hex())
}

// ParseHexColor parses "#RRGGBB" (or the short "#RGB" form) into an
// opaque color.
func ParseHexColor(s string) (color.NRGBA, error) {
	if s == "" {
		return color.NRGBA{}, fmt.Errorf("empty color string")
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: want #RGB or #RRGGBB", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

// toColorful converts the straight-alpha components directly, so fully
// transparent colors keep their RGB channels.
func toColorful(c color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// BackgroundColor estimates the background color of img from its borders.
//
// Four bands are sampled in this order: top, left, right and bottom. Each
// band spans borderPercent of the image dimension it is cut from, rounded
// down. Every pixel of every band is counted, so corner pixels covered by
// two bands are counted twice. The most frequent color is returned; when
// several colors share the highest count, the one encountered first wins.
//
// Parameters:
//   - img: The source image. It is not modified.
//   - borderPercent: Band size in percent, 0 to 100 inclusive.
//
// # Errors
//
//   - ErrInvalidBorderPercentage if borderPercent is outside [0,100]
//   - ErrNoBorderPixels if the bands are empty (for example borderPercent 0)
func BackgroundColor(img image.Image, borderPercent float64) (color.NRGBA, error) {
	if !(borderPercent >= 0 && borderPercent <= 100) {
		return color.NRGBA{}, fmt.Errorf("%w: got %g", ErrInvalidBorderPercentage, borderPercent)
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	band := func(size int, pct float64) int {
		return int(float64(size) * pct / 100)
	}
	bands := []image.Rectangle{
		image.Rect(0, 0, w, band(h, borderPercent)),
		image.Rect(0, 0, band(w, borderPercent), h),
		image.Rect(band(w, 100-borderPercent), 0, w, h),
		image.Rect(0, band(h, 100-borderPercent), w, h),
	}

	counts := make(map[color.NRGBA]int)
	var order []color.NRGBA
	for _, r := range bands {
		for x := r.Min.X; x < r.Max.X; x++ {
			for y := r.Min.Y; y < r.Max.Y; y++ {
				c := src.NRGBAAt(x, y)
				if counts[c] == 0 {
					order = append(order, c)
				}
				counts[c]++
			}
		}
	}

	if len(order) == 0 {
		return color.NRGBA{}, ErrNoBorderPixels
	}

	best := order[0]
	for _, c := range order[1:] {
		if counts[c] > counts[best] {
			best = c
		}
	}
	return best, nil
}
