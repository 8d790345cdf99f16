package imaging

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is used when no JPEG quality is configured.
const DefaultJPEGQuality = 95

// ErrUnsupportedFormat is returned when no encoder exists for an output extension.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// OutputFormat maps an output path to its format by extension, case-insensitive.
// Accepted extensions are .jpg, .jpeg, .png, .gif, .tif, .tiff and .bmp.
func OutputFormat(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	return f, nil
}

// encoder returns the bild codec for f. GIF and TIFF have none.
func encoder(f imaging.Format, jpegQuality int) (imgio.Encoder, bool) {
	switch f {
	case imaging.PNG:
		return imgio.PNGEncoder(), true
	case imaging.JPEG:
		return imgio.JPEGEncoder(jpegQuality), true
	case imaging.BMP:
		return imgio.BMPEncoder(), true
	}
	return nil, false
}

// Save encodes img to path in the format named by its extension, creating
// the parent directory when needed. An existing file at path is
// overwritten.
//
// Only PNG, BMP and TIFF are lossless. JPEG output will not merge back bit
// for bit, and GIF output is reduced to a 256 color palette.
func Save(img image.Image, path string, jpegQuality int) error {
	format, err := OutputFormat(path)
	if err != nil {
		return err
	}
	if jpegQuality <= 0 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if enc, ok := encoder(format, jpegQuality); ok {
		err = imgio.Save(path, img, enc)
	} else {
		err = imaging.Save(img, path, imaging.JPEGQuality(jpegQuality))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
