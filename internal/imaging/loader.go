package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultMaxPixels is the pixel count above which decoding is refused
// unless the guard is disabled. It is twice the common 89478485 pixel
// decompression-bomb warning threshold.
const DefaultMaxPixels = 178956970

// ErrImageTooLarge is returned when an image header announces more pixels
// than the decoder allows.
var ErrImageTooLarge = errors.New("image exceeds pixel limit")

// Decoder opens images from disk.
//
// The decompression-bomb guard is carried per Decoder rather than as a
// package-level switch, so one caller can load large images without
// affecting any other.
type Decoder struct {
	// MaxPixels is the largest width*height accepted. Zero or negative
	// disables the guard.
	MaxPixels int
}

// NewDecoder returns a Decoder with the default pixel guard.
// When loadLarge is true the guard is disabled.
func NewDecoder(loadLarge bool) *Decoder {
	if loadLarge {
		return &Decoder{}
	}
	return &Decoder{MaxPixels: DefaultMaxPixels}
}

// Open decodes the image at path.
//
// The header is read first so oversized images are rejected before any
// pixel buffer is allocated. EXIF orientation is applied for JPEG input.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a decodable image
//   - Returns ErrImageTooLarge if the pixel guard trips
func (d *Decoder) Open(path string) (image.Image, error) {
	if err := d.checkSize(path); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

func (d *Decoder) checkSize(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("failed to decode image header: %w", err)
	}

	if d == nil || d.MaxPixels <= 0 {
		return nil
	}
	if pixels := cfg.Width * cfg.Height; pixels > d.MaxPixels {
		return fmt.Errorf("%w: %s has %d pixels, limit is %d", ErrImageTooLarge, path, pixels, d.MaxPixels)
	}
	return nil
}

// ImageInfo contains metadata about an image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the detected image format: "png", "jpeg", "gif", "bmp" or "unknown".
	// Detection is based on file extension, not file contents.
	Format string `json:"format"`

	// HasAlpha indicates whether the decoded image has an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo decodes an image and returns its metadata.
func LoadImageInfo(d *Decoder, path string) (*ImageInfo, error) {
	img, err := d.Open(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	hasAlpha := false
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64:
		hasAlpha = true
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        FormatFromPath(path),
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}

// FormatFromPath maps a file extension to a format name.
//
//   - ".png" -> "png"
//   - ".jpg", ".jpeg" -> "jpeg"
//   - ".gif" -> "gif"
//   - ".bmp" -> "bmp"
//   - Other extensions -> "unknown"
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	}
	return "unknown"
}
