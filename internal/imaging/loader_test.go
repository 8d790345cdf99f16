package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// createTestImage creates a simple test image file and returns its path.
// The caller is responsible for removing the file.
func createTestImage(t *testing.T, width, height int, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	tmpFile, err := os.CreateTemp("", "test-image-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer tmpFile.Close()

	if err := png.Encode(tmpFile, img); err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to encode image: %v", err)
	}

	return tmpFile.Name()
}

func TestNewDecoder(t *testing.T) {
	if d := NewDecoder(false); d.MaxPixels != DefaultMaxPixels {
		t.Errorf("MaxPixels: got %d, want %d", d.MaxPixels, DefaultMaxPixels)
	}
	if d := NewDecoder(true); d.MaxPixels != 0 {
		t.Errorf("MaxPixels with large images: got %d, want 0", d.MaxPixels)
	}
}

func TestDecoder_Open(t *testing.T) {
	imgPath := createTestImage(t, 100, 80, color.RGBA{255, 0, 0, 255})
	defer os.Remove(imgPath)

	img, err := NewDecoder(false).Open(imgPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 80 {
		t.Errorf("unexpected dimensions: got %dx%d, want 100x80", bounds.Dx(), bounds.Dy())
	}
}

func TestDecoder_Open_NonExistent(t *testing.T) {
	_, err := NewDecoder(false).Open("/nonexistent/path/to/image.png")
	if err == nil {
		t.Error("Open should fail for non-existent file")
	}
}

func TestDecoder_Open_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewDecoder(false).Open(path); err == nil {
		t.Error("Open should fail for invalid image data")
	}
}

func TestDecoder_PixelGuard(t *testing.T) {
	imgPath := createTestImage(t, 20, 20, color.RGBA{0, 0, 255, 255})
	defer os.Remove(imgPath)

	tests := []struct {
		name      string
		maxPixels int
		wantErr   bool
	}{
		{"below limit", 401, false},
		{"at limit", 400, false},
		{"above limit", 399, true},
		{"disabled", 0, false},
		{"negative disables", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := &Decoder{MaxPixels: tt.maxPixels}
			_, err := d.Open(imgPath)
			if tt.wantErr {
				if !errors.Is(err, ErrImageTooLarge) {
					t.Errorf("got %v, want ErrImageTooLarge", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Open failed: %v", err)
			}
		})
	}
}

func TestDecoder_GuardIsPerDecoder(t *testing.T) {
	imgPath := createTestImage(t, 20, 20, color.RGBA{0, 0, 255, 255})
	defer os.Remove(imgPath)

	strict := &Decoder{MaxPixels: 10}
	loose := NewDecoder(true)

	if _, err := loose.Open(imgPath); err != nil {
		t.Errorf("loose decoder failed: %v", err)
	}
	if _, err := strict.Open(imgPath); !errors.Is(err, ErrImageTooLarge) {
		t.Errorf("strict decoder: got %v, want ErrImageTooLarge", err)
	}
}

func TestLoadImageInfo(t *testing.T) {
	imgPath := createTestImage(t, 200, 150, color.RGBA{0, 255, 0, 255})
	defer os.Remove(imgPath)

	info, err := LoadImageInfo(NewDecoder(false), imgPath)
	if err != nil {
		t.Fatalf("LoadImageInfo failed: %v", err)
	}

	if info.Width != 200 || info.Height != 150 {
		t.Errorf("dimensions: got %dx%d, want 200x150", info.Width, info.Height)
	}
	if info.Format != "png" {
		t.Errorf("Format: got %s, want png", info.Format)
	}
	if info.FileSizeBytes <= 0 {
		t.Errorf("FileSizeBytes should be positive, got %d", info.FileSizeBytes)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"a.png", "png"},
		{"a.PNG", "png"},
		{"a.jpg", "jpeg"},
		{"a.jpeg", "jpeg"},
		{"a.gif", "gif"},
		{"a.bmp", "bmp"},
		{"a.webp", "unknown"},
		{"noext", "unknown"},
	}

	for _, tt := range tests {
		if got := FormatFromPath(tt.path); got != tt.want {
			t.Errorf("FormatFromPath(%q): got %s, want %s", tt.path, got, tt.want)
		}
	}
}
