package splitter

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/split-image/internal/imaging"
	"github.com/ironsheep/split-image/internal/tileset"
)

// writeTiles splits src with grid and writes unpadded tiles into dir.
func writeTiles(t *testing.T, dir, name string, src image.Image, grid imaging.Grid) []string {
	t.Helper()
	tiles, err := imaging.Split(src, grid)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	paths := make([]string, len(tiles))
	for i, tile := range tiles {
		paths[i] = writePNG(t, dir, tileset.TileName(name, tile.Index, ".png", 0), tile.Image)
	}
	return paths
}

func TestReverse(t *testing.T) {
	dir := t.TempDir()
	src := createGradientImage(30, 20)
	grid := imaging.Grid{Rows: 2, Cols: 3}
	writeTiles(t, dir, "img", src, grid)

	opts := DefaultOptions()
	opts.Rows, opts.Cols = grid.Rows, grid.Cols
	s, hook := newTestSplitter(opts)

	out := filepath.Join(dir, "img.png")
	if err := s.Reverse(out); err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}

	assertSamePixels(t, readNRGBA(t, out), src)

	if len(messages(hook, "Saving merged image: ")) != 1 {
		t.Error("save should be reported")
	}
	// Layout: one line per row after the header
	if got := messages(hook, "img_3.png img_4.png img_5.png"); len(got) != 1 {
		t.Errorf("second layout row not logged: %v", hook.AllEntries())
	}
}

func TestReverse_ManyTilesNumericOrder(t *testing.T) {
	dir := t.TempDir()
	src := createGradientImage(48, 12)
	grid := imaging.Grid{Rows: 1, Cols: 12}
	writeTiles(t, dir, "strip", src, grid)

	opts := DefaultOptions()
	opts.Rows, opts.Cols = grid.Rows, grid.Cols
	s, _ := newTestSplitter(opts)

	out := filepath.Join(dir, "strip.png")
	if err := s.Reverse(out); err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	// strip_10.png sorts lexically before strip_2.png; merge must not
	assertSamePixels(t, readNRGBA(t, out), src)
}

func TestReverse_MissingTile(t *testing.T) {
	dir := t.TempDir()
	red := createGradientImage(10, 10)
	writePNG(t, dir, "img_0.png", red)
	writePNG(t, dir, "img_2.png", red)

	opts := DefaultOptions()
	opts.Rows, opts.Cols = 1, 2
	s, _ := newTestSplitter(opts)

	out := filepath.Join(dir, "img.png")
	err := s.Reverse(out)
	if !errors.Is(err, tileset.ErrTileIndexMismatch) {
		t.Fatalf("got %v, want ErrTileIndexMismatch", err)
	}

	var mismatch *tileset.TileIndexMismatchError
	if errors.As(err, &mismatch) && filepath.Base(mismatch.Path) != "img_2.png" {
		t.Errorf("offending file: got %s, want img_2.png", mismatch.Path)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output should be written when validation fails")
	}
}

func TestReverse_EmptyTileSet(t *testing.T) {
	s, _ := newTestSplitter(DefaultOptions())

	err := s.Reverse(filepath.Join(t.TempDir(), "img.png"))
	if !errors.Is(err, tileset.ErrEmptyTileSet) {
		t.Errorf("got %v, want ErrEmptyTileSet", err)
	}
}

func TestReverse_Cleanup(t *testing.T) {
	dir := t.TempDir()
	paths := writeTiles(t, dir, "img", createGradientImage(20, 20), imaging.Grid{Rows: 2, Cols: 2})

	opts := DefaultOptions()
	opts.Cleanup = true
	s, _ := newTestSplitter(opts)

	if err := s.Reverse(filepath.Join(dir, "img.png")); err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	for _, p := range paths {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("%s should be removed", p)
		}
	}
}

func TestMergeFiles_TileSizeMismatch(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", createGradientImage(10, 10))
	b := writePNG(t, dir, "b.png", createGradientImage(12, 10))

	opts := DefaultOptions()
	opts.Rows, opts.Cols = 1, 2
	s, _ := newTestSplitter(opts)

	out := filepath.Join(dir, "out.png")
	if err := s.MergeFiles([]string{a, b}, out); !errors.Is(err, imaging.ErrTileSizeMismatch) {
		t.Errorf("got %v, want ErrTileSizeMismatch", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("no output should be written")
	}
}

func TestMergeFiles_WrongTileCount(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", createGradientImage(10, 10))

	s, _ := newTestSplitter(DefaultOptions())

	err := s.MergeFiles([]string{a}, filepath.Join(dir, "out.png"))
	if !errors.Is(err, imaging.ErrInvalidGridDimensions) {
		t.Errorf("got %v, want ErrInvalidGridDimensions", err)
	}
}

func TestMergeFiles_PlacesRowMajor(t *testing.T) {
	dir := t.TempDir()
	colors := []color.NRGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
	}
	var paths []string
	for i, c := range colors {
		img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
		for y := 0; y < 5; y++ {
			for x := 0; x < 5; x++ {
				img.SetNRGBA(x, y, c)
			}
		}
		paths = append(paths, writePNG(t, dir, tileset.TileName("q", i, ".png", 0), img))
	}

	s, _ := newTestSplitter(DefaultOptions())
	out := filepath.Join(dir, "q.png")
	if err := s.MergeFiles(paths, out); err != nil {
		t.Fatalf("MergeFiles failed: %v", err)
	}

	merged := readNRGBA(t, out)
	checks := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, colors[0]},
		{9, 0, colors[1]},
		{0, 9, colors[2]},
		{9, 9, colors[3]},
	}
	for _, c := range checks {
		if got := merged.NRGBAAt(c.x, c.y); got != c.want {
			t.Errorf("(%d,%d): got %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestReverse_TIFF(t *testing.T) {
	dir := t.TempDir()
	src := createGradientImage(16, 16)
	tiles, err := imaging.Split(src, imaging.Grid{Rows: 2, Cols: 2})
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	for _, tile := range tiles {
		p := filepath.Join(dir, tileset.TileName("scan", tile.Index, ".tif", 0))
		if err := imaging.Save(tile.Image, p, 0); err != nil {
			t.Fatalf("failed to write %s: %v", p, err)
		}
	}

	s, _ := newTestSplitter(DefaultOptions())
	out := filepath.Join(dir, "scan.tif")
	if err := s.Reverse(out); err != nil {
		t.Fatalf("Reverse failed: %v", err)
	}
	assertSamePixels(t, readNRGBA(t, out), src)
}
