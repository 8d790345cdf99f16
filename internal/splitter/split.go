package splitter

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/split-image/internal/imaging"
	"github.com/ironsheep/split-image/internal/tileset"
)

// SplitResult lists the files written for one source image.
type SplitResult struct {
	Source  string   `json:"source"`
	Squared string   `json:"squared,omitempty"`
	Tiles   []string `json:"tiles"`
}

// SplitFile splits the image at path into tiles.
//
// With Square set, the image is first padded to a square and that
// intermediate is saved as <name>_squared<ext>. Tiles are written as
// <name>_<index><ext>. Tiles already written stay on disk if a later
// tile fails.
func (s *Splitter) SplitFile(path string) (*SplitResult, error) {
	img, err := s.decoder.Open(path)
	if err != nil {
		return nil, err
	}

	name, ext := tileset.SplitName(path)
	outDir := s.outputDir()
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &SplitResult{Source: path}

	if s.opts.Square {
		squared, err := s.square(img)
		if err != nil {
			return nil, err
		}
		s.log.Info("Exporting resized image...")
		result.Squared = filepath.Join(outDir, tileset.SquaredName(name, ext))
		if err := imaging.Save(squared, result.Squared, s.opts.JPEGQuality); err != nil {
			return nil, err
		}
		img = squared
	}

	tiles, err := imaging.Split(img, s.Grid())
	if err != nil {
		return nil, err
	}

	for _, t := range tiles {
		out := filepath.Join(outDir, tileset.TileName(name, t.Index, ext, s.opts.Pad))
		s.log.WithField("row", t.Row).WithField("col", t.Col).Info("Exporting image tile: " + out)
		if err := imaging.Save(t.Image, out, s.opts.JPEGQuality); err != nil {
			return nil, err
		}
		result.Tiles = append(result.Tiles, out)
	}

	if s.opts.Cleanup {
		s.log.Info("Cleaning up: " + path)
		if err := os.Remove(path); err != nil {
			return nil, fmt.Errorf("failed to remove source image: %w", err)
		}
	}
	return result, nil
}

func (s *Splitter) square(img image.Image) (image.Image, error) {
	s.log.Info("Resizing image to a square...")

	bg := s.opts.Background
	if bg == nil {
		s.log.Info("Determining background color...")
		c, err := imaging.BackgroundColor(img, s.opts.BorderPercent)
		if err != nil {
			return nil, err
		}
		bg = &c
	}
	s.log.Info("Background color is... " + imaging.HexColor(*bg))

	return imaging.Square(img, *bg), nil
}

// SplitDir splits every .jpg, .jpeg and .png file directly inside dir,
// one at a time in directory listing order. The first failure stops the
// run; images already split keep their tiles.
func (s *Splitter) SplitDir(dir string) ([]*SplitResult, error) {
	s.log.Info("Splitting all images in directory: " + dir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var results []*SplitResult
	for _, e := range entries {
		if e.IsDir() || !isSplittable(e.Name()) {
			continue
		}
		r, err := s.SplitFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return results, fmt.Errorf("%s: %w", e.Name(), err)
		}
		results = append(results, r)
	}
	return results, nil
}

func isSplittable(name string) bool {
	for _, suffix := range []string{".jpg", ".jpeg", ".png"} {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

func (s *Splitter) outputDir() string {
	if s.opts.OutputDir == "" {
		return "."
	}
	return s.opts.OutputDir
}
