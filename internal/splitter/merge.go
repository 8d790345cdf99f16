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

// Reverse rebuilds the image at path from its tiles.
//
// Tiles named <name>_<N><ext> are looked up next to path and must be
// numbered 0 through n-1. Any gap aborts the merge before a tile is
// opened, and nothing is written. The merged image is saved at path.
func (s *Splitter) Reverse(path string) error {
	files, err := tileset.Discover(path)
	if err != nil {
		return err
	}
	if err := tileset.Validate(files); err != nil {
		return err
	}
	return s.MergeFiles(tileset.Paths(files), path)
}

// MergeFiles merges the tiles at paths, given in row-major order, and
// saves the result at out. With Cleanup set the tiles are removed
// afterwards.
func (s *Splitter) MergeFiles(paths []string, out string) error {
	if len(paths) == 0 {
		return tileset.ErrEmptyTileSet
	}

	grid := s.Grid()
	if err := grid.Validate(); err != nil {
		return err
	}

	tiles := make([]image.Image, 0, len(paths))
	for _, p := range paths {
		img, err := s.decoder.Open(p)
		if err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
		tiles = append(tiles, img)
	}

	s.log.Info("Merging image tiles with the following layout:")
	for row := 0; row < grid.Rows; row++ {
		start := row * grid.Cols
		if start >= len(paths) {
			break
		}
		end := min(start+grid.Cols, len(paths))
		names := make([]string, 0, end-start)
		for _, p := range paths[start:end] {
			names = append(names, filepath.Base(p))
		}
		s.log.Info(strings.Join(names, " "))
	}

	merged, err := imaging.Merge(tiles, grid)
	if err != nil {
		return err
	}

	s.log.Info("Saving merged image: " + out)
	if err := imaging.Save(merged, out, s.opts.JPEGQuality); err != nil {
		return err
	}

	if s.opts.Cleanup {
		for _, p := range paths {
			s.log.Info("Cleaning up: " + p)
			if err := os.Remove(p); err != nil {
				return fmt.Errorf("failed to remove tile: %w", err)
			}
		}
	}
	return nil
}
