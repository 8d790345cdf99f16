package tileset

import (
	"cmp"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

var (
	// ErrEmptyTileSet is returned when no tiles are found to merge.
	ErrEmptyTileSet = errors.New("no images to merge")

	// ErrTileIndexMismatch is matched by every *TileIndexMismatchError.
	ErrTileIndexMismatch = errors.New("tile index does not match its position")
)

// TileIndexMismatchError reports the first tile whose index differs from
// its position in the sorted tile sequence.
type TileIndexMismatchError struct {
	Path  string // Offending tile file
	Index int    // Index parsed from its name
	Want  int    // Index expected at its position
}

func (e *TileIndexMismatchError) Error() string {
	return fmt.Sprintf("image %s has index %d but %d was expected; rename it to match the rest of the tiles",
		e.Path, e.Index, e.Want)
}

// Is makes errors.Is(err, ErrTileIndexMismatch) true.
func (e *TileIndexMismatchError) Is(target error) bool {
	return target == ErrTileIndexMismatch
}

// File is a tile file found on disk.
type File struct {
	Path  string `json:"path"`
	Index int    `json:"index"`
}

// Discover lists the tiles of the image at imagePath.
//
// Tiles are looked up next to the image: for a bare file name that is the
// current working directory. The result is sorted by index; files sharing
// an index keep lexical order. No validation is done here, see Validate.
func Discover(imagePath string) ([]File, error) {
	dir := filepath.Dir(imagePath)
	name, ext := SplitName(imagePath)
	re := Pattern(name, ext)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []File
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		idx, ok := ParseIndex(re, e.Name())
		if !ok {
			continue
		}
		files = append(files, File{Path: filepath.Join(dir, e.Name()), Index: idx})
	}

	slices.SortStableFunc(files, func(a, b File) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return files, nil
}

// Validate checks that files, sorted by index, are numbered 0 through
// len(files)-1.
//
// # Errors
//
//   - ErrEmptyTileSet if files is empty
//   - *TileIndexMismatchError naming the first file out of place
func Validate(files []File) error {
	if len(files) == 0 {
		return ErrEmptyTileSet
	}
	for i, f := range files {
		if f.Index != i {
			return &TileIndexMismatchError{Path: f.Path, Index: f.Index, Want: i}
		}
	}
	return nil
}

// Paths returns the paths of files in order.
func Paths(files []File) []string {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.Path
	}
	return paths
}
