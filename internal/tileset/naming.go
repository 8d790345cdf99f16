package tileset

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultPad is the default zero-pad width of tile indices.
const DefaultPad = 5

// SplitName splits a path into its base name without extension and its
// extension (including the dot).
//
//	SplitName("photos/cat.png") == ("cat", ".png")
func SplitName(path string) (name, ext string) {
	base := filepath.Base(path)
	ext = filepath.Ext(base)
	return strings.TrimSuffix(base, ext), ext
}

// TileName returns the file name of tile index for an image named
// name+ext. A pad of zero or less disables zero padding.
func TileName(name string, index int, ext string, pad int) string {
	if pad > 0 {
		return fmt.Sprintf("%s_%0*d%s", name, pad, index, ext)
	}
	return fmt.Sprintf("%s_%d%s", name, index, ext)
}

// SquaredName returns the file name of the squared intermediate image.
func SquaredName(name, ext string) string {
	return name + "_squared" + ext
}

// Pattern returns the expression matching tile file names of name+ext.
func Pattern(name, ext string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(name) + `_(\d+)` + regexp.QuoteMeta(ext) + `$`)
}

// ParseIndex extracts the tile index from a file name matched by re.
func ParseIndex(re *regexp.Regexp, fileName string) (int, bool) {
	m := re.FindStringSubmatch(fileName)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
