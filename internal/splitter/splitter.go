package splitter

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"

	"github.com/ironsheep/split-image/internal/imaging"
	"github.com/ironsheep/split-image/internal/tileset"
	"github.com/sirupsen/logrus"
)

var (
	// ErrPathNotFound is returned when the input path does not exist.
	ErrPathNotFound = errors.New("image path does not exist")

	// ErrReverseDirectory is returned when reverse mode is asked to merge a directory.
	ErrReverseDirectory = errors.New("cannot reverse split a directory of images")
)

// Options configures a Splitter.
type Options struct {
	Rows int
	Cols int

	// Square pads each image to a square before splitting.
	Square bool

	// Reverse merges tiles back into the image instead of splitting it.
	Reverse bool

	// Cleanup removes the source image after a split, or the tiles after
	// a merge.
	Cleanup bool

	// OutputDir receives tiles and squared images. Empty means the
	// current working directory.
	OutputDir string

	// Pad is the zero-pad width of tile indices; 0 disables padding.
	Pad int

	// BorderPercent is the border band size used to estimate the
	// square fill color.
	BorderPercent float64

	// Background, when set, is used as the square fill color instead of
	// the estimate.
	Background *color.NRGBA

	// LoadLargeImages disables the decompression-bomb pixel guard.
	LoadLargeImages bool

	// JPEGQuality is the encoder quality, 1 to 100, for .jpg and .jpeg
	// outputs. Other values fall back to imaging.DefaultJPEGQuality.
	JPEGQuality int
}

// DefaultOptions returns the options the CLI starts from.
func DefaultOptions() Options {
	return Options{
		Rows:          2,
		Cols:          2,
		Pad:           tileset.DefaultPad,
		BorderPercent: imaging.DefaultBorderPercent,
		JPEGQuality:   imaging.DefaultJPEGQuality,
	}
}

// Splitter splits images into tiles and merges tiles back.
//
// A Splitter processes one image at a time and keeps nothing between
// images. It is not safe for concurrent use.
type Splitter struct {
	opts    Options
	decoder *imaging.Decoder
	log     logrus.FieldLogger
}

// New creates a Splitter. A nil logger discards progress messages.
func New(opts Options, log logrus.FieldLogger) *Splitter {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Splitter{
		opts:    opts,
		decoder: imaging.NewDecoder(opts.LoadLargeImages),
		log:     log,
	}
}

// Grid returns the configured grid.
func (s *Splitter) Grid() imaging.Grid {
	return imaging.Grid{Rows: s.opts.Rows, Cols: s.opts.Cols}
}

// Run dispatches on path: a directory is split file by file, a file is
// split or, in reverse mode, rebuilt from its tiles.
func (s *Splitter) Run(path string) error {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if err != nil {
		return err
	}

	if info.IsDir() {
		if s.opts.Reverse {
			return ErrReverseDirectory
		}
		_, err := s.SplitDir(path)
		return err
	}

	if s.opts.Reverse {
		s.log.Info("Reverse mode selected! Will try to merge multiple tiles of an image into one.")
		return s.Reverse(path)
	}
	_, err = s.SplitFile(path)
	return err
}

// IsSoftFailure reports whether err is one of the conditions the command
// line reports without a failing exit status: a missing path, a reverse
// request on a directory, an empty tile set or misnumbered tiles.
func IsSoftFailure(err error) bool {
	return errors.Is(err, ErrPathNotFound) ||
		errors.Is(err, ErrReverseDirectory) ||
		errors.Is(err, tileset.ErrEmptyTileSet) ||
		errors.Is(err, tileset.ErrTileIndexMismatch)
}
