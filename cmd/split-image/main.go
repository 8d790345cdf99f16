package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/ironsheep/split-image/internal/imaging"
	"github.com/ironsheep/split-image/internal/splitter"
	"github.com/sirupsen/logrus"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Split an image into rows and columns, or merge the tiles of a split image back into one.`

type cli struct {
	ImagePath string `arg:"" name:"image_path" help:"The path to the image or directory with images to process."`
	Rows      int    `arg:"" optional:"" default:"2" help:"How many rows to split the image into (horizontal split)."`
	Cols      int    `arg:"" optional:"" default:"2" help:"How many columns to split the image into (vertical split)."`

	Square          bool   `short:"s" help:"Pad the image to a square before splitting."`
	Reverse         bool   `short:"r" help:"Reverse the splitting process, i.e. merge the tiles found next to image_path into one image saved at image_path."`
	Cleanup         bool   `help:"After splitting or merging, delete the original image/images."`
	LoadLargeImages bool   `name:"load-large-images" help:"Ignore the decompression bomb protection and load all large files."`
	OutputDir       string `name:"output-dir" placeholder:"PATH" help:"Output directory for image tiles (e.g. 'outp/images'). Defaults to the current working directory."`
	Quiet           bool   `help:"Run without printing progress messages."`

	Pad           int     `default:"5" help:"Zero-pad width of tile indices, 0 disables padding."`
	BorderPercent float64 `name:"border-percent" default:"10" help:"Border band size, in percent, sampled to find the square background color."`
	Background    string  `placeholder:"HEX" help:"Fill color for --square (e.g. '#FFFFFF'), skips background detection."`
	JPEGQuality   int     `name:"jpeg-quality" default:"95" help:"Quality of JPEG output (1-100)."`
	LogLevel      string  `name:"log-level" default:"info" enum:"debug,info,warn,error" env:"SPLIT_IMAGE_LOG_LEVEL" help:"Log level (${enum})."`

	Version kong.VersionFlag `short:"v" help:"Print version information."`
}

// Validate is called by kong after parsing.
func (c *cli) Validate() error {
	if c.Rows <= 0 || c.Cols <= 0 {
		return fmt.Errorf("rows and columns must be positive, got %dx%d", c.Rows, c.Cols)
	}
	if c.Pad < 0 {
		return fmt.Errorf("--pad must not be negative")
	}
	if !(c.BorderPercent >= 0 && c.BorderPercent <= 100) {
		return fmt.Errorf("--border-percent must be between 0 and 100, got %g", c.BorderPercent)
	}
	return nil
}

func (c *cli) options() (splitter.Options, error) {
	opts := splitter.DefaultOptions()
	opts.Rows = c.Rows
	opts.Cols = c.Cols
	opts.Square = c.Square
	opts.Reverse = c.Reverse
	opts.Cleanup = c.Cleanup
	opts.OutputDir = c.OutputDir
	opts.LoadLargeImages = c.LoadLargeImages
	opts.Pad = c.Pad
	opts.BorderPercent = c.BorderPercent
	opts.JPEGQuality = c.JPEGQuality

	if c.Background != "" {
		bg, err := imaging.ParseHexColor(c.Background)
		if err != nil {
			return opts, err
		}
		opts.Background = &bg
	}
	return opts, nil
}

func newLogger(level string, quiet bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	if quiet && lvl > logrus.WarnLevel {
		lvl = logrus.WarnLevel
	}
	log.SetLevel(lvl)
	return log
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("split-image"),
		kong.Description(description),
		kong.UsageOnError(),
		kong.Vars{"version": fmt.Sprintf("split-image %s (built %s, commit %s)", Version, BuildTime, GitCommit)},
	)

	log := newLogger(c.LogLevel, c.Quiet)
	log.Debugf("split-image %s (built %s, commit %s)", Version, BuildTime, GitCommit)

	opts, err := c.options()
	ctx.FatalIfErrorf(err)

	if err := splitter.New(opts, log).Run(c.ImagePath); err != nil {
		log.Error("Error: " + err.Error())
		if splitter.IsSoftFailure(err) {
			return
		}
		os.Exit(1)
	}

	log.Info("Done!")
}
