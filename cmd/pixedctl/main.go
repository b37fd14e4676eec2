// Command pixedctl applies pixed filters, transforms and analyses to image
// files from the command line.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/internal/parallel"
)

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel string `help:"Log level (debug, info, warn, error)" enum:"debug,info,warn,error" default:"info"`
	MaxBytes int64  `help:"Largest image buffer in bytes, 0 for the library default" env:"PIXED_MAX_BYTES" default:"0"`
	Workers  int    `help:"Files processed concurrently, 0 for one per CPU" default:"0"`
}

type CLI struct {
	Globals `embed:""`

	Filter   FilterCmd   `cmd:"" help:"Apply a registry filter to image files"`
	Rotate   RotateCmd   `cmd:"" help:"Rotate or flip image files"`
	Scale    ScaleCmd    `cmd:"" help:"Resize image files"`
	Autocrop AutoCropCmd `cmd:"" help:"Trim uniform borders from image files"`
	Stats    StatsCmd    `cmd:"" help:"Print color statistics of image files"`
	Spin     SpinCmd     `cmd:"" help:"Render a full rotation of image files as MJPEG clips"`
	Demo     DemoCmd     `cmd:"" help:"Render the rasterizer showcase"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("pixedctl"),
		kong.Description("Raster image editing from the command line."),
		kong.UsageOnError(),
	)

	logger, err := newLogger(cli.LogLevel)
	kctx.FatalIfErrorf(err)
	slog.SetDefault(logger)
	pixed.SetLogger(logger)
	pixed.SetMaxBufferBytes(cli.MaxBytes)

	pool := parallel.NewWorkerPool(cli.Workers)
	defer pool.Close()

	err = kctx.Run(&cli.Globals, pool)
	if err != nil {
		slog.Error("command failed", "command", kctx.Command(), "error", err)
		pool.Close()
		os.Exit(1)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
