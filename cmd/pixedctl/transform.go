package main

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/internal/parallel"
	"github.com/gogpu/pixed/transform"
)

type RotateCmd struct {
	Output `embed:""`

	Angle      float64 `help:"Counter-clockwise rotation in degrees" default:"0"`
	Bilinear   bool    `help:"Interpolate rotated pixels instead of copying the nearest"`
	ScaleX     float64 `help:"Horizontal scale applied with the rotation" default:"1"`
	ScaleY     float64 `help:"Vertical scale applied with the rotation" default:"1"`
	Flip       string  `help:"Mirror the result" enum:"none,horizontal,vertical" default:"none"`
	Background string  `help:"Fill color for uncovered pixels as hex" default:"#00000000"`

	Files []string `arg:"" help:"Image files to process" type:"existingfile"`

	bg pixed.Color `kong:"-"`
}

func (c *RotateCmd) Validate(kctx *kong.Context) error {
	if c.ScaleX <= 0 || c.ScaleY <= 0 {
		return fmt.Errorf("invalid scale %gx%g", c.ScaleX, c.ScaleY)
	}
	var err error
	c.bg, err = parseColor("background", c.Background, pixed.Transparent)
	return err
}

// rotate picks the exact quarter-turn paths when no scaling is involved.
func (c *RotateCmd) rotate(src *pixed.Buffer) (*pixed.Buffer, error) {
	if c.ScaleX != 1 || c.ScaleY != 1 {
		return transform.RotateScale(src, c.Angle*math.Pi/180, c.ScaleX, c.ScaleY, c.bg)
	}
	switch math.Mod(math.Mod(c.Angle, 360)+360, 360) {
	case 0:
		return src, nil
	case 90:
		return transform.Rotate90CCW(src)
	case 180:
		return transform.Rotate180(src)
	case 270:
		return transform.Rotate90CW(src)
	}
	mode := transform.InterpNearest
	if c.Bilinear {
		mode = transform.InterpBilinear
	}
	return transform.Rotate(src, c.Angle*math.Pi/180, c.bg, mode)
}

func (c *RotateCmd) Run(pool *parallel.WorkerPool) error {
	if err := c.prepare(); err != nil {
		return err
	}
	return eachFile(pool, c.Files, func(logger *slog.Logger, name string) error {
		src, _, err := load(name)
		if err != nil {
			return err
		}
		out, err := c.rotate(src)
		if err != nil {
			return fmt.Errorf("could not rotate: %w", err)
		}
		switch c.Flip {
		case "horizontal":
			out, err = transform.FlipHorizontal(out)
		case "vertical":
			out, err = transform.FlipVertical(out)
		}
		if err != nil {
			return fmt.Errorf("could not flip: %w", err)
		}
		logger.Debug("rotated", "angle", c.Angle, "width", out.Width(), "height", out.Height())
		return save(out, c.path(name))
	})
}

type ScaleCmd struct {
	Output `embed:""`

	Width   int    `help:"Target width, 0 to keep the aspect ratio" default:"0"`
	Height  int    `help:"Target height, 0 to keep the aspect ratio" default:"0"`
	Quality string `help:"Resampling quality" enum:"nearest,bilinear,high" default:"bilinear"`

	Files []string `arg:"" help:"Image files to process" type:"existingfile"`
}

func (c *ScaleCmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid height: %d", c.Height)
	case c.Width == 0 && c.Height == 0:
		return fmt.Errorf("no target dimensions given")
	}
	return nil
}

func (c *ScaleCmd) quality() transform.Quality {
	switch c.Quality {
	case "nearest":
		return transform.QualityNearest
	case "high":
		return transform.QualityHigh
	default:
		return transform.QualityBilinear
	}
}

// size fills in a zero dimension from the source aspect ratio.
func (c *ScaleCmd) size(w, h int) (int, int) {
	tw, th := c.Width, c.Height
	if tw == 0 {
		tw = max(1, int(math.Round(float64(w)*float64(th)/float64(h))))
	}
	if th == 0 {
		th = max(1, int(math.Round(float64(h)*float64(tw)/float64(w))))
	}
	return tw, th
}

func (c *ScaleCmd) Run(pool *parallel.WorkerPool) error {
	if err := c.prepare(); err != nil {
		return err
	}
	return eachFile(pool, c.Files, func(logger *slog.Logger, name string) error {
		src, _, err := load(name)
		if err != nil {
			return err
		}
		w, h := c.size(src.Width(), src.Height())
		out, err := transform.Scale(src, w, h, c.quality())
		if err != nil {
			return fmt.Errorf("could not scale to %dx%d: %w", w, h, err)
		}
		logger.Debug("scaled", "width", w, "height", h, "quality", c.Quality)
		return save(out, c.path(name))
	})
}
