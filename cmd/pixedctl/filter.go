package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/filter"
	"github.com/gogpu/pixed/internal/parallel"
)

type FilterCmd struct {
	Output `embed:""`

	Kind       string  `help:"Filter to apply" enum:"none,stroke-outline,blur,pixelize,pinch-whirl,invert,drop-shadow" required:""`
	Radius     float64 `help:"Blur and shadow sigma, or pinch-whirl radius" default:"2"`
	Width      int     `help:"Outline width in pixels" default:"2"`
	Size       int     `help:"Pixelize block size" default:"8"`
	Color      string  `help:"Outline or shadow color as hex" default:"#000000"`
	OffsetX    int     `help:"Shadow horizontal offset" default:"4"`
	OffsetY    int     `help:"Shadow vertical offset" default:"4"`
	Pinch      float64 `help:"Pinch amount in [-1, 1]" default:"0"`
	Whirl      float64 `help:"Whirl angle in radians" default:"0"`
	Background string  `help:"Background color for samples outside the image" default:"#00000000"`
	Region     string  `help:"Only filter this rectangle, given as x,y,w,h"`

	Files []string `arg:"" help:"Image files to process" type:"existingfile"`

	filter filter.Filter `kong:"-"`
	region pixed.Rect    `kong:"-"`
}

func (c *FilterCmd) Validate(kctx *kong.Context) error {
	kind, err := filter.ParseKind(c.Kind)
	if err != nil {
		return err
	}
	p := filter.Params{
		Radius: c.Radius,
		Width:  c.Width,
		Size:   c.Size,
		Offset: pixed.Pt(c.OffsetX, c.OffsetY),
		Pinch:  c.Pinch,
		Whirl:  c.Whirl,
	}
	if p.Color, err = parseColor("color", c.Color, pixed.Black); err != nil {
		return err
	}
	if p.Background, err = parseColor("background", c.Background, pixed.Transparent); err != nil {
		return err
	}
	if c.filter, err = filter.New(kind, p); err != nil {
		return fmt.Errorf("invalid %s parameters: %w", kind, err)
	}
	if strings.TrimSpace(c.Region) != "" {
		if c.region, err = parseRect(c.Region); err != nil {
			return err
		}
	}
	return nil
}

func (c *FilterCmd) Run(pool *parallel.WorkerPool) error {
	if err := c.prepare(); err != nil {
		return err
	}
	return eachFile(pool, c.Files, func(logger *slog.Logger, name string) error {
		src, _, err := load(name)
		if err != nil {
			return err
		}
		var out *pixed.Buffer
		if c.region.Empty() {
			out, err = c.filter.Apply(src)
		} else {
			out = src
			err = filter.ApplyRegion(out, c.region, c.filter)
		}
		if err != nil {
			return fmt.Errorf("could not apply %s: %w", c.filter.Kind, err)
		}
		dest := c.path(name)
		logger.Debug("filtered", "kind", c.filter.Kind, "padding", c.filter.Padding, "dest", dest)
		return save(out, dest)
	})
}
