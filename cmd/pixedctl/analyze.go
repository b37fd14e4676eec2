package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/pixed/analysis"
	"github.com/gogpu/pixed/internal/parallel"
)

type AutoCropCmd struct {
	Output `embed:""`

	Candidate int  `help:"Which crop candidate to keep (0 or 1)" default:"0"`
	DryRun    bool `help:"Only report the candidates"`

	Files []string `arg:"" help:"Image files to process" type:"existingfile"`
}

func (c *AutoCropCmd) Run(pool *parallel.WorkerPool) error {
	if !c.DryRun {
		if err := c.prepare(); err != nil {
			return err
		}
	}
	return eachFile(pool, c.Files, func(logger *slog.Logger, name string) error {
		src, _, err := load(name)
		if err != nil {
			return err
		}
		crops := analysis.AutoCrop(src)
		for i, cr := range crops {
			logger.Info("crop candidate", "index", i, "background", cr.Background, "rect", cr.Rect)
		}
		if c.DryRun {
			return nil
		}
		if c.Candidate < 0 || c.Candidate >= len(crops) {
			logger.Info("nothing to crop", "candidates", len(crops))
			return nil
		}
		out, err := src.SubBitmap(crops[c.Candidate].Rect)
		if err != nil {
			return fmt.Errorf("could not crop: %w", err)
		}
		return save(out, c.path(name))
	})
}

type StatsCmd struct {
	Files []string `arg:"" help:"Image files to inspect" type:"existingfile"`

	out io.Writer `kong:"-"`
	mu  sync.Mutex `kong:"-"`
}

func (c *StatsCmd) Run(pool *parallel.WorkerPool) error {
	if c.out == nil {
		c.out = os.Stdout
	}
	return eachFile(pool, c.Files, func(_ *slog.Logger, name string) error {
		src, kind, err := load(name)
		if err != nil {
			return err
		}
		report := statsReport(name, kind, src.Width(), src.Height(),
			analysis.ComputeHistogram(src), analysis.CountColors(src))

		c.mu.Lock()
		defer c.mu.Unlock()
		_, err = io.WriteString(c.out, report)
		return err
	})
}

// statsPrinter groups digits of the pixel counts.
var statsPrinter = message.NewPrinter(language.English)

func statsReport(name, kind string, w, h int, hist *analysis.Histogram, cc *analysis.ColorCounts) string {
	r, g, b, a := hist.Mean()
	common, n := cc.MostCommon()
	return fmt.Sprintf("%s: %s %dx%d\n", name, kind, w, h) +
		statsPrinter.Sprintf("  mean       r=%.1f g=%.1f b=%.1f a=%.1f\n"+
			"  distinct   %d\n"+
			"  most used  %v (%d px, %.1f%%)\n",
			r, g, b, a,
			cc.Distinct(),
			common, n, 100*float64(n)/float64(hist.Total()))
}
