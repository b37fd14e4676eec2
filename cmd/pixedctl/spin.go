package main

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"log/slog"
	"math"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/icza/mjpeg"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/internal/parallel"
	"github.com/gogpu/pixed/transform"
)

// SpinCmd renders a full turn of an image as a Motion-JPEG AVI clip.
type SpinCmd struct {
	Dest       string `help:"Destination folder for clips" default:"out" type:"path"`
	Frames     int    `help:"Frames per full turn" default:"36"`
	FPS        int    `help:"Playback rate" default:"12"`
	Quality    int    `help:"JPEG quality of each frame" default:"90"`
	Bilinear   bool   `help:"Interpolate rotated pixels"`
	Background string `help:"Fill color around the rotated image as hex" default:"#000000"`

	Files []string `arg:"" help:"Image files to animate" type:"existingfile"`

	bg pixed.Color `kong:"-"`
}

func (c *SpinCmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Frames < 1:
		return fmt.Errorf("invalid frame count: %d", c.Frames)
	case c.FPS < 1:
		return fmt.Errorf("invalid frame rate: %d", c.FPS)
	case c.Quality < 1 || c.Quality > 100:
		return fmt.Errorf("invalid jpeg quality: %d", c.Quality)
	}
	var err error
	c.bg, err = parseColor("background", c.Background, pixed.Black)
	return err
}

// frames returns every rotation step of src on a canvas large enough for
// all of them, so the clip keeps one size.
func (c *SpinCmd) frames(src *pixed.Buffer) ([]*pixed.Buffer, error) {
	diag := int(math.Ceil(math.Hypot(float64(src.Width()), float64(src.Height()))))
	mode := transform.InterpNearest
	if c.Bilinear {
		mode = transform.InterpBilinear
	}

	out := make([]*pixed.Buffer, c.Frames)
	for i := range c.Frames {
		rot, err := transform.Rotate(src, 2*math.Pi*float64(i)/float64(c.Frames), c.bg, mode)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frame, err := pixed.NewFilled(diag, diag, c.bg)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		pixed.Blit(frame, rot, pixed.Pt((diag-rot.Width())/2, (diag-rot.Height())/2))
		out[i] = frame
	}
	return out, nil
}

func (c *SpinCmd) Run(pool *parallel.WorkerPool) error {
	out := Output{Dest: c.Dest}
	if err := out.prepare(); err != nil {
		return err
	}
	return eachFile(pool, c.Files, func(logger *slog.Logger, name string) error {
		src, _, err := load(name)
		if err != nil {
			return err
		}
		frames, err := c.frames(src)
		if err != nil {
			return err
		}
		base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
		dest := filepath.Join(c.Dest, base+".avi")
		if err := writeClip(dest, frames, c.FPS, c.Quality); err != nil {
			return err
		}
		logger.Debug("spin clip written", "dest", dest, "frames", len(frames))
		return nil
	})
}

// writeClip encodes frames as JPEGs into an MJPEG AVI file.
func writeClip(name string, frames []*pixed.Buffer, fps, quality int) (err error) {
	if len(frames) == 0 {
		return fmt.Errorf("no frames for %q", name)
	}
	w, h := frames[0].Width(), frames[0].Height()
	aw, err := mjpeg.New(name, int32(w), int32(h), int32(fps))
	if err != nil {
		return fmt.Errorf("could not create clip %q: %w", name, err)
	}
	defer func() {
		if cerr := aw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not finish clip %q: %w", name, cerr)
		}
	}()

	var buf bytes.Buffer
	for i, f := range frames {
		buf.Reset()
		if err := jpeg.Encode(&buf, f.ToNRGBA(), &jpeg.Options{Quality: quality}); err != nil {
			return fmt.Errorf("could not encode frame %d: %w", i, err)
		}
		if err := aw.AddFrame(buf.Bytes()); err != nil {
			return fmt.Errorf("could not add frame %d: %w", i, err)
		}
	}
	return nil
}
