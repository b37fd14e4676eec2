package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/alecthomas/kong"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/filter"
	"github.com/gogpu/pixed/raster"
)

type DemoCmd struct {
	Out    string `help:"Output file (png, bmp or tiff)" default:"demo.png" type:"path"`
	Width  int    `help:"Canvas width" default:"800"`
	Height int    `help:"Canvas height" default:"600"`
}

func (c *DemoCmd) Validate(kctx *kong.Context) error {
	if c.Width < 64 || c.Height < 64 {
		return fmt.Errorf("canvas %dx%d is too small, need at least 64x64", c.Width, c.Height)
	}
	return nil
}

func (c *DemoCmd) Run() error {
	dc, err := pixed.NewFilled(c.Width, c.Height, pixed.White)
	if err != nil {
		return err
	}
	if err := drawDemo(dc); err != nil {
		return err
	}
	if err := save(dc, c.Out); err != nil {
		return err
	}
	slog.Info("demo saved", "file", c.Out, "width", c.Width, "height", c.Height)
	return nil
}

// drawDemo paints the showcase onto dc, scaled to its size.
func drawDemo(dc *pixed.Buffer) error {
	w, h := float64(dc.Width()), float64(dc.Height())

	background := pixed.LinearGradient{
		Start: pixed.PtF(0, 0),
		End:   pixed.PtF(0, h),
		Stops: []pixed.ColorStop{
			{Offset: 0, Color: pixed.Opaque(26, 51, 102)},
			{Offset: 1, Color: pixed.Opaque(128, 128, 153)},
		},
	}
	err := raster.FillRect(dc, dc.Rect(), background)

	// Overlapping translucent discs.
	r := int(h / 10)
	cx, cy := int(w*0.19), int(h*0.25)
	for i, col := range []pixed.Color{
		pixed.RGBA(255, 77, 77, 204),
		pixed.RGBA(77, 255, 77, 204),
		pixed.RGBA(77, 77, 255, 204),
	} {
		ox := []int{0, r * 2 / 3, r / 3}[i]
		oy := []int{0, 0, r * 2 / 3}[i]
		disc := pixed.Rect{X: cx + ox - r, Y: cy + oy - r, W: 2 * r, H: 2 * r}
		err = errors.Join(err, raster.FillEllipse(dc, disc, pixed.Solid(col)))
		raster.StrokeEllipse(dc, disc, pixed.White)
	}

	// A radial-gradient box framed by a 1-pixel border.
	box := pixed.Rect{X: int(w * 0.44), Y: int(h * 0.16), W: int(w * 0.15), H: int(h * 0.14)}
	glow := pixed.RadialGradient{
		Center: pixed.PtF(float64(box.X)+float64(box.W)/2, float64(box.Y)+float64(box.H)/2),
		Radius: float64(box.W) / 2,
		Stops: []pixed.ColorStop{
			{Offset: 0, Color: pixed.Opaque(255, 204, 0)},
			{Offset: 1, Color: pixed.Opaque(204, 77, 0)},
		},
	}
	err = errors.Join(err, raster.FillRect(dc, box, glow))
	raster.StrokeRect(dc, box, pixed.White)

	// Rotating fan of lines, aliased on the left half, smooth on the right.
	center := pixed.PtF(w*0.8, h*0.25)
	for i := range 16 {
		a := float64(i) * math.Pi / 8
		end := pixed.PtF(center.X+math.Cos(a)*h/8, center.Y-math.Sin(a)*h/8)
		if end.X < center.X {
			raster.Line(dc, pixed.Pt(int(center.X), int(center.Y)), pixed.Pt(int(end.X), int(end.Y)), pixed.White)
		} else {
			raster.LineAAF(dc, center, end, pixed.White)
		}
	}

	// Star with a drop shadow applied to its region only.
	star := starPoints(pixed.PtF(w*0.55, h*0.66), h/8, h/16, 5)
	err = errors.Join(err, raster.FillPolygonSmooth(dc, star, pixed.Solid(pixed.Opaque(255, 255, 0))))
	shadow, ferr := filter.New(filter.KindDropShadow, filter.Params{
		Radius: 3,
		Offset: pixed.Pt(6, 6),
		Color:  pixed.RGBA(0, 0, 0, 160),
	})
	err = errors.Join(err, ferr)
	if ferr == nil {
		area := pixed.Rect{X: int(w*0.55 - h/6), Y: int(h*0.66 - h/6), W: int(h / 3), H: int(h / 3)}
		err = errors.Join(err, filter.ApplyRegion(dc, area, shadow))
	}

	// Wide polyline with round caps and a dashed thin copy underneath.
	wave := make([]pixed.PointF, 0, 32)
	for i := range 32 {
		x := w*0.06 + float64(i)*w*0.01
		wave = append(wave, pixed.PtF(x, h*0.62+math.Sin(float64(i)/3)*h/20))
	}
	raster.StrokePolyline(dc, wave, raster.StrokeStyle{Width: 6, Cap: raster.CapRound, Antialias: true}, pixed.Opaque(255, 128, 0))
	for i := range wave {
		wave[i].Y += h / 10
	}
	raster.StrokePolyline(dc, wave, raster.StrokeStyle{Width: 1, Dash: raster.NewDash(6, 4)}, pixed.White)

	// A closed ring, flood filled with a checker pattern.
	ring := pixed.Rect{X: int(w * 0.81), Y: int(h * 0.55), W: int(w * 0.12), H: int(w * 0.12)}
	err = errors.Join(err, raster.FillEllipse(dc, ring, pixed.Solid(pixed.White)))
	raster.StrokeEllipse(dc, ring, pixed.Black)
	_, ferr = raster.FloodFill(dc, pixed.Pt(ring.X+ring.W/2, ring.Y+ring.H/2), pixed.Pattern{
		Image:         checker(),
		ObjectAligned: true,
	})
	return errors.Join(err, ferr)
}

func starPoints(c pixed.PointF, outer, inner float64, n int) []pixed.PointF {
	pts := make([]pixed.PointF, 0, 2*n)
	for i := range 2 * n {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		a := float64(i)*math.Pi/float64(n) - math.Pi/2
		pts = append(pts, pixed.PtF(c.X+r*math.Cos(a), c.Y+r*math.Sin(a)))
	}
	return pts
}

// checker returns an 8x8 two-color tile.
func checker() *pixed.Buffer {
	tile, _ := pixed.NewFilled(8, 8, pixed.Opaque(230, 230, 230))
	for y := range 8 {
		for x := range 8 {
			if (x/4+y/4)%2 == 1 {
				tile.SetPixelRaw(x, y, pixed.Opaque(40, 90, 200))
			}
		}
	}
	return tile
}
