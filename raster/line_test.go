package raster

import (
	"testing"

	"github.com/gogpu/pixed"
)

func TestLineEndpointsIncluded(t *testing.T) {
	tests := []struct {
		name   string
		p0, p1 pixed.Point
		in     []pixed.Point
		out    []pixed.Point
	}{
		{
			name: "horizontal",
			p0:   pixed.Pt(1, 1), p1: pixed.Pt(11, 1),
			in:  []pixed.Point{{X: 1, Y: 1}, {X: 6, Y: 1}, {X: 11, Y: 1}},
			out: []pixed.Point{{X: 0, Y: 1}, {X: 12, Y: 1}, {X: 6, Y: 0}, {X: 6, Y: 2}},
		},
		{
			name: "vertical",
			p0:   pixed.Pt(1, 1), p1: pixed.Pt(1, 11),
			in:  []pixed.Point{{X: 1, Y: 1}, {X: 1, Y: 6}, {X: 1, Y: 11}},
			out: []pixed.Point{{X: 1, Y: 0}, {X: 1, Y: 12}, {X: 0, Y: 6}, {X: 2, Y: 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newCanvas(t, 100, 100, pixed.White)
			Line(b, tt.p0, tt.p1, pixed.Black)
			for _, p := range tt.in {
				wantPixel(t, b, p.X, p.Y, pixed.Black)
			}
			for _, p := range tt.out {
				wantPixel(t, b, p.X, p.Y, pixed.White)
			}
			if got := countNot(b, pixed.White); got != 11 {
				t.Errorf("drawn pixels = %d, want 11", got)
			}
		})
	}
}

func TestLineReverseSymmetry(t *testing.T) {
	segs := [][2]pixed.Point{
		{{X: 0, Y: 0}, {X: 17, Y: 5}},
		{{X: 3, Y: 19}, {X: 12, Y: 0}},
		{{X: 2, Y: 2}, {X: 9, Y: 9}},
		{{X: 15, Y: 4}, {X: 1, Y: 7}},
	}
	for _, s := range segs {
		a := newCanvas(t, 20, 20, pixed.White)
		b := newCanvas(t, 20, 20, pixed.White)
		Line(a, s[0], s[1], pixed.Black)
		Line(b, s[1], s[0], pixed.Black)
		if !a.Equal(b) {
			t.Errorf("Line(%v, %v) differs from its reverse", s[0], s[1])
		}
	}
}

func TestLineClipsOutside(t *testing.T) {
	b := newCanvas(t, 10, 10, pixed.White)
	Line(b, pixed.Pt(-5, 5), pixed.Pt(20, 5), pixed.Black)
	if got := countNot(b, pixed.White); got != 10 {
		t.Errorf("drawn pixels = %d, want 10", got)
	}
}

func TestLineTranslucentBlendsOnce(t *testing.T) {
	b := newCanvas(t, 20, 20, pixed.White)
	Line(b, pixed.Pt(0, 0), pixed.Pt(19, 13), pixed.RGBA(0, 0, 0, 128))
	uniformInk(t, b, pixed.White)
}

func TestLineAA(t *testing.T) {
	b := newCanvas(t, 20, 20, pixed.White)
	LineAA(b, pixed.Pt(1, 1), pixed.Pt(11, 1), pixed.Black)

	// Interior pixels of an axis-aligned line are fully covered.
	for x := 2; x <= 10; x++ {
		wantPixel(t, b, x, 1, pixed.Black)
	}
	wantPixel(t, b, 6, 0, pixed.White)
	wantPixel(t, b, 6, 2, pixed.White)

	// Endpoints are only partially covered.
	if got := b.PixelRaw(1, 1); got.R == 0 || got.R == 255 {
		t.Errorf("endpoint (1,1) = %v, want partial coverage", got)
	}
}

func TestLineAADiagonalSplitsIntensity(t *testing.T) {
	b := newCanvas(t, 20, 20, pixed.White)
	LineAAF(b, pixed.PtF(2, 2.5), pixed.PtF(15, 2.5), pixed.Black)

	// y = 2.5 falls halfway between rows 2 and 3.
	top, bottom := b.PixelRaw(8, 2), b.PixelRaw(8, 3)
	if top != bottom {
		t.Errorf("rows straddling y=2.5 = %v and %v, want equal", top, bottom)
	}
	if top.R < 120 || top.R > 135 {
		t.Errorf("half coverage = %v, want about 50%% gray", top)
	}
}

func TestLineAASinglePoint(t *testing.T) {
	b := newCanvas(t, 5, 5, pixed.White)
	LineAA(b, pixed.Pt(2, 2), pixed.Pt(2, 2), pixed.Black)
	wantPixel(t, b, 2, 2, pixed.Black)
	if got := countNot(b, pixed.White); got != 1 {
		t.Errorf("drawn pixels = %d, want 1", got)
	}
}
