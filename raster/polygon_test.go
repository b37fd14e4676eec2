package raster

import (
	"testing"

	"github.com/gogpu/pixed"
)

func square(x0, y0, x1, y1 float64) []pixed.PointF {
	return []pixed.PointF{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestFillPolygonSamplesPixelCenters(t *testing.T) {
	b := newCanvas(t, 8, 8, pixed.White)
	if err := FillPolygon(b, square(1, 1, 5, 5), pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	if got := countNot(b, pixed.White); got != 16 {
		t.Errorf("filled pixels = %d, want 16", got)
	}
	wantPixel(t, b, 1, 1, pixed.Black)
	wantPixel(t, b, 4, 4, pixed.Black)
	wantPixel(t, b, 5, 5, pixed.White)
}

func TestFillPolygonEvenOdd(t *testing.T) {
	// Outer square and inner square joined by a bridge edge.
	pts := []pixed.PointF{
		{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 8}, {X: 0, Y: 8}, {X: 0, Y: 0},
		{X: 2, Y: 2}, {X: 2, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 2}, {X: 2, Y: 2},
	}
	b := newCanvas(t, 8, 8, pixed.White)
	if err := FillPolygon(b, pts, pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	wantPixel(t, b, 4, 4, pixed.White)
	wantPixel(t, b, 1, 4, pixed.Black)
	wantPixel(t, b, 7, 4, pixed.Black)
	wantPixel(t, b, 4, 1, pixed.Black)
}

func TestFillPolygonDegenerate(t *testing.T) {
	b := newCanvas(t, 4, 4, pixed.White)
	if err := FillPolygon(b, square(1, 1, 1, 3)[:2], pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	if got := countNot(b, pixed.White); got != 0 {
		t.Errorf("filled pixels = %d, want 0", got)
	}
}

func TestFillPolygonSmooth(t *testing.T) {
	b := newCanvas(t, 8, 8, pixed.White)
	if err := FillPolygonSmooth(b, square(1, 1, 5, 5), pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	for y := 1; y <= 4; y++ {
		for x := 1; x <= 4; x++ {
			if got := b.PixelRaw(x, y); got.R > 1 {
				t.Errorf("interior (%d,%d) = %v, want black", x, y, got)
			}
		}
	}
	for _, p := range []pixed.Point{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 5, Y: 2}, {X: 2, Y: 0}} {
		if got := b.PixelRaw(p.X, p.Y); got.R < 254 {
			t.Errorf("exterior (%d,%d) = %v, want white", p.X, p.Y, got)
		}
	}
}

func TestFillPolygonSmoothPartialCoverage(t *testing.T) {
	b := newCanvas(t, 8, 8, pixed.White)
	// Right edge at x=4.5 halves column 4.
	if err := FillPolygonSmooth(b, square(1, 1, 4.5, 5), pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	if got := b.PixelRaw(4, 2); got.R < 110 || got.R > 145 {
		t.Errorf("half-covered pixel = %v, want about 50%% gray", got)
	}
}

func TestFillPolygonClipsOffCanvas(t *testing.T) {
	b := newCanvas(t, 6, 6, pixed.White)
	if err := FillPolygonSmooth(b, square(-10, -10, -2, -2), pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	if err := FillPolygon(b, square(3, 3, 30, 30), pixed.Solid(pixed.Black)); err != nil {
		t.Fatal(err)
	}
	if got := countNot(b, pixed.White); got != 9 {
		t.Errorf("filled pixels = %d, want 9", got)
	}
}
