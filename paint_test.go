package pixed

import (
	"errors"
	"math"
	"testing"
)

func TestValidatePaint(t *testing.T) {
	tests := []struct {
		name string
		p    Paint
		ok   bool
	}{
		{"solid", Solid(Red), true},
		{"pattern without image", Pattern{}, false},
		{"linear without stops", LinearGradient{}, false},
		{"radial without stops", RadialGradient{Radius: 3}, false},
		{"linear", LinearGradient{Stops: []ColorStop{{0, Red}}}, true},
		{"linear NaN start", LinearGradient{Start: PtF(math.NaN(), 0), End: PtF(10, 0), Stops: []ColorStop{{0, Red}}}, false},
		{"linear infinite end", LinearGradient{End: PtF(0, math.Inf(1)), Stops: []ColorStop{{0, Red}}}, false},
		{"radial NaN center", RadialGradient{Center: PtF(0, math.NaN()), Radius: 3, Stops: []ColorStop{{0, Red}}}, false},
		{"radial infinite radius", RadialGradient{Radius: math.Inf(1), Stops: []ColorStop{{0, Red}}}, false},
		{"radial NaN radius", RadialGradient{Radius: math.NaN(), Stops: []ColorStop{{0, Red}}}, false},
		{"NaN offset", LinearGradient{End: PtF(1, 0), Stops: []ColorStop{{math.NaN(), Red}}}, false},
		{"negative offset", LinearGradient{End: PtF(1, 0), Stops: []ColorStop{{-0.1, Red}}}, false},
		{"offset above one", RadialGradient{Radius: 1, Stops: []ColorStop{{0, Red}, {1.5, Blue}}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePaint(tt.p)
			if (err == nil) != tt.ok {
				t.Errorf("ValidatePaint() = %v, want ok=%v", err, tt.ok)
			}
			if err != nil && !errors.Is(err, ErrInvalidPaint) {
				t.Errorf("ValidatePaint() = %v, want ErrInvalidPaint", err)
			}
		})
	}
}

func TestColorAtRejectsNonFiniteGradient(t *testing.T) {
	stops := []ColorStop{{0, Red}, {1, Blue}}
	paints := []Paint{
		LinearGradient{Start: PtF(math.NaN(), 0), End: PtF(10, 0), Stops: stops},
		RadialGradient{Center: PtF(math.Inf(-1), 0), Radius: 4, Stops: stops},
	}
	for _, p := range paints {
		if got := ColorAt(p, 3, 3, Point{}); got != Transparent {
			t.Errorf("ColorAt(%T) = %v, want %v", p, got, Transparent)
		}
	}
}

func TestColorAtOffsetNaN(t *testing.T) {
	stops := []ColorStop{{0, Red}, {1, Blue}}
	if got := colorAtOffset(stops, math.NaN()); got != Red {
		t.Errorf("colorAtOffset(NaN) = %v, want %v", got, Red)
	}
}

func TestPatternTiling(t *testing.T) {
	tile, _ := New(2, 2)
	tile.SetPixel(0, 0, Red)
	tile.SetPixel(1, 0, Green)
	tile.SetPixel(0, 1, Blue)
	tile.SetPixel(1, 1, White)

	canvas := Pattern{Image: tile}
	if got := ColorAt(canvas, 3, 2, Pt(0, 0)); got != Green {
		t.Errorf("canvas-aligned (3,2) = %v, want %v", got, Green)
	}
	if got := ColorAt(canvas, -1, -1, Pt(0, 0)); got != White {
		t.Errorf("canvas-aligned (-1,-1) = %v, want %v", got, White)
	}

	object := Pattern{Image: tile, ObjectAligned: true}
	if got := ColorAt(object, 5, 7, Pt(5, 7)); got != Red {
		t.Errorf("object-aligned origin = %v, want %v", got, Red)
	}
	anchored := Pattern{Image: tile, Anchor: Pt(1, 0)}
	if got := ColorAt(anchored, 1, 0, Pt(0, 0)); got != Red {
		t.Errorf("anchored = %v, want %v", got, Red)
	}
}

func TestLinearGradient(t *testing.T) {
	g := LinearGradient{
		Start: PtF(0, 0),
		End:   PtF(10, 0),
		Stops: []ColorStop{{1, White}, {0, Black}},
	}
	if got := ColorAt(g, -5, 0, Point{}); got != Black {
		t.Errorf("before start = %v, want %v", got, Black)
	}
	if got := ColorAt(g, 20, 0, Point{}); got != White {
		t.Errorf("after end = %v, want %v", got, White)
	}
	mid := ColorAt(g, 4, 3, Point{}) // center x = 4.5
	if mid.R < 110 || mid.R > 120 {
		t.Errorf("middle = %v, want about 115", mid)
	}

	flat := LinearGradient{Start: PtF(1, 1), End: PtF(1, 1), Stops: []ColorStop{{0.5, Red}}}
	if got := ColorAt(flat, 0, 0, Point{}); got != Red {
		t.Errorf("degenerate gradient = %v, want %v", got, Red)
	}
}

func TestGradientStopCollisionKeepsInsertionOrder(t *testing.T) {
	stops := []ColorStop{
		{0, Black},
		{0.5, Red},
		{0.5, Blue},
		{1, White},
	}
	sorted := sortStops(stops)
	if sorted[1].Color != Red || sorted[2].Color != Blue {
		t.Fatalf("sortStops() reordered collided stops: %v", sorted)
	}
	if got := colorAtOffset(sorted, 0.5); got != Blue {
		t.Errorf("at collided offset = %v, want later stop %v", got, Blue)
	}
	if got := colorAtOffset(sorted, 0.4999999); got.B != 0 {
		t.Errorf("just before collision = %v, want red side", got)
	}
}

func TestRadialGradient(t *testing.T) {
	g := RadialGradient{
		Center: PtF(5, 5),
		Radius: 5,
		Stops:  []ColorStop{{0, White}, {1, Black}},
	}
	s, err := NewShader(g, Point{})
	if err != nil {
		t.Fatalf("NewShader() error = %v", err)
	}
	if got := s.ColorAt(4, 4); got.R < 200 {
		t.Errorf("near center = %v, want bright", got)
	}
	if got := s.ColorAt(30, 30); got != Black {
		t.Errorf("outside = %v, want %v", got, Black)
	}
	if _, ok := s.Solid(); ok {
		t.Error("Solid() true for gradient")
	}
}
