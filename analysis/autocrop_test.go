package analysis

import (
	"testing"

	"github.com/gogpu/pixed"
)

func TestAutoCropUniformImage(t *testing.T) {
	for _, c := range []pixed.Color{pixed.White, pixed.Black, pixed.Transparent} {
		b := filled(t, 9, 5, c)
		if got := AutoCrop(b); len(got) != 0 {
			t.Errorf("AutoCrop(uniform %v) = %v, want no candidates", c, got)
		}
	}
}

func TestAutoCropFramedContent(t *testing.T) {
	b := filled(t, 20, 10, pixed.White)
	content := pixed.Rect{X: 3, Y: 2, W: 5, H: 4}
	paintRect(b, content, pixed.Red)
	b.SetPixel(4, 3, pixed.Blue)

	got := AutoCrop(b)
	if len(got) != 1 {
		t.Fatalf("AutoCrop() returned %d candidates, want 1: %v", len(got), got)
	}
	if got[0].Background != pixed.White {
		t.Errorf("Background = %v, want %v", got[0].Background, pixed.White)
	}
	if got[0].Rect != content {
		t.Errorf("Rect = %v, want %v", got[0].Rect, content)
	}
}

func TestAutoCropTwoBackgrounds(t *testing.T) {
	// Top half white, bottom half black, a gray mark in the middle.
	b := filled(t, 10, 10, pixed.White)
	paintRect(b, pixed.Rect{X: 0, Y: 5, W: 10, H: 5}, pixed.Black)
	gray := pixed.Opaque(128, 128, 128)
	paintRect(b, pixed.Rect{X: 4, Y: 4, W: 2, H: 2}, gray)

	got := AutoCrop(b)
	if len(got) != 2 {
		t.Fatalf("AutoCrop() returned %d candidates, want 2: %v", len(got), got)
	}
	if got[0].Background != pixed.White || got[0].Rect != (pixed.Rect{X: 0, Y: 4, W: 10, H: 6}) {
		t.Errorf("first candidate = %+v, want white background and {0 4 10 6}", got[0])
	}
	if got[1].Background != pixed.Black || got[1].Rect != (pixed.Rect{X: 0, Y: 0, W: 10, H: 6}) {
		t.Errorf("second candidate = %+v, want black background and {0 0 10 6}", got[1])
	}
}

func TestAutoCropNoUniformEdge(t *testing.T) {
	b := filled(t, 4, 4, pixed.White)
	for _, p := range []pixed.Point{{X: 1, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 3}, {X: 3, Y: 1}} {
		b.SetPixel(p.X, p.Y, pixed.Black)
	}
	if got := AutoCrop(b); len(got) != 0 {
		t.Errorf("AutoCrop() = %v, want no candidates", got)
	}
}

func TestAutoCropFallsBackToLeftEdge(t *testing.T) {
	// The green left column breaks the blue top row, so only the left edge
	// is uniform and trimming removes just that column.
	b := filled(t, 5, 5, pixed.Red)
	paintRect(b, pixed.Rect{X: 0, Y: 0, W: 5, H: 1}, pixed.Blue)
	paintRect(b, pixed.Rect{X: 0, Y: 0, W: 1, H: 5}, pixed.Green)
	got := AutoCrop(b)
	if len(got) == 0 {
		t.Fatal("AutoCrop() returned no candidates")
	}
	if got[0].Background != pixed.Green || got[0].Rect != (pixed.Rect{X: 1, Y: 0, W: 4, H: 5}) {
		t.Errorf("first candidate = %+v, want green background and {1 0 4 5}", got[0])
	}
	for _, c := range got {
		if c.Rect == b.Rect() || c.Rect.Empty() {
			t.Errorf("candidate %+v keeps everything or nothing", c)
		}
	}
}

func TestUniformEdge(t *testing.T) {
	b := filled(t, 3, 3, pixed.White)
	b.SetPixel(2, 1, pixed.Red)

	tests := []struct {
		e    Edge
		want bool
	}{
		{EdgeTop, true},
		{EdgeLeft, true},
		{EdgeBottom, true},
		{EdgeRight, false},
	}
	for _, tt := range tests {
		t.Run(tt.e.String(), func(t *testing.T) {
			c, ok := UniformEdge(b, tt.e)
			if ok != tt.want {
				t.Errorf("UniformEdge(%v) ok = %v, want %v", tt.e, ok, tt.want)
			}
			if ok && c != pixed.White {
				t.Errorf("UniformEdge(%v) = %v, want %v", tt.e, c, pixed.White)
			}
		})
	}
}

func TestTrim(t *testing.T) {
	b := filled(t, 6, 6, pixed.Black)
	b.SetPixel(5, 5, pixed.White)
	if got, want := Trim(b, pixed.Black), (pixed.Rect{X: 5, Y: 5, W: 1, H: 1}); got != want {
		t.Errorf("Trim() = %v, want %v", got, want)
	}
	if got := Trim(b, pixed.White); got != b.Rect() {
		t.Errorf("Trim(white) = %v, want %v", got, b.Rect())
	}
}
