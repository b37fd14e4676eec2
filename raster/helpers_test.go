package raster

import (
	"testing"

	"github.com/gogpu/pixed"
)

func newCanvas(t *testing.T, w, h int, c pixed.Color) *pixed.Buffer {
	t.Helper()
	b, err := pixed.NewFilled(w, h, c)
	if err != nil {
		t.Fatalf("NewFilled(%d, %d) error = %v", w, h, err)
	}
	return b
}

// countNot returns the number of pixels that differ from c.
func countNot(b *pixed.Buffer, c pixed.Color) int {
	n := 0
	for y := range b.Height() {
		for x := range b.Width() {
			if b.PixelRaw(x, y) != c {
				n++
			}
		}
	}
	return n
}

// uniformInk fails unless every pixel that differs from bg has the same value.
func uniformInk(t *testing.T, b *pixed.Buffer, bg pixed.Color) {
	t.Helper()
	var ink pixed.Color
	found := false
	for y := range b.Height() {
		for x := range b.Width() {
			c := b.PixelRaw(x, y)
			if c == bg {
				continue
			}
			if !found {
				ink, found = c, true
				continue
			}
			if c != ink {
				t.Fatalf("pixel (%d,%d) = %v, want %v (composited more than once?)", x, y, c, ink)
			}
		}
	}
	if !found {
		t.Fatal("nothing drawn")
	}
}

func wantPixel(t *testing.T, b *pixed.Buffer, x, y int, want pixed.Color) {
	t.Helper()
	if got := b.PixelRaw(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}
