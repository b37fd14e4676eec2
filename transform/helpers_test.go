package transform

import (
	"testing"

	"github.com/gogpu/pixed"
)

// gradientBuffer returns a w x h buffer whose pixels are all distinct.
func gradientBuffer(t *testing.T, w, h int) *pixed.Buffer {
	t.Helper()
	b, err := pixed.New(w, h)
	if err != nil {
		t.Fatalf("New(%d, %d) error = %v", w, h, err)
	}
	for y := range h {
		for x := range w {
			b.SetPixelRaw(x, y, pixed.RGBA(uint8(x*7), uint8(y*11), uint8(x+y), 255))
		}
	}
	return b
}

func filled(t *testing.T, w, h int, c pixed.Color) *pixed.Buffer {
	t.Helper()
	b, err := pixed.NewFilled(w, h, c)
	if err != nil {
		t.Fatalf("NewFilled(%d, %d) error = %v", w, h, err)
	}
	return b
}

func mustBuffer(t *testing.T, b *pixed.Buffer, err error) *pixed.Buffer {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func near(a, b pixed.Color, tol int) bool {
	d := func(x, y uint8) bool {
		v := int(x) - int(y)
		return v <= tol && v >= -tol
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}
