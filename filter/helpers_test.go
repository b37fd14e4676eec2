package filter

import (
	"testing"

	"github.com/gogpu/pixed"
)

func filled(t *testing.T, w, h int, c pixed.Color) *pixed.Buffer {
	t.Helper()
	b, err := pixed.NewFilled(w, h, c)
	if err != nil {
		t.Fatalf("NewFilled(%d, %d) error = %v", w, h, err)
	}
	return b
}

// noise returns a buffer of deterministic pseudo-random opaque pixels.
func noise(t *testing.T, w, h int) *pixed.Buffer {
	t.Helper()
	b := filled(t, w, h, pixed.Black)
	v := uint32(12345)
	next := func() uint8 {
		v = v*1103515245 + 12345
		return uint8(v >> 16)
	}
	for y := range h {
		for x := range w {
			b.SetPixelRaw(x, y, pixed.Opaque(next(), next(), next()))
		}
	}
	return b
}

func must(t *testing.T, b *pixed.Buffer, err error) *pixed.Buffer {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return b
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
