package analysis

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

// paintRect sets every pixel of r to c.
func paintRect(b *pixed.Buffer, r pixed.Rect, c pixed.Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.SetPixel(x, y, c)
		}
	}
}
