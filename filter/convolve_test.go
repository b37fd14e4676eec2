package filter

import (
	"errors"
	"testing"

	"github.com/gogpu/pixed"
)

func TestConvolveIdentityKernel(t *testing.T) {
	src := noise(t, 9, 7)
	got := must(t, ConvolveSeparable(src, Kernel{1}, Kernel{0, 1, 0}))
	if !got.Equal(src) {
		t.Error("identity convolution changed the image")
	}
}

func TestConvolveUniformUnchanged(t *testing.T) {
	c := pixed.RGBA(10, 100, 200, 180)
	src := filled(t, 6, 6, c)
	got := must(t, GaussianBlur(src, 2))
	for y := range 6 {
		for x := range 6 {
			// Reflected edges mean no darkening at the border.
			if p := got.PixelRaw(x, y); p != c {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, p, c)
			}
		}
	}
}

func TestConvolveHorizontalOnlyMixesRows(t *testing.T) {
	src := filled(t, 5, 2, pixed.Black)
	src.SetPixel(1, 0, pixed.White)
	got := must(t, ConvolveHorizontal(src, Kernel{0.25, 0.5, 0.25}))

	if r := got.PixelRaw(1, 0).R; r != 128 {
		t.Errorf("center = %d, want 128", r)
	}
	if r := got.PixelRaw(2, 0).R; r != 64 {
		t.Errorf("right neighbor = %d, want 64", r)
	}
	if r := got.PixelRaw(3, 0).R; r != 0 {
		t.Errorf("outside kernel = %d, want 0", r)
	}
	for x := range 5 {
		if p := got.PixelRaw(x, 1); p != pixed.Black {
			t.Errorf("row 1 pixel %d = %v, want black", x, p)
		}
	}
}

func TestConvolveReflectsEdges(t *testing.T) {
	// Column 0 is white; reflection reads column 1 for index -1.
	src := filled(t, 4, 1, pixed.Black)
	src.SetPixel(0, 0, pixed.White)
	got := must(t, ConvolveHorizontal(src, Kernel{0.25, 0.5, 0.25}))
	if r := got.PixelRaw(0, 0).R; r != 128 {
		t.Errorf("edge = %d, want 128", r)
	}
}

func TestConvolveVertical(t *testing.T) {
	src := filled(t, 1, 4, pixed.Black)
	src.SetPixel(0, 1, pixed.White)
	got := must(t, ConvolveVertical(src, Kernel{0.25, 0.5, 0.25}))
	if r := got.PixelRaw(0, 2).R; r != 64 {
		t.Errorf("below = %d, want 64", r)
	}
	if r := got.PixelRaw(0, 1).R; r != 128 {
		t.Errorf("center = %d, want 128", r)
	}
}

func TestConvolveLeavesSource(t *testing.T) {
	src := noise(t, 5, 5)
	before := src.Clone()
	must(t, GaussianBlur(src, 1))
	if !src.Equal(before) {
		t.Error("GaussianBlur modified its source")
	}
}

func TestConvolveInvalidKernel(t *testing.T) {
	src := filled(t, 2, 2, pixed.White)
	for _, k := range []Kernel{nil, {1, 1}} {
		if _, err := ConvolveSeparable(src, Kernel{1}, k); !errors.Is(err, pixed.ErrInvalidKernel) {
			t.Errorf("ConvolveSeparable(%v) error = %v, want ErrInvalidKernel", k, err)
		}
		if _, err := ConvolveHorizontal(src, k); !errors.Is(err, pixed.ErrInvalidKernel) {
			t.Errorf("ConvolveHorizontal(%v) error = %v, want ErrInvalidKernel", k, err)
		}
	}
}

func BenchmarkGaussianBlur(b *testing.B) {
	src, _ := pixed.NewFilled(256, 256, pixed.Red)
	for b.Loop() {
		_, _ = GaussianBlur(src, 2)
	}
}
