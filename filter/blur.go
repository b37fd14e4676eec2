package filter

import (
	"fmt"

	"github.com/gogpu/pixed"
)

// GaussianBlur blurs src with a separable Gaussian of the given sigma.
// A sigma <= 0 returns an unchanged copy.
func GaussianBlur(src *pixed.Buffer, sigma float64) (*pixed.Buffer, error) {
	k := GaussianKernel(sigma)
	if len(k) == 1 {
		return src.Clone(), nil
	}
	return ConvolveSeparable(src, k, k)
}

// UnsharpMask sharpens src by adding back the detail a Gaussian blur removes:
// out = src + (src - blur(src)) per color channel, clamped. Alpha is kept.
func UnsharpMask(src *pixed.Buffer, sigma float64) (*pixed.Buffer, error) {
	blurred, err := GaussianBlur(src, sigma)
	if err != nil {
		return nil, err
	}
	sharpen := func(s, b uint8) uint8 {
		return pixed.ClampInt(2*int(s) - int(b))
	}
	for y := range src.Height() {
		for x := range src.Width() {
			s, b := src.PixelRaw(x, y), blurred.PixelRaw(x, y)
			blurred.SetPixelRaw(x, y, pixed.Color{
				R: sharpen(s.R, b.R),
				G: sharpen(s.G, b.G),
				B: sharpen(s.B, b.B),
				A: s.A,
			})
		}
	}
	return blurred, nil
}

// smooth3 holds the 1-2-1 / 2-4-2 / 1-2-1 weights, which sum to 16.
var smooth3 = [3][3]int{
	{1, 2, 1},
	{2, 4, 2},
	{1, 2, 1},
}

// Smooth3x3 applies a cheap fixed 3x3 blur. Each channel is the weighted sum
// divided by 16 with integer truncation. Neighbors past the edge repeat the
// edge pixel.
func Smooth3x3(src *pixed.Buffer) (*pixed.Buffer, error) {
	w, h := src.Width(), src.Height()
	dst, err := pixed.New(w, h)
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			var r, g, b, a int
			for j := range 3 {
				sy := max(0, min(y+j-1, h-1))
				for i := range 3 {
					sx := max(0, min(x+i-1, w-1))
					c := src.PixelRaw(sx, sy)
					wt := smooth3[j][i]
					r += int(c.R) * wt
					g += int(c.G) * wt
					b += int(c.B) * wt
					a += int(c.A) * wt
				}
			}
			dst.SetPixelRaw(x, y, pixed.Color{
				R: uint8(r / 16), G: uint8(g / 16), B: uint8(b / 16), A: uint8(a / 16),
			})
		}
	}
	return dst, nil
}

// Pixelize replaces every size x size block, aligned to the top-left corner,
// with the rounded average of its pixels. Blocks cut by the right or bottom
// edge average only the pixels present.
func Pixelize(src *pixed.Buffer, size int) (*pixed.Buffer, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: pixelize block size %d", pixed.ErrInvalidParameter, size)
	}
	dst := src.Clone()
	if size == 1 {
		return dst, nil
	}
	w, h := src.Width(), src.Height()
	for by := 0; by < h; by += size {
		bh := min(size, h-by)
		for bx := 0; bx < w; bx += size {
			bw := min(size, w-bx)
			block := pixed.Rect{X: bx, Y: by, W: bw, H: bh}
			fillBlock(dst, block, average(src, block))
		}
	}
	return dst, nil
}

// average returns the rounded mean color of r, which must lie inside b.
func average(b *pixed.Buffer, r pixed.Rect) pixed.Color {
	var sr, sg, sb, sa int
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			c := b.PixelRaw(x, y)
			sr += int(c.R)
			sg += int(c.G)
			sb += int(c.B)
			sa += int(c.A)
		}
	}
	n := r.W * r.H
	return pixed.Color{
		R: uint8((sr + n/2) / n),
		G: uint8((sg + n/2) / n),
		B: uint8((sb + n/2) / n),
		A: uint8((sa + n/2) / n),
	}
}

func fillBlock(b *pixed.Buffer, r pixed.Rect, c pixed.Color) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			b.SetPixelRaw(x, y, c)
		}
	}
}
