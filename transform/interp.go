package transform

import (
	"math"

	"github.com/gogpu/pixed"
)

// InterpolationMode selects how source pixels are sampled.
type InterpolationMode uint8

const (
	// InterpNearest copies the pixel containing the sample point verbatim.
	InterpNearest InterpolationMode = iota

	// InterpBilinear blends the four pixels nearest to the sample point.
	InterpBilinear
)

// String returns the mode name.
func (m InterpolationMode) String() string {
	switch m {
	case InterpNearest:
		return "nearest"
	case InterpBilinear:
		return "bilinear"
	default:
		return "unknown"
	}
}

// sampler reads src at a continuous position where pixel (i, j) covers
// [i, i+1) x [j, j+1). Positions outside src return bg.
type sampler func(src *pixed.Buffer, x, y float64, bg pixed.Color) pixed.Color

func (m InterpolationMode) sampler() sampler {
	if m == InterpBilinear {
		return sampleBilinear
	}
	return sampleNearest
}

func sampleNearest(src *pixed.Buffer, x, y float64, bg pixed.Color) pixed.Color {
	if x < 0 || y < 0 {
		return bg
	}
	ix, iy := int(x), int(y)
	if ix >= src.Width() || iy >= src.Height() {
		return bg
	}
	return src.PixelRaw(ix, iy)
}

func sampleBilinear(src *pixed.Buffer, x, y float64, bg pixed.Color) pixed.Color {
	w, h := src.Width(), src.Height()
	if x < 0 || y < 0 || x >= float64(w) || y >= float64(h) {
		return bg
	}

	// Interpolate between pixel centers.
	fx, fy := x-0.5, y-0.5
	x0, y0 := int(math.Floor(fx)), int(math.Floor(fy))
	tx, ty := fx-float64(x0), fy-float64(y0)
	x1, y1 := clamp(x0+1, 0, w-1), clamp(y0+1, 0, h-1)
	x0, y0 = clamp(x0, 0, w-1), clamp(y0, 0, h-1)

	return bilerp(
		src.PixelRaw(x0, y0), src.PixelRaw(x1, y0),
		src.PixelRaw(x0, y1), src.PixelRaw(x1, y1),
		tx, ty,
	)
}

// bilerp mixes four colors: c00 top-left, c10 top-right, c01 bottom-left.
func bilerp(c00, c10, c01, c11 pixed.Color, tx, ty float64) pixed.Color {
	mix := func(v00, v10, v01, v11 uint8) uint8 {
		top := float64(v00) + (float64(v10)-float64(v00))*tx
		bottom := float64(v01) + (float64(v11)-float64(v01))*tx
		return pixed.ClampByte(top + (bottom-top)*ty + 0.5)
	}
	return pixed.Color{
		R: mix(c00.R, c10.R, c01.R, c11.R),
		G: mix(c00.G, c10.G, c01.G, c11.G),
		B: mix(c00.B, c10.B, c01.B, c11.B),
		A: mix(c00.A, c10.A, c01.A, c11.A),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
