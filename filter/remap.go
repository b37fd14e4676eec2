package filter

import (
	"fmt"

	"github.com/gogpu/pixed"
)

// DesaturateMode selects the gray conversion.
type DesaturateMode int

const (
	// DesaturateAverage uses (R+G+B)/3.
	DesaturateAverage DesaturateMode = iota
	// DesaturateLuma uses 0.3*R + 0.59*G + 0.11*B.
	DesaturateLuma
)

// Luma weights used by DesaturateLuma and Sepia.
const (
	lumaR = 0.3
	lumaG = 0.59
	lumaB = 0.11
)

// Desaturate converts src to gray. Alpha is kept.
func Desaturate(src *pixed.Buffer, mode DesaturateMode) *pixed.Buffer {
	if mode == DesaturateLuma {
		return grayMatrix(lumaR, lumaG, lumaB, [3]float64{}).Apply(src)
	}
	return mapPixels(src, func(c pixed.Color) pixed.Color {
		v := uint8(c.Sum() / 3)
		return pixed.Color{R: v, G: v, B: v, A: c.A}
	})
}

// Sepia tones src: the luma gray value offset by +40 red, +20 green and -20
// blue, clamped.
func Sepia(src *pixed.Buffer) *pixed.Buffer {
	return SepiaMatrix().Apply(src)
}

// SepiaMatrix returns the color matrix used by Sepia.
func SepiaMatrix() ColorMatrix {
	return grayMatrix(lumaR, lumaG, lumaB, [3]float64{40, 20, -20})
}

// BrightnessContrast remaps each color channel as in*contrast +
// brightness*255, clamped. brightness 0 and contrast 1 leave src unchanged.
func BrightnessContrast(src *pixed.Buffer, brightness, contrast float64) *pixed.Buffer {
	bias := brightness * 255
	return ColorMatrix{
		contrast, 0, 0, 0, bias,
		0, contrast, 0, 0, bias,
		0, 0, contrast, 0, bias,
		0, 0, 0, 1, 0,
	}.Apply(src)
}

// ColorBalance stretches each channel independently so that lo maps to 0 and
// hi maps to 255. Values outside [lo, hi] clamp. Every channel needs lo < hi.
func ColorBalance(src *pixed.Buffer, lo, hi pixed.RGB) (*pixed.Buffer, error) {
	if lo.R >= hi.R || lo.G >= hi.G || lo.B >= hi.B {
		return nil, fmt.Errorf("%w: color balance range %v..%v", pixed.ErrInvalidParameter, lo, hi)
	}
	scale := func(l, h uint8) float64 { return 255 / float64(int(h)-int(l)) }
	sr, sg, sb := scale(lo.R, hi.R), scale(lo.G, hi.G), scale(lo.B, hi.B)
	return ColorMatrix{
		sr, 0, 0, 0, -float64(lo.R) * sr,
		0, sg, 0, 0, -float64(lo.G) * sg,
		0, 0, sb, 0, -float64(lo.B) * sb,
		0, 0, 0, 1, 0,
	}.Apply(src), nil
}

// Threshold repaints every pixel with inside when lo <= R+G+B <= hi and with
// outside otherwise.
func Threshold(src *pixed.Buffer, lo, hi int, inside, outside pixed.Color) *pixed.Buffer {
	return mapPixels(src, func(c pixed.Color) pixed.Color {
		if s := c.Sum(); s >= lo && s <= hi {
			return inside
		}
		return outside
	})
}

// Invert replaces each color channel v with 255-v. Alpha is kept.
func Invert(src *pixed.Buffer) *pixed.Buffer {
	return mapPixels(src, func(c pixed.Color) pixed.Color {
		return pixed.Color{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B, A: c.A}
	})
}
