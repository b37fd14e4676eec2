package filter

import (
	"github.com/gogpu/pixed"
)

// ColorMatrix is a 4x5 color transformation in row-major order:
//
//	[R']   [m00 m01 m02 m03 m04]   [R]
//	[G'] = [m10 m11 m12 m13 m14] * [G]
//	[B']   [m20 m21 m22 m23 m24]   [B]
//	[A']   [m30 m31 m32 m33 m34]   [A]
//	                               [1]
//
// Channels are in [0, 255]; the fifth column is a bias in the same units.
// Results are rounded and clamped.
type ColorMatrix [20]float64

// IdentityMatrix leaves colors unchanged.
func IdentityMatrix() ColorMatrix {
	return ColorMatrix{
		1, 0, 0, 0, 0,
		0, 1, 0, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// grayMatrix maps every color channel to wr*R + wg*G + wb*B + bias.
func grayMatrix(wr, wg, wb float64, bias [3]float64) ColorMatrix {
	return ColorMatrix{
		wr, wg, wb, 0, bias[0],
		wr, wg, wb, 0, bias[1],
		wr, wg, wb, 0, bias[2],
		0, 0, 0, 1, 0,
	}
}

// Transform applies m to one color.
func (m *ColorMatrix) Transform(c pixed.Color) pixed.Color {
	r, g, b, a := float64(c.R), float64(c.G), float64(c.B), float64(c.A)
	row := func(i int) uint8 {
		return round(m[i]*r + m[i+1]*g + m[i+2]*b + m[i+3]*a + m[i+4])
	}
	return pixed.Color{R: row(0), G: row(5), B: row(10), A: row(15)}
}

// Apply returns src with m applied to every pixel.
func (m ColorMatrix) Apply(src *pixed.Buffer) *pixed.Buffer {
	return mapPixels(src, m.Transform)
}

// Multiply returns the matrix that applies o first and then m.
func (m ColorMatrix) Multiply(o ColorMatrix) ColorMatrix {
	var out ColorMatrix
	for r := range 4 {
		for c := range 5 {
			var v float64
			for k := range 4 {
				v += m[r*5+k] * o[k*5+c]
			}
			if c == 4 {
				v += m[r*5+4]
			}
			out[r*5+c] = v
		}
	}
	return out
}

// mapPixels returns a copy of src with f applied to each pixel.
func mapPixels(src *pixed.Buffer, f func(pixed.Color) pixed.Color) *pixed.Buffer {
	dst := src.Clone()
	for y := range dst.Height() {
		for x := range dst.Width() {
			dst.SetPixelRaw(x, y, f(dst.PixelRaw(x, y)))
		}
	}
	return dst
}
