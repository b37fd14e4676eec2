package filter

import (
	"github.com/gogpu/pixed"
)

// ConvolveHorizontal convolves every row of src with k. Indices past the left
// and right edges are reflected inward. All four channels are filtered.
func ConvolveHorizontal(src *pixed.Buffer, k Kernel) (*pixed.Buffer, error) {
	return convolve(src, k, true)
}

// ConvolveVertical convolves every column of src with k.
func ConvolveVertical(src *pixed.Buffer, k Kernel) (*pixed.Buffer, error) {
	return convolve(src, k, false)
}

// ConvolveSeparable applies kx horizontally and then ky vertically. Each pass
// writes a fresh buffer.
func ConvolveSeparable(src *pixed.Buffer, kx, ky Kernel) (*pixed.Buffer, error) {
	if err := ky.Validate(); err != nil {
		return nil, err
	}
	tmp, err := ConvolveHorizontal(src, kx)
	if err != nil {
		return nil, err
	}
	return ConvolveVertical(tmp, ky)
}

func convolve(src *pixed.Buffer, k Kernel, horizontal bool) (*pixed.Buffer, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}
	w, h := src.Width(), src.Height()
	dst, err := pixed.New(w, h)
	if err != nil {
		return nil, err
	}

	half := k.Center()
	for y := range h {
		for x := range w {
			var r, g, b, a float64
			for i, wt := range k {
				sx, sy := x, y
				if horizontal {
					sx = reflect(x+i-half, w)
				} else {
					sy = reflect(y+i-half, h)
				}
				c := src.PixelRaw(sx, sy)
				r += float64(c.R) * wt
				g += float64(c.G) * wt
				b += float64(c.B) * wt
				a += float64(c.A) * wt
			}
			dst.SetPixelRaw(x, y, pixed.Color{
				R: round(r), G: round(g), B: round(b), A: round(a),
			})
		}
	}
	return dst, nil
}

// round clamps v to [0, 255] and rounds to nearest.
func round(v float64) uint8 {
	return pixed.ClampByte(v + 0.5)
}
