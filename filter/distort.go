package filter

import (
	"math"

	"github.com/gogpu/pixed"
)

// PinchWhirl distorts the disc of the given radius centered on src. Inside
// the disc each destination pixel is mapped back to the source by scaling
// its distance from the center by sin(pi/2*d)^-pinch and rotating it by
// whirl*(1-d)^2 radians, where d is the normalized distance; the source is
// sampled nearest-neighbor and points that land outside it take bg. Pixels
// outside the disc are copied.
//
// pinch is usually in [-1, 1]: positive values pinch inward, negative values
// bulge. A radius <= 0 uses half the smaller image side.
func PinchWhirl(src *pixed.Buffer, pinch, whirl, radius float64, bg pixed.Color) *pixed.Buffer {
	w, h := src.Width(), src.Height()
	if radius <= 0 {
		radius = float64(min(w, h)) / 2
	}
	cx, cy := float64(w)/2, float64(h)/2
	dst := src.Clone()

	for y := range h {
		dy := float64(y) + 0.5 - cy
		for x := range w {
			dx := float64(x) + 0.5 - cx
			d := math.Hypot(dx, dy) / radius
			if d >= 1 || d == 0 {
				continue
			}

			factor := math.Pow(math.Sin(math.Pi/2*d), -pinch)
			px, py := dx*factor, dy*factor

			sin, cos := math.Sincos(whirl * (1 - d) * (1 - d))
			sx := cx + px*cos - py*sin
			sy := cy + px*sin + py*cos

			c := bg
			if sx >= 0 && sy >= 0 && sx < float64(w) && sy < float64(h) {
				c = src.PixelRaw(int(sx), int(sy))
			}
			dst.SetPixelRaw(x, y, c)
		}
	}
	return dst
}
