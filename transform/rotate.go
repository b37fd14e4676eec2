package transform

import (
	"fmt"
	"math"

	"github.com/gogpu/pixed"
)

// Warp resamples src through the forward transformation m. The destination
// is sized by AdjustmentFor so the whole transformed image fits; each
// destination pixel center is mapped back through the inverse of m and
// sampled with mode. Pixels whose preimage falls outside src get bg.
func Warp(src *pixed.Buffer, m Affine, bg pixed.Color, mode InterpolationMode) (*pixed.Buffer, error) {
	inv, ok := m.Invert()
	if !ok {
		return nil, fmt.Errorf("%w: singular transformation", pixed.ErrInvalidParameter)
	}
	adj := AdjustmentFor(m, src.Width(), src.Height())
	dst, err := pixed.New(adj.Size.X, adj.Size.Y)
	if err != nil {
		return nil, err
	}
	pixed.Logger().Debug("transform: warp",
		"src", src.Rect(), "dst", dst.Rect(), "mode", mode)

	sample := mode.sampler()
	for y := range adj.Size.Y {
		for x := range adj.Size.X {
			p := inv.Apply(pixed.PointF{
				X: float64(x) + 0.5 + adj.Offset.X,
				Y: float64(y) + 0.5 + adj.Offset.Y,
			})
			dst.SetPixelRaw(x, y, sample(src, p.X, p.Y, bg))
		}
	}
	return dst, nil
}

// Rotate returns src turned by angle radians, enlarged by RotationAdjustment
// so no corner is clipped. Uncovered pixels are filled with bg.
//
// InterpNearest copies source channels verbatim; InterpBilinear averages the
// four nearest source pixels.
func Rotate(src *pixed.Buffer, angle float64, bg pixed.Color, mode InterpolationMode) (*pixed.Buffer, error) {
	return Warp(src, Rotation(angle), bg, mode)
}

// RotateScale scales src by (sx, sy) and then rotates it by angle in a single
// bilinear resampling pass.
func RotateScale(src *pixed.Buffer, angle, sx, sy float64, bg pixed.Color) (*pixed.Buffer, error) {
	if !(sx > 0) || !(sy > 0) || math.IsInf(sx, 0) || math.IsInf(sy, 0) {
		return nil, fmt.Errorf("%w: scale %gx%g", pixed.ErrInvalidParameter, sx, sy)
	}
	return Warp(src, Rotation(angle).Multiply(Scaling(sx, sy)), bg, InterpBilinear)
}
