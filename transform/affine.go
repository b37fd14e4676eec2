package transform

import (
	"math"

	"github.com/gogpu/pixed"
)

// Affine is a 2D affine transformation in screen coordinates:
//
//	| a  b  c |
//	| d  e  f |
//	| 0  0  1 |
type Affine struct {
	a, b, c float64 // x' = ax + by + c
	d, e, f float64 // y' = dx + ey + f
}

// Identity returns the identity transformation.
func Identity() Affine {
	return Affine{a: 1, e: 1}
}

// Translation shifts points by (tx, ty).
func Translation(tx, ty float64) Affine {
	return Affine{a: 1, c: tx, e: 1, f: ty}
}

// Scaling scales by (sx, sy) around the origin.
func Scaling(sx, sy float64) Affine {
	return Affine{a: sx, e: sy}
}

// Rotation turns points by angle around the origin, counter-clockwise on a
// y-down screen.
func Rotation(angle float64) Affine {
	sin, cos := math.Sincos(angle)
	return Affine{
		a: cos, b: sin,
		d: -sin, e: cos,
	}
}

// Multiply returns m*o: o is applied first, then m.
func (m Affine) Multiply(o Affine) Affine {
	return Affine{
		a: m.a*o.a + m.b*o.d,
		b: m.a*o.b + m.b*o.e,
		c: m.a*o.c + m.b*o.f + m.c,
		d: m.d*o.a + m.e*o.d,
		e: m.d*o.b + m.e*o.e,
		f: m.d*o.c + m.e*o.f + m.f,
	}
}

// Invert returns the inverse transformation, or false if m is singular.
func (m Affine) Invert() (Affine, bool) {
	det := m.a*m.e - m.b*m.d
	if math.Abs(det) < 1e-10 {
		return Affine{}, false
	}
	inv := 1 / det
	return Affine{
		a: m.e * inv,
		b: -m.b * inv,
		c: (m.b*m.f - m.c*m.e) * inv,
		d: -m.d * inv,
		e: m.a * inv,
		f: (m.c*m.d - m.a*m.f) * inv,
	}, true
}

// Apply transforms p.
func (m Affine) Apply(p pixed.PointF) pixed.PointF {
	return pixed.PointF{X: m.a*p.X + m.b*p.Y + m.c, Y: m.d*p.X + m.e*p.Y + m.f}
}

// Adjustment is the axis-aligned box that holds a transformed image: Offset
// is where the box's top-left lands in transformed space and Size is the
// destination size in pixels.
type Adjustment struct {
	Offset pixed.PointF
	Size   pixed.Point
}

// AdjustmentFor returns the box enclosing the four corners of a w x h
// rectangle after m.
func AdjustmentFor(m Affine, w, h int) Adjustment {
	fw, fh := float64(w), float64(h)
	corners := [4]pixed.PointF{{}, {X: fw}, {Y: fh}, {X: fw, Y: fh}}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := m.Apply(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	// Trig noise must not add a row or column.
	const eps = 1e-9
	return Adjustment{
		Offset: pixed.PointF{X: minX, Y: minY},
		Size: pixed.Point{
			X: max(int(math.Ceil(maxX-minX-eps)), 1),
			Y: max(int(math.Ceil(maxY-minY-eps)), 1),
		},
	}
}

// RotationAdjustment returns the box needed so that no corner of a rotated
// w x h image is clipped.
func RotationAdjustment(w, h int, angle float64) Adjustment {
	return AdjustmentFor(Rotation(angle), w, h)
}
