package pixed

import (
	"fmt"
	"image"
)

// Point is an integer pixel position.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// F converts p to a floating point position.
func (p Point) F() PointF {
	return PointF{X: float64(p.X), Y: float64(p.Y)}
}

// PointF is a sub-pixel position.
type PointF struct {
	X, Y float64
}

// PtF is shorthand for PointF{X: x, Y: y}.
func PtF(x, y float64) PointF {
	return PointF{X: x, Y: y}
}

// Rect is an integer rectangle whose far corner is inclusive:
// the last pixel covered is (X+W-1, Y+H-1). A rectangle with W <= 0 or
// H <= 0 is empty.
type Rect struct {
	X, Y int
	W, H int
}

// RectFromCorners returns the inclusive rectangle spanning a and b,
// which may be given in any order.
func RectFromCorners(a, b Point) Rect {
	if a.X > b.X {
		a.X, b.X = b.X, a.X
	}
	if a.Y > b.Y {
		a.Y, b.Y = b.Y, a.Y
	}
	return Rect{X: a.X, Y: a.Y, W: b.X - a.X + 1, H: b.Y - a.Y + 1}
}

// First returns the top-left pixel.
func (r Rect) First() Point {
	return Point{X: r.X, Y: r.Y}
}

// Last returns the bottom-right pixel (inclusive).
func (r Rect) Last() Point {
	return Point{X: r.X + r.W - 1, Y: r.Y + r.H - 1}
}

// Size returns the width and height as a Point.
func (r Rect) Size() Point {
	return Point{X: r.W, Y: r.H}
}

// Empty reports whether r covers no pixel.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether pixel p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// ContainsRect reports whether every pixel of s lies inside r.
// An empty s is contained in any rectangle.
func (r Rect) ContainsRect(s Rect) bool {
	if s.Empty() {
		return true
	}
	return s.X >= r.X && s.Y >= r.Y && s.X+s.W <= r.X+r.W && s.Y+s.H <= r.Y+r.H
}

// Intersect returns the pixels common to r and s. The result may be empty.
func (r Rect) Intersect(s Rect) Rect {
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.X+r.W, s.X+s.W), min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	x0, y0 := min(r.X, s.X), min(r.Y, s.Y)
	x1, y1 := max(r.X+r.W, s.X+s.W), max(r.Y+r.H, s.Y+s.H)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks r by n pixels on every side; a negative n grows it.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Translate moves r by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Image converts r to a half-open image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// String returns "(x,y)-(lastX,lastY)".
func (r Rect) String() string {
	l := r.Last()
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.X, r.Y, l.X, l.Y)
}

// RectF is a floating point rectangle.
type RectF struct {
	X, Y float64
	W, H float64
}

// Empty reports whether r has no area.
func (r RectF) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
