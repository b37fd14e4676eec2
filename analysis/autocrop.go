package analysis

import (
	"github.com/gogpu/pixed"
)

// Crop is an auto-crop candidate: the rectangle left after trimming border
// rows and columns of the Background color.
type Crop struct {
	Background pixed.Color
	Rect       pixed.Rect
}

// Edge names a side of an image.
type Edge int

const (
	// EdgeTop is the first row.
	EdgeTop Edge = iota
	// EdgeLeft is the first column.
	EdgeLeft
	// EdgeBottom is the last row.
	EdgeBottom
	// EdgeRight is the last column.
	EdgeRight
)

// String returns the lower-case edge name, or "unknown".
func (e Edge) String() string {
	switch e {
	case EdgeTop:
		return "top"
	case EdgeLeft:
		return "left"
	case EdgeBottom:
		return "bottom"
	case EdgeRight:
		return "right"
	default:
		return "unknown"
	}
}

// UniformEdge reports the color of edge e if every pixel on it is the same.
func UniformEdge(src *pixed.Buffer, e Edge) (pixed.Color, bool) {
	full := src.Rect()
	var line pixed.Rect
	switch e {
	case EdgeTop:
		line = pixed.Rect{X: 0, Y: 0, W: full.W, H: 1}
	case EdgeLeft:
		line = pixed.Rect{X: 0, Y: 0, W: 1, H: full.H}
	case EdgeBottom:
		line = pixed.Rect{X: 0, Y: full.H - 1, W: full.W, H: 1}
	case EdgeRight:
		line = pixed.Rect{X: full.W - 1, Y: 0, W: 1, H: full.H}
	default:
		return pixed.Color{}, false
	}
	c := src.PixelRaw(line.X, line.Y)
	return c, uniform(src, line, c)
}

// AutoCrop proposes up to two crops of src.
//
// The first background color comes from the top edge, or the left edge if
// the top is not uniform. The second comes from the bottom edge, or the
// right, and is used only when it differs from the first. Candidates that
// would keep the whole image or nothing at all are dropped, so a uniform
// image yields none.
func AutoCrop(src *pixed.Buffer) []Crop {
	var backgrounds []pixed.Color
	for _, pair := range [2][2]Edge{{EdgeTop, EdgeLeft}, {EdgeBottom, EdgeRight}} {
		for _, e := range pair {
			c, ok := UniformEdge(src, e)
			if !ok {
				continue
			}
			if len(backgrounds) == 0 || backgrounds[0] != c {
				backgrounds = append(backgrounds, c)
			}
			break
		}
	}

	full := src.Rect()
	var out []Crop
	for _, bg := range backgrounds {
		r := Trim(src, bg)
		if r.Empty() || r == full {
			continue
		}
		out = append(out, Crop{Background: bg, Rect: r})
	}
	pixed.Logger().Debug("analysis: auto-crop", "candidates", len(out))
	return out
}

// Trim shrinks the image rectangle from each side while the border row or
// column on that side is entirely bg. The result is empty when src is
// uniformly bg.
func Trim(src *pixed.Buffer, bg pixed.Color) pixed.Rect {
	r := src.Rect()
	for r.H > 0 && uniform(src, pixed.Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, bg) {
		r.Y++
		r.H--
	}
	for r.H > 0 && uniform(src, pixed.Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, bg) {
		r.H--
	}
	if r.H == 0 {
		return pixed.Rect{}
	}
	for r.W > 0 && uniform(src, pixed.Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, bg) {
		r.X++
		r.W--
	}
	for r.W > 0 && uniform(src, pixed.Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, bg) {
		r.W--
	}
	if r.W == 0 {
		return pixed.Rect{}
	}
	return r
}

// uniform reports whether every pixel of r is c.
func uniform(src *pixed.Buffer, r pixed.Rect, c pixed.Color) bool {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			if src.PixelRaw(x, y) != c {
				return false
			}
		}
	}
	return true
}
