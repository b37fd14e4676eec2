package pixed

import (
	"fmt"
	"math"
	"sort"
)

// Paint is the source of color for fills: a solid color, a tiled pattern, or
// a gradient. The set of implementations is closed; use a type switch over
// SolidColor, Pattern, LinearGradient and RadialGradient.
type Paint interface {
	paintMarker()
}

// SolidColor paints a single color.
type SolidColor struct {
	Color Color
}

// Solid is shorthand for SolidColor{Color: c}.
func Solid(c Color) SolidColor {
	return SolidColor{Color: c}
}

func (SolidColor) paintMarker() {}

// Pattern tiles an image.
//
// The tiling origin is the canvas origin plus Anchor, or, when ObjectAligned
// is set, the top-left of the painted object plus Anchor.
type Pattern struct {
	Image         *Buffer
	Anchor        Point
	ObjectAligned bool
}

func (Pattern) paintMarker() {}

// ColorStop is a color at an offset in [0, 1] along a gradient.
type ColorStop struct {
	Offset float64
	Color  Color
}

// LinearGradient varies along the line from Start to End.
type LinearGradient struct {
	Start, End PointF
	Stops      []ColorStop
}

func (LinearGradient) paintMarker() {}

// RadialGradient varies with the distance from Center; offset 1 is at Radius.
type RadialGradient struct {
	Center PointF
	Radius float64
	Stops  []ColorStop
}

func (RadialGradient) paintMarker() {}

// ValidatePaint reports whether p can produce colors.
func ValidatePaint(p Paint) error {
	switch p := p.(type) {
	case SolidColor:
		return nil
	case Pattern:
		if p.Image == nil {
			return fmt.Errorf("%w: pattern without image", ErrInvalidPaint)
		}
		return nil
	case LinearGradient:
		if len(p.Stops) == 0 {
			return fmt.Errorf("%w: linear gradient without stops", ErrInvalidPaint)
		}
		if !finite(p.Start.X, p.Start.Y, p.End.X, p.End.Y) {
			return fmt.Errorf("%w: linear gradient endpoints %v %v", ErrInvalidPaint, p.Start, p.End)
		}
		return validateStops(p.Stops)
	case RadialGradient:
		if len(p.Stops) == 0 {
			return fmt.Errorf("%w: radial gradient without stops", ErrInvalidPaint)
		}
		if !finite(p.Center.X, p.Center.Y, p.Radius) {
			return fmt.Errorf("%w: radial gradient center %v radius %g", ErrInvalidPaint, p.Center, p.Radius)
		}
		return validateStops(p.Stops)
	default:
		return fmt.Errorf("%w: %T", ErrInvalidPaint, p)
	}
}

// validateStops requires every offset to lie in [0, 1].
func validateStops(stops []ColorStop) error {
	for i, st := range stops {
		if !(st.Offset >= 0 && st.Offset <= 1) {
			return fmt.Errorf("%w: stop %d offset %g", ErrInvalidPaint, i, st.Offset)
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Shader resolves a Paint to per-pixel colors. Gradient stops are sorted once
// on construction.
type Shader struct {
	paint  Paint
	origin Point
	stops  []ColorStop
}

// NewShader prepares p for sampling. origin is the painted object's top-left,
// used by object-aligned patterns.
func NewShader(p Paint, origin Point) (*Shader, error) {
	if err := ValidatePaint(p); err != nil {
		return nil, err
	}
	s := &Shader{paint: p, origin: origin}
	switch p := p.(type) {
	case LinearGradient:
		s.stops = sortStops(p.Stops)
	case RadialGradient:
		s.stops = sortStops(p.Stops)
	}
	return s, nil
}

// Solid returns the paint color and true if the shader is a SolidColor.
func (s *Shader) Solid() (Color, bool) {
	if p, ok := s.paint.(SolidColor); ok {
		return p.Color, true
	}
	return Color{}, false
}

// ColorAt returns the paint color for pixel (x, y).
// Gradients are sampled at the pixel center.
func (s *Shader) ColorAt(x, y int) Color {
	switch p := s.paint.(type) {
	case SolidColor:
		return p.Color
	case Pattern:
		ox, oy := p.Anchor.X, p.Anchor.Y
		if p.ObjectAligned {
			ox += s.origin.X
			oy += s.origin.Y
		}
		w, h := p.Image.Width(), p.Image.Height()
		return p.Image.PixelRaw(wrap(x-ox, w), wrap(y-oy, h))
	case LinearGradient:
		dx := p.End.X - p.Start.X
		dy := p.End.Y - p.Start.Y
		lengthSq := dx*dx + dy*dy
		if lengthSq == 0 {
			return s.stops[0].Color
		}
		px := float64(x) + 0.5 - p.Start.X
		py := float64(y) + 0.5 - p.Start.Y
		return colorAtOffset(s.stops, (px*dx+py*dy)/lengthSq)
	case RadialGradient:
		if p.Radius <= 0 {
			return s.stops[len(s.stops)-1].Color
		}
		d := math.Hypot(float64(x)+0.5-p.Center.X, float64(y)+0.5-p.Center.Y)
		return colorAtOffset(s.stops, d/p.Radius)
	default:
		return Transparent
	}
}

// ColorAt resolves p at pixel (x, y) for an object whose top-left is origin.
// Invalid paints yield Transparent. Prefer NewShader for repeated sampling.
func ColorAt(p Paint, x, y int, origin Point) Color {
	s, err := NewShader(p, origin)
	if err != nil {
		return Transparent
	}
	return s.ColorAt(x, y)
}

// wrap maps v into [0, n) with positive modulo.
func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// sortStops stable-sorts a copy of stops by offset so that stops sharing an
// offset keep their insertion order.
func sortStops(stops []ColorStop) []ColorStop {
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// colorAtOffset interpolates sorted stops at t. Values outside the stop range
// take the nearest end color. At an offset shared by several stops the last
// of them wins, producing a hard edge.
func colorAtOffset(stops []ColorStop, t float64) Color {
	if math.IsNaN(t) {
		return stops[0].Color
	}
	if t <= stops[0].Offset {
		// Last stop sharing the first offset.
		i := 0
		for i+1 < len(stops) && stops[i+1].Offset == stops[0].Offset && t == stops[0].Offset {
			i++
		}
		return stops[i].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	// First stop strictly beyond t.
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Offset > t
	})
	s0, s1 := stops[idx-1], stops[idx]
	span := s1.Offset - s0.Offset
	if span <= 0 {
		return s1.Color
	}
	return s0.Color.Lerp(s1.Color, (t-s0.Offset)/span)
}
