package raster

import (
	"image"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/pixed"
)

// Cap specifies the shape of stroke endpoints.
type Cap int

const (
	// CapButt ends the stroke flush with its endpoints.
	CapButt Cap = iota
	// CapRound ends the stroke with a half disc.
	CapRound
)

// String returns the cap name.
func (c Cap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return "unknown"
	}
}

// StrokeStyle describes how polylines are stroked.
type StrokeStyle struct {
	// Width is the stroke width in pixels. Widths <= 1 draw 1-pixel lines.
	Width float64

	// Cap is the endpoint shape of wide strokes. Interior joins are round.
	Cap Cap

	// Antialias selects Wu lines and area coverage instead of aliased pixels.
	Antialias bool

	// Dash, when non-nil, splits the path into dashes before stroking.
	Dash *Dash
}

// StrokePolyline strokes the open polyline pts.
//
// Wide strokes are accumulated into a coverage mask first, so overlapping
// segments, joins and caps composite each pixel once.
func StrokePolyline(dst *pixed.Buffer, pts []pixed.PointF, style StrokeStyle, c pixed.Color) {
	if len(pts) == 0 {
		return
	}
	pieces := [][]pixed.PointF{pts}
	if style.Dash.IsDashed() {
		pieces = style.Dash.split(pts)
	}

	if style.Width <= 1 {
		for _, piece := range pieces {
			strokeThin(dst, piece, style.Antialias, c)
		}
		return
	}

	half := style.Width / 2
	area := strokeBounds(pts, half).Intersect(dst.Rect())
	if area.Empty() {
		return
	}
	m := newCoverage(area, style.Antialias)
	for _, piece := range pieces {
		m.stroke(piece, half, style.Cap)
	}
	m.composite(dst, c)
}

// StrokePolygon strokes the closed polygon pts.
func StrokePolygon(dst *pixed.Buffer, pts []pixed.PointF, style StrokeStyle, c pixed.Color) {
	if len(pts) < 2 {
		StrokePolyline(dst, pts, style, c)
		return
	}
	closed := make([]pixed.PointF, len(pts)+1)
	copy(closed, pts)
	closed[len(pts)] = pts[0]
	StrokePolyline(dst, closed, style, c)
}

// strokeThin draws 1-pixel segments.
func strokeThin(dst *pixed.Buffer, pts []pixed.PointF, aa bool, c pixed.Color) {
	if len(pts) == 1 {
		p := roundPoint(pts[0])
		dst.BlendPixel(p.X, p.Y, c, c.A)
		return
	}
	for i := 1; i < len(pts); i++ {
		if aa {
			LineAAF(dst, pts[i-1], pts[i], c)
		} else {
			Line(dst, roundPoint(pts[i-1]), roundPoint(pts[i]), c)
		}
	}
}

func roundPoint(p pixed.PointF) pixed.Point {
	return pixed.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}

// strokeBounds returns the integer box touched by a stroke of half-width half.
func strokeBounds(pts []pixed.PointF, half float64) pixed.Rect {
	b := boundsOf(pts)
	x0 := int(math.Floor(b.X - half))
	y0 := int(math.Floor(b.Y - half))
	x1 := int(math.Ceil(b.X + b.W + half))
	y1 := int(math.Ceil(b.Y + b.H + half))
	return pixed.Rect{X: x0, Y: y0, W: x1 - x0 + 1, H: y1 - y0 + 1}
}

// coverage is an 8-bit mask over area; shapes are merged with max().
type coverage struct {
	area   pixed.Rect
	alpha  []uint8
	smooth bool

	z    *vector.Rasterizer
	temp *image.Alpha
}

func newCoverage(area pixed.Rect, smooth bool) *coverage {
	m := &coverage{
		area:   area,
		alpha:  make([]uint8, area.W*area.H),
		smooth: smooth,
	}
	if smooth {
		m.z = vector.NewRasterizer(area.W, area.H)
		m.temp = image.NewAlpha(image.Rect(0, 0, area.W, area.H))
	}
	return m
}

// stroke adds the segments of pts, joins and caps.
func (m *coverage) stroke(pts []pixed.PointF, half float64, cp Cap) {
	if len(pts) == 1 {
		if cp == CapRound {
			m.disc(pts[0], half)
		}
		return
	}
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		m.polygon([]pixed.PointF{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		})
		if i < len(pts)-1 {
			m.disc(b, half)
		}
	}
	if cp == CapRound {
		m.disc(pts[0], half)
		m.disc(pts[len(pts)-1], half)
	}
}

// disc adds a filled circle approximated by a polygon.
func (m *coverage) disc(c pixed.PointF, r float64) {
	n := max(8, int(math.Ceil(2*math.Pi*r/2)))
	pts := make([]pixed.PointF, n)
	for i := range n {
		t := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = pixed.PointF{X: c.X + r*math.Cos(t), Y: c.Y + r*math.Sin(t)}
	}
	m.polygon(pts)
}

// polygon merges a convex polygon into the mask.
func (m *coverage) polygon(pts []pixed.PointF) {
	if m.smooth {
		m.polygonSmooth(pts)
		return
	}
	xs := make([]float64, 0, 4)
	for y := range m.area.H {
		yc := float64(m.area.Y+y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= yc && yc < b.Y) || (b.Y <= yc && yc < a.Y) {
				xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		if len(xs) < 2 {
			continue
		}
		lo, hi := xs[0], xs[0]
		for _, x := range xs[1:] {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
		x0 := max(int(math.Ceil(lo-0.5))-m.area.X, 0)
		x1 := min(int(math.Ceil(hi-0.5))-1-m.area.X, m.area.W-1)
		row := m.alpha[y*m.area.W:]
		for x := x0; x <= x1; x++ {
			row[x] = 255
		}
	}
}

func (m *coverage) polygonSmooth(pts []pixed.PointF) {
	m.z.Reset(m.area.W, m.area.H)
	clear(m.temp.Pix)
	for i, p := range pts {
		x := snap(p.X - float64(m.area.X))
		y := snap(p.Y - float64(m.area.Y))
		if i == 0 {
			m.z.MoveTo(x, y)
		} else {
			m.z.LineTo(x, y)
		}
	}
	m.z.ClosePath()
	m.z.Draw(m.temp, m.temp.Bounds(), image.Opaque, image.Point{})
	for i, a := range m.temp.Pix {
		if a > m.alpha[i] {
			m.alpha[i] = a
		}
	}
}

// composite blends c through the mask onto dst.
func (m *coverage) composite(dst *pixed.Buffer, c pixed.Color) {
	for y := range m.area.H {
		row := m.alpha[y*m.area.W : (y+1)*m.area.W]
		for x, cov := range row {
			if cov == 0 {
				continue
			}
			a := (uint32(cov)*uint32(c.A) + 127) / 255
			if a != 0 {
				dst.BlendRaw(m.area.X+x, m.area.Y+y, c, uint8(a))
			}
		}
	}
}
