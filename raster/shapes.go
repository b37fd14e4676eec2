package raster

import (
	"math"

	"github.com/gogpu/pixed"
)

// StrokeRect draws the one-pixel border of the inclusive rectangle r.
// Every border pixel is composited exactly once.
func StrokeRect(dst *pixed.Buffer, r pixed.Rect, c pixed.Color) {
	if r.Empty() {
		return
	}
	last := r.Last()
	for x := r.X; x <= last.X; x++ {
		dst.BlendPixel(x, r.Y, c, c.A)
		if r.H > 1 {
			dst.BlendPixel(x, last.Y, c, c.A)
		}
	}
	for y := r.Y + 1; y < last.Y; y++ {
		dst.BlendPixel(r.X, y, c, c.A)
		if r.W > 1 {
			dst.BlendPixel(last.X, y, c, c.A)
		}
	}
}

// FillRect paints every pixel of the inclusive rectangle r with p.
// Object-aligned patterns are anchored at r's top-left.
func FillRect(dst *pixed.Buffer, r pixed.Rect, p pixed.Paint) error {
	shader, err := pixed.NewShader(p, r.First())
	if err != nil {
		return err
	}
	clip := r.Intersect(dst.Rect())
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		fillSpan(dst, shader, clip.X, clip.X+clip.W-1, y)
	}
	return nil
}

// fillSpan blends the shader over pixels [x0, x1] of row y; the span must
// already be clipped to dst.
func fillSpan(dst *pixed.Buffer, s *pixed.Shader, x0, x1, y int) {
	if c, ok := s.Solid(); ok {
		if c.A == 0 {
			return
		}
		for x := x0; x <= x1; x++ {
			dst.BlendRaw(x, y, c, c.A)
		}
		return
	}
	for x := x0; x <= x1; x++ {
		c := s.ColorAt(x, y)
		if c.A != 0 {
			dst.BlendRaw(x, y, c, c.A)
		}
	}
}

// maxWalkSide bounds the ellipses traced by the midpoint walk. Larger ones
// overflow its integer error terms and are scanned per visible row instead.
const maxWalkSide = 1 << 16

// StrokeEllipse draws the outline of the ellipse inscribed in the inclusive
// rectangle r.
func StrokeEllipse(dst *pixed.Buffer, r pixed.Rect, c pixed.Color) {
	clip := r.Intersect(dst.Rect())
	if r.Empty() || clip.Empty() {
		return
	}
	if r.W > maxWalkSide || r.H > maxWalkSide {
		strokeEllipseRows(dst, r, clip, c)
		return
	}
	// Points may repeat on thin ellipses; composite each pixel once.
	seen := make([]bool, clip.W*clip.H)
	ellipsePoints(r, func(x, y int) {
		if !clip.Contains(pixed.Pt(x, y)) {
			return
		}
		i := (y-clip.Y)*clip.W + (x - clip.X)
		if seen[i] {
			return
		}
		seen[i] = true
		dst.BlendPixel(x, y, c, c.A)
	})
}

// FillEllipse paints the ellipse inscribed in the inclusive rectangle r,
// outline included.
func FillEllipse(dst *pixed.Buffer, r pixed.Rect, p pixed.Paint) error {
	shader, err := pixed.NewShader(p, r.First())
	if err != nil {
		return err
	}
	clip := r.Intersect(dst.Rect())
	if r.Empty() || clip.Empty() {
		return nil
	}

	minX := make([]int, clip.H)
	maxX := make([]int, clip.H)
	if r.W > maxWalkSide || r.H > maxWalkSide {
		rows := newEllipseRows(r)
		for i := range clip.H {
			minX[i], maxX[i], _ = rows.span(clip.Y + i)
		}
	} else {
		for i := range minX {
			minX[i] = math.MaxInt
			maxX[i] = math.MinInt
		}
		ellipsePoints(r, func(x, y int) {
			i := y - clip.Y
			if i < 0 || i >= clip.H {
				return
			}
			minX[i] = min(minX[i], x)
			maxX[i] = max(maxX[i], x)
		})
	}

	for i := range clip.H {
		x0 := max(minX[i], clip.X)
		x1 := min(maxX[i], clip.X+clip.W-1)
		if x0 <= x1 {
			fillSpan(dst, shader, x0, x1, clip.Y+i)
		}
	}
	return nil
}

// ellipseRows computes per-row extents of the ellipse inscribed in r in
// floating point.
type ellipseRows struct {
	r      pixed.Rect
	cx, cy float64
	a, b   float64
}

func newEllipseRows(r pixed.Rect) ellipseRows {
	a := float64(r.W-1) / 2
	b := float64(r.H-1) / 2
	return ellipseRows{r: r, cx: float64(r.X) + a, cy: float64(r.Y) + b, a: a, b: b}
}

// span returns the first and last column covered on row y, or false when y
// is outside the ellipse.
func (e ellipseRows) span(y int) (int, int, bool) {
	if y < e.r.Y || y >= e.r.Y+e.r.H {
		return 0, -1, false
	}
	h := e.a
	if e.b > 0 {
		t := (float64(y) - e.cy) / e.b
		h = e.a * math.Sqrt(max(0, 1-t*t))
	}
	x0 := max(int(math.Round(e.cx-h)), e.r.X)
	x1 := min(int(math.Round(e.cx+h)), e.r.X+e.r.W-1)
	return x0, x1, true
}

// strokeEllipseRows outlines a large ellipse, visiting only the rows inside
// clip. Each row's run reaches the edge of its narrower neighbor so the
// outline stays 8-connected.
func strokeEllipseRows(dst *pixed.Buffer, r, clip pixed.Rect, c pixed.Color) {
	e := newEllipseRows(r)
	run := func(x0, x1, y int) {
		for x := max(x0, clip.X); x <= min(x1, clip.X+clip.W-1); x++ {
			dst.BlendPixel(x, y, c, c.A)
		}
	}
	for y := clip.Y; y < clip.Y+clip.H; y++ {
		l, rt, _ := e.span(y)
		ul, ur, up := e.span(y - 1)
		dl, dr, down := e.span(y + 1)
		if !up || !down {
			run(l, rt, y)
			continue
		}
		le := max(l, max(ul, dl)-1)
		rs := min(rt, min(ur, dr)+1)
		if le >= rs-1 {
			run(l, rt, y)
			continue
		}
		run(l, le, y)
		run(rs, rt, y)
	}
}

// ellipsePoints walks the midpoint ellipse bounded by the inclusive
// rectangle r, calling plot for each outline pixel. Works for even and odd
// sizes; pixels may be reported more than once.
func ellipsePoints(r pixed.Rect, plot func(x, y int)) {
	x0, y0 := int64(r.X), int64(r.Y)
	x1 := x0 + int64(r.W) - 1
	a := x1 - x0
	b := int64(r.H) - 1
	b1 := b & 1

	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a

	y0 += (b + 1) / 2
	y1 := y0 - b1
	a8 := 8 * a * a
	b8 := 8 * b * b

	for x0 <= x1 {
		plot(int(x1), int(y0))
		plot(int(x0), int(y0))
		plot(int(x0), int(y1))
		plot(int(x1), int(y1))
		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a8
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b8
			err += dx
		}
	}

	// Flat ellipses stop early; finish the tips.
	for y0-y1 <= b {
		plot(int(x0-1), int(y0))
		plot(int(x1+1), int(y0))
		y0++
		plot(int(x0-1), int(y1))
		plot(int(x1+1), int(y1))
		y1--
	}
}
