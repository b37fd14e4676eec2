package raster

import (
	"image"
	"math"
	"slices"

	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/gogpu/pixed"
)

// FillPolygon fills the closed polygon pts with p using the even-odd rule.
//
// Each row is sampled at its pixel centers (y+0.5); a pixel is inside when
// its center lies within an odd number of edge crossings. Object-aligned
// patterns are anchored at the polygon's bounding box.
func FillPolygon(dst *pixed.Buffer, pts []pixed.PointF, p pixed.Paint) error {
	if len(pts) < 3 {
		return pixed.ValidatePaint(p)
	}
	bounds := boundsOf(pts)
	shader, err := pixed.NewShader(p, pixed.Pt(int(math.Floor(bounds.X)), int(math.Floor(bounds.Y))))
	if err != nil {
		return err
	}

	yStart := max(int(math.Floor(bounds.Y)), 0)
	yEnd := min(int(math.Ceil(bounds.Y+bounds.H)), dst.Height()-1)
	xs := make([]float64, 0, len(pts))

	for y := yStart; y <= yEnd; y++ {
		yc := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a, b := pts[i], pts[(i+1)%len(pts)]
			if (a.Y <= yc && yc < b.Y) || (b.Y <= yc && yc < a.Y) {
				xs = append(xs, a.X+(yc-a.Y)*(b.X-a.X)/(b.Y-a.Y))
			}
		}
		slices.Sort(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			// Pixels whose centers fall in [xs[i], xs[i+1]).
			x0 := int(math.Ceil(xs[i] - 0.5))
			x1 := int(math.Ceil(xs[i+1]-0.5)) - 1
			x0 = max(x0, 0)
			x1 = min(x1, dst.Width()-1)
			if x0 <= x1 {
				fillSpan(dst, shader, x0, x1, y)
			}
		}
	}
	return nil
}

// FillPolygonSmooth fills the closed polygon pts with p using anti-aliased
// area coverage and the non-zero winding rule. Vertices are snapped to the
// 1/64 pixel grid before rasterization.
func FillPolygonSmooth(dst *pixed.Buffer, pts []pixed.PointF, p pixed.Paint) error {
	if len(pts) < 3 {
		return pixed.ValidatePaint(p)
	}
	bounds := boundsOf(pts)
	ox := int(math.Floor(bounds.X))
	oy := int(math.Floor(bounds.Y))
	shader, err := pixed.NewShader(p, pixed.Pt(ox, oy))
	if err != nil {
		return err
	}

	// Rasterize only the part of the bounding box that intersects dst.
	area := pixed.Rect{
		X: ox, Y: oy,
		W: int(math.Ceil(bounds.X+bounds.W)) - ox + 1,
		H: int(math.Ceil(bounds.Y+bounds.H)) - oy + 1,
	}.Intersect(dst.Rect())
	if area.Empty() {
		return nil
	}

	z := vector.NewRasterizer(area.W, area.H)
	for i, pt := range pts {
		x := snap(pt.X - float64(area.X))
		y := snap(pt.Y - float64(area.Y))
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, area.W, area.H))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	for y := range area.H {
		row := mask.Pix[y*mask.Stride : y*mask.Stride+area.W]
		for x, cov := range row {
			if cov == 0 {
				continue
			}
			px, py := area.X+x, area.Y+y
			c := shader.ColorAt(px, py)
			a := (uint32(cov)*uint32(c.A) + 127) / 255
			if a != 0 {
				dst.BlendRaw(px, py, c, uint8(a))
			}
		}
	}
	return nil
}

// snap rounds v to the nearest 26.6 fixed point value.
func snap(v float64) float32 {
	f := fixed.Int26_6(math.Round(v * 64))
	return float32(f) / 64
}

// boundsOf returns the bounding box of pts.
func boundsOf(pts []pixed.PointF) pixed.RectF {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return pixed.RectF{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
