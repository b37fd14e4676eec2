package raster

import (
	"math"

	"github.com/gogpu/pixed"
)

// Line draws a 1-pixel aliased line from p0 to p1, both endpoints included.
// The pixel set does not depend on endpoint order.
func Line(dst *pixed.Buffer, p0, p1 pixed.Point, c pixed.Color) {
	// Always walk from the same end so reversed calls hit identical pixels.
	if p1.X < p0.X || (p1.X == p0.X && p1.Y < p0.Y) {
		p0, p1 = p1, p0
	}
	bresenham(p0, p1, func(x, y int) {
		dst.BlendPixel(x, y, c, c.A)
	})
}

// bresenham visits every pixel of the line from p0 to p1 exactly once.
func bresenham(p0, p1 pixed.Point, plot func(x, y int)) {
	dx := abs(p1.X - p0.X)
	dy := -abs(p1.Y - p0.Y)
	sx, sy := 1, 1
	if p0.X > p1.X {
		sx = -1
	}
	if p0.Y > p1.Y {
		sy = -1
	}
	err := dx + dy
	x, y := p0.X, p0.Y
	for {
		plot(x, y)
		if x == p1.X && y == p1.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// LineAA draws an anti-aliased line between integer endpoints using Wu's
// algorithm. See LineAAF.
func LineAA(dst *pixed.Buffer, p0, p1 pixed.Point, c pixed.Color) {
	if p0 == p1 {
		dst.BlendPixel(p0.X, p0.Y, c, c.A)
		return
	}
	LineAAF(dst, p0.F(), p1.F(), c)
}

// LineAAF draws an anti-aliased line with Wu's algorithm.
//
// The line is walked along its dominant axis. At each step the two pixels
// straddling the exact position receive intensities 1-frac(y) and frac(y);
// the endpoint pairs are additionally weighted by their horizontal coverage.
// Each pixel is blended with alpha intensity*c.A.
func LineAAF(dst *pixed.Buffer, p0, p1 pixed.PointF, c pixed.Color) {
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y

	plot := func(x, y int, intensity float64) {
		dst.BlendPixel(x, y, c, pixed.ClampByte(intensity*float64(c.A)+0.5))
	}

	if x0 == x1 && y0 == y1 {
		plot(int(math.Round(x0)), int(math.Round(y0)), 1)
		return
	}

	steep := math.Abs(y1-y0) > math.Abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
		plot = transposed(plot)
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := y1 - y0
	gradient := 1.0
	if dx != 0 {
		gradient = dy / dx
	}

	// First endpoint.
	xend := math.Round(x0)
	yend := y0 + gradient*(xend-x0)
	xgap := rfpart(x0 + 0.5)
	xpxl1 := int(xend)
	ypxl1 := int(math.Floor(yend))
	plot(xpxl1, ypxl1, rfpart(yend)*xgap)
	plot(xpxl1, ypxl1+1, fpart(yend)*xgap)
	intery := yend + gradient

	// Second endpoint.
	xend = math.Round(x1)
	yend = y1 + gradient*(xend-x1)
	xgap = fpart(x1 + 0.5)
	xpxl2 := int(xend)
	ypxl2 := int(math.Floor(yend))
	plot(xpxl2, ypxl2, rfpart(yend)*xgap)
	plot(xpxl2, ypxl2+1, fpart(yend)*xgap)

	for x := xpxl1 + 1; x < xpxl2; x++ {
		iy := int(math.Floor(intery))
		plot(x, iy, rfpart(intery))
		plot(x, iy+1, fpart(intery))
		intery += gradient
	}
}

func transposed(plot func(x, y int, v float64)) func(x, y int, v float64) {
	return func(x, y int, v float64) { plot(y, x, v) }
}

// fpart returns the fractional part of x.
func fpart(x float64) float64 {
	return x - math.Floor(x)
}

// rfpart returns 1 - fpart(x).
func rfpart(x float64) float64 {
	return 1 - fpart(x)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
