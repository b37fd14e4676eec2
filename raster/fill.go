package raster

import (
	"github.com/gogpu/pixed"
)

// FloodFill replaces the 4-connected region of pixels that share the seed
// pixel's color with p. Pixels are written, not blended, so repeating a fill
// changes nothing. Object-aligned patterns are anchored at the region's
// bounding box. It returns the number of pixels painted.
func FloodFill(dst *pixed.Buffer, seed pixed.Point, p pixed.Paint) (int, error) {
	if err := pixed.ValidatePaint(p); err != nil {
		return 0, err
	}
	target, ok := dst.Pixel(seed.X, seed.Y)
	if !ok {
		return 0, nil
	}
	if s, isSolid := p.(pixed.SolidColor); isSolid && s.Color == target {
		return 0, nil
	}
	r := collect(dst, seed, func(c pixed.Color) bool { return c == target })
	return r.paint(dst, p)
}

// BoundaryFill paints the 4-connected region around seed that is enclosed by
// pixels of the boundary color. It returns the number of pixels painted.
func BoundaryFill(dst *pixed.Buffer, seed pixed.Point, boundary pixed.Color, p pixed.Paint) (int, error) {
	if err := pixed.ValidatePaint(p); err != nil {
		return 0, err
	}
	c, ok := dst.Pixel(seed.X, seed.Y)
	if !ok || c == boundary {
		return 0, nil
	}
	r := collect(dst, seed, func(c pixed.Color) bool { return c != boundary })
	return r.paint(dst, p)
}

// region is the set of pixels reached by a fill.
type region struct {
	w    int
	mask []bool
	n    int
	box  pixed.Rect
}

// addRun marks pixels [x0, x1] of row y.
func (r *region) addRun(x0, x1, y int) {
	row := r.mask[y*r.w:]
	for x := x0; x <= x1; x++ {
		row[x] = true
	}
	r.n += x1 - x0 + 1
	r.box = r.box.Union(pixed.Rect{X: x0, Y: y, W: x1 - x0 + 1, H: 1})
}

// collect runs a scanline fill from seed over pixels accepted by inside.
func collect(b *pixed.Buffer, seed pixed.Point, inside func(pixed.Color) bool) *region {
	w, h := b.Width(), b.Height()
	r := &region{w: w, mask: make([]bool, w*h)}

	want := func(x, y int) bool {
		return !r.mask[y*w+x] && inside(b.PixelRaw(x, y))
	}

	stack := []pixed.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !want(p.X, p.Y) {
			continue
		}

		// Extend the run left and right.
		x0 := p.X
		for x0 > 0 && want(x0-1, p.Y) {
			x0--
		}
		x1 := p.X
		for x1 < w-1 && want(x1+1, p.Y) {
			x1++
		}
		r.addRun(x0, x1, p.Y)

		// Queue one seed per run in the rows above and below.
		for _, ny := range [2]int{p.Y - 1, p.Y + 1} {
			if ny < 0 || ny >= h {
				continue
			}
			inRun := false
			for x := x0; x <= x1; x++ {
				if want(x, ny) {
					if !inRun {
						stack = append(stack, pixed.Pt(x, ny))
						inRun = true
					}
				} else {
					inRun = false
				}
			}
		}
	}
	return r
}

// paint writes p to every pixel of the region.
func (r *region) paint(dst *pixed.Buffer, p pixed.Paint) (int, error) {
	if r.n == 0 {
		return 0, nil
	}
	shader, err := pixed.NewShader(p, r.box.First())
	if err != nil {
		return 0, err
	}
	for y := r.box.Y; y < r.box.Y+r.box.H; y++ {
		row := r.mask[y*r.w : (y+1)*r.w]
		for x := r.box.X; x < r.box.X+r.box.W; x++ {
			if row[x] {
				dst.SetPixelRaw(x, y, shader.ColorAt(x, y))
			}
		}
	}
	return r.n, nil
}
