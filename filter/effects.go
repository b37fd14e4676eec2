package filter

import (
	"math"

	"github.com/gogpu/pixed"
)

// over composites top over bottom with straight alpha.
func over(top, bottom pixed.Color) pixed.Color {
	if top.A == 255 || bottom.A == 0 {
		return top
	}
	if top.A == 0 {
		return bottom
	}
	ta := float64(top.A) / 255
	ba := float64(bottom.A) / 255 * (1 - ta)
	oa := ta + ba
	mix := func(t, b uint8) uint8 {
		return round((float64(t)*ta + float64(b)*ba) / oa)
	}
	return pixed.Color{
		R: mix(top.R, bottom.R),
		G: mix(top.G, bottom.G),
		B: mix(top.B, bottom.B),
		A: round(oa * 255),
	}
}

// underlay composites src over a layer of color c whose per-pixel opacity is
// mask (0..1, one value per pixel, row-major).
func underlay(src *pixed.Buffer, mask []float64, c pixed.Color) *pixed.Buffer {
	w := src.Width()
	dst := src.Clone()
	for y := range src.Height() {
		for x := range w {
			m := mask[y*w+x]
			if m <= 0 {
				continue
			}
			layer := c.WithAlpha(round(m * float64(c.A)))
			dst.SetPixelRaw(x, y, over(src.PixelRaw(x, y), layer))
		}
	}
	return dst
}

// Outline draws a border of color c around the visible parts of src: every
// pixel within Euclidean distance width of a pixel with non-zero alpha gets
// c underneath it. The outline takes the strongest nearby alpha, so soft
// edges give soft outlines.
func Outline(src *pixed.Buffer, width int, c pixed.Color) *pixed.Buffer {
	if width <= 0 {
		return src.Clone()
	}
	w, h := src.Width(), src.Height()

	// Disc offsets, scanned as horizontal extents per row.
	extent := make([]int, 2*width+1)
	for j := -width; j <= width; j++ {
		extent[j+width] = int(math.Sqrt(float64(width*width - j*j)))
	}

	mask := make([]float64, w*h)
	for y := range h {
		for x := range w {
			var best uint8
			for j := -width; j <= width && best < 255; j++ {
				sy := y + j
				if sy < 0 || sy >= h {
					continue
				}
				e := extent[j+width]
				for sx := max(0, x-e); sx <= min(w-1, x+e); sx++ {
					if a := src.PixelRaw(sx, sy).A; a > best {
						best = a
					}
				}
			}
			mask[y*w+x] = float64(best) / 255
		}
	}
	return underlay(src, mask, c)
}

// DropShadow draws a shadow of color c beneath src: the alpha channel of src
// is shifted by offset, blurred with sigma and composited under the image.
// The result has the size of src; shadow falling outside it is cut off.
func DropShadow(src *pixed.Buffer, offset pixed.Point, sigma float64, c pixed.Color) *pixed.Buffer {
	w, h := src.Width(), src.Height()
	mask := make([]float64, w*h)
	for y := range h {
		sy := y - offset.Y
		if sy < 0 || sy >= h {
			continue
		}
		for x := range w {
			sx := x - offset.X
			if sx < 0 || sx >= w {
				continue
			}
			mask[y*w+x] = float64(src.PixelRaw(sx, sy).A) / 255
		}
	}
	if k := GaussianKernel(sigma); len(k) > 1 {
		mask = blurPlane(mask, w, h, k)
	}
	return underlay(src, mask, c)
}

// blurPlane convolves a single-channel plane with k in both directions.
// Outside the plane is transparent, so shadows fade toward the edges.
func blurPlane(src []float64, w, h int, k Kernel) []float64 {
	half := k.Center()
	tmp := make([]float64, len(src))
	for y := range h {
		for x := range w {
			var s float64
			for i, wt := range k {
				if sx := x + i - half; sx >= 0 && sx < w {
					s += src[y*w+sx] * wt
				}
			}
			tmp[y*w+x] = s
		}
	}
	dst := make([]float64, len(src))
	for y := range h {
		for x := range w {
			var s float64
			for i, wt := range k {
				if sy := y + i - half; sy >= 0 && sy < h {
					s += tmp[sy*w+x] * wt
				}
			}
			dst[y*w+x] = s
		}
	}
	return dst
}
