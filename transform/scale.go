package transform

import (
	"golang.org/x/image/draw"

	"github.com/gogpu/pixed"
)

// Quality selects the resampling filter used by Scale.
type Quality uint8

const (
	// QualityNearest picks the source pixel under each destination center.
	QualityNearest Quality = iota

	// QualityBilinear blends the four nearest source pixels.
	QualityBilinear

	// QualityHigh uses a Catmull-Rom kernel that reads every contributing
	// source pixel; best for large reductions.
	QualityHigh
)

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case QualityNearest:
		return "nearest"
	case QualityBilinear:
		return "bilinear"
	case QualityHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Scale resizes src to w x h.
func Scale(src *pixed.Buffer, w, h int, q Quality) (*pixed.Buffer, error) {
	dst, err := pixed.New(w, h)
	if err != nil {
		return nil, err
	}
	pixed.Logger().Debug("transform: scale",
		"src", src.Rect(), "dst", dst.Rect(), "quality", q)

	if q == QualityHigh {
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		return dst, nil
	}

	sample := sampleNearest
	if q == QualityBilinear {
		sample = sampleBilinear
	}
	kx := float64(src.Width()) / float64(w)
	ky := float64(src.Height()) / float64(h)
	for y := range h {
		sy := (float64(y) + 0.5) * ky
		for x := range w {
			sx := (float64(x) + 0.5) * kx
			dst.SetPixelRaw(x, y, sample(src, sx, sy, pixed.Transparent))
		}
	}
	return dst, nil
}
