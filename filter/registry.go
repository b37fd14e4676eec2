package filter

import (
	"fmt"
	"strings"

	"github.com/gogpu/pixed"
)

// Kind identifies a registry filter.
type Kind int

const (
	// KindNone passes the image through unchanged.
	KindNone Kind = iota
	// KindStrokeOutline draws an outline around visible content.
	KindStrokeOutline
	// KindBlur applies a Gaussian blur of sigma Params.Radius.
	KindBlur
	// KindPixelize averages square cells into blocks.
	KindPixelize
	// KindPinchWhirl distorts the image around its center.
	KindPinchWhirl
	// KindInvert inverts the color channels.
	KindInvert
	// KindDropShadow composites the image over a blurred, offset shadow.
	KindDropShadow
)

var kindNames = [...]string{
	KindNone:          "none",
	KindStrokeOutline: "stroke-outline",
	KindBlur:          "blur",
	KindPixelize:      "pixelize",
	KindPinchWhirl:    "pinch-whirl",
	KindInvert:        "invert",
	KindDropShadow:    "drop-shadow",
}

// Kinds lists every registry filter in id order.
func Kinds() []Kind {
	ks := make([]Kind, len(kindNames))
	for i := range ks {
		ks[i] = Kind(i)
	}
	return ks
}

// String returns the kind's name, e.g. "drop-shadow".
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ParseKind returns the kind named s. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(i), nil
		}
	}
	return KindNone, fmt.Errorf("%w: unknown filter %q", pixed.ErrInvalidParameter, s)
}

// Params carries the arguments of every registry filter; each kind reads
// only the fields it needs.
type Params struct {
	// Radius is the Gaussian sigma for blur and drop shadow, and the effect
	// radius for pinch-whirl (0 means half the smaller side).
	Radius float64

	// Width is the stroke-outline thickness in pixels.
	Width int

	// Size is the pixelize block size.
	Size int

	// Color is the outline or shadow color.
	Color pixed.Color

	// Offset is the drop-shadow displacement.
	Offset pixed.Point

	// Pinch and Whirl drive the pinch-whirl distortion.
	Pinch, Whirl float64

	// Background fills pinch-whirl samples that fall outside the image.
	Background pixed.Color
}

// Filter is a configured registry filter.
type Filter struct {
	Kind Kind

	// Padding is the margin, in pixels, the filter reads or writes beyond an
	// edited region. Callers filtering part of an image widen the region by
	// Padding first.
	Padding int

	apply func(src *pixed.Buffer) (*pixed.Buffer, error)
}

// Apply runs the filter on src and returns a new buffer.
func (f Filter) Apply(src *pixed.Buffer) (*pixed.Buffer, error) {
	if f.apply == nil {
		return src.Clone(), nil
	}
	return f.apply(src)
}

// infallible adapts a filter that cannot fail.
func infallible(f func(*pixed.Buffer) *pixed.Buffer) func(*pixed.Buffer) (*pixed.Buffer, error) {
	return func(src *pixed.Buffer) (*pixed.Buffer, error) {
		return f(src), nil
	}
}

// New configures the filter kind with p.
func New(kind Kind, p Params) (Filter, error) {
	f := Filter{Kind: kind}
	switch kind {
	case KindNone:
		f.apply = infallible((*pixed.Buffer).Clone)

	case KindStrokeOutline:
		if p.Width < 0 {
			return Filter{}, fmt.Errorf("%w: outline width %d", pixed.ErrInvalidParameter, p.Width)
		}
		f.Padding = p.Width
		f.apply = infallible(func(src *pixed.Buffer) *pixed.Buffer {
			return Outline(src, p.Width, p.Color)
		})

	case KindBlur:
		if !(p.Radius >= 0 && p.Radius <= MaxSigma) {
			return Filter{}, fmt.Errorf("%w: blur sigma %g", pixed.ErrInvalidParameter, p.Radius)
		}
		f.Padding = KernelRadius(p.Radius)
		f.apply = func(src *pixed.Buffer) (*pixed.Buffer, error) {
			return GaussianBlur(src, p.Radius)
		}

	case KindPixelize:
		if p.Size < 1 {
			return Filter{}, fmt.Errorf("%w: pixelize block size %d", pixed.ErrInvalidParameter, p.Size)
		}
		f.Padding = p.Size - 1
		f.apply = func(src *pixed.Buffer) (*pixed.Buffer, error) {
			return Pixelize(src, p.Size)
		}

	case KindPinchWhirl:
		f.apply = infallible(func(src *pixed.Buffer) *pixed.Buffer {
			return PinchWhirl(src, p.Pinch, p.Whirl, p.Radius, p.Background)
		})

	case KindInvert:
		f.apply = infallible(Invert)

	case KindDropShadow:
		if !(p.Radius >= 0 && p.Radius <= MaxSigma) {
			return Filter{}, fmt.Errorf("%w: shadow sigma %g", pixed.ErrInvalidParameter, p.Radius)
		}
		f.Padding = max(abs(p.Offset.X), abs(p.Offset.Y)) + KernelRadius(p.Radius)
		f.apply = infallible(func(src *pixed.Buffer) *pixed.Buffer {
			return DropShadow(src, p.Offset, p.Radius, p.Color)
		})

	default:
		return Filter{}, fmt.Errorf("%w: unknown filter kind %d", pixed.ErrInvalidParameter, int(kind))
	}
	return f, nil
}

// ApplyRegion filters the part of dst inside r in place. The region is
// widened by f.Padding (clipped to dst) so the filter sees enough context,
// the widened area is filtered, and only the pixels of r are written back.
func ApplyRegion(dst *pixed.Buffer, r pixed.Rect, f Filter) error {
	r = r.Intersect(dst.Rect())
	if r.Empty() {
		return nil
	}
	work := r.Inset(-f.Padding).Intersect(dst.Rect())
	sub, err := dst.SubBitmap(work)
	if err != nil {
		return err
	}
	out, err := f.Apply(sub)
	if err != nil {
		return err
	}
	pixed.Logger().Debug("filter: apply region",
		"kind", f.Kind, "region", r, "work", work)

	pixed.BlitRect(dst, out, r.Translate(pixed.Pt(-work.X, -work.Y)), r.First())
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
