package raster

import (
	"math"
	"slices"

	"github.com/gogpu/pixed"
)

// Dash is an on/off stroke pattern measured in pixels along the path.
// Array alternates "on" and "off" lengths starting with "on"; an odd-length
// Array repeats once so [4] behaves as [4, 4]. Offset shifts the pattern
// start along the path.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash builds a pattern from on/off lengths. Negative lengths count as
// their magnitude. It returns nil, meaning a solid stroke, when no length is
// positive.
//
//	NewDash(6, 4)       // 6 on, 4 off
//	NewDash(8, 2, 1, 2) // dash-dot
func NewDash(lengths ...float64) *Dash {
	arr := make([]float64, len(lengths))
	positive := false
	for i, l := range lengths {
		arr[i] = math.Abs(l)
		positive = positive || arr[i] > 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: arr}
}

// WithOffset returns a copy of d starting offset pixels into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// PatternLength returns the length of one full on/off cycle.
func (d *Dash) PatternLength() float64 {
	sum := 0.0
	for _, l := range d.cycle() {
		sum += l
	}
	return sum
}

// IsDashed reports whether d produces gaps.
func (d *Dash) IsDashed() bool {
	return d != nil && d.PatternLength() > 0
}

// NormalizedOffset returns Offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	n := d.PatternLength()
	if n <= 0 {
		return 0
	}
	o := math.Mod(d.Offset, n)
	if o < 0 {
		o += n
	}
	return o
}

// cycle returns the even-length on/off sequence.
func (d *Dash) cycle() []float64 {
	if d == nil || len(d.Array) == 0 {
		return nil
	}
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	return append(slices.Clone(d.Array), d.Array...)
}

// split cuts the polyline pts into the "on" pieces of the pattern.
func (d *Dash) split(pts []pixed.PointF) [][]pixed.PointF {
	arr := d.cycle()
	if !d.IsDashed() || len(pts) < 2 {
		return [][]pixed.PointF{pts}
	}

	// Position inside the pattern.
	idx := 0
	remaining := arr[0]
	for skip := d.NormalizedOffset(); skip > 0; {
		if skip < remaining {
			remaining -= skip
			break
		}
		skip -= remaining
		idx = (idx + 1) % len(arr)
		remaining = arr[idx]
	}

	var out [][]pixed.PointF
	var cur []pixed.PointF
	on := idx%2 == 0
	if on {
		cur = []pixed.PointF{pts[0]}
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > remaining {
			pos += remaining
			t := pos / segLen
			p := pixed.PointF{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
			if on {
				out = append(out, append(cur, p))
				cur = nil
			} else {
				cur = []pixed.PointF{p}
			}
			on = !on
			idx = (idx + 1) % len(arr)
			remaining = arr[idx]
		}
		remaining -= segLen - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && len(cur) > 1 {
		out = append(out, cur)
	}
	return out
}
