package analysis

import (
	"github.com/gogpu/pixed"
)

// ColorCounts maps each exact color of an image to its number of pixels.
// Colors are remembered in the order they were first met in a row-major
// scan.
type ColorCounts struct {
	counts map[pixed.Color]int
	order  []pixed.Color
}

// CountColors counts the colors of src.
func CountColors(src *pixed.Buffer) *ColorCounts {
	cc := &ColorCounts{counts: make(map[pixed.Color]int)}
	w := src.Width()
	for y := range src.Height() {
		row := src.Row(y)
		for x := range w {
			c := pixed.Color{R: row[x*4], G: row[x*4+1], B: row[x*4+2], A: row[x*4+3]}
			n, seen := cc.counts[c]
			if !seen {
				cc.order = append(cc.order, c)
			}
			cc.counts[c] = n + 1
		}
	}
	pixed.Logger().Debug("analysis: colors counted",
		"width", w, "height", src.Height(), "distinct", len(cc.order))
	return cc
}

// Distinct returns the number of unique colors.
func (cc *ColorCounts) Distinct() int {
	return len(cc.order)
}

// Count returns the number of pixels of color c.
func (cc *ColorCounts) Count(c pixed.Color) int {
	return cc.counts[c]
}

// Colors returns the unique colors in first-seen order.
func (cc *ColorCounts) Colors() []pixed.Color {
	out := make([]pixed.Color, len(cc.order))
	copy(out, cc.order)
	return out
}

// MostCommon returns the color with the highest count and that count.
// Ties go to the color seen first.
func (cc *ColorCounts) MostCommon() (pixed.Color, int) {
	var best pixed.Color
	bestN := 0
	for _, c := range cc.order {
		if n := cc.counts[c]; n > bestN {
			best, bestN = c, n
		}
	}
	return best, bestN
}

// DistinctColors returns the number of unique colors in src.
func DistinctColors(src *pixed.Buffer) int {
	return CountColors(src).Distinct()
}

// MostCommonColor returns the most frequent color in src.
func MostCommonColor(src *pixed.Buffer) pixed.Color {
	c, _ := CountColors(src).MostCommon()
	return c
}
