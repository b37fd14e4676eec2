package analysis

import (
	"github.com/gogpu/pixed"
)

// SumBuckets is the number of buckets in the channel-sum histogram (0..3*255).
const SumBuckets = 3*255 + 1

// Histogram holds per-channel counts and a histogram of R+G+B sums.
type Histogram struct {
	R, G, B, A [256]int

	// Sum counts pixels by R+G+B.
	Sum [SumBuckets]int
}

// ComputeHistogram builds the histogram of src in one scan.
func ComputeHistogram(src *pixed.Buffer) *Histogram {
	h := &Histogram{}
	w := src.Width()
	for y := range src.Height() {
		row := src.Row(y)
		for x := range w {
			px := row[x*4 : x*4+4 : x*4+4]
			h.R[px[0]]++
			h.G[px[1]]++
			h.B[px[2]]++
			h.A[px[3]]++
			h.Sum[int(px[0])+int(px[1])+int(px[2])]++
		}
	}
	return h
}

// Total returns the number of pixels counted.
func (h *Histogram) Total() int {
	n := 0
	for _, c := range h.A {
		n += c
	}
	return n
}

// Mean returns the average value of each channel.
func (h *Histogram) Mean() (r, g, b, a float64) {
	n := h.Total()
	if n == 0 {
		return 0, 0, 0, 0
	}
	mean := func(ch *[256]int) float64 {
		s := 0
		for v, c := range ch {
			s += v * c
		}
		return float64(s) / float64(n)
	}
	return mean(&h.R), mean(&h.G), mean(&h.B), mean(&h.A)
}

// CountInSum returns the number of pixels whose R+G+B lies in [lo, hi].
func (h *Histogram) CountInSum(lo, hi int) int {
	lo = max(lo, 0)
	hi = min(hi, SumBuckets-1)
	n := 0
	for s := lo; s <= hi; s++ {
		n += h.Sum[s]
	}
	return n
}
