package filter

import (
	"fmt"
	"math"
	"slices"

	"github.com/gogpu/pixed"
	"github.com/gogpu/pixed/internal/cache"
)

// Kernel is a 1D convolution kernel of odd length, centered on its middle
// element.
type Kernel []float64

// Validate reports whether k can be used for convolution: non-empty, odd
// length and finite weights.
func (k Kernel) Validate() error {
	if len(k) == 0 || len(k)%2 == 0 {
		return fmt.Errorf("%w: length %d", pixed.ErrInvalidKernel, len(k))
	}
	for i, w := range k {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: weight %d is %v", pixed.ErrInvalidKernel, i, w)
		}
	}
	return nil
}

// Center returns the index of the middle element.
func (k Kernel) Center() int {
	return len(k) / 2
}

// Sum returns the total weight.
func (k Kernel) Sum() float64 {
	var s float64
	for _, w := range k {
		s += w
	}
	return s
}

// MaxSigma is the largest Gaussian sigma honored. Larger values are clamped
// by GaussianKernel and KernelRadius and rejected by New.
const MaxSigma = 256

// KernelRadius returns the half-width of the Gaussian kernel for sigma,
// which is also the margin a blur reads beyond each pixel.
func KernelRadius(sigma float64) int {
	if !(sigma > 0) {
		return 0
	}
	return int(math.Ceil(min(sigma, MaxSigma) * 3))
}

// Sigma is quantized to 1/1000 pixel before kernels are built and cached.
const sigmaQuantum = 1000

var kernels = cache.New[int, Kernel](64)

// GaussianKernel returns a normalized Gaussian kernel of length
// 2*ceil(3*sigma)+1. A sigma <= 0 returns the identity kernel [1]; sigma
// above MaxSigma is clamped.
//
// Kernels are cached; the returned slice is a private copy.
func GaussianKernel(sigma float64) Kernel {
	if !(sigma > 0) {
		return Kernel{1}
	}
	key := int(math.Round(min(sigma, MaxSigma) * sigmaQuantum))
	if key == 0 {
		return Kernel{1}
	}
	k := kernels.GetOrCreate(key, func() Kernel {
		return gaussian(float64(key) / sigmaQuantum)
	})
	return slices.Clone(k)
}

func gaussian(sigma float64) Kernel {
	half := KernelRadius(sigma)
	k := make(Kernel, 2*half+1)
	twoSigmaSq := 2 * sigma * sigma
	var sum float64
	for i := range k {
		x := float64(i - half)
		k[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += k[i]
	}
	for i := range k {
		k[i] /= sum
	}
	pixed.Logger().Debug("filter: gaussian kernel", "sigma", sigma, "size", len(k))
	return k
}

// BoxKernel returns a uniform kernel of length 2*radius+1.
func BoxKernel(radius int) Kernel {
	if radius <= 0 {
		return Kernel{1}
	}
	k := make(Kernel, 2*radius+1)
	for i := range k {
		k[i] = 1 / float64(len(k))
	}
	return k
}

// reflect maps an out-of-range index back into [0, n) by mirroring about
// the edge pixels: -1 -> 1, n -> n-2. Indices that are still out of range
// after one reflection (kernels wider than the image) clamp to the edge.
func reflect(i, n int) int {
	if i < 0 {
		i = -i
	}
	if i >= n {
		i = 2*n - 2 - i
	}
	return max(0, min(i, n-1))
}
