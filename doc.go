// Package pixed provides the pixel-buffer core of a 2D raster image editor.
//
// # Overview
//
// pixed works on in-memory bitmaps stored row-major with four straight-alpha
// channels per pixel (red, green, blue, alpha). It provides the buffer type,
// compositing primitives and paint sources; the sub-packages build drawing,
// resampling, filtering and analysis on top of it:
//
//   - raster: lines (solid and Wu anti-aliased), rectangles, ellipses,
//     polygons, strokes and flood/boundary fills
//   - transform: rotation, scaling and exact 90 degree turns
//   - filter: separable convolution, blur, unsharp mask and per-pixel remaps,
//     plus a small filter registry with padding contracts
//   - analysis: histograms, color counting and auto-crop detection
//
// # Quick Start
//
//	buf, err := pixed.NewFilled(640, 480, pixed.White)
//	if err != nil {
//	    return err
//	}
//	raster.LineAA(buf, pixed.Pt(10, 10), pixed.Pt(300, 200), pixed.Black)
//	blurred, err := filter.GaussianBlur(buf, 2)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Integer rectangles are inclusive: the last pixel of Rect{X, Y, W, H}
//     is (X+W-1, Y+H-1)
//
// # Ownership
//
// Buffers are never resized in place. Every operation that changes the size
// or reads the whole source while writing (transforms, convolutions) returns
// a freshly allocated buffer; the caller swaps it in. Buffers are not safe for
// concurrent mutation.
//
// # Errors
//
// Invalid arguments at API boundaries are reported with the sentinel errors
// in this package. Allocations larger than [MaxBufferBytes] fail with
// [*AllocError], which matches [ErrTooLarge] with errors.Is, so callers can
// report "image too large" instead of crashing.
package pixed

// Version information
const (
	// Version is the current version of the library
	Version = "0.3.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 3

	// VersionPatch is the patch version
	VersionPatch = 0
)
