// Package raster draws into pixed buffers: solid and anti-aliased lines,
// inclusive rectangles, ellipses, polygons, wide and dashed strokes, and
// flood and boundary fills.
//
// All routines clip to the destination buffer; coordinates outside it are
// silently skipped. Drawing composites through pixed.Buffer.BlendPixel, so a
// paint's alpha channel is honored. Fills write pixels directly and are
// therefore idempotent.
package raster
