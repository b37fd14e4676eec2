// Package filter implements whole-image filters over pixed buffers:
// separable convolution and the blurs built on it, block pixelization,
// per-pixel color remaps, pinch/whirl distortion, outlines and drop shadows.
//
// Every filter reads its source and returns a new buffer; multi-pass filters
// allocate a fresh destination for each pass and never work in place.
//
// Filters are also available through a small registry keyed by Kind. Each
// registry Filter reports the padding it needs around an edited region so
// callers can widen the working area before filtering it (see ApplyRegion).
package filter
