// Package transform resamples pixed buffers: arbitrary rotation, combined
// rotate-and-scale, exact quarter turns and flips, and resizing.
//
// Every operation reads from its source and returns a freshly allocated
// destination; the source is never modified. Allocation is fallible and
// reports *pixed.AllocError for oversize results.
//
// Angles are in radians. Positive angles turn the image counter-clockwise as
// seen on screen, where y grows downward.
package transform
