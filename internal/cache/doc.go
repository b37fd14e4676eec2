// Package cache provides a small, thread-safe least-recently-used cache used
// to memoize derived data such as convolution kernels.
package cache
