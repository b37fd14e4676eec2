// Package analysis reads pixed buffers and reports statistics about their
// colors: channel histograms, exact color counts and auto-crop candidates
// derived from uniform image edges.
//
// Every function scans its source once and keeps no state between calls.
package analysis
