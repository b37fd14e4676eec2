// Package parallel runs independent jobs on a bounded set of goroutines.
//
// The imaging packages are single-threaded; this pool lets a batch caller
// process several images at once, each job owning its own buffers.
package parallel
