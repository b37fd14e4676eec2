package pixed

import (
	"math"
	"sync/atomic"
)

// DefaultMaxBufferBytes is the initial allocation ceiling (1 GiB).
const DefaultMaxBufferBytes int64 = 1 << 30

var maxBufferBytes atomic.Int64

func init() {
	maxBufferBytes.Store(DefaultMaxBufferBytes)
}

// SetMaxBufferBytes sets the largest pixel store, in bytes, that buffer
// constructors and transforms will allocate. Requests above it fail with
// *AllocError. A value <= 0 restores DefaultMaxBufferBytes.
//
// SetMaxBufferBytes is safe for concurrent use.
func SetMaxBufferBytes(n int64) {
	if n <= 0 {
		n = DefaultMaxBufferBytes
	}
	maxBufferBytes.Store(n)
}

// MaxBufferBytes returns the current allocation ceiling.
func MaxBufferBytes() int64 {
	return maxBufferBytes.Load()
}

// checkAlloc validates that a stride*height store fits the ceiling.
func checkAlloc(width, height, stride int) error {
	limit := maxBufferBytes.Load()
	size := int64(-1)
	if stride <= 0 || int64(height) <= math.MaxInt64/int64(stride) {
		size = int64(stride) * int64(height)
	}
	if size >= 0 && size <= limit && size <= math.MaxInt {
		return nil
	}
	err := &AllocError{Width: width, Height: height, Bytes: size, Limit: limit}
	Logger().Warn("pixed: allocation rejected",
		"width", width, "height", height, "bytes", size, "limit", limit)
	return err
}

// rowBytes returns width*4, or -1 if it overflows.
func rowBytes(width int) int {
	if width > math.MaxInt/4 {
		return -1
	}
	return width * 4
}
