package pixed

import (
	"errors"
	"fmt"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("pixed: invalid dimensions")

	// ErrInvalidStride is returned when stride is less than width*4.
	ErrInvalidStride = errors.New("pixed: stride too small for width")

	// ErrDataTooSmall is returned when provided data is smaller than stride*height.
	ErrDataTooSmall = errors.New("pixed: data buffer too small")

	// ErrOutOfRange is returned when a rectangle does not lie inside a buffer.
	ErrOutOfRange = errors.New("pixed: rectangle out of range")

	// ErrInvalidKernel is returned for empty, even-length or non-finite kernels.
	ErrInvalidKernel = errors.New("pixed: invalid kernel")

	// ErrInvalidPaint is returned for paints that cannot produce a color,
	// such as gradients without stops or patterns without an image.
	ErrInvalidPaint = errors.New("pixed: invalid paint")

	// ErrInvalidParameter is returned for filter or transform arguments
	// outside their domain, such as a zero pixelize block size.
	ErrInvalidParameter = errors.New("pixed: invalid parameter")

	// ErrTooLarge is matched by every *AllocError.
	ErrTooLarge = errors.New("pixed: image too large")
)

// AllocError reports a buffer allocation that was refused because it exceeds
// the configured ceiling or cannot be represented. It is a recoverable
// condition: the caller asked for an image that is too large.
type AllocError struct {
	Width  int
	Height int
	Bytes  int64 // requested size, -1 if it overflows int64
	Limit  int64
}

// Error implements the error interface.
func (e *AllocError) Error() string {
	if e.Bytes < 0 {
		return fmt.Sprintf("pixed: image too large: %dx%d overflows", e.Width, e.Height)
	}
	return fmt.Sprintf("pixed: image too large: %dx%d needs %d bytes, limit %d",
		e.Width, e.Height, e.Bytes, e.Limit)
}

// Is reports whether target is ErrTooLarge.
func (e *AllocError) Is(target error) bool {
	return target == ErrTooLarge
}
