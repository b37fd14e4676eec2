package pixed

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// BytesPerPixel is the fixed pixel size: red, green, blue, alpha.
const BytesPerPixel = 4

// Buffer is a row-major RGBA pixel buffer with straight alpha.
//
// Pixel (x, y) occupies data[y*stride + x*4 : y*stride + x*4 + 4] in the
// order red, green, blue, alpha. The stride may exceed width*4 when the
// buffer wraps memory with row alignment requirements; padding bytes are
// never read or written by pixed.
//
// A Buffer is never resized in place. Operations that change the size return
// a new Buffer. Buffers are not safe for concurrent mutation.
type Buffer struct {
	data   []byte
	width  int
	height int
	stride int
}

// New creates a transparent buffer with a tightly packed stride.
func New(width, height int) (*Buffer, error) {
	return NewWithStride(width, height, rowBytes(width))
}

// NewWithStride creates a transparent buffer with a custom stride for alignment.
// Stride must be at least width*4.
func NewWithStride(width, height, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	minStride := rowBytes(width)
	if minStride < 0 {
		return nil, checkAlloc(width, height, -1)
	}
	if stride < minStride {
		return nil, fmt.Errorf("%w: stride %d, width %d", ErrInvalidStride, stride, width)
	}
	if err := checkAlloc(width, height, stride); err != nil {
		return nil, err
	}

	return &Buffer{
		data:   make([]byte, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// NewFilled creates a buffer with every pixel set to c.
func NewFilled(width, height int, c Color) (*Buffer, error) {
	b, err := New(width, height)
	if err != nil {
		return nil, err
	}
	b.Clear(c)
	return b, nil
}

// FromRaw creates a Buffer over existing data without copying.
// The caller must ensure data remains valid for the lifetime of the Buffer.
// Stride must be at least width*4 and data at least stride*height bytes.
func FromRaw(data []byte, width, height, stride int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	minStride := rowBytes(width)
	if minStride < 0 || stride < minStride {
		return nil, fmt.Errorf("%w: stride %d, width %d", ErrInvalidStride, stride, width)
	}
	if len(data)/stride < height {
		return nil, fmt.Errorf("%w: have %d bytes, need %d", ErrDataTooSmall, len(data), stride*height)
	}

	return &Buffer{
		data:   data[:stride*height],
		width:  width,
		height: height,
		stride: stride,
	}, nil
}

// Clone creates a deep copy of the buffer, preserving its stride.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)

	return &Buffer{
		data:   data,
		width:  b.width,
		height: b.height,
		stride: b.stride,
	}
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Stride returns the number of bytes per row (including padding).
func (b *Buffer) Stride() int {
	return b.stride
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// Rect returns the inclusive rectangle covering the whole buffer.
func (b *Buffer) Rect() Rect {
	return Rect{W: b.width, H: b.height}
}

// Row returns the pixel bytes of row y, without padding.
// Returns nil if y is out of bounds.
func (b *Buffer) Row(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	start := y * b.stride
	return b.data[start : start+b.width*BytesPerPixel]
}

// Offset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) Offset(x, y int) int {
	if !b.In(x, y) {
		return -1
	}
	return y*b.stride + x*BytesPerPixel
}

// In reports whether (x, y) is inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// PixelRaw returns the pixel at (x, y) without bounds checking.
// The caller guarantees 0 <= x < Width() and 0 <= y < Height().
func (b *Buffer) PixelRaw(x, y int) Color {
	i := y*b.stride + x*BytesPerPixel
	p := b.data[i : i+4 : i+4]
	return Color{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetPixelRaw sets the pixel at (x, y) without bounds checking.
// The caller guarantees 0 <= x < Width() and 0 <= y < Height().
func (b *Buffer) SetPixelRaw(x, y int, c Color) {
	i := y*b.stride + x*BytesPerPixel
	p := b.data[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

// Pixel returns the pixel at (x, y). Out-of-range coordinates return
// (Transparent, false).
func (b *Buffer) Pixel(x, y int) (Color, bool) {
	if !b.In(x, y) {
		return Transparent, false
	}
	return b.PixelRaw(x, y), true
}

// SetPixel sets the pixel at (x, y). Out-of-range coordinates are ignored.
func (b *Buffer) SetPixel(x, y int, c Color) {
	if !b.In(x, y) {
		return
	}
	b.SetPixelRaw(x, y, c)
}

// Clear sets every pixel to c. Row padding is left untouched.
func (b *Buffer) Clear(c Color) {
	if b.height == 0 {
		return
	}
	row := b.Row(0)
	for i := 0; i < len(row); i += 4 {
		row[i], row[i+1], row[i+2], row[i+3] = c.R, c.G, c.B, c.A
	}
	for y := 1; y < b.height; y++ {
		copy(b.Row(y), row)
	}
}

// SubBitmap returns a deep copy of the inclusive region r.
// The rectangle must lie fully inside the buffer.
func (b *Buffer) SubBitmap(r Rect) (*Buffer, error) {
	if r.Empty() || !b.Rect().ContainsRect(r) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfRange, r, b.width, b.height)
	}

	dst, err := New(r.W, r.H)
	if err != nil {
		return nil, err
	}
	n := r.W * BytesPerPixel
	for y := range r.H {
		start := (r.Y+y)*b.stride + r.X*BytesPerPixel
		copy(dst.Row(y), b.data[start:start+n])
	}
	return dst, nil
}

// View returns a buffer aliasing the inclusive region r of b.
// The view shares storage with b and is meant for read-only inspection;
// writes through it are visible in b.
func (b *Buffer) View(r Rect) (*Buffer, error) {
	if r.Empty() || !b.Rect().ContainsRect(r) {
		return nil, fmt.Errorf("%w: %v in %dx%d", ErrOutOfRange, r, b.width, b.height)
	}

	offset := r.Y*b.stride + r.X*BytesPerPixel
	end := (r.Y+r.H-1)*b.stride + (r.X+r.W)*BytesPerPixel

	return &Buffer{
		data:   b.data[offset:end],
		width:  r.W,
		height: r.H,
		stride: b.stride,
	}, nil
}

// Equal reports whether b and o have the same size and pixels.
// Stride and padding are ignored.
func (b *Buffer) Equal(o *Buffer) bool {
	if b.width != o.width || b.height != o.height {
		return false
	}
	for y := range b.height {
		if !bytes.Equal(b.Row(y), o.Row(y)) {
			return false
		}
	}
	return true
}

// nrgbaView exposes the buffer as an *image.NRGBA sharing its storage.
func (b *Buffer) nrgbaView() *image.NRGBA {
	// The last row may be shorter than stride for sub-views.
	pix := b.data
	need := (b.height-1)*b.stride + b.width*BytesPerPixel
	return &image.NRGBA{
		Pix:    pix[:need],
		Stride: b.stride,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// ToNRGBA converts the buffer to a tightly packed *image.NRGBA copy.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		copy(img.Pix[y*img.Stride:], b.Row(y))
	}
	return img
}

// FromImage creates a buffer from any image, converting to straight alpha.
func FromImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}
	view := b.nrgbaView()
	draw.Draw(view, view.Rect, img, bounds.Min, draw.Src)
	return b, nil
}

// At implements the image.Image interface.
func (b *Buffer) At(x, y int) color.Color {
	c, _ := b.Pixel(x, y)
	return c.NRGBA()
}

// Set implements the draw.Image interface.
func (b *Buffer) Set(x, y int, c color.Color) {
	b.SetPixel(x, y, ColorFromStd(c))
}

// Bounds implements the image.Image interface.
func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Buffer) ColorModel() color.Model {
	return color.NRGBAModel
}

// ByteSize returns the total size of the pixel store in bytes.
func (b *Buffer) ByteSize() int {
	return len(b.data)
}
