package transform

import "github.com/gogpu/pixed"

// remap builds a w x h buffer whose pixel (x, y) is src at from(x, y).
func remap(src *pixed.Buffer, w, h int, from func(x, y int) (int, int)) (*pixed.Buffer, error) {
	dst, err := pixed.New(w, h)
	if err != nil {
		return nil, err
	}
	for y := range h {
		for x := range w {
			sx, sy := from(x, y)
			dst.SetPixelRaw(x, y, src.PixelRaw(sx, sy))
		}
	}
	return dst, nil
}

// Rotate90CW turns src a quarter clockwise. A w x h source yields h x w.
func Rotate90CW(src *pixed.Buffer) (*pixed.Buffer, error) {
	w, h := src.Width(), src.Height()
	return remap(src, h, w, func(x, y int) (int, int) {
		return y, h - 1 - x
	})
}

// Rotate90CCW turns src a quarter counter-clockwise.
func Rotate90CCW(src *pixed.Buffer) (*pixed.Buffer, error) {
	w, h := src.Width(), src.Height()
	return remap(src, h, w, func(x, y int) (int, int) {
		return w - 1 - y, x
	})
}

// Rotate180 turns src half a turn.
func Rotate180(src *pixed.Buffer) (*pixed.Buffer, error) {
	w, h := src.Width(), src.Height()
	return remap(src, w, h, func(x, y int) (int, int) {
		return w - 1 - x, h - 1 - y
	})
}

// FlipHorizontal mirrors src left to right.
func FlipHorizontal(src *pixed.Buffer) (*pixed.Buffer, error) {
	w, h := src.Width(), src.Height()
	return remap(src, w, h, func(x, y int) (int, int) {
		return w - 1 - x, y
	})
}

// FlipVertical mirrors src top to bottom.
func FlipVertical(src *pixed.Buffer) (*pixed.Buffer, error) {
	w, h := src.Width(), src.Height()
	return remap(src, w, h, func(x, y int) (int, int) {
		return x, h - 1 - y
	})
}
