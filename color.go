package pixed

import (
	"fmt"
	"image/color"
)

// Color is a straight (non-premultiplied) alpha color with 8-bit channels.
// Equality is exact component equality, so Color can be compared with ==
// and used as a map key.
type Color struct {
	R, G, B, A uint8
}

// RGB is the opaque three-channel subset of Color.
type RGB struct {
	R, G, B uint8
}

// Opaque creates a fully opaque color.
func Opaque(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from all four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Color returns the opaque Color for c.
func (c RGB) Color() Color {
	return Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// RGB drops the alpha channel.
func (c Color) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Sum returns R+G+B, in the range [0, 765].
func (c Color) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// NRGBA converts c to the standard library's straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String returns the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ColorFromStd converts any color.Color to Color.
func ColorFromStd(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex parses a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with optional '#'.
func Hex(hex string) (Color, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint8
	v[3] = 255
	switch len(s) {
	case 3, 4:
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("pixed: invalid hex color %q", hex)
			}
			v[i] = d * 17
		}
	case 6, 8:
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Color{}, fmt.Errorf("pixed: invalid hex color %q", hex)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Color{}, fmt.Errorf("pixed: invalid hex color %q", hex)
	}

	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// hexDigit decodes one hex digit.
func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Lerp interpolates every channel between c and other; t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
		A: lerp8(c.A, other.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return ClampByte(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

// ClampByte restricts a value to [0, 255] and truncates it to a byte.
func ClampByte(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}

// ClampInt restricts an integer to [0, 255].
func ClampInt(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

// Common colors
var (
	Black       = Opaque(0, 0, 0)
	White       = Opaque(255, 255, 255)
	Red         = Opaque(255, 0, 0)
	Green       = Opaque(0, 255, 0)
	Blue        = Opaque(0, 0, 255)
	Yellow      = Opaque(255, 255, 0)
	Cyan        = Opaque(0, 255, 255)
	Magenta     = Opaque(255, 0, 255)
	Transparent = Color{}
)
