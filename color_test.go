package pixed

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#fff", White, true},
		{"000", Black, true},
		{"#f008", RGBA(255, 0, 0, 136), true},
		{"#102030", Opaque(0x10, 0x20, 0x30), true},
		{"10203040", RGBA(0x10, 0x20, 0x30, 0x40), true},
		{"#ABCDEF", Opaque(0xab, 0xcd, 0xef), true},
		{"", Color{}, false},
		{"#12345", Color{}, false},
		{"#zzzzzz", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Hex(tt.in)
			if (err == nil) != tt.ok {
				t.Fatalf("Hex(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
			}
			if tt.ok && got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorConversions(t *testing.T) {
	c := RGBA(10, 20, 30, 40)
	if c.RGB() != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("RGB() = %v", c.RGB())
	}
	if c.RGB().Color() != Opaque(10, 20, 30) {
		t.Errorf("RGB().Color() = %v", c.RGB().Color())
	}
	if got := ColorFromStd(c.NRGBA()); got != c {
		t.Errorf("ColorFromStd(NRGBA()) = %v, want %v", got, c)
	}
	if got := ColorFromStd(color.Gray{Y: 7}); got != Opaque(7, 7, 7) {
		t.Errorf("ColorFromStd(Gray) = %v", got)
	}
	if c.Sum() != 60 {
		t.Errorf("Sum() = %d, want 60", c.Sum())
	}
	if c.String() != "#0a141e28" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestColorLerp(t *testing.T) {
	a, b := Opaque(0, 0, 0), Opaque(200, 100, 50)
	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	if got := a.Lerp(b, 0.5); got != Opaque(100, 50, 25) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
}

func TestClamp(t *testing.T) {
	if ClampByte(-3) != 0 || ClampByte(300) != 255 || ClampByte(12.9) != 12 {
		t.Error("ClampByte() out of range handling")
	}
	if ClampInt(-1) != 0 || ClampInt(256) != 255 || ClampInt(77) != 77 {
		t.Error("ClampInt() out of range handling")
	}
}
