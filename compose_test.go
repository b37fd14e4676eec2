package pixed

import "testing"

func TestBlendPixelIdentities(t *testing.T) {
	dst := []Color{Black, White, RGBA(12, 200, 99, 0), RGBA(1, 2, 3, 128)}
	src := Opaque(200, 100, 50)

	for _, d := range dst {
		b, _ := NewFilled(1, 1, d)
		b.BlendPixel(0, 0, src, 255)
		if got := b.PixelRaw(0, 0); got != src {
			t.Errorf("opaque blend over %v = %v, want %v", d, got, src)
		}

		b.Clear(d)
		b.BlendPixel(0, 0, src, 0)
		if got := b.PixelRaw(0, 0); got != d {
			t.Errorf("transparent blend over %v = %v, want unchanged", d, got)
		}
	}
}

func TestBlendPixelHalf(t *testing.T) {
	b, _ := NewFilled(1, 1, Opaque(0, 0, 0))
	b.BlendPixel(0, 0, Opaque(255, 255, 255), 128)
	got := b.PixelRaw(0, 0)
	if got.R != 128 || got.A != 255 {
		t.Errorf("half blend = %v, want r=128 a=255", got)
	}
}

func TestBlitClips(t *testing.T) {
	dst, _ := NewFilled(4, 4, White)
	src, _ := NewFilled(3, 3, Red)

	Blit(dst, src, Pt(-1, 2))

	for y := range 4 {
		for x := range 4 {
			want := White
			if x <= 1 && y >= 2 {
				want = Red
			}
			if got := dst.PixelRaw(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}

	// Fully outside: nothing happens.
	Blit(dst, src, Pt(10, 10))
	Blit(dst, src, Pt(-3, 0))
}

func TestBlitOverwritesAlpha(t *testing.T) {
	dst, _ := NewFilled(2, 1, White)
	src, _ := NewFilled(1, 1, RGBA(9, 9, 9, 0))
	Blit(dst, src, Pt(1, 0))
	if got := dst.PixelRaw(1, 0); got != RGBA(9, 9, 9, 0) {
		t.Errorf("Blit() pixel = %v, want exact source", got)
	}
}

func TestBlitRect(t *testing.T) {
	src, _ := New(5, 5)
	src.SetPixel(2, 2, Green)
	dst, _ := NewFilled(3, 3, Black)

	BlitRect(dst, src, RectFromCorners(Pt(1, 1), Pt(3, 3)), Pt(0, 0))
	if got := dst.PixelRaw(1, 1); got != Green {
		t.Errorf("BlitRect() center = %v, want %v", got, Green)
	}
}

func TestBlitWithinOneBuffer(t *testing.T) {
	rows := []Color{Red, Green, Blue, White}
	tests := []struct {
		name string
		at   Point
		want []Color
	}{
		{"down", Pt(0, 1), []Color{Red, Red, Green, Blue}},
		{"up", Pt(0, -1), []Color{Green, Blue, White, White}},
		{"right", Pt(1, 0), rows},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, _ := New(3, 4)
			for y, c := range rows {
				for x := range 3 {
					b.SetPixelRaw(x, y, c)
				}
			}
			Blit(b, b, tt.at)
			for y, want := range tt.want {
				if got := b.PixelRaw(2, y); got != want {
					t.Errorf("Blit(b, b, %v) row %d = %v, want %v", tt.at, y, got, want)
				}
			}
		})
	}
}

func TestBlendWithinOneBuffer(t *testing.T) {
	b, _ := New(1, 3)
	b.SetPixel(0, 0, Red)
	b.SetPixel(0, 1, Green)
	b.SetPixel(0, 2, Blue)
	Blend(b, b, Pt(0, 1))
	if got := b.PixelRaw(0, 2); got != Green {
		t.Errorf("Blend(b, b) pixel = %v, want %v", got, Green)
	}
}

func TestBlendComposite(t *testing.T) {
	dst, _ := NewFilled(3, 1, Opaque(0, 0, 0))
	src, _ := New(3, 1)
	src.SetPixel(0, 0, Opaque(255, 0, 0))
	src.SetPixel(1, 0, RGBA(255, 0, 0, 0))
	src.SetPixel(2, 0, RGBA(255, 0, 0, 51))

	Blend(dst, src, Pt(0, 0))

	if got := dst.PixelRaw(0, 0); got != Opaque(255, 0, 0) {
		t.Errorf("opaque source = %v", got)
	}
	if got := dst.PixelRaw(1, 0); got != Opaque(0, 0, 0) {
		t.Errorf("transparent source = %v, want unchanged", got)
	}
	if got := dst.PixelRaw(2, 0); got != Opaque(51, 0, 0) {
		t.Errorf("20%% source = %v, want r=51", got)
	}
}

func TestMaskedCompositing(t *testing.T) {
	key := Magenta
	src, _ := NewFilled(2, 1, key)
	src.SetPixel(1, 0, Blue)

	dst, _ := NewFilled(2, 1, White)
	BlitMasked(dst, src, Pt(0, 0), key)
	if got := dst.PixelRaw(0, 0); got != White {
		t.Errorf("BlitMasked() key pixel = %v, want untouched", got)
	}
	if got := dst.PixelRaw(1, 0); got != Blue {
		t.Errorf("BlitMasked() = %v, want %v", got, Blue)
	}

	dst.Clear(White)
	BlendMasked(dst, src, Pt(0, 0), key)
	if got := dst.PixelRaw(0, 0); got != White {
		t.Errorf("BlendMasked() key pixel = %v, want untouched", got)
	}
	if got := dst.PixelRaw(1, 0); got != Blue {
		t.Errorf("BlendMasked() = %v, want %v", got, Blue)
	}
}
