package pixed

// blendChannel mixes one channel: old*(1-a/255) + new*(a/255), rounded.
// a = 255 returns nv exactly and a = 0 returns old exactly.
func blendChannel(old, nv, a uint8) uint8 {
	return uint8((uint32(old)*uint32(255-a) + uint32(nv)*uint32(a) + 127) / 255)
}

// BlendRaw composites c over the pixel at (x, y) with the given alpha,
// without bounds checking. The result is always opaque.
func (b *Buffer) BlendRaw(x, y int, c Color, alpha uint8) {
	i := y*b.stride + x*BytesPerPixel
	p := b.data[i : i+4 : i+4]
	p[0] = blendChannel(p[0], c.R, alpha)
	p[1] = blendChannel(p[1], c.G, alpha)
	p[2] = blendChannel(p[2], c.B, alpha)
	p[3] = 255
}

// BlendPixel composites c over the pixel at (x, y):
//
//	out = old*(1 - alpha/255) + c*(alpha/255)
//
// per color channel, with the output alpha forced to 255. This is the
// compositing primitive every drawing routine uses. An alpha of 0 leaves the
// pixel untouched. Out-of-range coordinates are ignored.
func (b *Buffer) BlendPixel(x, y int, c Color, alpha uint8) {
	if alpha == 0 || !b.In(x, y) {
		return
	}
	b.BlendRaw(x, y, c, alpha)
}

// span is the clipped overlap of a source placed at an offset in a destination.
type span struct {
	sx, sy int // first source pixel
	dx, dy int // first destination pixel
	w, h   int
}

// overlap clips src rectangle sr placed with its top-left at `at` against dst.
func overlap(dst *Buffer, sr Rect, at Point) (span, bool) {
	s := span{sx: sr.X, sy: sr.Y, dx: at.X, dy: at.Y, w: sr.W, h: sr.H}
	if s.dx < 0 {
		s.sx -= s.dx
		s.w += s.dx
		s.dx = 0
	}
	if s.dy < 0 {
		s.sy -= s.dy
		s.h += s.dy
		s.dy = 0
	}
	s.w = min(s.w, dst.width-s.dx)
	s.h = min(s.h, dst.height-s.dy)
	return s, s.w > 0 && s.h > 0
}

// Blit copies src onto dst with its top-left corner at `at`, overwriting
// destination pixels (no blending). Only the overlapping region is written.
func Blit(dst, src *Buffer, at Point) {
	BlitRect(dst, src, src.Rect(), at)
}

// BlitRect copies the inclusive region sr of src onto dst at `at`.
// sr is clipped to src first. dst and src may be the same buffer.
func BlitRect(dst, src *Buffer, sr Rect, at Point) {
	clipped := sr.Intersect(src.Rect())
	at = at.Add(clipped.First().Sub(sr.First()))
	s, ok := overlap(dst, clipped, at)
	if !ok {
		return
	}
	n := s.w * BytesPerPixel
	row := func(y int) {
		si := (s.sy+y)*src.stride + s.sx*BytesPerPixel
		di := (s.dy+y)*dst.stride + s.dx*BytesPerPixel
		copy(dst.data[di:di+n], src.data[si:si+n])
	}
	// A downward move within one buffer must not read rows it already wrote.
	if dst == src && s.dy > s.sy {
		for y := s.h - 1; y >= 0; y-- {
			row(y)
		}
		return
	}
	for y := range s.h {
		row(y)
	}
}

// Blend composites src over dst at `at` using each source pixel's alpha.
// Blended destination pixels become opaque.
func Blend(dst, src *Buffer, at Point) {
	composite(dst, src, at, nil, true)
}

// BlitMasked copies src onto dst, skipping source pixels exactly equal to key.
func BlitMasked(dst, src *Buffer, at Point, key Color) {
	composite(dst, src, at, &key, false)
}

// BlendMasked blends src over dst, treating source pixels exactly equal to
// key as fully transparent.
func BlendMasked(dst, src *Buffer, at Point, key Color) {
	composite(dst, src, at, &key, true)
}

func composite(dst, src *Buffer, at Point, key *Color, blend bool) {
	if dst == src {
		src = src.Clone()
	}
	s, ok := overlap(dst, src.Rect(), at)
	if !ok {
		return
	}
	for y := range s.h {
		for x := range s.w {
			c := src.PixelRaw(s.sx+x, s.sy+y)
			if key != nil && c == *key {
				continue
			}
			if !blend {
				dst.SetPixelRaw(s.dx+x, s.dy+y, c)
				continue
			}
			if c.A != 0 {
				dst.BlendRaw(s.dx+x, s.dy+y, c, c.A)
			}
		}
	}
}
