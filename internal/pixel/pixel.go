// Package pixel implements the packed storage formats shared by color
// buffers, depth buffers and textures.
//
// 16-bit color words hold R5 G5 B5 A1 with red in the high bits; the single
// alpha bit is a coverage flag. 32-bit color words hold R8 G8 B8 A8 with red
// in the high bits. Depth words store the full unsigned range of their width.
package pixel

// Format identifies a packed pixel storage format.
type Format uint32

const (
	// RGB16 is 16-bit color without meaningful alpha.
	RGB16 Format = iota + 1
	// RGBA16 is 16-bit color with a 1-bit coverage alpha.
	RGBA16
	// RGB32 is 32-bit color without meaningful alpha.
	RGB32
	// RGBA32 is 32-bit color with an 8-bit alpha channel.
	RGBA32
	// D16 is 16-bit depth.
	D16
	// D32 is 32-bit depth.
	D32
)

// Inverse channel scales, precomputed once.
const (
	Inv31  = 1.0 / 31.0
	Inv255 = 1.0 / 255.0
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case RGB16:
		return "RGB16"
	case RGBA16:
		return "RGBA16"
	case RGB32:
		return "RGB32"
	case RGBA32:
		return "RGBA32"
	case D16:
		return "D16"
	case D32:
		return "D32"
	}
	return "unknown"
}

// IsColor reports whether f is a color format.
func (f Format) IsColor() bool {
	return f == RGB16 || f == RGBA16 || f == RGB32 || f == RGBA32
}

// IsDepth reports whether f is a depth format.
func (f Format) IsDepth() bool {
	return f == D16 || f == D32
}

// Is16 reports whether f stores one 16-bit word per pixel.
func (f Format) Is16() bool {
	return f == RGB16 || f == RGBA16 || f == D16
}

// HasAlpha reports whether f carries an alpha channel.
func (f Format) HasAlpha() bool {
	return f == RGBA16 || f == RGBA32
}

// TexelBytes returns the number of channel bytes per texel for uncompressed
// texture data in format f, or 0 for non-color formats.
func (f Format) TexelBytes() int {
	switch f {
	case RGB16, RGB32:
		return 3
	case RGBA16, RGBA32:
		return 4
	}
	return 0
}

// DepthRange returns the maximum depth value representable by f, or 0 for
// non-depth formats.
func (f Format) DepthRange() int64 {
	switch f {
	case D16:
		return 0xFFFF
	case D32:
		return 0xFFFFFFFF
	}
	return 0
}

// Pack16 packs 5-bit channels and a 1-bit alpha into a 16-bit word.
func Pack16(r, g, b, a uint16) uint16 {
	return a | b<<1 | g<<6 | r<<11
}

// Pack32 packs 8-bit channels into a 32-bit word.
func Pack32(r, g, b, a uint32) uint32 {
	return a | b<<8 | g<<16 | r<<24
}

// 16-bit channel extraction.

func R16(p uint16) uint16 { return p >> 11 }
func G16(p uint16) uint16 { return p >> 6 & 0x1F }
func B16(p uint16) uint16 { return p >> 1 & 0x1F }
func A16(p uint16) uint16 { return p & 0x1 }

// 32-bit channel extraction.

func R32(p uint32) uint32 { return p >> 24 }
func G32(p uint32) uint32 { return p >> 16 & 0xFF }
func B32(p uint32) uint32 { return p >> 8 & 0xFF }
func A32(p uint32) uint32 { return p & 0xFF }

// PackColor16 packs normalized channels into a 16-bit word. The alpha bit is
// set when a is non-zero.
func PackColor16(r, g, b, a float32) uint16 {
	var bit uint16
	if a != 0 {
		bit = 1
	}
	return Pack16(uint16(r*31), uint16(g*31), uint16(b*31), bit)
}

// PackColor32 packs normalized channels into a 32-bit word.
func PackColor32(r, g, b, a float32) uint32 {
	return Pack32(uint32(r*255), uint32(g*255), uint32(b*255), uint32(a*255))
}

// Plot16 writes a normalized color into a 16-bit color buffer word. With
// blending enabled the write only happens when alpha is non-zero: the 1-bit
// alpha cannot express partial coverage, so any non-zero alpha is full.
func Plot16(dst []uint16, i int, r, g, b, a float32, blend bool) {
	if blend && a == 0 {
		return
	}
	dst[i] = PackColor16(r, g, b, a)
}

// Plot32 writes a normalized color into a 32-bit color buffer word. With
// blending enabled and alpha below 1 the source is composited over the
// destination channel-wise and the stored alpha saturates.
func Plot32(dst []uint32, i int, r, g, b, a float32, blend bool) {
	if !blend {
		dst[i] = PackColor32(r, g, b, a)
		return
	}
	if a < 1 {
		p := dst[i]
		inv := 1 - a
		fr := uint32(r*255*a + float32(R32(p))*inv)
		fg := uint32(g*255*a + float32(G32(p))*inv)
		fb := uint32(b*255*a + float32(B32(p))*inv)
		dst[i] = Pack32(fr, fg, fb, 255)
		return
	}
	dst[i] = PackColor32(r, g, b, a)
}

// Texel16 unpacks a 16-bit texture word into normalized channels. hasAlpha
// selects whether the coverage bit is honored; without it alpha is 1.
func Texel16(p uint16, hasAlpha bool) (r, g, b, a float32) {
	r = float32(R16(p)) * Inv31
	g = float32(G16(p)) * Inv31
	b = float32(B16(p)) * Inv31
	a = 1
	if hasAlpha {
		a = float32(A16(p))
	}
	return r, g, b, a
}

// Texel32 unpacks a 32-bit texture word into normalized channels.
func Texel32(p uint32, hasAlpha bool) (r, g, b, a float32) {
	r = float32(R32(p)) * Inv255
	g = float32(G32(p)) * Inv255
	b = float32(B32(p)) * Inv255
	a = 1
	if hasAlpha {
		a = float32(A32(p)) * Inv255
	}
	return r, g, b, a
}
