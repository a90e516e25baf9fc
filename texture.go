package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/soft3d/internal/pixel"
)

// textureUnit holds the data describing one of the context's 256 texture
// units. A unit is complete once it has data, non-zero dimensions and a
// color format; incomplete units sample as opaque black.
type textureUnit struct {
	// data is []uint8 for uncompressed textures (3 or 4 channel bytes per
	// texel; 16-bit formats store channel values 0..31), or []uint16 /
	// []uint32 packed words for compressed ones.
	data          any
	format        Format
	width, height uint32
	compressed    bool
}

func (u *textureUnit) complete() bool {
	return u.data != nil && u.width > 0 && u.height > 0 && u.format.IsColor()
}

// texel samples and normalizes the texel at (x, y), relative to the top
// left. Coordinates are the caller's responsibility. Channels clamp to
// [0,1].
func (u *textureUnit) texel(x, y uint32) mgl32.Vec4 {
	var r, g, b, a float32
	i := y*u.width + x
	if !u.compressed {
		tex, ok := u.data.([]uint8)
		if !ok {
			return mgl32.Vec4{0, 0, 0, 1}
		}
		w := uint32(u.format.TexelBytes())
		t := tex[i*w:]
		switch u.format {
		case RGB16, RGBA16:
			r = float32(t[0]) * pixel.Inv31
			g = float32(t[1]) * pixel.Inv31
			b = float32(t[2]) * pixel.Inv31
			a = 1
			if u.format == RGBA16 && t[3] == 0 {
				a = 0
			}
		case RGB32, RGBA32:
			r = float32(t[0]) * pixel.Inv255
			g = float32(t[1]) * pixel.Inv255
			b = float32(t[2]) * pixel.Inv255
			a = 1
			if u.format == RGBA32 {
				a = float32(t[3]) * pixel.Inv255
			}
		}
	} else {
		switch u.format {
		case RGB16, RGBA16:
			tex, ok := u.data.([]uint16)
			if !ok {
				return mgl32.Vec4{0, 0, 0, 1}
			}
			r, g, b, a = pixel.Texel16(tex[i], u.format == RGBA16)
		case RGB32, RGBA32:
			tex, ok := u.data.([]uint32)
			if !ok {
				return mgl32.Vec4{0, 0, 0, 1}
			}
			r, g, b, a = pixel.Texel32(tex[i], u.format == RGBA32)
		}
	}
	return mgl32.Vec4{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// ActiveTexture selects the texture unit subsequent SetTexture and sampling
// calls act on.
func (c *Context) ActiveTexture(unit uint8) {
	if c == nil {
		return
	}
	c.activeUnit = unit
}

// SetTexture describes the active texture unit. Uncompressed data is
// []uint8 with 3 or 4 channel bytes per texel, row-major from the top left
// (16-bit formats store channel values 0..31, 32-bit ones 0..255);
// compressed data is []uint16 or []uint32 packed words matching the format.
// A nil data resets the unit. Unknown formats, zero dimensions and data too
// short for the dimensions leave the unit untouched.
func (c *Context) SetTexture(data any, format Format, width, height uint32, compressed bool) {
	if c == nil {
		return
	}
	u := &c.units[c.activeUnit]
	if data == nil {
		*u = textureUnit{}
		return
	}
	if !format.IsColor() || width == 0 || height == 0 {
		Logger().Warn("incomplete texture data", "format", format, "width", width, "height", height)
		return
	}
	texels := width * height
	covered := false
	if compressed {
		switch d := data.(type) {
		case []uint16:
			covered = format.Is16() && uint32(len(d)) >= texels
		case []uint32:
			covered = !format.Is16() && uint32(len(d)) >= texels
		}
	} else if d, ok := data.([]uint8); ok {
		covered = uint32(len(d)) >= texels*uint32(format.TexelBytes())
	}
	if !covered {
		Logger().Warn("texture data too short", "format", format, "width", width, "height", height)
		return
	}
	u.data = data
	u.format = format
	u.width = width
	u.height = height
	u.compressed = compressed
}

// SampleTexture samples the active texture unit at normalized coordinates,
// (0,0) the bottom left and (1,1) the top right, clamped to [0,1]. It
// returns opaque black when the unit is incomplete.
func (c *Context) SampleTexture(x, y float32) mgl32.Vec4 {
	if c == nil {
		return mgl32.Vec4{}
	}
	u := &c.units[c.activeUnit]
	if !u.complete() {
		return mgl32.Vec4{0, 0, 0, 1}
	}
	x = clamp01(x)
	y = clamp01(y)
	tx := uint32(x * float32(u.width-1))
	ty := uint32((1 - y) * float32(u.height-1))
	return u.texel(tx, ty)
}

// texelCoords converts normalized texture coordinates into texel indices
// for the active unit, flipping V so (0,0) addresses the bottom-left texel.
// Incomplete units yield (0,0).
func (c *Context) texelCoords(uv mgl32.Vec2) (uint32, uint32) {
	u := &c.units[c.activeUnit]
	if !u.complete() {
		return 0, 0
	}
	tx := uint32(uv.X() * float32(u.width-1))
	ty := uint32((1 - uv.Y()) * float32(u.height-1))
	return tx, ty
}
