package soft3d

import (
	"github.com/gogpu/soft3d/internal/pixel"
)

// Format identifies the packed storage format of a buffer or texture.
type Format = pixel.Format

// Buffer and texture formats. Color buffers store one word per pixel; the
// 16-bit color formats pack R5 G5 B5 A1 and the 32-bit ones R8 G8 B8 A8,
// red in the high bits. Depth buffers store the full unsigned range of
// their word width.
const (
	RGB16  = pixel.RGB16
	RGBA16 = pixel.RGBA16
	RGB32  = pixel.RGB32
	RGBA32 = pixel.RGBA32
	D16    = pixel.D16
	D32    = pixel.D32
)

// Buffer is a display buffer: a width x height grid of packed 16- or 32-bit
// words in one of the color or depth formats.
type Buffer struct {
	format        Format
	width, height uint32
	pix16         []uint16
	pix32         []uint32
}

// NewBuffer allocates a zeroed buffer. It returns nil when the format is
// unknown or the dimensions are degenerate.
func NewBuffer(format Format, width, height uint32) *Buffer {
	if width == 0 || height == 0 {
		return nil
	}
	b := &Buffer{format: format, width: width, height: height}
	switch format {
	case RGB16, RGBA16, D16:
		b.pix16 = make([]uint16, width*height)
	case RGB32, RGBA32, D32:
		b.pix32 = make([]uint32, width*height)
	default:
		return nil
	}
	return b
}

// Wrap16 adopts caller-owned storage as a 16-bit buffer. The slice must hold
// width*height words; otherwise Wrap16 returns nil.
func Wrap16(format Format, width, height uint32, words []uint16) *Buffer {
	if width == 0 || height == 0 || uint32(len(words)) != width*height {
		return nil
	}
	switch format {
	case RGB16, RGBA16, D16:
		return &Buffer{format: format, width: width, height: height, pix16: words}
	}
	return nil
}

// Wrap32 adopts caller-owned storage as a 32-bit buffer. The slice must hold
// width*height words; otherwise Wrap32 returns nil.
func Wrap32(format Format, width, height uint32, words []uint32) *Buffer {
	if width == 0 || height == 0 || uint32(len(words)) != width*height {
		return nil
	}
	switch format {
	case RGB32, RGBA32, D32:
		return &Buffer{format: format, width: width, height: height, pix32: words}
	}
	return nil
}

// Format returns the buffer's storage format.
func (b *Buffer) Format() Format {
	if b == nil {
		return 0
	}
	return b.format
}

// Width returns the buffer width in pixels.
func (b *Buffer) Width() uint32 {
	if b == nil {
		return 0
	}
	return b.width
}

// Height returns the buffer height in pixels.
func (b *Buffer) Height() uint32 {
	if b == nil {
		return 0
	}
	return b.height
}

// Words16 returns the backing storage of a 16-bit buffer, nil otherwise.
// Pixels are stored row-major from the top-left.
func (b *Buffer) Words16() []uint16 {
	if b == nil {
		return nil
	}
	return b.pix16
}

// Words32 returns the backing storage of a 32-bit buffer, nil otherwise.
// Pixels are stored row-major from the top-left.
func (b *Buffer) Words32() []uint32 {
	if b == nil {
		return nil
	}
	return b.pix32
}

// depthAt reads a depth word. The caller guarantees b is a bound depth
// buffer and i is in range.
func (b *Buffer) depthAt(i uint32) int64 {
	if b.format == D16 {
		return int64(b.pix16[i])
	}
	return int64(b.pix32[i])
}

// setDepth stores a depth word already clamped to the format's range.
func (b *Buffer) setDepth(i uint32, z int64) {
	if b.format == D16 {
		b.pix16[i] = uint16(z)
	} else {
		b.pix32[i] = uint32(z)
	}
}

// plot writes a normalized fragment color at pixel index i, honoring the
// buffer format's packing and the blend toggle.
func (b *Buffer) plot(i uint32, r, g, bl, a float32, blend bool) {
	switch b.format {
	case RGB16, RGBA16:
		pixel.Plot16(b.pix16, int(i), r, g, bl, a, blend)
	case RGB32, RGBA32:
		pixel.Plot32(b.pix32, int(i), r, g, bl, a, blend)
	}
}

// BindBuffer binds b into the front buffer set: color formats take the
// color slot, depth formats the depth slot. All bound front buffers must
// agree on dimensions; a mismatched or nil buffer is ignored.
func (c *Context) BindBuffer(b *Buffer) {
	if c == nil || b == nil {
		return
	}
	if c.color != nil || c.depth != nil {
		if b.width != c.width || b.height != c.height {
			Logger().Warn("buffer dimensions mismatch",
				"width", b.width, "height", b.height,
				"bound_width", c.width, "bound_height", c.height)
			return
		}
	}
	switch {
	case b.format.IsColor():
		c.color = b
	case b.format.IsDepth():
		c.depth = b
	default:
		return
	}
	c.width = b.width
	c.height = b.height
}

// BindBackBuffer binds b into the back buffer set, with the same dimension
// rules as BindBuffer.
func (c *Context) BindBackBuffer(b *Buffer) {
	if c == nil || b == nil {
		return
	}
	if c.backColor != nil || c.backDepth != nil {
		if b.width != c.backWidth || b.height != c.backHeight {
			Logger().Warn("back buffer dimensions mismatch",
				"width", b.width, "height", b.height,
				"bound_width", c.backWidth, "bound_height", c.backHeight)
			return
		}
	}
	switch {
	case b.format.IsColor():
		c.backColor = b
	case b.format.IsDepth():
		c.backDepth = b
	default:
		return
	}
	c.backWidth = b.width
	c.backHeight = b.height
}

// UnbindBuffer removes the selected buffers from the front set. When the
// set becomes empty its dimensions reset, so buffers of a different size
// may be bound next.
func (c *Context) UnbindBuffer(mask BufferMask) {
	if c == nil {
		return
	}
	if mask&ColorBufferBit != 0 {
		c.color = nil
	}
	if mask&DepthBufferBit != 0 {
		c.depth = nil
	}
	if c.color == nil && c.depth == nil {
		c.width = 0
		c.height = 0
	}
}

// SwapBuffers exchanges the front and back buffer sets, dimensions included.
func (c *Context) SwapBuffers() {
	if c == nil {
		return
	}
	c.color, c.backColor = c.backColor, c.color
	c.depth, c.backDepth = c.backDepth, c.depth
	c.width, c.backWidth = c.backWidth, c.width
	c.height, c.backHeight = c.backHeight, c.height
}

// BufferSize returns the dimensions of the front or back buffer set.
// Dimensions are 0 while no buffer is bound in the set.
func (c *Context) BufferSize(set BufferSet) (width, height uint32) {
	if c == nil {
		return 0, 0
	}
	switch set {
	case FrontBuffers:
		return c.width, c.height
	case BackBuffers:
		return c.backWidth, c.backHeight
	}
	return 0, 0
}

// IsBuffer reports whether the front set holds a buffer selected by mask.
// The color bit takes precedence when both are set.
func (c *Context) IsBuffer(mask BufferMask) bool {
	if c == nil {
		return false
	}
	if mask&ColorBufferBit != 0 {
		return c.color != nil
	}
	if mask&DepthBufferBit != 0 {
		return c.depth != nil
	}
	return false
}

// ColorBuffer returns the color buffer of the selected set, nil when none
// is bound.
func (c *Context) ColorBuffer(set BufferSet) *Buffer {
	if c == nil {
		return nil
	}
	if set == BackBuffers {
		return c.backColor
	}
	return c.color
}

// DepthBuffer returns the depth buffer of the selected set, nil when none
// is bound.
func (c *Context) DepthBuffer(set BufferSet) *Buffer {
	if c == nil {
		return nil
	}
	if set == BackBuffers {
		return c.backDepth
	}
	return c.depth
}

// MaxDepth returns the largest depth value of the front depth buffer:
// 0xFFFF for D16, 0xFFFFFFFF for D32, 0 when no depth buffer is bound.
func (c *Context) MaxDepth() int64 {
	if c == nil || c.depth == nil {
		return 0
	}
	return c.depth.format.DepthRange()
}

// SetClearColor sets the color Clear fills with. Channels clamp to [0,1].
func (c *Context) SetClearColor(red, green, blue float32) {
	if c == nil {
		return
	}
	c.clearColor[0] = clamp01(red)
	c.clearColor[1] = clamp01(green)
	c.clearColor[2] = clamp01(blue)
}

// SetClearDepth sets the normalized depth Clear fills with, clamped to
// [0,1]. A negative depth restores the default of the target buffer's
// maximum depth.
func (c *Context) SetClearDepth(depth float32) {
	if c == nil {
		return
	}
	if depth < 0 {
		c.clearDepth = -1
		return
	}
	c.clearDepth = float64(clamp01(depth))
}

// Clear fills the buffers selected by mask with the configured clear color
// and depth. Back buffers are the clear target; when a selected buffer has
// no back binding, the front one is cleared instead. Missing buffers are
// skipped.
func (c *Context) Clear(mask BufferMask) {
	if c == nil {
		return
	}
	if mask&ColorBufferBit != 0 {
		b := c.backColor
		if b == nil {
			b = c.color
		}
		if b != nil {
			c.clearColorBuffer(b)
		}
	}
	if mask&DepthBufferBit != 0 {
		b := c.backDepth
		if b == nil {
			b = c.depth
		}
		if b != nil {
			c.clearDepthBuffer(b)
		}
	}
}

func (c *Context) clearColorBuffer(b *Buffer) {
	r, g, bl := c.clearColor[0], c.clearColor[1], c.clearColor[2]
	switch b.format {
	case RGB16, RGBA16:
		word := pixel.PackColor16(r, g, bl, 1)
		for i := range b.pix16 {
			b.pix16[i] = word
		}
	case RGB32, RGBA32:
		word := pixel.PackColor32(r, g, bl, 1)
		for i := range b.pix32 {
			b.pix32[i] = word
		}
	}
}

func (c *Context) clearDepthBuffer(b *Buffer) {
	rng := b.format.DepthRange()
	z := rng
	if c.clearDepth >= 0 {
		z = int64(c.clearDepth * float64(rng))
	}
	if b.format == D16 {
		word := uint16(z)
		for i := range b.pix16 {
			b.pix16[i] = word
		}
		return
	}
	word := uint32(z)
	for i := range b.pix32 {
		b.pix32[i] = word
	}
}
