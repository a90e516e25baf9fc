package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// pointRaster holds everything shade needs per fragment, computed once per
// point. Points are flat: every fragment shares the vertex color, the depth
// word and zero barycentric coordinates.
type pointRaster struct {
	c    *Context
	rgba mgl32.Vec4
	z    int64

	plotColor, plotDepth bool
	depthTest            bool
	invDBRange           float32

	attribs []Attrib
	frag    fragment
}

// rasterPoint fills a disk of the context's point radius around pos using
// the midpoint circle algorithm with horizontal spans. Every covered pixel
// is depth-tested, shaded and written independently.
func (c *Context) rasterPoint(pos mgl32.Vec2, rgba mgl32.Vec4, z int64) {
	if c.width+c.height < 2 {
		return
	}

	// bias the depth word like the other rasterizers
	z++

	r := pointRaster{
		c:       c,
		rgba:    rgba,
		z:       z,
		attribs: c.fragAttribs(),
	}
	r.plotColor = c.color != nil
	r.plotDepth = c.depthWrite && c.depth != nil
	r.depthTest = c.depthTest && c.depth != nil
	r.frag.prim = Points

	if c.depth != nil {
		dbRange := c.depth.format.DepthRange()
		r.invDBRange = 1 / float32(dbRange)
		d := float32(z) * r.invDBRange
		if d < 0 || d > 1 {
			return
		}
		if z > dbRange {
			return
		}
	}
	if z < 0 {
		return
	}

	radius := c.pointRadius
	if radius == 0 {
		return
	}

	px, py := int32(pos[0]), int32(pos[1])
	if px-radius >= int32(c.width) || px+radius < 0 ||
		py-radius >= int32(c.height) || py+radius < 0 {
		return
	}

	// cardinal points, then the center span
	r.shade(px, py+radius)
	r.shade(px, py-radius)
	r.shade(px+radius, py)
	r.shade(px-radius, py)
	for x := px - radius; x < px+radius; x++ {
		r.shade(x, py)
	}

	f := 1 - radius
	dx := int32(0)
	dy := -2 * radius
	x2 := int32(0)
	y2 := radius
	for x2 < y2 {
		if f >= 0 {
			y2--
			dy += 2
			f += dy
		}
		x2++
		dx += 2
		f += dx + 1

		r.span(px-x2, px+x2, py+y2)
		r.span(px-x2, px+x2, py-y2)
		r.span(px-y2, px+y2, py+x2)
		r.span(px-y2, px+y2, py-x2)
	}
}

func (r *pointRaster) span(x0, x1, y int32) {
	sx := int32(1)
	if x0 >= x1 {
		sx = -1
	}
	for x := x0; x != x1; x += sx {
		r.shade(x, y)
	}
}

// shade depth-tests, shades and writes one fragment of a point.
func (r *pointRaster) shade(x, y int32) {
	c := r.c
	if x < 0 || x >= int32(c.width) || y < 0 || y >= int32(c.height) {
		return
	}

	idx := uint32(y)*c.width + uint32(x)

	var dstDepth, depth float32
	if c.depth != nil {
		stored := c.depth.depthAt(idx)
		if r.depthTest && r.z > stored {
			return
		}
		dstDepth = float32(stored) * r.invDBRange
		depth = float32(r.z) * r.invDBRange
	}

	if r.plotColor {
		r.frag.current = r.rgba
		r.frag.primary = r.rgba
		r.frag.secondary = mgl32.Vec4{}
		r.frag.linear = mgl32.Vec3{}
		r.frag.bary = mgl32.Vec3{}
		r.frag.dstDepth = dstDepth
		r.frag.depth = depth
		r.frag.x = x
		r.frag.y = y
		color, discard := c.fragmentPass(r.attribs, &r.frag)
		if discard {
			return
		}

		c.color.plot(idx, clamp01(color[0]), clamp01(color[1]), clamp01(color[2]), clamp01(color[3]), c.blend)
	}

	if r.plotDepth {
		c.depth.setDepth(idx, r.z)
	}
}
