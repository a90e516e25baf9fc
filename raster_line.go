package soft3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// screenLine is a projected line ready for rasterization. The endpoint
// attributes are the pre-clip ones; bary holds the barycentric pairs of the
// (possibly clipped) screen positions along the original segment.
type screenLine struct {
	pos   [2]mgl32.Vec2
	rgba  [2]mgl32.Vec4
	texel [2]texelCoord
	z     [2]int64
	w     [2]float32
	bary  [2]mgl32.Vec2
}

// lineRaster holds everything shade needs per fragment, computed once per
// line.
type lineRaster struct {
	c  *Context
	sl *screenLine

	invLength float32
	invW      [2]float32

	minZ, maxZ       int64
	minRGBA, maxRGBA mgl32.Vec4
	minTX, maxTX     uint32
	minTY, maxTY     uint32

	plotColor, plotDepth bool
	depthTest, textured  bool
	dbRange              int64
	invDBRange           float32
	unit                 *textureUnit

	attribs []Attrib
	frag    fragment
}

// rasterLine walks the line with Bresenham and runs the full fragment
// sequence at every covered pixel. Interpolation runs on the walked
// distance, remapped through the endpoint barycentric pairs.
func (c *Context) rasterLine(sl *screenLine) {
	if c.width+c.height < 2 {
		return
	}

	width := int32(c.width)
	height := int32(c.height)

	// both endpoints beyond the same screen edge
	if (sl.pos[0][0] < 0 && sl.pos[1][0] < 0) ||
		(sl.pos[0][0] >= float32(width) && sl.pos[1][0] >= float32(width)) ||
		(sl.pos[0][1] < 0 && sl.pos[1][1] < 0) ||
		(sl.pos[0][1] >= float32(height) && sl.pos[1][1] >= float32(height)) {
		return
	}

	// bias depth words so interpolation error cannot underflow 0
	sl.z[0]++
	sl.z[1]++

	r := lineRaster{
		c:       c,
		sl:      sl,
		minZ:    min(sl.z[0], sl.z[1]),
		maxZ:    max(sl.z[0], sl.z[1]),
		minTX:   min(sl.texel[0].x, sl.texel[1].x),
		maxTX:   max(sl.texel[0].x, sl.texel[1].x),
		minTY:   min(sl.texel[0].y, sl.texel[1].y),
		maxTY:   max(sl.texel[0].y, sl.texel[1].y),
		attribs: c.fragAttribs(),
		unit:    &c.units[c.activeUnit],
	}
	for i := 0; i < 4; i++ {
		r.minRGBA[i] = min(sl.rgba[0][i], sl.rgba[1][i])
		r.maxRGBA[i] = max(sl.rgba[0][i], sl.rgba[1][i])
	}
	r.invW[0] = safeDiv(1, sl.w[0])
	r.invW[1] = safeDiv(1, sl.w[1])
	r.plotColor = c.color != nil
	r.plotDepth = c.depthWrite && c.depth != nil
	r.depthTest = c.depthTest && c.depth != nil
	r.textured = c.texture && r.unit.complete()
	if c.depth != nil {
		r.dbRange = c.depth.format.DepthRange()
		r.invDBRange = 1 / float32(r.dbRange)
	}
	r.frag.prim = Lines

	length := float32(math.Hypot(
		float64(sl.pos[0][0]-sl.pos[1][0]),
		float64(sl.pos[0][1]-sl.pos[1][1])))
	if length == 0 {
		return
	}
	r.invLength = 1 / length

	x0, y0 := int32(sl.pos[0][0]), int32(sl.pos[0][1])
	x1, y1 := int32(sl.pos[1][0]), int32(sl.pos[1][1])

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy < 0 {
		dy = -dy
	}
	sx, sy := int32(1), int32(1)
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	x, y := x0, y0
	walked := float32(0)

	for {
		if x == x1 && y == y1 {
			return
		}

		if x >= 0 && x < width && y >= 0 && y < height {
			r.shade(x, y, (length-walked)*r.invLength)
		}

		walked++
		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
	}
}

// shade interpolates, depth-tests, shades and writes one fragment of a
// line. t is the fraction of the original segment still ahead of the walk.
func (r *lineRaster) shade(x, y int32, t float32) {
	c := r.c
	sl := r.sl

	bary := mgl32.Vec2{
		t*sl.bary[0][0] + (1-t)*sl.bary[1][0],
		t*sl.bary[0][1] + (1-t)*sl.bary[1][1],
	}
	linear := bary
	if c.perspCorrect {
		w := safeDiv(1, bary[0]*r.invW[0]+bary[1]*r.invW[1])
		bary[0] *= r.invW[0] * w
		bary[1] *= r.invW[1] * w
	}

	z := int64(bary[0]*float32(sl.z[0]) + bary[1]*float32(sl.z[1]))
	z = min(max(z, r.minZ), r.maxZ)
	if z < 0 {
		return
	}
	if c.depth != nil && z > r.dbRange {
		return
	}

	idx := uint32(y)*c.width + uint32(x)

	var dstDepth, depth float32
	if c.depth != nil {
		stored := c.depth.depthAt(idx)
		if r.depthTest && z > stored {
			return
		}
		dstDepth = float32(stored) * r.invDBRange
		depth = float32(z) * r.invDBRange
	}

	if r.plotColor {
		var primary mgl32.Vec4
		for i := 0; i < 4; i++ {
			v := bary[0]*sl.rgba[0][i] + bary[1]*sl.rgba[1][i]
			primary[i] = min(max(v, r.minRGBA[i]), r.maxRGBA[i])
		}

		var secondary mgl32.Vec4
		color := primary
		if r.textured {
			tx := uint32(bary[0]*float32(sl.texel[0].x) + bary[1]*float32(sl.texel[1].x))
			ty := uint32(bary[0]*float32(sl.texel[0].y) + bary[1]*float32(sl.texel[1].y))
			tx = min(max(tx, r.minTX), r.maxTX)
			ty = min(max(ty, r.minTY), r.maxTY)
			secondary = r.unit.texel(tx, ty)
			color = secondary
		}

		r.frag.current = color
		r.frag.primary = primary
		r.frag.secondary = secondary
		r.frag.linear = mgl32.Vec3{linear[0], linear[1], 0}
		r.frag.bary = mgl32.Vec3{bary[0], bary[1], 0}
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
		c.depth.setDepth(idx, z)
	}
}
