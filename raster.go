package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/math/fixed"
)

// fx is the rasterizer's fixed-point coordinate type: 12 fractional bits in
// an int64 word, room enough that edge products never overflow.
type fx = fixed.Int52_12

const fxBits = 12

func toFx(v float32) fx {
	return fx(v*(1<<fxBits) + 0.5)
}

// texelCoord is a precomputed integer texel address, one per vertex; the
// rasterizer interpolates addresses rather than sampling per vertex.
type texelCoord struct {
	x, y uint32
}

// screenTriangle is a projected triangle ready for rasterization: pixel
// positions, per-corner colors and texel addresses, depth words, clip-space
// w's and barycentric remap triples.
type screenTriangle struct {
	pos   [3]mgl32.Vec2
	rgba  [3]mgl32.Vec4
	texel [3]texelCoord
	z     [3]int64
	w     [3]float32
	bary  [3]mgl32.Vec3
}

// triRaster holds everything shade needs per fragment, computed once per
// triangle.
type triRaster struct {
	c  *Context
	st *screenTriangle

	// inverse-area barycentric setup relative to corner 0
	ax, ay, bx, by, den float32

	invW [3]float32

	// interpolation clamps against precision loss at the corners
	minZ, maxZ             int64
	minRGBA, maxRGBA       mgl32.Vec4
	minTX, maxTX           uint32
	minTY, maxTY           uint32

	plotColor, plotDepth bool
	depthTest, textured  bool
	dbRange              int64
	invDBRange           float32
	unit                 *textureUnit

	attribs []Attrib
	frag    fragment
}

// rasterTriangle rasterizes one screen-space triangle with half-space edge
// functions over 8x8 tiles. Fully covered tiles skip the per-pixel edge
// tests; partial tiles step the edge functions incrementally.
func (c *Context) rasterTriangle(st *screenTriangle) {
	if c.width+c.height < 2 {
		return
	}

	x0, y0 := toFx(st.pos[0][0]), toFx(st.pos[0][1])
	x1, y1 := toFx(st.pos[1][0]), toFx(st.pos[1][1])
	x2, y2 := toFx(st.pos[2][0]), toFx(st.pos[2][1])

	// screen-space winding: rows grow downward, so a positive cross
	// product z means clockwise
	e01 := st.pos[1].Sub(st.pos[0])
	e02 := st.pos[2].Sub(st.pos[0])
	cw := e01[0]*e02[1]-e02[0]*e01[1] > 0

	if c.cull {
		if cw && c.cullWinding == CW {
			return
		}
		if !cw && c.cullWinding == CCW {
			return
		}
	}

	// the edge functions assume CCW; swap a clockwise pair
	if cw {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx01, dx12, dx20 := x0-x1, x1-x2, x2-x0
	dy01, dy12, dy20 := y0-y1, y1-y2, y2-y0

	// per-pixel steps
	fdx01, fdx12, fdx20 := dx01<<fxBits, dx12<<fxBits, dx20<<fxBits
	fdy01, fdy12, fdy20 := dy01<<fxBits, dy12<<fxBits, dy20<<fxBits

	// bias depth words so interpolation error cannot underflow 0
	z := st.z
	z[0]++
	z[1]++
	z[2]++

	r := triRaster{
		c:       c,
		st:      st,
		ax:      st.pos[1][0] - st.pos[0][0],
		ay:      st.pos[1][1] - st.pos[0][1],
		bx:      st.pos[2][0] - st.pos[0][0],
		by:      st.pos[2][1] - st.pos[0][1],
		minZ:    min(z[0], z[1], z[2]),
		maxZ:    max(z[0], z[1], z[2]),
		minTX:   min(st.texel[0].x, st.texel[1].x, st.texel[2].x),
		maxTX:   max(st.texel[0].x, st.texel[1].x, st.texel[2].x),
		minTY:   min(st.texel[0].y, st.texel[1].y, st.texel[2].y),
		maxTY:   max(st.texel[0].y, st.texel[1].y, st.texel[2].y),
		attribs: c.fragAttribs(),
		unit:    &c.units[c.activeUnit],
	}
	st.z = z
	r.den = safeDiv(1, r.ax*r.by-r.bx*r.ay)
	for i := 0; i < 4; i++ {
		r.minRGBA[i] = min(st.rgba[0][i], st.rgba[1][i], st.rgba[2][i])
		r.maxRGBA[i] = max(st.rgba[0][i], st.rgba[1][i], st.rgba[2][i])
	}
	for i := range st.w {
		r.invW[i] = safeDiv(1, st.w[i])
	}
	r.plotColor = c.color != nil
	r.plotDepth = c.depthWrite && c.depth != nil
	r.depthTest = c.depthTest && c.depth != nil
	r.textured = c.texture && r.unit.complete()
	if c.depth != nil {
		r.dbRange = c.depth.format.DepthRange()
		r.invDBRange = 1 / float32(r.dbRange)
	}
	r.frag.prim = Triangles

	width := int32(c.width)
	height := int32(c.height)

	minx := int32(min(st.pos[0][0], st.pos[1][0], st.pos[2][0]) + 0.5)
	maxx := int32(max(st.pos[0][0], st.pos[1][0], st.pos[2][0]) + 0.5)
	miny := int32(min(st.pos[0][1], st.pos[1][1], st.pos[2][1]) + 0.5)
	maxy := int32(max(st.pos[0][1], st.pos[1][1], st.pos[2][1]) + 0.5)

	minx = max(minx, 0)
	miny = max(miny, 0)
	maxx = min(maxx, width-1)
	maxy = min(maxy, height-1)
	if minx >= width || miny >= height || maxx < 0 || maxy < 0 ||
		minx == maxx || miny == maxy {
		return
	}

	const q = 8 // tile size, power of 2
	minx &^= q - 1
	miny &^= q - 1

	// half-edge constants, biased so shared edges fill exactly once
	c1 := dy01*x0 - dx01*y0
	c2 := dy12*x1 - dx12*y1
	c3 := dy20*x2 - dx20*y2
	if dy01 < 0 || (dy01 == 0 && dx01 > 0) {
		c1++
	}
	if dy12 < 0 || (dy12 == 0 && dx12 > 0) {
		c2++
	}
	if dy20 < 0 || (dy20 == 0 && dx20 > 0) {
		c3++
	}

	for ty := miny; ty < maxy; ty += q {
		for tx := minx; tx < maxx; tx += q {
			tx0 := fx(tx) << fxBits
			tx1 := fx(tx+q-1) << fxBits
			ty0 := fx(ty) << fxBits
			ty1 := fx(ty+q-1) << fxBits

			// evaluate the half-space functions at the corners
			var ea, eb, ec uint
			if c1+dx01*ty0-dy01*tx0 > 0 {
				ea |= 1
			}
			if c1+dx01*ty0-dy01*tx1 > 0 {
				ea |= 2
			}
			if c1+dx01*ty1-dy01*tx0 > 0 {
				ea |= 4
			}
			if c1+dx01*ty1-dy01*tx1 > 0 {
				ea |= 8
			}
			if c2+dx12*ty0-dy12*tx0 > 0 {
				eb |= 1
			}
			if c2+dx12*ty0-dy12*tx1 > 0 {
				eb |= 2
			}
			if c2+dx12*ty1-dy12*tx0 > 0 {
				eb |= 4
			}
			if c2+dx12*ty1-dy12*tx1 > 0 {
				eb |= 8
			}
			if c3+dx20*ty0-dy20*tx0 > 0 {
				ec |= 1
			}
			if c3+dx20*ty0-dy20*tx1 > 0 {
				ec |= 2
			}
			if c3+dx20*ty1-dy20*tx0 > 0 {
				ec |= 4
			}
			if c3+dx20*ty1-dy20*tx1 > 0 {
				ec |= 8
			}

			// tile fully outside one edge
			if ea == 0 || eb == 0 || ec == 0 {
				continue
			}

			// tile fully covered
			if ea == 0xF && eb == 0xF && ec == 0xF {
				for y := ty; y < ty+q && y < height; y++ {
					for x := tx; x < tx+q && x < width; x++ {
						r.shade(x, y, false)
					}
				}
				continue
			}

			// tile partially covered
			cy1 := c1 + dx01*ty0 - dy01*tx0
			cy2 := c2 + dx12*ty0 - dy12*tx0
			cy3 := c3 + dx20*ty0 - dy20*tx0
			for y := ty; y < ty+q && y < height; y++ {
				cx1, cx2, cx3 := cy1, cy2, cy3
				for x := tx; x < tx+q && x < width; x++ {
					if cx1 > 0 && cx2 > 0 && cx3 > 0 {
						r.shade(x, y, true)
					}
					cx1 -= fdy01
					cx2 -= fdy12
					cx3 -= fdy20
				}
				cy1 += fdx01
				cy2 += fdx12
				cy3 += fdx20
			}
		}
	}
}

// shade interpolates, depth-tests, shades and writes one fragment.
// checkBary additionally rejects pixels whose remapped barycentric
// coordinates leave the ancestor triangle, which trims the float disagreement
// at the edges of clipped children.
func (r *triRaster) shade(x, y int32, checkBary bool) {
	c := r.c
	st := r.st

	cx := float32(x) - st.pos[0][0]
	cy := float32(y) - st.pos[0][1]
	var bary mgl32.Vec3
	bary[1] = (cx*r.by - r.bx*cy) * r.den
	bary[2] = (r.ax*cy - cx*r.ay) * r.den
	bary[0] = 1 - bary[1] - bary[2]

	// remap into the ancestor triangle
	bx, by, bz := bary[0], bary[1], bary[2]
	for i := 0; i < 3; i++ {
		bary[i] = bx*st.bary[0][i] + by*st.bary[1][i] + bz*st.bary[2][i]
	}
	if checkBary && (bary[0] < 0 || bary[1] < 0 || bary[2] < 0) {
		return
	}

	linear := bary
	if c.perspCorrect {
		w := safeDiv(1, bary[0]*r.invW[0]+bary[1]*r.invW[1]+bary[2]*r.invW[2])
		bary[0] *= r.invW[0] * w
		bary[1] *= r.invW[1] * w
		bary[2] *= r.invW[2] * w
	}

	z := int64(bary[0]*float32(st.z[0]) + bary[1]*float32(st.z[1]) + bary[2]*float32(st.z[2]))
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
	z = min(max(z, r.minZ), r.maxZ)

	if r.plotColor {
		var primary mgl32.Vec4
		for i := 0; i < 4; i++ {
			v := bary[0]*st.rgba[0][i] + bary[1]*st.rgba[1][i] + bary[2]*st.rgba[2][i]
			primary[i] = min(max(v, r.minRGBA[i]), r.maxRGBA[i])
		}

		var secondary mgl32.Vec4
		color := primary
		if r.textured {
			tx := uint32(bary[0]*float32(st.texel[0].x) + bary[1]*float32(st.texel[1].x) + bary[2]*float32(st.texel[2].x))
			ty := uint32(bary[0]*float32(st.texel[0].y) + bary[1]*float32(st.texel[1].y) + bary[2]*float32(st.texel[2].y))
			tx = min(max(tx, r.minTX), r.maxTX)
			ty = min(max(ty, r.minTY), r.maxTY)
			secondary = r.unit.texel(tx, ty)
			color = secondary
		}

		r.frag.current = color
		r.frag.primary = primary
		r.frag.secondary = secondary
		r.frag.linear = linear
		r.frag.bary = bary
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
