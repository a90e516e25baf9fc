package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// safeDiv divides a by b, returning 0 on a zero divisor. Every division in
// the pipeline goes through here; rejected fragments are cheaper than NaNs
// spreading through the interpolators.
func safeDiv(a, b float32) float32 {
	if b == 0 {
		return 0
	}
	return a / b
}

// triangle carries one triangle from vertex assembly into the rasterizer.
// Triangles produced by clipping are flagged child: they skip the clipper,
// carry the ancestor's depth words, w's and attributes, and hold barycentric
// remap triples locating their corners inside the ancestor.
type triangle struct {
	pos  [3]mgl32.Vec4
	rgba [3]mgl32.Vec4
	uv   [3]mgl32.Vec2

	child bool
	bary  [3]mgl32.Vec3
	z     [3]int64
	w     [3]float32
}

// viewport maps an NDC position onto the pixel grid. Y is flipped so NDC +Y
// is up while rows grow downward.
func (c *Context) viewport(x, y float32) mgl32.Vec2 {
	halfW := float32(c.width) / 2
	halfH := float32(c.height) / 2
	return mgl32.Vec2{
		halfW + x*(float32(c.width)-halfW),
		halfH + -y*(float32(c.height)-halfH),
	}
}

// depthWord converts a normalized depth value into depth-buffer units.
// Without a bound depth buffer every vertex maps to 0.
func (c *Context) depthWord(z float32) int64 {
	if c.depth == nil {
		return 0
	}
	return int64(z * float32(c.depth.format.DepthRange()))
}

// processPoint post-processes one point: frustum test, perspective divide,
// depth scale, viewport transform, depth conversion, then the rasterizer.
func (c *Context) processPoint(pos, rgba mgl32.Vec4) {
	if c.clip && !inFrustum(pos) {
		return
	}

	if c.perspDivide && pos[3] != 0 && pos[3] != 1 {
		pos[0] = safeDiv(pos[0], pos[3])
		pos[1] = safeDiv(pos[1], pos[3])
		pos[2] = safeDiv(pos[2], pos[3])
	}
	if c.scaleZ {
		pos[2] = pos[2]*0.5 + 0.5
	}

	// points never straddle the depth range
	if pos[2] < 0 || pos[2] > 1 {
		return
	}

	c.rasterPoint(c.viewport(pos[0], pos[1]), rgba, c.depthWord(pos[2]))
}

// processLine clips, projects and rasterizes one line. Clipped endpoints
// keep the original endpoints' colors, z and w; the rasterizer interpolates
// through barycentric pairs measured along the pre-clip segment, so clipping
// never shifts the gradient.
func (c *Context) processLine(v0, v1, rgba0, rgba1 mgl32.Vec4, uv0, uv1 mgl32.Vec2) {
	clipped0 := mgl32.Vec3{v0[0], v0[1], v0[2]}
	clipped1 := mgl32.Vec3{v1[0], v1[1], v1[2]}
	bary0 := mgl32.Vec2{1, 0}
	bary1 := mgl32.Vec2{0, 1}

	if c.clip {
		orig0 := mgl32.Vec2{v0[0], v0[1]}
		orig1 := mgl32.Vec2{v1[0], v1[1]}

		out0 := outcode(clipped0, v0[3])
		out1 := outcode(clipped1, v1[3])
		for {
			if out0|out1 == 0 {
				break // accept
			}
			if out0&out1 != 0 {
				return // both ends beyond one plane
			}

			// clip the endpoint that is outside, against that
			// endpoint's w
			out := out1
			z, w := clipped1[2], v1[3]
			if out0 != 0 {
				out = out0
				z, w = clipped0[2], v0[3]
			}

			var x, y float32
			switch {
			case out&outZMin != 0:
				pt := clipLineZ(v0, v1, -w, c.perspCorrect)
				x, y, z = pt[0], pt[1], -w
			case out&outZMax != 0:
				pt := clipLineZ(v0, v1, w, c.perspCorrect)
				x, y, z = pt[0], pt[1], w
			case out&outYMin != 0:
				x = clipped0[0] + (clipped1[0]-clipped0[0])*
					safeDiv(-w-clipped0[1], clipped1[1]-clipped0[1])
				y = -w
			case out&outYMax != 0:
				x = clipped0[0] + (clipped1[0]-clipped0[0])*
					safeDiv(w-clipped0[1], clipped1[1]-clipped0[1])
				y = w
			case out&outXMin != 0:
				y = clipped0[1] + (clipped1[1]-clipped0[1])*
					safeDiv(-w-clipped0[0], clipped1[0]-clipped0[0])
				x = -w
			case out&outXMax != 0:
				y = clipped0[1] + (clipped1[1]-clipped0[1])*
					safeDiv(w-clipped0[0], clipped1[0]-clipped0[0])
				x = w
			}

			if out == out0 {
				clipped0 = mgl32.Vec3{x, y, z}
				out0 = outcode(clipped0, w)
			} else {
				clipped1 = mgl32.Vec3{x, y, z}
				out1 = outcode(clipped1, w)
			}
		}

		bary0 = lineBary(orig0, orig1, mgl32.Vec2{clipped0[0], clipped0[1]})
		bary1 = lineBary(orig0, orig1, mgl32.Vec2{clipped1[0], clipped1[1]})
	}

	z0, z1 := v0[2], v1[2]
	if c.perspDivide && v0[3] != 0 && v0[3] != 1 {
		inv := safeDiv(1, v0[3])
		clipped0[0] *= inv
		clipped0[1] *= inv
		z0 *= inv
	}
	if c.perspDivide && v1[3] != 0 && v1[3] != 1 {
		inv := safeDiv(1, v1[3])
		clipped1[0] *= inv
		clipped1[1] *= inv
		z1 *= inv
	}
	if c.scaleZ {
		z0 = z0*0.5 + 0.5
		z1 = z1*0.5 + 0.5
	}

	var sl screenLine
	sl.pos[0] = c.viewport(clipped0[0], clipped0[1])
	sl.pos[1] = c.viewport(clipped1[0], clipped1[1])
	sl.rgba = [2]mgl32.Vec4{rgba0, rgba1}
	sl.z = [2]int64{c.depthWord(z0), c.depthWord(z1)}
	sl.w = [2]float32{v0[3], v1[3]}
	sl.bary = [2]mgl32.Vec2{bary0, bary1}
	sl.texel[0].x, sl.texel[0].y = c.texelCoords(uv0)
	sl.texel[1].x, sl.texel[1].y = c.texelCoords(uv1)
	c.rasterLine(&sl)
}

// processTriangle clips, projects and rasterizes one triangle. Triangles
// crossing the frustum boundary are clipped into a polygon, fan-triangulated
// and re-entered as children.
func (c *Context) processTriangle(t *triangle) {
	if !t.child {
		t.bary = [3]mgl32.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
		if c.clip {
			in0 := inFrustum(t.pos[0])
			in1 := inFrustum(t.pos[1])
			in2 := inFrustum(t.pos[2])
			switch {
			case in0 && in1 && in2:
				// fully inside
			case !in0 && !in1 && !in2:
				return
			default:
				c.clipAndFan(t)
				return
			}
		}
	}

	var st screenTriangle
	st.rgba = t.rgba
	st.bary = t.bary
	for i := range t.pos {
		x, y, z, w := t.pos[i][0], t.pos[i][1], t.pos[i][2], t.pos[i][3]
		if c.perspDivide && w != 0 && w != 1 {
			inv := safeDiv(1, w)
			x *= inv
			y *= inv
			z *= inv
		}
		if c.scaleZ {
			z = z*0.5 + 0.5
		}
		st.pos[i] = c.viewport(x, y)
		if t.child {
			// interpolation runs over the ancestor's corners
			st.z[i] = t.z[i]
			st.w[i] = t.w[i]
		} else {
			st.z[i] = c.depthWord(z)
			st.w[i] = w
		}
		st.texel[i].x, st.texel[i].y = c.texelCoords(t.uv[i])
	}
	c.rasterTriangle(&st)
}

// clipAndFan clips t against the frustum and rasterizes the resulting
// polygon as a fan of child triangles. The children interpolate the
// ancestor's attributes through their barycentric remap triples, so a
// clipped triangle shades exactly like its unclipped ancestor.
func (c *Context) clipAndFan(t *triangle) {
	var az [3]int64
	var aw [3]float32
	for i := range t.pos {
		aw[i] = t.pos[i][3]
		z := t.pos[i][2]
		if c.perspDivide && aw[i] != 0 && aw[i] != 1 {
			z = safeDiv(z, aw[i])
		}
		if c.scaleZ {
			z = z*0.5 + 0.5
		}
		az[i] = c.depthWord(z)
	}

	poly := clipTriangle(t.pos)
	for i := 1; i+1 < len(poly); i++ {
		child := triangle{
			pos:   [3]mgl32.Vec4{poly[0].pos, poly[i].pos, poly[i+1].pos},
			rgba:  t.rgba,
			uv:    t.uv,
			child: true,
			bary:  [3]mgl32.Vec3{poly[0].bary, poly[i].bary, poly[i+1].bary},
			z:     az,
			w:     aw,
		}
		c.processTriangle(&child)
	}
}
