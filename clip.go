package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Cohen-Sutherland outcode bits, one per frustum plane.
const (
	outXMin = 1 << iota
	outXMax
	outYMin
	outYMax
	outZMin
	outZMax
)

// outcode locates a clip-space position relative to the six frustum planes
// at +-w.
func outcode(p mgl32.Vec3, w float32) uint8 {
	var out uint8
	if p[0] < -w {
		out |= outXMin
	}
	if p[0] > w {
		out |= outXMax
	}
	if p[1] < -w {
		out |= outYMin
	}
	if p[1] > w {
		out |= outYMax
	}
	if p[2] < -w {
		out |= outZMin
	}
	if p[2] > w {
		out |= outZMax
	}
	return out
}

// inFrustum reports whether a clip-space position satisfies -w <= x,y,z <= w.
func inFrustum(p mgl32.Vec4) bool {
	w := p[3]
	return p[0] >= -w && p[0] <= w &&
		p[1] >= -w && p[1] <= w &&
		p[2] >= -w && p[2] <= w
}

// clipVertex is one corner of the polygon produced by triangle clipping:
// a clip-space position and the barycentric coordinates locating it inside
// the triangle being clipped.
type clipVertex struct {
	pos  mgl32.Vec4
	bary mgl32.Vec3
}

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return mgl32.Vec4{
		(1-t)*a[0] + t*b[0],
		(1-t)*a[1] + t*b[1],
		(1-t)*a[2] + t*b[2],
		(1-t)*a[3] + t*b[3],
	}
}

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		(1-t)*a[0] + t*b[0],
		(1-t)*a[1] + t*b[1],
		(1-t)*a[2] + t*b[2],
	}
}

// clipPlane clips a convex polygon against one frustum plane. comp selects
// the component (0 x, 1 y, 2 z) and sign the plane: a vertex is inside when
// comp*sign <= w. Crossings are linear in clip space, for position and
// barycentric coordinates alike.
func clipPlane(in []clipVertex, comp int, sign float32) []clipVertex {
	out := make([]clipVertex, 0, len(in)+1)

	prev := in[len(in)-1]
	prevComp := prev.pos[comp] * sign
	prevIn := prevComp <= prev.pos[3]
	for _, cur := range in {
		curComp := cur.pos[comp] * sign
		curIn := curComp <= cur.pos[3]

		if curIn != prevIn {
			d := prev.pos[3] - prevComp
			amt := safeDiv(d, d-(cur.pos[3]-curComp))
			out = append(out, clipVertex{
				pos:  lerpVec4(prev.pos, cur.pos, amt),
				bary: lerpVec3(prev.bary, cur.bary, amt),
			})
		}
		if curIn {
			out = append(out, cur)
		}

		prev, prevComp, prevIn = cur, curComp, curIn
	}
	return out
}

// clipTriangle runs Sutherland-Hodgman over all six frustum planes and
// returns the surviving polygon, nil when nothing survives. The corners
// start with identity barycentric triples.
func clipTriangle(pos [3]mgl32.Vec4) []clipVertex {
	poly := []clipVertex{
		{pos: pos[0], bary: mgl32.Vec3{1, 0, 0}},
		{pos: pos[1], bary: mgl32.Vec3{0, 1, 0}},
		{pos: pos[2], bary: mgl32.Vec3{0, 0, 1}},
	}
	for comp := 0; comp < 3; comp++ {
		for _, sign := range [2]float32{1, -1} {
			poly = clipPlane(poly, comp, sign)
			if len(poly) == 0 {
				return nil
			}
		}
	}
	return poly
}

// clipLineZ finds the (x, y) of the point on the line v0 v1 whose z equals
// the given plane. When perspective correction is on the interpolation runs
// through 1/w, matching what the rasterizer will later reconstruct.
func clipLineZ(v0, v1 mgl32.Vec4, z float32, perspCorrect bool) mgl32.Vec2 {
	bx := 1 - safeDiv(mgl32.Abs(v0[2]-z), mgl32.Abs(v0[2]-v1[2]))
	by := 1 - bx

	if perspCorrect {
		inv0 := safeDiv(1, v0[3])
		inv1 := safeDiv(1, v1[3])
		w := safeDiv(1, bx*inv0+by*inv1)
		bx *= inv0 * w
		by *= inv1 * w
	}
	return mgl32.Vec2{bx*v0[0] + by*v1[0], bx*v0[1] + by*v1[1]}
}

// lineBary returns the linear barycentric pair of p on the segment v0 v1,
// measured as Euclidean distance ratios.
func lineBary(v0, v1, p mgl32.Vec2) mgl32.Vec2 {
	bx := 1 - safeDiv(p.Sub(v0).Len(), v1.Sub(v0).Len())
	return mgl32.Vec2{bx, 1 - bx}
}
