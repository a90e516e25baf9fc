package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Primitive arity per draw call vertex grouping.
func (p Primitive) vertexCount() uint32 {
	switch p {
	case Points:
		return 1
	case Lines:
		return 2
	case Triangles:
		return 3
	}
	return 0
}

// DrawArrays assembles count primitives from consecutive vertices in data,
// laid out per the enabled vertex layout, and sends them down the pipeline.
// Unknown primitives, unknown layouts and nil data reject the whole call;
// a primitive whose vertices run past the end of data is skipped.
func (c *Context) DrawArrays(prim Primitive, count uint32, data []float32) {
	c.draw(prim, count, data, nil)
}

// DrawElements is DrawArrays with indexed vertices: primitive i reads its
// vertices through indices[i*n ... i*n+n-1]. Primitives with out-of-range
// index positions are skipped.
func (c *Context) DrawElements(prim Primitive, count uint32, data []float32, indices []uint32) {
	if indices == nil {
		return
	}
	c.draw(prim, count, data, indices)
}

func (c *Context) draw(prim Primitive, count uint32, data []float32, indices []uint32) {
	if c == nil || data == nil {
		return
	}
	perPrim := prim.vertexCount()
	if perPrim == 0 {
		Logger().Warn("unknown primitive", "primitive", prim)
		return
	}
	desc, ok := layouts[c.layout]
	if !ok {
		Logger().Warn("unknown vertex layout", "layout", c.layout)
		return
	}

	Logger().Debug("draw", "primitive", prim, "count", count, "indexed", indices != nil)

	for p := uint32(0); p < count; p++ {
		var vs [3]vertex
		skip := false
		for j := uint32(0); j < perPrim; j++ {
			n := p*perPrim + j
			if indices != nil {
				if n >= uint32(len(indices)) {
					skip = true
					break
				}
				n = indices[n]
			}
			v, ok := readVertex(data, desc, n)
			if !ok {
				skip = true
				break
			}
			vs[j] = v
		}
		if skip {
			continue
		}

		for j := uint32(0); j < perPrim; j++ {
			vs[j].pos = c.vertexPass(prim, vs[j])
		}

		switch prim {
		case Points:
			c.processPoint(vs[0].pos, vs[0].color)
		case Lines:
			switch c.mode {
			case Fill, Line:
				c.processLine(vs[0].pos, vs[1].pos, vs[0].color, vs[1].color, vs[0].uv, vs[1].uv)
			case Point:
				c.processPoint(vs[0].pos, vs[0].color)
				c.processPoint(vs[1].pos, vs[1].color)
			}
		case Triangles:
			switch c.mode {
			case Fill:
				t := triangle{
					pos:  [3]mgl32.Vec4{vs[0].pos, vs[1].pos, vs[2].pos},
					rgba: [3]mgl32.Vec4{vs[0].color, vs[1].color, vs[2].color},
					uv:   [3]mgl32.Vec2{vs[0].uv, vs[1].uv, vs[2].uv},
				}
				c.processTriangle(&t)
			case Line:
				c.processLine(vs[0].pos, vs[1].pos, vs[0].color, vs[1].color, vs[0].uv, vs[1].uv)
				c.processLine(vs[1].pos, vs[2].pos, vs[1].color, vs[2].color, vs[1].uv, vs[2].uv)
				c.processLine(vs[2].pos, vs[0].pos, vs[2].color, vs[0].color, vs[2].uv, vs[0].uv)
			case Point:
				c.processPoint(vs[0].pos, vs[0].color)
				c.processPoint(vs[1].pos, vs[1].color)
				c.processPoint(vs[2].pos, vs[2].color)
			}
		}
	}
}
