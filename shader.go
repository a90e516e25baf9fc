package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Attrib is one entry of the attribute slice passed to a shader. Kind names
// the attribute and selects which payload field is meaningful:
//
//	AttribPrimitiveType                                  Prim
//	AttribPosition, AttribColor, AttribPrimaryColor,
//	AttribSecondaryColor                                 Vec4
//	AttribNormal, AttribBaryLinear, AttribBaryPerspective Vec3
//	AttribTexCoord                                       Vec2
//	AttribDstDepth, AttribFragDepth                      Float
//	AttribFragX, AttribFragY                             Int
//
// The slice contains exactly the attributes enabled on the context, in the
// order the Attrib* constants are declared.
type Attrib struct {
	Kind  State
	Prim  Primitive
	Vec4  mgl32.Vec4
	Vec3  mgl32.Vec3
	Vec2  mgl32.Vec2
	Float float32
	Int   int32
}

// VertexShader transforms one vertex. It receives the enabled vertex-stage
// attributes and returns the vertex's clip-space position; all other vertex
// data passes through unchanged.
type VertexShader func(attribs []Attrib) mgl32.Vec4

// FragmentShader shades one fragment. It receives the enabled
// fragment-stage attributes and returns the color to write, or discard=true
// to drop the fragment entirely.
type FragmentShader func(attribs []Attrib) (color mgl32.Vec4, discard bool)

// BindVertexShader installs the vertex shader hook. A nil shader restores
// the pass-through behavior.
func (c *Context) BindVertexShader(s VertexShader) {
	if c == nil {
		return
	}
	c.vshader = s
}

// BindFragmentShader installs the fragment shader hook. A nil shader
// restores the pass-through behavior.
func (c *Context) BindFragmentShader(s FragmentShader) {
	if c == nil {
		return
	}
	c.fshader = s
}

// vertexPass runs one vertex through the bound vertex shader. Without a
// shader the position passes through untouched.
func (c *Context) vertexPass(prim Primitive, v vertex) mgl32.Vec4 {
	if c.vshader == nil {
		return v.pos
	}
	var attribs []Attrib
	if c.shPrimitiveType {
		attribs = append(attribs, Attrib{Kind: AttribPrimitiveType, Prim: prim})
	}
	if c.shPosition {
		attribs = append(attribs, Attrib{Kind: AttribPosition, Vec4: v.pos})
	}
	if c.shColor {
		attribs = append(attribs, Attrib{Kind: AttribColor, Vec4: v.color})
	}
	if c.shNormal {
		attribs = append(attribs, Attrib{Kind: AttribNormal, Vec3: v.normal})
	}
	if c.shTexCoord {
		attribs = append(attribs, Attrib{Kind: AttribTexCoord, Vec2: v.uv})
	}
	return c.vshader(attribs)
}

// fragAttribs builds the fragment-stage attribute slice for one primitive.
// The slice is filled in place for every fragment of the primitive, so the
// allocation happens once per primitive rather than once per fragment.
func (c *Context) fragAttribs() []Attrib {
	if c.fshader == nil {
		return nil
	}
	var attribs []Attrib
	if c.shPrimitiveType {
		attribs = append(attribs, Attrib{Kind: AttribPrimitiveType})
	}
	if c.shColor {
		attribs = append(attribs, Attrib{Kind: AttribColor})
	}
	if c.shPrimaryColor {
		attribs = append(attribs, Attrib{Kind: AttribPrimaryColor})
	}
	if c.shSecondaryColor {
		attribs = append(attribs, Attrib{Kind: AttribSecondaryColor})
	}
	if c.shBaryLinear {
		attribs = append(attribs, Attrib{Kind: AttribBaryLinear})
	}
	if c.shBaryPerspective {
		attribs = append(attribs, Attrib{Kind: AttribBaryPerspective})
	}
	if c.shDstDepth {
		attribs = append(attribs, Attrib{Kind: AttribDstDepth})
	}
	if c.shFragDepth {
		attribs = append(attribs, Attrib{Kind: AttribFragDepth})
	}
	if c.shFragX {
		attribs = append(attribs, Attrib{Kind: AttribFragX})
	}
	if c.shFragY {
		attribs = append(attribs, Attrib{Kind: AttribFragY})
	}
	return attribs
}

// fragment carries one fragment's shader inputs.
type fragment struct {
	prim      Primitive
	current   mgl32.Vec4 // working color: primary, or secondary when textured
	primary   mgl32.Vec4 // interpolated vertex color
	secondary mgl32.Vec4 // sampled texture color
	linear    mgl32.Vec3 // linear barycentric coordinates
	bary      mgl32.Vec3 // perspective-corrected when enabled
	dstDepth  float32
	depth     float32
	x, y      int32
}

// fragmentPass runs one fragment through the bound fragment shader, filling
// the prebuilt attribute slice in place. Without a shader the working color
// passes through.
func (c *Context) fragmentPass(attribs []Attrib, f *fragment) (mgl32.Vec4, bool) {
	if c.fshader == nil {
		return f.current, false
	}
	for i := range attribs {
		switch attribs[i].Kind {
		case AttribPrimitiveType:
			attribs[i].Prim = f.prim
		case AttribColor:
			attribs[i].Vec4 = f.current
		case AttribPrimaryColor:
			attribs[i].Vec4 = f.primary
		case AttribSecondaryColor:
			attribs[i].Vec4 = f.secondary
		case AttribBaryLinear:
			attribs[i].Vec3 = f.linear
		case AttribBaryPerspective:
			attribs[i].Vec3 = f.bary
		case AttribDstDepth:
			attribs[i].Float = f.dstDepth
		case AttribFragDepth:
			attribs[i].Float = f.depth
		case AttribFragX:
			attribs[i].Int = f.x
		case AttribFragY:
			attribs[i].Int = f.y
		}
	}
	return c.fshader(attribs)
}
