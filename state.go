package soft3d

// State identifies a toggleable pipeline state: a boolean feature toggle, a
// shader attribute selector, or a vertex layout. Layouts are mutually
// exclusive; enabling one selects it and disabling any layout restores the
// default LayoutV3.
type State uint32

const (
	// PerspectiveCorrection generates perspective-corrected barycentric
	// coordinates during interpolation.
	PerspectiveCorrection State = iota + 1

	// Blend composites fragments whose alpha is below 1 with the
	// destination pixel instead of overwriting it.
	Blend

	// Texturing samples the active texture unit and uses the texel as the
	// fragment's base color.
	Texturing

	// DepthTest discards fragments that are farther than the stored depth.
	DepthTest

	// DepthWrite stores surviving fragment depths into the depth buffer.
	DepthWrite

	// CullFace discards triangles with the winding set by CullWinding.
	CullFace

	// Clip clips primitives against the view volume -w <= x,y,z <= w.
	Clip

	// PerspectiveDivision divides positions by their w component during
	// primitive post-processing. Vertices with w of 0 or 1 are left as-is.
	PerspectiveDivision

	// ScaleZ remaps post-division z from [-1,1] to [0,1].
	ScaleZ

	// Shader attribute selectors. Each enabled selector adds one entry, in
	// the order declared here, to the attribute slice passed to the bound
	// vertex or fragment shader.

	AttribPrimitiveType  // primitive kind, both shader stages
	AttribPosition       // clip-space position, vertex stage
	AttribColor          // vertex color (vertex stage) / working color (fragment stage)
	AttribNormal         // vertex normal, vertex stage
	AttribTexCoord       // texture coordinates, vertex stage
	AttribPrimaryColor   // interpolated vertex color, fragment stage
	AttribSecondaryColor // sampled texture color, fragment stage
	AttribBaryLinear     // linear barycentric coordinates, fragment stage
	AttribBaryPerspective
	AttribDstDepth  // normalized depth already stored at the fragment
	AttribFragDepth // normalized depth of the fragment itself
	AttribFragX     // fragment x in pixels
	AttribFragY     // fragment y in pixels

	// Vertex layouts: V = position, C = color, N = normal, T = texture
	// coordinates; the digit is the component count.

	LayoutV3
	LayoutV3C4
	LayoutV3N3
	LayoutV3T2
	LayoutV3N3T2
	LayoutV3C4N3
	LayoutV3C4T2
	LayoutV3C4N3T2
	LayoutV4
	LayoutV4C4
	LayoutV4N3
	LayoutV4T2
	LayoutV4N3T2
	LayoutV4C4N3
	LayoutV4C4T2
	LayoutV4C4N3T2
)

// Primitive selects what a draw call's vertex array describes.
type Primitive uint32

const (
	Points Primitive = iota + 1
	Lines
	Triangles
)

// PolygonMode selects how triangles are rasterized.
type PolygonMode uint32

const (
	// Fill rasterizes triangle interiors.
	Fill PolygonMode = iota + 1
	// Line rasterizes triangle edges as lines.
	Line
	// Point rasterizes triangle vertices as points.
	Point
)

// Winding identifies a triangle vertex order on screen.
type Winding uint32

const (
	CW Winding = iota + 1
	CCW
)

// BufferMask selects buffers within a buffer set. Masks OR together.
type BufferMask uint32

const (
	ColorBufferBit BufferMask = 1 << iota
	DepthBufferBit
)

// BufferSet selects the front (drawn-to) or back buffer set.
type BufferSet uint32

const (
	FrontBuffers BufferSet = iota + 1
	BackBuffers
)
