package soft3d

// Context holds the complete state of one rendering pipeline: the bound
// buffer sets, the state-machine toggles, the texture units and the shader
// hooks. A zero Context is not usable; create one with NewContext.
//
// Every exported method is safe to call on a nil Context and does nothing
// (or returns a zero value), which is how the package-level API honors the
// "no bound context" contract.
type Context struct {
	clearColor [3]float32
	clearDepth float64 // normalized; negative means maximum depth

	// front buffers
	color, depth  *Buffer
	width, height uint32

	// back buffers
	backColor, backDepth  *Buffer
	backWidth, backHeight uint32

	layout      State
	mode        PolygonMode
	cullWinding Winding
	pointRadius int32

	depthWrite   bool
	depthTest    bool
	perspCorrect bool
	blend        bool
	texture      bool
	cull         bool
	clip         bool
	perspDivide  bool
	scaleZ       bool

	activeUnit uint8
	units      [256]textureUnit

	vshader VertexShader
	fshader FragmentShader

	shPrimitiveType   bool
	shPosition        bool
	shColor           bool
	shNormal          bool
	shTexCoord        bool
	shPrimaryColor    bool
	shSecondaryColor  bool
	shBaryLinear      bool
	shBaryPerspective bool
	shDstDepth        bool
	shFragDepth       bool
	shFragX           bool
	shFragY           bool
}

// current is the bound context, nil when none is bound.
var current *Context

// NewContext creates a rendering context with the default state: perspective
// correction and division, clipping, depth scaling, depth test, depth write
// and texturing enabled; blending and culling disabled; LayoutV3, Fill mode,
// CW cull winding and a point radius of 1.
func NewContext() *Context {
	return &Context{
		clearDepth:   -1,
		layout:       LayoutV3,
		mode:         Fill,
		cullWinding:  CW,
		pointRadius:  1,
		depthWrite:   true,
		depthTest:    true,
		perspCorrect: true,
		texture:      true,
		clip:         true,
		perspDivide:  true,
		scaleZ:       true,
	}
}

// Bind makes c the context all package-level operations act on. Binding nil
// unbinds, after which every package-level operation is a no-op.
func Bind(c *Context) {
	current = c
}

// Current returns the bound context, or nil.
func Current() *Context {
	return current
}

// Enable turns a state on. Enabling a vertex layout selects it, replacing
// the previous layout. Unknown states are ignored.
func (c *Context) Enable(s State) {
	c.setState(s, true)
}

// Disable turns a state off. Disabling any vertex layout restores the
// default LayoutV3. Unknown states are ignored.
func (c *Context) Disable(s State) {
	c.setState(s, false)
}

func (c *Context) setState(s State, on bool) {
	if c == nil {
		return
	}
	switch s {
	case PerspectiveCorrection:
		c.perspCorrect = on
	case Blend:
		c.blend = on
	case Texturing:
		c.texture = on
	case DepthTest:
		c.depthTest = on
	case DepthWrite:
		c.depthWrite = on
	case CullFace:
		c.cull = on
	case Clip:
		c.clip = on
	case PerspectiveDivision:
		c.perspDivide = on
	case ScaleZ:
		c.scaleZ = on
	case AttribPrimitiveType:
		c.shPrimitiveType = on
	case AttribPosition:
		c.shPosition = on
	case AttribColor:
		c.shColor = on
	case AttribNormal:
		c.shNormal = on
	case AttribTexCoord:
		c.shTexCoord = on
	case AttribPrimaryColor:
		c.shPrimaryColor = on
	case AttribSecondaryColor:
		c.shSecondaryColor = on
	case AttribBaryLinear:
		c.shBaryLinear = on
	case AttribBaryPerspective:
		c.shBaryPerspective = on
	case AttribDstDepth:
		c.shDstDepth = on
	case AttribFragDepth:
		c.shFragDepth = on
	case AttribFragX:
		c.shFragX = on
	case AttribFragY:
		c.shFragY = on
	default:
		if s >= LayoutV3 && s <= LayoutV4C4N3T2 {
			if on {
				c.layout = s
			} else {
				c.layout = LayoutV3
			}
			return
		}
		Logger().Warn("unknown state", "state", s)
	}
}

// IsEnabled reports whether a state is on. For vertex layouts it reports
// whether that layout is the selected one.
func (c *Context) IsEnabled(s State) bool {
	if c == nil {
		return false
	}
	switch s {
	case PerspectiveCorrection:
		return c.perspCorrect
	case Blend:
		return c.blend
	case Texturing:
		return c.texture
	case DepthTest:
		return c.depthTest
	case DepthWrite:
		return c.depthWrite
	case CullFace:
		return c.cull
	case Clip:
		return c.clip
	case PerspectiveDivision:
		return c.perspDivide
	case ScaleZ:
		return c.scaleZ
	case AttribPrimitiveType:
		return c.shPrimitiveType
	case AttribPosition:
		return c.shPosition
	case AttribColor:
		return c.shColor
	case AttribNormal:
		return c.shNormal
	case AttribTexCoord:
		return c.shTexCoord
	case AttribPrimaryColor:
		return c.shPrimaryColor
	case AttribSecondaryColor:
		return c.shSecondaryColor
	case AttribBaryLinear:
		return c.shBaryLinear
	case AttribBaryPerspective:
		return c.shBaryPerspective
	case AttribDstDepth:
		return c.shDstDepth
	case AttribFragDepth:
		return c.shFragDepth
	case AttribFragX:
		return c.shFragX
	case AttribFragY:
		return c.shFragY
	}
	if s >= LayoutV3 && s <= LayoutV4C4N3T2 {
		return c.layout == s
	}
	return false
}

// SetPolygonMode selects how triangles rasterize: filled, as edge lines, or
// as vertex points. Invalid modes are ignored.
func (c *Context) SetPolygonMode(m PolygonMode) {
	if c == nil {
		return
	}
	switch m {
	case Fill, Line, Point:
		c.mode = m
	}
}

// SetCullWinding selects which screen-space winding CullFace discards.
// Invalid windings are ignored.
func (c *Context) SetCullWinding(w Winding) {
	if c == nil {
		return
	}
	if w == CW || w == CCW {
		c.cullWinding = w
	}
}

// SetPointSize sets the point radius in pixels. Negative radii clamp to 0,
// which makes points invisible.
func (c *Context) SetPointSize(radius float32) {
	if c == nil {
		return
	}
	if radius < 0 {
		radius = 0
	}
	c.pointRadius = int32(radius)
}
