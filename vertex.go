package soft3d

import (
	"github.com/go-gl/mathgl/mgl32"
)

// vertex is one assembled vertex with every attribute defaulted or read
// from the vertex array.
type vertex struct {
	pos    mgl32.Vec4
	color  mgl32.Vec4
	normal mgl32.Vec3
	uv     mgl32.Vec2
}

// layoutDesc describes how one vertex layout packs its floats: the position
// arity followed by optional color (4), normal (3) and texcoord (2)
// components, in that order.
type layoutDesc struct {
	posComps int
	color    bool
	normal   bool
	texCoord bool
	stride   int
}

var layouts = map[State]layoutDesc{
	LayoutV3:       {posComps: 3, stride: 3},
	LayoutV3C4:     {posComps: 3, color: true, stride: 7},
	LayoutV3N3:     {posComps: 3, normal: true, stride: 6},
	LayoutV3T2:     {posComps: 3, texCoord: true, stride: 5},
	LayoutV3N3T2:   {posComps: 3, normal: true, texCoord: true, stride: 8},
	LayoutV3C4N3:   {posComps: 3, color: true, normal: true, stride: 10},
	LayoutV3C4T2:   {posComps: 3, color: true, texCoord: true, stride: 9},
	LayoutV3C4N3T2: {posComps: 3, color: true, normal: true, texCoord: true, stride: 12},
	LayoutV4:       {posComps: 4, stride: 4},
	LayoutV4C4:     {posComps: 4, color: true, stride: 8},
	LayoutV4N3:     {posComps: 4, normal: true, stride: 7},
	LayoutV4T2:     {posComps: 4, texCoord: true, stride: 6},
	LayoutV4N3T2:   {posComps: 4, normal: true, texCoord: true, stride: 9},
	LayoutV4C4N3:   {posComps: 4, color: true, normal: true, stride: 11},
	LayoutV4C4T2:   {posComps: 4, color: true, texCoord: true, stride: 10},
	LayoutV4C4N3T2: {posComps: 4, color: true, normal: true, texCoord: true, stride: 13},
}

// readVertex assembles vertex number index from a packed array according to
// the descriptor. Missing attributes default to color (0,0,0,1), normal
// (0,0,0) and texcoord (0,0); 3-component positions get w = 1. Color,
// normal and texcoord channels clamp to [0,1]. It reports false when the
// array is too short to hold the vertex.
func readVertex(data []float32, desc layoutDesc, index uint32) (vertex, bool) {
	off := int(index) * desc.stride
	if off < 0 || off+desc.stride > len(data) {
		return vertex{}, false
	}
	d := data[off : off+desc.stride]

	v := vertex{color: mgl32.Vec4{0, 0, 0, 1}}
	v.pos = mgl32.Vec4{d[0], d[1], d[2], 1}
	i := 3
	if desc.posComps == 4 {
		v.pos[3] = d[3]
		i = 4
	}
	if desc.color {
		v.color = mgl32.Vec4{clamp01(d[i]), clamp01(d[i+1]), clamp01(d[i+2]), clamp01(d[i+3])}
		i += 4
	}
	if desc.normal {
		v.normal = mgl32.Vec3{clamp01(d[i]), clamp01(d[i+1]), clamp01(d[i+2])}
		i += 3
	}
	if desc.texCoord {
		v.uv = mgl32.Vec2{clamp01(d[i]), clamp01(d[i+1])}
	}
	return v, true
}
