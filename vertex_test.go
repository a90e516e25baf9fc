package soft3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLayouts_Strides(t *testing.T) {
	tests := []struct {
		layout State
		stride int
	}{
		{LayoutV3, 3},
		{LayoutV3C4, 7},
		{LayoutV3N3, 6},
		{LayoutV3T2, 5},
		{LayoutV3N3T2, 8},
		{LayoutV3C4N3, 10},
		{LayoutV3C4T2, 9},
		{LayoutV3C4N3T2, 12},
		{LayoutV4, 4},
		{LayoutV4C4, 8},
		{LayoutV4N3, 7},
		{LayoutV4T2, 6},
		{LayoutV4N3T2, 9},
		{LayoutV4C4N3, 11},
		{LayoutV4C4T2, 10},
		{LayoutV4C4N3T2, 13},
	}

	for _, tt := range tests {
		desc, ok := layouts[tt.layout]
		if !ok {
			t.Errorf("layout %d missing", tt.layout)
			continue
		}
		if desc.stride != tt.stride {
			t.Errorf("layout %d stride = %d, want %d", tt.layout, desc.stride, tt.stride)
		}
	}
}

func TestReadVertex_Defaults(t *testing.T) {
	v, ok := readVertex([]float32{1, 2, 3}, layouts[LayoutV3], 0)
	if !ok {
		t.Fatal("readVertex rejected a full vertex")
	}
	if v.pos != (mgl32.Vec4{1, 2, 3, 1}) {
		t.Errorf("pos = %v, want w defaulted to 1", v.pos)
	}
	if v.color != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("color = %v, want opaque black default", v.color)
	}
	if v.normal != (mgl32.Vec3{}) || v.uv != (mgl32.Vec2{}) {
		t.Errorf("normal/uv = %v/%v, want zero defaults", v.normal, v.uv)
	}
}

func TestReadVertex_FullLayout(t *testing.T) {
	data := []float32{
		// position, color, normal, texcoord
		1, 2, 3, 4, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9,
	}
	v, ok := readVertex(data, layouts[LayoutV4C4N3T2], 0)
	if !ok {
		t.Fatal("readVertex rejected a full vertex")
	}
	if v.pos != (mgl32.Vec4{1, 2, 3, 4}) {
		t.Errorf("pos = %v", v.pos)
	}
	if v.color != (mgl32.Vec4{0.1, 0.2, 0.3, 0.4}) {
		t.Errorf("color = %v", v.color)
	}
	if v.normal != (mgl32.Vec3{0.5, 0.6, 0.7}) {
		t.Errorf("normal = %v", v.normal)
	}
	if v.uv != (mgl32.Vec2{0.8, 0.9}) {
		t.Errorf("uv = %v", v.uv)
	}
}

func TestReadVertex_ClampsAttributes(t *testing.T) {
	data := []float32{0, 0, 0, 5, -1, 0.5, 2}
	v, ok := readVertex(data, layouts[LayoutV3C4], 0)
	if !ok {
		t.Fatal("readVertex rejected a full vertex")
	}
	if v.color != (mgl32.Vec4{1, 0, 0.5, 1}) {
		t.Errorf("color = %v, want channels clamped to [0,1]", v.color)
	}
}

func TestReadVertex_Bounds(t *testing.T) {
	data := make([]float32, 7) // one V3C4 vertex

	if _, ok := readVertex(data, layouts[LayoutV3C4], 0); !ok {
		t.Error("vertex 0 rejected")
	}
	if _, ok := readVertex(data, layouts[LayoutV3C4], 1); ok {
		t.Error("vertex 1 accepted past the end of data")
	}
}
