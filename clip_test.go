package soft3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestInFrustum(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl32.Vec4
		want bool
	}{
		{"origin", mgl32.Vec4{0, 0, 0, 1}, true},
		{"corner", mgl32.Vec4{1, -1, 1, 1}, true},
		{"x outside", mgl32.Vec4{1.5, 0, 0, 1}, false},
		{"y outside", mgl32.Vec4{0, -3, 0, 2}, false},
		{"z outside", mgl32.Vec4{0, 0, 4, 2}, false},
		{"scaled w", mgl32.Vec4{3, 3, 3, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := inFrustum(tt.pos); got != tt.want {
				t.Errorf("inFrustum(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestOutcode(t *testing.T) {
	tests := []struct {
		name string
		pos  mgl32.Vec3
		w    float32
		want uint8
	}{
		{"inside", mgl32.Vec3{0, 0, 0}, 1, 0},
		{"left", mgl32.Vec3{-2, 0, 0}, 1, outXMin},
		{"right+top", mgl32.Vec3{2, 2, 0}, 1, outXMax | outYMax},
		{"near", mgl32.Vec3{0, 0, -3}, 2, outZMin},
		{"far", mgl32.Vec3{0, 0, 3}, 2, outZMax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outcode(tt.pos, tt.w); got != tt.want {
				t.Errorf("outcode = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func TestClipTriangle_AllInside(t *testing.T) {
	poly := clipTriangle([3]mgl32.Vec4{
		{0, 0.5, 0, 1},
		{-0.5, -0.5, 0, 1},
		{0.5, -0.5, 0, 1},
	})
	if len(poly) != 3 {
		t.Fatalf("len(poly) = %d, want 3", len(poly))
	}
	// untouched corners keep identity barycentric triples
	if poly[0].bary != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("bary[0] = %v", poly[0].bary)
	}
}

func TestClipTriangle_OnePlaneCrossing(t *testing.T) {
	// apex pokes out the right plane; the result is a quad
	poly := clipTriangle([3]mgl32.Vec4{
		{2, 0, 0, 1},
		{0, 0.5, 0, 1},
		{0, -0.5, 0, 1},
	})
	if len(poly) != 4 {
		t.Fatalf("len(poly) = %d, want 4", len(poly))
	}
	for i, v := range poly {
		if v.pos[0] > v.pos[3]+1e-6 {
			t.Errorf("vertex %d at x=%v still outside x=w", i, v.pos[0])
		}
		sum := v.bary[0] + v.bary[1] + v.bary[2]
		if sum < 0.999 || sum > 1.001 {
			t.Errorf("vertex %d bary sums to %v", i, sum)
		}
	}
}

func TestClipTriangle_NothingSurvives(t *testing.T) {
	poly := clipTriangle([3]mgl32.Vec4{
		{5, 5, 0, 1},
		{6, 5, 0, 1},
		{5, 6, 0, 1},
	})
	if poly != nil {
		t.Fatalf("poly = %v, want nil", poly)
	}
}

func TestLineBary(t *testing.T) {
	v0 := mgl32.Vec2{0, 0}
	v1 := mgl32.Vec2{10, 0}

	tests := []struct {
		name string
		p    mgl32.Vec2
		want mgl32.Vec2
	}{
		{"at v0", v0, mgl32.Vec2{1, 0}},
		{"at v1", v1, mgl32.Vec2{0, 1}},
		{"midpoint", mgl32.Vec2{5, 0}, mgl32.Vec2{0.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lineBary(v0, v1, tt.p)
			if mgl32.Abs(got[0]-tt.want[0]) > 1e-6 || mgl32.Abs(got[1]-tt.want[1]) > 1e-6 {
				t.Errorf("lineBary = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClipLineZ(t *testing.T) {
	v0 := mgl32.Vec4{0, 0, -2, 1}
	v1 := mgl32.Vec4{4, 0, 2, 1}

	// z=0 sits halfway; with equal w the perspective path agrees
	pt := clipLineZ(v0, v1, 0, false)
	if mgl32.Abs(pt[0]-2) > 1e-5 {
		t.Errorf("linear crossing x = %v, want 2", pt[0])
	}
	pt = clipLineZ(v0, v1, 0, true)
	if mgl32.Abs(pt[0]-2) > 1e-5 {
		t.Errorf("perspective crossing x = %v, want 2", pt[0])
	}
}
