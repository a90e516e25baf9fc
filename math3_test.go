package soft3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vec4Near(a, b mgl32.Vec4, eps float32) bool {
	for i := range a {
		if mgl32.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func TestTranslateScale(t *testing.T) {
	m := Mat4Mul(Translate(mgl32.Vec3{1, 2, 3}), Scale(mgl32.Vec3{2, 2, 2}))
	got := Mat4MulVec4(m, mgl32.Vec4{1, 1, 1, 1})
	want := mgl32.Vec4{3, 4, 5, 1}
	if !vec4Near(got, want, 1e-6) {
		t.Errorf("Mat4MulVec4 = %v, want %v", got, want)
	}
}

func TestRotate(t *testing.T) {
	// 90 degrees around +Z sends +X to +Y
	m := Rotate(90, mgl32.Vec3{0, 0, 1})
	got := Mat4MulVec4(m, mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, 1, 0, 1}
	if !vec4Near(got, want, 1e-6) {
		t.Errorf("Rotate(90, Z) * X = %v, want %v", got, want)
	}
}

func TestIdentity(t *testing.T) {
	got := Mat4MulVec4(Identity(), mgl32.Vec4{1, 2, 3, 4})
	if got != (mgl32.Vec4{1, 2, 3, 4}) {
		t.Errorf("Identity transform = %v", got)
	}
}

func TestEulerToQuat(t *testing.T) {
	tests := []struct {
		name   string
		angles mgl32.Vec3
	}{
		{"zero", mgl32.Vec3{0, 0, 0}},
		{"yaw", mgl32.Vec3{0, 90, 0}},
		{"full turn wraps", mgl32.Vec3{360, 720, -360}},
		{"mixed", mgl32.Vec3{30, 45, 60}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := EulerToQuat(tt.angles)
			if l := q.Len(); mgl32.Abs(l-1) > 1e-5 {
				t.Errorf("quaternion length = %v, want 1", l)
			}
		})
	}

	// zero rotation is the identity quaternion
	q := EulerToQuat(mgl32.Vec3{0, 0, 0})
	if mgl32.Abs(q.W-1) > 1e-6 || q.V.Len() > 1e-6 {
		t.Errorf("EulerToQuat(0) = %v, want identity", q)
	}
}

func TestQuatToMat4(t *testing.T) {
	// a pure yaw quaternion must agree with the matrix rotation around Y
	q := EulerToQuat(mgl32.Vec3{0, 90, 0})
	got := Mat4MulVec4(QuatToMat4(q), mgl32.Vec4{1, 0, 0, 1})
	want := Mat4MulVec4(Rotate(90, mgl32.Vec3{0, 1, 0}), mgl32.Vec4{1, 0, 0, 1})
	if !vec4Near(got, want, 1e-5) {
		t.Errorf("QuatToMat4 yaw = %v, want %v", got, want)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(90, 1, 1, 10)

	// a point on the near plane projects to NDC z = -1 after division
	v := Mat4MulVec4(m, mgl32.Vec4{0, 0, -1, 1})
	if z := v[2] / v[3]; mgl32.Abs(z+1) > 1e-5 {
		t.Errorf("near plane NDC z = %v, want -1", z)
	}
	v = Mat4MulVec4(m, mgl32.Vec4{0, 0, -10, 1})
	if z := v[2] / v[3]; mgl32.Abs(z-1) > 1e-5 {
		t.Errorf("far plane NDC z = %v, want 1", z)
	}
}

func TestLookAt(t *testing.T) {
	// camera at +Z looking at the origin keeps the origin on the view axis
	m := LookAt(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	got := Mat4MulVec4(m, mgl32.Vec4{0, 0, 0, 1})
	want := mgl32.Vec4{0, 0, -5, 1}
	if !vec4Near(got, want, 1e-5) {
		t.Errorf("LookAt origin = %v, want %v", got, want)
	}
}
