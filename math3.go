package soft3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Transform helpers for building model-view-projection matrices to feed a
// vertex shader. Angles are in degrees throughout; everything else is a
// thin veneer over mathgl so matrices interoperate with the rest of an
// mgl32-based scene.

// Identity returns the identity matrix.
func Identity() mgl32.Mat4 {
	return mgl32.Ident4()
}

// Translate returns a translation matrix.
func Translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}

// Scale returns a scaling matrix.
func Scale(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Scale3D(v[0], v[1], v[2])
}

// Rotate returns a rotation of angle degrees around axis. The axis must be
// normalized.
func Rotate(angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	return mgl32.HomogRotate3D(mgl32.DegToRad(angle), axis)
}

// LookAt returns a view matrix for a camera at eye looking at center.
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, center, up)
}

// Perspective returns a perspective projection with a vertical field of
// view of fovy degrees.
func Perspective(fovy, aspect, near, far float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(fovy), aspect, near, far)
}

// Frustum returns the perspective projection bounded by the given planes.
func Frustum(left, right, bottom, top, near, far float32) mgl32.Mat4 {
	return mgl32.Frustum(left, right, bottom, top, near, far)
}

// EulerToQuat converts Euler angles in degrees, applied in y-z-x order,
// into a normalized quaternion.
func EulerToQuat(angles mgl32.Vec3) mgl32.Quat {
	x := mgl32.DegToRad(float32(math.Mod(float64(angles[0]), 360)))
	y := mgl32.DegToRad(float32(math.Mod(float64(angles[1]), 360)))
	z := mgl32.DegToRad(float32(math.Mod(float64(angles[2]), 360)))

	c1 := float32(math.Cos(float64(y) / 2))
	c2 := float32(math.Cos(float64(z) / 2))
	c3 := float32(math.Cos(float64(x) / 2))
	s1 := float32(math.Sin(float64(y) / 2))
	s2 := float32(math.Sin(float64(z) / 2))
	s3 := float32(math.Sin(float64(x) / 2))

	q := mgl32.Quat{
		W: c1*c2*c3 - s1*s2*s3,
		V: mgl32.Vec3{
			s1*s2*c3 + c1*c2*s3,
			s1*c2*c3 + c1*s2*s3,
			c1*s2*c3 - s1*c2*s3,
		},
	}
	inv := safeDiv(1, q.Len())
	q.W *= inv
	q.V = q.V.Mul(inv)
	return q
}

// QuatToMat4 converts a normalized quaternion into a rotation matrix.
func QuatToMat4(q mgl32.Quat) mgl32.Mat4 {
	return q.Mat4()
}

// Mat4Mul multiplies two matrices.
func Mat4Mul(a, b mgl32.Mat4) mgl32.Mat4 {
	return a.Mul4(b)
}

// Mat4MulVec4 transforms a vector by a matrix.
func Mat4MulVec4(m mgl32.Mat4, v mgl32.Vec4) mgl32.Vec4 {
	return m.Mul4x1(v)
}
