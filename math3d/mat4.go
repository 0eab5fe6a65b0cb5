// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package math3d

// Mat4 is a 4x4 matrix stored in row-major order using the row-vector
// convention: a point transforms as [x y z 1] · M, and compositions read
// left to right (A.Mul(B) applies A first).
//
// For a view matrix the camera basis is recoverable from the rotation
// block: column 0 is the right vector, column 1 is up, and the negated
// column 2 is the view direction, because the matrix maps world space
// into a space looking down -Z.
type Mat4 [4][4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Mul returns the product a · b. Under the row-vector convention this
// composes a first, then b.
func (a Mat4) Mul(b Mat4) Mat4 {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m[i][j] = a[i][0]*b[0][j] + a[i][1]*b[1][j] + a[i][2]*b[2][j] + a[i][3]*b[3][j]
		}
	}
	return m
}

// Transform applies the matrix to a point, returning the homogeneous
// result. The divide is left to the caller.
func (a Mat4) Transform(v Vec3) Vec4 {
	return Vec4{
		v.X*a[0][0] + v.Y*a[1][0] + v.Z*a[2][0] + a[3][0],
		v.X*a[0][1] + v.Y*a[1][1] + v.Z*a[2][1] + a[3][1],
		v.X*a[0][2] + v.Y*a[1][2] + v.Z*a[2][2] + a[3][2],
		v.X*a[0][3] + v.Y*a[1][3] + v.Z*a[2][3] + a[3][3],
	}
}

// View builds a right-handed look-at matrix from an eye point, a target
// point, and an approximate up vector.
//
// The basis is direction = normalize(at - eye), right = normalize(direction
// × approxUp), up = right × direction. Inputs must be non-degenerate: a
// zero-length direction or an approxUp parallel to the direction yields a
// non-orthonormal basis. Camera.Set validates this at the API boundary.
func View(eye, at, approxUp Vec3) Mat4 {
	dir := at.Sub(eye).Normalize()
	right := dir.Cross(approxUp).Normalize()
	up := right.Cross(dir)

	return Mat4{
		{right.X, up.X, -dir.X, 0},
		{right.Y, up.Y, -dir.Y, 0},
		{right.Z, up.Z, -dir.Z, 0},
		{-right.Dot(eye), -up.Dot(eye), dir.Dot(eye), 1},
	}
}

// ProjectionFrustum builds an asymmetric perspective projection matrix for
// the frustum bounded by l/r/b/t at the near plane.
//
// Post-divide depth lands in (0, 1): a point on the near plane maps to 0
// and a point on the far plane maps to 1. Requires 0 < near < far; the
// caller validates.
func ProjectionFrustum(l, r, b, t, near, far float32) Mat4 {
	return Mat4{
		{2 * near / (r - l), 0, 0, 0},
		{0, 2 * near / (t - b), 0, 0},
		{(r + l) / (r - l), (t + b) / (t - b), far / (near - far), -1},
		{0, 0, near * far / (near - far), 0},
	}
}
