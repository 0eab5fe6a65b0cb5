// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package math3d

// Vec4 represents a homogeneous 4D vector, typically the result of
// transforming a point through a projective matrix before the divide.
type Vec4 struct {
	X, Y, Z, W float32
}

// DivW returns the vector after the homogeneous divide.
// The caller must guarantee W is non-zero.
func (a Vec4) DivW() Vec3 {
	return Vec3{a.X / a.W, a.Y / a.W, a.Z / a.W}
}
