// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec2(t *testing.T) {
	assert.Equal(t, Vec2{1, 2}, V2(1, 2))
	assert.Equal(t, Vec2{4, 6}, V2(1, 2).Add(V2(3, 4)))
	assert.Equal(t, Vec2{-2, -2}, V2(1, 2).Sub(V2(3, 4)))
	assert.Equal(t, Vec2{3, 8}, V2(1, 2).Mul(V2(3, 4)))
	assert.Equal(t, Vec2{2, 4}, V2(1, 2).Scale(2))
	assert.Equal(t, float32(11), V2(1, 2).Dot(V2(3, 4)))
	assert.Equal(t, float32(5), V2(3, 4).Length())
	assert.Equal(t, Vec2{0, 1}, V2(0, 5).Normalize())
	assert.Equal(t, Vec2{}, Vec2{}.Normalize())
}

func TestVec3(t *testing.T) {
	assert.Equal(t, Vec3{1, 2, 3}, V3(1, 2, 3))
	assert.Equal(t, Vec3{0, 1, 0}, Up())
	assert.Equal(t, Vec3{5, 7, 9}, V3(1, 2, 3).Add(V3(4, 5, 6)))
	assert.Equal(t, Vec3{-3, -3, -3}, V3(1, 2, 3).Sub(V3(4, 5, 6)))
	assert.Equal(t, Vec3{2, 4, 6}, V3(1, 2, 3).Scale(2))
	assert.Equal(t, Vec3{-1, -2, -3}, V3(1, 2, 3).Neg())
	assert.Equal(t, float32(32), V3(1, 2, 3).Dot(V3(4, 5, 6)))
	assert.Equal(t, float32(3), V3(2, 2, 1).Length())
}

func TestVec3Cross(t *testing.T) {
	// Right-handed: x × y = z.
	assert.Equal(t, Vec3{0, 0, 1}, V3(1, 0, 0).Cross(V3(0, 1, 0)))
	assert.Equal(t, Vec3{1, 0, 0}, V3(0, 1, 0).Cross(V3(0, 0, 1)))
	assert.Equal(t, Vec3{0, 0, -1}, V3(0, 1, 0).Cross(V3(1, 0, 0)))
}

func TestVec3Normalize(t *testing.T) {
	n := V3(3, 0, 4).Normalize()
	assert.InDelta(t, 0.6, n.X, 1e-6)
	assert.InDelta(t, 0.0, n.Y, 1e-6)
	assert.InDelta(t, 0.8, n.Z, 1e-6)
	assert.InDelta(t, 1.0, n.Length(), 1e-6)

	// Degenerate input passes through as zero rather than NaN.
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
}

func TestVec4DivW(t *testing.T) {
	v := Vec4{2, 4, 6, 2}
	assert.Equal(t, Vec3{1, 2, 3}, v.DivW())
}
