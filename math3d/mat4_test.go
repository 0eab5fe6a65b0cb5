// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	v := V3(1, 2, 3)
	assert.Equal(t, Vec4{1, 2, 3, 1}, m.Transform(v))
	assert.Equal(t, m, m.Mul(Identity()))
}

func TestMulComposesLeftToRight(t *testing.T) {
	// Translation by (1,0,0) then scale by 2 lands at (4,0,0) under the
	// row-vector convention.
	translate := Identity()
	translate[3][0] = 1
	scale := Identity()
	scale[0][0] = 2
	scale[1][1] = 2
	scale[2][2] = 2

	got := translate.Mul(scale).Transform(V3(1, 0, 0))
	assert.Equal(t, Vec4{4, 0, 0, 1}, got)
}

// rotationRows extracts the 3x3 rotation block rows of a view matrix.
func rotationRows(m Mat4) [3]Vec3 {
	return [3]Vec3{
		{m[0][0], m[0][1], m[0][2]},
		{m[1][0], m[1][1], m[1][2]},
		{m[2][0], m[2][1], m[2][2]},
	}
}

func TestViewOrthonormalBasis(t *testing.T) {
	cases := []struct {
		name        string
		eye, at, up Vec3
	}{
		{"axis aligned", V3(0, 0, 5), V3(0, 0, 0), V3(0, 1, 0)},
		{"oblique", V3(3, 2, 1), V3(-1, 0, 4), V3(0, 1, 0)},
		{"inverted up", V3(5, 3, 5), V3(0, 0, 0), V3(0, -1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rows := rotationRows(View(tc.eye, tc.at, tc.up))
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					want := float32(0)
					if i == j {
						want = 1
					}
					assert.InDelta(t, want, rows[i].Dot(rows[j]), 1e-4,
						"row %d · row %d", i, j)
				}
			}
		})
	}
}

func TestViewBasisExtraction(t *testing.T) {
	// Looking down -Z from +Z: right is +X (column 0), up is +Y
	// (column 1), direction is the negated column 2.
	m := View(V3(0, 0, 5), V3(0, 0, 0), V3(0, 1, 0))

	right := V3(m[0][0], m[1][0], m[2][0])
	up := V3(m[0][1], m[1][1], m[2][1])
	dir := V3(-m[0][2], -m[1][2], -m[2][2])

	assert.InDelta(t, 1, right.X, 1e-5)
	assert.InDelta(t, 1, up.Y, 1e-5)
	assert.InDelta(t, -1, dir.Z, 1e-5)
}

func TestViewMapsEyeToOrigin(t *testing.T) {
	eye := V3(3, -2, 7)
	m := View(eye, V3(0, 0, 0), V3(0, 1, 0))
	got := m.Transform(eye)
	assert.InDelta(t, 0, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)
	assert.InDelta(t, 0, got.Z, 1e-5)
	assert.InDelta(t, 1, got.W, 1e-5)
}

func TestProjectionFrustumDepthRange(t *testing.T) {
	const near, far = 0.5, 100.0
	m := ProjectionFrustum(-1, 1, -1, 1, near, far)

	// View space looks down -Z, so the near plane sits at z = -near.
	nearPt := m.Transform(V3(0, 0, -near)).DivW()
	farPt := m.Transform(V3(0, 0, -far)).DivW()
	assert.InDelta(t, 0, nearPt.Z, 1e-5)
	assert.InDelta(t, 1, farPt.Z, 1e-5)

	mid := m.Transform(V3(0, 0, -10)).DivW()
	assert.Greater(t, mid.Z, float32(0))
	assert.Less(t, mid.Z, float32(1))
}

func TestProjectionFrustumEdges(t *testing.T) {
	const near, far = 1.0, 10.0
	m := ProjectionFrustum(-2, 2, -1, 1, near, far)

	// A point on the right frustum edge at the near plane maps to x = 1.
	right := m.Transform(V3(2, 0, -near)).DivW()
	assert.InDelta(t, 1, right.X, 1e-5)

	// A point on the top edge maps to y = 1.
	top := m.Transform(V3(0, 1, -near)).DivW()
	assert.InDelta(t, 1, top.Y, 1e-5)

	// Edges scale linearly with depth.
	farRight := m.Transform(V3(2*far/near, 0, -far)).DivW()
	assert.InDelta(t, 1, farRight.X, 1e-4)
}
