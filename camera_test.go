// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import (
	"errors"
	"testing"

	"github.com/gogpu/wire3d/math3d"
)

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	loc := c.Location()
	if loc.Location != math3d.V3(0, 0, 1) || loc.At != (math3d.Vec3{}) {
		t.Errorf("default pose = %+v", loc)
	}
	proj := c.Projection()
	if proj.Near != 0.05 || proj.Far != 100 || proj.Size != math3d.V2(0.1, 0.1) {
		t.Errorf("default projection = %+v", proj)
	}
}

func TestCameraViewOrthonormal(t *testing.T) {
	c := NewCamera()
	if err := c.Set(math3d.V3(3, 2, 1), math3d.V3(-1, 0, 4), math3d.V3(0, 1, 0)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	m := c.ViewMatrix()
	rows := [3]math3d.Vec3{
		{X: m[0][0], Y: m[0][1], Z: m[0][2]},
		{X: m[1][0], Y: m[1][1], Z: m[1][2]},
		{X: m[2][0], Y: m[2][1], Z: m[2][2]},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if got := rows[i].Dot(rows[j]); absf(got-want) > 1e-4 {
				t.Errorf("row %d · row %d = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestCameraBasisSnapshot(t *testing.T) {
	c := NewCamera()
	if err := c.Set(math3d.V3(0, 0, 5), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	loc := c.Location()

	checks := []struct {
		name string
		got  math3d.Vec3
		want math3d.Vec3
	}{
		{"direction", loc.Direction, math3d.V3(0, 0, -1)},
		{"right", loc.Right, math3d.V3(1, 0, 0)},
		{"up", loc.Up, math3d.V3(0, 1, 0)},
	}
	for _, ck := range checks {
		d := ck.got.Sub(ck.want)
		if d.Length() > 1e-5 {
			t.Errorf("%s = %+v, want %+v", ck.name, ck.got, ck.want)
		}
	}
}

func TestCameraSetDegenerate(t *testing.T) {
	c := NewCamera()

	err := c.Set(math3d.V3(1, 2, 3), math3d.V3(1, 2, 3), math3d.V3(0, 1, 0))
	if !errors.Is(err, ErrDegeneratePose) {
		t.Errorf("coincident eye/at: error = %v, want ErrDegeneratePose", err)
	}

	err = c.Set(math3d.V3(0, 5, 0), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	if !errors.Is(err, ErrDegeneratePose) {
		t.Errorf("parallel up: error = %v, want ErrDegeneratePose", err)
	}

	// A failed Set leaves the cached matrices untouched.
	before := c.ViewMatrix()
	_ = c.Set(math3d.V3(0, 0, 0), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	if c.ViewMatrix() != before {
		t.Error("failed Set modified the view matrix")
	}
}

func TestCameraSetProjectionInvalid(t *testing.T) {
	c := NewCamera()
	for _, tc := range []struct {
		near, far float32
	}{
		{0, 100},
		{-1, 100},
		{10, 10},
		{10, 5},
	} {
		err := c.SetProjection(tc.near, tc.far, math3d.V2(0.1, 0.1))
		if !errors.Is(err, ErrInvalidProjection) {
			t.Errorf("SetProjection(%v, %v): error = %v, want ErrInvalidProjection", tc.near, tc.far, err)
		}
	}
}

func TestCameraResizeIdempotent(t *testing.T) {
	c := NewCamera()
	c.Resize(640, 480)
	proj := c.ProjectionMatrix()
	vp := c.ViewProjectionMatrix()

	c.Resize(640, 480)
	if c.ProjectionMatrix() != proj {
		t.Error("second Resize changed the projection matrix")
	}
	if c.ViewProjectionMatrix() != vp {
		t.Error("second Resize changed the view-projection matrix")
	}
}

func TestCameraAspectCorrection(t *testing.T) {
	c := NewCamera()
	c.Resize(800, 600)
	if err := c.SetProjection(0.05, 100, math3d.V2(0.1, 0.1)); err != nil {
		t.Fatalf("SetProjection() error = %v", err)
	}

	// The longer axis is stretched; the shorter keeps the configured size.
	eff := c.effectiveSize()
	if absf(eff.X-0.1*800/600) > 1e-6 {
		t.Errorf("effective horizontal half-extent = %v, want %v", eff.X, 0.1*800.0/600.0)
	}
	if absf(eff.Y-0.1) > 1e-6 {
		t.Errorf("effective vertical half-extent = %v, want 0.1", eff.Y)
	}

	// Portrait extents stretch the vertical axis instead.
	c.Resize(600, 800)
	eff = c.effectiveSize()
	if absf(eff.X-0.1) > 1e-6 || absf(eff.Y-0.1*800/600) > 1e-6 {
		t.Errorf("portrait effective size = %+v", eff)
	}
}

func TestCameraViewProjectionComposition(t *testing.T) {
	c := NewCamera()
	if err := c.Set(math3d.V3(2, 3, 4), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	c.Resize(320, 200)

	want := c.ViewMatrix().Mul(c.ProjectionMatrix())
	if c.ViewProjectionMatrix() != want {
		t.Error("view-projection is not view · projection")
	}
}
