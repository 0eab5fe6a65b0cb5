// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import (
	"errors"
	"fmt"

	"github.com/gogpu/wire3d/math3d"
)

// ErrDegeneratePose is returned by Camera.Set for inputs that cannot form
// an orthonormal basis.
var ErrDegeneratePose = errors.New("wire3d: degenerate camera pose")

// ErrInvalidProjection is returned by Camera.SetProjection when the
// near/far planes violate 0 < near < far.
var ErrInvalidProjection = errors.New("wire3d: invalid projection")

// CameraLocation is a snapshot of the camera pose: the raw eye and target
// points supplied by the caller plus the derived right-handed orthonormal
// basis extracted from the view matrix.
type CameraLocation struct {
	Direction math3d.Vec3
	Right     math3d.Vec3
	Up        math3d.Vec3
	Location  math3d.Vec3
	At        math3d.Vec3
}

// CameraProjection is a snapshot of the projection parameters. Size is the
// half-extent footprint of the frustum at the near plane, before aspect
// correction.
type CameraProjection struct {
	Size math3d.Vec2
	Near float32
	Far  float32
}

// Camera owns a pose and a projection and caches the derived view,
// projection, and view-projection matrices. The cached matrices are
// invariants of the stored pose, projection, and target extent: every
// mutator recomputes them before returning.
//
// The configured Size is stretched along the longer screen axis by the
// aspect ratio, so the shorter screen dimension always maps to the
// configured angular size.
type Camera struct {
	location   CameraLocation
	projection CameraProjection

	viewMatrix           math3d.Mat4
	projectionMatrix     math3d.Mat4
	viewProjectionMatrix math3d.Mat4
	extentW, extentH     int
}

// NewCamera creates a camera with the historical defaults: eye at (0,0,1)
// looking at the origin with up (0,1,0), an 800x600 extent, and a
// 0.05..100 frustum with a (0.1,0.1) half-extent footprint.
func NewCamera() *Camera {
	c := &Camera{
		viewMatrix:           math3d.Identity(),
		projectionMatrix:     math3d.Identity(),
		viewProjectionMatrix: math3d.Identity(),
		extentW:              800,
		extentH:              600,
	}
	// Defaults cannot fail validation.
	_ = c.SetProjection(0.05, 100, math3d.V2(0.1, 0.1))
	_ = c.Set(math3d.V3(0, 0, 1), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0))
	return c
}

// Set recomputes the camera basis, view matrix, and view-projection matrix
// for a new pose.
//
// The inputs must be non-degenerate: eye and at must be distinct, and
// approxUp must not be parallel to the view direction. Invalid input fails
// fast with ErrDegeneratePose rather than propagating NaNs into the frame.
func (c *Camera) Set(eye, at, approxUp math3d.Vec3) error {
	dir := at.Sub(eye)
	if dir.Length() == 0 {
		return fmt.Errorf("%w: eye and target coincide", ErrDegeneratePose)
	}
	if dir.Normalize().Cross(approxUp.Normalize()).Length() < 1e-6 {
		return fmt.Errorf("%w: approximate up is parallel to the view direction", ErrDegeneratePose)
	}

	view := math3d.View(eye, at, approxUp)

	c.location.Right = math3d.V3(view[0][0], view[1][0], view[2][0])
	c.location.Up = math3d.V3(view[0][1], view[1][1], view[2][1])
	c.location.Direction = math3d.V3(-view[0][2], -view[1][2], -view[2][2])
	c.location.Location = eye
	c.location.At = at

	c.viewMatrix = view
	c.viewProjectionMatrix = c.viewMatrix.Mul(c.projectionMatrix)
	return nil
}

// SetProjection updates the projection parameters and recomputes the
// projection and view-projection matrices under the current extent.
// Requires 0 < near < far.
func (c *Camera) SetProjection(near, far float32, size math3d.Vec2) error {
	if near <= 0 || far <= near {
		return fmt.Errorf("%w: near=%g far=%g", ErrInvalidProjection, near, far)
	}
	c.projection.Near = near
	c.projection.Far = far
	c.projection.Size = size
	c.recomputeProjection()
	return nil
}

// Resize recomputes the projection for a new target extent. A no-op when
// the extent is unchanged. Render calls this at the start of every frame,
// since the target surface may change size between frames.
func (c *Camera) Resize(width, height int) {
	if width == c.extentW && height == c.extentH {
		return
	}
	c.extentW = width
	c.extentH = height
	c.recomputeProjection()
}

// Location returns a read-only snapshot of the camera pose.
func (c *Camera) Location() CameraLocation { return c.location }

// Projection returns a read-only snapshot of the projection parameters.
func (c *Camera) Projection() CameraProjection { return c.projection }

// ViewMatrix returns the cached view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 { return c.viewMatrix }

// ProjectionMatrix returns the cached projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 { return c.projectionMatrix }

// ViewProjectionMatrix returns the cached combined view-projection matrix.
func (c *Camera) ViewProjectionMatrix() math3d.Mat4 { return c.viewProjectionMatrix }

// effectiveSize returns the frustum half-extents after aspect correction:
// the configured size stretched along the longer screen axis.
func (c *Camera) effectiveSize() math3d.Vec2 {
	size := c.projection.Size
	if c.extentW > c.extentH {
		return size.Mul(math3d.V2(float32(c.extentW)/float32(c.extentH), 1))
	}
	return size.Mul(math3d.V2(1, float32(c.extentH)/float32(c.extentW)))
}

func (c *Camera) recomputeProjection() {
	ext := c.effectiveSize()
	c.projectionMatrix = math3d.ProjectionFrustum(
		-ext.X, ext.X, -ext.Y, ext.Y,
		c.projection.Near, c.projection.Far)
	c.viewProjectionMatrix = c.viewMatrix.Mul(c.projectionMatrix)
}
