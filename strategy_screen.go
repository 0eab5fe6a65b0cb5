// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import (
	"math"

	"github.com/gogpu/wire3d/math3d"
	"github.com/gogpu/wire3d/raster"
)

// screenStrategy is the screen-space projected-polygon strategy: every
// face vertex is projected individually using the camera basis and the
// near/far scalars, without going through the 4x4 matrix. A face is
// rejected whole if any vertex leaves the buffer or its inverse depth
// leaves (1/far, 1/near). Surviving faces are drawn as a closed wireframe
// border, with the bottom vertex (smallest screen Y) marked by a sentinel
// pixel. There is no filled scan conversion.
type screenStrategy struct {
	right, up, dir          math3d.Vec3
	locRight, locUp, locDir float32
	xMul, xAdd, yMul, yAdd  float32
	invNear, invFar         float32
	sentinel                uint32

	polygon []screenPoint // per-face scratch, reused across faces
}

type screenPoint struct {
	x, y int
}

func (s *screenStrategy) begin(rc *RenderContext) {
	cam := rc.render.camera
	loc := cam.Location()
	proj := cam.Projection()
	size := cam.effectiveSize()

	s.right = loc.Right
	s.up = loc.Up
	s.dir = loc.Direction
	s.locRight = loc.Location.Dot(loc.Right)
	s.locUp = loc.Location.Dot(loc.Up)
	s.locDir = loc.Location.Dot(loc.Direction)

	// Pixel mapping folded into two multiply-adds per axis. The scale
	// matches the projection matrix: near over the aspect-corrected
	// half-extent, with Y flipped into screen coordinates.
	s.xAdd = float32(rc.width) / 2
	s.xMul = s.xAdd * proj.Near / size.X
	s.yAdd = float32(rc.height) / 2
	s.yMul = -s.yAdd * proj.Near / size.Y

	s.invNear = 1 / proj.Near
	s.invFar = 1 / proj.Far
	s.sentinel = rc.format.Pack(0x000000)
}

func (s *screenStrategy) rasterizeFace(rc *RenderContext, prim *Primitive, face Face, color uint32) int {
	s.polygon = s.polygon[:0]
	bottomY := math.MaxInt
	bottomIndex := 0

	for i, vi := range face.Vertices {
		pt := prim.Positions[vi]

		invz := 1 / (pt.Dot(s.dir) - s.locDir)
		if invz >= s.invNear || invz <= s.invFar {
			return 0
		}
		px := (pt.Dot(s.right)-s.locRight)*invz*s.xMul + s.xAdd
		py := (pt.Dot(s.up)-s.locUp)*invz*s.yMul + s.yAdd
		if px < 0 || py < 0 {
			return 0
		}
		x, y := int(px), int(py)
		if x >= rc.width || y >= rc.height {
			return 0
		}

		s.polygon = append(s.polygon, screenPoint{x, y})
		if y < bottomY {
			bottomY = y
			bottomIndex = i
		}
	}
	if len(s.polygon) == 0 {
		return 0
	}

	written := 0
	last := len(s.polygon) - 1
	written += raster.DrawLine(rc.data, rc.width,
		s.polygon[0].x, s.polygon[0].y, s.polygon[last].x, s.polygon[last].y, color)
	for i := 0; i < last; i++ {
		written += raster.DrawLine(rc.data, rc.width,
			s.polygon[i].x, s.polygon[i].y, s.polygon[i+1].x, s.polygon[i+1].y, color)
	}

	bottom := s.polygon[bottomIndex]
	rc.data[bottom.y*rc.width+bottom.x] = s.sentinel
	return written + 1
}
