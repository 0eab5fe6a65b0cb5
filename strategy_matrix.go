// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import (
	"github.com/gogpu/wire3d/math3d"
	"github.com/gogpu/wire3d/raster"
)

// matrixStrategy is the matrix-transform-with-per-edge-clip strategy:
// every vertex goes through the combined view-projection matrix, survives
// if its post-divide depth is in (0,1) and its pixel lands in the buffer,
// and each consecutive edge is drawn independently only when both of its
// endpoints survived. Edges with one endpoint out of bounds are dropped,
// not clipped, so a face can be partially drawn. There is no face-level
// rejection.
type matrixStrategy struct {
	vp math3d.Mat4

	verts []matrixVert // per-face scratch, reused across faces
}

type matrixVert struct {
	x, y int
	ok   bool
}

func (s *matrixStrategy) begin(rc *RenderContext) {
	s.vp = rc.render.camera.ViewProjectionMatrix()
}

func (s *matrixStrategy) rasterizeFace(rc *RenderContext, prim *Primitive, face Face, color uint32) int {
	s.verts = s.verts[:0]

	for _, vi := range face.Vertices {
		clip := s.vp.Transform(prim.Positions[vi])

		var v matrixVert
		if clip.W != 0 {
			ndc := clip.DivW()
			if ndc.Z > 0 && ndc.Z < 1 {
				px := (ndc.X + 1) * 0.5 * float32(rc.width)
				py := (1 - ndc.Y) * 0.5 * float32(rc.height)
				if px >= 0 && py >= 0 {
					x, y := int(px), int(py)
					if x < rc.width && y < rc.height {
						v = matrixVert{x: x, y: y, ok: true}
					}
				}
			}
		}
		s.verts = append(s.verts, v)
	}
	if len(s.verts) < 2 {
		return 0
	}

	written := 0
	for i := range s.verts {
		a := s.verts[i]
		b := s.verts[(i+1)%len(s.verts)]
		if !a.ok || !b.ok {
			continue
		}
		written += raster.DrawLine(rc.data, rc.width, a.x, a.y, b.x, b.y, color)
	}
	return written
}
