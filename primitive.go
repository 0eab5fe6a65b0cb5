// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import "github.com/gogpu/wire3d/math3d"

// Primitive is an indexed mesh: a position list, a per-face normal list,
// and a flat self-describing index buffer encoding faces back-to-back.
//
// Each face occupies vertexCount+2 consecutive slots of Indices:
//
//	[vertexCount, normalIndex, i0, i1, ... i(vertexCount-1)]
//
// There is no delimiter between faces; an inaccurate vertexCount header
// desynchronizes every face after it. Importers must guarantee that every
// header is accurate and every index is in range, because the rasterizer
// performs no validation on the hot path.
//
// Slot 0 of Positions and Normals is reserved as the deterministic
// fallback (the origin point and the up normal) that importers substitute
// for malformed input; the rasterizer itself never consumes it.
//
// A Primitive is immutable during a draw call. Callers may freely mutate
// it between frames, but never concurrently with a draw.
type Primitive struct {
	Positions []math3d.Vec3
	Normals   []math3d.Vec3
	Indices   []uint32
	Color     uint32 // 0xRRGGBB
}

// Face is one decoded face: the indices of its positions and the index of
// its shared normal. Vertices aliases the primitive's index buffer and is
// only valid until the primitive is mutated.
type Face struct {
	Normal   int
	Vertices []uint32
}

// FaceCursor walks the face encoding of an index buffer. Obtain one from
// Primitive.Faces; a fresh cursor restarts at the first face.
type FaceCursor struct {
	indices []uint32
}

// Faces returns a cursor over the primitive's faces.
func (p *Primitive) Faces() FaceCursor {
	return FaceCursor{indices: p.Indices}
}

// Next decodes the face under the cursor and advances past it. It returns
// false once the buffer is exhausted, or if a truncated header is left at
// the tail.
func (c *FaceCursor) Next() (Face, bool) {
	if len(c.indices) < 2 {
		return Face{}, false
	}
	end := int(c.indices[0]) + 2
	if end > len(c.indices) {
		return Face{}, false
	}
	face := Face{
		Normal:   int(c.indices[1]),
		Vertices: c.indices[2:end],
	}
	c.indices = c.indices[end:]
	return face, true
}

// EncodeFace appends one face record to an index buffer in the Primitive
// encoding and returns the extended buffer.
func EncodeFace(dst []uint32, normalIndex uint32, vertices ...uint32) []uint32 {
	dst = append(dst, uint32(len(vertices)), normalIndex)
	return append(dst, vertices...)
}
