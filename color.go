// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/wire3d/math3d"
)

// lightDivisor derives the flat per-face shading divisor from a face
// normal: 1 / clamp(nx+ny+nz, 0.1, 1.0), truncated to an integer.
//
// This is the exact historical formula. It is a crude darkening keyed to
// the component sum of the normal, not a dot product against a light
// direction; it is preserved verbatim and pinned by tests rather than
// replaced with a physically based model. The result is always in 1..10.
func lightDivisor(normal math3d.Vec3) uint32 {
	sum := math32.Min(math32.Max(normal.X+normal.Y+normal.Z, 0.1), 1.0)
	return uint32(1.0 / sum)
}

// shadeRGB divides each channel of a 0xRRGGBB color by the light divisor.
func shadeRGB(rgb, divisor uint32) uint32 {
	if divisor <= 1 {
		return rgb
	}
	r := (rgb >> 16 & 0xFF) / divisor
	g := (rgb >> 8 & 0xFF) / divisor
	b := (rgb & 0xFF) / divisor
	return r<<16 | g<<8 | b
}
