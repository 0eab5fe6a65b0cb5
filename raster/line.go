// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the integer line rasterizer used by wire3d.
//
// The historical implementation walked a raw pixel pointer and carried the
// error accumulator in unsigned arithmetic, testing its sign bit against
// the wraparound boundary. This version keeps the incremental algorithm
// but uses a plain signed accumulator with an explicit comparison, and
// ordinary slice indexing instead of pointer stepping.
package raster

// DrawLine draws a line from (x1,y1) to (x2,y2) into buf, a row-major
// pixel buffer with the given stride, and returns the number of pixels
// written. One pixel is written per major-axis step, including both
// endpoints; there is no blending, the last writer wins.
//
// Both endpoints must lie within the buffer: 0 <= x < stride and
// 0 <= y*stride+x < len(buf). The inner loop performs no clipping.
//
// The endpoints are canonicalized before stepping, so a line and its
// reverse touch the identical set of pixels.
func DrawLine(buf []uint32, stride, x1, y1, x2, y2 int, color uint32) int {
	if x2 < x1 || (x1 == x2 && y2 < y1) {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx := x2 - x1 // >= 0 after canonicalization
	dy := y2 - y1
	sy := stride
	if dy < 0 {
		dy = -dy
		sy = -stride
	}

	off := y1*stride + x1
	buf[off] = color
	written := 1

	if dx >= dy {
		// X-major: step x every iteration, y when the accumulator turns.
		ie := 2 * dy
		f := ie - dx
		ine := ie - 2*dx
		for ; dx > 0; dx-- {
			off++
			if f >= 0 {
				off += sy
				f += ine
			} else {
				f += ie
			}
			buf[off] = color
			written++
		}
	} else {
		ie := 2 * dx
		f := ie - dy
		ine := ie - 2*dy
		for ; dy > 0; dy-- {
			off += sy
			if f >= 0 {
				off++
				f += ine
			} else {
				f += ie
			}
			buf[off] = color
			written++
		}
	}
	return written
}
