// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the render target contract for wire3d.
//
// A surface is a contiguous buffer of 32-bit pixels owned by the
// presentation layer. The rendering core borrows it for the duration of a
// single frame and never allocates or resizes it. The channel order inside
// each pixel word is a negotiated configuration point between the surface
// and whatever presents it on screen; see PixelFormat.
package surface

import "fmt"

// PixelFormat describes the channel order of a 32-bit pixel word.
//
// Two historical variants of this renderer used different byte orders, so
// the format is configuration, not a constant. All packing keeps the
// alpha/padding channel opaque.
type PixelFormat int

const (
	// FormatABGR packs pixels as 0xAABBGGRR with A forced to 0xFF.
	// On a little-endian host the in-memory byte order is R, G, B, A.
	FormatABGR PixelFormat = iota

	// FormatRGBX packs pixels as 0xRRGGBBXX with X forced to 0xFF.
	FormatRGBX
)

// Pack converts a 0xRRGGBB color into a pixel word in this format.
// The alpha/padding channel is forced opaque.
func (f PixelFormat) Pack(rgb uint32) uint32 {
	r := rgb >> 16 & 0xFF
	g := rgb >> 8 & 0xFF
	b := rgb & 0xFF
	switch f {
	case FormatRGBX:
		return r<<24 | g<<16 | b<<8 | 0xFF
	default:
		return 0xFF<<24 | b<<16 | g<<8 | r
	}
}

// RGB extracts the color channels from a pixel word in this format.
func (f PixelFormat) RGB(p uint32) (r, g, b uint8) {
	switch f {
	case FormatRGBX:
		return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8)
	default:
		return uint8(p), uint8(p >> 8), uint8(p >> 16)
	}
}

// String returns the format name.
func (f PixelFormat) String() string {
	switch f {
	case FormatRGBX:
		return "rgbx"
	case FormatABGR:
		return "abgr"
	default:
		return fmt.Sprintf("PixelFormat(%d)", int(f))
	}
}

// ParseFormat converts a format name ("abgr", "rgbx") to a PixelFormat.
func ParseFormat(name string) (PixelFormat, error) {
	switch name {
	case "abgr":
		return FormatABGR, nil
	case "rgbx":
		return FormatRGBX, nil
	default:
		return 0, fmt.Errorf("surface: unknown pixel format %q", name)
	}
}

// Surface is the render target contract consumed by the rendering core.
//
// Surfaces are not thread-safe. The pixel buffer is exclusively owned by
// the caller and mutably borrowed by a render context for one frame.
type Surface interface {
	// Data returns the mutable pixel buffer, row-major with a stride equal
	// to the surface width.
	Data() []uint32

	// Pix returns a read view of the same buffer. Callers must not write
	// through it.
	Pix() []uint32

	// Extent returns the current pixel extent.
	Extent() (width, height int)

	// Format returns the channel order of the pixel words.
	Format() PixelFormat
}
