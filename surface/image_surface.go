// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/png"
	"os"
)

// ImageSurface is a CPU-backed Surface over a plain pixel slice.
//
// It belongs to the presentation side of the contract: it owns the buffer,
// resizes it between frames, and converts it for display or export. The
// rendering core only ever sees it through the Surface interface.
type ImageSurface struct {
	width  int
	height int
	format PixelFormat
	data   []uint32
}

// NewImageSurface creates a surface with the given extent and pixel format.
// The buffer starts as opaque black.
func NewImageSurface(width, height int, format PixelFormat) *ImageSurface {
	s := &ImageSurface{format: format}
	s.Resize(width, height)
	return s
}

// Data returns the mutable pixel buffer.
func (s *ImageSurface) Data() []uint32 { return s.data }

// Pix returns a read view of the pixel buffer.
func (s *ImageSurface) Pix() []uint32 { return s.data }

// Extent returns the current pixel extent.
func (s *ImageSurface) Extent() (width, height int) { return s.width, s.height }

// Format returns the pixel format.
func (s *ImageSurface) Format() PixelFormat { return s.format }

// Resize reallocates the buffer for a new extent. A no-op if the extent is
// unchanged. Must not be called while a frame is in flight.
func (s *ImageSurface) Resize(width, height int) {
	if width == s.width && height == s.height && s.data != nil {
		return
	}
	s.width = width
	s.height = height
	s.data = make([]uint32, width*height)
	opaque := s.format.Pack(0x000000)
	for i := range s.data {
		s.data[i] = opaque
	}
}

// Snapshot returns a copy of the surface contents as an RGBA image,
// decoding through the surface's pixel format.
func (s *ImageSurface) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	for i, p := range s.data {
		r, g, b := s.format.RGB(p)
		j := i * 4
		img.Pix[j+0] = r
		img.Pix[j+1] = g
		img.Pix[j+2] = b
		img.Pix[j+3] = 0xFF
	}
	return img
}

// SavePNG writes the surface contents to a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, s.Snapshot())
}
