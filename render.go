// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package wire3d

import (
	"github.com/gogpu/wire3d/surface"
)

// Strategy selects the face rasterization strategy.
type Strategy int

const (
	// StrategyScreenSpace projects each face vertex with the camera basis
	// scalars and rejects whole faces that leave the clip volume or the
	// buffer. This is the default.
	StrategyScreenSpace Strategy = iota

	// StrategyMatrix transforms vertices through the view-projection
	// matrix and draws each in-bounds edge independently, allowing
	// partially drawn faces. Kept as the cross-validation alternate.
	StrategyMatrix
)

// faceRasterizer is the seam between face decoding and pixel writing.
// Both historical rasterization strategies implement it.
type faceRasterizer interface {
	// begin precomputes per-frame state from the frame's camera snapshot.
	begin(rc *RenderContext)

	// rasterizeFace draws one face in the given packed color and returns
	// the number of pixels written. Culled geometry writes zero pixels;
	// that is normal control flow, not an error.
	rasterizeFace(rc *RenderContext, prim *Primitive, face Face, color uint32) int
}

// Render owns the camera and produces one RenderContext per frame.
type Render struct {
	camera *Camera
	strat  faceRasterizer
}

// Option configures a Render.
type Option func(*Render)

// WithStrategy selects the rasterization strategy.
func WithStrategy(s Strategy) Option {
	return func(r *Render) {
		switch s {
		case StrategyMatrix:
			r.strat = &matrixStrategy{}
		default:
			r.strat = &screenStrategy{}
		}
	}
}

// NewRender creates a renderer with a default camera and the screen-space
// strategy.
func NewRender(opts ...Option) *Render {
	r := &Render{
		camera: NewCamera(),
		strat:  &screenStrategy{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Camera returns the renderer's camera for pose and projection updates.
func (r *Render) Camera() *Camera { return r.camera }

// Begin opens a frame over the target surface: the buffer is cleared to
// opaque black and the camera is recomputed for the current extent.
//
// The returned context borrows the surface buffer for exactly one frame;
// it must not be retained past Finish, and only one frame may be in
// flight at a time.
func (r *Render) Begin(target surface.Surface) *RenderContext {
	width, height := target.Extent()
	format := target.Format()

	data := target.Data()
	opaque := format.Pack(0x000000)
	for i := range data {
		data[i] = opaque
	}

	r.camera.Resize(width, height)

	rc := &RenderContext{
		render: r,
		width:  width,
		height: height,
		data:   data,
		format: format,
	}
	r.strat.begin(rc)
	Logger().Debug("wire3d: frame begin", "width", width, "height", height, "format", format.String())
	return rc
}

// RenderContext binds the camera snapshot of one frame to a target pixel
// buffer. It is single-threaded and short-lived.
type RenderContext struct {
	render *Render
	width  int
	height int
	data   []uint32
	format surface.PixelFormat
}

// Draw rasterizes every face of the primitive and returns the total
// number of pixels written. Out-of-range geometry is silently culled.
//
// The primitive must not be mutated for the duration of the call; its
// buffers are read without synchronization.
func (rc *RenderContext) Draw(prim *Primitive) int {
	written := 0
	cursor := prim.Faces()
	for {
		face, ok := cursor.Next()
		if !ok {
			break
		}
		shaded := shadeRGB(prim.Color, lightDivisor(prim.Normals[face.Normal]))
		written += rc.render.strat.rasterizeFace(rc, prim, face, rc.format.Pack(shaded))
	}
	return written
}

// Finish closes the frame. The context must not be used afterwards; the
// filled buffer is ready for the presentation layer.
func (rc *RenderContext) Finish() {
	rc.data = nil
}
