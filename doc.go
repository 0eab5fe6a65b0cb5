// Package wire3d is a minimal real-time software 3D wireframe renderer.
//
// # Overview
//
// wire3d turns a camera pose and a list of indexed mesh primitives into
// pixels written directly into a CPU framebuffer. There is no GPU
// pipeline: view and projection math, face decoding, clipping, and an
// integer incremental line rasterizer run entirely on the CPU.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/wire3d"
//		"github.com/gogpu/wire3d/math3d"
//		"github.com/gogpu/wire3d/surface"
//	)
//
//	target := surface.NewImageSurface(800, 600, surface.FormatABGR)
//	render := wire3d.NewRender()
//
//	if err := render.Camera().Set(
//		math3d.V3(0, 0, 5), math3d.V3(0, 0, 0), math3d.V3(0, 1, 0),
//	); err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := render.Begin(target)
//	ctx.Draw(&triangle)
//	ctx.Finish()
//	// hand target to the presentation layer
//
// # Frames
//
// A frame is strictly sequential: Begin clears the target and recomputes
// the camera for the current extent, Draw rasterizes primitives, Finish
// closes the frame. The context must not outlive the frame, and nothing
// in the pipeline blocks or spawns goroutines; the pixel buffer is
// exclusively owned by the caller between frames.
//
// # Strategies
//
// Two historical rasterization strategies live behind one interface: the
// default screen-space projected-polygon strategy (whole-face rejection,
// closed border loop, bottom-vertex sentinel) and the matrix strategy
// (per-edge clip against depth and bounds, partial faces allowed). Select
// with NewRender(wire3d.WithStrategy(wire3d.StrategyMatrix)); shared
// scenes render the same silhouette under both, which the tests use to
// cross-validate them.
//
// # Lighting
//
// Shading is a single flat per-face divisor derived from the face normal's
// component sum. The formula is a preserved historical quirk, pinned by
// tests; see lightDivisor.
package wire3d
