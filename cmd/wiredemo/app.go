package main

import (
	"image"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/wire3d"
	"github.com/gogpu/wire3d/math3d"
	"github.com/gogpu/wire3d/obj"
	"github.com/gogpu/wire3d/surface"
)

// app drives the demo loop: animate, render into the software surface,
// then blit the surface into the window.
type app struct {
	cfg    config
	render *wire3d.Render
	target *surface.ImageSurface
	prim   *wire3d.Primitive
	timer  *frameTimer

	// triangle animation is only applied to the built-in scene
	animate bool

	img   *image.RGBA
	fbImg *ebiten.Image
}

func newApp(cfg config) (*app, error) {
	strat, err := cfg.strategy()
	if err != nil {
		return nil, err
	}

	render := wire3d.NewRender(wire3d.WithStrategy(strat))
	if err := render.Camera().SetProjection(
		cfg.Camera.Near, cfg.Camera.Far,
		math3d.V2(cfg.Camera.Size, cfg.Camera.Size),
	); err != nil {
		return nil, err
	}

	prim := demoTriangle(cfg.Color)
	animate := true
	if cfg.Model != "" {
		prim, err = obj.LoadFile(cfg.Model)
		if err != nil {
			return nil, err
		}
		prim.Color = cfg.Color
		animate = false
	}

	return &app{
		cfg:     cfg,
		render:  render,
		target:  surface.NewImageSurface(cfg.Width, cfg.Height, cfg.pixelFormat()),
		prim:    prim,
		timer:   newFrameTimer(),
		animate: animate,
	}, nil
}

// demoTriangle builds the historical demo scene: a triangle inscribed in
// the unit circle, facing +z.
func demoTriangle(color uint32) *wire3d.Primitive {
	prim := &wire3d.Primitive{
		Positions: make([]math3d.Vec3, 4),
		Normals:   []math3d.Vec3{math3d.Up(), {X: 0, Y: 0, Z: 1}},
		Color:     color,
	}
	prim.Indices = wire3d.EncodeFace(nil, 1, 1, 2, 3)
	spinTriangle(prim, 0)
	return prim
}

// spinTriangle places the three vertices on the unit circle, rotated by
// the given phase.
func spinTriangle(prim *wire3d.Primitive, phase float32) {
	const step = 2 * math32.Pi / 3
	for i := 0; i < 3; i++ {
		angle := float32(i)*step + phase
		prim.Positions[i+1] = math3d.V3(math32.Sin(angle), math32.Cos(angle), 0)
	}
}

func (a *app) Update() error {
	a.timer.tick()
	t := a.timer.Elapsed()

	if a.animate {
		spinTriangle(a.prim, t*0.5)
	}

	// Orbit the camera around the scene.
	eye := math3d.V3(
		math32.Cos(t)*a.cfg.Camera.Distance,
		a.cfg.Camera.Height,
		math32.Sin(t)*a.cfg.Camera.Distance,
	)
	if err := a.render.Camera().Set(eye, math3d.V3(0, 0, 0), math3d.V3(0, 1, 0)); err != nil {
		return err
	}

	ctx := a.render.Begin(a.target)
	written := ctx.Draw(a.prim)
	ctx.Finish()

	wire3d.Logger().Debug("wiredemo: frame",
		"pixels", written, "fps", a.timer.FPS(), "delta", a.timer.Delta())
	return nil
}

func (a *app) Draw(screen *ebiten.Image) {
	w, h := a.target.Extent()
	if a.fbImg == nil {
		a.img = image.NewRGBA(image.Rect(0, 0, w, h))
		a.fbImg = ebiten.NewImage(w, h)
	}

	format := a.target.Format()
	dst := a.img.Pix
	for i, p := range a.target.Pix() {
		r, g, b := format.RGB(p)
		j := i * 4
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}

	a.fbImg.WritePixels(a.img.Pix)
	screen.DrawImage(a.fbImg, nil)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.target.Extent()
	return w, h
}
