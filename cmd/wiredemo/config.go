package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/wire3d"
	"github.com/gogpu/wire3d/surface"
)

// config holds the demo settings. Flags override the YAML file.
type config struct {
	Width    int          `yaml:"width"`
	Height   int          `yaml:"height"`
	Format   string       `yaml:"format"`
	Model    string       `yaml:"model"`
	Color    uint32       `yaml:"color"`
	Strategy string       `yaml:"strategy"`
	Camera   cameraConfig `yaml:"camera"`
}

type cameraConfig struct {
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Size     float32 `yaml:"size"`
	Distance float32 `yaml:"distance"`
	Height   float32 `yaml:"height"`
}

func defaultConfig() config {
	return config{
		Width:    800,
		Height:   600,
		Format:   "abgr",
		Color:    0x00FF00,
		Strategy: "screen",
		Camera: cameraConfig{
			Near:     0.05,
			Far:      100,
			Size:     0.1,
			Distance: 5,
			Height:   3,
		},
	}
}

func (c *config) loadFile(path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from the -config flag
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c *config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: invalid extent %dx%d", c.Width, c.Height)
	}
	if _, err := surface.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := c.strategy(); err != nil {
		return err
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("config: invalid camera planes near=%g far=%g", c.Camera.Near, c.Camera.Far)
	}
	return nil
}

func (c *config) pixelFormat() surface.PixelFormat {
	f, _ := surface.ParseFormat(c.Format)
	return f
}

func (c *config) strategy() (wire3d.Strategy, error) {
	switch c.Strategy {
	case "screen":
		return wire3d.StrategyScreenSpace, nil
	case "matrix":
		return wire3d.StrategyMatrix, nil
	default:
		return 0, fmt.Errorf("config: unknown strategy %q", c.Strategy)
	}
}
