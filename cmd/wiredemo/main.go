// Command wiredemo opens a window and renders the animated wire3d demo
// scene: an orbiting camera around a spinning triangle or an OBJ model.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/wire3d"
)

func main() {
	var (
		configPath = flag.String("config", "", "optional YAML config file")
		modelPath  = flag.String("model", "", "OBJ model to render instead of the built-in triangle")
		strategy   = flag.String("strategy", "", `rasterization strategy ("screen" or "matrix")`)
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	cfg := defaultConfig()
	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			log.Fatalf("wiredemo: %v", err)
		}
	}
	if *modelPath != "" {
		cfg.Model = *modelPath
	}
	if *strategy != "" {
		cfg.Strategy = *strategy
	}
	if err := cfg.validate(); err != nil {
		log.Fatalf("wiredemo: %v", err)
	}

	if *verbose {
		wire3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	app, err := newApp(cfg)
	if err != nil {
		log.Fatalf("wiredemo: %v", err)
	}

	ebiten.SetWindowTitle("wire3d demo")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(app); err != nil {
		log.Fatalf("wiredemo: %v", err)
	}
}
