package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lao-tseu-is-alive/go-boids2d/internal/app"
	"github.com/lao-tseu-is-alive/go-boids2d/pkg/boids"
)

func main() {
	var (
		configFile = flag.String("config", "", "path to a JSON config file (defaults used when empty)")
		schemaFile = flag.String("schema", "config.schema.json", "path to the JSON schema validating the config")
		numBoids   = flag.Int("n", 0, "override the flock size from the config")
		debug      = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	cfg := boids.DefaultConfig()
	if *configFile != "" {
		cfg, err = boids.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			logger.Fatal("failed to load config", zap.String("file", *configFile), zap.Error(err))
		}
		logger.Info("config loaded", zap.String("file", *configFile))
	}
	if *numBoids > 0 {
		cfg.NumBoids = *numBoids
	}

	world, err := boids.NewWorld(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create world", zap.Error(err))
	}

	ebiten.SetWindowSize(int(cfg.Bound), int(cfg.Bound))
	ebiten.SetWindowTitle("Boids2D")

	if err := ebiten.RunGame(app.NewGame(world, logger)); err != nil {
		logger.Fatal("game loop exited", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
