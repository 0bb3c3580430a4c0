package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"voxelstream/internal/config"
	"voxelstream/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		seed       = flag.Int64("seed", 0, "world seed (overrides the config file when set)")
		centerX    = flag.Int("x", 0, "centre chunk X")
		centerZ    = flag.Int("z", 0, "centre chunk Z")
		radius     = flag.Int("radius", 8, "preview radius in chunks")
		scale      = flag.Int("scale", 2, "pixels per block")
		out        = flag.String("out", "terrain.png", "output PNG path")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(log, *configPath, *seed, world.ChunkCoord{X: *centerX, Z: *centerZ}, *radius, *scale, *out); err != nil {
		log.Error("voxelmap failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, configPath string, seed int64, center world.ChunkCoord, radius, scale int, out string) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		return errors.New("a non-zero seed is required for a reproducible preview")
	}
	if radius < 0 || scale < 1 {
		return fmt.Errorf("invalid radius %d or scale %d", radius, scale)
	}

	gen := world.NewGenerator(cfg.Seed, cfg.WorldGen.GenSettings())
	r := NewRenderer(gen, cfg.GenerationWorkers, log)
	img := r.Render(center, radius, scale)

	if err := WritePNG(out, img); err != nil {
		return err
	}
	log.Info("wrote terrain preview", "path", out, "seed", cfg.Seed, "chunks", (2*radius+1)*(2*radius+1),
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}
