package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voxelstream/internal/config"
	"voxelstream/internal/meshing"
	"voxelstream/internal/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "YAML settings file")
		ticks      = flag.Int("ticks", 600, "number of ticks to run (0 runs until interrupted)")
		tickRate   = flag.Int("tick-rate", 60, "ticks per second (0 runs unthrottled)")
		speed      = flag.Float64("speed", 0.4, "observer speed in blocks per tick")
		heading    = flag.Float64("heading", 30, "observer heading in degrees from +X")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	cfg := config.Default()
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "world seed (0 picks one)")
	flag.IntVar(&cfg.RenderDistance, "render-distance", cfg.RenderDistance, "enqueue radius in chunks")
	flag.IntVar(&cfg.ChunksPerTick, "chunks-per-tick", cfg.ChunksPerTick, "chunks generated per tick")
	flag.IntVar(&cfg.GenerationWorkers, "workers", cfg.GenerationWorkers, "parallel generation workers")
	flag.BoolVar(&cfg.SeamRemesh, "seam-remesh", cfg.SeamRemesh, "rebuild neighbours when a chunk arrives")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *configPath != "" {
		fileCfg, err := config.Load(*configPath)
		if err != nil {
			log.Error("load config", "error", err)
			os.Exit(1)
		}
		cfg = overlayFlags(fileCfg, cfg)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid settings", "error", err)
		os.Exit(1)
	}

	opts := cfg.WorldOptions()
	opts.Logger = log
	opts.Mesher = meshing.NewBuilder()
	w := world.New(opts)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sim := NewSimulation(w, log, SimOptions{
		Ticks:    *ticks,
		Speed:    float32(*speed),
		Heading:  float32(*heading),
		Interval: interval(*tickRate),
	})
	sim.Run(ctx)
}

func interval(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}

// overlayFlags copies explicitly set command-line values over file settings.
func overlayFlags(file, flags config.Settings) config.Settings {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			file.Seed = flags.Seed
		case "render-distance":
			file.RenderDistance = flags.RenderDistance
		case "chunks-per-tick":
			file.ChunksPerTick = flags.ChunksPerTick
		case "workers":
			file.GenerationWorkers = flags.GenerationWorkers
		case "seam-remesh":
			file.SeamRemesh = flags.SeamRemesh
		}
	})
	return file
}
