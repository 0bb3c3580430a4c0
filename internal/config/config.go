package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"voxelstream/internal/world"
)

const (
	MinRenderDistance = 2
	MaxRenderDistance = 16
)

// Settings is the on-disk streaming configuration.
type Settings struct {
	// Seed 0 picks a random seed at startup.
	Seed              int64    `yaml:"seed"`
	RenderDistance    int      `yaml:"render_distance"`
	ChunksPerTick     int      `yaml:"chunks_per_tick"`
	GenerationWorkers int      `yaml:"generation_workers"`
	SeamRemesh        bool     `yaml:"seam_remesh"`
	WorldGen          WorldGen `yaml:"worldgen"`
}

// Default returns the stock settings.
func Default() Settings {
	return Settings{
		Seed:              0,
		RenderDistance:    8,
		ChunksPerTick:     2,
		GenerationWorkers: 2,
		SeamRemesh:        true,
		WorldGen:          DefaultWorldGen(),
	}
}

// Load reads a YAML file over the defaults, then normalizes and validates it.
func Load(path string) (Settings, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	s, err := Parse(raw)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes YAML over the defaults. Keys left out keep their default.
func Parse(raw []byte) (Settings, error) {
	s := Default()
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config: %w", err)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Normalize clamps tunables into their supported ranges.
func (s *Settings) Normalize() {
	s.RenderDistance = min(max(s.RenderDistance, MinRenderDistance), MaxRenderDistance)
	s.ChunksPerTick = max(s.ChunksPerTick, 1)
	s.GenerationWorkers = max(s.GenerationWorkers, 1)
	s.WorldGen.normalize()
}

// Validate rejects settings that cannot produce a usable world.
func (s Settings) Validate() error {
	if s.Seed < 0 {
		return errors.New("seed must not be negative")
	}
	return s.WorldGen.validate()
}

// WorldOptions converts the settings for world.New.
func (s Settings) WorldOptions() world.Options {
	return world.Options{
		Seed:           s.Seed,
		RenderDistance: s.RenderDistance,
		ChunksPerTick:  s.ChunksPerTick,
		Workers:        s.GenerationWorkers,
		SeamRemesh:     s.SeamRemesh,
		Gen:            s.WorldGen.GenSettings(),
	}
}

// Marshal renders the settings as YAML.
func (s Settings) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return out, nil
}
