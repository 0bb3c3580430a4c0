package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voxelstream/internal/world"
)

func TestDefaultMatchesWorld(t *testing.T) {
	s := Default()
	if s.RenderDistance != 8 || s.ChunksPerTick != 2 || !s.SeamRemesh {
		t.Errorf("unexpected defaults %+v", s)
	}
	if s.WorldGen.GenSettings() != world.DefaultGenSettings() {
		t.Errorf("worldgen defaults drifted: %+v", s.WorldGen)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestParseKeepsDefaults(t *testing.T) {
	s, err := Parse([]byte("seed: 42\nworldgen:\n  sea_level: 50\n"))
	if err != nil {
		t.Fatal(err)
	}
	if s.Seed != 42 || s.WorldGen.SeaLevel != 50 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.RenderDistance != 8 || s.WorldGen.BaseHeight != 64 || !s.WorldGen.Caves {
		t.Errorf("defaults lost: %+v", s)
	}
}

func TestNormalizeClamps(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{0, MinRenderDistance},
		{1, MinRenderDistance},
		{5, 5},
		{40, MaxRenderDistance},
	}
	for _, tc := range cases {
		s := Default()
		s.RenderDistance = tc.in
		s.ChunksPerTick = -3
		s.GenerationWorkers = 0
		s.Normalize()
		if s.RenderDistance != tc.want {
			t.Errorf("RenderDistance %d normalized to %d, want %d", tc.in, s.RenderDistance, tc.want)
		}
		if s.ChunksPerTick != 1 || s.GenerationWorkers != 1 {
			t.Errorf("budgets not clamped: %+v", s)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	bad := []string{
		"seed: -1\n",
		"worldgen:\n  base_height: 0\n",
		"worldgen:\n  base_height: 500\n",
		"worldgen:\n  height_amplitude: -4\n",
		"worldgen:\n  sea_level: 128\n",
	}
	for _, doc := range bad {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("expected error for %q", doc)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("render_distance: [oops\n"))
	if err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Errorf("expected wrapped parse error, got %v", err)
	}
}

func TestLoadRoundTrip(t *testing.T) {
	s := Default()
	s.Seed = 1234
	s.RenderDistance = 4
	s.WorldGen.Trees = false
	raw, err := s.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "voxel.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("Load = %+v, want %+v", got, s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestWorldOptions(t *testing.T) {
	s := Default()
	s.Seed = 9
	s.SeamRemesh = false
	o := s.WorldOptions()
	if o.Seed != 9 || o.RenderDistance != 8 || o.ChunksPerTick != 2 || o.SeamRemesh {
		t.Errorf("unexpected options %+v", o)
	}
}
