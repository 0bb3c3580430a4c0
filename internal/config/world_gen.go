package config

import (
	"fmt"

	"voxelstream/internal/world"
)

// WorldGen holds terrain generation configuration
type WorldGen struct {
	BaseHeight      int  `yaml:"base_height"`
	HeightAmplitude int  `yaml:"height_amplitude"`
	SeaLevel        int  `yaml:"sea_level"`
	Caves           bool `yaml:"caves"`
	Trees           bool `yaml:"trees"`
	Ores            bool `yaml:"ores"`
	ColumnCacheSize int  `yaml:"column_cache_size"`
}

// DefaultWorldGen mirrors world.DefaultGenSettings.
func DefaultWorldGen() WorldGen {
	d := world.DefaultGenSettings()
	return WorldGen{
		BaseHeight:      d.BaseHeight,
		HeightAmplitude: d.HeightAmplitude,
		SeaLevel:        d.SeaLevel,
		Caves:           d.Caves,
		Trees:           d.Trees,
		Ores:            d.Ores,
		ColumnCacheSize: d.ColumnCacheSize,
	}
}

func (g *WorldGen) normalize() {
	if g.ColumnCacheSize < 256 {
		g.ColumnCacheSize = 256
	}
}

func (g WorldGen) validate() error {
	if g.BaseHeight < 1 || g.BaseHeight >= world.ChunkSizeY {
		return fmt.Errorf("worldgen.base_height %d outside [1,%d)", g.BaseHeight, world.ChunkSizeY)
	}
	if g.HeightAmplitude < 0 {
		return fmt.Errorf("worldgen.height_amplitude %d is negative", g.HeightAmplitude)
	}
	if g.SeaLevel < 0 || g.SeaLevel >= world.ChunkSizeY {
		return fmt.Errorf("worldgen.sea_level %d outside [0,%d)", g.SeaLevel, world.ChunkSizeY)
	}
	return nil
}

// GenSettings converts to the generator's settings.
func (g WorldGen) GenSettings() world.GenSettings {
	return world.GenSettings{
		BaseHeight:      g.BaseHeight,
		HeightAmplitude: g.HeightAmplitude,
		SeaLevel:        g.SeaLevel,
		Caves:           g.Caves,
		Trees:           g.Trees,
		Ores:            g.Ores,
		ColumnCacheSize: g.ColumnCacheSize,
	}
}
