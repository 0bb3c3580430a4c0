package world

import (
	"math"

	lru "github.com/hashicorp/golang-lru"

	"voxelstream/internal/profiling"
)

// GenSettings tunes terrain generation.
type GenSettings struct {
	BaseHeight      int
	HeightAmplitude int
	SeaLevel        int
	Caves           bool
	Trees           bool
	Ores            bool
	// ColumnCacheSize bounds the number of cached (height, biome) columns.
	ColumnCacheSize int
}

// DefaultGenSettings returns the stock terrain shape.
func DefaultGenSettings() GenSettings {
	return GenSettings{
		BaseHeight:      64,
		HeightAmplitude: 32,
		SeaLevel:        58,
		Caves:           true,
		Trees:           true,
		Ores:            true,
		ColumnCacheSize: 16384,
	}
}

const (
	baseScale   = 0.02
	heightScale = 0.01
	caveScale   = 0.05
	oreScale    = 0.1

	caveOffset     = 0
	caveWideOffset = 1000
	treeSalt       = 600
)

// column is the cached per-column result of the height and biome passes.
type column struct {
	height int
	biome  Biome
}

// Generator fills chunks with terrain. It is safe for concurrent use: the
// noise field is read-only and the column cache locks internally.
type Generator struct {
	seed     int64
	noise    *NoiseField
	settings GenSettings
	columns  *lru.Cache
}

// NewGenerator creates a generator bound to seed.
func NewGenerator(seed int64, settings GenSettings) *Generator {
	size := settings.ColumnCacheSize
	if size <= 0 {
		size = DefaultGenSettings().ColumnCacheSize
	}
	// lru.New only fails on a non-positive size.
	cache, _ := lru.New(size)
	return &Generator{
		seed:     seed,
		noise:    NewNoiseField(seed),
		settings: settings,
		columns:  cache,
	}
}

// Seed returns the generator's seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Settings returns the settings the generator was built with.
func (g *Generator) Settings() GenSettings {
	return g.settings
}

// HeightAt computes the surface height (block Y) at world X,Z.
func (g *Generator) HeightAt(worldX, worldZ int) int {
	return g.column(worldX, worldZ).height
}

// BiomeAt classifies the column at world X,Z.
func (g *Generator) BiomeAt(worldX, worldZ int) Biome {
	return g.column(worldX, worldZ).biome
}

func (g *Generator) column(worldX, worldZ int) column {
	key := [2]int{worldX, worldZ}
	if v, ok := g.columns.Get(key); ok {
		return v.(column)
	}
	col := column{
		height: g.terrainHeight(worldX, worldZ),
		biome:  biomeAt(g.noise, worldX, worldZ),
	}
	g.columns.Add(key, col)
	return col
}

// terrainHeight blends three octaves and lifts mountain regions.
func (g *Generator) terrainHeight(worldX, worldZ int) int {
	nx := float64(worldX) * baseScale
	nz := float64(worldZ) * baseScale

	continentalness := g.noise.Noise2(nx*0.3, nz*0.3)
	erosion := g.noise.Noise2(nx*0.7+500, nz*0.7+500)
	peaks := g.noise.Noise2(nx*2+1000, nz*2+1000)

	h := continentalness*0.5 + erosion*0.3 + peaks*0.2

	mountain := g.noise.Noise2(nx*heightScale+mountainOffset, nz*heightScale+mountainOffset)
	if mountain > 0.6 {
		h += (mountain - 0.6) * 2
	}

	height := g.settings.BaseHeight + int(math.Round(h*float64(g.settings.HeightAmplitude)))
	return min(max(height, 1), ChunkSizeY-1)
}

// PopulateChunk fills an empty chunk and marks it generated.
func (g *Generator) PopulateChunk(c *Chunk) {
	defer profiling.Track("world.PopulateChunk")()
	offX, offZ := c.WorldOrigin()
	for lx := range ChunkSizeX {
		for lz := range ChunkSizeZ {
			col := g.column(offX+lx, offZ+lz)
			g.fillColumn(c, lx, lz, offX+lx, offZ+lz, col)
		}
	}
	if g.settings.Trees {
		g.placeTrees(c, offX, offZ)
	}
	if g.settings.Ores {
		g.placeOres(c, offX, offZ)
	}
	c.markGenerated()
}

// fillColumn writes one column bottom to top.
func (g *Generator) fillColumn(c *Chunk, lx, lz, worldX, worldZ int, col column) {
	sea := g.settings.SeaLevel
	for y := range ChunkSizeY {
		var b BlockType
		switch {
		case y == 0:
			b = BlockTypeBedrock
		case y > col.height:
			if y <= sea {
				b = BlockTypeWater
			}
		case y == col.height:
			b = col.biome.surfaceBlock(col.height, sea)
		case y >= col.height-4:
			b = col.biome.fillerBlock()
		default:
			b = BlockTypeStone
		}

		if g.settings.Caves && b != BlockTypeAir && b != BlockTypeWater &&
			y > 5 && y < col.height-5 && g.isCave(worldX, y, worldZ) {
			b = BlockTypeAir
		}
		if b != BlockTypeAir {
			c.blocks[index(lx, y, lz)] = b
		}
	}
}

// isCave gates two noise samples at different scales; both must pass.
func (g *Generator) isCave(worldX, y, worldZ int) bool {
	x := float64(worldX)
	fy := float64(y)
	z := float64(worldZ)
	if g.noise.Noise3(x*caveScale, fy*caveScale, z*caveScale, caveOffset) <= 0.6 {
		return false
	}
	wide := caveScale * 0.5
	return g.noise.Noise3(x*wide, fy*wide, z*wide, caveWideOffset) > 0.5
}
