package world

type oreConfig struct {
	block     BlockType
	frequency float64
	minY      int
	maxY      int // exclusive
	offset    float64
}

// Rarer ores sit deeper.
var ores = []oreConfig{
	{BlockTypeCoalOre, 0.03, 5, 80, 5000},
	{BlockTypeIronOre, 0.02, 5, 64, 6000},
	{BlockTypeGoldOre, 0.01, 5, 32, 7000},
	{BlockTypeDiamondOre, 0.005, 5, 16, 8000},
}

// placeOres replaces stone with ore where the ore's noise sample clears
// 1-frequency. Only stone is ever replaced, so earlier ores win.
func (g *Generator) placeOres(c *Chunk, offX, offZ int) {
	for _, ore := range ores {
		g.placeOre(c, offX, offZ, ore)
	}
}

func (g *Generator) placeOre(c *Chunk, offX, offZ int, ore oreConfig) {
	threshold := 1 - ore.frequency
	for x := range ChunkSizeX {
		for z := range ChunkSizeZ {
			wx := float64(offX+x) * oreScale
			wz := float64(offZ+z) * oreScale
			for y := max(ore.minY, 0); y < min(ore.maxY, ChunkSizeY); y++ {
				i := index(x, y, z)
				if c.blocks[i] != BlockTypeStone {
					continue
				}
				if g.noise.Noise3(wx, float64(y)*oreScale, wz, ore.offset) > threshold {
					c.blocks[i] = ore.block
				}
			}
		}
	}
}
