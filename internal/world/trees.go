package world

// treeMargin keeps canopies inside the chunk; trees never span a border.
const treeMargin = 2

// placeTrees scatters trees over the chunk's interior columns.
func (g *Generator) placeTrees(c *Chunk, offX, offZ int) {
	rng := newChunkRNG(g.seed, offX, offZ, treeSalt)
	for x := treeMargin; x < ChunkSizeX-treeMargin; x++ {
		for z := treeMargin; z < ChunkSizeZ-treeMargin; z++ {
			col := g.column(offX+x, offZ+z)
			chance := col.biome.treeChance()
			if chance == 0 {
				continue
			}
			if rng.float64() >= chance {
				continue
			}
			h := col.height
			if h <= g.settings.SeaLevel || h >= ChunkSizeY-10 {
				continue
			}
			if c.GetBlock(x, h, z) != BlockTypeGrass {
				continue
			}
			placeTree(c, x, h+1, z, rng)
		}
	}
}

// placeTree grows a trunk of 4-6 wood blocks with a leaf canopy that narrows
// from radius 2 to 0. Leaves only fill air.
func placeTree(c *Chunk, x, y, z int, rng *chunkRNG) {
	trunk := 4 + rng.intN(3)
	for i := range trunk {
		c.SetBlock(x, y+i, z, BlockTypeWood)
	}

	top := y + trunk
	for ly := top - 2; ly <= top+2; ly++ {
		radius := 1
		if ly < top {
			radius = 2
		}
		if ly == top+2 {
			radius = 0
		}
		for dx := -radius; dx <= radius; dx++ {
			for dz := -radius; dz <= radius; dz++ {
				if abs(dx) == radius && abs(dz) == radius && rng.float64() < 0.5 {
					continue
				}
				setIfAir(c, x+dx, ly, z+dz, BlockTypeLeaves)
			}
		}
	}

	setIfAir(c, x, top, z, BlockTypeLeaves)
	setIfAir(c, x, top+1, z, BlockTypeLeaves)
}

func setIfAir(c *Chunk, x, y, z int, b BlockType) {
	if inBounds(x, y, z) && c.IsAir(x, y, z) {
		c.SetBlock(x, y, z, b)
	}
}
