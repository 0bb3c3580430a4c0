package world

// Biome classifies a world column and drives its surface blocks and vegetation.
type Biome uint8

const (
	BiomePlains Biome = iota
	BiomeForest
	BiomeDesert
	BiomeMountains
	BiomeSnow
)

var biomeNames = [...]string{
	BiomePlains:    "plains",
	BiomeForest:    "forest",
	BiomeDesert:    "desert",
	BiomeMountains: "mountains",
	BiomeSnow:      "snow",
}

func (b Biome) String() string {
	if int(b) < len(biomeNames) {
		return biomeNames[b]
	}
	return "unknown"
}

const (
	biomeScale    = 0.005
	mountainScale = 0.01

	temperatureOffset = 3000
	humidityOffset    = 4000
	mountainOffset    = 2000
)

// classifyBiome picks a biome from climate samples. Checks run in order and
// the first match wins.
func classifyBiome(temperature, humidity, mountain float64) Biome {
	if humidity < 0.3 && temperature > 0.7 {
		return BiomeDesert
	}
	if temperature < 0.3 {
		return BiomeSnow
	}
	if humidity > 0.6 {
		return BiomeForest
	}
	if mountain > 0.7 {
		return BiomeMountains
	}
	return BiomePlains
}

// biomeAt samples the climate fields at a world column.
func biomeAt(n *NoiseField, worldX, worldZ int) Biome {
	x := float64(worldX)
	z := float64(worldZ)
	temperature := n.Noise2(x*biomeScale+temperatureOffset, z*biomeScale+temperatureOffset)
	humidity := n.Noise2(x*biomeScale+humidityOffset, z*biomeScale+humidityOffset)
	// The mountain sample is only needed when the climate checks fall through.
	if humidity < 0.3 && temperature > 0.7 || temperature < 0.3 || humidity > 0.6 {
		return classifyBiome(temperature, humidity, 0)
	}
	mountain := n.Noise2(x*mountainScale+mountainOffset, z*mountainScale+mountainOffset)
	return classifyBiome(temperature, humidity, mountain)
}

// surfaceBlock returns the top block of a column.
func (b Biome) surfaceBlock(height, seaLevel int) BlockType {
	switch b {
	case BiomeDesert:
		return BlockTypeSand
	case BiomeSnow:
		return BlockTypeSnow
	default:
		if height <= seaLevel {
			return BlockTypeSand
		}
		return BlockTypeGrass
	}
}

// fillerBlock returns the block used for the layers just under the surface.
func (b Biome) fillerBlock() BlockType {
	if b == BiomeDesert {
		return BlockTypeSand
	}
	return BlockTypeDirt
}

// treeChance is the per-column probability of growing a tree, zero where trees never grow.
func (b Biome) treeChance() float64 {
	switch b {
	case BiomeDesert, BiomeSnow:
		return 0
	case BiomeForest:
		return 0.02
	default:
		return 0.005
	}
}
