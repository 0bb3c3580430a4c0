package world

type BlockType uint8

const (
	BlockTypeAir BlockType = iota
	BlockTypeGrass
	BlockTypeDirt
	BlockTypeStone
	BlockTypeSand
	BlockTypeWater
	BlockTypeWood
	BlockTypeLeaves
	BlockTypeCobblestone
	BlockTypeBedrock
	BlockTypeGravel
	BlockTypeCoalOre
	BlockTypeIronOre
	BlockTypeGoldOre
	BlockTypeDiamondOre
	BlockTypeSnow

	// NumBlockTypes is the number of defined block kinds, air included.
	NumBlockTypes
)

// BlockAttributes describes the physical and visual properties of a block kind.
type BlockAttributes struct {
	Name          string
	Solid         bool
	Transparent   bool
	TextureTop    int
	TextureSide   int
	TextureBottom int
}

// blockTable is indexed by BlockType. Texture values are atlas tile indices.
var blockTable = [NumBlockTypes]BlockAttributes{
	BlockTypeAir:         {Name: "air", Solid: false, Transparent: true},
	BlockTypeGrass:       {Name: "grass", Solid: true, TextureTop: 0, TextureSide: 1, TextureBottom: 2},
	BlockTypeDirt:        {Name: "dirt", Solid: true, TextureTop: 2, TextureSide: 2, TextureBottom: 2},
	BlockTypeStone:       {Name: "stone", Solid: true, TextureTop: 3, TextureSide: 3, TextureBottom: 3},
	BlockTypeSand:        {Name: "sand", Solid: true, TextureTop: 4, TextureSide: 4, TextureBottom: 4},
	BlockTypeWater:       {Name: "water", Solid: false, Transparent: true, TextureTop: 5, TextureSide: 5, TextureBottom: 5},
	BlockTypeWood:        {Name: "wood", Solid: true, TextureTop: 7, TextureSide: 6, TextureBottom: 7},
	BlockTypeLeaves:      {Name: "leaves", Solid: true, Transparent: true, TextureTop: 8, TextureSide: 8, TextureBottom: 8},
	BlockTypeCobblestone: {Name: "cobblestone", Solid: true, TextureTop: 9, TextureSide: 9, TextureBottom: 9},
	BlockTypeBedrock:     {Name: "bedrock", Solid: true, TextureTop: 10, TextureSide: 10, TextureBottom: 10},
	BlockTypeGravel:      {Name: "gravel", Solid: true, TextureTop: 11, TextureSide: 11, TextureBottom: 11},
	BlockTypeCoalOre:     {Name: "coal_ore", Solid: true, TextureTop: 12, TextureSide: 12, TextureBottom: 12},
	BlockTypeIronOre:     {Name: "iron_ore", Solid: true, TextureTop: 13, TextureSide: 13, TextureBottom: 13},
	BlockTypeGoldOre:     {Name: "gold_ore", Solid: true, TextureTop: 14, TextureSide: 14, TextureBottom: 14},
	BlockTypeDiamondOre:  {Name: "diamond_ore", Solid: true, TextureTop: 15, TextureSide: 15, TextureBottom: 15},
	BlockTypeSnow:        {Name: "snow", Solid: true, TextureTop: 16, TextureSide: 16, TextureBottom: 16},
}

// Attributes returns the attribute record for b. Unknown kinds resolve to air.
func Attributes(b BlockType) BlockAttributes {
	if int(b) >= len(blockTable) {
		return blockTable[BlockTypeAir]
	}
	return blockTable[b]
}

// IsSolid reports whether b blocks movement and hides neighbouring faces.
func IsSolid(b BlockType) bool {
	return Attributes(b).Solid
}

// IsTransparent reports whether faces behind b remain visible.
func IsTransparent(b BlockType) bool {
	return Attributes(b).Transparent
}

func (b BlockType) String() string {
	if int(b) >= len(blockTable) {
		return "unknown"
	}
	return blockTable[b].Name
}

// BlockFace identifies a face of a block
type BlockFace int

const (
	FaceTop BlockFace = iota
	FaceBottom
	FaceWest  // -X
	FaceEast  // +X
	FaceNorth // +Z
	FaceSouth // -Z
)

// Texture returns the atlas tile index used for the given face of b.
func (a BlockAttributes) Texture(face BlockFace) int {
	switch face {
	case FaceTop:
		return a.TextureTop
	case FaceBottom:
		return a.TextureBottom
	default:
		return a.TextureSide
	}
}

// Offset returns the unit step from a block to its neighbour across face f.
func (f BlockFace) Offset() (dx, dy, dz int) {
	switch f {
	case FaceTop:
		return 0, 1, 0
	case FaceBottom:
		return 0, -1, 0
	case FaceWest:
		return -1, 0, 0
	case FaceEast:
		return 1, 0, 0
	case FaceNorth:
		return 0, 0, 1
	case FaceSouth:
		return 0, 0, -1
	}
	return 0, 0, 0
}

// Faces lists every block face in emission order.
var Faces = [6]BlockFace{FaceTop, FaceBottom, FaceWest, FaceEast, FaceNorth, FaceSouth}
