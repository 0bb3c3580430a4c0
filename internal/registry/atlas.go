package registry

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/world"
)

const (
	// TilesPerRow is the atlas width and height in tiles.
	TilesPerRow = 16
	// TilePixels is the edge length of one tile in texels.
	TilePixels = 16
	// AtlasPixels is the edge length of the whole atlas in texels.
	AtlasPixels = TilesPerRow * TilePixels

	tileUnit = float32(1) / TilesPerRow
)

// tile describes one atlas slot.
type tile struct {
	name  string
	color color.RGBA // average texel colour, used for previews
}

// tiles is indexed by atlas tile index.
var tiles = []tile{
	{"grass_top", color.RGBA{77, 153, 51, 255}},
	{"grass_side", color.RGBA{115, 110, 51, 255}},
	{"dirt", color.RGBA{140, 89, 51, 255}},
	{"stone", color.RGBA{128, 128, 128, 255}},
	{"sand", color.RGBA{217, 204, 140, 255}},
	{"water", color.RGBA{51, 102, 204, 178}},
	{"wood_side", color.RGBA{102, 64, 25, 255}},
	{"wood_top", color.RGBA{128, 89, 38, 255}},
	{"leaves", color.RGBA{38, 115, 25, 255}},
	{"cobblestone", color.RGBA{115, 115, 115, 255}},
	{"bedrock", color.RGBA{38, 38, 38, 255}},
	{"gravel", color.RGBA{122, 117, 112, 255}},
	{"coal_ore", color.RGBA{90, 90, 90, 255}},
	{"iron_ore", color.RGBA{150, 130, 118, 255}},
	{"gold_ore", color.RGBA{168, 155, 90, 255}},
	{"diamond_ore", color.RGBA{102, 163, 163, 255}},
	{"snow", color.RGBA{242, 247, 255, 255}},
}

var (
	// TextureNames lists tile names in atlas order.
	TextureNames []string
	// TextureMap maps a tile name to its atlas index.
	TextureMap = make(map[string]int)
)

func init() {
	for i, t := range tiles {
		TextureNames = append(TextureNames, t.name)
		TextureMap[t.name] = i
	}
}

// TileOrigin returns the column and row of a tile in the atlas grid.
func TileOrigin(index int) (col, row int) {
	return index % TilesPerRow, index / TilesPerRow
}

// TileUV returns the four UV corners of a tile, in the order faces wind
// their vertices: (u,v), (u,v+t), (u+t,v+t), (u+t,v).
func TileUV(index int) [4]mgl32.Vec2 {
	col, row := TileOrigin(index)
	u := float32(col) * tileUnit
	v := float32(row) * tileUnit
	return [4]mgl32.Vec2{
		{u, v},
		{u, v + tileUnit},
		{u + tileUnit, v + tileUnit},
		{u + tileUnit, v},
	}
}

// GetTextureLayer returns the atlas tile index for a given block and face
func GetTextureLayer(blockType world.BlockType, face world.BlockFace) int {
	return world.Attributes(blockType).Texture(face)
}

// TextureName returns the name of an atlas tile, or "" if the slot is unused.
func TextureName(index int) string {
	if index < 0 || index >= len(tiles) {
		return ""
	}
	return tiles[index].name
}

// TileColor returns the average colour of a tile. Unused slots are transparent.
func TileColor(index int) color.RGBA {
	if index < 0 || index >= len(tiles) {
		return color.RGBA{}
	}
	return tiles[index].color
}

// MapColor returns the colour of a block seen from above. Air and unknown
// kinds are transparent.
func MapColor(b world.BlockType) color.RGBA {
	if b == world.BlockTypeAir || b >= world.NumBlockTypes {
		return color.RGBA{}
	}
	return TileColor(GetTextureLayer(b, world.FaceTop))
}
