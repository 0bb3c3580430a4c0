package registry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/world"
)

func TestEveryBlockHasTiles(t *testing.T) {
	for b := world.BlockType(1); b < world.NumBlockTypes; b++ {
		for _, f := range world.Faces {
			idx := GetTextureLayer(b, f)
			if TextureName(idx) == "" {
				t.Errorf("%v face %d uses unnamed tile %d", b, f, idx)
			}
		}
	}
}

func TestTextureMapMatchesNames(t *testing.T) {
	if len(TextureNames) != len(TextureMap) {
		t.Fatalf("%d names but %d map entries", len(TextureNames), len(TextureMap))
	}
	for i, name := range TextureNames {
		if TextureMap[name] != i {
			t.Errorf("TextureMap[%q] = %d, want %d", name, TextureMap[name], i)
		}
	}
	if idx := GetTextureLayer(world.BlockTypeSnow, world.FaceTop); TextureNames[idx] != "snow" {
		t.Errorf("snow top resolves to %q", TextureNames[idx])
	}
}

func TestTileUV(t *testing.T) {
	const unit = float32(1) / TilesPerRow
	uv := TileUV(0)
	want := [4]mgl32.Vec2{{0, 0}, {0, unit}, {unit, unit}, {unit, 0}}
	if uv != want {
		t.Errorf("TileUV(0) = %v, want %v", uv, want)
	}

	// Tile 16 wraps onto the second row.
	uv = TileUV(16)
	if uv[0] != (mgl32.Vec2{0, unit}) {
		t.Errorf("TileUV(16) origin = %v", uv[0])
	}
	col, row := TileOrigin(35)
	if col != 3 || row != 2 {
		t.Errorf("TileOrigin(35) = (%d,%d)", col, row)
	}
}

func TestMapColor(t *testing.T) {
	if c := MapColor(world.BlockTypeAir); c.A != 0 {
		t.Errorf("air map colour should be transparent, got %v", c)
	}
	if c := MapColor(world.BlockTypeGrass); c != TileColor(0) {
		t.Errorf("grass map colour = %v, want grass_top tile colour", c)
	}
	if c := MapColor(world.BlockType(250)); c.A != 0 {
		t.Errorf("unknown block should map like air, got %v", c)
	}
}
