package world

import "testing"

func TestAttributesTotal(t *testing.T) {
	for b := 0; b < 256; b++ {
		a := Attributes(BlockType(b))
		if a.Name == "" {
			t.Fatalf("block %d has no attributes", b)
		}
		if b >= int(NumBlockTypes) && a != Attributes(BlockTypeAir) {
			t.Errorf("unknown block %d should resolve to air, got %+v", b, a)
		}
	}
}

func TestAirIsEmpty(t *testing.T) {
	a := Attributes(BlockTypeAir)
	if a.Solid {
		t.Error("air must not be solid")
	}
	if !a.Transparent {
		t.Error("air must be transparent")
	}
}

func TestTransparentSolids(t *testing.T) {
	if !IsSolid(BlockTypeLeaves) || !IsTransparent(BlockTypeLeaves) {
		t.Error("leaves should be solid and transparent")
	}
	if IsSolid(BlockTypeWater) || !IsTransparent(BlockTypeWater) {
		t.Error("water should be non-solid and transparent")
	}
	if !IsSolid(BlockTypeStone) || IsTransparent(BlockTypeStone) {
		t.Error("stone should be solid and opaque")
	}
}

func TestFaceTextures(t *testing.T) {
	grass := Attributes(BlockTypeGrass)
	if grass.Texture(FaceTop) != 0 || grass.Texture(FaceBottom) != 2 {
		t.Errorf("grass top/bottom textures = %d/%d", grass.Texture(FaceTop), grass.Texture(FaceBottom))
	}
	for _, f := range []BlockFace{FaceWest, FaceEast, FaceNorth, FaceSouth} {
		if grass.Texture(f) != 1 {
			t.Errorf("grass side texture for face %d = %d, want 1", f, grass.Texture(f))
		}
	}
}

func TestFaceOffsetsAreUnit(t *testing.T) {
	seen := map[[3]int]bool{}
	for _, f := range Faces {
		dx, dy, dz := f.Offset()
		if abs(dx)+abs(dy)+abs(dz) != 1 {
			t.Errorf("face %d offset (%d,%d,%d) is not a unit step", f, dx, dy, dz)
		}
		seen[[3]int{dx, dy, dz}] = true
	}
	if len(seen) != 6 {
		t.Errorf("expected 6 distinct offsets, got %d", len(seen))
	}
}

func TestBlockTypeString(t *testing.T) {
	if s := BlockTypeDiamondOre.String(); s != "diamond_ore" {
		t.Errorf("String() = %q", s)
	}
	if s := BlockType(200).String(); s != "unknown" {
		t.Errorf("String() for unknown = %q", s)
	}
}
