package main

import (
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"voxelstream/internal/world"
)

func TestRenderSize(t *testing.T) {
	s := world.DefaultGenSettings()
	s.Caves, s.Ores = false, false
	r := NewRenderer(world.NewGenerator(42, s), 4, slog.Default())
	img := r.Render(world.ChunkCoord{}, 1, 3)
	want := 3 * world.ChunkSizeX * 3
	if b := img.Bounds(); b.Dx() != want || b.Dy() != want {
		t.Fatalf("image %v, want %dx%d", b, want, want)
	}
	// Every column has at least bedrock, so nothing is transparent.
	rgba := img.(*image.RGBA)
	for i := 3; i < len(rgba.Pix); i += 4 {
		if rgba.Pix[i] != 255 {
			t.Fatalf("transparent pixel at byte %d", i)
		}
	}
}

func TestTopBlock(t *testing.T) {
	c := world.NewChunk(0, 0)
	c.SetBlock(2, 0, 2, world.BlockTypeBedrock)
	c.SetBlock(2, 70, 2, world.BlockTypeLeaves)
	if y, b := topBlock(c, 2, 2); y != 70 || b != world.BlockTypeLeaves {
		t.Errorf("topBlock = (%d,%v)", y, b)
	}
	if y, b := topBlock(c, 5, 5); y != 0 || b != world.BlockTypeAir {
		t.Errorf("empty column = (%d,%v)", y, b)
	}
}

func TestShadeClamps(t *testing.T) {
	c := color.RGBA{200, 100, 50, 255}
	hi := shade(c, 127, 0)
	if hi.R != 255 || hi.A != 255 {
		t.Errorf("bright shade %v", hi)
	}
	lo := shade(c, 0, 127)
	if lo.R != 100 || lo.G != 50 || lo.B != 25 {
		t.Errorf("dark shade %v", lo)
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if err := WritePNG(path, img); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v", decoded.Bounds())
	}
	if err := WritePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
