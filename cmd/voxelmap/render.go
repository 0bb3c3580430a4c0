package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"voxelstream/internal/registry"
	"voxelstream/internal/world"
)

// Renderer draws a top-down preview of generated terrain.
type Renderer struct {
	gen     *world.Generator
	workers int
	log     *slog.Logger
}

// NewRenderer creates a preview renderer over gen.
func NewRenderer(gen *world.Generator, workers int, log *slog.Logger) *Renderer {
	return &Renderer{gen: gen, workers: max(workers, 1), log: log}
}

// Render generates every chunk within radius of center and returns an image
// with one texel per column, upscaled by scale.
func (r *Renderer) Render(center world.ChunkCoord, radius, scale int) image.Image {
	side := (2*radius + 1) * world.ChunkSizeX
	base := image.NewRGBA(image.Rect(0, 0, side, side))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for cx := -radius; cx <= radius; cx++ {
		for cz := -radius; cz <= radius; cz++ {
			g.Go(func() error {
				c := world.NewChunk(center.X+cx, center.Z+cz)
				r.gen.PopulateChunk(c)
				// Each chunk owns a disjoint pixel block.
				drawChunk(base, c, (cx+radius)*world.ChunkSizeX, (cz+radius)*world.ChunkSizeZ, r.gen.Settings().SeaLevel)
				return nil
			})
		}
	}
	_ = g.Wait()
	r.log.Debug("chunks rendered", "count", (2*radius+1)*(2*radius+1))

	if scale == 1 {
		return base
	}
	dst := image.NewRGBA(image.Rect(0, 0, side*scale, side*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), base, base.Bounds(), draw.Src, nil)
	return dst
}

// drawChunk paints the topmost visible block of each column, shaded by height.
func drawChunk(img *image.RGBA, c *world.Chunk, px, pz, seaLevel int) {
	for x := range world.ChunkSizeX {
		for z := range world.ChunkSizeZ {
			y, b := topBlock(c, x, z)
			img.SetRGBA(px+x, pz+z, shade(registry.MapColor(b), y, seaLevel))
		}
	}
}

// topBlock returns the highest non-air block of a column.
func topBlock(c *world.Chunk, x, z int) (int, world.BlockType) {
	for y := world.ChunkSizeY - 1; y >= 0; y-- {
		if b := c.GetBlock(x, y, z); b != world.BlockTypeAir {
			return y, b
		}
	}
	return 0, world.BlockTypeAir
}

// shade brightens high ground and darkens low ground around sea level.
func shade(col color.RGBA, y, seaLevel int) color.RGBA {
	f := 1 + float64(y-seaLevel)/128
	f = min(max(f, 0.5), 1.4)
	scaleChan := func(v uint8) uint8 {
		return uint8(min(float64(v)*f, 255))
	}
	return color.RGBA{scaleChan(col.R), scaleChan(col.G), scaleChan(col.B), 255}
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
