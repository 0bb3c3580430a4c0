package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// Benchmark streaming while drifting around a fixed point
func BenchmarkTick(b *testing.B) {
	w := New(Options{
		Seed:           12345,
		RenderDistance: 4,
		ChunksPerTick:  4,
		Workers:        4,
		SeamRemesh:     true,
		Gen:            DefaultGenSettings(),
	})
	pos := mgl32.Vec3{0, 64, 0}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Cross cells now and then to exercise enqueue and eviction
		step := float32((i / 64) % 5 * ChunkSizeX)
		w.Tick(pos.Add(mgl32.Vec3{step, 0, step}))
	}
}
