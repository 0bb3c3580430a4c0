package world

import (
	"github.com/ojrac/opensimplex-go"
)

// NoiseField samples seeded coherent noise. It holds no mutable state after
// construction, so one field can be shared by concurrent generators.
type NoiseField struct {
	src opensimplex.Noise
}

// NewNoiseField creates a noise field bound to seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		src: opensimplex.New(seed),
	}
}

// Noise2 returns 2D coherent noise in [0,1].
func (n *NoiseField) Noise2(x, y float64) float64 {
	v := (n.src.Eval2(x, y) + 1) * 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Noise3 approximates 3D noise by averaging Noise2 over all six ordered axis
// pairs, each shifted by offset. Anisotropic, but cheap and good enough for
// threshold tests like caves and ore.
func (n *NoiseField) Noise3(x, y, z, offset float64) float64 {
	x += offset
	y += offset
	z += offset
	xy := n.Noise2(x, y)
	xz := n.Noise2(x, z)
	yz := n.Noise2(y, z)
	yx := n.Noise2(y, x)
	zx := n.Noise2(z, x)
	zy := n.Noise2(z, y)
	return (xy + xz + yz + yx + zx + zy) / 6
}
