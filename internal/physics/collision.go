package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/world"
)

// HalfWidth is half the horizontal extent of an observer's bounding box.
const HalfWidth = 0.3

// Collides reports whether a box standing at pos (feet centre) with the given
// height overlaps any solid block.
func Collides(pos mgl32.Vec3, height float32, w BlockSource) bool {
	minX := int(math.Floor(float64(pos.X() - HalfWidth)))
	maxX := int(math.Floor(float64(pos.X() + HalfWidth)))
	minY := int(math.Floor(float64(pos.Y())))
	maxY := int(math.Floor(float64(pos.Y() + height)))
	minZ := int(math.Floor(float64(pos.Z() - HalfWidth)))
	maxZ := int(math.Floor(float64(pos.Z() + HalfWidth)))

	for x := minX; x <= maxX; x++ {
		for y := minY; y <= maxY; y++ {
			for z := minZ; z <= maxZ; z++ {
				if !world.IsSolid(w.GetBlock(x, y, z)) {
					continue
				}
				bx, by, bz := float32(x), float32(y), float32(z)
				if pos.X()-HalfWidth < bx+1 && pos.X()+HalfWidth > bx &&
					pos.Y() < by+1 && pos.Y()+height > by &&
					pos.Z()-HalfWidth < bz+1 && pos.Z()+HalfWidth > bz {
					return true
				}
			}
		}
	}
	return false
}

// FindGroundLevel returns the top surface of the highest solid block under
// the box footprint at (x, z), scanning down from fromY. It returns -1 when
// nothing solid is below.
func FindGroundLevel(x, z, fromY float32, w BlockSource) float32 {
	minX := int(math.Floor(float64(x - HalfWidth)))
	maxX := int(math.Floor(float64(x + HalfWidth)))
	minZ := int(math.Floor(float64(z - HalfWidth)))
	maxZ := int(math.Floor(float64(z + HalfWidth)))
	top := min(int(math.Floor(float64(fromY))), world.ChunkSizeY-1)

	ground := float32(-1)
	for bx := minX; bx <= maxX; bx++ {
		for bz := minZ; bz <= maxZ; bz++ {
			for by := top; by >= 0; by-- {
				if world.IsSolid(w.GetBlock(bx, by, bz)) {
					ground = max(ground, float32(by+1))
					break
				}
			}
		}
	}
	return ground
}
