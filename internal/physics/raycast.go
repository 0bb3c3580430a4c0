package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/profiling"
	"voxelstream/internal/world"
)

const (
	MinReachDistance = 0.1
	MaxReachDistance = 5.0

	stepSize = float32(0.02)
)

// BlockSource is the read side of a voxel world.
type BlockSource interface {
	GetBlock(x, y, z int) world.BlockType
}

// RaycastResult stores the result of a raycast operation
type RaycastResult struct {
	HitPosition      [3]int
	AdjacentPosition [3]int
	Block            world.BlockType
	Distance         float32
	Hit              bool
}

func cellAt(p mgl32.Vec3) [3]int {
	return [3]int{
		int(math.Floor(float64(p.X()))),
		int(math.Floor(float64(p.Y()))),
		int(math.Floor(float64(p.Z()))),
	}
}

// Raycast marches from start along direction and reports the first solid
// block between minDist and maxDist. AdjacentPosition is the last empty cell
// crossed before the hit, where a placed block would go. Block (x, y, z)
// occupies [x, x+1) on each axis.
func Raycast(start mgl32.Vec3, direction mgl32.Vec3, minDist, maxDist float32, w BlockSource) RaycastResult {
	defer profiling.Track("physics.Raycast")()
	if direction.Len() == 0 {
		return RaycastResult{}
	}
	direction = direction.Normalize()
	steps := int(maxDist / stepSize)

	lastEmpty := cellAt(start)
	for i := 0; i <= steps; i++ {
		dist := float32(i) * stepSize
		if dist < minDist {
			continue
		}
		cell := cellAt(start.Add(direction.Mul(dist)))
		b := w.GetBlock(cell[0], cell[1], cell[2])
		if world.IsSolid(b) {
			return RaycastResult{
				HitPosition:      cell,
				AdjacentPosition: lastEmpty,
				Block:            b,
				Distance:         dist,
				Hit:              true,
			}
		}
		lastEmpty = cell
	}
	return RaycastResult{}
}
