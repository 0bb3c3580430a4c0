package meshing

import (
	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/profiling"
	"voxelstream/internal/registry"
	"voxelstream/internal/world"
)

// TransparentAlpha is the vertex alpha given to faces of transparent blocks.
const TransparentAlpha = 0.8

// faceCorners holds the four quad corners of each face relative to the
// block's minimum corner, indexed by world.BlockFace. Winding matches the
// corner order returned by registry.TileUV.
var faceCorners = [6][4]mgl32.Vec3{
	world.FaceTop:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	world.FaceBottom: {{0, 0, 1}, {0, 0, 0}, {1, 0, 0}, {1, 0, 1}},
	world.FaceWest:   {{0, 0, 1}, {0, 1, 1}, {0, 1, 0}, {0, 0, 0}},
	world.FaceEast:   {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
	world.FaceNorth:  {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	world.FaceSouth:  {{1, 0, 0}, {0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
}

// Builder emits one quad per visible block face. It does not merge
// coplanar faces.
type Builder struct{}

// NewBuilder creates a mesh builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildMesh implements world.Mesher.
func (b *Builder) BuildMesh(blocks world.BlockReader, c *world.Chunk) *world.Mesh {
	return BuildChunkMesh(blocks, c)
}

// BuildChunkMesh triangulates every visible face of c. Neighbours outside the
// chunk are looked up through blocks, so faces against a loaded neighbour are
// culled across the seam. With nil blocks, border neighbours count as air.
func BuildChunkMesh(blocks world.BlockReader, c *world.Chunk) *world.Mesh {
	if c == nil {
		return nil
	}
	defer profiling.Track("meshing.BuildChunkMesh")()

	baseX, baseZ := c.WorldOrigin()
	m := &world.Mesh{
		Origin: mgl32.Vec3{float32(baseX), 0, float32(baseZ)},
	}

	for x := range world.ChunkSizeX {
		for y := range world.ChunkSizeY {
			for z := range world.ChunkSizeZ {
				block := c.GetBlock(x, y, z)
				if block == world.BlockTypeAir {
					continue
				}
				attrs := world.Attributes(block)
				for _, face := range world.Faces {
					dx, dy, dz := face.Offset()
					if !faceVisible(blocks, c, baseX, baseZ, x+dx, y+dy, z+dz) {
						continue
					}
					addFace(m, x, y, z, face, attrs)
				}
			}
		}
	}
	return m
}

// faceVisible reports whether a face looking into local cell (x, y, z) is exposed.
func faceVisible(blocks world.BlockReader, c *world.Chunk, baseX, baseZ, x, y, z int) bool {
	var neighbour world.BlockType
	switch {
	case x >= 0 && x < world.ChunkSizeX && z >= 0 && z < world.ChunkSizeZ:
		// Also covers y outside the column, which reads as air.
		neighbour = c.GetBlock(x, y, z)
	case blocks != nil:
		neighbour = blocks.GetBlock(baseX+x, y, baseZ+z)
	default:
		return true
	}
	return !world.IsSolid(neighbour) || world.IsTransparent(neighbour)
}

func addFace(m *world.Mesh, x, y, z int, face world.BlockFace, attrs world.BlockAttributes) {
	base := uint32(len(m.Positions))
	pos := mgl32.Vec3{float32(x), float32(y), float32(z)}
	for _, corner := range faceCorners[face] {
		m.Positions = append(m.Positions, pos.Add(corner))
	}
	m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)

	uv := registry.TileUV(attrs.Texture(face))
	m.UVs = append(m.UVs, uv[:]...)

	tint := mgl32.Vec4{1, 1, 1, 1}
	if attrs.Transparent {
		tint[3] = TransparentAlpha
	}
	m.Colors = append(m.Colors, tint, tint, tint, tint)
}
