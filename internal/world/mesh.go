package world

import "github.com/go-gl/mathgl/mgl32"

// Mesh is the renderable surface of one chunk. Positions are chunk-local;
// Origin places the chunk in world space. UVs and Colors are parallel to Positions.
type Mesh struct {
	Origin    mgl32.Vec3
	Positions []mgl32.Vec3
	Indices   []uint32
	UVs       []mgl32.Vec2
	Colors    []mgl32.Vec4
}

// Faces returns the number of quads in the mesh.
func (m *Mesh) Faces() int {
	if m == nil {
		return 0
	}
	return len(m.Positions) / 4
}

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// BlockReader resolves blocks by world coordinate.
type BlockReader interface {
	GetBlock(x, y, z int) BlockType
}

// Mesher turns a chunk's block grid into geometry. Neighbour lookups across
// chunk borders go through blocks. The World calls BuildMesh while holding
// its lock and hands it the chunk store, so a Mesher must not call back into
// the World.
type Mesher interface {
	BuildMesh(blocks BlockReader, c *Chunk) *Mesh
}
