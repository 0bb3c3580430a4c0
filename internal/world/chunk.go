package world

const (
	// Chunk dimensions
	ChunkSizeX = 16
	ChunkSizeY = 128
	ChunkSizeZ = 16

	ChunkVolume = ChunkSizeX * ChunkSizeY * ChunkSizeZ
)

// ChunkCoord addresses a chunk column on the horizontal grid.
type ChunkCoord struct {
	X, Z int
}

// Chunk represents a 16x128x16 column of the world
type Chunk struct {
	X, Z      int
	blocks    [ChunkVolume]BlockType
	generated bool
	dirty     bool
	mesh      *Mesh
}

// NewChunk creates an empty chunk at the specified chunk coordinates
func NewChunk(x, z int) *Chunk {
	return &Chunk{
		X:     x,
		Z:     z,
		dirty: true,
	}
}

// Coord returns the chunk's grid coordinate.
func (c *Chunk) Coord() ChunkCoord {
	return ChunkCoord{X: c.X, Z: c.Z}
}

// WorldOrigin returns the world-space block coordinates of local (0,0,0).
func (c *Chunk) WorldOrigin() (int, int) {
	return c.X * ChunkSizeX, c.Z * ChunkSizeZ
}

// index converts local coordinates (x, y, z) → flat index
func index(x, y, z int) int {
	return (x*ChunkSizeY+y)*ChunkSizeZ + z
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkSizeX && y >= 0 && y < ChunkSizeY && z >= 0 && z < ChunkSizeZ
}

// GetBlock returns the block type at the specified local coordinates
func (c *Chunk) GetBlock(x, y, z int) BlockType {
	if !inBounds(x, y, z) {
		return BlockTypeAir
	}
	return c.blocks[index(x, y, z)]
}

// SetBlock sets the block type at the specified local coordinates.
// Out-of-range coordinates are ignored.
func (c *Chunk) SetBlock(x, y, z int, blockType BlockType) {
	if !inBounds(x, y, z) {
		return
	}
	c.blocks[index(x, y, z)] = blockType
	c.dirty = true
}

// IsAir checks if the block at the specified local coordinates is air
func (c *Chunk) IsAir(x, y, z int) bool {
	return c.GetBlock(x, y, z) == BlockTypeAir
}

// IsGenerated reports whether terrain has been produced for the chunk.
func (c *Chunk) IsGenerated() bool {
	return c.generated
}

func (c *Chunk) markGenerated() {
	c.generated = true
	c.dirty = true
}

// IsDirty returns whether the chunk geometry is stale
func (c *Chunk) IsDirty() bool {
	return c.dirty
}

// MarkDirty flags the chunk for a mesh rebuild.
func (c *Chunk) MarkDirty() {
	c.dirty = true
}

// SetClean marks the chunk as clean (not modified)
func (c *Chunk) SetClean() {
	c.dirty = false
}

// Mesh returns the most recently built geometry, or nil if the chunk was never meshed.
func (c *Chunk) Mesh() *Mesh {
	return c.mesh
}

// release drops the chunk's geometry buffers.
func (c *Chunk) release() {
	c.mesh = nil
}

// CountBlocks returns how many cells hold the given block type.
func (c *Chunk) CountBlocks(b BlockType) int {
	n := 0
	for _, v := range c.blocks {
		if v == b {
			n++
		}
	}
	return n
}
