package world

import (
	"sync"

	"voxelstream/internal/profiling"
)

// ChunkStore manages the storage and retrieval of chunks.
type ChunkStore struct {
	// Map of chunks indexed by their coordinates
	chunks map[ChunkCoord]*Chunk
	mu     sync.RWMutex
}

// NewChunkStore creates a new chunk store.
func NewChunkStore() *ChunkStore {
	return &ChunkStore{
		chunks: make(map[ChunkCoord]*Chunk),
	}
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// mod returns a non-negative remainder.
func mod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// ChunkCoordAt returns the coordinate of the chunk owning world block (x, z).
func ChunkCoordAt(x, z int) ChunkCoord {
	return ChunkCoord{X: floorDiv(x, ChunkSizeX), Z: floorDiv(z, ChunkSizeZ)}
}

// GetChunk returns the chunk at the specified chunk coordinates, or nil.
func (cs *ChunkStore) GetChunk(coord ChunkCoord) *Chunk {
	cs.mu.RLock()
	chunk := cs.chunks[coord]
	cs.mu.RUnlock()
	return chunk
}

// GetChunkFromBlockCoords returns the chunk containing the block at the specified world coordinates.
func (cs *ChunkStore) GetChunkFromBlockCoords(x, z int) *Chunk {
	return cs.GetChunk(ChunkCoordAt(x, z))
}

// GetBlock returns the block type at the specified world coordinates.
// Missing chunks and out-of-range heights read as air.
func (cs *ChunkStore) GetBlock(x, y, z int) BlockType {
	if y < 0 || y >= ChunkSizeY {
		return BlockTypeAir
	}
	chunk := cs.GetChunkFromBlockCoords(x, z)
	if chunk == nil {
		return BlockTypeAir
	}
	return chunk.GetBlock(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ))
}

// Set writes a block at world coordinates and returns the owning chunk.
// It returns nil without writing when the chunk is absent or y is out of range.
func (cs *ChunkStore) Set(x, y, z int, val BlockType) *Chunk {
	if y < 0 || y >= ChunkSizeY {
		return nil
	}
	chunk := cs.GetChunkFromBlockCoords(x, z)
	if chunk == nil {
		return nil
	}
	chunk.SetBlock(mod(x, ChunkSizeX), y, mod(z, ChunkSizeZ), val)
	return chunk
}

// HasChunk checks if a chunk exists.
func (cs *ChunkStore) HasChunk(coord ChunkCoord) bool {
	cs.mu.RLock()
	_, exists := cs.chunks[coord]
	cs.mu.RUnlock()
	return exists
}

// AddChunk adds a pre-generated chunk to the store. It reports false if the
// coordinate was already occupied, in which case the store is unchanged.
func (cs *ChunkStore) AddChunk(chunk *Chunk) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	coord := chunk.Coord()
	if _, ok := cs.chunks[coord]; ok {
		return false
	}
	cs.chunks[coord] = chunk
	return true
}

// Len returns the number of stored chunks.
func (cs *ChunkStore) Len() int {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	return len(cs.chunks)
}

// GetAllChunks returns a slice of all stored chunks.
func (cs *ChunkStore) GetAllChunks() []*Chunk {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	chunks := make([]*Chunk, 0, len(cs.chunks))
	for _, chunk := range cs.chunks {
		chunks = append(chunks, chunk)
	}
	return chunks
}

// chebyshev returns the chessboard distance between two chunk coordinates.
func chebyshev(a, b ChunkCoord) int {
	return max(abs(a.X-b.X), abs(a.Z-b.Z))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// EvictFarChunks removes chunks whose Chebyshev distance from center exceeds radius.
// Returns number of removed chunks.
func (cs *ChunkStore) EvictFarChunks(center ChunkCoord, radius int) int {
	defer profiling.Track("world.EvictFarChunks")()
	removed := 0
	cs.mu.Lock()
	for coord, chunk := range cs.chunks {
		if chebyshev(coord, center) > radius {
			chunk.release()
			delete(cs.chunks, coord)
			removed++
		}
	}
	cs.mu.Unlock()
	return removed
}

// Clear removes every chunk.
func (cs *ChunkStore) Clear() {
	cs.mu.Lock()
	for coord, chunk := range cs.chunks {
		chunk.release()
		delete(cs.chunks, coord)
	}
	cs.mu.Unlock()
}
