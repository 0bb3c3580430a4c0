package world

import (
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/profiling"
)

// Options configures a World.
type Options struct {
	// Seed selects the terrain. Zero picks a random seed in [1, 999999].
	Seed           int64
	RenderDistance int
	ChunksPerTick  int
	// Workers bounds parallel generation within one tick.
	Workers int
	// SeamRemesh rebuilds loaded neighbours when a chunk is inserted so
	// border faces drawn against the missing chunk are retracted.
	SeamRemesh bool
	Gen        GenSettings
	// Mesher builds chunk geometry. A nil Mesher leaves chunks unmeshed.
	Mesher Mesher
	// OnMesh, if set, receives every chunk right after its mesh is rebuilt.
	// It runs under the world lock and must not call back into the World.
	OnMesh func(*Chunk)
	Logger *slog.Logger
}

// DefaultOptions returns the stock streaming parameters.
func DefaultOptions() Options {
	return Options{
		RenderDistance: 8,
		ChunksPerTick:  2,
		Workers:        2,
		SeamRemesh:     true,
		Gen:            DefaultGenSettings(),
	}
}

// Stats summarises streaming activity since construction or the last Regenerate.
type Stats struct {
	Seed      int64
	Loaded    int
	Queued    int
	Generated int
	Meshed    int
	Evicted   int
}

// World ties together the chunk store, the generation queue and meshing.
// Every method takes the internal lock, so block reads from other goroutines
// are safe while Tick or SetBlock run. Chunks returned by ChunkAt and Chunks
// are live: read their blocks only from the goroutine that edits the world.
type World struct {
	mu sync.Mutex

	store    *ChunkStore
	streamer *ChunkStreamer
	gen      *Generator
	opts     Options
	log      *slog.Logger

	center  ChunkCoord
	started bool

	generated int
	meshed    int
	evicted   int
}

// New creates a world. Nothing is generated until Start or Tick.
func New(opts Options) *World {
	opts.RenderDistance = max(opts.RenderDistance, 0)
	opts.ChunksPerTick = max(opts.ChunksPerTick, 1)
	opts.Workers = max(opts.Workers, 1)
	if opts.Gen == (GenSettings{}) {
		opts.Gen = DefaultGenSettings()
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	w := &World{
		store: NewChunkStore(),
		opts:  opts,
		log:   log,
	}
	w.gen = NewGenerator(w.pickSeed(opts.Seed), opts.Gen)
	w.streamer = NewChunkStreamer(w.store, w.gen, opts.Workers)
	return w
}

func (w *World) pickSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	seed = rand.Int64N(999999) + 1
	w.log.Info("picked random world seed", "seed", seed)
	return seed
}

// Seed returns the seed in use.
func (w *World) Seed() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.gen.Seed()
}

// RenderDistance returns the enqueue radius in chunks.
func (w *World) RenderDistance() int {
	return w.opts.RenderDistance
}

// UnloadDistance returns the eviction radius in chunks.
func (w *World) UnloadDistance() int {
	return w.opts.RenderDistance + 2
}

func cellOf(pos mgl32.Vec3) ChunkCoord {
	return ChunkCoordAt(int(math.Floor(float64(pos.X()))), int(math.Floor(float64(pos.Z()))))
}

// Start enqueues the chunks around pos. Tick calls it implicitly on first use.
func (w *World) Start(pos mgl32.Vec3) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.moveTo(cellOf(pos))
}

// moveTo recentres streaming on cell. Caller holds mu.
func (w *World) moveTo(cell ChunkCoord) {
	first := !w.started
	w.started = true
	w.center = cell
	pushed := w.streamer.StreamAround(cell, w.opts.RenderDistance)
	if first {
		w.log.Debug("streaming started", "cell", cell, "queued", pushed)
		return
	}
	radius := w.UnloadDistance()
	removed := w.store.EvictFarChunks(cell, radius)
	dropped := w.streamer.PruneFar(cell, radius)
	w.evicted += removed
	w.log.Debug("cell changed", "cell", cell, "queued", pushed, "evicted", removed, "dropped", dropped)
}

// Tick advances streaming for an observer at pos: on a cell change it
// enqueues missing chunks and evicts distant ones, then generates and
// meshes at most ChunksPerTick queued chunks. Returns the number inserted.
func (w *World) Tick(pos mgl32.Vec3) int {
	defer profiling.Track("world.Tick")()
	w.mu.Lock()
	defer w.mu.Unlock()

	if cell := cellOf(pos); !w.started || cell != w.center {
		w.moveTo(cell)
	}

	inserted := 0
	for _, c := range w.streamer.NextBatch(w.opts.ChunksPerTick) {
		if !w.store.AddChunk(c) {
			continue
		}
		inserted++
		w.generated++
		w.rebuild(c)
		if w.opts.SeamRemesh {
			w.remeshNeighbours(c.Coord())
		}
	}
	if inserted > 0 {
		w.log.Debug("chunks generated", "count", inserted, "queued", w.streamer.Len(), "loaded", w.store.Len())
	}
	return inserted
}

// remeshNeighbours rebuilds each loaded horizontal neighbour of coord.
func (w *World) remeshNeighbours(coord ChunkCoord) {
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		if n := w.store.GetChunk(ChunkCoord{X: coord.X + d[0], Z: coord.Z + d[1]}); n != nil {
			n.MarkDirty()
			w.rebuild(n)
		}
	}
}

// rebuild regenerates c's mesh if it is dirty.
func (w *World) rebuild(c *Chunk) {
	if w.opts.Mesher == nil || !c.IsDirty() {
		return
	}
	c.mesh = w.opts.Mesher.BuildMesh(w.store, c)
	c.SetClean()
	w.meshed++
	if w.opts.OnMesh != nil {
		w.opts.OnMesh(c)
	}
}

// GetBlock returns the block at world coordinates. Missing chunks and
// heights outside [0, ChunkSizeY) read as air.
func (w *World) GetBlock(x, y, z int) BlockType {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.GetBlock(x, y, z)
}

// IsAir checks if the block at world coordinates is air.
func (w *World) IsAir(x, y, z int) bool {
	return w.GetBlock(x, y, z) == BlockTypeAir
}

// SetBlock writes a block and rebuilds the owning chunk's mesh, plus the mesh
// of every loaded neighbour sharing the edited border. Writes to missing
// chunks or out-of-range heights are dropped.
func (w *World) SetBlock(x, y, z int, b BlockType) {
	w.mu.Lock()
	defer w.mu.Unlock()

	c := w.store.Set(x, y, z, b)
	if c == nil {
		return
	}
	w.rebuild(c)

	lx, lz := mod(x, ChunkSizeX), mod(z, ChunkSizeZ)
	var edges []ChunkCoord
	switch lx {
	case 0:
		edges = append(edges, ChunkCoord{X: c.X - 1, Z: c.Z})
	case ChunkSizeX - 1:
		edges = append(edges, ChunkCoord{X: c.X + 1, Z: c.Z})
	}
	switch lz {
	case 0:
		edges = append(edges, ChunkCoord{X: c.X, Z: c.Z - 1})
	case ChunkSizeZ - 1:
		edges = append(edges, ChunkCoord{X: c.X, Z: c.Z + 1})
	}
	for _, coord := range edges {
		if n := w.store.GetChunk(coord); n != nil {
			n.MarkDirty()
			w.rebuild(n)
		}
	}
}

// AddChunk inserts a prebuilt chunk, for tools and tests that author terrain
// by hand. It reports false if the coordinate is already loaded. The chunk is
// not meshed until it is next edited or a neighbour arrives.
func (w *World) AddChunk(c *Chunk) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.store.AddChunk(c) {
		return false
	}
	w.streamer.PruneCoord(c.Coord())
	return true
}

// ChunkAt returns the loaded chunk at coord, or nil.
func (w *World) ChunkAt(coord ChunkCoord) *Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.GetChunk(coord)
}

// ChunkAtWorld returns the loaded chunk owning world column (x, z), or nil.
func (w *World) ChunkAtWorld(x, z int) *Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.GetChunkFromBlockCoords(x, z)
}

// Chunks returns every loaded chunk in no particular order.
func (w *World) Chunks() []*Chunk {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.store.GetAllChunks()
}

// IsReady reports whether the chunk at coord is loaded and its geometry is current.
func (w *World) IsReady(coord ChunkCoord) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	c := w.store.GetChunk(coord)
	if c == nil || !c.IsGenerated() {
		return false
	}
	return w.opts.Mesher == nil || !c.IsDirty()
}

// IsQueued reports whether coord is waiting for generation.
func (w *World) IsQueued(coord ChunkCoord) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.streamer.IsQueued(coord)
}

// QueueLen returns the number of pending coordinates.
func (w *World) QueueLen() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.streamer.Len()
}

// Pending returns the queued coordinates in dequeue order.
func (w *World) Pending() []ChunkCoord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.streamer.Pending()
}

// Stats returns a snapshot of streaming counters.
func (w *World) Stats() Stats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Stats{
		Seed:      w.gen.Seed(),
		Loaded:    w.store.Len(),
		Queued:    w.streamer.Len(),
		Generated: w.generated,
		Meshed:    w.meshed,
		Evicted:   w.evicted,
	}
}

// Regenerate discards all terrain and restarts streaming with a new seed.
// Zero picks a random seed.
func (w *World) Regenerate(seed int64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.store.Clear()
	w.streamer.Reset()
	w.gen = NewGenerator(w.pickSeed(seed), w.opts.Gen)
	w.streamer.SetGenerator(w.gen)
	w.generated, w.meshed, w.evicted = 0, 0, 0
	w.log.Info("world regenerated", "seed", w.gen.Seed())

	if w.started {
		w.started = false
		w.moveTo(w.center)
	}
}

// SpawnPosition returns a standing position above the first solid block in
// the column at world (0, 0). It falls back to (0, 70, 0) while that column
// is not loaded or holds nothing solid.
func (w *World) SpawnPosition() mgl32.Vec3 {
	w.mu.Lock()
	defer w.mu.Unlock()
	for y := ChunkSizeY - 1; y >= 0; y-- {
		if IsSolid(w.store.GetBlock(0, y, 0)) {
			return mgl32.Vec3{0.5, float32(y + 2), 0.5}
		}
	}
	return mgl32.Vec3{0, 70, 0}
}
