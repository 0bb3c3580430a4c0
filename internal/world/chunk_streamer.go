package world

import (
	"golang.org/x/sync/errgroup"

	"voxelstream/internal/profiling"
)

// ChunkStreamer owns the pending-generation queue. A coordinate is queued
// only when it is neither stored nor already queued, and it leaves the
// queued set exactly when it is dequeued.
type ChunkStreamer struct {
	queue   []ChunkCoord
	queued  map[ChunkCoord]struct{}
	workers int

	// Dependencies
	store *ChunkStore
	gen   *Generator
}

// NewChunkStreamer creates a streamer feeding store from gen. workers bounds
// how many chunks of one batch generate in parallel.
func NewChunkStreamer(store *ChunkStore, gen *Generator, workers int) *ChunkStreamer {
	return &ChunkStreamer{
		queued:  make(map[ChunkCoord]struct{}),
		workers: max(workers, 1),
		store:   store,
		gen:     gen,
	}
}

// SetGenerator swaps the terrain source for chunks dequeued from now on.
func (cs *ChunkStreamer) SetGenerator(gen *Generator) {
	cs.gen = gen
}

// Reset drops every pending coordinate.
func (cs *ChunkStreamer) Reset() {
	cs.queue = cs.queue[:0]
	clear(cs.queued)
}

// Len returns the number of pending coordinates.
func (cs *ChunkStreamer) Len() int {
	return len(cs.queue)
}

// IsQueued reports whether coord is waiting for generation.
func (cs *ChunkStreamer) IsQueued(coord ChunkCoord) bool {
	_, ok := cs.queued[coord]
	return ok
}

// Pending returns a copy of the queue in dequeue order.
func (cs *ChunkStreamer) Pending() []ChunkCoord {
	out := make([]ChunkCoord, len(cs.queue))
	copy(out, cs.queue)
	return out
}

// StreamAround enqueues every missing coordinate within Chebyshev distance
// radius of center, walking rings outward so near chunks come first.
// Returns the number of coordinates enqueued.
func (cs *ChunkStreamer) StreamAround(center ChunkCoord, radius int) int {
	defer profiling.Track("world.StreamAround")()
	pushed := 0
	for r := 0; r <= radius; r++ {
		if r == 0 {
			if cs.requestChunk(center) {
				pushed++
			}
			continue
		}

		x0 := center.X - r
		x1 := center.X + r
		z0 := center.Z - r
		z1 := center.Z + r

		for xk := x0; xk <= x1; xk++ {
			if cs.requestChunk(ChunkCoord{X: xk, Z: z0}) {
				pushed++
			}
		}
		for zk := z0 + 1; zk <= z1-1; zk++ {
			if cs.requestChunk(ChunkCoord{X: x1, Z: zk}) {
				pushed++
			}
		}
		for xk := x1; xk >= x0; xk-- {
			if cs.requestChunk(ChunkCoord{X: xk, Z: z1}) {
				pushed++
			}
		}
		for zk := z1 - 1; zk >= z0+1; zk-- {
			if cs.requestChunk(ChunkCoord{X: x0, Z: zk}) {
				pushed++
			}
		}
	}
	return pushed
}

// requestChunk returns true if coord was enqueued.
func (cs *ChunkStreamer) requestChunk(coord ChunkCoord) bool {
	if cs.store.HasChunk(coord) {
		return false
	}
	if _, ok := cs.queued[coord]; ok {
		return false
	}
	cs.queued[coord] = struct{}{}
	cs.queue = append(cs.queue, coord)
	return true
}

// PruneFar drops pending coordinates farther than radius from center.
// Returns the number dropped.
func (cs *ChunkStreamer) PruneFar(center ChunkCoord, radius int) int {
	kept := cs.queue[:0]
	dropped := 0
	for _, coord := range cs.queue {
		if chebyshev(coord, center) > radius {
			delete(cs.queued, coord)
			dropped++
			continue
		}
		kept = append(kept, coord)
	}
	cs.queue = kept
	return dropped
}

// PruneCoord removes a single pending coordinate.
func (cs *ChunkStreamer) PruneCoord(coord ChunkCoord) {
	if _, ok := cs.queued[coord]; !ok {
		return
	}
	delete(cs.queued, coord)
	for i, c := range cs.queue {
		if c == coord {
			cs.queue = append(cs.queue[:i], cs.queue[i+1:]...)
			return
		}
	}
}

// NextBatch dequeues up to budget coordinates and generates those not yet
// stored. Generation runs in parallel; the result keeps dequeue order and is
// not inserted into the store.
func (cs *ChunkStreamer) NextBatch(budget int) []*Chunk {
	defer profiling.Track("world.NextBatch")()
	n := min(budget, len(cs.queue))
	if n <= 0 {
		return nil
	}
	batch := make([]ChunkCoord, 0, n)
	for _, coord := range cs.queue[:n] {
		delete(cs.queued, coord)
		if cs.store.HasChunk(coord) {
			continue
		}
		batch = append(batch, coord)
	}
	cs.queue = append(cs.queue[:0], cs.queue[n:]...)

	out := make([]*Chunk, len(batch))
	gen := cs.gen
	var g errgroup.Group
	g.SetLimit(cs.workers)
	for i, coord := range batch {
		g.Go(func() error {
			c := NewChunk(coord.X, coord.Z)
			gen.PopulateChunk(c)
			out[i] = c
			return nil
		})
	}
	// Generation has no failure mode.
	_ = g.Wait()
	return out
}
