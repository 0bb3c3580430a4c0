package main

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"voxelstream/internal/physics"
	"voxelstream/internal/profiling"
	"voxelstream/internal/world"
)

const (
	eyeHeight    = 1.62
	bodyHeight   = 1.8
	stepHeight   = 0.5 // scans the cell at the feet, so one-block ledges are climbed
	reportEvery  = 120
	editInterval = 300
)

// SimOptions controls the headless observer.
type SimOptions struct {
	Ticks    int
	Speed    float32
	Heading  float32 // degrees from +X
	Interval time.Duration
}

// Simulation walks an observer across the world, feeding its position to
// the streamer each tick and periodically editing the block it looks at.
type Simulation struct {
	world *world.World
	log   *slog.Logger
	opts  SimOptions

	pos       mgl32.Vec3
	dir       mgl32.Vec3
	tick      int
	edits     int
	blocked   int
	lastMeshN int
}

// NewSimulation places the observer at the world's spawn point.
func NewSimulation(w *world.World, log *slog.Logger, opts SimOptions) *Simulation {
	rad := float64(mgl32.DegToRad(opts.Heading))
	return &Simulation{
		world: w,
		log:   log,
		opts:  opts,
		pos:   w.SpawnPosition(),
		dir:   mgl32.Vec3{float32(math.Cos(rad)), 0, float32(math.Sin(rad))},
	}
}

// Run ticks until the budget is spent or ctx is cancelled.
func (s *Simulation) Run(ctx context.Context) {
	s.world.Start(s.pos)
	s.waitForSpawn(ctx)
	s.log.Info("simulation started", "seed", s.world.Seed(), "spawn", s.pos,
		"render_distance", s.world.RenderDistance())

	var ticker *time.Ticker
	if s.opts.Interval > 0 {
		ticker = time.NewTicker(s.opts.Interval)
		defer ticker.Stop()
	}

	for s.opts.Ticks <= 0 || s.tick < s.opts.Ticks {
		if ticker != nil {
			select {
			case <-ctx.Done():
				s.finish()
				return
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			s.finish()
			return
		}
		s.step()
	}
	s.finish()
}

// waitForSpawn ticks in place until the spawn chunk is ready, then drops the
// observer onto the ground.
func (s *Simulation) waitForSpawn(ctx context.Context) {
	spawn := world.ChunkCoordAt(int(math.Floor(float64(s.pos.X()))), int(math.Floor(float64(s.pos.Z()))))
	for !s.world.IsReady(spawn) && ctx.Err() == nil {
		s.world.Tick(s.pos)
	}
	s.pos = s.world.SpawnPosition()
}

func (s *Simulation) step() {
	profiling.ResetTick()
	s.tick++

	s.move()
	s.world.Tick(s.pos)

	if s.tick%editInterval == 0 {
		s.edit()
	}
	if s.tick%reportEvery == 0 {
		s.report()
	}
}

// move steps the observer along its heading. It climbs ledges up to one
// block high and drops onto lower ground; taller obstacles block the step.
func (s *Simulation) move() {
	next := s.pos.Add(s.dir.Mul(s.opts.Speed))
	if ground := physics.FindGroundLevel(next.X(), next.Z(), s.pos.Y()+stepHeight, s.world); ground >= 0 {
		next[1] = ground
	}
	if physics.Collides(next, bodyHeight, s.world) {
		s.blocked++
		return
	}
	s.pos = next
}

// edit digs the block the observer looks down at and places cobblestone in
// the cell in front of it.
func (s *Simulation) edit() {
	eye := s.pos.Add(mgl32.Vec3{0, eyeHeight, 0})
	look := s.dir.Add(mgl32.Vec3{0, -1, 0})
	hit := physics.Raycast(eye, look, physics.MinReachDistance, physics.MaxReachDistance, s.world)
	if !hit.Hit {
		return
	}
	s.world.SetBlock(hit.HitPosition[0], hit.HitPosition[1], hit.HitPosition[2], world.BlockTypeAir)
	a := hit.AdjacentPosition
	if !physics.Collides(s.pos, bodyHeight, s.world) && s.world.IsAir(a[0], a[1], a[2]) {
		s.world.SetBlock(a[0], a[1], a[2], world.BlockTypeCobblestone)
	}
	s.edits++
	s.log.Debug("edited terrain", "removed", hit.Block, "at", hit.HitPosition)
}

func (s *Simulation) report() {
	st := s.world.Stats()
	cell := world.ChunkCoordAt(int(math.Floor(float64(s.pos.X()))), int(math.Floor(float64(s.pos.Z()))))
	s.log.Info("streaming",
		"tick", s.tick,
		"cell", cell,
		"loaded", st.Loaded,
		"queued", st.Queued,
		"generated", st.Generated,
		"meshed", st.Meshed-s.lastMeshN,
		"evicted", st.Evicted,
	)
	s.lastMeshN = st.Meshed
	s.log.Debug("tick profile", "top", profiling.TopN(3))
}

func (s *Simulation) finish() {
	st := s.world.Stats()
	s.log.Info("simulation finished",
		"ticks", s.tick,
		"position", s.pos,
		"loaded", st.Loaded,
		"generated", st.Generated,
		"evicted", st.Evicted,
		"edits", s.edits,
		"blocked", s.blocked,
	)
}
