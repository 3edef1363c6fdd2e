package sim

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tileworld"
)

// Input is the set of intents sampled once per frame.
type Input = system.Input

var ErrGameComplete = errors.New("sim: no more levels")

type Deps struct {
	Specs  *prefabs.Bundle
	Levels levels.Store
	// Assets sizes units. Nil uses the placeholder sizes from the specs.
	Assets assets.Provider
	Logger *log.Logger
	Cues   CuePlayer
	// Seed drives the hostile idle draws. Zero uses the game spec seed.
	Seed uint64
}

// RunStats summarizes the current attempt at a level.
type RunStats struct {
	Level  int
	Frames int
	Kills  int
	Shots  int
	Throws int
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Frame         int
	LevelComplete bool
	// PlayerDied is set only on the frame the player dies.
	PlayerDied bool
	Events     []ecs.Event
}

// Sim owns one level's world and advances it a frame at a time.
type Sim struct {
	deps     Deps
	log      *log.Logger
	cues     CuePlayer
	factory  *entity.Factory
	pipeline *ecs.Scheduler[*system.Context]

	world  *ecs.World
	tiles  *tileworld.TileWorld
	ctx    *system.Context
	player ecs.Entity
	level  int
	frame  int
	status Status
	stats  RunStats
	seed   uint64
}

func New(d Deps) (*Sim, error) {
	if d.Specs == nil {
		return nil, errors.New("sim: specs are required")
	}
	if d.Levels == nil {
		return nil, errors.New("sim: level store is required")
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	if d.Cues == nil {
		d.Cues = nopCues{}
	}
	seed := d.Seed
	if seed == 0 {
		seed = d.Specs.Game.Seed
	}
	return &Sim{
		deps:     d,
		log:      d.Logger.WithPrefix("sim"),
		cues:     d.Cues,
		factory:  entity.NewFactory(d.Specs, d.Assets),
		pipeline: system.NewPipeline(),
		seed:     seed,
	}, nil
}

func (s *Sim) config() system.Config {
	g := s.deps.Specs.Game
	return system.Config{
		ScreenWidth:  g.Screen.Width,
		ScreenHeight: g.Screen.Height,
		TileSize:     g.TileSize(),
		Gravity:      g.Gravity,
		ScrollThresh: g.ScrollThresh,
		Blast: system.Blast{
			Enabled: g.Blast.Enabled,
			Radius:  g.Blast.RadiusTiles * g.TileSize(),
			Damage:  g.Blast.Damage,
		},
	}
}

// LoadLevel replaces the current world with a fresh copy of the level. On
// error the previous world is kept.
func (s *Sim) LoadLevel(level int) error {
	grid, err := s.deps.Levels.Load(level)
	if err != nil {
		return fmt.Errorf("sim: load level %d: %w", level, err)
	}
	g := s.deps.Specs.Game
	if err := grid.Validate(level, g.Grid.Rows, g.Grid.Cols); err != nil {
		return err
	}
	tiles, spawns, err := tileworld.Build(level, grid, g.TileSize())
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	player, err := entity.LoadLevelToWorld(w, s.factory, spawns)
	if err != nil {
		return fmt.Errorf("sim: level %d: %w", level, err)
	}

	s.world = w
	s.tiles = tiles
	s.player = player
	s.level = level
	s.frame = 0
	s.status = StatusPlaying
	s.stats = RunStats{Level: level}
	s.ctx = &system.Context{
		Config: s.config(),
		Tiles:  tiles,
		Spawn:  s.factory,
		Rand:   rand.New(rand.NewPCG(s.seed, uint64(level))),
	}

	s.log.Info("level loaded",
		"level", level,
		"obstacles", len(tiles.Obstacles()),
		"hostiles", len(w.Query(component.HostileTagComponent.Kind())),
		"width", tiles.LevelWidth(),
	)
	return nil
}

// Restart reloads the current level.
func (s *Sim) Restart() error {
	s.log.Info("restart", "level", s.level, "frames", s.frame)
	return s.LoadLevel(s.level)
}

// Advance loads the next level, or reports ErrGameComplete after the last.
func (s *Sim) Advance() error {
	next := s.level + 1
	if next > s.deps.Specs.Game.MaxLevels {
		s.status = StatusGameComplete
		s.log.Info("game complete", "levels", s.deps.Specs.Game.MaxLevels)
		return ErrGameComplete
	}
	return s.LoadLevel(next)
}

// Step runs one frame.
func (s *Sim) Step(in Input) StepResult {
	if s.world == nil || s.status == StatusGameComplete {
		return StepResult{Frame: s.frame}
	}
	wasAlive := s.PlayerAlive()

	s.ctx.BeginFrame(in)
	s.ctx.Frame = s.frame
	s.pipeline.Update(s.world, s.ctx)
	s.world.Compact()

	events := s.world.Events().Drain()
	s.handleEvents(events)

	s.frame++
	s.stats.Frames = s.frame
	res := StepResult{
		Frame:         s.frame,
		LevelComplete: s.ctx.LevelComplete,
		Events:        events,
	}
	if wasAlive && !s.PlayerAlive() {
		res.PlayerDied = true
		s.status = StatusDead
		s.log.Info("player died", "level", s.level, "frame", s.frame)
	}
	if res.LevelComplete {
		s.log.Info("level complete", "level", s.level, "frames", s.frame, "kills", s.stats.Kills)
	}
	return res
}

func (s *Sim) handleEvents(events []ecs.Event) {
	for _, evt := range events {
		switch evt.Type {
		case system.EventJump:
			s.cues.Play(CueJump)
		case system.EventShoot:
			s.cues.Play(CueShoot)
			if evt.Entity == s.player {
				s.stats.Shots++
			}
		case system.EventThrow:
			s.cues.Play(CueExplosive)
			if evt.Entity == s.player {
				s.stats.Throws++
			}
		case system.EventDeath:
			if evt.Entity != s.player {
				s.stats.Kills++
				s.log.Debug("hostile died", "entity", evt.Entity, "frame", s.frame)
			}
		case system.EventPickup:
			if p, ok := evt.Data.(system.PickupEvent); ok {
				s.log.Debug("pickup", "kind", p.Kind, "amount", p.Amount)
			}
		case system.EventDetonate:
			s.log.Debug("detonate", "entity", evt.Entity)
		}
	}
}

func (s *Sim) World() *ecs.World { return s.world }
func (s *Sim) Player() ecs.Entity { return s.player }
func (s *Sim) Level() int { return s.level }
func (s *Sim) Frame() int { return s.frame }
func (s *Sim) Status() Status { return s.status }
func (s *Sim) Stats() RunStats { return s.stats }
func (s *Sim) Tiles() *tileworld.TileWorld { return s.tiles }
func (s *Sim) Context() *system.Context { return s.ctx }

func (s *Sim) PlayerAlive() bool {
	if s.world == nil {
		return false
	}
	u, ok := ecs.Get(s.world, s.player, component.UnitComponent.Kind())
	return ok && u.Alive
}
