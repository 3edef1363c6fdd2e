package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/storage"
)

// runtime is everything the commands build from flags.
type runtime struct {
	opts   options
	log    *log.Logger
	specs  *prefabs.Bundle
	levels levels.Store
	assets assets.Provider
	sim    *sim.Sim
}

func loadSpecs(opts options) (*prefabs.Bundle, error) {
	specs, err := prefabs.LoadBundle()
	if err != nil {
		return nil, err
	}
	if opts.blast {
		specs.Game.Blast.Enabled = true
	}
	return specs, nil
}

func levelStore(opts options, specs *prefabs.Bundle) levels.Store {
	shape := levels.Shape{Rows: specs.Game.Grid.Rows, Cols: specs.Game.Grid.Cols}
	embedded := levels.NewEmbeddedStore(shape)
	if opts.levelsDir == "" {
		return embedded
	}
	return &levels.FallbackStore{Primary: levels.NewDirStore(opts.levelsDir, shape), Secondary: embedded}
}

func assetProvider(opts options, specs *prefabs.Bundle) assets.Provider {
	placeholder := entity.PlaceholderProvider(specs)
	if opts.assetsDir == "" {
		return placeholder
	}
	return assets.Fallback{Primary: assets.NewFSProvider(os.DirFS(opts.assetsDir), "."), Secondary: placeholder}
}

func newRuntime(opts options, logger *log.Logger, cues sim.CuePlayer) (*runtime, error) {
	specs, err := loadSpecs(opts)
	if err != nil {
		return nil, err
	}
	rt := &runtime{
		opts:   opts,
		log:    logger,
		specs:  specs,
		levels: levelStore(opts, specs),
		assets: assetProvider(opts, specs),
	}
	if err := rt.rebuild(cues); err != nil {
		return nil, err
	}
	return rt, nil
}

// rebuild creates a fresh simulation on the configured start level.
func (rt *runtime) rebuild(cues sim.CuePlayer) error {
	s, err := sim.New(sim.Deps{
		Specs:  rt.specs,
		Levels: rt.levels,
		Assets: rt.assets,
		Logger: rt.log,
		Cues:   cues,
		Seed:   rt.opts.seed,
	})
	if err != nil {
		return err
	}
	if err := s.LoadLevel(rt.opts.level); err != nil {
		return err
	}
	rt.sim = s
	return nil
}

func openRuns(opts options, logger *log.Logger) *storage.Store {
	if opts.dbPath == "" {
		return nil
	}
	runs, err := storage.Open(opts.dbPath)
	if err != nil {
		logger.Warn("run history disabled", "db", opts.dbPath, "err", err)
		return nil
	}
	return runs
}

func runRecord(s *sim.Sim, outcome storage.Outcome) storage.Run {
	stats := s.Stats()
	hud := s.Snapshot().HUD
	return storage.Run{
		Level:   stats.Level,
		Outcome: outcome,
		Frames:  stats.Frames,
		Kills:   stats.Kills,
		Health:  hud.Health,
		Ammo:    hud.Ammo,
	}
}

func describe(s *sim.Sim) string {
	stats := s.Stats()
	hud := s.Snapshot().HUD
	return fmt.Sprintf("level %d %s after %d frames: health %d/%d ammo %d grenades %d kills %d",
		stats.Level, s.Status(), stats.Frames, hud.Health, hud.MaxHealth, hud.Ammo, hud.Explosives, stats.Kills)
}
