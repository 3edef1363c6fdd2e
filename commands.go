package main

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/sim"
	"github.com/milk9111/platformer/storage"
	"github.com/milk9111/platformer/tileworld"
)

func newSimCmd(opts *options, logger *log.Logger) *cobra.Command {
	var frames int
	var script string
	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run the simulation headless with held inputs",
		Example: `  platformer sim --frames 1200 --input right,shoot
  platformer sim --level 2 --input right,jump --blast`,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := parseInput(script)
			if err != nil {
				return err
			}
			rt, err := newRuntime(*opts, logger, nil)
			if err != nil {
				return err
			}
			runs := openRuns(*opts, logger)
			if runs != nil {
				defer runs.Close()
			}

			s := rt.sim
			outcome := storage.OutcomeQuit
		loop:
			for i := 0; i < frames; i++ {
				res := s.Step(in)
				switch {
				case res.PlayerDied:
					outcome = storage.OutcomeDied
					break loop
				case res.LevelComplete:
					record(cmd.Context(), runs, logger, runRecord(s, storage.OutcomeComplete))
					if err := s.Advance(); err != nil {
						if errors.Is(err, sim.ErrGameComplete) {
							fmt.Fprintln(cmd.OutOrStdout(), describe(s))
							return nil
						}
						return err
					}
				}
			}
			record(cmd.Context(), runs, logger, runRecord(s, outcome))
			fmt.Fprintln(cmd.OutOrStdout(), describe(s))
			return nil
		},
	}
	cmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	cmd.Flags().StringVar(&script, "input", "", "comma separated inputs held every frame: left,right,jump,shoot,explosive")
	return cmd
}

func parseInput(script string) (sim.Input, error) {
	var in sim.Input
	for _, part := range strings.Split(script, ",") {
		switch strings.TrimSpace(strings.ToLower(part)) {
		case "":
		case "left":
			in.MoveLeft = true
		case "right":
			in.MoveRight = true
		case "jump":
			in.Jump = true
		case "shoot":
			in.Shoot = true
		case "explosive", "grenade":
			in.Explosive = true
		default:
			return sim.Input{}, fmt.Errorf("unknown input %q", part)
		}
	}
	return in, nil
}

func record(ctx context.Context, runs *storage.Store, logger *log.Logger, r storage.Run) {
	if runs == nil {
		return
	}
	if _, err := runs.RecordRun(ctx, r); err != nil {
		logger.Warn("record run", "err", err)
	}
}

func newValidateCmd(opts *options, logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check every level loads and builds",
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := loadSpecs(*opts)
			if err != nil {
				return err
			}
			store := levelStore(*opts, specs)

			var errs []error
			for level := 1; level <= specs.Game.MaxLevels; level++ {
				tw, spawns, err := buildLevel(store, specs.Game, level)
				if err != nil {
					logger.Error("level invalid", "level", level, "err", err)
					errs = append(errs, err)
					continue
				}
				logger.Info("level ok", "level", level, "obstacles", len(tw.Obstacles()), "spawns", len(spawns))
			}
			return errors.Join(errs...)
		},
	}
}

func buildLevel(store levels.Store, g *prefabs.GameSpec, level int) (*tileworld.TileWorld, []tileworld.Spawn, error) {
	grid, err := store.Load(level)
	if err != nil {
		return nil, nil, err
	}
	if err := grid.Validate(level, g.Grid.Rows, g.Grid.Cols); err != nil {
		return nil, nil, err
	}
	return tileworld.Build(level, grid, g.TileSize())
}

func newScoresCmd(opts *options, logger *log.Logger) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show recent runs and best times",
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.dbPath == "" {
				return errors.New("scores: --db is empty")
			}
			runs, err := storage.Open(opts.dbPath)
			if err != nil {
				return err
			}
			defer runs.Close()

			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			recent, err := runs.RecentRuns(ctx, limit)
			if err != nil {
				return err
			}
			if len(recent) == 0 {
				fmt.Fprintln(out, "no runs recorded")
				return nil
			}
			fmt.Fprintf(out, "%-6s %-9s %8s %6s %6s %5s\n", "LEVEL", "OUTCOME", "FRAMES", "KILLS", "HEALTH", "AMMO")
			levelsSeen := map[int]bool{}
			for _, r := range recent {
				levelsSeen[r.Level] = true
				fmt.Fprintf(out, "%-6d %-9s %8d %6d %6d %5d\n", r.Level, r.Outcome, r.Frames, r.Kills, r.Health, r.Ammo)
			}
			for _, level := range slices.Sorted(maps.Keys(levelsSeen)) {
				best, ok, err := runs.BestRun(ctx, level)
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintf(out, "best level %d: %d frames\n", level, best.Frames)
				}
			}
			logger.Debug("scores listed", "runs", len(recent))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of runs to show")
	return cmd
}
