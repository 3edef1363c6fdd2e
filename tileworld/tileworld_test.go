package tileworld

import (
	"errors"
	"testing"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

func floorGrid() levels.Grid {
	g := levels.NewGrid(5, 8)
	for c := range g[4] {
		g[4][c] = 0
	}
	g[2][1] = levels.PlayerSpawn
	g[3][6] = levels.Exit
	g[3][3] = levels.HealthBox
	g[3][4] = 19
	g[2][5] = levels.HostileSpawn
	return g
}

func TestBuild(t *testing.T) {
	tw, spawns, err := Build(1, floorGrid(), 40)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tw.Obstacles()) != 8 {
		t.Fatalf("expected 8 obstacles, got %d", len(tw.Obstacles()))
	}
	if tw.LevelWidth() != 320 {
		t.Fatalf("LevelWidth = %v, want 320", tw.LevelWidth())
	}
	first := tw.Obstacles()[0].Rect
	if first != common.NewRect(0, 160, 40, 40) {
		t.Fatalf("unexpected first obstacle %+v", first)
	}

	kinds := map[SpawnKind]int{}
	for _, s := range spawns {
		kinds[s.Kind]++
	}
	want := map[SpawnKind]int{SpawnPlayer: 1, SpawnExit: 1, SpawnHealth: 1, SpawnDecoration: 1, SpawnHostile: 1}
	for k, n := range want {
		if kinds[k] != n {
			t.Fatalf("spawn %s: got %d want %d", k, kinds[k], n)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(levels.Grid)
		reason string
	}{
		{"missing_player", func(g levels.Grid) { g[2][1] = levels.Empty }, "missing player spawn"},
		{"missing_exit", func(g levels.Grid) { g[3][6] = levels.Empty }, "missing exit"},
		{"duplicate_player", func(g levels.Grid) { g[1][1] = levels.PlayerSpawn }, "duplicate player spawn"},
		{"unknown_code", func(g levels.Grid) { g[0][0] = 99 }, "unknown tile code"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			g := floorGrid()
			c.mutate(g)
			tw, spawns, err := Build(2, g, 40)
			if tw != nil || spawns != nil {
				t.Fatalf("expected no partial world")
			}
			var le *levels.LoadError
			if !errors.As(err, &le) || le.Reason != c.reason {
				t.Fatalf("unexpected error %v", err)
			}
			if !errors.Is(err, levels.ErrInvalidLevel) {
				t.Fatalf("expected ErrInvalidLevel")
			}
		})
	}
}

func TestOverlapQueries(t *testing.T) {
	tw, _, err := Build(1, floorGrid(), 40)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	cases := []struct {
		name string
		r    common.Rect
		want bool
	}{
		{"resting_on_floor", common.NewRect(10, 100, 20, 60), false},
		{"sunk_into_floor", common.NewRect(10, 101, 20, 60), true},
		{"spanning_two_tiles", common.NewRect(30, 150, 20, 20), true},
		{"above", common.NewRect(0, 0, 300, 20), false},
		{"empty_rect", common.NewRect(10, 150, 0, 20), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := tw.OverlapsAny(c.r); got != c.want {
				t.Fatalf("OverlapsAny = %v, want %v", got, c.want)
			}
		})
	}
}
