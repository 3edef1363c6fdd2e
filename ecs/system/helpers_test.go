package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
	"github.com/milk9111/platformer/tileworld"
)

// Test level: 16x40 tiles of 40px. Floor top at y=560, a two tile wall
// spanning x 1200..1240.
const (
	floorY = 560.0
	wallX  = 1200.0
)

type harness struct {
	w   *ecs.World
	ctx *Context
	f   *entity.Factory
}

func testGrid() levels.Grid {
	g := levels.NewGrid(16, 40)
	for _, row := range []int{14, 15} {
		for c := range g[row] {
			g[row][c] = 0
		}
	}
	g[12][30] = 1
	g[13][30] = 1
	g[12][2] = levels.PlayerSpawn
	g[13][38] = levels.Exit
	return g
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	specs, err := prefabs.LoadBundle()
	if err != nil {
		t.Fatalf("LoadBundle: %v", err)
	}
	tiles, _, err := tileworld.Build(1, testGrid(), specs.Game.TileSize())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	f := entity.NewFactory(specs, nil)
	g := specs.Game
	return &harness{
		w: ecs.NewWorld(),
		f: f,
		ctx: &Context{
			Config: Config{
				ScreenWidth:  g.Screen.Width,
				ScreenHeight: g.Screen.Height,
				TileSize:     g.TileSize(),
				Gravity:      g.Gravity,
				ScrollThresh: g.ScrollThresh,
				Blast:        Blast{Radius: g.Blast.RadiusTiles * g.TileSize(), Damage: g.Blast.Damage},
			},
			Tiles: tiles,
			Spawn: f,
		},
	}
}

// player spawns the player standing on the floor with its center at x.
func (h *harness) player(t *testing.T, x float64) ecs.Entity {
	t.Helper()
	e, err := h.f.Player(h.w, x, floorY-30)
	if err != nil {
		t.Fatalf("Player: %v", err)
	}
	return e
}

func (h *harness) hostile(t *testing.T, x float64) ecs.Entity {
	t.Helper()
	e, err := h.f.Hostile(h.w, x, floorY-30)
	if err != nil {
		t.Fatalf("Hostile: %v", err)
	}
	return e
}

func (h *harness) run(frames int, in Input, systems ...ecs.System[*Context]) []ecs.Event {
	s := ecs.NewScheduler(systems...)
	var events []ecs.Event
	for i := 0; i < frames; i++ {
		h.ctx.BeginFrame(in)
		h.ctx.Frame = i
		s.Update(h.w, h.ctx)
		h.w.Compact()
		events = append(events, h.w.Events().Drain()...)
	}
	return events
}

func (h *harness) unit(t *testing.T, e ecs.Entity) *component.Unit {
	t.Helper()
	u, ok := ecs.Get(h.w, e, component.UnitComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no unit", e)
	}
	return u
}

func (h *harness) transform(t *testing.T, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(h.w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no transform", e)
	}
	return tr
}

func countEvents(events []ecs.Event, typ string) int {
	n := 0
	for _, e := range events {
		if e.Type == typ {
			n++
		}
	}
	return n
}
