package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func playerSystems() []ecs.System[*Context] {
	return []ecs.System[*Context]{NewPlayerControlSystem(), NewPlayerMovementSystem(), NewCameraSystem()}
}

func TestPlayerJump(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)

	h.run(1, Input{}, playerSystems()...)
	body, _ := ecs.Get(h.w, p, component.BodyComponent.Kind())
	if !body.Grounded {
		t.Fatalf("player should settle on the floor")
	}
	if got := h.transform(t, p).Y; got != 500 {
		t.Fatalf("resting y = %v, want 500", got)
	}

	events := h.run(1, Input{Jump: true}, playerSystems()...)
	if countEvents(events, EventJump) != 1 {
		t.Fatalf("expected one jump event, got %v", events)
	}
	if body.VelY != -14.25 {
		t.Fatalf("VelY after takeoff = %v, want -14.25", body.VelY)
	}
	if got := h.transform(t, p).Y; got != 500-14.25 {
		t.Fatalf("y after takeoff = %v", got)
	}
	anim, _ := ecs.Get(h.w, p, component.AnimationComponent.Kind())
	if anim.State != component.AnimJump {
		t.Fatalf("airborne animation = %s, want Jump", anim.State)
	}

	events = h.run(1, Input{Jump: true}, playerSystems()...)
	if countEvents(events, EventJump) != 0 {
		t.Fatalf("jumped while airborne")
	}
	pc, _ := ecs.Get(h.w, p, component.PlayerControlComponent.Kind())
	if !pc.JumpQueued {
		t.Fatalf("airborne jump press should stay queued")
	}
}

func TestPlayerScreenClamp(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 30)

	h.run(3, Input{MoveLeft: true}, playerSystems()...)
	if got := h.transform(t, p).X; got != 2.5 {
		t.Fatalf("x = %v, want 2.5", got)
	}
	if h.unit(t, p).Facing != -1 {
		t.Fatalf("player should face left")
	}
	if h.ctx.CameraX != 0 {
		t.Fatalf("camera moved to %v at the level start", h.ctx.CameraX)
	}
}

func TestCameraScroll(t *testing.T) {
	cases := []struct {
		name       string
		x          float64
		camera     float64
		frames     int
		wantCamera float64
		wantX      float64
	}{
		{"scrolls_inside_band", 650, 0, 10, 50, 677.5},
		{"no_scroll_in_middle", 400, 0, 10, 0, 427.5},
		{"pinned_at_level_end", 1450, 800, 4, 800, 1447.5},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			if err := h.f.Backgrounds(h.w); err != nil {
				t.Fatalf("Backgrounds: %v", err)
			}
			p := h.player(t, c.x)
			h.ctx.CameraX = c.camera

			h.run(c.frames, Input{MoveRight: true}, playerSystems()...)
			if h.ctx.CameraX != c.wantCamera {
				t.Fatalf("camera = %v, want %v", h.ctx.CameraX, c.wantCamera)
			}
			if got := h.transform(t, p).X; got != c.wantX {
				t.Fatalf("player x = %v, want %v", got, c.wantX)
			}
			ecs.ForEach(h.w, component.BackgroundComponent.Kind(), func(_ ecs.Entity, bg *component.Background) {
				if bg.Offset != -c.wantCamera*bg.Factor {
					t.Fatalf("layer %s offset = %v, want %v", bg.Name, bg.Offset, -c.wantCamera*bg.Factor)
				}
			})
		})
	}
}

func TestCameraScrollReportsShift(t *testing.T) {
	h := newHarness(t)
	h.player(t, 650)

	h.run(1, Input{MoveRight: true}, playerSystems()...)
	if h.ctx.Scroll != -5 {
		t.Fatalf("scroll = %v, want -5", h.ctx.Scroll)
	}
	h.run(1, Input{}, playerSystems()...)
	if h.ctx.Scroll != 0 {
		t.Fatalf("scroll while standing = %v, want 0", h.ctx.Scroll)
	}
}

func TestDeadPlayerDoesNotMove(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 650)
	h.unit(t, p).Alive = false

	h.run(5, Input{MoveRight: true, Jump: true}, playerSystems()...)
	if got := h.transform(t, p).X; got != 627.5 {
		t.Fatalf("dead player moved to %v", got)
	}
	if h.ctx.CameraX != 0 || h.ctx.Scroll != 0 {
		t.Fatalf("camera moved for a dead player")
	}
}
