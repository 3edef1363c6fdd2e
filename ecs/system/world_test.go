package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func TestPickups(t *testing.T) {
	cases := []struct {
		name   string
		kind   component.PickupKind
		before func(u *component.Unit)
		check  func(t *testing.T, u *component.Unit)
	}{
		{
			name:   "health_caps_at_max",
			kind:   component.PickupHealth,
			before: func(u *component.Unit) { u.Health = 90 },
			check: func(t *testing.T, u *component.Unit) {
				if u.Health != 100 {
					t.Fatalf("health = %d, want 100", u.Health)
				}
			},
		},
		{
			name:   "health_adds",
			kind:   component.PickupHealth,
			before: func(u *component.Unit) { u.Health = 50 },
			check: func(t *testing.T, u *component.Unit) {
				if u.Health != 75 {
					t.Fatalf("health = %d, want 75", u.Health)
				}
			},
		},
		{
			name: "ammo",
			kind: component.PickupAmmo,
			check: func(t *testing.T, u *component.Unit) {
				if u.Ammo != 35 {
					t.Fatalf("ammo = %d, want 35", u.Ammo)
				}
			},
		},
		{
			name: "explosive",
			kind: component.PickupExplosive,
			check: func(t *testing.T, u *component.Unit) {
				if u.Explosives != 25 {
					t.Fatalf("explosives = %d, want 25", u.Explosives)
				}
			},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			p := h.player(t, 120)
			u := h.unit(t, p)
			if c.before != nil {
				c.before(u)
			}
			box, err := h.f.Pickup(h.w, c.kind, 0, 100, 520)
			if err != nil {
				t.Fatalf("Pickup: %v", err)
			}

			events := h.run(2, Input{}, NewPickupSystem())
			c.check(t, u)
			if h.w.IsAlive(box) {
				t.Fatalf("pickup not removed")
			}
			if n := countEvents(events, EventPickup); n != 1 {
				t.Fatalf("pickup applied %d times", n)
			}
		})
	}
}

func TestExitCompletesLevel(t *testing.T) {
	cases := []struct {
		name string
		x    float64
		want bool
	}{
		{"touching", 120, true},
		{"away", 400, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := newHarness(t)
			h.player(t, c.x)
			if _, err := h.f.Exit(h.w, 26, 80, 520); err != nil {
				t.Fatalf("Exit: %v", err)
			}
			events := h.run(1, Input{}, NewExitSystem())
			if h.ctx.LevelComplete != c.want {
				t.Fatalf("LevelComplete = %v, want %v", h.ctx.LevelComplete, c.want)
			}
			if got := countEvents(events, EventLevelComplete) == 1; got != c.want {
				t.Fatalf("level complete events: %v", events)
			}
		})
	}
}

func TestFallingBelowScreenKills(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	h.transform(t, p).Y = 600

	events := h.run(1, Input{}, NewHealthSystem())
	u := h.unit(t, p)
	if u.Alive || u.Health != 0 {
		t.Fatalf("player alive=%v health=%d after falling", u.Alive, u.Health)
	}
	if countEvents(events, EventDeath) != 1 {
		t.Fatalf("expected a death event, got %v", events)
	}
}

func TestDeathAnimation(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	enemy := h.hostile(t, 400)
	ApplyDamage(h.w, p, 1000, "test")
	ApplyDamage(h.w, enemy, 1000, "test")

	// Death has 8 frames held for 6 ticks each.
	h.run(47, Input{}, NewAnimationSystem())
	if !h.w.IsAlive(enemy) {
		t.Fatalf("hostile removed before its death animation finished")
	}
	events := h.run(1, Input{}, NewAnimationSystem())
	if h.w.IsAlive(enemy) {
		t.Fatalf("hostile kept after its death animation")
	}
	if countEvents(events, EventRemoved) != 1 {
		t.Fatalf("expected a removed event, got %v", events)
	}

	h.run(20, Input{}, NewAnimationSystem())
	anim, _ := ecs.Get(h.w, p, component.AnimationComponent.Kind())
	if !h.w.IsAlive(p) || !anim.Done || anim.Frame != 7 {
		t.Fatalf("player death animation: alive=%v %+v", h.w.IsAlive(p), anim)
	}
}

func TestAnimationLoops(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	anim, _ := ecs.Get(h.w, p, component.AnimationComponent.Kind())

	h.run(29, Input{}, NewAnimationSystem())
	if anim.Frame != 4 {
		t.Fatalf("frame = %d, want 4", anim.Frame)
	}
	h.run(1, Input{}, NewAnimationSystem())
	if anim.Frame != 0 || anim.Done {
		t.Fatalf("idle did not loop: %+v", anim)
	}
}

func TestApplyDamageClamps(t *testing.T) {
	h := newHarness(t)
	p := h.player(t, 120)
	u := h.unit(t, p)

	ApplyDamage(h.w, p, 30, "test")
	if u.Health != 70 || !u.Alive {
		t.Fatalf("health=%d alive=%v", u.Health, u.Alive)
	}
	ApplyDamage(h.w, p, 500, "test")
	if u.Health != 0 || u.Alive {
		t.Fatalf("health=%d alive=%v", u.Health, u.Alive)
	}
	ApplyDamage(h.w, p, 5, "test")
	if u.Health != 0 {
		t.Fatalf("dead unit took more damage")
	}
}

func TestPipelineOrder(t *testing.T) {
	systems := NewPipeline().Systems()
	if len(systems) != 12 {
		t.Fatalf("expected 12 systems, got %d", len(systems))
	}
	if _, ok := systems[0].(*PlayerControlSystem); !ok {
		t.Fatalf("first system is %T", systems[0])
	}
	if _, ok := systems[2].(*CameraSystem); !ok {
		t.Fatalf("camera must follow player movement, got %T", systems[2])
	}
	if _, ok := systems[len(systems)-1].(*CooldownSystem); !ok {
		t.Fatalf("cooldown must run last, got %T", systems[len(systems)-1])
	}
}
