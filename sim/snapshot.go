package sim

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/tileworld"
)

type Status uint8

const (
	StatusPlaying Status = iota
	StatusDead
	StatusGameComplete
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusDead:
		return "dead"
	case StatusGameComplete:
		return "complete"
	}
	return "unknown"
}

// Drawable is a read-only view of one entity for the renderer.
type Drawable struct {
	Entity   ecs.Entity
	Kind     component.EntityKind
	Code     int
	UnitType string
	X, Y     float64
	W, H     float64
	// ScreenX is X shifted by the camera.
	ScreenX float64
	Facing  float64
	Anim    component.AnimState
	Frame   int
	Alive   bool
}

type Layer struct {
	Name   string
	Offset float64
}

type HUD struct {
	Health     int
	MaxHealth  int
	Ammo       int
	Explosives int
}

type Snapshot struct {
	Frame     int
	Level     int
	Status    Status
	CameraX   float64
	Scroll    float64
	Obstacles []tileworld.Obstacle
	Drawables []Drawable
	Parallax  []Layer
	HUD       HUD
}

// Snapshot captures the current frame. Obstacles is shared with the tile
// world and must not be modified.
func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{Frame: s.frame, Level: s.level, Status: s.status}
	if s.world == nil {
		return snap
	}
	snap.CameraX = s.ctx.CameraX
	snap.Scroll = s.ctx.Scroll
	if s.tiles != nil {
		snap.Obstacles = s.tiles.Obstacles()
	}

	w := s.world
	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(_ ecs.Entity, bg *component.Background) {
		snap.Parallax = append(snap.Parallax, Layer{Name: bg.Name, Offset: bg.Offset})
	})

	for _, e := range w.Query(component.TagComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind()) {
		tag, _ := ecs.Get(w, e, component.TagComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		d := Drawable{
			Entity:  e,
			Kind:    tag.Kind,
			Code:    tag.Code,
			X:       t.X,
			Y:       t.Y,
			W:       c.W,
			H:       c.H,
			ScreenX: s.ctx.ScreenX(t.X),
			Facing:  1,
			Alive:   true,
		}
		if u, ok := ecs.Get(w, e, component.UnitComponent.Kind()); ok {
			d.UnitType = u.Type
			d.Facing = u.Facing
			d.Alive = u.Alive
			if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
				snap.HUD = HUD{Health: u.Health, MaxHealth: u.MaxHealth, Ammo: u.Ammo, Explosives: u.Explosives}
			}
		}
		if p, ok := ecs.Get(w, e, component.ProjectileComponent.Kind()); ok {
			d.Facing = p.Facing
		}
		if ex, ok := ecs.Get(w, e, component.ExplosiveComponent.Kind()); ok {
			d.Facing = ex.Facing
		}
		if a, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
			d.Anim = a.State
			d.Frame = a.Frame
		}
		if ex, ok := ecs.Get(w, e, component.ExplosionComponent.Kind()); ok {
			d.Frame = ex.Frame
		}
		snap.Drawables = append(snap.Drawables, d)
	}
	return snap
}
