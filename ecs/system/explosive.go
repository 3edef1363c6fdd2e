package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ExplosiveSystem moves thrown explosives. They fall under gravity, turn
// around when they hit a wall or a screen edge, and stop rolling once they
// touch a floor or ceiling. An explosive touching a unit, its thrower
// included, damages it and is removed; otherwise it is removed when its timer runs out, detonating when
// blasts are enabled.
type ExplosiveSystem struct{}

func NewExplosiveSystem() *ExplosiveSystem {
	return &ExplosiveSystem{}
}

func (s *ExplosiveSystem) Update(w *ecs.World, ctx *Context) {
	player, hasPlayer := findPlayer(w)
	hs := hostiles(w)
	obstacles := ctx.obstacles()

	ents := w.Query(component.ExplosiveComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), component.BodyComponent.Kind())
	for _, e := range ents {
		ex, _ := ecs.Get(w, e, component.ExplosiveComponent.Kind())
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		b, _ := ecs.Get(w, e, component.BodyComponent.Kind())

		box := component.Bounds(t, c)
		b.VelY += ctx.Config.Gravity
		dx := ex.Facing * ex.Speed
		dy := b.VelY

		for _, o := range obstacles {
			if o.Intersects(box.Offset(dx, 0)) {
				ex.Facing = -ex.Facing
				dx = ex.Facing * ex.Speed
			}
		}
		for _, o := range obstacles {
			if !o.Intersects(box.Offset(0, dy)) {
				continue
			}
			ex.Speed = 0
			ex.Settled = true
			if b.VelY < 0 {
				b.VelY = 0
				dy = o.Bottom() - box.Top()
			} else {
				b.VelY = 0
				dy = o.Top() - box.Bottom()
			}
		}

		left := ctx.ScreenX(box.Left())
		if left+box.W+dx < 0 || left+dx > ctx.Config.ScreenWidth {
			ex.Facing = -ex.Facing
			dx = ex.Facing * ex.Speed
		}

		t.X += dx
		t.Y += dy
		box = component.Bounds(t, c)

		if hasPlayer && player.unit.Alive && player.box().Intersects(box) {
			ApplyDamage(w, player.e, ex.PlayerDamage, "explosive")
			w.Kill(e)
			continue
		}
		hit := false
		for _, h := range hs {
			if h.unit.Alive && h.box().Intersects(box) {
				ApplyDamage(w, h.e, ex.HostileDamage, "explosive")
				hit = true
				break
			}
		}
		if hit {
			w.Kill(e)
			continue
		}

		ex.Timer--
		if ex.Timer <= 0 {
			w.Kill(e)
			if ctx.Config.Blast.Enabled {
				detonate(w, ctx, e, box.CenterX(), box.CenterY())
			}
		}
	}
}

// detonate spawns the blast visual and damages every living unit whose
// center is within the blast radius on both axes.
func detonate(w *ecs.World, ctx *Context, source ecs.Entity, cx, cy float64) {
	if ctx.Spawn != nil {
		_, _ = ctx.Spawn.Explosion(w, cx, cy)
	}
	w.Events().Push(ecs.Event{Type: EventDetonate, Entity: source})

	r := ctx.Config.Blast.Radius
	inRange := func(u unitRef) bool {
		box := u.box()
		return math.Abs(box.CenterX()-cx) < r && math.Abs(box.CenterY()-cy) < r
	}
	if player, ok := findPlayer(w); ok && player.unit.Alive && inRange(player) {
		ApplyDamage(w, player.e, ctx.Config.Blast.Damage, "blast")
	}
	for _, h := range hostiles(w) {
		if h.unit.Alive && inRange(h) {
			ApplyDamage(w, h.e, ctx.Config.Blast.Damage, "blast")
		}
	}
}

// ExplosionSystem plays out blast visuals and removes them when done.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Update(w *ecs.World, _ *Context) {
	ecs.ForEach(w, component.ExplosionComponent.Kind(), func(e ecs.Entity, ex *component.Explosion) {
		ex.Tick++
		if ex.Tick < ex.FrameTicks {
			return
		}
		ex.Tick = 0
		ex.Frame++
		if ex.Frame >= ex.Frames {
			w.Kill(e)
		}
	})
}
