package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ProjectileSystem flies projectiles and resolves what they hit. A
// projectile leaving the screen or touching a solid tile is removed without
// damage. Otherwise it damages at most one unit, checking the player first
// and then hostiles in spawn order.
type ProjectileSystem struct{}

func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

func (s *ProjectileSystem) Update(w *ecs.World, ctx *Context) {
	player, hasPlayer := findPlayer(w)
	hs := hostiles(w)

	ecs.ForEach3(w, component.ProjectileComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, p *component.Projectile, t *component.Transform, c *component.Collider) {
		t.X += p.Facing * p.Speed
		box := component.Bounds(t, c)

		if ctx.ScreenX(box.Right()) < 0 || ctx.ScreenX(box.Left()) > ctx.Config.ScreenWidth {
			w.Kill(e)
			return
		}
		if ctx.Tiles != nil && ctx.Tiles.OverlapsAny(box) {
			w.Kill(e)
			return
		}

		owner := ecs.Entity(p.Owner)
		if hasPlayer && player.unit.Alive && player.e != owner && player.box().Intersects(box) {
			ApplyDamage(w, player.e, p.PlayerDamage, "projectile")
			w.Kill(e)
			return
		}
		for _, h := range hs {
			if h.unit.Alive && h.e != owner && h.box().Intersects(box) {
				ApplyDamage(w, h.e, p.HostileDamage, "projectile")
				w.Kill(e)
				return
			}
		}
	})
}
