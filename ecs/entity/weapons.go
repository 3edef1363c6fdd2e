package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Projectile spawns a shot ahead of the shooter's center.
func (f *Factory) Projectile(w *ecs.World, owner ecs.Entity, from common.Rect, facing float64) (_ ecs.Entity, err error) {
	spec := f.specs.Weapons.Projectile
	box := common.RectFromCenter(from.CenterX()+spec.SpawnOffset*from.W*facing, from.CenterY(), spec.Width, spec.Height)

	e := ecs.CreateEntity(w)
	defer discardOnError(w, e, &err)
	if err := addTag(w, e, component.KindProjectile, -1); err != nil {
		return 0, err
	}
	if err := addBox(w, e, component.KindProjectile, box.X, box.Y, box.W, box.H); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{
		Speed:         spec.Speed,
		Facing:        facing,
		Owner:         uint64(owner),
		PlayerDamage:  spec.PlayerDamage,
		HostileDamage: spec.HostileDamage,
	}); err != nil {
		return 0, fmt.Errorf("projectile: add projectile: %w", err)
	}
	return e, nil
}

// Explosive spawns a thrown charge centered on the thrower's top edge,
// offset in the facing direction. Explosives hit whoever they touch, so the
// thrower is not recorded.
func (f *Factory) Explosive(w *ecs.World, _ ecs.Entity, from common.Rect, facing float64) (_ ecs.Entity, err error) {
	spec := f.specs.Weapons.Explosive
	box := common.RectFromCenter(from.CenterX()+spec.SpawnOffset*from.W*facing, from.Top(), spec.Width, spec.Height)

	e := ecs.CreateEntity(w)
	defer discardOnError(w, e, &err)
	if err := addTag(w, e, component.KindExplosive, -1); err != nil {
		return 0, err
	}
	if err := addBox(w, e, component.KindExplosive, box.X, box.Y, box.W, box.H); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{VelY: -spec.ThrowSpeed}); err != nil {
		return 0, fmt.Errorf("explosive: add body: %w", err)
	}
	if err := ecs.Add(w, e, component.ExplosiveComponent.Kind(), &component.Explosive{
		Speed:         spec.Speed,
		Facing:        facing,
		Timer:         spec.Timer,
		PlayerDamage:  spec.PlayerDamage,
		HostileDamage: spec.HostileDamage,
	}); err != nil {
		return 0, fmt.Errorf("explosive: add explosive: %w", err)
	}
	return e, nil
}

// Explosion spawns a blast visual centered on (cx, cy).
func (f *Factory) Explosion(w *ecs.World, cx, cy float64) (_ ecs.Entity, err error) {
	spec := f.specs.Game.Blast
	box := common.RectFromCenter(cx, cy, spec.Width, spec.Height)

	e := ecs.CreateEntity(w)
	defer discardOnError(w, e, &err)
	if err := addTag(w, e, component.KindExplosion, -1); err != nil {
		return 0, err
	}
	if err := addBox(w, e, component.KindExplosion, box.X, box.Y, box.W, box.H); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.ExplosionComponent.Kind(), &component.Explosion{
		Frames:     max(spec.Frames, 1),
		FrameTicks: max(spec.FrameTicks, 1),
	}); err != nil {
		return 0, fmt.Errorf("explosion: add explosion: %w", err)
	}
	return e, nil
}
