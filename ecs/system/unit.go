package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// unitRef bundles the components every unit carries.
type unitRef struct {
	e    ecs.Entity
	unit *component.Unit
	t    *component.Transform
	c    *component.Collider
}

func (u unitRef) box() common.Rect {
	return component.Bounds(u.t, u.c)
}

func lookupUnit(w *ecs.World, e ecs.Entity) (unitRef, bool) {
	unit, ok := ecs.Get(w, e, component.UnitComponent.Kind())
	if !ok {
		return unitRef{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return unitRef{}, false
	}
	c, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
	if !ok {
		return unitRef{}, false
	}
	return unitRef{e: e, unit: unit, t: t, c: c}, true
}

// findPlayer returns the player unit, alive or not.
func findPlayer(w *ecs.World) (unitRef, bool) {
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return unitRef{}, false
	}
	return lookupUnit(w, e)
}

func hostiles(w *ecs.World) []unitRef {
	ents := w.Query(component.HostileTagComponent.Kind(), component.UnitComponent.Kind())
	out := make([]unitRef, 0, len(ents))
	for _, e := range ents {
		if u, ok := lookupUnit(w, e); ok {
			out = append(out, u)
		}
	}
	return out
}

// ApplyDamage lowers health, clamped at zero, and moves the unit into its
// death state as soon as health runs out.
func ApplyDamage(w *ecs.World, e ecs.Entity, amount int, source string) {
	unit, ok := ecs.Get(w, e, component.UnitComponent.Kind())
	if !ok || !unit.Alive {
		return
	}
	unit.Health = common.Clamp(unit.Health-amount, 0, unit.MaxHealth)
	w.Events().Push(ecs.Event{Type: EventDamage, Entity: e, Data: DamageEvent{Amount: amount, Health: unit.Health, Source: source}})
	if unit.Health == 0 {
		enterDeath(w, e, unit)
	}
}

func enterDeath(w *ecs.World, e ecs.Entity, unit *component.Unit) {
	if !unit.Alive {
		return
	}
	unit.Health = 0
	unit.Speed = 0
	unit.Alive = false
	unit.Moving = false
	if anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind()); ok {
		anim.Set(component.AnimDeath)
	}
	w.Events().Push(ecs.Event{Type: EventDeath, Entity: e, Data: unit.Team.String()})
}

// Shoot fires a projectile when the unit is off cooldown and has ammo.
// Nothing changes when it cannot fire.
func Shoot(w *ecs.World, ctx *Context, e ecs.Entity) bool {
	u, ok := lookupUnit(w, e)
	if !ok || !u.unit.CanShoot() || ctx.Spawn == nil {
		return false
	}
	if _, err := ctx.Spawn.Projectile(w, e, u.box(), u.unit.Facing); err != nil {
		return false
	}
	u.unit.Cooldown = u.unit.CooldownMax
	u.unit.Ammo--
	w.Events().Push(ecs.Event{Type: EventShoot, Entity: e})
	return true
}

// Throw spends one explosive.
func Throw(w *ecs.World, ctx *Context, e ecs.Entity) bool {
	u, ok := lookupUnit(w, e)
	if !ok || !u.unit.Alive || u.unit.Explosives <= 0 || ctx.Spawn == nil {
		return false
	}
	if _, err := ctx.Spawn.Explosive(w, e, u.box(), u.unit.Facing); err != nil {
		return false
	}
	u.unit.Explosives--
	w.Events().Push(ecs.Event{Type: EventThrow, Entity: e})
	return true
}
