package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PickupSystem applies item boxes the living player touches. Each box is
// removed on its first pickup.
type PickupSystem struct{}

func NewPickupSystem() *PickupSystem {
	return &PickupSystem{}
}

func (s *PickupSystem) Update(w *ecs.World, _ *Context) {
	player, ok := findPlayer(w)
	if !ok || !player.unit.Alive {
		return
	}
	target := player.box()

	ecs.ForEach3(w, component.PickupComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind(), func(e ecs.Entity, p *component.Pickup, t *component.Transform, c *component.Collider) {
		if !component.Bounds(t, c).Intersects(target) {
			return
		}
		u := player.unit
		switch p.Kind {
		case component.PickupHealth:
			u.Health = common.Clamp(u.Health+p.Amount, 0, u.MaxHealth)
		case component.PickupAmmo:
			u.Ammo += p.Amount
		case component.PickupExplosive:
			u.Explosives += p.Amount
		}
		w.Kill(e)
		w.Events().Push(ecs.Event{Type: EventPickup, Entity: e, Data: PickupEvent{Kind: p.Kind.String(), Amount: p.Amount}})
	})
}
