package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// HealthSystem kills units that fell below the screen and finishes any
// death transition not already started by damage.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Update(w *ecs.World, ctx *Context) {
	for _, e := range w.Query(component.UnitComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind()) {
		u, ok := lookupUnit(w, e)
		if !ok || !u.unit.Alive {
			continue
		}
		if u.box().Bottom() > ctx.Config.ScreenHeight {
			u.unit.Health = 0
		}
		if u.unit.Health <= 0 {
			enterDeath(w, e, u.unit)
		}
	}
}
