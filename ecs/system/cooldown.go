package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CooldownSystem counts every unit's shot cooldown down by one frame.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World, _ *Context) {
	ecs.ForEach(w, component.UnitComponent.Kind(), func(_ ecs.Entity, u *component.Unit) {
		if u.Cooldown > 0 {
			u.Cooldown--
		}
	})
}
