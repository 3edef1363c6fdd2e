package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ExitSystem flags the level complete while the living player overlaps an
// exit marker.
type ExitSystem struct{}

func NewExitSystem() *ExitSystem {
	return &ExitSystem{}
}

func (s *ExitSystem) Update(w *ecs.World, ctx *Context) {
	player, ok := findPlayer(w)
	if !ok || !player.unit.Alive {
		return
	}
	target := player.box()
	for _, e := range w.Query(component.ExitTagComponent.Kind(), component.TransformComponent.Kind(), component.ColliderComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		c, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		if component.Bounds(t, c).Intersects(target) {
			if !ctx.LevelComplete {
				w.Events().Push(ecs.Event{Type: EventLevelComplete, Entity: player.e})
			}
			ctx.LevelComplete = true
			return
		}
	}
}
