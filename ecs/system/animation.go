package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationSystem advances animation frames. Death holds on its last frame;
// a hostile is removed once its death animation has finished.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (s *AnimationSystem) Update(w *ecs.World, _ *Context) {
	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		if anim.Done {
			return
		}
		anim.Tick++
		if anim.Tick < max(anim.FrameTicks, 1) {
			return
		}
		anim.Tick = 0
		anim.Frame++
		if anim.Frame < anim.Length(anim.State) {
			return
		}

		switch anim.State {
		case component.AnimDeath:
			anim.Frame = anim.Length(anim.State) - 1
			anim.Done = true
			if ecs.Has(w, e, component.HostileTagComponent.Kind()) {
				w.Kill(e)
				w.Events().Push(ecs.Event{Type: EventRemoved, Entity: e})
			}
		case component.AnimIdle, component.AnimMove, component.AnimJump, component.AnimAttack:
			anim.Frame = 0
		}
	})
}
