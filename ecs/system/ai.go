package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AISystem runs the hostile controllers. Each frame a hostile either attacks
// a player inside its vision box, starts or continues idling, or patrols
// back and forth around its spawn.
type AISystem struct{}

func NewAISystem() *AISystem {
	return &AISystem{}
}

func (s *AISystem) Update(w *ecs.World, ctx *Context) {
	player, ok := findPlayer(w)
	if !ok || !player.unit.Alive {
		return
	}
	target := player.box()

	for _, h := range hostiles(w) {
		if !h.unit.Alive {
			continue
		}
		ai, ok := ecs.Get(w, h.e, component.AIComponent.Kind())
		if !ok {
			continue
		}
		body, ok := ecs.Get(w, h.e, component.BodyComponent.Kind())
		if !ok {
			continue
		}
		anim, _ := ecs.Get(w, h.e, component.AnimationComponent.Kind())

		updateVision(ai, h)
		dx := 0.0
		state := decide(ai, ctx, ai.Vision.Intersects(target))
		ai.State = state
		switch state {
		case component.AIAttack:
			Shoot(w, ctx, h.e)
		case component.AIPatrol:
			dx = h.unit.Facing * h.unit.Speed
		}
		h.unit.Moving = dx != 0

		m := Advance(h.t, h.c, body, dx, ctx.Config.Gravity, ctx.obstacles())
		if m.HitWall {
			h.unit.Facing = -h.unit.Facing
			ai.MoveCount = 0
		}
		if state == component.AIPatrol {
			ai.MoveCount++
			if ai.MoveCount > ai.TurnAfter {
				h.unit.Facing = -h.unit.Facing
				ai.MoveCount = -ai.MoveCount
			}
		}
		updateVision(ai, h)

		if anim != nil {
			anim.Set(animFor(state))
		}
	}
}

// decide picks this frame's controller state. The frame an idle starts
// counts toward its length.
func decide(ai *component.AI, ctx *Context, sees bool) component.AIState {
	switch {
	case sees:
		return component.AIAttack
	case !ai.Idling && ai.IdleChance > 0 && ctx.Rand != nil && ctx.Rand.IntN(ai.IdleChance) == 0:
		ai.Idling = true
		ai.IdleTimer = ai.IdleFrames
		fallthrough
	case ai.Idling:
		ai.IdleTimer--
		if ai.IdleTimer <= 0 {
			ai.Idling = false
		}
		return component.AIIdle
	}
	return component.AIPatrol
}

func animFor(s component.AIState) component.AnimState {
	switch s {
	case component.AIAttack:
		return component.AnimAttack
	case component.AIIdle:
		return component.AnimIdle
	case component.AIPatrol:
		return component.AnimMove
	}
	return component.AnimIdle
}

func updateVision(ai *component.AI, h unitRef) {
	box := h.box()
	ai.Vision = common.RectFromCenter(box.CenterX()+ai.VisionAhead*h.unit.Facing, box.CenterY(), ai.VisionW, ai.VisionH)
}
