package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerMovementSystem moves the player through the kinematic body and keeps
// it inside the screen.
type PlayerMovementSystem struct{}

func NewPlayerMovementSystem() *PlayerMovementSystem {
	return &PlayerMovementSystem{}
}

func (s *PlayerMovementSystem) Update(w *ecs.World, ctx *Context) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	u, ok := lookupUnit(w, player)
	if !ok || !u.unit.Alive {
		return
	}
	pc, ok := ecs.Get(w, player, component.PlayerControlComponent.Kind())
	if !ok {
		return
	}
	body, ok := ecs.Get(w, player, component.BodyComponent.Kind())
	if !ok {
		return
	}

	dx := 0.0
	if pc.MoveLeft {
		dx = -u.unit.Speed
	}
	if pc.MoveRight {
		dx = u.unit.Speed
	}
	u.unit.Moving = pc.MoveLeft || pc.MoveRight

	if pc.JumpQueued && body.Grounded {
		body.VelY = -pc.JumpSpeed
		body.Grounded = false
		pc.JumpQueued = false
		w.Events().Push(ecs.Event{Type: EventJump, Entity: player})
	}

	box := u.box()
	m := Resolve(box, body, dx, ctx.Config.Gravity, ctx.obstacles())

	left := ctx.ScreenX(box.Left())
	if left+m.DX < 0 || left+box.W+m.DX > ctx.Config.ScreenWidth {
		m.DX = 0
	}
	Apply(u.t, m)
	ctx.PlayerDX = m.DX

	if anim, ok := ecs.Get(w, player, component.AnimationComponent.Kind()); ok {
		switch {
		case !body.Grounded:
			anim.Set(component.AnimJump)
		case u.unit.Moving:
			anim.Set(component.AnimMove)
		default:
			anim.Set(component.AnimIdle)
		}
	}
}
