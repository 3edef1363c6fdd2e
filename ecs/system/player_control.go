package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// PlayerControlSystem turns the frame's input into facing, queued jumps,
// shots and throws. A held fire key wins over a throw.
type PlayerControlSystem struct{}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{}
}

func (s *PlayerControlSystem) Update(w *ecs.World, ctx *Context) {
	ecs.ForEach2(w, component.PlayerControlComponent.Kind(), component.UnitComponent.Kind(), func(e ecs.Entity, pc *component.PlayerControl, unit *component.Unit) {
		in := ctx.Input
		if !in.Explosive {
			pc.Thrown = false
		}
		if !unit.Alive {
			pc.MoveLeft, pc.MoveRight, pc.JumpQueued = false, false, false
			return
		}

		pc.MoveLeft = in.MoveLeft
		pc.MoveRight = in.MoveRight
		if in.MoveLeft {
			unit.Facing = -1
		}
		if in.MoveRight {
			unit.Facing = 1
		}
		if in.Jump {
			pc.JumpQueued = true
		}

		switch {
		case in.Shoot:
			Shoot(w, ctx, e)
		case in.Explosive && !pc.Thrown:
			if Throw(w, ctx, e) {
				pc.Thrown = true
			}
		}
	})
}
