package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// newUnit creates the parts shared by the player and hostiles. The unit is
// sized from its first idle frame and centered on (cx, cy).
func (f *Factory) newUnit(w *ecs.World, spec *prefabs.UnitSpec, team component.Team, cx, cy float64) (_ ecs.Entity, err error) {
	anim := &component.Animation{State: component.AnimIdle, FrameTicks: f.specs.Game.AnimationFrameTicks}
	var width, height float64
	for _, state := range component.AnimStates() {
		frames, err := f.assets.Animation(spec.Type, state.String())
		if err != nil {
			return 0, fmt.Errorf("%s: load %s animation: %w", spec.Name, state, err)
		}
		anim.Lengths[state] = frames.Len()
		if state == component.AnimIdle {
			nw, nh := frames.Size()
			width, height = float64(nw)*spec.Scale, float64(nh)*spec.Scale
		}
	}

	box := common.RectFromCenter(cx, cy, width, height)
	e := ecs.CreateEntity(w)
	defer discardOnError(w, e, &err)
	if err := addTag(w, e, component.KindUnit, -1); err != nil {
		return 0, err
	}
	if err := addBox(w, e, component.KindUnit, box.X, box.Y, box.W, box.H); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.UnitComponent.Kind(), &component.Unit{
		Team:        team,
		Type:        spec.Type,
		Health:      spec.Health,
		MaxHealth:   spec.Health,
		Ammo:        spec.Ammo,
		Explosives:  spec.Explosives,
		Speed:       spec.Speed,
		Facing:      1,
		Alive:       true,
		CooldownMax: spec.ShootCooldown,
	}); err != nil {
		return 0, fmt.Errorf("%s: add unit: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.BodyComponent.Kind(), &component.Body{}); err != nil {
		return 0, fmt.Errorf("%s: add body: %w", spec.Name, err)
	}
	if err := ecs.Add(w, e, component.AnimationComponent.Kind(), anim); err != nil {
		return 0, fmt.Errorf("%s: add animation: %w", spec.Name, err)
	}
	return e, nil
}

// Player spawns the player centered on the given point.
func (f *Factory) Player(w *ecs.World, cx, cy float64) (_ ecs.Entity, err error) {
	spec := f.specs.Player
	e, err := f.newUnit(w, spec, component.TeamPlayer, cx, cy)
	if err != nil {
		return 0, err
	}
	defer discardOnError(w, e, &err)
	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerControlComponent.Kind(), &component.PlayerControl{JumpSpeed: spec.JumpSpeed}); err != nil {
		return 0, fmt.Errorf("player: add control: %w", err)
	}
	return e, nil
}

// Hostile spawns an enemy centered on the given point.
func (f *Factory) Hostile(w *ecs.World, cx, cy float64) (_ ecs.Entity, err error) {
	spec := f.specs.Enemy
	e, err := f.newUnit(w, spec, component.TeamHostile, cx, cy)
	if err != nil {
		return 0, err
	}
	defer discardOnError(w, e, &err)
	if err := ecs.Add(w, e, component.HostileTagComponent.Kind(), &component.HostileTag{}); err != nil {
		return 0, fmt.Errorf("enemy: add tag: %w", err)
	}

	ai := spec.AI
	turnAfter := ai.TurnAfter
	if turnAfter <= 0 {
		turnAfter = int(f.TileSize())
	}
	if err := ecs.Add(w, e, component.AIComponent.Kind(), &component.AI{
		State:       component.AIPatrol,
		VisionW:     ai.VisionWidth,
		VisionH:     ai.VisionHeight,
		VisionAhead: ai.VisionWidth / 2,
		Vision:      common.RectFromCenter(cx+ai.VisionWidth/2, cy, ai.VisionWidth, ai.VisionHeight),
		IdleChance:  ai.IdleChance,
		IdleFrames:  ai.IdleFrames,
		TurnAfter:   turnAfter,
	}); err != nil {
		return 0, fmt.Errorf("enemy: add ai: %w", err)
	}
	return e, nil
}
