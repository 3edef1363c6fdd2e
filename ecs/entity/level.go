package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/tileworld"
)

// LoadLevelToWorld creates an entity for every spawn marker and returns the
// player. Units are centered on the top-left corner of their cell.
func LoadLevelToWorld(w *ecs.World, f *Factory, spawns []tileworld.Spawn) (ecs.Entity, error) {
	if err := f.Backgrounds(w); err != nil {
		return 0, err
	}

	var player ecs.Entity
	for _, s := range spawns {
		var err error
		var e ecs.Entity
		switch s.Kind {
		case tileworld.SpawnPlayer:
			e, err = f.Player(w, s.X, s.Y)
			player = e
		case tileworld.SpawnHostile:
			_, err = f.Hostile(w, s.X, s.Y)
		case tileworld.SpawnAmmo:
			_, err = f.Pickup(w, component.PickupAmmo, s.Code, s.X, s.Y)
		case tileworld.SpawnExplosive:
			_, err = f.Pickup(w, component.PickupExplosive, s.Code, s.X, s.Y)
		case tileworld.SpawnHealth:
			_, err = f.Pickup(w, component.PickupHealth, s.Code, s.X, s.Y)
		case tileworld.SpawnExit:
			_, err = f.Exit(w, s.Code, s.X, s.Y)
		case tileworld.SpawnDecoration:
			_, err = f.Decoration(w, s.Code, s.X, s.Y)
		}
		if err != nil {
			return 0, fmt.Errorf("level: spawn %s at row %d col %d: %w", s.Kind, s.Row, s.Col, err)
		}
	}
	if !player.Valid() {
		return 0, fmt.Errorf("level: no player spawned")
	}
	return player, nil
}
