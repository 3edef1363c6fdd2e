package tileworld

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/levels"
)

type SpawnKind uint8

const (
	SpawnDecoration SpawnKind = iota + 1
	SpawnPlayer
	SpawnHostile
	SpawnAmmo
	SpawnExplosive
	SpawnHealth
	SpawnExit
)

func (k SpawnKind) String() string {
	switch k {
	case SpawnDecoration:
		return "decoration"
	case SpawnPlayer:
		return "player"
	case SpawnHostile:
		return "hostile"
	case SpawnAmmo:
		return "ammo"
	case SpawnExplosive:
		return "explosive"
	case SpawnHealth:
		return "health"
	case SpawnExit:
		return "exit"
	}
	return "unknown"
}

// Spawn marks a non-solid cell that becomes an entity. X and Y are the
// cell's top-left corner.
type Spawn struct {
	Kind SpawnKind
	Code int
	Col  int
	Row  int
	X    float64
	Y    float64
}

// Build turns a grid into collision geometry plus the list of entity spawns.
// A level without exactly one player spawn or without an exit is rejected.
func Build(level int, g levels.Grid, tileSize float64) (*TileWorld, []Spawn, error) {
	if err := g.Validate(level, 0, 0); err != nil {
		return nil, nil, err
	}

	space := cp.NewSpace()
	tw := &TileWorld{
		level:    level,
		rows:     g.Rows(),
		cols:     g.Cols(),
		tileSize: tileSize,
		space:    space,
	}

	var spawns []Spawn
	players, exits := 0, 0
	for row, cells := range g {
		for col, code := range cells {
			if code == levels.Empty {
				continue
			}
			x, y := float64(col)*tileSize, float64(row)*tileSize
			if levels.IsObstacle(code) {
				rect := common.NewRect(x, y, tileSize, tileSize)
				shape := space.AddShape(cp.NewBox2(space.StaticBody, toBB(rect), 0))
				shape.UserData = len(tw.obstacles)
				tw.obstacles = append(tw.obstacles, Obstacle{Code: code, Col: col, Row: row, Rect: rect})
				tw.rects = append(tw.rects, rect)
				continue
			}

			kind := spawnKind(code)
			switch kind {
			case SpawnPlayer:
				players++
				if players > 1 {
					return nil, nil, &levels.LoadError{Level: level, Row: row, Col: col, Reason: "duplicate player spawn"}
				}
			case SpawnExit:
				exits++
			}
			spawns = append(spawns, Spawn{Kind: kind, Code: code, Col: col, Row: row, X: x, Y: y})
		}
	}

	if players == 0 {
		return nil, nil, &levels.LoadError{Level: level, Row: -1, Col: -1, Reason: "missing player spawn"}
	}
	if exits == 0 {
		return nil, nil, &levels.LoadError{Level: level, Row: -1, Col: -1, Reason: "missing exit"}
	}
	return tw, spawns, nil
}

func spawnKind(code int) SpawnKind {
	switch {
	case levels.IsDecoration(code):
		return SpawnDecoration
	case code == levels.PlayerSpawn:
		return SpawnPlayer
	case code == levels.HostileSpawn:
		return SpawnHostile
	case code == levels.AmmoBox:
		return SpawnAmmo
	case code == levels.ExplosiveBox:
		return SpawnExplosive
	case code == levels.HealthBox:
		return SpawnHealth
	case code == levels.Exit:
		return SpawnExit
	}
	return 0
}
