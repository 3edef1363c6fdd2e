package system

import (
	"math/rand/v2"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/tileworld"
)

// Input is the set of intents sampled once per frame.
type Input struct {
	MoveLeft  bool
	MoveRight bool
	// Jump is true on the frame the jump key goes down.
	Jump bool
	// Shoot is true while the fire key is held.
	Shoot bool
	// Explosive is true while the throw key is held.
	Explosive bool
}

type Blast struct {
	Enabled bool
	Radius  float64
	Damage  int
}

type Config struct {
	ScreenWidth  float64
	ScreenHeight float64
	TileSize     float64
	Gravity      float64
	ScrollThresh float64
	Blast        Blast
}

// Spawner creates the short-lived entities systems need mid-frame.
type Spawner interface {
	Projectile(w *ecs.World, owner ecs.Entity, from common.Rect, facing float64) (ecs.Entity, error)
	Explosive(w *ecs.World, owner ecs.Entity, from common.Rect, facing float64) (ecs.Entity, error)
	Explosion(w *ecs.World, cx, cy float64) (ecs.Entity, error)
}

// Context is the per-frame simulation state shared by every system. The
// camera system is the only writer of Scroll and CameraX.
type Context struct {
	Config Config
	Tiles  *tileworld.TileWorld
	Spawn  Spawner
	Rand   *rand.Rand
	Input  Input
	Frame  int

	// CameraX is the world x shown at the left screen edge.
	CameraX float64
	// Scroll is the screen shift applied this frame (the negated camera move).
	Scroll float64
	// PlayerDX is the player's resolved horizontal move this frame.
	PlayerDX      float64
	LevelComplete bool
}

// BeginFrame clears the per-frame outputs.
func (c *Context) BeginFrame(in Input) {
	c.Input = in
	c.Scroll = 0
	c.PlayerDX = 0
	c.LevelComplete = false
}

// ScreenX converts a world x to screen space.
func (c *Context) ScreenX(x float64) float64 {
	return x - c.CameraX
}

func (c *Context) obstacles() []common.Rect {
	if c.Tiles == nil {
		return nil
	}
	return c.Tiles.Rects()
}
