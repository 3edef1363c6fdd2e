package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CameraSystem scrolls the view when the player walks into the threshold
// band near either screen edge and the level still has room in that
// direction. While scrolling the player stays fixed on screen.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Update(w *ecs.World, ctx *Context) {
	if u, ok := findPlayer(w); ok && u.unit.Alive && ctx.Tiles != nil {
		dx := ctx.PlayerDX
		box := u.box()
		left, right := ctx.ScreenX(box.Left()), ctx.ScreenX(box.Right())
		width := ctx.Config.ScreenWidth
		thresh := ctx.Config.ScrollThresh

		forward := right > width-thresh && ctx.CameraX < ctx.Tiles.LevelWidth()-width
		back := left < thresh && ctx.CameraX > math.Abs(dx)
		if forward || back {
			ctx.Scroll = -dx
			ctx.CameraX += dx
		}
	}

	ecs.ForEach(w, component.BackgroundComponent.Kind(), func(_ ecs.Entity, bg *component.Background) {
		bg.Offset = -ctx.CameraX * bg.Factor
	})
}
