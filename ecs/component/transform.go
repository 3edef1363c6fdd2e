package component

import "github.com/milk9111/platformer/common"

// Transform is the top-left corner of an entity's box in world space.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()

// Collider is the size of an entity's axis-aligned box.
type Collider struct {
	W float64
	H float64
}

var ColliderComponent = NewComponent[Collider]()

// Bounds returns the world-space box for an entity.
func Bounds(t *Transform, c *Collider) common.Rect {
	return common.NewRect(t.X, t.Y, c.W, c.H)
}
