package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs/component"
)

// Motion is the outcome of resolving one frame of movement.
type Motion struct {
	DX       float64
	DY       float64
	Grounded bool
	HitWall  bool
}

// Resolve integrates gravity into b and resolves the intended horizontal
// move and the resulting vertical move against obstacles, one axis at a
// time. It does not move the box.
//
// The x pass tests the box shifted by dx at its current y. The y pass tests
// the box shifted by dy at its current x, visiting obstacles in order and
// snapping to the edge of each one it hits.
func Resolve(box common.Rect, b *component.Body, dx, gravity float64, obstacles []common.Rect) Motion {
	b.VelY += gravity
	m := Motion{DX: dx, DY: b.VelY}

	for _, o := range obstacles {
		if o.Intersects(box.Offset(m.DX, 0)) {
			m.DX = 0
			m.HitWall = true
		}
	}

	for _, o := range obstacles {
		if !o.Intersects(box.Offset(0, m.DY)) {
			continue
		}
		if b.VelY < 0 {
			b.VelY = 0
			m.DY = o.Bottom() - box.Top()
		} else {
			b.VelY = 0
			m.Grounded = true
			m.DY = o.Top() - box.Bottom()
		}
	}

	b.Grounded = m.Grounded
	return m
}

// Apply moves t by a resolved motion.
func Apply(t *component.Transform, m Motion) {
	t.X += m.DX
	t.Y += m.DY
}

// Advance resolves and applies one frame of movement.
func Advance(t *component.Transform, c *component.Collider, b *component.Body, dx, gravity float64, obstacles []common.Rect) Motion {
	m := Resolve(component.Bounds(t, c), b, dx, gravity, obstacles)
	Apply(t, m)
	return m
}
