package common

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter builds a rect of size w*h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectFromMidBottom builds a rect whose bottom edge is centered on (cx, bottom).
func RectFromMidBottom(cx, bottom, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: bottom - h, W: w, H: h}
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Right() float64 { return r.X + r.W }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports strict overlap. Rects that only share an edge do not
// intersect, and empty rects never intersect anything.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W &&
		o.X < r.X+r.W &&
		r.Y < o.Y+o.H &&
		o.Y < r.Y+r.H
}
