package tileworld

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/platformer/common"
)

// Obstacle is one solid tile.
type Obstacle struct {
	Code int
	Col  int
	Row  int
	Rect common.Rect
}

// TileWorld is the static collision geometry of a level. It is never
// modified after Build.
type TileWorld struct {
	level     int
	rows      int
	cols      int
	tileSize  float64
	obstacles []Obstacle
	rects     []common.Rect
	space     *cp.Space
}

func (tw *TileWorld) Level() int { return tw.level }
func (tw *TileWorld) Rows() int { return tw.rows }
func (tw *TileWorld) Cols() int { return tw.cols }
func (tw *TileWorld) TileSize() float64 { return tw.tileSize }
func (tw *TileWorld) LevelWidth() float64 { return float64(tw.cols) * tw.tileSize }
func (tw *TileWorld) Height() float64 { return float64(tw.rows) * tw.tileSize }

// Obstacles returns obstacles in row-major grid order. Callers must not
// modify the slice.
func (tw *TileWorld) Obstacles() []Obstacle {
	return tw.obstacles
}

// Rects returns obstacle boxes in the same order as Obstacles.
func (tw *TileWorld) Rects() []common.Rect {
	return tw.rects
}

// OverlapsAny reports whether r strictly overlaps any obstacle.
func (tw *TileWorld) OverlapsAny(r common.Rect) bool {
	if r.Empty() || tw.space == nil {
		return false
	}
	found := false
	tw.space.BBQuery(toBB(r), cp.SHAPE_FILTER_ALL, func(shape *cp.Shape, _ interface{}) {
		if found {
			return
		}
		if idx, ok := shape.UserData.(int); ok && tw.rects[idx].Intersects(r) {
			found = true
		}
	}, nil)
	return found
}

func toBB(r common.Rect) cp.BB {
	return cp.BB{L: r.Left(), B: r.Top(), R: r.Right(), T: r.Bottom()}
}
