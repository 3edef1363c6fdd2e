package entity

import (
	"fmt"

	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// cellBox centers a w*h box horizontally on the cell at (x, y) and rests it
// on the cell's bottom edge.
func (f *Factory) cellBox(x, y, w, h float64) common.Rect {
	size := f.TileSize()
	return common.RectFromMidBottom(x+size/2, y+size, w, h)
}

var pickupNames = map[component.PickupKind]string{
	component.PickupAmmo:      "ammo",
	component.PickupExplosive: "explosive",
	component.PickupHealth:    "health",
}

// Pickup spawns an item box in the cell whose top-left corner is (x, y).
func (f *Factory) Pickup(w *ecs.World, kind component.PickupKind, code int, x, y float64) (_ ecs.Entity, err error) {
	item, ok := f.specs.Pickups.Items[pickupNames[kind]]
	if !ok {
		return 0, fmt.Errorf("pickup: no spec for %s", kind)
	}
	box := f.cellBox(x, y, item.Width, item.Height)

	e := ecs.CreateEntity(w)
	defer discardOnError(w, e, &err)
	if err := addTag(w, e, component.KindPickup, code); err != nil {
		return 0, err
	}
	if err := addBox(w, e, component.KindPickup, box.X, box.Y, box.W, box.H); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PickupComponent.Kind(), &component.Pickup{Kind: kind, Amount: item.Amount}); err != nil {
		return 0, fmt.Errorf("pickup: add pickup: %w", err)
	}
	return e, nil
}

// Exit spawns the level exit marker.
func (f *Factory) Exit(w *ecs.World, code int, x, y float64) (ecs.Entity, error) {
	return f.marker(w, component.KindExit, f.specs.Pickups.Exit, code, x, y)
}

// Decoration spawns a non-colliding prop.
func (f *Factory) Decoration(w *ecs.World, code int, x, y float64) (ecs.Entity, error) {
	return f.marker(w, component.KindDecoration, f.specs.Pickups.Decoration, code, x, y)
}

func (f *Factory) marker(w *ecs.World, kind component.EntityKind, size prefabs.SizeSpec, code int, x, y float64) (_ ecs.Entity, err error) {
	box := f.cellBox(x, y, size.Width, size.Height)
	e := ecs.CreateEntity(w)
	defer discardOnError(w, e, &err)
	if err := addTag(w, e, kind, code); err != nil {
		return 0, err
	}
	if err := addBox(w, e, kind, box.X, box.Y, box.W, box.H); err != nil {
		return 0, err
	}
	switch kind {
	case component.KindExit:
		err = ecs.Add(w, e, component.ExitTagComponent.Kind(), &component.ExitTag{})
	default:
		err = ecs.Add(w, e, component.DecorationTagComponent.Kind(), &component.DecorationTag{})
	}
	if err != nil {
		return 0, fmt.Errorf("%s: add tag: %w", kind, err)
	}
	return e, nil
}

// Backgrounds creates one entity per parallax layer.
func (f *Factory) Backgrounds(w *ecs.World) error {
	for _, layer := range f.specs.Game.Parallax {
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.BackgroundComponent.Kind(), &component.Background{Name: layer.Name, Factor: layer.Factor}); err != nil {
			w.DestroyEntity(e)
			return fmt.Errorf("background: add %s: %w", layer.Name, err)
		}
	}
	return nil
}
