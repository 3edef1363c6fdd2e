package entity

import (
	"fmt"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// Factory builds entities from the loaded specs.
type Factory struct {
	specs  *prefabs.Bundle
	assets assets.Provider
}

func NewFactory(specs *prefabs.Bundle, provider assets.Provider) *Factory {
	if provider == nil {
		provider = PlaceholderProvider(specs)
	}
	return &Factory{specs: specs, assets: provider}
}

// PlaceholderProvider serves the placeholder frame sizes declared in the
// unit specs.
func PlaceholderProvider(specs *prefabs.Bundle) *assets.StaticProvider {
	units := make([]assets.StaticUnit, 0, 2)
	for _, u := range []*prefabs.UnitSpec{specs.Player, specs.Enemy} {
		units = append(units, assets.StaticUnit{
			Type:   u.Type,
			Width:  u.Placeholder.Width,
			Height: u.Placeholder.Height,
			Frames: u.Placeholder.Frames,
		})
	}
	return assets.NewStaticProvider(units...)
}

func (f *Factory) Specs() *prefabs.Bundle {
	return f.specs
}

func (f *Factory) TileSize() float64 {
	return f.specs.Game.TileSize()
}

// discardOnError destroys a partly built entity when its builder fails.
func discardOnError(w *ecs.World, e ecs.Entity, err *error) {
	if *err != nil {
		w.DestroyEntity(e)
	}
}

func addTag(w *ecs.World, e ecs.Entity, kind component.EntityKind, code int) error {
	if err := ecs.Add(w, e, component.TagComponent.Kind(), &component.Tag{Kind: kind, Code: code}); err != nil {
		return fmt.Errorf("%s: add tag: %w", kind, err)
	}
	return nil
}

func addBox(w *ecs.World, e ecs.Entity, kind component.EntityKind, x, y, width, height float64) error {
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return fmt.Errorf("%s: add transform: %w", kind, err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), &component.Collider{W: width, H: height}); err != nil {
		return fmt.Errorf("%s: add collider: %w", kind, err)
	}
	return nil
}
