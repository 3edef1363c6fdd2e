package assets

import (
	"errors"
	"fmt"
)

var ErrAssetMissing = errors.New("assets: asset missing")

// AssetMissingError reports that a unit type has no frames for an animation.
type AssetMissingError struct {
	UnitType  string
	Animation string
	Path      string
}

func (e *AssetMissingError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("assets: no frames for %s/%s under %s", e.UnitType, e.Animation, e.Path)
	}
	return fmt.Sprintf("assets: no frames for %s/%s", e.UnitType, e.Animation)
}

func (e *AssetMissingError) Unwrap() error {
	return ErrAssetMissing
}

// Frame is one image of an animation. Path is an opaque handle the renderer
// uses to fetch pixels; the simulation only reads the size.
type Frame struct {
	Path   string
	Width  int
	Height int
}

type Animation struct {
	UnitType string
	Name     string
	Frames   []Frame
}

func (a Animation) Len() int {
	return len(a.Frames)
}

// Size returns the native size of the first frame.
func (a Animation) Size() (int, int) {
	if len(a.Frames) == 0 {
		return 0, 0
	}
	return a.Frames[0].Width, a.Frames[0].Height
}

// Provider resolves the ordered frames of a unit animation.
type Provider interface {
	Animation(unitType, name string) (Animation, error)
}

// Fallback asks Primary first and uses Secondary when the asset is missing.
type Fallback struct {
	Primary   Provider
	Secondary Provider
}

func (f Fallback) Animation(unitType, name string) (Animation, error) {
	anim, err := f.Primary.Animation(unitType, name)
	if err == nil || !errors.Is(err, ErrAssetMissing) || f.Secondary == nil {
		return anim, err
	}
	return f.Secondary.Animation(unitType, name)
}
