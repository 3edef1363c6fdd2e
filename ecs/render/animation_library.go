package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/assets"
	"github.com/milk9111/platformer/ecs/component"
)

// AnimationLibrary maps a unit type and animation state to frame images.
type AnimationLibrary struct {
	provider assets.Provider
	loader   *ImageLoader
	clips    map[string][]assets.Frame
}

func NewAnimationLibrary(provider assets.Provider, loader *ImageLoader) *AnimationLibrary {
	return &AnimationLibrary{provider: provider, loader: loader, clips: make(map[string][]assets.Frame)}
}

func (l *AnimationLibrary) frames(unitType string, state component.AnimState) []assets.Frame {
	key := unitType + "/" + state.String()
	if frames, ok := l.clips[key]; ok {
		return frames
	}
	var frames []assets.Frame
	if l.provider != nil {
		if anim, err := l.provider.Animation(unitType, state.String()); err == nil {
			frames = anim.Frames
		}
	}
	l.clips[key] = frames
	return frames
}

// Frame returns the image for one animation frame, or nil when the unit
// has no images.
func (l *AnimationLibrary) Frame(unitType string, state component.AnimState, frame int) *ebiten.Image {
	if l == nil || l.loader == nil {
		return nil
	}
	frames := l.frames(unitType, state)
	if frame < 0 || frame >= len(frames) || frames[frame].Path == "" {
		return nil
	}
	return l.loader.Lookup(frames[frame].Path)
}
