package render

import "github.com/hajimehoshi/ebiten/v2"

// Registry caches images by key. Keys that failed to load are remembered
// so callers can fall back without retrying every frame.
type Registry struct {
	images  map[string]*ebiten.Image
	missing map[string]bool
}

func NewRegistry() *Registry {
	return &Registry{images: map[string]*ebiten.Image{}, missing: map[string]bool{}}
}

// Register stores an image by key.
func (r *Registry) Register(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	r.images[key] = img
	delete(r.missing, key)
}

// Get returns a cached image by key.
func (r *Registry) Get(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return r.images[key]
}

func (r *Registry) markMissing(key string) {
	r.missing[key] = true
}

func (r *Registry) isMissing(key string) bool {
	return r.missing[key]
}

// Reset drops every cached image.
func (r *Registry) Reset() {
	clear(r.images)
	clear(r.missing)
}
