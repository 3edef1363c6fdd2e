package render

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ImageLoader decodes images from an asset filesystem and caches them.
type ImageLoader struct {
	fsys fs.FS
	reg  *Registry
}

// NewImageLoader reads from fsys. A nil fsys never finds anything.
func NewImageLoader(fsys fs.FS) *ImageLoader {
	return &ImageLoader{fsys: fsys, reg: NewRegistry()}
}

// Load loads an image and caches it by key.
func (l *ImageLoader) Load(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := l.reg.Get(key); img != nil {
		return img, nil
	}
	if l.fsys == nil {
		return nil, fmt.Errorf("render: no asset filesystem for %s", key)
	}
	b, err := fs.ReadFile(l.fsys, key)
	if err != nil {
		return nil, fmt.Errorf("render: read %s: %w", key, err)
	}
	im, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("render: decode %s: %w", key, err)
	}
	img := ebiten.NewImageFromImage(im)
	l.reg.Register(key, img)
	return img, nil
}

// Lookup is Load for the draw path: it returns nil for images that cannot
// be loaded and stops trying them.
func (l *ImageLoader) Lookup(key string) *ebiten.Image {
	if l.reg.isMissing(key) {
		return nil
	}
	img, err := l.Load(key)
	if err != nil {
		l.reg.markMissing(key)
		return nil
	}
	return img
}

// Flush forgets every cached image, for example after the asset directory
// changed on disk.
func (l *ImageLoader) Flush() {
	l.reg.Reset()
}
