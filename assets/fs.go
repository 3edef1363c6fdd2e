package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sync"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var frameExts = []string{".png", ".bmp", ".webp"}

// FSProvider discovers frames laid out as Root/<type>/<animation>/<i>.<ext>,
// numbered from 0 without gaps. Only image headers are decoded.
type FSProvider struct {
	FS   fs.FS
	Root string

	mu    sync.Mutex
	cache map[string]Animation
}

func NewFSProvider(fsys fs.FS, root string) *FSProvider {
	return &FSProvider{FS: fsys, Root: root, cache: make(map[string]Animation)}
}

func (p *FSProvider) Animation(unitType, name string) (Animation, error) {
	key := unitType + "/" + name
	p.mu.Lock()
	defer p.mu.Unlock()
	if anim, ok := p.cache[key]; ok {
		return anim, nil
	}
	if p.cache == nil {
		p.cache = make(map[string]Animation)
	}

	dir := path.Join(p.Root, unitType, name)
	anim := Animation{UnitType: unitType, Name: name}
	for i := 0; ; i++ {
		frame, ok, err := p.frame(dir, i)
		if err != nil {
			return Animation{}, err
		}
		if !ok {
			break
		}
		anim.Frames = append(anim.Frames, frame)
	}
	if len(anim.Frames) == 0 {
		return Animation{}, &AssetMissingError{UnitType: unitType, Animation: name, Path: dir}
	}
	p.cache[key] = anim
	return anim, nil
}

func (p *FSProvider) frame(dir string, i int) (Frame, bool, error) {
	for _, ext := range frameExts {
		name := path.Join(dir, fmt.Sprintf("%d%s", i, ext))
		f, err := p.FS.Open(name)
		if err != nil {
			continue
		}
		cfg, _, err := image.DecodeConfig(f)
		_ = f.Close()
		if err != nil {
			return Frame{}, false, fmt.Errorf("assets: decode %s: %w", name, err)
		}
		return Frame{Path: name, Width: cfg.Width, Height: cfg.Height}, true, nil
	}
	return Frame{}, false, nil
}
