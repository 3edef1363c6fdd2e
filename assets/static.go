package assets

import "fmt"

// StaticUnit describes placeholder frames for one unit type.
type StaticUnit struct {
	Type   string
	Width  int
	Height int
	Frames map[string]int
}

// StaticProvider serves fixed-size placeholder frames, for running without
// image files.
type StaticProvider struct {
	units map[string]StaticUnit
}

func NewStaticProvider(units ...StaticUnit) *StaticProvider {
	p := &StaticProvider{units: make(map[string]StaticUnit, len(units))}
	for _, u := range units {
		p.units[u.Type] = u
	}
	return p
}

func (p *StaticProvider) Animation(unitType, name string) (Animation, error) {
	u, ok := p.units[unitType]
	if !ok {
		return Animation{}, &AssetMissingError{UnitType: unitType, Animation: name}
	}
	n := u.Frames[name]
	if n <= 0 {
		return Animation{}, &AssetMissingError{UnitType: unitType, Animation: name}
	}
	anim := Animation{UnitType: unitType, Name: name, Frames: make([]Frame, n)}
	for i := range anim.Frames {
		anim.Frames[i] = Frame{
			Path:   fmt.Sprintf("static:%s/%s/%d", unitType, name, i),
			Width:  u.Width,
			Height: u.Height,
		}
	}
	return anim, nil
}
