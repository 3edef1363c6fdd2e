package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ScreenSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type GridSpec struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type ParallaxSpec struct {
	Name   string  `yaml:"name"`
	Factor float64 `yaml:"factor"`
}

type BlastSpec struct {
	Enabled     bool    `yaml:"enabled"`
	RadiusTiles float64 `yaml:"radius_tiles"`
	Damage      int     `yaml:"damage"`
	Frames      int     `yaml:"frames"`
	FrameTicks  int     `yaml:"frame_ticks"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
}

type GameSpec struct {
	Name                string         `yaml:"name"`
	Screen              ScreenSpec     `yaml:"screen"`
	Grid                GridSpec       `yaml:"grid"`
	FPS                 int            `yaml:"fps"`
	Gravity             float64        `yaml:"gravity"`
	ScrollThresh        float64        `yaml:"scroll_thresh"`
	MaxLevels           int            `yaml:"max_levels"`
	AnimationFrameTicks int            `yaml:"animation_frame_ticks"`
	Seed                uint64         `yaml:"seed"`
	FadeSpeed           int            `yaml:"fade_speed"`
	Parallax            []ParallaxSpec `yaml:"parallax"`
	Blast               BlastSpec      `yaml:"blast"`
}

// TileSize is the edge of one square tile in pixels.
func (g GameSpec) TileSize() float64 {
	if g.Grid.Rows <= 0 {
		return 0
	}
	return g.Screen.Height / float64(g.Grid.Rows)
}

// PlaceholderSpec gives native frame sizes and counts for a unit when no
// images are available.
type PlaceholderSpec struct {
	Width  int            `yaml:"width"`
	Height int            `yaml:"height"`
	Frames map[string]int `yaml:"frames"`
}

type AISpec struct {
	VisionWidth  float64 `yaml:"vision_width"`
	VisionHeight float64 `yaml:"vision_height"`
	IdleChance   int     `yaml:"idle_chance"`
	IdleFrames   int     `yaml:"idle_frames"`
	TurnAfter    int     `yaml:"turn_after"`
}

type UnitSpec struct {
	Name          string          `yaml:"name"`
	Type          string          `yaml:"type"`
	Scale         float64         `yaml:"scale"`
	Speed         float64         `yaml:"speed"`
	Health        int             `yaml:"health"`
	Ammo          int             `yaml:"ammo"`
	Explosives    int             `yaml:"explosives"`
	ShootCooldown int             `yaml:"shoot_cooldown"`
	JumpSpeed     float64         `yaml:"jump_speed"`
	Placeholder   PlaceholderSpec `yaml:"placeholder"`
	AI            *AISpec         `yaml:"ai"`
}

type ProjectileSpec struct {
	Speed         float64 `yaml:"speed"`
	SpawnOffset   float64 `yaml:"spawn_offset"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PlayerDamage  int     `yaml:"player_damage"`
	HostileDamage int     `yaml:"hostile_damage"`
}

type ExplosiveSpec struct {
	Speed         float64 `yaml:"speed"`
	ThrowSpeed    float64 `yaml:"throw_speed"`
	Timer         int     `yaml:"timer"`
	SpawnOffset   float64 `yaml:"spawn_offset"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PlayerDamage  int     `yaml:"player_damage"`
	HostileDamage int     `yaml:"hostile_damage"`
}

type WeaponsSpec struct {
	Name       string         `yaml:"name"`
	Projectile ProjectileSpec `yaml:"projectile"`
	Explosive  ExplosiveSpec  `yaml:"explosive"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type ItemSpec struct {
	Amount int     `yaml:"amount"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PickupsSpec struct {
	Name       string              `yaml:"name"`
	Items      map[string]ItemSpec `yaml:"items"`
	Exit       SizeSpec            `yaml:"exit"`
	Decoration SizeSpec            `yaml:"decoration"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadPlayerSpec() (*UnitSpec, error) {
	spec, err := LoadSpec[UnitSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadEnemySpec() (*UnitSpec, error) {
	spec, err := LoadSpec[UnitSpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}
	if spec.AI == nil {
		return nil, fmt.Errorf("prefabs: enemy.yaml: missing ai section")
	}
	return &spec, nil
}

func LoadWeaponsSpec() (*WeaponsSpec, error) {
	spec, err := LoadSpec[WeaponsSpec]("weapons.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func LoadPickupsSpec() (*PickupsSpec, error) {
	spec, err := LoadSpec[PickupsSpec]("pickups.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Bundle is every spec the simulation needs.
type Bundle struct {
	Game    *GameSpec
	Player  *UnitSpec
	Enemy   *UnitSpec
	Weapons *WeaponsSpec
	Pickups *PickupsSpec
}

func LoadBundle() (*Bundle, error) {
	var b Bundle
	var err error
	if b.Game, err = LoadGameSpec(); err != nil {
		return nil, err
	}
	if b.Player, err = LoadPlayerSpec(); err != nil {
		return nil, err
	}
	if b.Enemy, err = LoadEnemySpec(); err != nil {
		return nil, err
	}
	if b.Weapons, err = LoadWeaponsSpec(); err != nil {
		return nil, err
	}
	if b.Pickups, err = LoadPickupsSpec(); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

func (b *Bundle) Validate() error {
	var errs []error
	check := func(ok bool, what string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidSpec, what))
		}
	}
	g := b.Game
	check(g.Screen.Width > 0 && g.Screen.Height > 0, "game.yaml screen size must be positive")
	check(g.Grid.Rows > 0 && g.Grid.Cols > 0, "game.yaml grid must be positive")
	check(g.MaxLevels > 0, "game.yaml max_levels must be positive")
	check(g.AnimationFrameTicks > 0, "game.yaml animation_frame_ticks must be positive")
	for _, u := range []*UnitSpec{b.Player, b.Enemy} {
		check(u.Health > 0, u.Name+".yaml health must be positive")
		check(u.Scale > 0, u.Name+".yaml scale must be positive")
		check(u.Placeholder.Width > 0 && u.Placeholder.Height > 0, u.Name+".yaml placeholder size must be positive")
	}
	for _, name := range []string{"ammo", "explosive", "health"} {
		_, ok := b.Pickups.Items[name]
		check(ok, "pickups.yaml missing item "+name)
	}
	check(b.Weapons.Projectile.Width > 0 && b.Weapons.Explosive.Width > 0, "weapons.yaml sizes must be positive")
	return errors.Join(errs...)
}
