package component

// EntityKind tags every entity with the variant it represents.
type EntityKind uint8

const (
	KindUnit EntityKind = iota + 1
	KindProjectile
	KindExplosive
	KindExplosion
	KindPickup
	KindExit
	KindDecoration
)

func (k EntityKind) String() string {
	switch k {
	case KindUnit:
		return "unit"
	case KindProjectile:
		return "projectile"
	case KindExplosive:
		return "explosive"
	case KindExplosion:
		return "explosion"
	case KindPickup:
		return "pickup"
	case KindExit:
		return "exit"
	case KindDecoration:
		return "decoration"
	}
	return "unknown"
}

type Tag struct {
	Kind EntityKind
	// Code is the tile code the entity was spawned from, or -1.
	Code int
}

var TagComponent = NewComponent[Tag]()
