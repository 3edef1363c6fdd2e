package component

type PickupKind uint8

const (
	PickupAmmo PickupKind = iota + 1
	PickupExplosive
	PickupHealth
)

func (k PickupKind) String() string {
	switch k {
	case PickupAmmo:
		return "ammo"
	case PickupExplosive:
		return "explosive"
	case PickupHealth:
		return "health"
	}
	return "unknown"
}

type Pickup struct {
	Kind   PickupKind
	Amount int
}

var PickupComponent = NewComponent[Pickup]()
