package system

// Event types pushed to the world queue.
const (
	EventJump          = "jump"
	EventShoot         = "shoot"
	EventThrow         = "explosive"
	EventDamage        = "damage"
	EventDeath         = "death"
	EventRemoved       = "removed"
	EventPickup        = "pickup"
	EventDetonate      = "detonate"
	EventLevelComplete = "level_complete"
)

type DamageEvent struct {
	Amount int
	Health int
	Source string
}

type PickupEvent struct {
	Kind   string
	Amount int
}
