package component

type Team uint8

const (
	TeamPlayer Team = iota + 1
	TeamHostile
)

func (t Team) String() string {
	switch t {
	case TeamPlayer:
		return "player"
	case TeamHostile:
		return "hostile"
	}
	return "unknown"
}

// Unit holds the combat bookkeeping shared by the player and hostiles.
type Unit struct {
	Team       Team
	Type       string
	Health     int
	MaxHealth  int
	Ammo       int
	Explosives int
	Speed      float64
	// Facing is +1 (right) or -1 (left).
	Facing float64
	Alive  bool
	// Cooldown counts frames until the next shot is allowed.
	Cooldown    int
	CooldownMax int
	// Moving records whether horizontal motion was requested this frame.
	Moving bool
}

var UnitComponent = NewComponent[Unit]()

func (u *Unit) CanShoot() bool {
	return u.Alive && u.Cooldown == 0 && u.Ammo > 0
}
