package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type HostileTag struct{}

var HostileTagComponent = NewComponent[HostileTag]()

// PlayerControl carries the input latches that survive between frames.
type PlayerControl struct {
	// JumpQueued is set by a jump press and consumed once the player is grounded.
	JumpQueued bool
	// Thrown is set when an explosive was thrown for the current press.
	Thrown    bool
	MoveLeft  bool
	MoveRight bool
	// JumpSpeed is the upward velocity applied on takeoff.
	JumpSpeed float64
}

var PlayerControlComponent = NewComponent[PlayerControl]()
