package component

import "github.com/milk9111/platformer/common"

type AIState uint8

const (
	AIPatrol AIState = iota
	AIIdle
	AIAttack
)

func (s AIState) String() string {
	switch s {
	case AIPatrol:
		return "patrol"
	case AIIdle:
		return "idle"
	case AIAttack:
		return "attack"
	}
	return "unknown"
}

// AI is the per-hostile controller state.
type AI struct {
	State       AIState
	Idling      bool
	IdleTimer   int
	MoveCount   int
	Vision      common.Rect
	VisionW     float64
	VisionH     float64
	VisionAhead float64
	// IdleChance is N in a 1-in-N chance per frame to start idling; <= 0 disables it.
	IdleChance int
	IdleFrames int
	// TurnAfter is how many patrol steps are taken before turning around.
	TurnAfter int
}

var AIComponent = NewComponent[AI]()
