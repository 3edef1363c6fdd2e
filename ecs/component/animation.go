package component

type AnimState uint8

const (
	AnimIdle AnimState = iota
	AnimMove
	AnimJump
	AnimDeath
	AnimAttack
	animStateCount
)

func AnimStates() []AnimState {
	return []AnimState{AnimIdle, AnimMove, AnimJump, AnimDeath, AnimAttack}
}

// String returns the animation folder name for the state.
func (s AnimState) String() string {
	switch s {
	case AnimIdle:
		return "Idle"
	case AnimMove:
		return "Move"
	case AnimJump:
		return "Jump"
	case AnimDeath:
		return "Death"
	case AnimAttack:
		return "Attack"
	}
	return "Unknown"
}

// Animation tracks which frame of which state is shown.
type Animation struct {
	State AnimState
	Frame int
	Tick  int
	// FrameTicks is how many simulation frames each image is held.
	FrameTicks int
	Lengths    [animStateCount]int
	// Done is set once a non-looping animation has reached its last frame.
	Done bool
}

var AnimationComponent = NewComponent[Animation]()

// Set switches state and restarts from frame 0 when the state changes.
func (a *Animation) Set(s AnimState) {
	if a.State == s {
		return
	}
	a.State = s
	a.Frame = 0
	a.Tick = 0
	a.Done = false
}

func (a *Animation) Length(s AnimState) int {
	if int(s) >= len(a.Lengths) || a.Lengths[s] <= 0 {
		return 1
	}
	return a.Lengths[s]
}
