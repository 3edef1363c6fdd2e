package sim

// Cue names a fire-and-forget sound.
type Cue string

const (
	CueJump      Cue = "jump"
	CueShoot     Cue = "shoot"
	CueExplosive Cue = "explosive"
)

// CuePlayer plays sound cues. Implementations must not block.
type CuePlayer interface {
	Play(cue Cue)
}

type nopCues struct{}

func (nopCues) Play(Cue) {}

// RecordingCues keeps every cue it is asked to play.
type RecordingCues struct {
	Played []Cue
}

func (r *RecordingCues) Play(cue Cue) {
	r.Played = append(r.Played, cue)
}
