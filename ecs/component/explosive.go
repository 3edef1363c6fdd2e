package component

// Explosive is a thrown charge that bounces off walls until its timer runs out.
type Explosive struct {
	Speed         float64
	Facing        float64
	Timer         int
	PlayerDamage  int
	HostileDamage int
	Settled       bool
}

var ExplosiveComponent = NewComponent[Explosive]()

// Explosion is the short-lived blast left behind when blasts are enabled.
type Explosion struct {
	Frame      int
	Frames     int
	Tick       int
	FrameTicks int
}

var ExplosionComponent = NewComponent[Explosion]()
