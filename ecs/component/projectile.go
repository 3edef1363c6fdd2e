package component

// Projectile flies horizontally without gravity.
type Projectile struct {
	Speed  float64
	Facing float64
	// Owner is the raw handle of the unit that fired it.
	Owner         uint64
	PlayerDamage  int
	HostileDamage int
}

var ProjectileComponent = NewComponent[Projectile]()
