package ecs

// System runs once per frame. C is the per-frame context shared by every
// system in a schedule.
type System[C any] interface {
	Update(w *World, ctx C)
}

type Scheduler[C any] struct {
	systems []System[C]
}

func NewScheduler[C any](systems ...System[C]) *Scheduler[C] {
	copied := append([]System[C](nil), systems...)
	return &Scheduler[C]{systems: copied}
}

func (s *Scheduler[C]) Add(system System[C]) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system in registration order.
func (s *Scheduler[C]) Update(w *World, ctx C) {
	for _, system := range s.systems {
		system.Update(w, ctx)
	}
}

func (s *Scheduler[C]) Systems() []System[C] {
	systems := make([]System[C], 0, len(s.systems))
	return append(systems, s.systems...)
}
