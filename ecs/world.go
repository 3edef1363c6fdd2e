package ecs

import (
	"fmt"
	"slices"

	"github.com/milk9111/platformer/ecs/component"
)

// Kind identifies a component store. Every component.ComponentKind satisfies it.
type Kind interface {
	ID() component.ComponentID
}

// World owns entities and their components. Entities are never removed in
// the middle of a frame: Kill marks them and Compact removes everything that
// was marked.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	marked   map[Entity]struct{}
	pending  []Entity
	events   EventQueue
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores: make(map[component.ComponentID]*sparseSet),
		marked: make(map[Entity]struct{}),
	}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes the entity and all of its components immediately.
func (w *World) DestroyEntity(e Entity) bool {
	if !w.entities.isAlive(e) {
		return false
	}
	for _, store := range w.stores {
		store.remove(e.id())
	}
	delete(w.marked, e)
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Kill marks e for removal at the next Compact. Marked entities are skipped
// by queries for the rest of the frame but their components stay readable.
func (w *World) Kill(e Entity) {
	if !w.IsAlive(e) {
		return
	}
	if _, ok := w.marked[e]; ok {
		return
	}
	w.marked[e] = struct{}{}
	w.pending = append(w.pending, e)
}

// Killed reports whether e has been marked by Kill and not yet compacted.
func (w *World) Killed(e Entity) bool {
	_, ok := w.marked[e]
	return ok
}

// Compact destroys every entity marked by Kill and returns how many were
// removed.
func (w *World) Compact() int {
	removed := 0
	for _, e := range w.pending {
		if w.DestroyEntity(e) {
			removed++
		}
	}
	w.pending = w.pending[:0]
	clear(w.marked)
	return removed
}

// Entities returns every live entity in slot order.
func (w *World) Entities() []Entity {
	out := make([]Entity, 0, w.entities.count)
	for i := range w.entities.gens {
		if e, ok := w.entities.handle(entityID(i + 1)); ok {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.entities.count
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Query returns the entities that carry every given kind and are not marked
// for removal, ordered by slot id so iteration is deterministic.
func (w *World) Query(kinds ...Kind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*sparseSet, 0, len(kinds))
	for _, k := range kinds {
		s, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		sets = append(sets, s)
	}
	slices.SortFunc(sets, func(a, b *sparseSet) int { return a.len() - b.len() })

	ids := make([]entityID, 0, sets[0].len())
	for _, id := range sets[0].dense {
		match := true
		for _, s := range sets[1:] {
			if !s.has(id) {
				match = false
				break
			}
		}
		if match {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		e, ok := w.entities.handle(id)
		if !ok || w.Killed(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func (w *World) addComponent(e Entity, kind Kind, value any) error {
	if !w.IsAlive(e) {
		return component.ErrEntityNotAlive
	}
	if kind.ID() == 0 {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		store = &sparseSet{}
		w.stores[kind.ID()] = store
	}
	store.set(e.id(), value)
	return nil
}

func (w *World) component(e Entity, kind Kind) (any, bool) {
	if !w.IsAlive(e) {
		return nil, false
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return nil, false
	}
	return store.get(e.id())
}

func (w *World) removeComponent(e Entity, kind Kind) bool {
	if !w.IsAlive(e) {
		return false
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return false
	}
	return store.remove(e.id())
}

func (w *World) String() string {
	return fmt.Sprintf("World{entities: %d, stores: %d, pending: %d}", w.entities.count, len(w.stores), len(w.pending))
}
