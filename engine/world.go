package engine

import (
	"sync"

	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/parameter"
)

// World owns all entity state: the slot allocator, the typed component
// stores and the resource singletons. Destruction is deferred; requesting it
// tags the entity and the cull pass recycles slots at the tick boundary, so
// every system within a step observes a stable entity set.
type World struct {
	mu     sync.RWMutex
	alloc  *allocator
	stores []storeEraser

	Components ComponentStore
	Resources  *ResourceStore

	systems []System

	eventQueue *event.EventQueue
	tickSource *TimeResource
}

// NewWorld creates a world with the default entity capacity.
func NewWorld() *World {
	return NewWorldWithCapacity(parameter.MaxEntities)
}

// NewWorldWithCapacity creates a world with an explicit slot budget.
func NewWorldWithCapacity(capacity int) *World {
	w := &World{
		alloc:     newAllocator(capacity),
		Resources: NewResourceStore(),
		systems:   make([]System, 0, 16),
	}
	w.Components, w.stores = newComponentStore()
	for _, s := range w.stores {
		s.bindAlive(w.Alive)
	}
	return w
}

// CreateEntity reserves a handle. Returns NullEntity and false when the
// slot budget is exhausted; callers drop the spawn rather than fail.
func (w *World) CreateEntity() (core.Entity, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	e := w.alloc.Allocate()
	return e, !e.IsNull()
}

// Alive reports whether a handle is current. Stale generations are dead.
func (w *World) Alive(e core.Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.alloc.Alive(e)
}

// DestroyEntity requests deferred destruction. The entity stays visible to
// every system until the cull pass at tick end. Stale handles are no-ops.
func (w *World) DestroyEntity(e core.Entity) {
	if !w.Alive(e) {
		return
	}
	w.Components.Deaths.Add(e, component.DeathComponent{})
}

// FreeDead recycles every entity tagged for death, detaching it from all
// stores and bumping its slot generation. Called by the cull system.
func (w *World) FreeDead() []core.Entity {
	dead := w.Components.Deaths.All()
	for _, e := range dead {
		w.freeEntity(e)
	}
	return dead
}

func (w *World) freeEntity(e core.Entity) {
	for _, s := range w.stores {
		s.Remove(e)
	}
	w.mu.Lock()
	w.alloc.Free(e)
	w.mu.Unlock()
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.alloc.Live()
}

// Clear removes all entities, components and queued deaths.
func (w *World) Clear() {
	w.mu.Lock()
	w.alloc.Reset()
	w.mu.Unlock()
	for _, s := range w.stores {
		s.Clear()
	}
}

// AddSystem registers a system, keeping the slice sorted by priority.
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of the registered systems in run order.
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs all systems once in priority order.
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// SetEventMetadata wires the direct pointers used by PushEvent.
func (w *World) SetEventMetadata(q *event.EventQueue, t *TimeResource) {
	w.eventQueue = q
	w.tickSource = t
}

// PushEvent emits a game event stamped with the current tick.
// This is the hot path for all system communication.
func (w *World) PushEvent(eventType event.EventType, payload any) {
	if w.eventQueue == nil {
		return
	}
	var tick uint64
	if w.tickSource != nil {
		tick = w.tickSource.Tick
	}
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Tick:    tick,
	})
}
