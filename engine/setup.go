package engine

import (
	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/status"
	"github.com/ashenfell/brawlarc/vmath"
)

// NewSimulationWorld builds a world with the full resource set registered:
// time, session (seeded rng), arena bounds, event queue, intent queue,
// per-step input view and the status registry. Systems are registered by
// the caller; the scheduler afterwards.
func NewSimulationWorld(seed uint64) *World {
	w := NewWorld()

	timeRes := &TimeResource{}
	eq := event.NewEventQueue()

	AddResource(w.Resources, timeRes)
	AddResource(w.Resources, &SessionResource{
		Rng: vmath.NewFastRand(seed),
	})
	AddResource(w.Resources, &ArenaResource{
		Width:  parameter.ArenaWidth,
		Height: parameter.ArenaHeight,
	})
	AddResource(w.Resources, &EventQueueResource{Queue: eq})
	AddResource(w.Resources, NewIntentQueue())
	AddResource(w.Resources, &InputResource{})
	AddResource(w.Resources, status.NewRegistry())

	w.SetEventMetadata(eq, timeRes)
	return w
}
