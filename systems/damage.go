package systems

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/core"
)

// DamageEvent is one pending hit. Collector systems append; the resolve
// pass applies the whole batch at once so simultaneous hits on the same
// target all land against the same starting health.
type DamageEvent struct {
	Attacker core.Entity
	Target   core.Entity
	Amount   int64 // Q32.32
	Kind     component.HitKind
	Instance uint64

	// Contact point for presentation
	X, Y int64
}

// DamageBatch accumulates damage events over one step. Single-threaded by
// construction: only systems on the simulation goroutine touch it.
type DamageBatch struct {
	Events []DamageEvent
}

func NewDamageBatch() *DamageBatch {
	return &DamageBatch{Events: make([]DamageEvent, 0, 32)}
}

// Append queues one damage event for the resolve pass.
func (b *DamageBatch) Append(ev DamageEvent) {
	b.Events = append(b.Events, ev)
}

// Reset clears the batch, keeping capacity.
func (b *DamageBatch) Reset() {
	b.Events = b.Events[:0]
}
