package engine

import (
	"fmt"
	"reflect"

	"github.com/ashenfell/brawlarc/core"
	"github.com/ashenfell/brawlarc/event"
	"github.com/ashenfell/brawlarc/vmath"
)

// ResourceStore holds singleton resources keyed by type. Registration
// happens during setup; lookups after that are read-only.
type ResourceStore struct {
	items map[reflect.Type]any
}

func NewResourceStore() *ResourceStore {
	return &ResourceStore{items: make(map[reflect.Type]any)}
}

// AddResource registers a resource by its concrete type
func AddResource[T any](rs *ResourceStore, res T) {
	rs.items[reflect.TypeOf(res)] = res
}

// GetResource returns the registered resource of type T
func GetResource[T any](rs *ResourceStore) (T, bool) {
	var zero T
	v, ok := rs.items[reflect.TypeOf(zero)]
	if !ok {
		return zero, false
	}
	return v.(T), true
}

// MustGetResource returns the resource of type T or panics; setup-time only
func MustGetResource[T any](rs *ResourceStore) T {
	v, ok := GetResource[T](rs)
	if !ok {
		var zero T
		panic(fmt.Sprintf("missing resource %T", zero))
	}
	return v
}

// === World resources ===

// TimeResource carries the current tick for systems. Updated by the
// scheduler at the start of every step; everything downstream counts ticks,
// never wall-clock time.
type TimeResource struct {
	Tick uint64
}

// ArenaResource is the static playfield extent in Q32.32 units.
type ArenaResource struct {
	Width  int64
	Height int64
}

// SessionResource is the explicit session context threaded through systems:
// wave progress, economy, phase. Keeping it a resource rather than ambient
// globals lets each system be unit-tested in isolation.
type SessionResource struct {
	Phase      core.SessionPhase
	Wave       int
	Score      int64
	Currency   int64
	Player     core.Entity
	PlayerChar int

	// Wave director bookkeeping
	WaveActive  bool
	SpawnBudget int
	BossActive  bool
	SpawnTimer  uint32

	// HUD flags
	ShopOpen    bool
	ShowDetails bool

	// Rng is the single deterministic randomness source for the session
	Rng *vmath.FastRand

	nextInstance uint64
}

// NextInstance returns a fresh attack-instance id. Monotonic within a
// session; instance ids are the dedup key for repeated-hit prevention.
func (s *SessionResource) NextInstance() uint64 {
	s.nextInstance++
	return s.nextInstance
}

// EventQueueResource wraps the event queue for systems access.
type EventQueueResource struct {
	Queue *event.EventQueue
}

// InputResource is the per-step view of drained intents. The intent system
// refreshes it at the top of every step; later systems read it.
//
// Movement is level-triggered: the held direction latches until a Move
// intent with a zero direction arrives. Frames and steps run at different
// rates, so a step without a fresh Move intent must keep the stick state
// rather than read it as released. Everything else is edge-triggered and
// lives for one step.
type InputResource struct {
	MoveX, MoveY int64
	Moved        bool

	Light   bool
	Heavy   bool
	Special bool
	Ability bool
	Confirm bool

	Purchases []int
}

// ResetStep clears the one-shot flags ahead of a new drain. The latched
// movement direction survives; only a zero-direction Move intent ends it.
func (in *InputResource) ResetStep() {
	in.Light, in.Heavy, in.Special, in.Ability, in.Confirm = false, false, false, false, false
	in.Purchases = in.Purchases[:0]
}
