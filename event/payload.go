package event

import "github.com/ashenfell/brawlarc/core"

// GameEvent is one queued event with the tick it was produced on.
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    uint64
}

// HitPayload describes one resolved damage event.
type HitPayload struct {
	Attacker core.Entity
	Target   core.Entity
	Amount   int64 // Q32.32
	Kind     uint8
	X, Y     int64
}

// KillPayload describes a death resolved this tick.
type KillPayload struct {
	Victim  core.Entity
	Killer  core.Entity
	Faction core.Faction
	Reward  int64
}

// AbilityPayload describes a special-move activation.
type AbilityPayload struct {
	Caster   core.Entity
	Kind     uint8
	Instance uint64
}

// WavePayload carries wave director announcements.
type WavePayload struct {
	Wave  int
	Boss  bool
	Phase int
}

// PurchaseRejection explains a refused transaction.
type PurchaseRejection uint8

const (
	PurchaseOK PurchaseRejection = iota
	RejectInsufficientCurrency
	RejectPurchaseCap
	RejectInvalidSlot
	RejectWrongPhase
)

// PurchasePayload reports a shop transaction outcome to the presentation
// layer; rejected purchases leave all state unchanged.
type PurchasePayload struct {
	Slot     int
	Accepted bool
	Reason   PurchaseRejection
	Cost     int64
	Balance  int64
}
