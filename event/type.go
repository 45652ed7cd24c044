package event

// EventType identifies a game event. Events are the simulation's only side
// channel: systems push, the scheduler drains once per tick and forwards
// presentation-relevant ones with the snapshot.
type EventType int

const (
	// EventHitLanded reports one resolved damage event
	// Producer: resolve pass | Payload: *HitPayload
	EventHitLanded EventType = iota + 1

	// EventEntityKilled reports a death resolved this tick
	// Producer: resolve pass | Payload: *KillPayload
	EventEntityKilled

	// EventAbilityActivated reports a special move firing
	// Producer: ability system | Payload: *AbilityPayload
	EventAbilityActivated

	// EventWaveStarted announces a new wave
	// Producer: wave director | Payload: *WavePayload
	EventWaveStarted

	// EventWaveCompleted announces wave clear and shop entry
	// Producer: wave director | Payload: *WavePayload
	EventWaveCompleted

	// EventBossSpawned announces a boss encounter
	// Producer: wave director | Payload: *WavePayload
	EventBossSpawned

	// EventBossPhase announces a boss phase escalation
	// Producer: resolve pass | Payload: *WavePayload
	EventBossPhase

	// EventPurchaseResolved reports a shop transaction outcome
	// Producer: shop system | Payload: *PurchasePayload
	EventPurchaseResolved

	// EventSessionEnded reports player death
	// Producer: resolve pass | Payload: nil
	EventSessionEnded
)
