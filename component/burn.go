package component

import "github.com/ashenfell/brawlarc/core"

// BurnComponent is an active damage-over-time effect. Each pulse is a fresh
// attack instance so periodic damage is not swallowed by hit dedup.
type BurnComponent struct {
	Source       core.Entity
	DamagePerSec int64
	TicksLeft    uint32

	// Interval between pulses and ticks until the next one
	PulseInterval uint32
	PulseIn       uint32
}
