package parameter

import "time"

// Simulation clock
const (
	// TickRate is the fixed simulation rate in steps per second
	TickRate = 120

	// TickInterval is the fixed simulation delta
	TickInterval = time.Second / TickRate

	// MaxCatchUpSteps caps consecutive steps per Advance call; accumulated
	// time beyond the cap is discarded to avoid the spiral of death
	MaxCatchUpSteps = 5
)

// Entity store
const (
	// MaxEntities bounds the slot allocator; spawn requests past this are
	// dropped with a recorded warning, never an error
	MaxEntities = 1024
)

// Event queue
const (
	// EventQueueSize must be a power of two for mask indexing
	EventQueueSize  = 512
	EventBufferMask = EventQueueSize - 1
)
