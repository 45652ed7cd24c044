package component

import "github.com/ashenfell/brawlarc/core"

// AIComponent drives a hostile unit: seek the target, swing when in range.
// Target is generation-checked; a dead target simply idles the controller.
type AIComponent struct {
	Target core.Entity

	// ReactionLeft delays the first action after spawn
	ReactionLeft uint32

	// Difficulty scales damage with wave number (Q32.32 multiplier)
	Difficulty int64
}
