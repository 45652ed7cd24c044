package component

import "github.com/ashenfell/brawlarc/core"

// HitKind labels damage events for presentation and charge accounting.
type HitKind uint8

const (
	HitLight HitKind = iota
	HitHeavy
	HitProjectile
	HitSplash
	HitBurn
)

// HitboxComponent is an active attack shape. The shape follows the owner's
// transform at OffsetX/OffsetY unless the hitbox entity has its own velocity
// (projectiles). InstanceID deduplicates repeat overlap: each (instance,
// target) pair lands at most one damage event.
type HitboxComponent struct {
	Shape            Shape
	OffsetX, OffsetY int64
	Owner            core.Entity
	InstanceID       uint64
	Damage           int64
	Kind             HitKind

	// Active window in absolute ticks, inclusive
	ActiveFrom  uint64
	ActiveUntil uint64

	// FollowOwner anchors the shape to the owner position each step
	FollowOwner bool
}

// ActiveAt reports whether the hitbox can land hits at the given tick.
func (h *HitboxComponent) ActiveAt(tick uint64) bool {
	return tick >= h.ActiveFrom && tick <= h.ActiveUntil
}
