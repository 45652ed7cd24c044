package component

import "github.com/ashenfell/brawlarc/core"

// ProjectileComponent marks a thrown entity. Owner is a generation-checked
// handle: if the owner dies first, attribution degrades to a no-op instead
// of a dangling reference.
type ProjectileComponent struct {
	Owner core.Entity
}
