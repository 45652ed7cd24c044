package component

// HitMemoryComponent is the per-target dedup registry: attack-instance ids
// that already landed on this entity, mapped to the tick the entry may be
// dropped. Scoping the iframe marker to the instance id lets distinct
// activations (a DOT pulse, a second swing) land while a persisting overlap
// from one swing cannot multi-hit.
type HitMemoryComponent struct {
	Seen map[uint64]uint64
}

// Registered reports whether the instance already hit this target.
func (m *HitMemoryComponent) Registered(instance uint64) bool {
	_, ok := m.Seen[instance]
	return ok
}

// Register records an instance hit, dropping the entry after expireTick.
func (m *HitMemoryComponent) Register(instance, expireTick uint64) {
	if m.Seen == nil {
		m.Seen = make(map[uint64]uint64, 4)
	}
	m.Seen[instance] = expireTick
}

// Expire removes entries past the given tick.
func (m *HitMemoryComponent) Expire(tick uint64) {
	for id, expiry := range m.Seen {
		if tick > expiry {
			delete(m.Seen, id)
		}
	}
}
