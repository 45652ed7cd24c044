package component

// HealthComponent tracks hit points in Q32.32. Writes clamp Current to
// [0, Max] so the invariant holds at every step boundary.
type HealthComponent struct {
	Current int64
	Max     int64
}

// Damage subtracts amount, clamping at zero. Returns the new Current.
func (h *HealthComponent) Damage(amount int64) int64 {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
	return h.Current
}

// Heal adds amount, clamping at Max.
func (h *HealthComponent) Heal(amount int64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// RaiseMax grows the pool and heals by the same amount.
func (h *HealthComponent) RaiseMax(amount int64) {
	h.Max += amount
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

// Dead reports whether the pool is exhausted.
func (h *HealthComponent) Dead() bool {
	return h.Current <= 0
}
