package component

// BossComponent escalates a boss through phases at health fractions.
// Phase is 1-based; each transition raises the damage scalar.
type BossComponent struct {
	Phase       int
	PhaseCount  int
	DamageScale int64 // Q32.32, grows per phase
}
