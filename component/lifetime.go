package component

// LifetimeComponent expires an entity after a fixed number of ticks.
// Expiry requests destruction; the cull pass applies it at tick end.
type LifetimeComponent struct {
	TicksLeft uint32
}
