package component

// DeathComponent tags an entity for the cull pass. Tagging mid-tick keeps
// the entity visible to every remaining system in the step; the slot is
// recycled only at the tick boundary.
type DeathComponent struct{}
