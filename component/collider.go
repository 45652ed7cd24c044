package component

// ColliderComponent is a solid body resolved against arena bounds and other
// solids by the physics pass. Non-solid entities (projectiles, markers) skip
// body-vs-body resolution and only clamp to the arena.
type ColliderComponent struct {
	Shape Shape
	Solid bool
}
