package component

// HurtboxComponent is the damageable shape of an entity, centered on its
// transform plus offset.
type HurtboxComponent struct {
	Shape            Shape
	OffsetX, OffsetY int64
}
