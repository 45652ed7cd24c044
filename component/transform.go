package component

// TransformComponent carries position and velocity in Q32.32 world units.
// Only the physics pass mutates it.
type TransformComponent struct {
	PosX, PosY int64
	VelX, VelY int64
}
