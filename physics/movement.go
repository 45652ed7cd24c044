package physics

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/vmath"
)

// Integrate advances a transform by one fixed step using semi-implicit
// Euler: velocity is considered already updated for the step, then position
// integrates the new velocity. dt is the step length in Q32.32 seconds.
func Integrate(tf *component.TransformComponent, dt int64) {
	tf.PosX += vmath.Mul(tf.VelX, dt)
	tf.PosY += vmath.Mul(tf.VelY, dt)
}

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(velX, velY *int64, maxSpeed int64) bool {
	magSq := vmath.MagnitudeSq(*velX, *velY)
	maxSq := vmath.Mul(maxSpeed, maxSpeed)

	if magSq > maxSq {
		mag := vmath.Sqrt(magSq)
		if mag == 0 {
			return false
		}
		scale := vmath.Div(maxSpeed, mag)
		*velX = vmath.Mul(*velX, scale)
		*velY = vmath.Mul(*velY, scale)
		return true
	}
	return false
}
