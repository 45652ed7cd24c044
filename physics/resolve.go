package physics

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/parameter"
	"github.com/ashenfell/brawlarc/vmath"
)

// ResolvePair separates two overlapping solid bodies. Each receives half of
// the positional correction and has its velocity projected off the contact
// normal so the pair does not re-penetrate next step. Resolving an already
// separated pair changes nothing.
func ResolvePair(a, b *component.TransformComponent, sa, sb component.Shape) bool {
	contact, ok := Overlap(a.PosX, a.PosY, sa, b.PosX, b.PosY, sb)
	if !ok {
		return false
	}
	depth := contact.Penetration - parameter.PenetrationSlop
	if depth <= 0 {
		return false
	}

	correction := vmath.Mul(depth, parameter.CorrectionPercent)
	half := correction >> 1
	a.PosX -= vmath.Mul(contact.NormalX, half)
	a.PosY -= vmath.Mul(contact.NormalY, half)
	b.PosX += vmath.Mul(contact.NormalX, half)
	b.PosY += vmath.Mul(contact.NormalY, half)

	// Project velocities off the normal: remove only the approaching part
	if dot := vmath.DotProduct(a.VelX, a.VelY, contact.NormalX, contact.NormalY); dot > 0 {
		a.VelX -= vmath.Mul(contact.NormalX, dot)
		a.VelY -= vmath.Mul(contact.NormalY, dot)
	}
	if dot := vmath.DotProduct(b.VelX, b.VelY, -contact.NormalX, -contact.NormalY); dot > 0 {
		b.VelX -= vmath.Mul(-contact.NormalX, dot)
		b.VelY -= vmath.Mul(-contact.NormalY, dot)
	}
	return true
}

// ClampToArena keeps a body inside the arena rectangle, zeroing the
// velocity component pointing out of bounds.
func ClampToArena(tf *component.TransformComponent, shape component.Shape, width, height int64) {
	extX, extY := shapeExtent(shape)

	if tf.PosX < extX {
		tf.PosX = extX
		if tf.VelX < 0 {
			tf.VelX = 0
		}
	} else if tf.PosX > width-extX {
		tf.PosX = width - extX
		if tf.VelX > 0 {
			tf.VelX = 0
		}
	}
	if tf.PosY < extY {
		tf.PosY = extY
		if tf.VelY < 0 {
			tf.VelY = 0
		}
	} else if tf.PosY > height-extY {
		tf.PosY = height - extY
		if tf.VelY > 0 {
			tf.VelY = 0
		}
	}
}

func shapeExtent(shape component.Shape) (int64, int64) {
	if shape.Kind == component.ShapeCircle {
		return shape.Radius, shape.Radius
	}
	return shape.HalfW, shape.HalfH
}
