package physics

import (
	"github.com/ashenfell/brawlarc/component"
	"github.com/ashenfell/brawlarc/vmath"
)

// Contact describes one resolved overlap: penetration depth along the unit
// normal pointing from shape A toward shape B. All values Q32.32.
type Contact struct {
	Penetration int64
	NormalX     int64
	NormalY     int64
}

// Overlap tests two positioned shapes. Returns the contact and true when
// they interpenetrate.
func Overlap(ax, ay int64, a component.Shape, bx, by int64, b component.Shape) (Contact, bool) {
	switch {
	case a.Kind == component.ShapeCircle && b.Kind == component.ShapeCircle:
		return circleCircle(ax, ay, a.Radius, bx, by, b.Radius)
	case a.Kind == component.ShapeCircle && b.Kind == component.ShapeRect:
		c, ok := circleRect(ax, ay, a.Radius, bx, by, b.HalfW, b.HalfH)
		return c, ok
	case a.Kind == component.ShapeRect && b.Kind == component.ShapeCircle:
		c, ok := circleRect(bx, by, b.Radius, ax, ay, a.HalfW, a.HalfH)
		if ok {
			c.NormalX, c.NormalY = -c.NormalX, -c.NormalY
		}
		return c, ok
	default:
		return rectRect(ax, ay, a.HalfW, a.HalfH, bx, by, b.HalfW, b.HalfH)
	}
}

func circleCircle(ax, ay, ar, bx, by, br int64) (Contact, bool) {
	dx := bx - ax
	dy := by - ay
	rsum := ar + br
	distSq := vmath.MagnitudeSq(dx, dy)
	if distSq >= vmath.Mul(rsum, rsum) {
		return Contact{}, false
	}
	dist := vmath.Sqrt(distSq)
	if dist == 0 {
		// Coincident centers: pick a stable axis
		return Contact{Penetration: rsum, NormalX: vmath.Scale}, true
	}
	return Contact{
		Penetration: rsum - dist,
		NormalX:     vmath.Div(dx, dist),
		NormalY:     vmath.Div(dy, dist),
	}, true
}

func circleRect(cx, cy, r, rx, ry, halfW, halfH int64) (Contact, bool) {
	// Closest point on the rectangle to the circle center
	closestX := vmath.Clamp(cx, rx-halfW, rx+halfW)
	closestY := vmath.Clamp(cy, ry-halfH, ry+halfH)

	dx := closestX - cx
	dy := closestY - cy
	distSq := vmath.MagnitudeSq(dx, dy)
	if distSq >= vmath.Mul(r, r) {
		return Contact{}, false
	}
	if distSq == 0 {
		// Center inside the rectangle: push out along the shallow axis
		overlapX := halfW - vmath.Abs(cx-rx)
		overlapY := halfH - vmath.Abs(cy-ry)
		if overlapX < overlapY {
			return Contact{Penetration: overlapX + r, NormalX: signOrRight(rx - cx)}, true
		}
		return Contact{Penetration: overlapY + r, NormalY: signOrRight(ry - cy)}, true
	}
	dist := vmath.Sqrt(distSq)
	return Contact{
		Penetration: r - dist,
		NormalX:     vmath.Div(dx, dist),
		NormalY:     vmath.Div(dy, dist),
	}, true
}

func rectRect(ax, ay, aw, ah, bx, by, bw, bh int64) (Contact, bool) {
	overlapX := aw + bw - vmath.Abs(bx-ax)
	if overlapX <= 0 {
		return Contact{}, false
	}
	overlapY := ah + bh - vmath.Abs(by-ay)
	if overlapY <= 0 {
		return Contact{}, false
	}
	// Separate along the axis of least penetration
	if overlapX < overlapY {
		return Contact{Penetration: overlapX, NormalX: signOrRight(bx - ax)}, true
	}
	return Contact{Penetration: overlapY, NormalY: signOrRight(by - ay)}, true
}

// signOrRight is Sign with a stable fallback for exactly coincident centers
func signOrRight(x int64) int64 {
	if s := vmath.Sign(x); s != 0 {
		return s
	}
	return vmath.Scale
}
