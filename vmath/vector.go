package vmath

// DistanceApprox uses the alpha-max-plus-beta-min algorithm (error ~4%)
func DistanceApprox(dx, dy int64) int64 {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dx < dy {
		dx, dy = dy, dx
	}
	// dist = max + 0.375*min
	return dx + (dy >> 2) + (dy >> 3)
}

// Normalize2D returns unit vector in Q32.32, zero-safe
// Uses DistanceApprox for performance (~4% error acceptable for game physics)
func Normalize2D(x, y int64) (nx, ny int64) {
	mag := DistanceApprox(x, y)
	if mag == 0 {
		return 0, 0
	}
	return Div(x, mag), Div(y, mag)
}

// NormalizeExact returns a unit vector using the exact square root.
// Player movement uses this; pack steering tolerates Normalize2D's error.
func NormalizeExact(x, y int64) (nx, ny int64) {
	mag := Sqrt(MagnitudeSq(x, y))
	if mag == 0 {
		return 0, 0
	}
	return Div(x, mag), Div(y, mag)
}

// Magnitude returns vector length using DistanceApprox
func Magnitude(x, y int64) int64 {
	return DistanceApprox(x, y)
}

// MagnitudeSq returns squared magnitude without sqrt
func MagnitudeSq(x, y int64) int64 {
	return Mul(x, x) + Mul(y, y)
}

// DotProduct returns x1*x2 + y1*y2 in Q32.32
func DotProduct(x1, y1, x2, y2 int64) int64 {
	return Mul(x1, x2) + Mul(y1, y2)
}
