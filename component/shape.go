package component

// ShapeKind selects the overlap test for a collider, hitbox or hurtbox.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a circle (Radius) or an axis-aligned rectangle (HalfW/HalfH)
// centered on its owner position plus offset. All values Q32.32.
type Shape struct {
	Kind   ShapeKind
	Radius int64
	HalfW  int64
	HalfH  int64
}

// Circle returns a circle shape.
func Circle(radius int64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

// Rect returns a rectangle shape from half extents.
func Rect(halfW, halfH int64) Shape {
	return Shape{Kind: ShapeRect, HalfW: halfW, HalfH: halfH}
}
