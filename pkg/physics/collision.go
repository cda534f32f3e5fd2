// pkg/physics/collision.go
package physics

// Rect represents an axis-aligned bounding box described by its center
// point and full extents.
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// BoxAround builds the bounding box for an entity at pos with the
// given full size.
func BoxAround(pos, size Vector2D) Rect {
	return Rect{
		Center: pos,
		Width:  size.X,
		Height: size.Y,
	}
}

// Intersects checks two boxes for closed-interval overlap: boxes that
// share exactly one boundary point count as intersecting.
func (r Rect) Intersects(other Rect) bool {
	dx := r.Center.X - other.Center.X
	if dx < 0 {
		dx = -dx
	}
	dy := r.Center.Y - other.Center.Y
	if dy < 0 {
		dy = -dy
	}
	return dx <= (r.Width+other.Width)/2 && dy <= (r.Height+other.Height)/2
}

// Contains reports whether the point lies inside the box, boundary
// included.
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X <= r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y <= r.Center.Y+r.Height/2
}
