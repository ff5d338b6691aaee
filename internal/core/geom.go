// Package core provides fundamental types and utilities shared by the
// simulation and its hosts. It has no external dependencies so the
// simulation stays pure and testable.
package core

// Vec2 is a point or extent in world space.
type Vec2 struct {
	X, Y float32
}

// AABB is an axis-aligned bounding box described by its center and
// half-extents, the same representation the collision detector uses.
type AABB struct {
	Center Vec2
	Half   Vec2
}

// NewAABB creates a box centered at (cx, cy) with half-extents (hx, hy).
func NewAABB(cx, cy, hx, hy float32) AABB {
	return AABB{Center: Vec2{cx, cy}, Half: Vec2{hx, hy}}
}

// Min returns the lower-left corner.
func (b AABB) Min() Vec2 {
	return Vec2{b.Center.X - b.Half.X, b.Center.Y - b.Half.Y}
}

// Max returns the upper-right corner.
func (b AABB) Max() Vec2 {
	return Vec2{b.Center.X + b.Half.X, b.Center.Y + b.Half.Y}
}

// Intersects reports whether the two boxes overlap on both axes.
// Touching edges count as an overlap.
func (b AABB) Intersects(other AABB) bool {
	bMin, bMax := b.Min(), b.Max()
	oMin, oMax := other.Min(), other.Max()
	xOverlap := bMin.X <= oMax.X && bMax.X >= oMin.X
	yOverlap := bMin.Y <= oMax.Y && bMax.Y >= oMin.Y
	return xOverlap && yOverlap
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float32) float32 {
	return a + float32((b-a)*t)
}

// Rect represents an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
