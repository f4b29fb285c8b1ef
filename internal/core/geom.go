// Package core provides the platform primitives shared by the kitchen game
// and its terminal host: geometry, input actions, the screen buffer and the
// runtime configuration. It has no external dependencies so that game logic
// stays pure and testable.
package core

// Rect is an axis-aligned box in world units. It is used for station extents,
// the chef's body, floor items and invisible walls.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects reports whether the two boxes overlap (AABB test).
// Boxes that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains reports whether the point (x, y) lies inside the box.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the integer center point of the box.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// CenterF returns the exact center point of the box.
func (r Rect) CenterF() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// MoveTo returns the same box with its top-left corner at (x, y).
func (r Rect) MoveTo(x, y int) Rect {
	r.X, r.Y = x, y
	return r
}

// Offset returns the box shifted by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClampInside returns the box moved the minimum distance needed to lie fully
// within bounds. A box larger than bounds is pinned to the top-left corner.
func (r Rect) ClampInside(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, bounds.Right()-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Bottom()-r.H)
	if r.W > bounds.W {
		r.X = bounds.X
	}
	if r.H > bounds.H {
		r.Y = bounds.Y
	}
	return r
}

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
