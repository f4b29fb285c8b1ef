package core

import platformcore "github.com/vovakirdan/kitchen-rush/internal/core"

// Mover integrates the chef's movement against the arena and the walls.
type Mover struct {
	Arena platformcore.Rect
	Walls []platformcore.Rect
	Speed int
}

// Step proposes a move of speed units along (dx, dy), each in -1..1. The
// proposal is clamped into the arena; if it then overlaps any wall the whole
// move is rejected. Returns the new body and whether it moved.
func (m Mover) Step(body platformcore.Rect, dx, dy int) (platformcore.Rect, bool) {
	if dx == 0 && dy == 0 {
		return body, false
	}

	next := body.Offset(
		platformcore.Clamp(dx, -1, 1)*m.Speed,
		platformcore.Clamp(dy, -1, 1)*m.Speed,
	)
	if !m.Arena.Empty() {
		next = next.ClampInside(m.Arena)
	}
	for _, w := range m.Walls {
		if next.Intersects(w) {
			return body, false
		}
	}
	if next == body {
		return body, false
	}
	return next, true
}
