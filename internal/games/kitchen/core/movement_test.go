package core_test

import (
	"testing"

	platformcore "github.com/vovakirdan/kitchen-rush/internal/core"
	"github.com/vovakirdan/kitchen-rush/internal/games/kitchen/core"
)

func TestMoverStep(t *testing.T) {
	m := core.Mover{
		Arena: platformcore.NewRect(0, 0, 200, 100),
		Walls: []platformcore.Rect{platformcore.NewRect(100, 0, 10, 50)},
		Speed: 10,
	}
	body := platformcore.NewRect(50, 20, 20, 20)

	tests := []struct {
		name   string
		body   platformcore.Rect
		dx, dy int
		want   platformcore.Rect
		moved  bool
	}{
		{"still", body, 0, 0, body, false},
		{"left", body, -1, 0, body.Offset(-10, 0), true},
		{"diagonal", body, 1, 1, body.Offset(10, 10), true},
		{"into wall", body.MoveTo(75, 20), 1, 0, body.MoveTo(75, 20), false},
		{"diagonal into wall rejects both axes", body.MoveTo(75, 20), 1, 1, body.MoveTo(75, 20), false},
		{"clamped at arena edge", body.MoveTo(5, 20), -1, 0, body.MoveTo(0, 20), true},
		{"pinned at arena edge", body.MoveTo(0, 20), -1, 0, body.MoveTo(0, 20), false},
		{"below the wall", body.MoveTo(75, 60), 1, 0, body.MoveTo(85, 60), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, moved := m.Step(tt.body, tt.dx, tt.dy)
			if got != tt.want || moved != tt.moved {
				t.Errorf("Step = %+v, %v; want %+v, %v", got, moved, tt.want, tt.moved)
			}
		})
	}
}

func TestDropBoxes(t *testing.T) {
	arena := platformcore.NewRect(0, 0, 1200, 675)
	c := core.Character{Body: platformcore.NewRect(200, 200, 112, 133)}

	if got, want := c.FloorDropBox(arena), platformcore.NewRect(236, 323, 40, 40); got != want {
		t.Errorf("FloorDropBox = %+v, want %+v", got, want)
	}
	if got, want := c.PlateDropBox(arena), platformcore.NewRect(240, 240, 60, 60); got != want {
		t.Errorf("PlateDropBox = %+v, want %+v", got, want)
	}

	c.Body = platformcore.NewRect(1088, 540, 112, 133)
	if got := c.FloorDropBox(arena); got.Bottom() > arena.Bottom() || got.Right() > arena.Right() {
		t.Errorf("FloorDropBox left the arena: %+v", got)
	}
}
