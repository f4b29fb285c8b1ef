package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "chef over chopping board",
			a:        NewRect(400, 120, 112, 133),
			b:        NewRect(427, 180, 70, 50),
			expected: true,
		},
		{
			name:     "left of wall",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "above wall",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "nested",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "single unit overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(9, 9, 10, 10),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge is exclusive", 30, 25, false},
		{"left of box", 5, 15, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	r := NewRect(280, 145, 90, 106)

	x, y := r.Center()
	if x != 325 || y != 198 {
		t.Errorf("Center() = (%d, %d), expected (325, 198)", x, y)
	}

	fx, fy := r.CenterF()
	if fx != 325 || fy != 198 {
		t.Errorf("CenterF() = (%v, %v), expected (325, 198)", fx, fy)
	}
}

func TestRectMoveAndOffset(t *testing.T) {
	r := NewRect(1, 2, 3, 4)

	moved := r.MoveTo(10, 20)
	if moved != NewRect(10, 20, 3, 4) {
		t.Errorf("MoveTo() = %+v", moved)
	}

	shifted := r.Offset(-1, 5)
	if shifted != NewRect(0, 7, 3, 4) {
		t.Errorf("Offset() = %+v", shifted)
	}

	if r != NewRect(1, 2, 3, 4) {
		t.Error("MoveTo/Offset must not mutate the receiver")
	}
}

func TestRectClampInside(t *testing.T) {
	arena := NewRect(0, 0, 1200, 675)

	tests := []struct {
		name     string
		in       Rect
		expected Rect
	}{
		{"already inside", NewRect(100, 100, 112, 133), NewRect(100, 100, 112, 133)},
		{"past left and top", NewRect(-30, -5, 112, 133), NewRect(0, 0, 112, 133)},
		{"past right", NewRect(1150, 100, 112, 133), NewRect(1088, 100, 112, 133)},
		{"past bottom", NewRect(10, 600, 112, 133), NewRect(10, 542, 112, 133)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.ClampInside(arena); got != tc.expected {
				t.Errorf("ClampInside() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestAbs(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs() returned wrong value")
	}
}
