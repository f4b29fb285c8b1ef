package core

import (
	"reflect"
	"testing"
)

func TestSchedulerAfter(t *testing.T) {
	s := NewScheduler()
	var fired []Token

	tok := Token{Kind: StationChopping, Serial: 7}
	id := s.After(3, tok, func(got Token) { fired = append(fired, got) })

	s.Advance()
	s.Advance()
	if len(fired) != 0 {
		t.Fatal("task fired early")
	}
	if left, ok := s.Remaining(id); !ok || left != 1 {
		t.Errorf("expected 1 tick left, got %d (%v)", left, ok)
	}

	if n := s.Advance(); n != 1 {
		t.Errorf("expected 1 callback, got %d", n)
	}
	if !reflect.DeepEqual(fired, []Token{tok}) {
		t.Errorf("expected token %+v, got %v", tok, fired)
	}
	if s.Pending() != 0 {
		t.Errorf("one-shot task should be gone, %d pending", s.Pending())
	}
	if _, ok := s.Remaining(id); ok {
		t.Error("fired task should have no remaining time")
	}
}

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	count := 0
	id := s.Every(2, func() { count++ })

	for i := 0; i < 7; i++ {
		s.Advance()
	}
	if count != 3 {
		t.Errorf("expected 3 firings in 7 ticks, got %d", count)
	}

	s.Cancel(id)
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	if count != 3 {
		t.Errorf("cancelled task kept firing: %d", count)
	}
}

func TestSchedulerOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.After(2, Token{}, func(Token) { order = append(order, 1) })
	s.After(1, Token{}, func(Token) { order = append(order, 2) })
	s.After(2, Token{}, func(Token) { order = append(order, 3) })

	s.Advance()
	s.Advance()
	if !reflect.DeepEqual(order, []int{2, 1, 3}) {
		t.Errorf("expected [2 1 3], got %v", order)
	}
}

func TestSchedulerPause(t *testing.T) {
	s := NewScheduler()
	fired := false
	id := s.After(5, Token{}, func(Token) { fired = true })

	s.Advance()
	s.Advance()
	s.Pause()
	for i := 0; i < 10; i++ {
		if n := s.Advance(); n != 0 {
			t.Fatalf("paused scheduler ran %d callbacks", n)
		}
	}
	if left, _ := s.Remaining(id); left != 3 {
		t.Errorf("expected 3 ticks kept across pause, got %d", left)
	}

	s.Resume()
	s.Advance()
	s.Advance()
	if fired {
		t.Fatal("fired before the remaining delay elapsed")
	}
	s.Advance()
	if !fired {
		t.Error("expected task to fire after resuming")
	}
}

func TestSchedulerStopAllFromCallback(t *testing.T) {
	s := NewScheduler()
	late := false
	s.Every(1, func() { s.StopAll() })
	s.After(1, Token{}, func(Token) { late = true })
	s.After(4, Token{}, func(Token) { late = true })

	s.Advance()
	if late {
		t.Error("tasks after StopAll should not fire")
	}
	if s.Pending() != 0 {
		t.Errorf("expected nothing pending, got %d", s.Pending())
	}
}

func TestSchedulerScheduleFromCallback(t *testing.T) {
	s := NewScheduler()
	second := false
	s.After(1, Token{}, func(Token) {
		s.After(1, Token{}, func(Token) { second = true })
	})

	s.Advance()
	if second {
		t.Fatal("task scheduled during Advance fired in the same tick")
	}
	s.Advance()
	if !second {
		t.Error("expected the chained task to fire on the next tick")
	}
}

func TestTaskStatusString(t *testing.T) {
	tests := []struct {
		s    TaskStatus
		want string
	}{
		{TaskPending, "pending"},
		{TaskFired, "fired"},
		{TaskCancelled, "cancelled"},
		{TaskStatus(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("TaskStatus(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
