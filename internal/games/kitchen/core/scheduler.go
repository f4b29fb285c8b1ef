package core

import "slices"

// TaskID identifies a scheduled task.
type TaskID uint64

// TaskStatus is the lifecycle state of a scheduled task.
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskFired
	TaskCancelled
)

// String returns the status name.
func (s TaskStatus) String() string {
	switch s {
	case TaskPending:
		return "pending"
	case TaskFired:
		return "fired"
	case TaskCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Token names the occupant a delayed completion was scheduled for. The
// completion compares it with the current occupant before committing.
type Token struct {
	Kind   StationKind
	Serial uint64
}

type task struct {
	id        TaskID
	remaining int
	interval  int // > 0 for repeating tasks
	token     Token
	fn        func(Token)
	status    TaskStatus
}

// Scheduler runs delayed and repeating callbacks on the simulation tick.
// Nothing sleeps: Advance is called once per unpaused tick, so pausing the
// scheduler freezes every remaining delay where it is.
type Scheduler struct {
	tasks  []*task
	nextID TaskID
	paused bool
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules fn to run once, delay ticks from now.
func (s *Scheduler) After(delay int, token Token, fn func(Token)) TaskID {
	return s.add(&task{remaining: max(delay, 1), token: token, fn: fn})
}

// Every schedules fn to run every interval ticks until cancelled.
func (s *Scheduler) Every(interval int, fn func()) TaskID {
	interval = max(interval, 1)
	return s.add(&task{
		remaining: interval,
		interval:  interval,
		fn:        func(Token) { fn() },
	})
}

func (s *Scheduler) add(t *task) TaskID {
	s.nextID++
	t.id = s.nextID
	s.tasks = append(s.tasks, t)
	return t.id
}

// Advance moves time forward by one tick and fires the tasks that come due,
// in the order they were scheduled. Tasks scheduled by a firing callback
// start counting on the next tick. Returns the number of callbacks run.
func (s *Scheduler) Advance() int {
	if s.paused {
		return 0
	}

	fired := 0
	for _, t := range slices.Clone(s.tasks) {
		if t.status != TaskPending {
			continue
		}
		t.remaining--
		if t.remaining > 0 {
			continue
		}
		if t.interval > 0 {
			t.remaining = t.interval
		} else {
			t.status = TaskFired
		}
		fired++
		t.fn(t.token)
	}

	s.compact()
	return fired
}

// compact drops finished tasks.
func (s *Scheduler) compact() {
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.status == TaskPending {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Pause freezes all tasks with their remaining delay intact.
func (s *Scheduler) Pause() {
	s.paused = true
}

// Resume continues counting from where Pause left off.
func (s *Scheduler) Resume() {
	s.paused = false
}

// Paused reports whether the scheduler is paused.
func (s *Scheduler) Paused() bool {
	return s.paused
}

// Remaining returns the ticks left before a pending task fires.
func (s *Scheduler) Remaining(id TaskID) (int, bool) {
	if t := s.find(id); t != nil {
		return t.remaining, true
	}
	return 0, false
}

// Cancel stops a pending task. Returns false if it is not pending.
func (s *Scheduler) Cancel(id TaskID) bool {
	t := s.find(id)
	if t == nil {
		return false
	}
	t.status = TaskCancelled
	return true
}

// StopAll cancels every pending task.
func (s *Scheduler) StopAll() {
	for _, t := range s.tasks {
		if t.status == TaskPending {
			t.status = TaskCancelled
		}
	}
}

// Pending returns the number of tasks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.status == TaskPending {
			n++
		}
	}
	return n
}

func (s *Scheduler) find(id TaskID) *task {
	for _, t := range s.tasks {
		if t.id == id && t.status == TaskPending {
			return t
		}
	}
	return nil
}
