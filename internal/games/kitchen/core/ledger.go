package core

// ScoreStore holds the score shown to the player.
type ScoreStore interface {
	Score() int
	SetScore(n int)
}

type memoryScore struct {
	n int
}

func (m *memoryScore) Score() int     { return m.n }
func (m *memoryScore) SetScore(n int) { m.n = n }

// Ledger applies score deltas. The total never drops below zero, though a
// single delta may be negative.
type Ledger struct {
	store ScoreStore
}

// NewLedger creates a ledger over store.
func NewLedger(store ScoreStore) *Ledger {
	if store == nil {
		store = &memoryScore{}
	}
	return &Ledger{store: store}
}

// Score returns the current total.
func (l *Ledger) Score() int {
	return l.store.Score()
}

// Apply adds delta and clamps the total at zero. Returns the new total.
func (l *Ledger) Apply(delta int) int {
	n := max(l.store.Score()+delta, 0)
	l.store.SetScore(n)
	return n
}

// Reset sets the total back to zero.
func (l *Ledger) Reset() {
	l.store.SetScore(0)
}

// Clock is the session countdown in whole seconds. A clock created with
// zero seconds is untimed and never runs out.
type Clock struct {
	left    int
	untimed bool
}

// NewClock creates a countdown of seconds.
func NewClock(seconds int) *Clock {
	return &Clock{left: max(seconds, 0), untimed: seconds <= 0}
}

// Tick takes one second off. Returns true exactly when this tick reached zero.
func (c *Clock) Tick() bool {
	if c.untimed || c.left == 0 {
		return false
	}
	c.left--
	return c.left == 0
}

// Remaining returns the seconds left, or -1 for an untimed clock.
func (c *Clock) Remaining() int {
	if c.untimed {
		return -1
	}
	return c.left
}

// Untimed reports whether the clock never runs out.
func (c *Clock) Untimed() bool {
	return c.untimed
}

// Expired reports whether the countdown has reached zero.
func (c *Clock) Expired() bool {
	return !c.untimed && c.left == 0
}
