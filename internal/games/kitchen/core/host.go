package core

import "time"

// Notifier shows short-lived messages to the player.
type Notifier interface {
	NotifyTransientMessage(text string, d time.Duration) error
}

// ServeListener is told about every dish that fulfilled an order.
type ServeListener interface {
	OnDishServed(dish string)
}

// SessionListener is told the final score when the clock runs out.
type SessionListener interface {
	OnSessionEnd(finalScore int)
}

// Host is a presentation layer that implements every collaborator at once.
type Host interface {
	Notifier
	ScoreStore
	OrderStore
	ServeListener
	SessionListener
}

// Option configures a Kitchen.
type Option func(*Kitchen)

// WithNotifier routes transient messages to n.
func WithNotifier(n Notifier) Option {
	return func(k *Kitchen) {
		k.notifier = n
	}
}

// WithScoreStore keeps the score in s.
func WithScoreStore(s ScoreStore) Option {
	return func(k *Kitchen) {
		k.scoreStore = s
	}
}

// WithOrderStore keeps the open orders in s.
func WithOrderStore(s OrderStore) Option {
	return func(k *Kitchen) {
		k.orderStore = s
	}
}

// WithServeListener reports successful serves to l.
func WithServeListener(l ServeListener) Option {
	return func(k *Kitchen) {
		k.serveListener = l
	}
}

// WithSessionListener reports the end of the session to l.
func WithSessionListener(l SessionListener) Option {
	return func(k *Kitchen) {
		k.sessionListener = l
	}
}

// WithHost wires h as every collaborator.
func WithHost(h Host) Option {
	return func(k *Kitchen) {
		k.notifier = h
		k.scoreStore = h
		k.orderStore = h
		k.serveListener = h
		k.sessionListener = h
	}
}

// WithAssets sets the image manifest used to pick plate visuals.
func WithAssets(a Assets) Option {
	return func(k *Kitchen) {
		k.assets = a
	}
}

// guard runs a host callback. The host is not allowed to break the game:
// panics are recovered and dropped.
func guard(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func (k *Kitchen) notify(text string) {
	k.lastMessage = text
	if k.notifier == nil {
		return
	}
	guard(func() {
		_ = k.notifier.NotifyTransientMessage(text, k.settings.ToastDuration)
	})
}

func (k *Kitchen) dishServed(dish string) {
	if k.serveListener == nil {
		return
	}
	guard(func() {
		k.serveListener.OnDishServed(dish)
	})
}

func (k *Kitchen) sessionEnded(score int) {
	if k.sessionListener == nil {
		return
	}
	guard(func() {
		k.sessionListener.OnSessionEnd(score)
	})
}
