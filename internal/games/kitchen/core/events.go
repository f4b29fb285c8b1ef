package core

// EventKind names something that happened in the kitchen.
type EventKind string

const (
	EventPickup    EventKind = "pickup"
	EventPlace     EventKind = "place"
	EventDrop      EventKind = "drop"
	EventPlate     EventKind = "plate"
	EventChop      EventKind = "chop"
	EventChopped   EventKind = "chopped"
	EventCook      EventKind = "cook"
	EventCooked    EventKind = "cooked"
	EventServe     EventKind = "serve"
	EventWrong     EventKind = "wrong_order"
	EventUnmatched EventKind = "unmatched"
	EventTrash     EventKind = "trash"
	EventRefused   EventKind = "refused"
	EventTimeUp    EventKind = "time_up"
	EventPaused    EventKind = "paused"
	EventResumed   EventKind = "resumed"
)

// Event is one entry of the kitchen's event feed.
type Event struct {
	Tick    uint64
	Kind    EventKind
	Subject string // ingredient key, dish, or refusal text
	Delta   int    // score change
	Score   int    // score after the event
}

func (k *Kitchen) emit(kind EventKind, subject string, delta int) {
	k.events = append(k.events, Event{
		Tick:    k.tick,
		Kind:    kind,
		Subject: subject,
		Delta:   delta,
		Score:   k.ledger.Score(),
	})
}

// DrainEvents returns the events recorded since the last call.
func (k *Kitchen) DrainEvents() []Event {
	out := k.events
	k.events = nil
	return out
}
