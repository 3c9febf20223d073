package events

import (
	"context"
	"time"
)

type Kind string

const (
	PropertySelected Kind = "property.selected"
	DialogClosed     Kind = "dialog.closed"
	ContactSubmitted Kind = "contact.submitted"
)

// Event describes one visitor interaction. PropertyID is zero when the kind
// does not concern a property.
type Event struct {
	Kind       Kind
	SessionID  string
	PropertyID int
	At         time.Time
}

type Publisher interface {
	Publish(ctx context.Context, evt Event)
	Subscribe() <-chan Event
}

type inMemory struct{ ch chan Event }

func NewInMemory(buffer int) Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	return &inMemory{ch: make(chan Event, buffer)}
}

// Publish never blocks; events are dropped when the buffer is full.
func (m *inMemory) Publish(_ context.Context, evt Event) {
	if evt.At.IsZero() {
		evt.At = time.Now()
	}
	select {
	case m.ch <- evt:
	default:
	}
}

func (m *inMemory) Subscribe() <-chan Event { return m.ch }
