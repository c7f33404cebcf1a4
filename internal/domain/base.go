package domain

import (
	"errors"
	"time"
)

var (
	ErrValidation = errors.New("validation failed")
)

// Clock supplies the current time to domain entities. Production code uses
// time.Now; tests substitute a deterministic source.
type Clock func() time.Time

type Event interface {
	Type() string
	PublishedAt() time.Time
}

type Aggregate struct {
	events []Event
}

func (a *Aggregate) PopEvents() []Event {
	events := a.events
	a.events = make([]Event, 0)
	return events
}

func (a *Aggregate) PushEvent(e Event) {
	a.events = append(a.events, e)
}
