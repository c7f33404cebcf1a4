package workout

import (
	"time"

	"github.com/okorolev/liftlog_backend/internal/domain/volume"
)

const (
	EventStarted   = "session.started"
	EventEnded     = "session.ended"
	EventSetLogged = "session.set_logged"
)

type StartedEvent struct {
	At time.Time
}

func (e StartedEvent) Type() string {
	return EventStarted
}

func (e StartedEvent) PublishedAt() time.Time {
	return e.At
}

type EndedEvent struct {
	At          time.Time
	Duration    time.Duration
	TotalVolume volume.Volume
	Sets        int
}

func (e EndedEvent) Type() string {
	return EventEnded
}

func (e EndedEvent) PublishedAt() time.Time {
	return e.At
}

type SetLoggedEvent struct {
	At       time.Time
	Exercise string
	Volume   volume.Volume
}

func (e SetLoggedEvent) Type() string {
	return EventSetLogged
}

func (e SetLoggedEvent) PublishedAt() time.Time {
	return e.At
}
