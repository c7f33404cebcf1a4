package workout

import (
	"time"

	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/volume"
)

// Session is a single-owner training session. It is constructed inert and
// becomes active on Start. Pause accounting separates wall time from active
// training time, so Duration reflects only the time spent training.
//
// Pause, Resume and End called outside their valid states are silent no-ops:
// state-machine misuse from a UI (a double-click on "Pause") must not break
// the session.
type Session struct {
	domain.Aggregate

	now domain.Clock

	startedAt   time.Time
	endedAt     time.Time
	pausedFor   time.Duration
	pausedSince time.Time
	active      bool
	sets        []*SetEntry
}

// NewSession returns an inert session. A nil clock defaults to time.Now.
func NewSession(clock domain.Clock) *Session {
	if clock == nil {
		clock = time.Now
	}
	return &Session{now: clock}
}

// Start (re)initializes the session from any state: the set log is cleared,
// pause accounting zeroed and the session marked active. Previously logged
// sets are discarded, so callers must have archived them if needed.
func (s *Session) Start() {
	now := s.now()
	s.sets = nil
	s.pausedFor = 0
	s.pausedSince = time.Time{}
	s.startedAt = now
	s.endedAt = time.Time{}
	s.active = true
	s.PushEvent(StartedEvent{At: now})
}

// Pause marks the current moment as the start of a pause interval. No-op
// unless the session is active and not already paused.
func (s *Session) Pause() {
	if !s.active || !s.pausedSince.IsZero() {
		return
	}
	s.pausedSince = s.now()
}

// Resume folds the finished pause interval into the accumulator. This is the
// only place the accumulator grows. No-op unless active and paused.
func (s *Session) Resume() {
	if !s.active || s.pausedSince.IsZero() {
		return
	}
	s.pausedFor += s.now().Sub(s.pausedSince)
	s.pausedSince = time.Time{}
}

// End finalizes the session. An in-progress pause is resumed first so the
// trailing interval is folded into the accumulator. No-op if not active.
func (s *Session) End() {
	if !s.active {
		return
	}
	s.Resume()
	now := s.now()
	s.endedAt = now
	s.active = false
	s.PushEvent(EndedEvent{
		At:          now,
		Duration:    s.Duration(),
		TotalVolume: s.TotalVolume(),
		Sets:        len(s.sets),
	})
}

// Duration is the active training time, excluding all paused intervals. It
// is recomputed on every call because it depends on the current time while
// the session is active. Negative results (clock anomalies) clamp to zero.
func (s *Session) Duration() time.Duration {
	if s.startedAt.IsZero() && s.endedAt.IsZero() {
		return 0
	}
	reference := s.endedAt
	if s.active {
		reference = s.now()
	}
	d := reference.Sub(s.startedAt) - s.pausedFor
	if !s.pausedSince.IsZero() {
		d -= s.now().Sub(s.pausedSince)
	}
	if d < 0 {
		d = 0
	}
	return d
}

// AddSet appends an entry to the log. The entry itself was validated at
// construction; no further checks are applied here.
func (s *Session) AddSet(entry *SetEntry) {
	s.sets = append(s.sets, entry)
	if entry != nil {
		s.PushEvent(SetLoggedEvent{
			At:       s.now(),
			Exercise: entry.Exercise().Name,
			Volume:   entry.Volume(),
		})
	}
}

// RemoveSetAt deletes the entry at index. Out-of-range indices are ignored.
func (s *Session) RemoveSetAt(index int) {
	if index < 0 || index >= len(s.sets) {
		return
	}
	s.sets = append(s.sets[:index], s.sets[index+1:]...)
}

// ReplaceSetAt swaps the entry at index. Out-of-range indices are ignored.
func (s *Session) ReplaceSetAt(index int, entry *SetEntry) {
	if index < 0 || index >= len(s.sets) {
		return
	}
	s.sets[index] = entry
}

// Sets returns the log in insertion order. The slice is a copy; entries are
// shared but immutable.
func (s *Session) Sets() []*SetEntry {
	out := make([]*SetEntry, len(s.sets))
	copy(out, s.sets)
	return out
}

// TotalVolume folds the volume of every current entry. Recomputed on every
// call so it can never diverge from the set log.
func (s *Session) TotalVolume() volume.Volume {
	total := volume.New(0)
	for _, entry := range s.sets {
		if entry == nil {
			continue
		}
		total = total.Add(entry.Volume())
	}
	return total
}

func (s *Session) Active() bool {
	return s.active
}

func (s *Session) Paused() bool {
	return !s.pausedSince.IsZero()
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

// EndedAt reports the end timestamp; ok is false while it is unset.
func (s *Session) EndedAt() (t time.Time, ok bool) {
	return s.endedAt, !s.endedAt.IsZero()
}
