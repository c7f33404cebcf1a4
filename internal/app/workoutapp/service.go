package workoutapp

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okorolev/liftlog_backend/internal/app/unitofwork"
	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
	"github.com/okorolev/liftlog_backend/internal/domain/volume"
	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

// CompletedSession is an archived session with the identifier assigned at
// completion time.
type CompletedSession struct {
	SessionID string
	Session   *workout.Session
}

// SessionView is a read-only snapshot of the live session suitable for
// list/grid display. Clients re-query after every mutation.
type SessionView struct {
	Active      bool
	Paused      bool
	StartedAt   time.Time
	EndedAt     time.Time
	Duration    time.Duration
	TotalVolume volume.Volume
	Sets        []*workout.SetEntry
}

// Service owns the single live session and the in-memory archive of
// completed ones. Sessions are not persisted; the archive lives as long as
// the process. The mutex serializes HTTP handlers, the session itself
// assumes a single actor.
type Service struct {
	logger *slog.Logger
	bus    unitofwork.MessageBus
	clock  domain.Clock

	mu      sync.Mutex
	live    *workout.Session
	archive []CompletedSession
}

func New(logger *slog.Logger, bus unitofwork.MessageBus, clock domain.Clock) *Service {
	if clock == nil {
		clock = time.Now
	}
	return &Service{
		logger: logger,
		bus:    bus,
		clock:  clock,
		live:   workout.NewSession(clock),
	}
}

// StartSession starts or restarts the live session, discarding any sets
// logged since the previous start.
func (s *Service) StartSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.Start()
	s.publish()
}

func (s *Service) PauseSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.Pause()
}

func (s *Service) ResumeSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.Resume()
}

// EndSession finalizes the live session, moves it into the archive and
// readies a fresh inert session. No-op when the session is not active.
func (s *Service) EndSession() (CompletedSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.live.Active() {
		return CompletedSession{}, false
	}

	s.live.End()
	completed := CompletedSession{
		SessionID: uuid.NewString(),
		Session:   s.live,
	}
	s.archive = append(s.archive, completed)
	s.publish()

	s.live = workout.NewSession(s.clock)

	s.logger.Info("session completed",
		"session_id", completed.SessionID,
		"duration", completed.Session.Duration(),
		"total_volume", completed.Session.TotalVolume().String(),
	)
	return completed, true
}

// LogSet validates and appends one performed set to the live session.
func (s *Service) LogSet(ex *exercise.Exercise, weightKg float64, reps, rpe int) (*workout.SetEntry, error) {
	entry, err := workout.NewSetEntry(ex, weightKg, reps, rpe)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.AddSet(entry)
	s.publish()
	return entry, nil
}

// RemoveSet drops the entry at index from the live session. Out-of-range
// indices are ignored, matching the session contract.
func (s *Service) RemoveSet(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.RemoveSetAt(index)
}

// ReplaceSet validates a replacement entry and swaps it in at index.
// Out-of-range indices are ignored.
func (s *Service) ReplaceSet(index int, ex *exercise.Exercise, weightKg float64, reps, rpe int) (*workout.SetEntry, error) {
	entry, err := workout.NewSetEntry(ex, weightKg, reps, rpe)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.live.ReplaceSetAt(index, entry)
	return entry, nil
}

// View snapshots the live session for display.
func (s *Service) View() SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	endedAt, _ := s.live.EndedAt()
	return SessionView{
		Active:      s.live.Active(),
		Paused:      s.live.Paused(),
		StartedAt:   s.live.StartedAt(),
		EndedAt:     endedAt,
		Duration:    s.live.Duration(),
		TotalVolume: s.live.TotalVolume(),
		Sets:        s.live.Sets(),
	}
}

// Sessions returns every archived session plus the live one, oldest first,
// for the statistics calculator.
func (s *Service) Sessions() []*workout.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessions := make([]*workout.Session, 0, len(s.archive)+1)
	for _, c := range s.archive {
		sessions = append(sessions, c.Session)
	}
	return append(sessions, s.live)
}

// Completed returns the archive, oldest first.
func (s *Service) Completed() []CompletedSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]CompletedSession, len(s.archive))
	copy(out, s.archive)
	return out
}

func (s *Service) publish() {
	if err := s.bus.PublishEvents(s.live.PopEvents()...); err != nil {
		s.logger.Error("failed to publish events", "error", err)
	}
}
