package statsapp

import (
	"log/slog"
	"time"

	"github.com/okorolev/liftlog_backend/internal/domain/stats"
	"github.com/okorolev/liftlog_backend/internal/domain/volume"
	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

// SessionSource supplies the sessions statistics are computed over.
type SessionSource interface {
	Sessions() []*workout.Session
}

// Service runs the pure statistics calculator over the session source.
// Reports hold no state and are recomputed on every request.
type Service struct {
	logger *slog.Logger
	source SessionSource
}

func New(logger *slog.Logger, source SessionSource) *Service {
	return &Service{logger: logger, source: source}
}

// PersonalRecord returns the heaviest set ever logged, or nil.
func (s *Service) PersonalRecord() *workout.SetEntry {
	return stats.OverallPersonalRecordByWeight(s.source.Sessions())
}

func (s *Service) VolumeSince(from time.Time) volume.Volume {
	return stats.VolumeSince(s.source.Sessions(), from)
}

func (s *Service) MusclesSince(from time.Time) []string {
	return stats.MusclesSince(s.source.Sessions(), from)
}
