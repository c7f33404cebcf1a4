package workout

import (
	"fmt"
	"time"

	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
	"github.com/okorolev/liftlog_backend/internal/domain/volume"
)

var (
	ErrNoExercise      = fmt.Errorf("%w: exercise reference is required", domain.ErrValidation)
	ErrNegativeWeight  = fmt.Errorf("%w: weight must not be negative", domain.ErrValidation)
	ErrNonPositiveReps = fmt.Errorf("%w: reps must be positive", domain.ErrValidation)
	ErrRPEOutOfRange   = fmt.Errorf("%w: rpe must be between 1 and 10", domain.ErrValidation)
)

// SetEntry records one performed set. It never exists in an invalid state:
// every constraint is checked at construction, and the entry is immutable
// afterwards.
type SetEntry struct {
	exercise  *exercise.Exercise
	weightKg  float64
	reps      int
	rpe       int
	createdAt time.Time
}

func NewSetEntry(ex *exercise.Exercise, weightKg float64, reps, rpe int) (*SetEntry, error) {
	if ex == nil {
		return nil, ErrNoExercise
	}
	if weightKg < 0 {
		return nil, ErrNegativeWeight
	}
	if reps <= 0 {
		return nil, ErrNonPositiveReps
	}
	if rpe < 1 || rpe > 10 {
		return nil, ErrRPEOutOfRange
	}
	return &SetEntry{
		exercise:  ex,
		weightKg:  weightKg,
		reps:      reps,
		rpe:       rpe,
		createdAt: time.Now().UTC(),
	}, nil
}

func (e *SetEntry) Exercise() *exercise.Exercise {
	return e.exercise
}

func (e *SetEntry) WeightKg() float64 {
	return e.weightKg
}

func (e *SetEntry) Reps() int {
	return e.reps
}

func (e *SetEntry) RPE() int {
	return e.rpe
}

func (e *SetEntry) CreatedAt() time.Time {
	return e.createdAt
}

// Volume is derived on every call, never stored.
func (e *SetEntry) Volume() volume.Volume {
	return volume.New(e.weightKg * float64(e.reps))
}
