package stats_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
	"github.com/okorolev/liftlog_backend/internal/domain/stats"
	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func mustExercise(t *testing.T, name string, muscles ...string) *exercise.Exercise {
	t.Helper()
	ex, err := exercise.New(uuid.NewString(), name, exercise.KindStrength, "Barbell", muscles)
	require.NoError(t, err)
	return ex
}

func sessionAt(t *testing.T, start time.Time, sets ...*workout.SetEntry) *workout.Session {
	t.Helper()
	clock := &fixedClock{now: start}
	s := workout.NewSession(clock.Now)
	s.Start()
	for _, entry := range sets {
		s.AddSet(entry)
	}
	clock.now = start.Add(time.Hour)
	s.End()
	return s
}

func mustSet(t *testing.T, ex *exercise.Exercise, weightKg float64, reps int) *workout.SetEntry {
	t.Helper()
	entry, err := workout.NewSetEntry(ex, weightKg, reps, 8)
	require.NoError(t, err)
	return entry
}

func TestOverallPersonalRecordByWeight(t *testing.T) {
	day := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	squat := mustExercise(t, "Back Squat", "Quads", "Glutes")
	bench := mustExercise(t, "Bench Press", "Chest")

	light := mustSet(t, bench, 80, 5)
	heavy := mustSet(t, squat, 100, 3)
	medium := mustSet(t, squat, 60, 10)

	sessions := []*workout.Session{
		sessionAt(t, day, light),
		sessionAt(t, day.AddDate(0, 0, 1), heavy, medium),
	}

	record := stats.OverallPersonalRecordByWeight(sessions)
	require.NotNil(t, record)
	assert.Same(t, heavy, record)
}

func TestOverallPersonalRecordByWeight_Empty(t *testing.T) {
	assert.Nil(t, stats.OverallPersonalRecordByWeight(nil))
	assert.Nil(t, stats.OverallPersonalRecordByWeight([]*workout.Session{}))
	assert.Nil(t, stats.OverallPersonalRecordByWeight([]*workout.Session{nil}))
}

func TestOverallPersonalRecordByWeight_FirstWinsOnTie(t *testing.T) {
	day := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	squat := mustExercise(t, "Back Squat", "Quads")

	first := mustSet(t, squat, 100, 5)
	second := mustSet(t, squat, 100, 3)

	record := stats.OverallPersonalRecordByWeight([]*workout.Session{
		sessionAt(t, day, first, second),
	})
	assert.Same(t, first, record)
}

func TestVolumeSince(t *testing.T) {
	cutoff := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	squat := mustExercise(t, "Back Squat", "Quads")

	old := sessionAt(t, cutoff.AddDate(0, 0, -5), mustSet(t, squat, 100, 10)) // 1000, excluded
	onBoundary := sessionAt(t, cutoff, mustSet(t, squat, 100, 5))             // 500, inclusive
	recent := sessionAt(t, cutoff.AddDate(0, 0, 2), mustSet(t, squat, 60, 5)) // 300

	total := stats.VolumeSince([]*workout.Session{old, onBoundary, recent}, cutoff)
	assert.Equal(t, 800.0, total.Value())
}

func TestVolumeSince_EmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, stats.VolumeSince(nil, time.Now()).Value())
}

func TestMusclesSince_DeduplicatesAndSorts(t *testing.T) {
	cutoff := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	curl := mustExercise(t, "Dumbbell Curl", "Biceps", "Forearms")
	chinUp := mustExercise(t, "Chin-Up", "biceps", "Lats")
	squat := mustExercise(t, "Back Squat", "Quads")

	sessions := []*workout.Session{
		sessionAt(t, cutoff.AddDate(0, 0, -1), mustSet(t, squat, 100, 5)), // before cutoff
		sessionAt(t, cutoff, mustSet(t, curl, 15, 12)),
		sessionAt(t, cutoff.AddDate(0, 0, 1), mustSet(t, chinUp, 0, 8)),
	}

	muscles := stats.MusclesSince(sessions, cutoff)
	assert.Equal(t, []string{"Biceps", "Forearms", "Lats"}, muscles,
		"case-insensitive dedupe, first casing kept, sorted; Quads excluded by cutoff")
}

func TestMusclesSince_Empty(t *testing.T) {
	assert.Empty(t, stats.MusclesSince(nil, time.Time{}))
}
