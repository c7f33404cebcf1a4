package workoutapp_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okorolev/liftlog_backend/internal/app/workoutapp"
	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

type recordingBus struct {
	events []domain.Event
}

func (b *recordingBus) PublishEvents(events ...domain.Event) error {
	b.events = append(b.events, events...)
	return nil
}

func (b *recordingBus) types() []string {
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Type())
	}
	return out
}

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func newService(t *testing.T) (*workoutapp.Service, *recordingBus, *testClock) {
	t.Helper()
	bus := &recordingBus{}
	clock := &testClock{now: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return workoutapp.New(logger, bus, clock.Now), bus, clock
}

func pressUp(t *testing.T) *exercise.Exercise {
	t.Helper()
	ex, err := exercise.New(uuid.NewString(), "Overhead Press", exercise.KindStrength, "Barbell", []string{"Shoulders"})
	require.NoError(t, err)
	return ex
}

func TestService_SessionLifecycle(t *testing.T) {
	svc, bus, clock := newService(t)
	ex := pressUp(t)

	svc.StartSession()
	view := svc.View()
	assert.True(t, view.Active)
	assert.Zero(t, view.Duration)

	_, err := svc.LogSet(ex, 60, 5, 7)
	require.NoError(t, err)

	clock.now = clock.now.Add(40 * time.Minute)
	completed, ended := svc.EndSession()
	require.True(t, ended)
	assert.NotEmpty(t, completed.SessionID)
	assert.Equal(t, 40*time.Minute, completed.Session.Duration())
	assert.Equal(t, 300.0, completed.Session.TotalVolume().Value())

	assert.Equal(t, []string{workout.EventStarted, workout.EventSetLogged, workout.EventEnded}, bus.types())
}

func TestService_EndWithoutActiveSessionIsNoOp(t *testing.T) {
	svc, _, _ := newService(t)

	_, ended := svc.EndSession()
	assert.False(t, ended)
}

func TestService_ArchiveSurvivesRestart(t *testing.T) {
	svc, _, clock := newService(t)
	ex := pressUp(t)

	svc.StartSession()
	_, err := svc.LogSet(ex, 60, 5, 7)
	require.NoError(t, err)
	clock.now = clock.now.Add(30 * time.Minute)
	_, ended := svc.EndSession()
	require.True(t, ended)

	svc.StartSession()
	view := svc.View()
	assert.Empty(t, view.Sets, "new session starts empty")

	completed := svc.Completed()
	require.Len(t, completed, 1)
	assert.Equal(t, 300.0, completed[0].Session.TotalVolume().Value(),
		"archived session keeps its sets")

	sessions := svc.Sessions()
	assert.Len(t, sessions, 2, "archive plus live session")
}

func TestService_LogSetValidation(t *testing.T) {
	svc, bus, _ := newService(t)
	ex := pressUp(t)

	svc.StartSession()
	published := len(bus.events)

	_, err := svc.LogSet(ex, 60, 0, 7)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Empty(t, svc.View().Sets)
	assert.Len(t, bus.events, published, "rejected set publishes nothing")

	_, err = svc.LogSet(nil, 60, 5, 7)
	assert.ErrorIs(t, err, workout.ErrNoExercise)
}

func TestService_RemoveAndReplaceSet(t *testing.T) {
	svc, _, _ := newService(t)
	ex := pressUp(t)

	svc.StartSession()
	_, err := svc.LogSet(ex, 60, 5, 7)
	require.NoError(t, err)

	svc.RemoveSet(5) // out of range, ignored
	assert.Len(t, svc.View().Sets, 1)

	_, err = svc.ReplaceSet(0, ex, 70, 5, 8)
	require.NoError(t, err)
	assert.Equal(t, 350.0, svc.View().TotalVolume.Value())

	_, err = svc.ReplaceSet(3, ex, 80, 5, 8) // out of range, ignored
	require.NoError(t, err)
	assert.Equal(t, 350.0, svc.View().TotalVolume.Value())

	svc.RemoveSet(0)
	assert.Empty(t, svc.View().Sets)
}

func TestService_PauseResumeThroughService(t *testing.T) {
	svc, _, clock := newService(t)

	svc.StartSession()
	clock.now = clock.now.Add(10 * time.Minute)
	svc.PauseSession()
	clock.now = clock.now.Add(5 * time.Minute)
	svc.ResumeSession()
	clock.now = clock.now.Add(5 * time.Minute)

	assert.Equal(t, 15*time.Minute, svc.View().Duration)
}
