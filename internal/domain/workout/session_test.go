package workout_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func mustEntry(t *testing.T, weightKg float64, reps int) *workout.SetEntry {
	t.Helper()
	entry, err := workout.NewSetEntry(benchPress(t), weightKg, reps, 8)
	require.NoError(t, err)
	return entry
}

func TestSession_InertBeforeStart(t *testing.T) {
	s := workout.NewSession(newFakeClock().Now)

	assert.False(t, s.Active())
	assert.False(t, s.Paused())
	assert.Zero(t, s.Duration())
	assert.Equal(t, 0.0, s.TotalVolume().Value())
	assert.Empty(t, s.Sets())

	_, ok := s.EndedAt()
	assert.False(t, ok)
}

func TestSession_StartResetsEverything(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	s.AddSet(mustEntry(t, 100, 5))
	clock.Advance(10 * time.Minute)
	s.Pause()
	clock.Advance(5 * time.Minute)

	s.Start()

	assert.True(t, s.Active())
	assert.False(t, s.Paused())
	assert.Empty(t, s.Sets())
	assert.Zero(t, s.Duration())
	assert.Equal(t, 0.0, s.TotalVolume().Value())
	assert.Equal(t, clock.Now(), s.StartedAt())
}

func TestSession_DurationWhileActive(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	assert.Zero(t, s.Duration())

	clock.Advance(10 * time.Minute)
	assert.Equal(t, 10*time.Minute, s.Duration())
}

func TestSession_PauseExcludedFromDuration(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	clock.Advance(5 * time.Minute)
	s.Pause()
	assert.True(t, s.Paused())

	clock.Advance(2 * time.Minute)
	assert.Equal(t, 5*time.Minute, s.Duration(), "in-progress pause must not count")

	s.Resume()
	assert.False(t, s.Paused())
	clock.Advance(3 * time.Minute)

	assert.Equal(t, 8*time.Minute, s.Duration())
}

func TestSession_SecondPauseIsNoOp(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	clock.Advance(time.Minute)
	s.Pause()
	clock.Advance(2 * time.Minute)
	s.Pause() // must not move the pause marker
	clock.Advance(time.Minute)
	s.Resume()

	assert.Equal(t, time.Minute, s.Duration())
}

func TestSession_PauseResumeOutsideValidStates(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Pause()
	assert.False(t, s.Paused(), "pause before start is a no-op")

	s.Start()
	clock.Advance(time.Minute)
	s.Resume() // not paused, no-op
	assert.Equal(t, time.Minute, s.Duration())

	s.End()
	s.Pause()
	assert.False(t, s.Paused(), "pause after end is a no-op")
}

func TestSession_EndWhilePausedFoldsTrailingPause(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	clock.Advance(10 * time.Minute)
	s.Pause()
	clock.Advance(5 * time.Minute)
	s.End()

	assert.False(t, s.Active())
	assert.False(t, s.Paused())
	assert.Equal(t, 10*time.Minute, s.Duration())

	endedAt, ok := s.EndedAt()
	require.True(t, ok)
	assert.Equal(t, clock.Now(), endedAt)
}

func TestSession_EndWhenInactiveIsNoOp(t *testing.T) {
	s := workout.NewSession(newFakeClock().Now)

	s.End()

	_, ok := s.EndedAt()
	assert.False(t, ok)
	assert.Zero(t, s.Duration())
}

func TestSession_DurationFrozenAfterEnd(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	clock.Advance(30 * time.Minute)
	s.End()

	clock.Advance(2 * time.Hour)
	assert.Equal(t, 30*time.Minute, s.Duration())
}

func TestSession_DurationClampsOnClockAnomaly(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	clock.Advance(-time.Hour)

	assert.Zero(t, s.Duration())
}

func TestSession_TotalVolumeFollowsSetLog(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)
	s.Start()

	s.AddSet(mustEntry(t, 100, 5)) // 500
	s.AddSet(mustEntry(t, 80, 10)) // 800
	assert.Equal(t, 1300.0, s.TotalVolume().Value())

	s.RemoveSetAt(0)
	assert.Equal(t, 800.0, s.TotalVolume().Value())

	s.ReplaceSetAt(0, mustEntry(t, 60, 10)) // 600
	assert.Equal(t, 600.0, s.TotalVolume().Value())
}

func TestSession_OutOfRangeIndicesAreIgnored(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)
	s.Start()
	s.AddSet(mustEntry(t, 100, 5))

	s.RemoveSetAt(-1)
	s.RemoveSetAt(1)
	assert.Len(t, s.Sets(), 1)

	s.ReplaceSetAt(-1, mustEntry(t, 60, 10))
	s.ReplaceSetAt(1, mustEntry(t, 60, 10))
	assert.Equal(t, 500.0, s.TotalVolume().Value())
}

func TestSession_SetsReturnsCopy(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)
	s.Start()
	s.AddSet(mustEntry(t, 100, 5))

	sets := s.Sets()
	sets[0] = nil

	require.Len(t, s.Sets(), 1)
	assert.NotNil(t, s.Sets()[0])
}

func TestSession_SetMutationAfterEndDoesNotAffectDuration(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)
	s.Start()
	clock.Advance(20 * time.Minute)
	s.End()

	s.AddSet(mustEntry(t, 100, 5))

	assert.Equal(t, 20*time.Minute, s.Duration())
	assert.Equal(t, 500.0, s.TotalVolume().Value())
}

func TestSession_Events(t *testing.T) {
	clock := newFakeClock()
	s := workout.NewSession(clock.Now)

	s.Start()
	s.AddSet(mustEntry(t, 100, 5))
	clock.Advance(45 * time.Minute)
	s.End()

	events := s.PopEvents()
	require.Len(t, events, 3)
	assert.Equal(t, workout.EventStarted, events[0].Type())
	assert.Equal(t, workout.EventSetLogged, events[1].Type())
	assert.Equal(t, workout.EventEnded, events[2].Type())

	ended := events[2].(workout.EndedEvent)
	assert.Equal(t, 45*time.Minute, ended.Duration)
	assert.Equal(t, 500.0, ended.TotalVolume.Value())
	assert.Equal(t, 1, ended.Sets)

	assert.Empty(t, s.PopEvents(), "events drain on pop")
}
