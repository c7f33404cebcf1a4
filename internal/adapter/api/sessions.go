package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/okorolev/liftlog_backend/internal/app/workoutapp"
	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
	"github.com/okorolev/liftlog_backend/internal/domain/workout"
)

func (s *Server) MountSession() {
	loginRequired := LoginRequired(s.authService.Authorizer)
	s.handler.POST("/session/start", s.StartSession, loginRequired)
	s.handler.POST("/session/pause", s.PauseSession, loginRequired)
	s.handler.POST("/session/resume", s.ResumeSession, loginRequired)
	s.handler.POST("/session/end", s.EndSession, loginRequired)
	s.handler.GET("/session", s.GetSession, loginRequired)
	s.handler.POST("/session/sets", s.LogSet, loginRequired)
	s.handler.PUT("/session/sets/:index", s.ReplaceSet, loginRequired)
	s.handler.DELETE("/session/sets/:index", s.RemoveSet, loginRequired)
}

type SetModel struct {
	ExerciseID   string    `json:"exercise_id"`
	ExerciseName string    `json:"exercise_name"`
	WeightKg     float64   `json:"weight_kg"`
	Reps         int       `json:"reps"`
	RPE          int       `json:"rpe"`
	Volume       string    `json:"volume"`
	CreatedAt    time.Time `json:"created_at"`
}

func newSetModel(entry *workout.SetEntry) SetModel {
	return SetModel{
		ExerciseID:   entry.Exercise().ExerciseID,
		ExerciseName: entry.Exercise().Name,
		WeightKg:     entry.WeightKg(),
		Reps:         entry.Reps(),
		RPE:          entry.RPE(),
		Volume:       entry.Volume().String(),
		CreatedAt:    entry.CreatedAt(),
	}
}

type SessionResponse struct {
	Active          bool       `json:"active"`
	Paused          bool       `json:"paused"`
	StartedAt       *time.Time `json:"started_at,omitempty"`
	DurationSeconds float64    `json:"duration_seconds"`
	TotalVolume     string     `json:"total_volume"`
	Sets            []SetModel `json:"sets"`
}

func newSessionResponse(view workoutapp.SessionView) SessionResponse {
	var startedAt *time.Time
	if !view.StartedAt.IsZero() {
		t := view.StartedAt
		startedAt = &t
	}
	return SessionResponse{
		Active:          view.Active,
		Paused:          view.Paused,
		StartedAt:       startedAt,
		DurationSeconds: view.Duration.Seconds(),
		TotalVolume:     view.TotalVolume.String(),
		Sets: lo.Map(view.Sets, func(entry *workout.SetEntry, _ int) SetModel {
			return newSetModel(entry)
		}),
	}
}

func (s *Server) StartSession(c echo.Context) error {
	s.workoutService.StartSession()
	return c.JSON(http.StatusOK, newSessionResponse(s.workoutService.View()))
}

func (s *Server) PauseSession(c echo.Context) error {
	s.workoutService.PauseSession()
	return c.NoContent(http.StatusNoContent)
}

func (s *Server) ResumeSession(c echo.Context) error {
	s.workoutService.ResumeSession()
	return c.NoContent(http.StatusNoContent)
}

type EndSessionResponse struct {
	Ended           bool    `json:"ended"`
	SessionID       string  `json:"session_id,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	TotalVolume     string  `json:"total_volume,omitempty"`
}

func (s *Server) EndSession(c echo.Context) error {
	completed, ended := s.workoutService.EndSession()
	if !ended {
		return c.JSON(http.StatusOK, EndSessionResponse{Ended: false})
	}
	return c.JSON(http.StatusOK, EndSessionResponse{
		Ended:           true,
		SessionID:       completed.SessionID,
		DurationSeconds: completed.Session.Duration().Seconds(),
		TotalVolume:     completed.Session.TotalVolume().String(),
	})
}

func (s *Server) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, newSessionResponse(s.workoutService.View()))
}

type LogSetRequest struct {
	ExerciseID string  `json:"exercise_id" validate:"required,uuid"`
	WeightKg   float64 `json:"weight_kg"`
	Reps       int     `json:"reps"`
	RPE        int     `json:"rpe"`
}

func (s *Server) LogSet(c echo.Context) error {
	var req LogSetRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	uow := s.getCatalogUoW()
	ctx := c.Request().Context()

	ex, err := s.catalogService.GetExerciseByID(ctx, uow, req.ExerciseID)
	if err != nil {
		if errors.Is(err, exercise.ErrExerciseNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	entry, err := s.workoutService.LogSet(ex, req.WeightKg, req.Reps, req.RPE)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, newSetModel(entry))
}

type ReplaceSetRequest struct {
	Index      int     `param:"index"`
	ExerciseID string  `json:"exercise_id" validate:"required,uuid"`
	WeightKg   float64 `json:"weight_kg"`
	Reps       int     `json:"reps"`
	RPE        int     `json:"rpe"`
}

func (s *Server) ReplaceSet(c echo.Context) error {
	var req ReplaceSetRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	uow := s.getCatalogUoW()
	ctx := c.Request().Context()

	ex, err := s.catalogService.GetExerciseByID(ctx, uow, req.ExerciseID)
	if err != nil {
		if errors.Is(err, exercise.ErrExerciseNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	if _, err := s.workoutService.ReplaceSet(req.Index, ex, req.WeightKg, req.Reps, req.RPE); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, newSessionResponse(s.workoutService.View()))
}

type RemoveSetRequest struct {
	Index int `param:"index"`
}

func (s *Server) RemoveSet(c echo.Context) error {
	var req RemoveSetRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	s.workoutService.RemoveSet(req.Index)
	return c.NoContent(http.StatusNoContent)
}
