package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"

	"github.com/okorolev/liftlog_backend/internal/app/catalog"
	"github.com/okorolev/liftlog_backend/internal/app/unitofwork"
	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
)

func (s *Server) MountExercises() {
	loginRequired := LoginRequired(s.authService.Authorizer)
	s.handler.POST("/exercises/:exercise_id", s.CreateExercise, loginRequired)
	s.handler.GET("/exercises/:exercise_id", s.GetExercise, loginRequired)
	s.handler.GET("/exercises", s.ListExercises, loginRequired)
	s.handler.PUT("/exercises/:exercise_id", s.UpdateExercise, loginRequired)
	s.handler.DELETE("/exercises/:exercise_id", s.DeleteExercise, loginRequired)
}

func (s *Server) getCatalogUoW() *unitofwork.UnitOfWork[*catalog.AtomicContext] {
	return unitofwork.New[*catalog.AtomicContext](
		s.db,
		catalog.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type ExerciseModel struct {
	ExerciseID string    `json:"exercise_id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Equipment  string    `json:"equipment"`
	Muscles    []string  `json:"muscles"`
	CreatedAt  time.Time `json:"created_at"`
}

func newExerciseModel(ex *exercise.Exercise) ExerciseModel {
	return ExerciseModel{
		ExerciseID: ex.ExerciseID,
		Name:       ex.Name,
		Kind:       string(ex.Kind),
		Equipment:  ex.Equipment,
		Muscles:    ex.Muscles,
		CreatedAt:  ex.CreatedAt,
	}
}

type CreateExerciseRequest struct {
	ExerciseID string   `param:"exercise_id" validate:"required,uuid"`
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Equipment  string   `json:"equipment"`
	Muscles    []string `json:"muscles"`
}

func (s *Server) CreateExercise(c echo.Context) error {
	var req CreateExerciseRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	uow := s.getCatalogUoW()
	ctx := c.Request().Context()

	ex, err := s.catalogService.CreateExercise(ctx, uow, req.ExerciseID, req.Name, req.Kind, req.Equipment, req.Muscles)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		if errors.Is(err, exercise.ErrExerciseExists) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, newExerciseModel(ex))
}

type GetExerciseRequest struct {
	ExerciseID string `param:"exercise_id" validate:"required,uuid"`
}

func (s *Server) GetExercise(c echo.Context) error {
	var req GetExerciseRequest
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

	return c.JSON(http.StatusOK, newExerciseModel(ex))
}

type ListExercisesResponse struct {
	Exercises []ExerciseModel `json:"exercises"`
}

func (s *Server) ListExercises(c echo.Context) error {
	uow := s.getCatalogUoW()
	ctx := c.Request().Context()

	lst, err := s.catalogService.ListExercises(ctx, uow)
	if err != nil {
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, ListExercisesResponse{
		Exercises: lo.Map(lst, func(ex *exercise.Exercise, _ int) ExerciseModel {
			return newExerciseModel(ex)
		}),
	})
}

type UpdateExerciseRequest struct {
	ExerciseID string   `param:"exercise_id" validate:"required,uuid"`
	Name       string   `json:"name"`
	Kind       string   `json:"kind"`
	Equipment  string   `json:"equipment"`
	Muscles    []string `json:"muscles"`
}

func (s *Server) UpdateExercise(c echo.Context) error {
	var req UpdateExerciseRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	uow := s.getCatalogUoW()
	ctx := c.Request().Context()

	ex, err := s.catalogService.UpdateExercise(ctx, uow, req.ExerciseID, req.Name, req.Kind, req.Equipment, req.Muscles)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return JsonError(c, http.StatusBadRequest, err)
		}
		if errors.Is(err, exercise.ErrExerciseNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusOK, newExerciseModel(ex))
}

type DeleteExerciseRequest struct {
	ExerciseID string `param:"exercise_id" validate:"required,uuid"`
}

func (s *Server) DeleteExercise(c echo.Context) error {
	var req DeleteExerciseRequest
	if err := s.bind(c, &req); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}
	uow := s.getCatalogUoW()
	ctx := c.Request().Context()

	if err := s.catalogService.DeleteExercise(ctx, uow, req.ExerciseID); err != nil {
		if errors.Is(err, exercise.ErrExerciseNotFound) {
			return JsonError(c, http.StatusNotFound, err)
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.NoContent(http.StatusNoContent)
}
