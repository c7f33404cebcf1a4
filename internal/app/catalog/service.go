package catalog

import (
	"context"
	"log/slog"

	"github.com/okorolev/liftlog_backend/internal/app/unitofwork"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
)

// Service manages the exercise catalog: validated, immutable exercise
// records referenced by logged sets.
type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

func (s *Service) CreateExercise(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	exerciseID, name, kind, equipment string,
	muscles []string,
) (ex *exercise.Exercise, outErr error) {
	outErr = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		k, err := exercise.ParseKind(kind)
		if err != nil {
			return err
		}

		if ex, err = exercise.New(exerciseID, name, k, equipment, muscles); err != nil {
			return err
		}

		if err := ctx.ExerciseStorage.Add(ctx.Context(), ex); err != nil {
			return err
		}

		return ctx.Commit()
	})
	return
}

func (s *Service) GetExerciseByID(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	exerciseID string,
) (ex *exercise.Exercise, outErr error) {
	outErr = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		var err error
		if ex, err = ctx.ExerciseStorage.GetByID(ctx.Context(), exerciseID); err != nil {
			return err
		}

		return ctx.Commit()
	})
	return
}

func (s *Service) ListExercises(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
) (list []*exercise.Exercise, outErr error) {
	outErr = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		var err error
		if list, err = ctx.ExerciseStorage.List(ctx.Context()); err != nil {
			return err
		}

		return ctx.Commit()
	})
	return
}

// UpdateExercise replaces a record with a freshly validated one under the
// same identifier.
func (s *Service) UpdateExercise(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	exerciseID, name, kind, equipment string,
	muscles []string,
) (ex *exercise.Exercise, outErr error) {
	outErr = uow.Atomic(ctx, func(ctx *AtomicContext) error {
		old, err := ctx.ExerciseStorage.GetByID(ctx.Context(), exerciseID)
		if err != nil {
			return err
		}

		k, err := exercise.ParseKind(kind)
		if err != nil {
			return err
		}

		if ex, err = exercise.New(exerciseID, name, k, equipment, muscles); err != nil {
			return err
		}

		if err := ctx.ExerciseStorage.Update(ctx.Context(), old, ex); err != nil {
			return err
		}

		return ctx.Commit()
	})
	return
}

func (s *Service) DeleteExercise(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	exerciseID string,
) error {
	return uow.Atomic(ctx, func(ctx *AtomicContext) error {
		if err := ctx.ExerciseStorage.Delete(ctx.Context(), exerciseID); err != nil {
			return err
		}

		return ctx.Commit()
	})
}
