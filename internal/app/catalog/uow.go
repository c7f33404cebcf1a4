package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/okorolev/liftlog_backend/internal/adapter/storage"
	exercisestorage "github.com/okorolev/liftlog_backend/internal/adapter/storage/exercises"
	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
)

type ExerciseStorage interface {
	Add(ctx context.Context, ex *exercise.Exercise) error
	GetByID(ctx context.Context, exerciseID string) (*exercise.Exercise, error)
	List(ctx context.Context) ([]*exercise.Exercise, error)
	Update(ctx context.Context, old, updated *exercise.Exercise) error
	Delete(ctx context.Context, exerciseID string) error
	CollectEvents() []domain.Event
	Close() error
}

type AtomicContext struct {
	ctx             context.Context
	db              storage.DBContext
	ExerciseStorage ExerciseStorage
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() (err error) {
	if closeErr := a.ExerciseStorage.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		err = errors.Join(fmt.Errorf("failed to close storage"), err)
	}

	return err
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.ExerciseStorage.CollectEvents()
}

func NewAtomicContext(ctx context.Context, dbContext storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:             ctx,
		db:              dbContext,
		ExerciseStorage: exercisestorage.NewPostgresStorage(dbContext),
	}, nil
}
