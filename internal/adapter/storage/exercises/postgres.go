package exercisestorage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"
	"github.com/samber/lo"

	"github.com/okorolev/liftlog_backend/internal/adapter/storage"
	"github.com/okorolev/liftlog_backend/internal/adapter/storage/pgutil"
	"github.com/okorolev/liftlog_backend/internal/domain"
	"github.com/okorolev/liftlog_backend/internal/domain/exercise"
)

type PostgresStorage struct {
	db storage.DBContext
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{db: db}
}

func (s *PostgresStorage) Add(ctx context.Context, ex *exercise.Exercise) error {
	q := sqlf.InsertInto("exercises").
		Set("exercise_id", ex.ExerciseID).
		Set("name", ex.Name).
		Set("kind", string(ex.Kind)).
		Set("equipment", ex.Equipment).
		Set("created_at", ex.CreatedAt)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.ViolatesConstraint(err, "exercises_pkey") {
			return exercise.ErrExerciseExists
		}
		return storage.InternalError(err)
	}

	return s.insertMuscles(ctx, ex.ExerciseID, ex.Muscles)
}

func (s *PostgresStorage) insertMuscles(ctx context.Context, exerciseID string, muscles []string) error {
	for position, muscle := range muscles {
		q := sqlf.InsertInto("exercise_muscles").
			Set("exercise_id", exerciseID).
			Set("position", position).
			Set("muscle", muscle)

		if _, err := q.ExecAndClose(ctx, s.db); err != nil {
			return storage.InternalError(err)
		}
	}
	return nil
}

func (s *PostgresStorage) get(
	ctx context.Context,
	modify func(stmt *sqlf.Stmt),
) (map[string]*exercise.Exercise, []string, error) {
	var tmp struct {
		ExerciseID string
		Name       string
		Kind       string
		Equipment  string
		CreatedAt  sql.NullTime
		Muscle     sql.NullString
	}

	q := sqlf.From("exercises e").
		LeftJoin("exercise_muscles m", "e.exercise_id = m.exercise_id").
		Select("e.exercise_id").To(&tmp.ExerciseID).
		Select("e.name").To(&tmp.Name).
		Select("e.kind").To(&tmp.Kind).
		Select("e.equipment").To(&tmp.Equipment).
		Select("e.created_at").To(&tmp.CreatedAt).
		Select("m.muscle").To(&tmp.Muscle).
		OrderBy("e.created_at", "m.position")

	modify(q)

	result := make(map[string]*exercise.Exercise)
	var order []string

	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		ex, ok := result[tmp.ExerciseID]
		if !ok {
			ex = &exercise.Exercise{
				ExerciseID: tmp.ExerciseID,
				Name:       tmp.Name,
				Kind:       exercise.Kind(tmp.Kind),
				Equipment:  tmp.Equipment,
				CreatedAt:  tmp.CreatedAt.Time,
			}
			result[tmp.ExerciseID] = ex
			order = append(order, tmp.ExerciseID)
		}
		if tmp.Muscle.Valid {
			ex.Muscles = append(ex.Muscles, tmp.Muscle.String)
		}
	})

	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return result, order, nil
	}

	return nil, nil, storage.InternalError(err)
}

func (s *PostgresStorage) GetByID(ctx context.Context, exerciseID string) (*exercise.Exercise, error) {
	result, _, err := s.get(ctx, func(stmt *sqlf.Stmt) {
		stmt.Where("e.exercise_id = ?", exerciseID)
	})
	return pgutil.PeekOrErr(result, err, exercise.ErrExerciseNotFound)
}

func (s *PostgresStorage) List(ctx context.Context) ([]*exercise.Exercise, error) {
	result, order, err := s.get(ctx, func(stmt *sqlf.Stmt) {})
	if err != nil {
		return nil, err
	}
	return lo.Map(order, func(id string, _ int) *exercise.Exercise {
		return result[id]
	}), nil
}

// Update applies the field-level difference between old and updated, and
// replaces the muscle list when it changed.
func (s *PostgresStorage) Update(ctx context.Context, old, updated *exercise.Exercise) error {
	changes, err := diff.Diff(*old, *updated)
	if err != nil {
		return storage.InternalError(err)
	}

	if len(changes) > 0 {
		q := pgutil.MakeUpdateQuery(sqlf.Update("exercises"), changes).
			Where("exercise_id = ?", old.ExerciseID)

		res, err := q.ExecAndClose(ctx, s.db)
		if err := pgutil.AssertUpdated(res, err, exercise.ErrExerciseNotFound); err != nil {
			return err
		}
	}

	if !musclesEqual(old.Muscles, updated.Muscles) {
		del := sqlf.DeleteFrom("exercise_muscles").Where("exercise_id = ?", old.ExerciseID)
		if _, err := del.ExecAndClose(ctx, s.db); err != nil {
			return storage.InternalError(err)
		}
		if err := s.insertMuscles(ctx, old.ExerciseID, updated.Muscles); err != nil {
			return err
		}
	}

	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, exerciseID string) error {
	del := sqlf.DeleteFrom("exercise_muscles").Where("exercise_id = ?", exerciseID)
	if _, err := del.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}

	q := sqlf.DeleteFrom("exercises").Where("exercise_id = ?", exerciseID)
	res, err := q.ExecAndClose(ctx, s.db)
	return pgutil.AssertUpdated(res, err, exercise.ErrExerciseNotFound)
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	return nil
}

func (s *PostgresStorage) Close() error {
	return nil
}

func musclesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
