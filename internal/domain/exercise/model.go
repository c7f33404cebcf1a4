package exercise

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/okorolev/liftlog_backend/internal/domain"
)

var (
	ErrExerciseExists   = errors.New("exercise already exists")
	ErrExerciseNotFound = errors.New("exercise not found")

	ErrNameTooShort = fmt.Errorf("%w: name must be at least 2 characters long", domain.ErrValidation)
	ErrUnknownKind  = fmt.Errorf("%w: kind must be strength, cardio or recovery", domain.ErrValidation)
	ErrNoEquipment  = fmt.Errorf("%w: equipment must not be empty", domain.ErrValidation)
	ErrNoMuscles    = fmt.Errorf("%w: at least one muscle group is required", domain.ErrValidation)
)

type Kind string

const (
	KindStrength Kind = "strength"
	KindCardio   Kind = "cardio"
	KindRecovery Kind = "recovery"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch k {
	case KindStrength, KindCardio, KindRecovery:
		return k, nil
	}
	return "", ErrUnknownKind
}

// Exercise is a validated catalog record. It is treated as immutable once
// constructed: changing one means constructing a replacement.
type Exercise struct {
	ExerciseID string    `diff:"-"`
	Name       string    `diff:"name"`
	Kind       Kind      `diff:"kind"`
	Equipment  string    `diff:"equipment"`
	Muscles    []string  `diff:"-"`
	CreatedAt  time.Time `diff:"-"`
}

// New validates its input and returns a catalog record. Muscle names are
// deduplicated case-insensitively, keeping first occurrence and order.
func New(exerciseID, name string, kind Kind, equipment string, muscles []string) (*Exercise, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) < 2 {
		return nil, ErrNameTooShort
	}
	if _, err := ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if strings.TrimSpace(equipment) == "" {
		return nil, ErrNoEquipment
	}

	uniq := make([]string, 0, len(muscles))
	seen := make(map[string]struct{}, len(muscles))
	for _, m := range muscles {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		key := strings.ToLower(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		uniq = append(uniq, m)
	}
	if len(uniq) == 0 {
		return nil, ErrNoMuscles
	}

	return &Exercise{
		ExerciseID: exerciseID,
		Name:       name,
		Kind:       kind,
		Equipment:  strings.TrimSpace(equipment),
		Muscles:    uniq,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
