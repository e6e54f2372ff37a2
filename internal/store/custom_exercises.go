package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jasonschulke/mooove/internal/exercises"
	"github.com/jasonschulke/mooove/internal/workouts"
)

// ExercisePatch is a partial update of a custom exercise; nil fields are unchanged.
type ExercisePatch struct {
	Name            *string
	Area            *exercises.Area
	Equipment       *exercises.Equipment
	DefaultWeight   *float64
	DefaultReps     *workouts.Reps
	DefaultDuration *int
	Description     *string
	Alternatives    []string
}

func validateCustomExercise(ex exercises.Exercise) error {
	if !ex.IsCustom() {
		return fmt.Errorf("%w: id %q lacks the %q prefix", ErrInvalidExercise, ex.ID, exercises.CustomIDPrefix)
	}
	if strings.TrimSpace(ex.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidExercise)
	}
	if !ex.Area.Valid() {
		return fmt.Errorf("%w: unknown area %q", ErrInvalidExercise, ex.Area)
	}
	if !ex.Equipment.Valid() {
		return fmt.Errorf("%w: unknown equipment %q", ErrInvalidExercise, ex.Equipment)
	}
	return nil
}

func validateCustomExercises(exs []exercises.Exercise) error {
	for _, ex := range exs {
		if err := validateCustomExercise(ex); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) LoadCustomExercises(ctx context.Context) []exercises.Exercise {
	exs, ok := loadDocument(ctx, s, KeyCustomExercises, schemaCustomExercises, validateCustomExercises)
	if !ok || exs == nil {
		return []exercises.Exercise{}
	}
	return exs
}

func (s *Store) SaveCustomExercises(ctx context.Context, exs []exercises.Exercise) error {
	if exs == nil {
		exs = []exercises.Exercise{}
	}
	return s.saveDocument(ctx, KeyCustomExercises, schemaCustomExercises, exs)
}

// Catalog returns built-in and custom exercises combined.
func (s *Store) Catalog(ctx context.Context) *exercises.Catalog {
	return exercises.NewCatalog(s.LoadCustomExercises(ctx))
}

func (s *Store) LoadAllExercises(ctx context.Context) []exercises.Exercise {
	return s.Catalog(ctx).All()
}

func (s *Store) GetExerciseByID(ctx context.Context, id string) (*exercises.Exercise, error) {
	ex, ok := s.Catalog(ctx).Get(id)
	if !ok {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
	}
	return &ex, nil
}

// AddCustomExercise stores ex under a fresh custom id.
func (s *Store) AddCustomExercise(ctx context.Context, ex exercises.Exercise) (*exercises.Exercise, error) {
	ex.ID = s.NewIDFunc(strings.TrimSuffix(exercises.CustomIDPrefix, "-"))
	ex.Name = strings.TrimSpace(ex.Name)
	if err := validateCustomExercise(ex); err != nil {
		return nil, err
	}

	exs := append(s.LoadCustomExercises(ctx), ex)
	if err := s.SaveCustomExercises(ctx, exs); err != nil {
		return nil, err
	}
	return &ex, nil
}

func (s *Store) UpdateCustomExercise(ctx context.Context, id string, patch ExercisePatch) (*exercises.Exercise, error) {
	if exercises.IsBuiltIn(id) {
		return nil, fmt.Errorf("exercise %s: %w", id, ErrBuiltInExercise)
	}

	exs := s.LoadCustomExercises(ctx)
	for i := range exs {
		if exs[i].ID != id {
			continue
		}
		updated := exs[i]
		patch.apply(&updated)
		if err := validateCustomExercise(updated); err != nil {
			return nil, err
		}
		exs[i] = updated
		if err := s.SaveCustomExercises(ctx, exs); err != nil {
			return nil, err
		}
		return &updated, nil
	}
	return nil, fmt.Errorf("exercise %s: %w", id, ErrNotFound)
}

// DeleteCustomExercise removes a custom exercise; a missing id is a no-op.
func (s *Store) DeleteCustomExercise(ctx context.Context, id string) error {
	if exercises.IsBuiltIn(id) {
		return fmt.Errorf("exercise %s: %w", id, ErrBuiltInExercise)
	}

	exs := s.LoadCustomExercises(ctx)
	kept := exs[:0]
	for _, ex := range exs {
		if ex.ID != id {
			kept = append(kept, ex)
		}
	}
	if len(kept) == len(exs) {
		return nil
	}
	return s.SaveCustomExercises(ctx, kept)
}

func (p ExercisePatch) apply(ex *exercises.Exercise) {
	if p.Name != nil {
		ex.Name = strings.TrimSpace(*p.Name)
	}
	if p.Area != nil {
		ex.Area = *p.Area
	}
	if p.Equipment != nil {
		ex.Equipment = *p.Equipment
	}
	if p.DefaultWeight != nil {
		w := *p.DefaultWeight
		ex.DefaultWeight = &w
	}
	if p.DefaultReps != nil {
		r := *p.DefaultReps
		ex.DefaultReps = &r
	}
	if p.DefaultDuration != nil {
		d := *p.DefaultDuration
		ex.DefaultDuration = &d
	}
	if p.Description != nil {
		ex.Description = *p.Description
	}
	if p.Alternatives != nil {
		ex.Alternatives = p.Alternatives
	}
}
