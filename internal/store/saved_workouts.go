package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jasonschulke/mooove/internal/builder"
	"github.com/jasonschulke/mooove/internal/exercises"
	"github.com/jasonschulke/mooove/internal/workouts"

	log "github.com/sirupsen/logrus"
)

func validateSavedWorkouts(saved []workouts.SavedWorkout) error {
	for i, w := range saved {
		if w.ID == "" || w.Name == "" {
			return fmt.Errorf("saved workout %d: missing id or name", i)
		}
	}
	return nil
}

func (s *Store) LoadSavedWorkouts(ctx context.Context) []workouts.SavedWorkout {
	saved, ok := loadDocument(ctx, s, KeySavedWorkouts, schemaSavedWorkouts, validateSavedWorkouts)
	if !ok || saved == nil {
		return []workouts.SavedWorkout{}
	}
	return saved
}

func (s *Store) SaveSavedWorkouts(ctx context.Context, saved []workouts.SavedWorkout) error {
	if saved == nil {
		saved = []workouts.SavedWorkout{}
	}
	return s.saveDocument(ctx, KeySavedWorkouts, schemaSavedWorkouts, saved)
}

func (s *Store) AddSavedWorkout(
	ctx context.Context,
	name string,
	blocks []workouts.Block,
	estimatedMinutes *int,
) (*workouts.SavedWorkout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, builder.ErrNameRequired
	}

	now := s.NowFunc()
	w := workouts.SavedWorkout{
		ID:               s.NewIDFunc("workout"),
		Name:             name,
		EstimatedMinutes: estimatedMinutes,
		Blocks:           blocks,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	saved := append(s.LoadSavedWorkouts(ctx), w)
	if err := s.SaveSavedWorkouts(ctx, saved); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *Store) GetSavedWorkoutByID(ctx context.Context, id string) (*workouts.SavedWorkout, error) {
	for _, w := range s.LoadSavedWorkouts(ctx) {
		if w.ID == id {
			return &w, nil
		}
	}
	return nil, fmt.Errorf("saved workout %s: %w", id, ErrNotFound)
}

// UpdateSavedWorkout merges patch into the saved workout. createdAt is kept,
// updatedAt always moves forward.
func (s *Store) UpdateSavedWorkout(ctx context.Context, id string, patch workouts.SavedWorkoutPatch) (*workouts.SavedWorkout, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, builder.ErrNameRequired
	}

	saved := s.LoadSavedWorkouts(ctx)
	for i := range saved {
		if saved[i].ID != id {
			continue
		}
		patch.Apply(&saved[i])
		saved[i].UpdatedAt = s.touch(saved[i].UpdatedAt)
		if err := s.SaveSavedWorkouts(ctx, saved); err != nil {
			return nil, err
		}
		updated := saved[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("saved workout %s: %w", id, ErrNotFound)
}

// DeleteSavedWorkout removes the saved workout; a missing id is a no-op.
func (s *Store) DeleteSavedWorkout(ctx context.Context, id string) error {
	saved := s.LoadSavedWorkouts(ctx)
	kept := saved[:0]
	for _, w := range saved {
		if w.ID != id {
			kept = append(kept, w)
		}
	}
	if len(kept) == len(saved) {
		return nil
	}
	return s.SaveSavedWorkouts(ctx, kept)
}

// SeedLibrary stores the default workout template when the library is empty.
// Returns true if it seeded.
func (s *Store) SeedLibrary(ctx context.Context) (bool, error) {
	if len(s.LoadSavedWorkouts(ctx)) > 0 {
		return false, nil
	}

	blocks, err := defaultTemplateBlocks(s.Catalog(ctx), s.LoadEquipmentConfig(ctx))
	if err != nil {
		return false, fmt.Errorf("build default template: %w", err)
	}
	minutes := 40
	if _, err := s.AddSavedWorkout(ctx, "Full Body Starter", blocks, &minutes); err != nil {
		return false, err
	}

	log.Debugln("store: seeded default workout library")
	return true, nil
}

func defaultTemplateBlocks(catalog *exercises.Catalog, equipment exercises.EquipmentConfig) ([]workouts.Block, error) {
	b := builder.New()

	warmup, err := b.AddBlock(workouts.BlockWarmup)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{"jumping-jacks", "worlds-greatest-stretch", "cat-cow"} {
		if _, err := b.AddExercise(warmup, 1, id); err != nil {
			return nil, err
		}
	}

	strength, err := b.AddBlock(workouts.BlockStrength)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{"goblet-squat", "db-row", "kb-swing"} {
		if _, err := b.AddExercise(strength, 1, id); err != nil {
			return nil, err
		}
	}
	// strength blocks start with three sets, fill 2 and 3 from set 1
	for set := 1; set < 3; set++ {
		for pos := range 3 {
			if err := b.CopyToNextSet(strength, set, pos); err != nil {
				return nil, err
			}
		}
	}

	conditioning, err := b.AddBlock(workouts.BlockConditioning)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{"burpees", "mountain-climbers"} {
		if _, err := b.AddExercise(conditioning, 1, id); err != nil {
			return nil, err
		}
	}

	cooldown, err := b.AddBlock(workouts.BlockCooldown)
	if err != nil {
		return nil, err
	}
	for _, id := range []string{"childs-pose", "hamstring-stretch"} {
		if _, err := b.AddExercise(cooldown, 1, id); err != nil {
			return nil, err
		}
	}

	return b.Finalize(catalog, equipment)
}
