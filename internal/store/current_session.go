package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jasonschulke/mooove/internal/workouts"
)

// LoadCurrentSession returns the in-progress session, or nil when there is none.
func (s *Store) LoadCurrentSession(ctx context.Context) *workouts.Session {
	session, ok := loadDocument(ctx, s, KeyCurrentSession, schemaCurrentSession, validateSession)
	if !ok {
		return nil
	}
	return &session
}

func (s *Store) SaveCurrentSession(ctx context.Context, session workouts.Session) error {
	return s.saveDocument(ctx, KeyCurrentSession, schemaCurrentSession, session)
}

func (s *Store) ClearCurrentSession(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyCurrentSession); err != nil {
		return fmt.Errorf("clear current session: %w", err)
	}
	return nil
}

// StartSession opens a new in-progress session from the given blocks.
func (s *Store) StartSession(ctx context.Context, name string, blocks []workouts.Block) (*workouts.Session, error) {
	if current := s.LoadCurrentSession(ctx); current != nil {
		return nil, fmt.Errorf("%w: %s", ErrSessionInProgress, current.Name)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = "Workout"
	}
	session := workouts.Session{
		ID:        s.NewIDFunc("session"),
		Name:      name,
		Blocks:    blocks,
		StartedAt: s.NowFunc(),
		Exercises: []workouts.ExerciseLog{},
	}
	if err := s.SaveCurrentSession(ctx, session); err != nil {
		return nil, err
	}
	return &session, nil
}

// LogExercise appends a completed exercise to the in-progress session.
func (s *Store) LogExercise(ctx context.Context, entry workouts.ExerciseLog) (*workouts.Session, error) {
	current := s.LoadCurrentSession(ctx)
	if current == nil {
		return nil, ErrNoActiveSession
	}
	if entry.ExerciseID == "" {
		return nil, fmt.Errorf("%w: missing exercise id", ErrInvalidExercise)
	}
	if err := checkEffort(entry.Effort); err != nil {
		return nil, err
	}
	if entry.CompletedAt.IsZero() {
		entry.CompletedAt = s.NowFunc()
	}

	current.Exercises = append(current.Exercises, entry)
	if err := s.SaveCurrentSession(ctx, *current); err != nil {
		return nil, err
	}
	return current, nil
}

// FinishSession completes the in-progress session and moves it to the top
// of the session list.
func (s *Store) FinishSession(ctx context.Context, overallEffort *int) (*workouts.Session, error) {
	if err := checkEffort(overallEffort); err != nil {
		return nil, err
	}
	current := s.LoadCurrentSession(ctx)
	if current == nil {
		return nil, ErrNoActiveSession
	}

	completedAt := s.NowFunc()
	if completedAt.Before(current.StartedAt) {
		completedAt = current.StartedAt
	}
	current.CompletedAt = &completedAt
	if current.TotalDuration == nil {
		seconds := int(completedAt.Sub(current.StartedAt).Seconds())
		current.TotalDuration = &seconds
	}
	if overallEffort != nil {
		effort := *overallEffort
		current.OverallEffort = &effort
	}

	finished, err := s.AddSession(ctx, *current)
	if err != nil {
		return nil, err
	}
	if err := s.ClearCurrentSession(ctx); err != nil {
		return nil, err
	}
	return finished, nil
}

func checkEffort(effort *int) error {
	if effort != nil && (*effort < 1 || *effort > 10) {
		return fmt.Errorf("%w: got %d", ErrInvalidEffort, *effort)
	}
	return nil
}
