package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jasonschulke/mooove/internal/workouts"
)

func validateSessions(sessions []workouts.Session) error {
	for i, s := range sessions {
		if err := validateSession(s); err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
	}
	return nil
}

func validateSession(s workouts.Session) error {
	if s.ID == "" {
		return fmt.Errorf("missing id")
	}
	if s.StartedAt.IsZero() {
		return fmt.Errorf("session %s: missing startedAt", s.ID)
	}
	return nil
}

// LoadSessions returns all finished sessions, most recent first.
func (s *Store) LoadSessions(ctx context.Context) []workouts.Session {
	sessions, ok := loadDocument(ctx, s, KeySessions, schemaSessions, validateSessions)
	if !ok || sessions == nil {
		return []workouts.Session{}
	}
	return sessions
}

func (s *Store) SaveSessions(ctx context.Context, sessions []workouts.Session) error {
	if sessions == nil {
		sessions = []workouts.Session{}
	}
	return s.saveDocument(ctx, KeySessions, schemaSessions, sessions)
}

// AddSession prepends a session to the list, assigning an id if it has none.
func (s *Store) AddSession(ctx context.Context, session workouts.Session) (*workouts.Session, error) {
	if session.ID == "" {
		session.ID = s.NewIDFunc("session")
	}
	if session.StartedAt.IsZero() {
		return nil, fmt.Errorf("add session %s: missing startedAt", session.ID)
	}

	sessions := s.LoadSessions(ctx)
	sessions = append([]workouts.Session{session}, sessions...)
	if err := s.SaveSessions(ctx, sessions); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Store) GetSessionByID(ctx context.Context, id string) (*workouts.Session, error) {
	for _, session := range s.LoadSessions(ctx) {
		if session.ID == id {
			return &session, nil
		}
	}
	return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
}

func (s *Store) UpdateSession(ctx context.Context, id string, patch workouts.SessionPatch) (*workouts.Session, error) {
	sessions := s.LoadSessions(ctx)
	for i := range sessions {
		if sessions[i].ID != id {
			continue
		}
		patch.Apply(&sessions[i])
		if err := s.SaveSessions(ctx, sessions); err != nil {
			return nil, err
		}
		updated := sessions[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
}

// DeleteSession removes the session; a missing id is a no-op.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	sessions := s.LoadSessions(ctx)
	kept := sessions[:0]
	for _, session := range sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	if len(kept) == len(sessions) {
		return nil
	}
	return s.SaveSessions(ctx, kept)
}

// DeleteSessionsOnDate removes sessions started on the local date dateKey.
// With placeholdersOnly, sessions holding logged exercises are kept.
func (s *Store) DeleteSessionsOnDate(ctx context.Context, dateKey string, loc *time.Location, placeholdersOnly bool) (int, error) {
	sessions := s.LoadSessions(ctx)
	kept := make([]workouts.Session, 0, len(sessions))
	for _, session := range sessions {
		if session.OnDate(dateKey, loc) && (!placeholdersOnly || !session.IsReal()) {
			continue
		}
		kept = append(kept, session)
	}

	removed := len(sessions) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	if err := s.SaveSessions(ctx, kept); err != nil {
		return 0, err
	}
	return removed, nil
}
