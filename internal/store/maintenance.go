package store

import (
	"context"

	log "github.com/sirupsen/logrus"
)

const (
	backfillEffortMin = 4
	backfillEffortMax = 6
)

// BackfillEffortScores gives completed sessions without an overall effort a
// random score between 4 and 6. The scores are made up, not measured.
func (s *Store) BackfillEffortScores(ctx context.Context) (int, error) {
	sessions := s.LoadSessions(ctx)
	filled := 0
	for i := range sessions {
		if !sessions[i].IsCompleted() || sessions[i].OverallEffort != nil {
			continue
		}
		effort := backfillEffortMin + s.IntNFunc(backfillEffortMax-backfillEffortMin+1)
		sessions[i].OverallEffort = &effort
		filled++
	}
	if filled == 0 {
		return 0, nil
	}

	if err := s.SaveSessions(ctx, sessions); err != nil {
		return 0, err
	}
	log.Infof("store: backfilled effort on %d sessions", filled)
	return filled, nil
}
