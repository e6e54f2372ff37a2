package workouts

import "time"

// SessionPatch is a shallow partial update of a Session; nil fields are left unchanged.
type SessionPatch struct {
	Name          *string
	CompletedAt   *time.Time
	TotalDuration *int
	OverallEffort *int
	CardioType    *string
	Distance      *float64
}

func (p SessionPatch) Apply(s *Session) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.CompletedAt != nil {
		t := *p.CompletedAt
		s.CompletedAt = &t
	}
	if p.TotalDuration != nil {
		d := *p.TotalDuration
		s.TotalDuration = &d
	}
	if p.OverallEffort != nil {
		e := *p.OverallEffort
		s.OverallEffort = &e
	}
	if p.CardioType != nil {
		s.CardioType = *p.CardioType
	}
	if p.Distance != nil {
		d := *p.Distance
		s.Distance = &d
	}
}

// SavedWorkoutPatch is a shallow partial update of a SavedWorkout.
// A nil Blocks slice leaves the blocks unchanged.
type SavedWorkoutPatch struct {
	Name             *string
	EstimatedMinutes *int
	Blocks           []Block
}

func (p SavedWorkoutPatch) Apply(w *SavedWorkout) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.EstimatedMinutes != nil {
		m := *p.EstimatedMinutes
		w.EstimatedMinutes = &m
	}
	if p.Blocks != nil {
		w.Blocks = p.Blocks
	}
}
