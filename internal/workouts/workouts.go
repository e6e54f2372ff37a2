package workouts

import (
	"strings"
	"time"
)

type BlockType string

const (
	BlockWarmup       BlockType = "warmup"
	BlockStrength     BlockType = "strength"
	BlockConditioning BlockType = "conditioning"
	BlockCardio       BlockType = "cardio"
	BlockCooldown     BlockType = "cooldown"
)

var BlockTypes = []BlockType{
	BlockWarmup,
	BlockStrength,
	BlockConditioning,
	BlockCardio,
	BlockCooldown,
}

func (t BlockType) Valid() bool {
	for _, bt := range BlockTypes {
		if bt == t {
			return true
		}
	}
	return false
}

// DefaultSets is the number of sets a freshly added block starts with.
func (t BlockType) DefaultSets() int {
	if t == BlockStrength {
		return 3
	}
	return 1
}

func (t BlockType) DisplayName() string {
	if t == "" {
		return ""
	}
	s := string(t)
	return strings.ToUpper(s[:1]) + s[1:]
}

// WorkoutExercise is a planned exercise inside a block. Sets is the set
// number the entry belongs to; nil means the block has a single set.
type WorkoutExercise struct {
	ExerciseID string   `json:"exerciseId"`
	Weight     *float64 `json:"weight,omitempty"`
	Reps       *Reps    `json:"reps,omitempty"`
	Duration   *int     `json:"duration,omitempty"`
	Sets       *int     `json:"sets,omitempty"`
}

func (e WorkoutExercise) SetNumber() int {
	if e.Sets == nil || *e.Sets < 1 {
		return 1
	}
	return *e.Sets
}

type Block struct {
	ID        string            `json:"id"`
	Type      BlockType         `json:"type"`
	Name      string            `json:"name"`
	Exercises []WorkoutExercise `json:"exercises"`
}

// ExerciseLog is one performed exercise, appended to a session when completed.
type ExerciseLog struct {
	ExerciseID  string    `json:"exerciseId"`
	Weight      *float64  `json:"weight,omitempty"`
	Reps        *Reps     `json:"reps,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	Effort      *int      `json:"effort,omitempty"`
	CompletedAt time.Time `json:"completedAt"`
}

type Session struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Blocks        []Block       `json:"blocks"`
	StartedAt     time.Time     `json:"startedAt"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	Exercises     []ExerciseLog `json:"exercises"`
	TotalDuration *int          `json:"totalDuration,omitempty"`
	OverallEffort *int          `json:"overallEffort,omitempty"`
	CardioType    string        `json:"cardioType,omitempty"`
	Distance      *float64      `json:"distance,omitempty"`
}

func (s Session) IsCompleted() bool {
	return s.CompletedAt != nil
}

// IsReal reports whether the session holds logged exercise data, as opposed
// to a backlog placeholder.
func (s Session) IsReal() bool {
	return len(s.Exercises) > 0
}

func (s Session) OnDate(dateKey string, loc *time.Location) bool {
	return DateKey(s.StartedAt, loc) == dateKey
}

type SavedWorkout struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	EstimatedMinutes *int      `json:"estimatedMinutes,omitempty"`
	Blocks           []Block   `json:"blocks"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
