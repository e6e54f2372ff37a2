package stats

import (
	"context"
	"math"
	"slices"
	"sort"
	"time"

	"github.com/jasonschulke/mooove/internal/telemetry/tracing"
	"github.com/jasonschulke/mooove/internal/workouts"

	"go.opentelemetry.io/otel/attribute"
)

const (
	// streakGapTolerance absorbs DST shifts between consecutive local midnights
	streakGapTolerance = 1.5 * 24 * time.Hour
	contributionDays   = 365
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=stats_test

type sessionsRepo interface {
	LoadSessions(ctx context.Context) []workouts.Session
}

// HistoryEntry is one logged exercise together with the session it belongs to.
type HistoryEntry struct {
	SessionID   string               `json:"sessionId"`
	SessionName string               `json:"sessionName"`
	StartedAt   time.Time            `json:"startedAt"`
	Log         workouts.ExerciseLog `json:"log"`
}

type ExerciseAverages struct {
	AvgWeight int `json:"avgWeight"`
	AvgReps   int `json:"avgReps"`
}

type WorkoutStats struct {
	TotalWorkouts int `json:"totalWorkouts"`
	ThisWeek      int `json:"thisWeek"`
	ThisMonth     int `json:"thisMonth"`
	// AvgDuration is in seconds
	AvgDuration   int `json:"avgDuration"`
	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`

	// DayOfWeek counts sessions per weekday, 0 = Sunday
	DayOfWeek [7]int `json:"dayOfWeek"`
}

type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Analyzer computes statistics over the full session list on every call.
type Analyzer struct {
	repo sessionsRepo

	// ability to inject clock and location (for unit testing)
	NowFunc  func() time.Time
	Location *time.Location
}

func NewAnalyzer(repo sessionsRepo) *Analyzer {
	return &Analyzer{
		repo:     repo,
		NowFunc:  time.Now,
		Location: time.Local,
	}
}

func (a *Analyzer) now() time.Time {
	return a.NowFunc().In(a.Location)
}

func (a *Analyzer) today() time.Time {
	return workouts.StartOfDay(a.now(), a.Location)
}

// ExerciseHistory returns up to limit logs of the exercise, newest session
// first. A limit <= 0 returns all of them.
func (a *Analyzer) ExerciseHistory(ctx context.Context, exerciseID string, limit int) []HistoryEntry {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.exerciseHistory")
	defer span.End()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	sessions := slices.Clone(a.repo.LoadSessions(ctx))
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})

	history := []HistoryEntry{}
	for _, session := range sessions {
		for _, l := range session.Exercises {
			if l.ExerciseID != exerciseID {
				continue
			}
			history = append(history, HistoryEntry{
				SessionID:   session.ID,
				SessionName: session.Name,
				StartedAt:   session.StartedAt,
				Log:         l,
			})
			if limit > 0 && len(history) == limit {
				return history
			}
		}
	}
	return history
}

// LastWeekAverages averages weight and numeric reps of the exercise over
// sessions started in the trailing 7 days. AMRAP sets are left out of the
// reps average. Returns nil when no log of the exercise is in the window.
func (a *Analyzer) LastWeekAverages(ctx context.Context, exerciseID string) *ExerciseAverages {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.lastWeekAverages")
	defer span.End()
	span.SetAttributes(attribute.String("exercise_id", exerciseID))

	weekAgo := a.now().Add(-7 * 24 * time.Hour)

	var (
		found              bool
		weightSum, repsSum float64
		weightCnt, repsCnt int
	)
	for _, session := range a.repo.LoadSessions(ctx) {
		if session.StartedAt.Before(weekAgo) {
			continue
		}
		for _, l := range session.Exercises {
			if l.ExerciseID != exerciseID {
				continue
			}
			found = true
			if l.Weight != nil {
				weightSum += *l.Weight
				weightCnt++
			}
			if l.Reps != nil {
				if n, ok := l.Reps.Count(); ok {
					repsSum += float64(n)
					repsCnt++
				}
			}
		}
	}

	if !found {
		return nil
	}

	avg := &ExerciseAverages{}
	if weightCnt > 0 {
		avg.AvgWeight = int(math.Round(weightSum / float64(weightCnt)))
	}
	if repsCnt > 0 {
		avg.AvgReps = int(math.Round(repsSum / float64(repsCnt)))
	}
	return avg
}

func (a *Analyzer) WorkoutStats(ctx context.Context) WorkoutStats {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.workoutStats")
	defer span.End()

	now := a.now()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.AddDate(0, -1, 0)

	var (
		stats       WorkoutStats
		durationSum int
		durationCnt int
		completed   []workouts.Session
	)
	for _, session := range a.repo.LoadSessions(ctx) {
		if !session.IsCompleted() {
			continue
		}
		completed = append(completed, session)

		stats.TotalWorkouts++
		if !session.StartedAt.Before(weekAgo) {
			stats.ThisWeek++
		}
		if !session.StartedAt.Before(monthAgo) {
			stats.ThisMonth++
		}
		if session.TotalDuration != nil {
			durationSum += *session.TotalDuration
			durationCnt++
		}
		stats.DayOfWeek[session.StartedAt.In(a.Location).Weekday()]++
	}

	if durationCnt > 0 {
		stats.AvgDuration = int(math.Round(float64(durationSum) / float64(durationCnt)))
	}
	stats.CurrentStreak, stats.LongestStreak = a.streaks(completed)

	return stats
}

// streaks walks the distinct local workout days, most recent first. The
// current streak only grows while the walk is still connected to today or
// yesterday.
func (a *Analyzer) streaks(sessions []workouts.Session) (current, longest int) {
	seen := make(map[string]bool)
	var days []time.Time
	for _, session := range sessions {
		day := workouts.StartOfDay(session.StartedAt, a.Location)
		key := workouts.DateKey(day, a.Location)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, day)
	}
	if len(days) == 0 {
		return 0, 0
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].After(days[j])
	})

	today := a.today()
	yesterday := today.AddDate(0, 0, -1)
	anchored := days[0].Equal(today) || days[0].Equal(yesterday)
	if anchored {
		current = 1
	}

	running := 1
	longest = 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) <= streakGapTolerance {
			running++
		} else {
			running = 1
			anchored = false
		}
		if anchored {
			current = running
		}
		if running > longest {
			longest = running
		}
	}

	return current, longest
}

// YearlyContributions counts completed sessions per day over the 365 days
// ending today, oldest first.
func (a *Analyzer) YearlyContributions(ctx context.Context) []DayCount {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.yearlyContributions")
	defer span.End()

	today := a.today()
	contributions := make([]DayCount, contributionDays)
	index := make(map[string]int, contributionDays)
	for i := 0; i < contributionDays; i++ {
		day := today.AddDate(0, 0, i-contributionDays+1)
		key := workouts.DateKey(day, a.Location)
		contributions[i] = DayCount{Date: key}
		index[key] = i
	}

	for _, session := range a.repo.LoadSessions(ctx) {
		if !session.IsCompleted() {
			continue
		}
		if i, ok := index[workouts.DateKey(session.StartedAt, a.Location)]; ok {
			contributions[i].Count++
		}
	}

	return contributions
}

// ThisWeekWorkoutDates returns the distinct dates, sorted, of sessions
// started since the most recent Sunday 00:00 local time.
func (a *Analyzer) ThisWeekWorkoutDates(ctx context.Context) []string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "analyzer.stats.thisWeekWorkoutDates")
	defer span.End()

	today := a.today()
	sunday := today.AddDate(0, 0, -int(today.Weekday()))

	seen := make(map[string]bool)
	dates := []string{}
	for _, session := range a.repo.LoadSessions(ctx) {
		if session.StartedAt.Before(sunday) {
			continue
		}
		key := workouts.DateKey(session.StartedAt, a.Location)
		if !seen[key] {
			seen[key] = true
			dates = append(dates, key)
		}
	}
	sort.Strings(dates)

	return dates
}
