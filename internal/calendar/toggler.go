package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jasonschulke/mooove/internal/store"
	"github.com/jasonschulke/mooove/internal/telemetry/tracing"
	"github.com/jasonschulke/mooove/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const (
	BacklogSessionName = "Logged Workout"
	// backlog sessions carry a nominal duration, they were never timed
	backlogDuration = 30 * time.Minute
	backlogHour     = 12
)

var ErrFutureDate = errors.New("date is in the future")

type Status string

const (
	StatusNone      Status = "none"
	StatusWorkout   Status = "workout"
	StatusRest      Status = "rest"
	StatusProtected Status = "protected"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=calendar_test

type daysRepo interface {
	LoadSessions(ctx context.Context) []workouts.Session
	AddSession(ctx context.Context, session workouts.Session) (*workouts.Session, error)
	DeleteSessionsOnDate(ctx context.Context, dateKey string, loc *time.Location, placeholdersOnly bool) (int, error)
	LoadRestDays(ctx context.Context) store.RestDays
	AddRestDay(ctx context.Context, dateKey string) error
	RemoveRestDay(ctx context.Context, dateKey string) error
}

// Toggler lets past days be marked as trained or rested without logging a
// full workout. Days holding a real logged workout are never changed.
type Toggler struct {
	repo daysRepo

	// ability to inject clock and location (for unit testing)
	NowFunc  func() time.Time
	Location *time.Location
}

func NewToggler(repo daysRepo) *Toggler {
	return &Toggler{
		repo:     repo,
		NowFunc:  time.Now,
		Location: time.Local,
	}
}

// HasWorkoutOnDate reports whether any session, placeholder or not, started on the date.
func (t *Toggler) HasWorkoutOnDate(ctx context.Context, dateKey string) bool {
	for _, session := range t.repo.LoadSessions(ctx) {
		if session.OnDate(dateKey, t.Location) {
			return true
		}
	}
	return false
}

// HasRealWorkoutOnDate reports whether a session with logged exercises started on the date.
func (t *Toggler) HasRealWorkoutOnDate(ctx context.Context, dateKey string) bool {
	for _, session := range t.repo.LoadSessions(ctx) {
		if session.OnDate(dateKey, t.Location) && session.IsReal() {
			return true
		}
	}
	return false
}

func (t *Toggler) DayStatus(ctx context.Context, dateKey string) Status {
	switch {
	case t.HasRealWorkoutOnDate(ctx, dateKey):
		return StatusProtected
	case t.HasWorkoutOnDate(ctx, dateKey):
		return StatusWorkout
	case t.repo.LoadRestDays(ctx).Has(dateKey):
		return StatusRest
	default:
		return StatusNone
	}
}

// ToggleYearDayStatus moves the date one step along none -> workout -> rest -> none
// and returns the new status. A date with a real workout is left untouched
// and StatusProtected is returned. Dates after today fail with ErrFutureDate.
func (t *Toggler) ToggleYearDayStatus(ctx context.Context, dateKey string) (_ Status, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "calendar.toggleYearDayStatus")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("date", dateKey))

	day, err := workouts.ParseDateKey(dateKey, t.Location)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", dateKey, err)
	}
	if day.After(workouts.StartOfDay(t.NowFunc(), t.Location)) {
		return "", fmt.Errorf("%s: %w", dateKey, ErrFutureDate)
	}

	switch t.DayStatus(ctx, dateKey) {
	case StatusProtected:
		log.Debugf("calendar: %s has a logged workout, not toggling", dateKey)
		return StatusProtected, nil

	case StatusWorkout:
		if _, err := t.repo.DeleteSessionsOnDate(ctx, dateKey, t.Location, true); err != nil {
			return "", fmt.Errorf("remove backlog session: %w", err)
		}
		if err := t.repo.AddRestDay(ctx, dateKey); err != nil {
			return "", fmt.Errorf("add rest day: %w", err)
		}
		return StatusRest, nil

	case StatusRest:
		if err := t.repo.RemoveRestDay(ctx, dateKey); err != nil {
			return "", fmt.Errorf("remove rest day: %w", err)
		}
		return StatusNone, nil

	default:
		if _, err := t.repo.AddSession(ctx, backlogSession(day)); err != nil {
			return "", fmt.Errorf("add backlog session: %w", err)
		}
		return StatusWorkout, nil
	}
}

// backlogSession is an empty placeholder dated at local noon, away from
// any day boundary a timezone change could push it over.
func backlogSession(day time.Time) workouts.Session {
	startedAt := time.Date(day.Year(), day.Month(), day.Day(), backlogHour, 0, 0, 0, day.Location())
	completedAt := startedAt.Add(backlogDuration)
	duration := int(backlogDuration.Seconds())
	return workouts.Session{
		Name:          BacklogSessionName,
		Blocks:        []workouts.Block{},
		StartedAt:     startedAt,
		CompletedAt:   &completedAt,
		Exercises:     []workouts.ExerciseLog{},
		TotalDuration: &duration,
	}
}
