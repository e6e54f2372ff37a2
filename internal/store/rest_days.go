package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/jasonschulke/mooove/internal/workouts"
)

// RestDays is a set of YYYY-MM-DD dates marked as intentional rest.
// It is stored as a sorted array.
type RestDays map[string]struct{}

func (r RestDays) Has(dateKey string) bool {
	_, ok := r[dateKey]
	return ok
}

func (r RestDays) Sorted() []string {
	out := make([]string, 0, len(r))
	for d := range r {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

func (r RestDays) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Sorted())
}

func (r *RestDays) UnmarshalJSON(data []byte) error {
	var dates []string
	if err := json.Unmarshal(data, &dates); err != nil {
		return err
	}
	set := make(RestDays, len(dates))
	for _, d := range dates {
		set[d] = struct{}{}
	}
	*r = set
	return nil
}

func validateRestDays(r RestDays) error {
	for d := range r {
		if _, err := time.Parse(workouts.DateKeyLayout, d); err != nil {
			return fmt.Errorf("rest day %q: %w", d, err)
		}
	}
	return nil
}

func (s *Store) LoadRestDays(ctx context.Context) RestDays {
	days, ok := loadDocument(ctx, s, KeyRestDays, schemaRestDays, validateRestDays)
	if !ok || days == nil {
		return RestDays{}
	}
	return days
}

func (s *Store) SaveRestDays(ctx context.Context, days RestDays) error {
	if days == nil {
		days = RestDays{}
	}
	return s.saveDocument(ctx, KeyRestDays, schemaRestDays, days)
}

func (s *Store) AddRestDay(ctx context.Context, dateKey string) error {
	if _, err := time.Parse(workouts.DateKeyLayout, dateKey); err != nil {
		return fmt.Errorf("invalid date %q: %w", dateKey, err)
	}
	days := s.LoadRestDays(ctx)
	if days.Has(dateKey) {
		return nil
	}
	days[dateKey] = struct{}{}
	return s.SaveRestDays(ctx, days)
}

func (s *Store) RemoveRestDay(ctx context.Context, dateKey string) error {
	days := s.LoadRestDays(ctx)
	if !days.Has(dateKey) {
		return nil
	}
	delete(days, dateKey)
	return s.SaveRestDays(ctx, days)
}
