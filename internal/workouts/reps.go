package workouts

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const amrapLiteral = "AMRAP"

// Reps is either a fixed repetition count or AMRAP (as many reps as possible).
// It is encoded as a JSON number or the literal string "AMRAP".
type Reps struct {
	count int
	amrap bool
}

func FixedReps(n int) Reps {
	return Reps{count: n}
}

func AMRAP() Reps {
	return Reps{amrap: true}
}

func (r Reps) IsAMRAP() bool {
	return r.amrap
}

// Count returns the fixed count; ok is false for AMRAP.
func (r Reps) Count() (n int, ok bool) {
	if r.amrap {
		return 0, false
	}
	return r.count, true
}

func (r Reps) String() string {
	if r.amrap {
		return amrapLiteral
	}
	return strconv.Itoa(r.count)
}

// ParseReps parses "AMRAP" (any case) or a non-negative integer.
func ParseReps(s string) (Reps, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, amrapLiteral) {
		return AMRAP(), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Reps{}, fmt.Errorf("invalid reps %q", s)
	}
	if n < 0 {
		return Reps{}, fmt.Errorf("negative reps %d", n)
	}
	return FixedReps(n), nil
}

func (r Reps) MarshalJSON() ([]byte, error) {
	if r.amrap {
		return json.Marshal(amrapLiteral)
	}
	return json.Marshal(r.count)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseReps(s)
		if err != nil {
			return err
		}
		*r = parsed
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("reps must be a number or %q: %w", amrapLiteral, err)
	}
	if f < 0 {
		return fmt.Errorf("negative reps %v", f)
	}
	if f != math.Trunc(f) {
		return fmt.Errorf("fractional reps %v", f)
	}
	*r = FixedReps(int(f))
	return nil
}
