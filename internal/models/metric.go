// ABOUTME: Daily health metric model (steps and calories per person per date).
// ABOUTME: Metrics are immutable once created; duplicates per date are allowed.
package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date form every stored date is normalized to.
const DateLayout = "2006-01-02"

// Metric represents one logged day of activity for a person.
// Several records may exist for the same person and date; downstream
// aggregation sums or averages over all of them.
type Metric struct {
	ID       int64  `json:"id" yaml:"id"`
	Person   string `json:"person" yaml:"person"`
	Date     string `json:"date" yaml:"date"` // YYYY-MM-DD
	Steps    int    `json:"steps" yaml:"steps"`
	Calories int    `json:"calories" yaml:"calories"`
}

// NewMetric creates a Metric for the given person.
// An empty person falls back to the Self sentinel.
func NewMetric(person, date string, steps, calories int) *Metric {
	if strings.TrimSpace(person) == "" {
		person = DefaultPerson
	}
	return &Metric{
		Person:   strings.TrimSpace(person),
		Date:     date,
		Steps:    steps,
		Calories: calories,
	}
}

// Validate checks the fields a write must not proceed without.
func (m *Metric) Validate() error {
	if _, err := time.Parse(DateLayout, m.Date); err != nil {
		return fmt.Errorf("invalid date %q (use YYYY-MM-DD)", m.Date)
	}
	if m.Steps < 0 {
		return fmt.Errorf("steps must be non-negative, got %d", m.Steps)
	}
	if m.Calories < 0 {
		return fmt.Errorf("calories must be non-negative, got %d", m.Calories)
	}
	return nil
}

// Day parses the record's date. Stored dates are validated on write,
// so a zero time here means the row predates validation.
func (m *Metric) Day() time.Time {
	t, _ := time.Parse(DateLayout, m.Date)
	return t
}

// NormalizeDate coerces external date values to DateLayout.
// Accepts plain dates and common timestamp forms, dropping the time part.
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	formats := []string{
		DateLayout,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("unrecognized date format: %q", s)
}
