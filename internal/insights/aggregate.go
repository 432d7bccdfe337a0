// ABOUTME: Metric aggregation: rolling 7-day averages, weekly sums, goal progress.
// ABOUTME: Pure functions over metric slices; callers pass the reference date.
package insights

import (
	"time"

	"github.com/avakker/carelog/internal/models"
)

// Averages holds the trailing 7-day daily averages.
type Averages struct {
	Steps    float64
	Calories float64
}

// Rolling7Day averages steps and calories over records whose date falls
// on or after today-6 days. An empty window yields zero averages, never
// NaN, so downstream thresholds always see a number.
func Rolling7Day(metrics []*models.Metric, today time.Time) Averages {
	start := today.AddDate(0, 0, -6)
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)

	var steps, calories, n int
	for _, m := range metrics {
		d := m.Day()
		if d.IsZero() || d.Before(start) {
			continue
		}
		steps += m.Steps
		calories += m.Calories
		n++
	}

	if n == 0 {
		return Averages{}
	}
	return Averages{
		Steps:    float64(steps) / float64(n),
		Calories: float64(calories) / float64(n),
	}
}

// WeeklySteps sums steps in the "current" week: records are grouped by
// ISO week number and the group with the highest week number wins.
// Grouping ignores the ISO year, so a dataset spanning late December
// and early January can mis-group across the boundary. Known
// limitation, kept until a week-boundary policy is decided.
func WeeklySteps(metrics []*models.Metric) int {
	sums := make(map[int]int)
	maxWeek := -1
	for _, m := range metrics {
		d := m.Day()
		if d.IsZero() {
			continue
		}
		_, week := d.ISOWeek()
		sums[week] += m.Steps
		if week > maxWeek {
			maxWeek = week
		}
	}
	if maxWeek < 0 {
		return 0
	}
	return sums[maxWeek]
}

// GoalProgress returns weekly steps over the weekly target, clamped to
// [0,1] for display. A zero target means zero progress, not an error.
func GoalProgress(weeklySteps, weeklyTarget int) float64 {
	if weeklyTarget <= 0 {
		return 0
	}
	ratio := float64(weeklySteps) / float64(weeklyTarget)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
