// ABOUTME: Goals model, a single global configuration row.
// ABOUTME: Holds weekly step and daily calorie targets with fixed defaults.
package models

import "fmt"

// Default goal targets, seeded into the store on first open.
const (
	DefaultWeeklyStepsTarget   = 35000
	DefaultDailyCaloriesTarget = 2200
)

// Goals is the singleton target configuration. There are no per-person
// goals; updating it overwrites the previous targets with no history.
type Goals struct {
	WeeklyStepsTarget   int `json:"weekly_steps_target" yaml:"weekly_steps_target"`
	DailyCaloriesTarget int `json:"daily_calories_target" yaml:"daily_calories_target"`
}

// DefaultGoals returns the seed targets.
func DefaultGoals() Goals {
	return Goals{
		WeeklyStepsTarget:   DefaultWeeklyStepsTarget,
		DailyCaloriesTarget: DefaultDailyCaloriesTarget,
	}
}

// Validate rejects negative targets. Zero targets are allowed; progress
// against a zero target is defined as zero, never a division error.
func (g Goals) Validate() error {
	if g.WeeklyStepsTarget < 0 {
		return fmt.Errorf("weekly steps target must be non-negative, got %d", g.WeeklyStepsTarget)
	}
	if g.DailyCaloriesTarget < 0 {
		return fmt.Errorf("daily calories target must be non-negative, got %d", g.DailyCaloriesTarget)
	}
	return nil
}
