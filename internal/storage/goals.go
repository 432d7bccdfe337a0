// ABOUTME: Goals singleton operations for SQLite storage.
// ABOUTME: One global row, read on demand and updated in place.
package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/avakker/carelog/internal/models"
)

// Goals returns the singleton target configuration.
func (d *DB) Goals() (models.Goals, error) {
	var g models.Goals
	err := d.db.QueryRow(
		"SELECT weekly_steps_target, daily_calories_target FROM goals WHERE id = 1",
	).Scan(&g.WeeklyStepsTarget, &g.DailyCaloriesTarget)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Row is seeded at open; an empty table means a foreign database.
			return models.DefaultGoals(), nil
		}
		return models.Goals{}, fmt.Errorf("read goals: %w", err)
	}
	return g, nil
}

// SaveGoals overwrites the singleton row. No history of prior targets
// is kept; progress recomputes against the new targets immediately.
func (d *DB) SaveGoals(g models.Goals) error {
	if err := g.Validate(); err != nil {
		return err
	}
	_, err := d.db.Exec(
		"UPDATE goals SET weekly_steps_target = ?, daily_calories_target = ? WHERE id = 1",
		g.WeeklyStepsTarget, g.DailyCaloriesTarget,
	)
	if err != nil {
		return fmt.Errorf("save goals: %w", err)
	}
	return nil
}
