// ABOUTME: SQLite schema definition and initialization.
// ABOUTME: Defines medications, health_metrics, goals, and people tables.
package storage

import "fmt"

// initSchema creates the tables and seeds the singleton goals row.
func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS medications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person TEXT NOT NULL DEFAULT 'Self',
		name TEXT NOT NULL,
		date TEXT NOT NULL,               -- YYYY-MM-DD
		time TEXT NOT NULL,               -- HH:MM
		taken INTEGER NOT NULL DEFAULT 0,
		caregiver_contact TEXT
	);

	CREATE TABLE IF NOT EXISTS health_metrics (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		person TEXT NOT NULL DEFAULT 'Self',
		date TEXT NOT NULL,               -- YYYY-MM-DD
		steps INTEGER NOT NULL DEFAULT 0,
		calories INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS goals (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		weekly_steps_target INTEGER NOT NULL DEFAULT 35000,
		daily_calories_target INTEGER NOT NULL DEFAULT 2200
	);

	CREATE TABLE IF NOT EXISTS people (
		name TEXT PRIMARY KEY
	);

	CREATE INDEX IF NOT EXISTS idx_medications_person ON medications(person, date, time);
	CREATE INDEX IF NOT EXISTS idx_metrics_person_date ON health_metrics(person, date);
	CREATE INDEX IF NOT EXISTS idx_metrics_date ON health_metrics(date);
	`

	if _, err := d.db.Exec(schema); err != nil {
		return err
	}

	// Seed the singleton goals row; a no-op on every open after the first.
	if _, err := d.db.Exec("INSERT OR IGNORE INTO goals(id) VALUES (1)"); err != nil {
		return fmt.Errorf("seed goals: %w", err)
	}
	return nil
}
