// ABOUTME: Person registry operations for SQLite storage.
// ABOUTME: Explicit people table unioned with names found in data rows.
package storage

import (
	"fmt"
	"sort"

	"github.com/avakker/carelog/internal/models"
)

// CreatePerson registers a profile name. Registering an existing name
// is a no-op.
func (d *DB) CreatePerson(name string) error {
	if err := models.ValidatePersonName(name); err != nil {
		return err
	}
	_, err := d.db.Exec("INSERT OR IGNORE INTO people(name) VALUES (?)", name)
	if err != nil {
		return fmt.Errorf("create person: %w", err)
	}
	return nil
}

// ListPeople returns every known profile name, sorted. The set is the
// union of the registry, the distinct person values present in
// medication and metric rows (so imported data still surfaces), and
// the always-present Self sentinel.
func (d *DB) ListPeople() ([]string, error) {
	seen := map[string]bool{models.DefaultPerson: true}

	queries := []string{
		"SELECT name FROM people",
		"SELECT DISTINCT person FROM medications",
		"SELECT DISTINCT person FROM health_metrics",
	}
	for _, q := range queries {
		rows, err := d.db.Query(q)
		if err != nil {
			return nil, fmt.Errorf("list people: %w", err)
		}
		for rows.Next() {
			var name string
			if err := rows.Scan(&name); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan person: %w", err)
			}
			seen[name] = true
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("list people: %w", err)
		}
		rows.Close()
	}

	people := make([]string, 0, len(seen))
	for name := range seen {
		people = append(people, name)
	}
	sort.Strings(people)
	return people, nil
}
