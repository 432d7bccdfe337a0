// ABOUTME: Health metric operations for SQLite storage.
// ABOUTME: Append-only inserts (single and transactional batch) plus scoped listing.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/avakker/carelog/internal/models"
)

const insertMetricQuery = `
	INSERT INTO health_metrics (person, date, steps, calories)
	VALUES (?, ?, ?, ?)
`

// CreateMetric stores a new metric record and assigns its id.
func (d *DB) CreateMetric(m *models.Metric) error {
	if err := m.Validate(); err != nil {
		return err
	}

	res, err := d.db.Exec(insertMetricQuery, m.Person, m.Date, m.Steps, m.Calories)
	if err != nil {
		return fmt.Errorf("create metric: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create metric: %w", err)
	}
	m.ID = id
	return nil
}

// CreateMetrics inserts a batch of metrics in one transaction.
// Either every row is committed or none is; a validation failure on any
// row aborts the whole batch.
func (d *DB) CreateMetrics(ms []*models.Metric) error {
	for i, m := range ms {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertMetricQuery)
	if err != nil {
		return fmt.Errorf("create metrics: %w", err)
	}
	defer stmt.Close()

	for i, m := range ms {
		res, err := stmt.Exec(m.Person, m.Date, m.Steps, m.Calories)
		if err != nil {
			return fmt.Errorf("create metrics row %d: %w", i+1, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("create metrics row %d: %w", i+1, err)
		}
		m.ID = id
	}

	return tx.Commit()
}

// ListMetrics returns metrics for a person ("" for all) in ascending
// date order.
func (d *DB) ListMetrics(person string) ([]*models.Metric, error) {
	query := `
		SELECT id, person, date, steps, calories
		FROM health_metrics
	`
	var args []interface{}
	if person != "" {
		query += " WHERE person = ?"
		args = append(args, person)
	}
	query += " ORDER BY date, id"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	defer rows.Close()

	return scanMetrics(rows)
}

// LastMetrics returns at most n of the most recent metrics for a person,
// in ascending date order (the tail of the history).
func (d *DB) LastMetrics(person string, n int) ([]*models.Metric, error) {
	query := `
		SELECT id, person, date, steps, calories
		FROM health_metrics
	`
	var args []interface{}
	if person != "" {
		query += " WHERE person = ?"
		args = append(args, person)
	}
	query += " ORDER BY date DESC, id DESC LIMIT ?"
	args = append(args, n)

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("last metrics: %w", err)
	}
	defer rows.Close()

	metrics, err := scanMetrics(rows)
	if err != nil {
		return nil, err
	}

	// Flip the descending window back into date order.
	for i, j := 0, len(metrics)-1; i < j; i, j = i+1, j-1 {
		metrics[i], metrics[j] = metrics[j], metrics[i]
	}
	return metrics, nil
}

func scanMetrics(rows *sql.Rows) ([]*models.Metric, error) {
	var metrics []*models.Metric
	for rows.Next() {
		var m models.Metric
		if err := rows.Scan(&m.ID, &m.Person, &m.Date, &m.Steps, &m.Calories); err != nil {
			return nil, fmt.Errorf("scan metric: %w", err)
		}
		metrics = append(metrics, &m)
	}
	return metrics, rows.Err()
}
