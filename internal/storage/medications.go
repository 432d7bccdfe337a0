// ABOUTME: Medication operations for SQLite storage.
// ABOUTME: Inserts, taken-flag updates, bulk reset, and scoped listing.
package storage

import (
	"database/sql"
	"fmt"

	"github.com/avakker/carelog/internal/models"
)

// CreateMedication stores a new medication and assigns its id.
func (d *DB) CreateMedication(m *models.Medication) error {
	if err := m.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO medications (person, name, date, time, taken, caregiver_contact)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	res, err := d.db.Exec(query,
		m.Person,
		m.Name,
		m.Date,
		m.Time,
		boolToInt(m.Taken),
		m.CaregiverContact,
	)
	if err != nil {
		return fmt.Errorf("create medication: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create medication: %w", err)
	}
	m.ID = id
	return nil
}

// MarkMedicationTaken sets taken=1 on the given row. A missing id is a
// no-op, reported through the bool rather than as an error.
func (d *DB) MarkMedicationTaken(id int64) (bool, error) {
	res, err := d.db.Exec("UPDATE medications SET taken = 1 WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("mark taken: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark taken: %w", err)
	}
	return affected > 0, nil
}

// ResetTaken clears the taken flag on every medication for a person and
// returns how many rows changed.
func (d *DB) ResetTaken(person string) (int64, error) {
	res, err := d.db.Exec("UPDATE medications SET taken = 0 WHERE person = ?", person)
	if err != nil {
		return 0, fmt.Errorf("reset taken: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("reset taken: %w", err)
	}
	return affected, nil
}

// ListMedications returns medications for a person ("" for all),
// ordered by date then time.
func (d *DB) ListMedications(person string) ([]*models.Medication, error) {
	query := `
		SELECT id, person, name, date, time, taken, caregiver_contact
		FROM medications
	`
	var args []interface{}
	if person != "" {
		query += " WHERE person = ?"
		args = append(args, person)
	}
	query += " ORDER BY date, time, id"

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var meds []*models.Medication
	for rows.Next() {
		m, err := scanMedication(rows)
		if err != nil {
			return nil, err
		}
		meds = append(meds, m)
	}
	return meds, rows.Err()
}

func scanMedication(rows *sql.Rows) (*models.Medication, error) {
	var m models.Medication
	var taken int
	var caregiver sql.NullString

	err := rows.Scan(&m.ID, &m.Person, &m.Name, &m.Date, &m.Time, &taken, &caregiver)
	if err != nil {
		return nil, fmt.Errorf("scan medication: %w", err)
	}

	m.Taken = taken != 0
	if caregiver.Valid {
		m.CaregiverContact = &caregiver.String
	}
	return &m, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
