// ABOUTME: Export and backup functionality for health data.
// ABOUTME: CSV table dumps plus JSON/YAML snapshot backup and restore.
package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/avakker/carelog/internal/models"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// SnapshotData is the full backup format: everything in the store plus
// a header identifying the snapshot.
type SnapshotData struct {
	Version     string               `json:"version" yaml:"version"`
	SnapshotID  uuid.UUID            `json:"snapshot_id" yaml:"snapshot_id"`
	ExportedAt  time.Time            `json:"exported_at" yaml:"exported_at"`
	Tool        string               `json:"tool" yaml:"tool"`
	Goals       models.Goals         `json:"goals" yaml:"goals"`
	People      []string             `json:"people" yaml:"people"`
	Medications []*models.Medication `json:"medications" yaml:"medications"`
	Metrics     []*models.Metric     `json:"metrics" yaml:"metrics"`
}

// Snapshot collects all data for backup.
func (d *DB) Snapshot() (*SnapshotData, error) {
	goals, err := d.Goals()
	if err != nil {
		return nil, err
	}
	people, err := d.ListPeople()
	if err != nil {
		return nil, err
	}
	meds, err := d.ListMedications("")
	if err != nil {
		return nil, err
	}
	metrics, err := d.ListMetrics("")
	if err != nil {
		return nil, err
	}

	return &SnapshotData{
		Version:     "1.0",
		SnapshotID:  uuid.New(),
		ExportedAt:  time.Now(),
		Tool:        "carelog",
		Goals:       goals,
		People:      people,
		Medications: meds,
		Metrics:     metrics,
	}, nil
}

// ExportJSON exports a full snapshot as JSON.
func (d *DB) ExportJSON() ([]byte, error) {
	data, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML exports a full snapshot as YAML.
func (d *DB) ExportYAML() ([]byte, error) {
	data, err := d.Snapshot()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(data)
}

// ImportJSON restores a snapshot: rows are appended (never deduplicated,
// with fresh ids) and the goals singleton is overwritten.
func (d *DB) ImportJSON(data []byte) error {
	var snap SnapshotData
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("unmarshal snapshot: %w", err)
	}

	for _, name := range snap.People {
		if err := d.CreatePerson(name); err != nil {
			return fmt.Errorf("restore person: %w", err)
		}
	}
	for _, m := range snap.Medications {
		m.ID = 0
		if err := d.CreateMedication(m); err != nil {
			return fmt.Errorf("restore medication: %w", err)
		}
	}
	if err := d.CreateMetrics(snap.Metrics); err != nil {
		return fmt.Errorf("restore metrics: %w", err)
	}
	if err := d.SaveGoals(snap.Goals); err != nil {
		return fmt.Errorf("restore goals: %w", err)
	}
	return nil
}

// ExportMedicationsCSV dumps the medications table, full column set.
func (d *DB) ExportMedicationsCSV() ([]byte, error) {
	meds, err := d.ListMedications("")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "person", "name", "date", "time", "taken", "caregiver_contact"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range meds {
		caregiver := ""
		if m.CaregiverContact != nil {
			caregiver = *m.CaregiverContact
		}
		record := []string{
			strconv.FormatInt(m.ID, 10),
			m.Person,
			m.Name,
			m.Date,
			m.Time,
			strconv.Itoa(boolToInt(m.Taken)),
			caregiver,
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportMetricsCSV dumps the health_metrics table, full column set.
// The output round-trips through the CSV importer, which appends rows
// without deduplicating.
func (d *DB) ExportMetricsCSV() ([]byte, error) {
	metrics, err := d.ListMetrics("")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "person", "date", "steps", "calories"}); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, m := range metrics {
		record := []string{
			strconv.FormatInt(m.ID, 10),
			m.Person,
			m.Date,
			strconv.Itoa(m.Steps),
			strconv.Itoa(m.Calories),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
