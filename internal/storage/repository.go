// ABOUTME: Repository interface for health data storage.
// ABOUTME: Defines the contract every store handle is passed around as.
package storage

import (
	"github.com/avakker/carelog/internal/models"
)

// Repository defines the storage interface for health data.
// All handlers receive one of these explicitly; there is no package-level
// connection. Scope arguments take a person name, or "" for all records.
type Repository interface {
	// Medication operations
	CreateMedication(m *models.Medication) error
	// MarkMedicationTaken reports false (and no error) when no row has
	// the given id.
	MarkMedicationTaken(id int64) (bool, error)
	ResetTaken(person string) (int64, error)
	ListMedications(person string) ([]*models.Medication, error)

	// Metric operations (append-only; no update or delete exists)
	CreateMetric(m *models.Metric) error
	CreateMetrics(ms []*models.Metric) error
	ListMetrics(person string) ([]*models.Metric, error)
	LastMetrics(person string, n int) ([]*models.Metric, error)

	// Goals singleton
	Goals() (models.Goals, error)
	SaveGoals(g models.Goals) error

	// Person registry
	CreatePerson(name string) error
	ListPeople() ([]string, error)

	// Export/backup
	ExportMedicationsCSV() ([]byte, error)
	ExportMetricsCSV() ([]byte, error)
	Snapshot() (*SnapshotData, error)
	ExportJSON() ([]byte, error)
	ExportYAML() ([]byte, error)
	ImportJSON(data []byte) error

	// Lifecycle
	Close() error
}
