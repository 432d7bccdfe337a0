// ABOUTME: Row-oriented metric import shared plumbing.
// ABOUTME: Strict whole-file validation; rows commit in one transaction or not at all.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/avakker/carelog/internal/models"
	"github.com/avakker/carelog/internal/storage"
)

// Row is one parsed external record before it becomes a Metric.
type Row struct {
	Date     string
	Steps    int
	Calories int
}

// Supported import formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// DetectFormat infers the import format from a file extension.
func DetectFormat(filename string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".json":
		return FormatJSON, nil
	case ".xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("cannot infer format from %q (use --format csv|json|xml)", filename)
	}
}

// Parse dispatches to the format-specific parser. All three parsers
// apply the same policy: every row must carry date, steps, and calories
// with a normalizable date and non-negative counts, or the whole file
// is rejected with zero rows returned.
func Parse(format string, data []byte) ([]Row, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(data)
	case FormatJSON:
		return ParseJSON(data)
	case FormatXML:
		return ParseXML(data)
	default:
		return nil, fmt.Errorf("unknown format: %s (use csv, json, or xml)", format)
	}
}

// Import appends parsed rows as metric records for one person, in a
// single transaction. Existing records are never updated or
// deduplicated; re-importing the same file doubles the row count.
func Import(repo storage.Repository, person string, rows []Row) (int, error) {
	metrics := make([]*models.Metric, 0, len(rows))
	for _, r := range rows {
		metrics = append(metrics, models.NewMetric(person, r.Date, r.Steps, r.Calories))
	}
	if err := repo.CreateMetrics(metrics); err != nil {
		return 0, fmt.Errorf("import metrics: %w", err)
	}
	return len(metrics), nil
}

// validateRow applies the shared field policy and normalizes the date.
func validateRow(n int, r *Row) error {
	date, err := models.NormalizeDate(r.Date)
	if err != nil {
		return fmt.Errorf("row %d: %w", n, err)
	}
	r.Date = date
	if r.Steps < 0 {
		return fmt.Errorf("row %d: steps must be non-negative, got %d", n, r.Steps)
	}
	if r.Calories < 0 {
		return fmt.Errorf("row %d: calories must be non-negative, got %d", n, r.Calories)
	}
	return nil
}
