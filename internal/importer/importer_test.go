// ABOUTME: Tests for the CSV/JSON/XML import parsers and the import pipeline.
// ABOUTME: Covers strict whole-file rejection, format detection, and the export round trip.
package importer

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/avakker/carelog/internal/models"
	"github.com/avakker/carelog/internal/storage"
)

func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()
	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return db
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     string
		wantErr  bool
	}{
		{"steps.csv", FormatCSV, false},
		{"Steps.JSON", FormatJSON, false},
		{"export.xml", FormatXML, false},
		{"notes.txt", "", true},
		{"noext", "", true},
	}

	for _, tt := range tests {
		got, err := DetectFormat(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("DetectFormat(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestParseCSV(t *testing.T) {
	data := []byte("steps,date,calories\n7500,2025-03-01,2100\n0,2025-03-02,0\n")
	rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Columns resolved by name, not position
	if rows[0].Date != "2025-03-01" || rows[0].Steps != 7500 || rows[0].Calories != 2100 {
		t.Errorf("unexpected row: %+v", rows[0])
	}
}

func TestParseCSVRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing column", "date,steps\n2025-03-01,7500\n"},
		{"negative steps", "date,steps,calories\n2025-03-01,-1,2100\n"},
		{"bad date", "date,steps,calories\nyesterday,7500,2100\n"},
		{"non-integer", "date,steps,calories\n2025-03-01,lots,2100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseCSV([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if len(rows) != 0 {
				t.Errorf("expected zero rows on failure, got %d", len(rows))
			}
		})
	}
}

func TestParseCSVNormalizesTimestampedDates(t *testing.T) {
	data := []byte("date,steps,calories\n2025-03-01 08:30:00,7500,2100\n")
	rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if rows[0].Date != "2025-03-01" {
		t.Errorf("Date = %s, want 2025-03-01", rows[0].Date)
	}
}

func TestParseJSON(t *testing.T) {
	data := []byte(`[
		{"date": "2025-03-01", "steps": 7500, "calories": 2100},
		{"date": "2025-03-02", "steps": 8200, "calories": 1950}
	]`)
	rows, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1].Steps != 8200 {
		t.Errorf("unexpected row: %+v", rows[1])
	}
}

func TestParseJSONMissingKeyFailsWholeFile(t *testing.T) {
	data := []byte(`[
		{"date": "2025-03-01", "steps": 7500, "calories": 2100},
		{"date": "2025-03-02", "steps": 8200}
	]`)
	rows, err := ParseJSON(data)
	if err == nil {
		t.Fatal("expected error for missing calories key")
	}
	if !strings.Contains(err.Error(), "row 2") {
		t.Errorf("error should name the offending row: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected zero rows on failure, got %d", len(rows))
	}
}

func TestParseXML(t *testing.T) {
	data := []byte(`<export>
		<batch>
			<row><date>2025-03-01</date><steps>7500</steps><calories>2100</calories></row>
		</batch>
		<row><date>2025-03-02</date><steps>8200</steps><calories>1950</calories></row>
	</export>`)
	rows, err := ParseXML(data)
	if err != nil {
		t.Fatalf("ParseXML failed: %v", err)
	}
	// Rows are collected at any nesting depth
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
}

func TestParseXMLMissingChildFailsWholeFile(t *testing.T) {
	data := []byte(`<export>
		<row><date>2025-03-01</date><steps>7500</steps><calories>2100</calories></row>
		<row><date>2025-03-02</date><steps>8200</steps></row>
	</export>`)
	rows, err := ParseXML(data)
	if err == nil {
		t.Fatal("expected error for missing <calories> element")
	}
	if len(rows) != 0 {
		t.Errorf("expected zero rows on failure, got %d", len(rows))
	}
}

func TestParseXMLNoRows(t *testing.T) {
	if _, err := ParseXML([]byte("<export></export>")); err == nil {
		t.Fatal("expected error for file without row elements")
	}
}

func TestImportAppendsWithoutDeduplication(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	rows := []Row{{Date: "2025-03-01", Steps: 7500, Calories: 2100}}
	for i := 0; i < 2; i++ {
		n, err := Import(db, "Self", rows)
		if err != nil {
			t.Fatalf("Import failed: %v", err)
		}
		if n != 1 {
			t.Errorf("Import reported %d rows, want 1", n)
		}
	}

	metrics, err := db.ListMetrics("Self")
	if err != nil {
		t.Fatalf("ListMetrics failed: %v", err)
	}
	if len(metrics) != 2 {
		t.Errorf("re-importing the same file should double rows, got %d", len(metrics))
	}
}

func TestExportReimportRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := db.CreateMetric(models.NewMetric("Self", "2025-03-01", 7500, 2100)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}
	if err := db.CreateMetric(models.NewMetric("Self", "2025-03-02", 8200, 1950)); err != nil {
		t.Fatalf("CreateMetric failed: %v", err)
	}

	data, err := db.ExportMetricsCSV()
	if err != nil {
		t.Fatalf("ExportMetricsCSV failed: %v", err)
	}

	rows, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("exported CSV should parse back: %v", err)
	}
	if _, err := Import(db, "Self", rows); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	metrics, _ := db.ListMetrics("Self")
	if len(metrics) != 4 {
		t.Errorf("expected 4 rows after round trip, got %d", len(metrics))
	}
}
