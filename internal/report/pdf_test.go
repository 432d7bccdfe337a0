// ABOUTME: Tests for PDF report rendering.
// ABOUTME: Checks document validity and the 20-row history cap.
package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/avakker/carelog/internal/models"
)

func testTime(t *testing.T) time.Time {
	t.Helper()
	ts, err := time.Parse(models.DateLayout, "2025-03-10")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	return ts
}

func TestBuildProducesPDF(t *testing.T) {
	metrics := []*models.Metric{
		models.NewMetric("Self", "2025-03-01", 7500, 2100),
		models.NewMetric("Self", "2025-03-02", 8200, 1950),
	}
	recs := []string{"Self is close to or meeting the step goal. Maintain regular activity to keep this trend."}
	adh := insights.Adherence{Taken: 1, Total: 2, Percent: 50.0}

	data, err := Build("Self", models.DefaultGoals(), adh, metrics, recs, testTime(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("expected non-empty document")
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("document does not start with a PDF header: %q", data[:5])
	}
}

func TestBuildEmptyMetrics(t *testing.T) {
	data, err := Build("Self", models.DefaultGoals(), insights.Adherence{}, nil, nil, testTime(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("document does not start with a PDF header: %q", data[:5])
	}
}

func TestBuildCapsMetricHistory(t *testing.T) {
	// 30 rows in, only the last 20 listed; the larger input must still render
	var metrics []*models.Metric
	for i := 1; i <= 30; i++ {
		metrics = append(metrics, models.NewMetric("Self", fmt.Sprintf("2025-03-%02d", i), 1000*i, 2000))
	}

	full, err := Build("Self", models.DefaultGoals(), insights.Adherence{}, metrics, nil, testTime(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	capped, err := Build("Self", models.DefaultGoals(), insights.Adherence{}, metrics[10:], nil, testTime(t))
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	// Same visible rows either way, so the documents match in size
	if len(full) != len(capped) {
		t.Errorf("history cap not applied: %d bytes vs %d bytes", len(full), len(capped))
	}
}
