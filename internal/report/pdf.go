// ABOUTME: PDF report assembly for one person's health data.
// ABOUTME: Title, goals, adherence, last 20 metrics, then recommendations.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/avakker/carelog/internal/models"
	"github.com/jung-kurt/gofpdf"
)

// MetricHistoryLimit caps how many metric rows a report lists.
// Fixed windowing policy, not configurable.
const MetricHistoryLimit = 20

// Build renders the printable report. The metrics slice is expected in
// ascending date order; only its last MetricHistoryLimit entries are
// listed. The returned bytes are a complete PDF document.
func Build(person string, goals models.Goals, adh insights.Adherence, metrics []*models.Metric, recs []string, generatedOn time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Healthcare Report - %s", person), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, fmt.Sprintf(
		"Generated on: %s\nWeekly Steps Goal: %d\nDaily Calories Goal: %d\nMedication adherence: %.1f%% (%d/%d)",
		generatedOn.Format(models.DateLayout),
		goals.WeeklyStepsTarget,
		goals.DailyCaloriesTarget,
		adh.Percent, adh.Taken, adh.Total,
	), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Recent Health Metrics", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if len(metrics) > MetricHistoryLimit {
		metrics = metrics[len(metrics)-MetricHistoryLimit:]
	}
	if len(metrics) == 0 {
		pdf.CellFormat(0, 6, "No metrics recorded yet.", "", 1, "L", false, 0, "")
	} else {
		for _, m := range metrics {
			pdf.CellFormat(0, 6,
				fmt.Sprintf("%s | steps=%d | calories=%d", m.Date, m.Steps, m.Calories),
				"", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, "Health Insights", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	for _, r := range recs {
		pdf.MultiCell(0, 5, "- "+r, "", "L", false)
		pdf.Ln(1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
