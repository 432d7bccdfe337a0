// ABOUTME: Tests for Metric model validation and date normalization.
// ABOUTME: Covers constructor defaults, field checks, and NormalizeDate forms.
package models

import (
	"testing"
)

func TestNewMetricDefaultsPerson(t *testing.T) {
	m := NewMetric("", "2025-03-01", 7500, 2100)

	if m.Person != DefaultPerson {
		t.Errorf("Person = %s, want %s", m.Person, DefaultPerson)
	}
	if m.Steps != 7500 {
		t.Errorf("Steps = %d, want 7500", m.Steps)
	}
	if m.Calories != 2100 {
		t.Errorf("Calories = %d, want 2100", m.Calories)
	}
}

func TestNewMetricTrimsPerson(t *testing.T) {
	m := NewMetric("  Mom  ", "2025-03-01", 0, 0)
	if m.Person != "Mom" {
		t.Errorf("Person = %q, want Mom", m.Person)
	}
}

func TestMetricValidate(t *testing.T) {
	tests := []struct {
		name    string
		metric  *Metric
		wantErr bool
	}{
		{"valid", NewMetric("Self", "2025-03-01", 100, 200), false},
		{"zero counts", NewMetric("Self", "2025-03-01", 0, 0), false},
		{"bad date", NewMetric("Self", "03/01/2025", 100, 200), true},
		{"empty date", NewMetric("Self", "", 100, 200), true},
		{"negative steps", NewMetric("Self", "2025-03-01", -1, 200), true},
		{"negative calories", NewMetric("Self", "2025-03-01", 100, -5), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metric.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMetricDay(t *testing.T) {
	m := NewMetric("Self", "2025-03-01", 100, 200)
	d := m.Day()
	if d.Year() != 2025 || d.Month() != 3 || d.Day() != 1 {
		t.Errorf("Day() = %v, want 2025-03-01", d)
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"plain date", "2025-03-01", "2025-03-01", false},
		{"datetime with space", "2025-03-01 08:30:00", "2025-03-01", false},
		{"datetime with T", "2025-03-01T08:30:00", "2025-03-01", false},
		{"RFC3339", "2025-03-01T08:30:00Z", "2025-03-01", false},
		{"padded", "  2025-03-01  ", "2025-03-01", false},
		{"us style", "03/01/2025", "", true},
		{"garbage", "yesterday", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NormalizeDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
