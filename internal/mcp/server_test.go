// ABOUTME: Tests for MCP server, tools, and resources.
// ABOUTME: Covers NewServer, tool handlers, and the dashboard resource.
package mcp

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/avakker/carelog/internal/models"
	"github.com/avakker/carelog/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// setupTestDB creates a test database in a temp directory.
func setupTestDB(t *testing.T) *storage.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "carelog.db")
	db, err := storage.Open(dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewServer(t *testing.T) {
	db := setupTestDB(t)

	server, err := NewServer(db)
	if err != nil {
		t.Fatalf("NewServer failed: %v", err)
	}

	if server == nil {
		t.Fatal("Expected non-nil server")
	}
	if server.mcpServer == nil {
		t.Error("Expected non-nil mcpServer")
	}
	if server.repo == nil {
		t.Error("Expected non-nil repo")
	}
}

func TestHandleAddMedication(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   addMedicationInput
		wantErr bool
	}{
		{
			name:  "basic dose",
			input: addMedicationInput{Name: "Aspirin", Date: "2025-03-01", Time: "08:30"},
		},
		{
			name:  "dose for a family member with caregiver",
			input: addMedicationInput{Person: "Mom", Name: "Insulin", Date: "2025-03-01", Time: "07:00", Caregiver: "nurse@example.org"},
		},
		{
			name:    "missing name",
			input:   addMedicationInput{Date: "2025-03-01", Time: "08:30"},
			wantErr: true,
		},
		{
			name:    "bad time",
			input:   addMedicationInput{Name: "Aspirin", Date: "2025-03-01", Time: "8am"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleAddMedication(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.ID == 0 {
				t.Error("Expected assigned id")
			}
			if output.Message == "" {
				t.Error("Expected non-empty Message")
			}
		})
	}
}

func TestHandleMarkTaken(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	m := models.NewMedication("Self", "Aspirin", "2025-03-01", "08:30")
	db.CreateMedication(m)

	_, output, err := server.handleMarkTaken(ctx, &mcp.CallToolRequest{}, markTakenInput{ID: m.ID})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "as taken") {
		t.Errorf("unexpected message: %s", output.Message)
	}
}

func TestHandleMarkTakenMissingID(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	// Missing ids report a no-op instead of failing
	_, output, err := server.handleMarkTaken(ctx, &mcp.CallToolRequest{}, markTakenInput{ID: 999})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "nothing changed") {
		t.Errorf("unexpected message: %s", output.Message)
	}
}

func TestHandleResetTaken(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	m := models.NewMedication("Self", "Aspirin", "2025-03-01", "08:30")
	db.CreateMedication(m)
	db.MarkMedicationTaken(m.ID)

	_, output, err := server.handleResetTaken(ctx, &mcp.CallToolRequest{}, personInput{Person: "Self"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "Reset 1 medications") {
		t.Errorf("unexpected message: %s", output.Message)
	}
}

func TestHandleListMedicationsEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, output, err := server.handleListMedications(ctx, &mcp.CallToolRequest{}, personScopeInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Should return a message map for empty results
	msg, ok := output.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected message map, got %T", output)
	}
	if msg["message"] == "" {
		t.Error("Expected non-empty message")
	}
}

func TestHandleAddMetric(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	tests := []struct {
		name    string
		input   addMetricInput
		wantErr bool
	}{
		{
			name:  "explicit date",
			input: addMetricInput{Date: "2025-03-01", Steps: 7500, Calories: 2100},
		},
		{
			name:  "date defaults to today",
			input: addMetricInput{Steps: 7500, Calories: 2100},
		},
		{
			name:    "negative steps",
			input:   addMetricInput{Date: "2025-03-01", Steps: -1, Calories: 2100},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := server.handleAddMetric(ctx, &mcp.CallToolRequest{}, tt.input)

			if tt.wantErr {
				if err == nil {
					t.Error("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if output.Message == "" {
				t.Error("Expected non-empty Message")
			}
		})
	}
}

func TestHandleListMetrics(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	db.CreateMetric(models.NewMetric("Self", "2025-03-01", 7500, 2100))
	db.CreateMetric(models.NewMetric("Mom", "2025-03-01", 4200, 1800))

	_, output, err := server.handleListMetrics(ctx, &mcp.CallToolRequest{}, personScopeInput{Person: "Mom"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	metrics, ok := output.([]*models.Metric)
	if !ok {
		t.Fatalf("Expected metric slice output, got %T", output)
	}
	if len(metrics) != 1 || metrics[0].Person != "Mom" {
		t.Errorf("unexpected metrics: %+v", metrics)
	}
}

func TestHandleAddAndListPeople(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, output, err := server.handleAddPerson(ctx, &mcp.CallToolRequest{}, personInput{Person: "Mom"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(output.Message, "Mom") {
		t.Errorf("unexpected message: %s", output.Message)
	}

	_, listOutput, err := server.handleListPeople(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	people, ok := listOutput.([]string)
	if !ok {
		t.Fatalf("Expected string slice output, got %T", listOutput)
	}
	if len(people) != 2 {
		t.Errorf("people = %v, want Mom and Self", people)
	}
}

func TestHandleGetAndSetGoals(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, output, err := server.handleGetGoals(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	goals, ok := output.(models.Goals)
	if !ok {
		t.Fatalf("Expected Goals output, got %T", output)
	}
	if goals.WeeklyStepsTarget != models.DefaultWeeklyStepsTarget {
		t.Errorf("WeeklyStepsTarget = %d, want default", goals.WeeklyStepsTarget)
	}

	if _, _, err := server.handleSetGoals(ctx, &mcp.CallToolRequest{}, setGoalsInput{WeeklySteps: 20000, DailyCalories: 1800}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	_, output, err = server.handleGetGoals(ctx, &mcp.CallToolRequest{}, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	goals = output.(models.Goals)
	if goals.WeeklyStepsTarget != 20000 || goals.DailyCaloriesTarget != 1800 {
		t.Errorf("goals after set = %+v, want {20000 1800}", goals)
	}
}

func TestHandleGetAdherence(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	m1 := models.NewMedication("Self", "Aspirin", "2025-03-01", "08:30")
	m2 := models.NewMedication("Self", "Vitamin", "2025-03-01", "20:00")
	db.CreateMedication(m1)
	db.CreateMedication(m2)
	db.MarkMedicationTaken(m1.ID)

	_, output, err := server.handleGetAdherence(ctx, &mcp.CallToolRequest{}, personScopeInput{Person: "Self"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if output.Taken != 1 || output.Total != 2 || output.Percent != 50.0 {
		t.Errorf("adherence = %+v, want 1/2 at 50.0", output)
	}
}

func TestHandleGetRecommendations(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	_, output, err := server.handleGetRecommendations(ctx, &mcp.CallToolRequest{}, personInput{Person: "Self"})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	result, ok := output.(map[string]interface{})
	if !ok {
		t.Fatalf("Expected map output, got %T", output)
	}
	recs, ok := result["recommendations"].([]string)
	if !ok {
		t.Fatalf("Expected recommendation slice, got %T", result["recommendations"])
	}
	if len(recs) == 0 {
		t.Error("Expected at least one recommendation")
	}
}

func TestHandleDashboardResource(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	db.CreateMetric(models.NewMetric("Self", "2025-03-01", 7500, 2100))

	result, err := server.handleDashboardResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if len(result.Contents) == 0 {
		t.Fatal("Expected non-empty contents")
	}
	if result.Contents[0].URI != "carelog://dashboard" {
		t.Errorf("URI = %s, want carelog://dashboard", result.Contents[0].URI)
	}
	if result.Contents[0].MIMEType != "application/json" {
		t.Errorf("MIMEType = %s, want application/json", result.Contents[0].MIMEType)
	}
	if !strings.Contains(result.Contents[0].Text, "weekly_steps") {
		t.Error("Expected weekly_steps in dashboard payload")
	}
}

func TestHandleDashboardResourceEmpty(t *testing.T) {
	db := setupTestDB(t)
	server, _ := NewServer(db)
	ctx := context.Background()

	// The Self profile exists even in an empty database
	result, err := server.handleDashboardResource(ctx, &mcp.ReadResourceRequest{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result == nil {
		t.Fatal("Expected non-nil result")
	}
	if !strings.Contains(result.Contents[0].Text, "Self") {
		t.Error("Expected Self profile in dashboard payload")
	}
}
