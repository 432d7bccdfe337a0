// ABOUTME: MCP tool implementations for the carelog store.
// ABOUTME: Medication, metric, person, goal, adherence, and insight operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/avakker/carelog/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_medication",
		Description: "Schedule a medication dose for a person",
	}, s.handleAddMedication)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "mark_taken",
		Description: "Mark a medication as taken by its numeric id",
	}, s.handleMarkTaken)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "reset_taken",
		Description: "Reset all taken flags for a person's medications",
	}, s.handleResetTaken)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_medications",
		Description: "List medications, optionally scoped to one person",
	}, s.handleListMedications)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_metric",
		Description: "Record daily steps and calories for a person",
	}, s.handleAddMetric)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_metrics",
		Description: "List metric records, optionally scoped to one person",
	}, s.handleListMetrics)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_person",
		Description: "Register a family member profile",
	}, s.handleAddPerson)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_people",
		Description: "List all known profiles",
	}, s.handleListPeople)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_goals",
		Description: "Get the weekly step and daily calorie targets",
	}, s.handleGetGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_goals",
		Description: "Update the weekly step and daily calorie targets",
	}, s.handleSetGoals)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_adherence",
		Description: "Get medication adherence (taken/total/percent) for a scope",
	}, s.handleGetAdherence)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recommendations",
		Description: "Get rule-based health recommendations for a person",
	}, s.handleGetRecommendations)
}

// Tool input/output types

type addMedicationInput struct {
	Person    string `json:"person,omitempty" jsonschema:"Person name (defaults to Self)"`
	Name      string `json:"name" jsonschema:"Medicine name"`
	Date      string `json:"date" jsonschema:"Scheduled date (YYYY-MM-DD)"`
	Time      string `json:"time" jsonschema:"Scheduled time (HH:MM)"`
	Caregiver string `json:"caregiver,omitempty" jsonschema:"Optional caregiver contact (stored only, never contacted)"`
}

type medicationOutput struct {
	ID      int64  `json:"id"`
	Person  string `json:"person"`
	Message string `json:"message"`
}

type markTakenInput struct {
	ID int64 `json:"id" jsonschema:"Medication id"`
}

type personScopeInput struct {
	Person string `json:"person,omitempty" jsonschema:"Person name; empty means all records"`
}

type personInput struct {
	Person string `json:"person" jsonschema:"Person name"`
}

type addMetricInput struct {
	Person   string `json:"person,omitempty" jsonschema:"Person name (defaults to Self)"`
	Date     string `json:"date,omitempty" jsonschema:"Date (YYYY-MM-DD), defaults to today"`
	Steps    int    `json:"steps" jsonschema:"Step count"`
	Calories int    `json:"calories" jsonschema:"Calorie count"`
}

type setGoalsInput struct {
	WeeklySteps   int `json:"weekly_steps" jsonschema:"Weekly steps target"`
	DailyCalories int `json:"daily_calories" jsonschema:"Daily calories target"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type adherenceOutput struct {
	Taken   int     `json:"taken"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// Tool handlers

func (s *Server) handleAddMedication(ctx context.Context, req *mcp.CallToolRequest, input addMedicationInput) (*mcp.CallToolResult, medicationOutput, error) {
	m := models.NewMedication(input.Person, input.Name, input.Date, input.Time).WithCaregiver(input.Caregiver)
	if err := s.repo.CreateMedication(m); err != nil {
		return nil, medicationOutput{}, fmt.Errorf("failed to create medication: %w", err)
	}

	return nil, medicationOutput{
		ID:      m.ID,
		Person:  m.Person,
		Message: fmt.Sprintf("Added %s for %s at %s on %s (id %d)", m.Name, m.Person, m.Time, m.Date, m.ID),
	}, nil
}

func (s *Server) handleMarkTaken(ctx context.Context, req *mcp.CallToolRequest, input markTakenInput) (*mcp.CallToolResult, simpleOutput, error) {
	updated, err := s.repo.MarkMedicationTaken(input.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to mark taken: %w", err)
	}
	if !updated {
		return nil, simpleOutput{Message: fmt.Sprintf("No medication with id %d; nothing changed.", input.ID)}, nil
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Marked medication %d as taken.", input.ID)}, nil
}

func (s *Server) handleResetTaken(ctx context.Context, req *mcp.CallToolRequest, input personInput) (*mcp.CallToolResult, simpleOutput, error) {
	n, err := s.repo.ResetTaken(input.Person)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to reset taken flags: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Reset %d medications to not taken for %s.", n, input.Person)}, nil
}

func (s *Server) handleListMedications(ctx context.Context, req *mcp.CallToolRequest, input personScopeInput) (*mcp.CallToolResult, any, error) {
	meds, err := s.repo.ListMedications(input.Person)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list medications: %w", err)
	}
	if len(meds) == 0 {
		return nil, map[string]interface{}{"message": "No medications found."}, nil
	}
	return nil, meds, nil
}

func (s *Server) handleAddMetric(ctx context.Context, req *mcp.CallToolRequest, input addMetricInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}
	m := models.NewMetric(input.Person, date, input.Steps, input.Calories)
	if err := s.repo.CreateMetric(m); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to create metric: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Saved metrics for %s on %s: %d steps, %d calories (id %d)",
			m.Person, m.Date, m.Steps, m.Calories, m.ID),
	}, nil
}

func (s *Server) handleListMetrics(ctx context.Context, req *mcp.CallToolRequest, input personScopeInput) (*mcp.CallToolResult, any, error) {
	metrics, err := s.repo.ListMetrics(input.Person)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	if len(metrics) == 0 {
		return nil, map[string]interface{}{"message": "No metrics found."}, nil
	}
	return nil, metrics, nil
}

func (s *Server) handleAddPerson(ctx context.Context, req *mcp.CallToolRequest, input personInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.CreatePerson(input.Person); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add person: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Added profile for %s.", input.Person)}, nil
}

func (s *Server) handleListPeople(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	people, err := s.repo.ListPeople()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list people: %w", err)
	}
	return nil, people, nil
}

func (s *Server) handleGetGoals(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	goals, err := s.repo.Goals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read goals: %w", err)
	}
	return nil, goals, nil
}

func (s *Server) handleSetGoals(ctx context.Context, req *mcp.CallToolRequest, input setGoalsInput) (*mcp.CallToolResult, simpleOutput, error) {
	g := models.Goals{WeeklyStepsTarget: input.WeeklySteps, DailyCaloriesTarget: input.DailyCalories}
	if err := s.repo.SaveGoals(g); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save goals: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Goals updated: weekly steps %d, daily calories %d.", g.WeeklyStepsTarget, g.DailyCaloriesTarget),
	}, nil
}

func (s *Server) handleGetAdherence(ctx context.Context, req *mcp.CallToolRequest, input personScopeInput) (*mcp.CallToolResult, adherenceOutput, error) {
	meds, err := s.repo.ListMedications(input.Person)
	if err != nil {
		return nil, adherenceOutput{}, fmt.Errorf("failed to list medications: %w", err)
	}
	adh := insights.ComputeAdherence(meds)
	return nil, adherenceOutput{Taken: adh.Taken, Total: adh.Total, Percent: adh.Percent}, nil
}

func (s *Server) handleGetRecommendations(ctx context.Context, req *mcp.CallToolRequest, input personInput) (*mcp.CallToolResult, any, error) {
	metrics, err := s.repo.ListMetrics(input.Person)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	meds, err := s.repo.ListMedications(input.Person)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list medications: %w", err)
	}
	goals, err := s.repo.Goals()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read goals: %w", err)
	}

	recs := insights.Recommendations(input.Person, metrics, meds, goals, time.Now())
	return nil, map[string]interface{}{"person": input.Person, "recommendations": recs}, nil
}
