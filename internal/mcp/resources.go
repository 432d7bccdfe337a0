// ABOUTME: MCP resource implementations for the carelog store.
// ABOUTME: Provides the carelog://dashboard summary resource.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/avakker/carelog/internal/insights"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// carelog://dashboard - per-person adherence, averages, and progress
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "carelog://dashboard",
		Name:        "Health Dashboard",
		Description: "Adherence, 7-day averages, and weekly goal progress for every profile",
		MIMEType:    "application/json",
	}, s.handleDashboardResource)
}

func (s *Server) handleDashboardResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	people, err := s.repo.ListPeople()
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}
	goals, err := s.repo.Goals()
	if err != nil {
		return nil, fmt.Errorf("failed to read goals: %w", err)
	}

	now := time.Now()
	perPerson := make(map[string]interface{}, len(people))
	for _, person := range people {
		meds, err := s.repo.ListMedications(person)
		if err != nil {
			return nil, fmt.Errorf("failed to list medications: %w", err)
		}
		metrics, err := s.repo.ListMetrics(person)
		if err != nil {
			return nil, fmt.Errorf("failed to list metrics: %w", err)
		}

		adh := insights.ComputeAdherence(meds)
		avg := insights.Rolling7Day(metrics, now)
		weekly := insights.WeeklySteps(metrics)

		perPerson[person] = map[string]interface{}{
			"adherence": map[string]interface{}{
				"taken":   adh.Taken,
				"total":   adh.Total,
				"percent": adh.Percent,
			},
			"avg_daily_steps_7d":    avg.Steps,
			"avg_daily_calories_7d": avg.Calories,
			"weekly_steps":          weekly,
			"goal_progress":         insights.GoalProgress(weekly, goals.WeeklyStepsTarget),
		}
	}

	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"goals":        goals,
		"people":       perPerson,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "carelog://dashboard",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
