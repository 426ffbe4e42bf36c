// ABOUTME: MCP resource implementations for the fitness tracker.
// ABOUTME: Provides fittrack://summary, fittrack://active, fittrack://prs.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/analytics"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// fittrack://summary - weekly volume, recent workouts, latest measurement
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://summary",
		Name:        "Training Summary",
		Description: "Weekly volume by muscle group, recent workouts, and latest body weight",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// fittrack://active - the in-progress session
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://active",
		Name:        "Active Session",
		Description: "The in-progress workout session, if any",
		MIMEType:    "application/json",
	}, s.handleActiveResource)

	// fittrack://prs - personal records
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "fittrack://prs",
		Name:        "Personal Records",
		Description: "Best completed set per exercise, heaviest first",
		MIMEType:    "application/json",
	}, s.handlePRsResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	recent := s.state.Workouts
	if len(recent) > 5 {
		recent = recent[:5]
	}

	result := map[string]interface{}{
		"weekly_volume":  analytics.WeeklyVolume(s.state.Workouts, s.resolved(), time.Now()),
		"recent":         recent,
		"current_weight": s.state.LatestWeight(),
		"profile":        s.state.Profile,
	}
	return jsonResource(req.Params.URI, result)
}

func (s *Server) handleActiveResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	if s.engine.Active() == nil {
		return jsonResource(req.Params.URI, map[string]interface{}{"message": "No active session."})
	}
	return jsonResource(req.Params.URI, s.engine.Active())
}

func (s *Server) handlePRsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, analytics.TopLifts(s.state.Workouts, s.resolved(), 0))
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
