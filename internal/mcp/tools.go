// ABOUTME: MCP tool implementations for workout sessions and analytics.
// ABOUTME: Mirrors the session engine operations plus read-only derivations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/fittrack/internal/analytics"
	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/session"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// start_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_session",
		Description: "Start a workout session (replaces any in-progress one)",
	}, s.handleStartSession)

	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the active session",
	}, s.handleAddExercise)

	// log_set
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_set",
		Description: "Update a set in the active session (reps, weight, completed, ...)",
	}, s.handleLogSet)

	// finish_session
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "finish_session",
		Description: "Finish the active session, committing completed sets to history",
	}, s.handleFinishSession)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise catalog, optionally filtered by muscle group",
	}, s.handleListExercises)

	// list_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List recent committed workouts",
	}, s.handleListHistory)

	// get_prs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_prs",
		Description: "Get personal records (best completed set per exercise)",
	}, s.handleGetPRs)

	// weekly_volume
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "weekly_volume",
		Description: "Get trailing-7-day training volume by muscle group",
	}, s.handleWeeklyVolume)

	// add_measurement
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_measurement",
		Description: "Record a body measurement (weight, body fat, girths)",
	}, s.handleAddMeasurement)
}

// Tool input/output types

type startSessionInput struct {
	Logged bool `json:"logged,omitempty" jsonschema:"Log a past session instead of live tracking"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type addExerciseInput struct {
	ExerciseID string `json:"exercise_id" jsonschema:"Catalog exercise ID (e.g. b1 for Deadlift)"`
}

type logSetInput struct {
	Exercise  int      `json:"exercise" jsonschema:"Exercise position in the session (1-based)"`
	Set       int      `json:"set" jsonschema:"Set position within the exercise (1-based)"`
	Reps      *int     `json:"reps,omitempty" jsonschema:"Repetition count"`
	Weight    *float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	RestTime  *int     `json:"rest_time,omitempty" jsonschema:"Rest duration in seconds"`
	Notes     *string  `json:"notes,omitempty" jsonschema:"Free-text note"`
	Type      *string  `json:"type,omitempty" jsonschema:"Set type (Warmup, Working, Drop Set, To Failure)"`
	Completed *bool    `json:"completed,omitempty" jsonschema:"Mark the set done or not done"`
}

type logSetOutput struct {
	Message     string `json:"message"`
	RestSeconds int    `json:"rest_seconds,omitempty"`
}

type listExercisesInput struct {
	Group  string `json:"group,omitempty" jsonschema:"Filter by muscle group (Back, Shoulder, Chest, Legs, Arms, Core, Cardio)"`
	Search string `json:"search,omitempty" jsonschema:"Case-insensitive name substring"`
}

type listHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type addMeasurementInput struct {
	Weight  *float64 `json:"weight,omitempty" jsonschema:"Body weight in kg"`
	BodyFat *float64 `json:"body_fat,omitempty" jsonschema:"Body fat percentage"`
	Chest   *float64 `json:"chest,omitempty" jsonschema:"Chest girth in cm"`
	Waist   *float64 `json:"waist,omitempty" jsonschema:"Waist girth in cm"`
	Arms    *float64 `json:"arms,omitempty" jsonschema:"Arm girth in cm"`
	Thighs  *float64 `json:"thighs,omitempty" jsonschema:"Thigh girth in cm"`
}

// Tool handlers

func (s *Server) handleStartSession(ctx context.Context, req *mcp.CallToolRequest, input startSessionInput) (*mcp.CallToolResult, simpleOutput, error) {
	mode := session.ModeLive
	if input.Logged {
		mode = session.ModeLogged
	}
	w := s.engine.Start(mode)
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save state: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Started %q (ID: %s)", w.Name, w.ID[:8]),
	}, nil
}

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, simpleOutput, error) {
	if s.engine.Active() == nil {
		return nil, simpleOutput{}, fmt.Errorf("no active session; call start_session first")
	}
	name := catalog.DisplayName(s.resolved(), input.ExerciseID)
	s.engine.AddExercise(input.ExerciseID)
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save state: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s with one default set (10 reps, 0 kg)", name),
	}, nil
}

func (s *Server) handleLogSet(ctx context.Context, req *mcp.CallToolRequest, input logSetInput) (*mcp.CallToolResult, logSetOutput, error) {
	w := s.engine.Active()
	if w == nil {
		return nil, logSetOutput{}, fmt.Errorf("no active session; call start_session first")
	}
	exIdx, setIdx := input.Exercise-1, input.Set-1
	if exIdx < 0 || exIdx >= len(w.Exercises) {
		return nil, logSetOutput{}, fmt.Errorf("exercise %d out of range (session has %d)", input.Exercise, len(w.Exercises))
	}
	if setIdx < 0 || setIdx >= len(w.Exercises[exIdx].Sets) {
		return nil, logSetOutput{}, fmt.Errorf("set %d out of range (exercise has %d)", input.Set, len(w.Exercises[exIdx].Sets))
	}

	patch := models.SetPatch{
		Reps:      input.Reps,
		Weight:    input.Weight,
		RestTime:  input.RestTime,
		Notes:     input.Notes,
		Completed: input.Completed,
	}
	if input.Type != nil {
		if !models.IsValidSetType(*input.Type) {
			return nil, logSetOutput{}, fmt.Errorf("unknown set type: %s", *input.Type)
		}
		st := models.SetType(*input.Type)
		patch.Type = &st
	}

	effects := s.engine.UpdateSet(exIdx, setIdx, patch)
	if err := s.persist(); err != nil {
		return nil, logSetOutput{}, fmt.Errorf("failed to save state: %w", err)
	}

	out := logSetOutput{Message: fmt.Sprintf("Updated exercise %d set %d", input.Exercise, input.Set)}
	for _, eff := range effects {
		if rt, ok := eff.(session.StartRestTimer); ok {
			out.RestSeconds = rt.Seconds
			out.Message += fmt.Sprintf("; rest %d s", rt.Seconds)
		}
	}
	return nil, out, nil
}

func (s *Server) handleFinishSession(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	if s.engine.Active() == nil {
		return nil, simpleOutput{}, fmt.Errorf("no active session")
	}
	committed := s.engine.Finish()
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save state: %w", err)
	}
	if committed == nil {
		return nil, simpleOutput{
			Message: "Session discarded: no completed sets",
		}, nil
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Committed %q: %d exercises, %.0f kg total volume",
			committed.Name, len(committed.Exercises), committed.Volume()),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var group models.MuscleGroup
	if input.Group != "" {
		if !models.IsValidMuscleGroup(input.Group) {
			return nil, nil, fmt.Errorf("unknown muscle group: %s", input.Group)
		}
		group = models.MuscleGroup(input.Group)
	}

	exercises := catalog.Filter(s.resolved(), group, input.Search)
	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}
	return nil, exercises, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	workouts := s.state.Workouts
	if len(workouts) > input.Limit {
		workouts = workouts[:input.Limit]
	}
	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workouts found."}, nil
	}
	return nil, workouts, nil
}

func (s *Server) handleGetPRs(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	records := analytics.TopLifts(s.state.Workouts, s.resolved(), 0)
	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No personal records yet."}, nil
	}
	return nil, records, nil
}

func (s *Server) handleWeeklyVolume(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, any, error) {
	volumes := analytics.WeeklyVolume(s.state.Workouts, s.resolved(), time.Now())
	if len(volumes) == 0 {
		return nil, map[string]interface{}{"message": "No training volume in the last 7 days."}, nil
	}
	return nil, volumes, nil
}

func (s *Server) handleAddMeasurement(ctx context.Context, req *mcp.CallToolRequest, input addMeasurementInput) (*mcp.CallToolResult, simpleOutput, error) {
	m := models.NewBodyMeasurement()
	m.Weight = input.Weight
	m.BodyFat = input.BodyFat
	m.Chest = input.Chest
	m.Waist = input.Waist
	m.Arms = input.Arms
	m.Thighs = input.Thighs

	s.state.AddMeasurement(m)
	if err := s.persist(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save state: %w", err)
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Recorded measurement (ID: %s)", m.ID[:8]),
	}, nil
}
