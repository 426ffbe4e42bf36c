// ABOUTME: Shared CLI helpers: index parsing, catalog access, formatting.
// ABOUTME: Session exercises and sets are addressed 1-based on the CLI.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harperreed/fittrack/internal/catalog"
	"github.com/harperreed/fittrack/internal/models"
)

// resolvedCatalog returns the merged exercise catalog for the current state.
func resolvedCatalog() []models.Exercise {
	return catalog.Resolve(appState.CustomExercises, appState.ExerciseOverrides)
}

// parseExerciseIndex converts a 1-based CLI argument into a valid index
// into the active workout's exercises.
func parseExerciseIndex(arg string, w *models.Workout) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid exercise number: %s", arg)
	}
	if n > len(w.Exercises) {
		return 0, fmt.Errorf("exercise %d out of range (session has %d)", n, len(w.Exercises))
	}
	return n - 1, nil
}

// parseIndices converts 1-based exercise/set CLI arguments into indices.
func parseIndices(exArg, setArg string, w *models.Workout) (int, int, error) {
	exIdx, err := parseExerciseIndex(exArg, w)
	if err != nil {
		return 0, 0, err
	}
	n, err := strconv.Atoi(setArg)
	if err != nil || n < 1 {
		return 0, 0, fmt.Errorf("invalid set number: %s", setArg)
	}
	if n > len(w.Exercises[exIdx].Sets) {
		return 0, 0, fmt.Errorf("set %d out of range (exercise has %d)", n, len(w.Exercises[exIdx].Sets))
	}
	return exIdx, n - 1, nil
}

// findWorkoutByPrefix looks up a history entry by ID prefix.
func findWorkoutByPrefix(prefix string) (*models.Workout, error) {
	var match *models.Workout
	for _, w := range appState.Workouts {
		if strings.HasPrefix(w.ID, prefix) {
			if match != nil {
				return nil, fmt.Errorf("ambiguous prefix %s: matches multiple workouts", prefix)
			}
			match = w
		}
	}
	if match == nil {
		return nil, fmt.Errorf("not found: %s", prefix)
	}
	return match, nil
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// shortID renders the 8-character prefix used throughout the CLI.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
