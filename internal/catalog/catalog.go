// ABOUTME: Catalog resolution: builtins + custom exercises + overrides.
// ABOUTME: Every exercise lookup in the app goes through the resolved list.
package catalog

import (
	"strings"

	"github.com/harperreed/fittrack/internal/models"
)

// UnknownName is displayed for exercise IDs that resolve to nothing.
// A dangling reference is never fatal.
const UnknownName = "Unknown Exercise"

// Resolve merges the builtin seed with user-created exercises and applies
// stored overrides on top. Order is stable: builtins first, custom
// appended; override fields win on collision.
func Resolve(custom []models.Exercise, overrides map[string]models.ExercisePatch) []models.Exercise {
	out := make([]models.Exercise, 0, len(Builtins)+len(custom))
	out = append(out, Builtins...)
	out = append(out, custom...)
	for i, ex := range out {
		if patch, ok := overrides[ex.ID]; ok {
			out[i] = patch.Apply(ex)
		}
	}
	return out
}

// FindByID looks up a resolved exercise by ID.
func FindByID(resolved []models.Exercise, id string) (models.Exercise, bool) {
	for _, ex := range resolved {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

// DisplayName returns the exercise name for an ID, or UnknownName.
func DisplayName(resolved []models.Exercise, id string) string {
	if ex, ok := FindByID(resolved, id); ok {
		return ex.Name
	}
	return UnknownName
}

// Filter narrows a resolved list by muscle group and/or a case-insensitive
// name substring. Empty arguments match everything.
func Filter(resolved []models.Exercise, group models.MuscleGroup, search string) []models.Exercise {
	search = strings.ToLower(search)
	var out []models.Exercise
	for _, ex := range resolved {
		if group != "" && ex.Category != group {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(ex.Name), search) {
			continue
		}
		out = append(out, ex)
	}
	return out
}
