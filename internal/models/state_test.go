// ABOUTME: Tests for the AppState aggregate: defaults, ordering, edits.
// ABOUTME: Builtin edits become overrides; custom edits happen in place.
package models

import (
	"encoding/json"
	"testing"
)

func TestNewAppStateDefaults(t *testing.T) {
	s := NewAppState()

	if s.Theme != ThemeDark {
		t.Errorf("Theme = %s, want dark", s.Theme)
	}
	if s.Profile.Height != 175 || s.Profile.TargetWeight != 75 {
		t.Errorf("Profile = %+v, want 175/75", s.Profile)
	}
	if s.ExerciseOverrides == nil {
		t.Error("expected override map to be allocated")
	}
}

func TestNormalizeFromPartialJSON(t *testing.T) {
	// A stored blob may predate theme and profile entirely.
	var s AppState
	if err := json.Unmarshal([]byte(`{"workouts":[]}`), &s); err != nil {
		t.Fatal(err)
	}
	s.Normalize()

	if s.Theme != ThemeDark {
		t.Errorf("Theme = %q, want dark", s.Theme)
	}
	if s.Profile != DefaultProfile() {
		t.Errorf("Profile = %+v, want default", s.Profile)
	}
	if s.ExerciseOverrides == nil {
		t.Error("expected override map after normalize")
	}
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	s := &AppState{
		Theme:   ThemeLight,
		Profile: UserProfile{Height: 180, TargetWeight: 80},
	}
	s.Normalize()

	if s.Theme != ThemeLight {
		t.Error("normalize overwrote an explicit theme")
	}
	if s.Profile.Height != 180 {
		t.Error("normalize overwrote an explicit profile")
	}
}

func TestAddWorkoutNewestFirst(t *testing.T) {
	s := NewAppState()
	first := NewWorkout("Active Session")
	second := NewWorkout("Active Session")
	s.AddWorkout(first)
	s.AddWorkout(second)

	if len(s.Workouts) != 2 {
		t.Fatalf("got %d workouts, want 2", len(s.Workouts))
	}
	if s.Workouts[0].ID != second.ID {
		t.Error("expected the most recent workout first")
	}
}

func TestDeleteWorkout(t *testing.T) {
	s := NewAppState()
	w := NewWorkout("Active Session")
	s.AddWorkout(w)

	if !s.DeleteWorkout(w.ID) {
		t.Error("expected delete to succeed")
	}
	if len(s.Workouts) != 0 {
		t.Error("expected empty history after delete")
	}
	if s.DeleteWorkout("missing") {
		t.Error("expected delete of unknown ID to report false")
	}
}

func TestAddCustomExerciseMarksCustom(t *testing.T) {
	s := NewAppState()
	s.AddCustomExercise(Exercise{ID: "abc", Name: "Landmine Press", Category: MuscleShoulder})

	if len(s.CustomExercises) != 1 {
		t.Fatal("expected one custom exercise")
	}
	if !s.CustomExercises[0].Custom {
		t.Error("expected Custom flag to be forced on")
	}
}

func TestUpdateExerciseCustomInPlace(t *testing.T) {
	s := NewAppState()
	s.AddCustomExercise(Exercise{ID: "abc", Name: "Landmine Press", Category: MuscleShoulder})

	name := "Landmine Push Press"
	s.UpdateExercise("abc", ExercisePatch{Name: &name})

	if s.CustomExercises[0].Name != "Landmine Push Press" {
		t.Errorf("Name = %s, want in-place edit", s.CustomExercises[0].Name)
	}
	if len(s.ExerciseOverrides) != 0 {
		t.Error("custom edit should not create an override")
	}
}

func TestUpdateExerciseBuiltinAccumulatesOverride(t *testing.T) {
	s := NewAppState()

	name := "Flat Bench"
	image := "bench.jpg"
	s.UpdateExercise("c1", ExercisePatch{Name: &name})
	s.UpdateExercise("c1", ExercisePatch{Image: &image})

	override := s.ExerciseOverrides["c1"]
	if override.Name == nil || *override.Name != "Flat Bench" {
		t.Error("expected earlier override field to survive the merge")
	}
	if override.Image == nil || *override.Image != "bench.jpg" {
		t.Error("expected later override field to be present")
	}
}

func TestLatestWeight(t *testing.T) {
	s := NewAppState()
	if s.LatestWeight() != 0 {
		t.Error("expected 0 with no measurements")
	}

	old := 80.0
	s.AddMeasurement(&BodyMeasurement{ID: "1", Weight: &old})
	s.AddMeasurement(&BodyMeasurement{ID: "2"}) // girth-only entry
	newest := 78.5
	s.AddMeasurement(&BodyMeasurement{ID: "3", Weight: &newest})

	if got := s.LatestWeight(); got != 78.5 {
		t.Errorf("LatestWeight = %v, want 78.5", got)
	}
}
