// ABOUTME: Workout, PerformedExercise, and WorkoutSet models for session tracking.
// ABOUTME: Volume math and the completed-set filter used by Finish live here.
package models

import (
	"time"

	"github.com/google/uuid"
)

// SetType tags the role of a set within an exercise.
type SetType string

const (
	SetWarmup  SetType = "Warmup"
	SetWorking SetType = "Working"
	SetDrop    SetType = "Drop Set"
	SetFailure SetType = "To Failure"
)

// AllSetTypes lists every set type in cycle order.
var AllSetTypes = []SetType{SetWarmup, SetWorking, SetDrop, SetFailure}

// IsValidSetType checks if a string is a valid set type.
func IsValidSetType(s string) bool {
	for _, st := range AllSetTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// WorkoutSet is one set within a performed exercise. Weight is in kg,
// RestTime in seconds.
type WorkoutSet struct {
	ID        string  `json:"id"`
	Reps      int     `json:"reps"`
	Weight    float64 `json:"weight"`
	RestTime  int     `json:"rest_time"`
	Notes     string  `json:"notes,omitempty"`
	Type      SetType `json:"type"`
	Completed bool    `json:"completed"`
}

// NewWorkoutSet creates a set with the default values a freshly added
// exercise starts with: 10 reps, empty bar, 60 seconds rest.
func NewWorkoutSet() WorkoutSet {
	return WorkoutSet{
		ID:       uuid.New().String(),
		Reps:     10,
		Weight:   0,
		RestTime: 60,
		Type:     SetWorking,
	}
}

// Clone returns a copy of the set with a fresh ID and completed cleared.
func (s WorkoutSet) Clone() WorkoutSet {
	out := s
	out.ID = uuid.New().String()
	out.Completed = false
	return out
}

// Volume is weight times reps; zero whenever either is zero.
func (s WorkoutSet) Volume() float64 {
	return s.Weight * float64(s.Reps)
}

// SetPatch is a sparse field patch for a WorkoutSet.
type SetPatch struct {
	Reps      *int     `json:"reps,omitempty"`
	Weight    *float64 `json:"weight,omitempty"`
	RestTime  *int     `json:"rest_time,omitempty"`
	Notes     *string  `json:"notes,omitempty"`
	Type      *SetType `json:"type,omitempty"`
	Completed *bool    `json:"completed,omitempty"`
}

// Apply returns a copy of base with the patch's set fields replaced.
func (p SetPatch) Apply(base WorkoutSet) WorkoutSet {
	out := base
	if p.Reps != nil {
		out.Reps = *p.Reps
	}
	if p.Weight != nil {
		out.Weight = *p.Weight
	}
	if p.RestTime != nil {
		out.RestTime = *p.RestTime
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Completed != nil {
		out.Completed = *p.Completed
	}
	return out
}

// PerformedExercise is one exercise instance within a workout. ExerciseID
// references the catalog; it is resolved at read time, never embedded.
type PerformedExercise struct {
	ExerciseID string       `json:"exercise_id"`
	Sets       []WorkoutSet `json:"sets"`
	StartTime  *time.Time   `json:"start_time,omitempty"`
}

// NewPerformedExercise creates a performed exercise with one default set
// and the current time as its start marker.
func NewPerformedExercise(exerciseID string) PerformedExercise {
	now := time.Now()
	return PerformedExercise{
		ExerciseID: exerciseID,
		Sets:       []WorkoutSet{NewWorkoutSet()},
		StartTime:  &now,
	}
}

// Volume sums weight x reps across all sets.
func (pe PerformedExercise) Volume() float64 {
	var total float64
	for _, s := range pe.Sets {
		total += s.Volume()
	}
	return total
}

// CompletedSets returns only the sets marked completed, in order.
func (pe PerformedExercise) CompletedSets() []WorkoutSet {
	var out []WorkoutSet
	for _, s := range pe.Sets {
		if s.Completed {
			out = append(out, s)
		}
	}
	return out
}

// Workout is one training session. Once committed to history it is
// treated as immutable.
type Workout struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Date         time.Time           `json:"date"`
	Exercises    []PerformedExercise `json:"exercises"`
	Notes        string              `json:"notes,omitempty"`
	EnergyLevel  int                 `json:"energy_level,omitempty"`
	SleepQuality int                 `json:"sleep_quality,omitempty"`
}

// NewWorkout creates an empty workout with a generated ID, stamped now.
func NewWorkout(name string) *Workout {
	return &Workout{
		ID:   uuid.New().String(),
		Name: name,
		Date: time.Now(),
	}
}

// Volume sums weight x reps across every set of every exercise.
func (w *Workout) Volume() float64 {
	var total float64
	for _, pe := range w.Exercises {
		total += pe.Volume()
	}
	return total
}
