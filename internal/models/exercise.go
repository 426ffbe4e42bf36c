// ABOUTME: Exercise model with muscle group, difficulty, and type enums.
// ABOUTME: ExercisePatch holds sparse edits applied to builtins at read time.
package models

// MuscleGroup categorizes an exercise by the primary muscles it trains.
type MuscleGroup string

const (
	MuscleBack     MuscleGroup = "Back"
	MuscleShoulder MuscleGroup = "Shoulder"
	MuscleChest    MuscleGroup = "Chest"
	MuscleLegs     MuscleGroup = "Legs"
	MuscleArms     MuscleGroup = "Arms"
	MuscleCore     MuscleGroup = "Core"
	MuscleCardio   MuscleGroup = "Cardio"
)

// AllMuscleGroups lists every muscle group in display order.
var AllMuscleGroups = []MuscleGroup{
	MuscleBack, MuscleShoulder, MuscleChest, MuscleLegs,
	MuscleArms, MuscleCore, MuscleCardio,
}

// IsValidMuscleGroup checks if a string is a valid muscle group.
func IsValidMuscleGroup(s string) bool {
	for _, mg := range AllMuscleGroups {
		if string(mg) == s {
			return true
		}
	}
	return false
}

// Difficulty grades how demanding an exercise is.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// AllDifficulties lists every difficulty level.
var AllDifficulties = []Difficulty{
	DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced,
}

// IsValidDifficulty checks if a string is a valid difficulty.
func IsValidDifficulty(s string) bool {
	for _, d := range AllDifficulties {
		if string(d) == s {
			return true
		}
	}
	return false
}

// ExerciseType describes the training style an exercise belongs to.
type ExerciseType string

const (
	TypeStrength    ExerciseType = "Strength"
	TypeHypertrophy ExerciseType = "Hypertrophy"
	TypeCardio      ExerciseType = "Cardio"
	TypeBodyweight  ExerciseType = "Bodyweight"
	TypeFlexibility ExerciseType = "Flexibility"
)

// AllExerciseTypes lists every exercise type.
var AllExerciseTypes = []ExerciseType{
	TypeStrength, TypeHypertrophy, TypeCardio, TypeBodyweight, TypeFlexibility,
}

// IsValidExerciseType checks if a string is a valid exercise type.
func IsValidExerciseType(s string) bool {
	for _, et := range AllExerciseTypes {
		if string(et) == s {
			return true
		}
	}
	return false
}

// Exercise is a catalog entry. Builtin entries are an immutable seed;
// user edits to them are stored as ExercisePatch overrides, never applied
// to the seed itself.
type Exercise struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Category   MuscleGroup  `json:"category"`
	Difficulty Difficulty   `json:"difficulty"`
	Equipment  string       `json:"equipment"`
	Type       ExerciseType `json:"type,omitempty"`
	DemoURL    string       `json:"demo_url,omitempty"`
	Image      string       `json:"image,omitempty"`
	Custom     bool         `json:"custom,omitempty"`
}

// ExercisePatch is a sparse field patch for an Exercise. Nil fields leave
// the base value untouched; set fields replace it outright.
type ExercisePatch struct {
	Name       *string       `json:"name,omitempty"`
	Category   *MuscleGroup  `json:"category,omitempty"`
	Difficulty *Difficulty   `json:"difficulty,omitempty"`
	Equipment  *string       `json:"equipment,omitempty"`
	Type       *ExerciseType `json:"type,omitempty"`
	DemoURL    *string       `json:"demo_url,omitempty"`
	Image      *string       `json:"image,omitempty"`
}

// IsZero reports whether the patch carries no edits.
func (p ExercisePatch) IsZero() bool {
	return p.Name == nil && p.Category == nil && p.Difficulty == nil &&
		p.Equipment == nil && p.Type == nil && p.DemoURL == nil && p.Image == nil
}

// Apply returns a copy of base with the patch's set fields replaced.
func (p ExercisePatch) Apply(base Exercise) Exercise {
	out := base
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Category != nil {
		out.Category = *p.Category
	}
	if p.Difficulty != nil {
		out.Difficulty = *p.Difficulty
	}
	if p.Equipment != nil {
		out.Equipment = *p.Equipment
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.DemoURL != nil {
		out.DemoURL = *p.DemoURL
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	return out
}

// Merge layers another patch on top of this one, later fields winning.
func (p ExercisePatch) Merge(next ExercisePatch) ExercisePatch {
	out := p
	if next.Name != nil {
		out.Name = next.Name
	}
	if next.Category != nil {
		out.Category = next.Category
	}
	if next.Difficulty != nil {
		out.Difficulty = next.Difficulty
	}
	if next.Equipment != nil {
		out.Equipment = next.Equipment
	}
	if next.Type != nil {
		out.Type = next.Type
	}
	if next.DemoURL != nil {
		out.DemoURL = next.DemoURL
	}
	if next.Image != nil {
		out.Image = next.Image
	}
	return out
}
