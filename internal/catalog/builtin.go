// ABOUTME: Builtin exercise seed for the catalog.
// ABOUTME: The seed is immutable; user edits land in AppState overrides.
package catalog

import "github.com/harperreed/fittrack/internal/models"

// Builtins is the immutable seed catalog. User edits to these entries are
// stored as overrides and merged at read time.
var Builtins = []models.Exercise{
	// Chest
	{ID: "c1", Name: "Bench Press", Category: models.MuscleChest, Difficulty: models.DifficultyIntermediate, Equipment: "Barbell"},
	{ID: "c2", Name: "Incline Dumbbell Press", Category: models.MuscleChest, Difficulty: models.DifficultyIntermediate, Equipment: "Dumbbells"},
	{ID: "c3", Name: "Chest Flys", Category: models.MuscleChest, Difficulty: models.DifficultyBeginner, Equipment: "Cable/Dumbbell"},
	{ID: "c4", Name: "Push-ups", Category: models.MuscleChest, Difficulty: models.DifficultyBeginner, Equipment: "Bodyweight"},
	// Back
	{ID: "b1", Name: "Deadlift", Category: models.MuscleBack, Difficulty: models.DifficultyAdvanced, Equipment: "Barbell"},
	{ID: "b2", Name: "Pull-ups", Category: models.MuscleBack, Difficulty: models.DifficultyIntermediate, Equipment: "Pull-up Bar"},
	{ID: "b3", Name: "Lat Pulldown", Category: models.MuscleBack, Difficulty: models.DifficultyBeginner, Equipment: "Cable Machine"},
	{ID: "b4", Name: "Bent Over Row", Category: models.MuscleBack, Difficulty: models.DifficultyIntermediate, Equipment: "Barbell"},
	// Legs
	{ID: "l1", Name: "Squat", Category: models.MuscleLegs, Difficulty: models.DifficultyAdvanced, Equipment: "Barbell"},
	{ID: "l2", Name: "Leg Press", Category: models.MuscleLegs, Difficulty: models.DifficultyBeginner, Equipment: "Machine"},
	{ID: "l3", Name: "Lunges", Category: models.MuscleLegs, Difficulty: models.DifficultyBeginner, Equipment: "Dumbbells"},
	{ID: "l4", Name: "Leg Curls", Category: models.MuscleLegs, Difficulty: models.DifficultyBeginner, Equipment: "Machine"},
	// Shoulders
	{ID: "s1", Name: "Overhead Press", Category: models.MuscleShoulder, Difficulty: models.DifficultyIntermediate, Equipment: "Barbell"},
	{ID: "s2", Name: "Lateral Raise", Category: models.MuscleShoulder, Difficulty: models.DifficultyBeginner, Equipment: "Dumbbells"},
	{ID: "s3", Name: "Face Pulls", Category: models.MuscleShoulder, Difficulty: models.DifficultyBeginner, Equipment: "Cables"},
	// Arms
	{ID: "a1", Name: "Bicep Curls", Category: models.MuscleArms, Difficulty: models.DifficultyBeginner, Equipment: "Dumbbells"},
	{ID: "a2", Name: "Tricep Pushdowns", Category: models.MuscleArms, Difficulty: models.DifficultyBeginner, Equipment: "Cables"},
	{ID: "a3", Name: "Hammer Curls", Category: models.MuscleArms, Difficulty: models.DifficultyBeginner, Equipment: "Dumbbells"},
	// Core
	{ID: "cr1", Name: "Plank", Category: models.MuscleCore, Difficulty: models.DifficultyBeginner, Equipment: "Bodyweight"},
	{ID: "cr2", Name: "Hanging Leg Raise", Category: models.MuscleCore, Difficulty: models.DifficultyIntermediate, Equipment: "Pull-up Bar"},
	// Cardio
	{ID: "cd1", Name: "Running", Category: models.MuscleCardio, Difficulty: models.DifficultyBeginner, Equipment: "Treadmill/Outdoor"},
}
